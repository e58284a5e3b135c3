package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jhankarhotel/frontdesk-app/config"
	"github.com/jhankarhotel/frontdesk-app/models"
	"github.com/jhankarhotel/frontdesk-app/store"
	"github.com/jhankarhotel/frontdesk-app/utils"
)

type RoomController struct {
	Store *store.HotelStore
}

func NewRoomController(st *store.HotelStore) *RoomController {
	return &RoomController{Store: st}
}

var validAvailability = map[string]bool{
	models.RoomAvailable:   true,
	models.RoomBooked:      true,
	models.RoomMaintenance: true,
}

var validRoomType = map[string]bool{
	models.RoomTypeSingle:    true,
	models.RoomTypeDouble:    true,
	models.RoomTypeTriple:    true,
	models.RoomTypeDormitory: true,
}

// GetAllRooms
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := rc.Store.Rooms()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of rooms", rooms)
}

// GetRoomStats
func (rc *RoomController) GetRoomStats(c *gin.Context) {
	stats, err := rc.Store.RoomStats()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room stats", stats)
}

// GetRoomTypes serves the fixed room-type catalog for the booking page.
func (rc *RoomController) GetRoomTypes(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Room types", config.RoomTypeCatalog)
}

// CreateRoom
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var body struct {
		RoomNo       string  `json:"roomNo" binding:"required"`
		Type         string  `json:"type" binding:"required"`
		Price        float64 `json:"price" binding:"required"`
		Availability string  `json:"availability"`
		Image        string  `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !validRoomType[body.Type] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid room type"))
		return
	}
	if body.Availability != "" && !validAvailability[body.Availability] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid availability"))
		return
	}
	if body.Price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must be positive"))
		return
	}

	room, err := rc.Store.AddRoom(store.RoomDetails{
		RoomNo:       body.RoomNo,
		Type:         body.Type,
		Price:        body.Price,
		Availability: body.Availability,
		Image:        body.Image,
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Room created", room)
}

// UpdateRoomAvailability
func (rc *RoomController) UpdateRoomAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("room_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid room id"))
		return
	}

	var body struct {
		Availability string `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !validAvailability[body.Availability] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid availability"))
		return
	}

	if err := rc.Store.SetRoomAvailability(uint(id), body.Availability); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room availability updated", nil)
}

// UpdateRoomPrice
func (rc *RoomController) UpdateRoomPrice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("room_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid room id"))
		return
	}

	var body struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must be positive"))
		return
	}

	if err := rc.Store.SetRoomPrice(uint(id), body.Price); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room price updated", nil)
}

// UpdateRoom rewrites the full admin room form.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("room_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid room id"))
		return
	}

	var body struct {
		RoomNo       string  `json:"roomNo" binding:"required"`
		Type         string  `json:"type" binding:"required"`
		Price        float64 `json:"price" binding:"required"`
		Availability string  `json:"availability" binding:"required"`
		Image        string  `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !validRoomType[body.Type] || !validAvailability[body.Availability] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid room type or availability"))
		return
	}

	err = rc.Store.UpdateRoomDetails(uint(id), store.RoomDetails{
		RoomNo:       body.RoomNo,
		Type:         body.Type,
		Price:        body.Price,
		Availability: body.Availability,
		Image:        body.Image,
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room updated", nil)
}
