package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jhankarhotel/frontdesk-app/store"
	"github.com/jhankarhotel/frontdesk-app/utils"
)

type FoodMenuController struct {
	Store *store.HotelStore
}

func NewFoodMenuController(st *store.HotelStore) *FoodMenuController {
	return &FoodMenuController{Store: st}
}

// GetFoodMenu returns the menu grouped by its fixed categories.
func (fc *FoodMenuController) GetFoodMenu(c *gin.Context) {
	menu, err := fc.Store.FoodMenu()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food menu", menu)
}

// CreateFoodItem
func (fc *FoodMenuController) CreateFoodItem(c *gin.Context) {
	category := c.Param("category")

	var body struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"desc"`
		Price       int    `json:"price" binding:"required"`
		Image       string `json:"img" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must be positive"))
		return
	}

	item, err := fc.Store.AddFoodItem(category, store.FoodItemDetails{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Image:       body.Image,
	})
	if err == gorm.ErrRecordNotFound {
		utils.RespondError(c, http.StatusNotFound, errors.New("unknown menu category"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Food item created", item)
}

// UpdateFoodItem
func (fc *FoodMenuController) UpdateFoodItem(c *gin.Context) {
	category := c.Param("category")
	itemID := c.Param("item_id")

	var body struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"desc"`
		Price       int    `json:"price" binding:"required"`
		Image       string `json:"img"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := fc.Store.EditFoodItem(category, itemID, store.FoodItemDetails{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Image:       body.Image,
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food item updated", nil)
}

// DeleteFoodItem
func (fc *FoodMenuController) DeleteFoodItem(c *gin.Context) {
	category := c.Param("category")
	itemID := c.Param("item_id")

	if err := fc.Store.DeleteFoodItem(category, itemID); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food item deleted", nil)
}
