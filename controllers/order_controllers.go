package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jhankarhotel/frontdesk-app/store"
	"github.com/jhankarhotel/frontdesk-app/utils"
)

type OrderController struct {
	Store *store.HotelStore
}

func NewOrderController(st *store.HotelStore) *OrderController {
	return &OrderController{Store: st}
}

// GetAllOrders
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Store.Orders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder records a food order against a room number.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		RoomNo       string  `json:"roomNo" binding:"required"`
		CustomerName string  `json:"customerName"`
		FoodItems    string  `json:"foodItems" binding:"required"`
		Quantity     int     `json:"quantity" binding:"required"`
		TotalAmount  float64 `json:"totalAmount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Quantity <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("quantity must be positive"))
		return
	}
	if body.TotalAmount <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("total amount must be positive"))
		return
	}

	order, err := oc.Store.AddOrder(store.OrderDetails{
		RoomNo:       body.RoomNo,
		CustomerName: body.CustomerName,
		FoodItems:    body.FoodItems,
		Quantity:     body.Quantity,
		TotalAmount:  body.TotalAmount,
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// DeleteOrder
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	if err := oc.Store.DeleteOrder(uint(id)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", nil)
}

// QuoteOrder prices a cart for the public ordering page, including the
// room service charge.
func (oc *OrderController) QuoteOrder(c *gin.Context) {
	var body struct {
		Lines []store.CartLine `json:"lines" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	quote, err := oc.Store.QuoteOrder(body.Lines)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order quote", quote)
}
