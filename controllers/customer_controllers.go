package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhankarhotel/frontdesk-app/models"
	"github.com/jhankarhotel/frontdesk-app/store"
	"github.com/jhankarhotel/frontdesk-app/utils"
)

type CustomerController struct {
	Store *store.HotelStore
}

func NewCustomerController(st *store.HotelStore) *CustomerController {
	return &CustomerController{Store: st}
}

// GetAllCustomers
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Store.Customers()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// CreateBooking books a room for a guest. Both the public booking flow
// and the admin walk-in panel land here; walk-ins may set the payment
// status directly.
func (cc *CustomerController) CreateBooking(c *gin.Context) {
	var body struct {
		RoomID        uint   `json:"roomId" binding:"required"`
		FirstName     string `json:"firstName" binding:"required"`
		LastName      string `json:"lastName" binding:"required"`
		Phone         string `json:"phone"`
		Email         string `json:"email"`
		CheckIn       string `json:"checkIn" binding:"required"`
		CheckOut      string `json:"checkOut" binding:"required"`
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	paymentStatus := body.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentPending
	}
	if paymentStatus != models.PaymentPending && paymentStatus != models.PaymentComplete {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid payment status"))
		return
	}

	room, err := cc.Store.RoomByID(body.RoomID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("room not found"))
		return
	}
	if room.Availability != models.RoomAvailable {
		utils.RespondError(c, http.StatusConflict, errors.New("room is not available"))
		return
	}

	customer, err := cc.Store.AddCustomer(store.GuestDetails{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Email:     body.Email,
		CheckIn:   body.CheckIn,
		CheckOut:  body.CheckOut,
	}, room, paymentStatus)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Booking created", customer)
}

// UpdatePaymentStatus
func (cc *CustomerController) UpdatePaymentStatus(c *gin.Context) {
	customerID := c.Param("customer_id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Status != models.PaymentPending && body.Status != models.PaymentComplete {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid payment status"))
		return
	}

	if err := cc.Store.UpdateCustomerPaymentStatus(customerID, body.Status); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment status updated", nil)
}

// GetCustomerExpenses returns the expense breakdown for a room number.
func (cc *CustomerController) GetCustomerExpenses(c *gin.Context) {
	roomNo := c.Param("room_no")

	expenses, err := cc.Store.CustomerExpenses(roomNo)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer expenses", expenses)
}
