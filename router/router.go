package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jhankarhotel/frontdesk-app/controllers"
	"github.com/jhankarhotel/frontdesk-app/middlewares"
	"github.com/jhankarhotel/frontdesk-app/store"
)

func SetupRouter(st *store.HotelStore) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	roomCtrl := controllers.NewRoomController(st)
	customerCtrl := controllers.NewCustomerController(st)
	orderCtrl := controllers.NewOrderController(st)
	menuCtrl := controllers.NewFoodMenuController(st)
	reportCtrl := controllers.NewReportController(st)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rooms
	r.GET("/rooms", roomCtrl.GetAllRooms)
	r.GET("/rooms/stats", roomCtrl.GetRoomStats)
	r.GET("/room-types", roomCtrl.GetRoomTypes)
	r.POST("/rooms", roomCtrl.CreateRoom)
	r.PATCH("/rooms/:room_id", roomCtrl.UpdateRoom)
	r.PATCH("/rooms/:room_id/availability", roomCtrl.UpdateRoomAvailability)
	r.PATCH("/rooms/:room_id/price", roomCtrl.UpdateRoomPrice)

	// Customers and bookings
	r.GET("/customers", customerCtrl.GetAllCustomers)
	r.POST("/bookings", customerCtrl.CreateBooking)
	r.PATCH("/customers/:customer_id/payment-status", customerCtrl.UpdatePaymentStatus)
	r.GET("/customers/expenses/:room_no", customerCtrl.GetCustomerExpenses)

	// Food orders
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.POST("/orders/quote", orderCtrl.QuoteOrder)
	r.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	// Food menu
	r.GET("/menu", menuCtrl.GetFoodMenu)
	r.POST("/menu/:category/items", menuCtrl.CreateFoodItem)
	r.PATCH("/menu/:category/items/:item_id", menuCtrl.UpdateFoodItem)
	r.DELETE("/menu/:category/items/:item_id", menuCtrl.DeleteFoodItem)

	// Reports
	r.GET("/reports/customers.xlsx", reportCtrl.DownloadCustomerLedger)
	r.GET("/reports/folio/:customer_id", reportCtrl.DownloadGuestFolio)

	return r
}
