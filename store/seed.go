package store

import (
	"strconv"
	"time"

	"github.com/jhankarhotel/frontdesk-app/models"
	"github.com/jhankarhotel/frontdesk-app/utils"
)

// Placeholder room photos keyed by room type.
var roomImages = map[string]string{
	models.RoomTypeSingle:    "https://placehold.co/400x300/fef3c7/b45309?text=Single+Room",
	models.RoomTypeDouble:    "https://placehold.co/400x300/fde68a/b45309?text=Double+Room",
	models.RoomTypeTriple:    "https://placehold.co/400x300/fef3c7/b45309?text=Triple+Room",
	models.RoomTypeDormitory: "https://placehold.co/400x300/fde68a/b45309?text=Dormitory",
}

// seedRooms builds the 30-room inventory: floor 1 (101-110) is
// Single/Double, floor 2 (201-210) Double/Triple, floor 3 (301-310)
// Triple/Dormitory. Rooms 102, 104, 206 and 309 start out Booked to
// match the seeded ledger.
func seedRooms() []models.Room {
	type floorPlan struct {
		base      int
		splitAt   int
		lowType   string
		lowPrice  float64
		highType  string
		highPrice float64
	}
	floors := []floorPlan{
		{100, 5, models.RoomTypeSingle, 2500, models.RoomTypeDouble, 4000},
		{200, 6, models.RoomTypeDouble, 4000, models.RoomTypeTriple, 5500},
		{300, 5, models.RoomTypeTriple, 5500, models.RoomTypeDormitory, 1200},
	}

	booked := map[string]bool{"102": true, "104": true, "206": true, "309": true}

	var rooms []models.Room
	for _, f := range floors {
		for i := 1; i <= 10; i++ {
			roomType, price := f.lowType, f.lowPrice
			if i > f.splitAt {
				roomType, price = f.highType, f.highPrice
			}
			roomNo := strconv.Itoa(f.base + i)
			availability := models.RoomAvailable
			if booked[roomNo] {
				availability = models.RoomBooked
			}
			rooms = append(rooms, models.Room{
				RoomNo:       roomNo,
				Type:         roomType,
				Price:        price,
				Availability: availability,
				Image:        roomImages[roomType],
			})
		}
	}
	return rooms
}

func seedCustomers(now time.Time) []models.Customer {
	guests := []struct {
		code, name, roomNo string
		checkIn, checkOut  string
		nights             int
		roomCharges        float64
		paymentStatus      string
	}{
		{"CUST-001", "John Doe", "102", "2025-10-10", "2025-10-15", 5, 12500, models.PaymentComplete},
		{"CUST-002", "Jane Smith", "104", "2025-10-12", "2025-10-17", 5, 12500, models.PaymentPending},
		{"CUST-003", "Robert Johnson", "206", "2025-10-08", "2025-10-16", 8, 32000, models.PaymentComplete},
		{"CUST-004", "Emily Davis", "309", "2025-10-11", "2025-10-18", 7, 8400, models.PaymentPending},
	}

	customers := make([]models.Customer, 0, len(guests))
	for i, g := range guests {
		customers = append(customers, models.Customer{
			ID:            g.code,
			Code:          g.code,
			Name:          g.name,
			RoomNo:        g.roomNo,
			CheckInDate:   g.checkIn,
			CheckOutDate:  g.checkOut,
			StayDuration:  g.nights,
			RoomCharges:   g.roomCharges,
			PaymentStatus: g.paymentStatus,
			// Stagger creation times so the ledger lists CUST-001 first.
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	return customers
}

func seedOrders() []models.Order {
	return []models.Order{
		{RoomNo: "102", CustomerName: "John Doe", FoodItems: "Continental Breakfast", Quantity: 2, Date: "2025-10-15", TotalAmount: 900},
		{RoomNo: "104", CustomerName: "Jane Smith", FoodItems: "Vegetarian Thali", Quantity: 1, Date: "2025-10-15", TotalAmount: 600},
		{RoomNo: "206", CustomerName: "Robert Johnson", FoodItems: "Non-Vegetarian Buffet", Quantity: 3, Date: "2025-10-15", TotalAmount: 2700},
		{RoomNo: "309", CustomerName: "Emily Davis", FoodItems: "BBQ Night Special", Quantity: 2, Date: "2025-10-15", TotalAmount: 2400},
		{RoomNo: "102", CustomerName: "John Doe", FoodItems: "Vegetarian Thali", Quantity: 1, Date: "2025-10-16", TotalAmount: 600},
	}
}

func seedFoodMenu() []models.FoodCategory {
	return []models.FoodCategory{
		{
			Key: models.CategoryBreakfast, Name: "Breakfast", TimeLabel: "Served until 11:00 AM",
			Items: []models.FoodItem{
				{ID: "breakfast-continental", Name: "Continental Breakfast", Description: "Fresh fruits, pastries, juice, coffee/tea", Price: 450, Image: "https://images.unsplash.com/photo-1551782450-17144efb9c50?w=400&h=250&fit=crop"},
				{ID: "breakfast-indian", Name: "Indian Breakfast", Description: "Poha, paratha, chutney, yogurt", Price: 350, Image: "https://images.unsplash.com/photo-1598214887288-8f67a6f2e767?w=400&h=250&fit=crop"},
				{ID: "breakfast-english", Name: "English Breakfast", Description: "Eggs, bacon, toast, baked beans", Price: 550, Image: "https://images.unsplash.com/photo-1580988070835-430c82a1215a?w=400&h=250&fit=crop"},
			},
		},
		{
			Key: models.CategoryLunch, Name: "Lunch", TimeLabel: "Served 12:00 PM - 3:00 PM",
			Items: []models.FoodItem{
				{ID: "lunch-veg-thali", Name: "Vegetarian Thali", Description: "Dal, vegetables, roti, rice, salad, dessert", Price: 600, Image: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=250&fit=crop"},
				{ID: "lunch-nonveg-thali", Name: "Non-Vegetarian Thali", Description: "Chicken curry, dal, roti, rice, salad, dessert", Price: 800, Image: "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=400&h=250&fit=crop"},
				{ID: "lunch-rajasthani", Name: "Rajasthani Special", Description: "Dal Baati Churma, Gatte ki Sabzi, Buttermilk", Price: 750, Image: "https://images.unsplash.com/photo-1617469176348-639603a35f87?w=400&h=250&fit=crop"},
			},
		},
		{
			Key: models.CategoryDinner, Name: "Dinner", TimeLabel: "Served 7:00 PM - 11:00 PM",
			Items: []models.FoodItem{
				{ID: "dinner-veg-buffet", Name: "Vegetarian Buffet", Description: "Multiple vegetable dishes, breads, rice, desserts", Price: 700, Image: "https://images.unsplash.com/photo-1528605248644-14dd04022b16?w=400&h=250&fit=crop"},
				{ID: "dinner-nonveg-buffet", Name: "Non-Vegetarian Buffet", Description: "Chicken, fish, mutton dishes with sides", Price: 900, Image: "https://images.unsplash.com/photo-1606755962773-d324e7452491?w=400&h=250&fit=crop"},
				{ID: "dinner-bbq", Name: "BBQ Night Special", Description: "Grilled meats and vegetables with live counter", Price: 1200, Image: "https://images.unsplash.com/photo-1558036117-15e82a2c9a9a?w=400&h=250&fit=crop"},
			},
		},
	}
}

// Seed loads the initial collections if the store is empty, then runs
// the billing recompute so the seeded ledger starts out consistent
// with the seeded orders. Loading is one-time: a populated store is
// left untouched.
func (s *HotelStore) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var roomCount int64
	if err := s.db.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		return err
	}
	if roomCount > 0 {
		if utils.InfoLogger != nil {
			utils.InfoLogger.Println("Store already seeded, skipping")
		}
		return nil
	}

	rooms := seedRooms()
	if err := s.db.Create(&rooms).Error; err != nil {
		return err
	}

	customers := seedCustomers(time.Now())
	if err := s.db.Create(&customers).Error; err != nil {
		return err
	}

	orders := seedOrders()
	if err := s.db.Create(&orders).Error; err != nil {
		return err
	}

	menu := seedFoodMenu()
	if err := s.db.Create(&menu).Error; err != nil {
		return err
	}

	if utils.InfoLogger != nil {
		utils.InfoLogger.Printf("Seeded %d rooms, %d customers, %d orders, %d menu categories",
			len(rooms), len(customers), len(orders), len(menu))
	}

	return s.recalculateBills()
}
