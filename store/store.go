package store

import (
	"fmt"
	"math"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/jhankarhotel/frontdesk-app/config"
	"github.com/jhankarhotel/frontdesk-app/models"
	"github.com/jhankarhotel/frontdesk-app/utils"
)

// HotelStore owns the four front-desk collections (rooms, customers,
// orders, food menu) and keeps the derived billing fields of every
// customer consistent with them. All access goes through its methods;
// every mutation that touches orders or rooms ends with a full billing
// recompute.
//
// Lookups that miss on update/delete are silent no-ops: the front desk
// tolerates stale references instead of failing the whole request.
type HotelStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func New(db *gorm.DB) *HotelStore {
	return &HotelStore{db: db}
}

// GuestDetails is the booking form input for a new customer.
type GuestDetails struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	CheckIn   string // ISO date, 2006-01-02
	CheckOut  string
}

// RoomDetails is the admin form input for creating or editing a room.
type RoomDetails struct {
	RoomNo       string
	Type         string
	Price        float64
	Availability string
	Image        string
}

// OrderDetails is the food-ordering form input for a new order.
type OrderDetails struct {
	RoomNo       string
	CustomerName string
	FoodItems    string
	Quantity     int
	TotalAmount  float64
}

// FoodItemDetails is the admin form input for a menu item.
type FoodItemDetails struct {
	Name        string
	Description string
	Price       int
	Image       string
}

type RoomStats struct {
	TotalRooms     int64 `json:"totalRooms"`
	AvailableRooms int64 `json:"availableRooms"`
	BookedRooms    int64 `json:"bookedRooms"`
}

// ExpenseLine is one row of a guest's expense breakdown.
type ExpenseLine struct {
	Date        string  `json:"date"`
	Description string  `json:"desc"`
	Amount      float64 `json:"amount"`
	Quantity    int     `json:"quantity,omitempty"`
}

// Expenses is the read-only projection consumed by the receipt and
// expense views: the static room-charge line plus one line per order
// matching the guest's room number.
type Expenses struct {
	RoomCharge ExpenseLine   `json:"roomCharge"`
	FoodOrders []ExpenseLine `json:"foodOrders"`
}

const isoDate = "2006-01-02"

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// stayNights computes the billed nights between two ISO dates. A zero,
// negative or unparseable range bills as a single night rather than
// failing the booking.
func stayNights(checkIn, checkOut string) int {
	in, errIn := time.Parse(isoDate, checkIn)
	out, errOut := time.Parse(isoDate, checkOut)
	if errIn != nil || errOut != nil {
		return 1
	}
	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// AddCustomer books a room for a guest: it computes the stay charges,
// creates the ledger entry and flips the room to Booked.
func (s *HotelStore) AddCustomer(guest GuestDetails, room models.Room, paymentStatus string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nights := stayNights(guest.CheckIn, guest.CheckOut)
	roomCharges := room.Price * float64(nights)
	subtotal := roomCharges
	gst := round2(subtotal * config.GSTRate)

	var count int64
	if err := s.db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return models.Customer{}, err
	}

	customer := models.Customer{
		ID:            fmt.Sprintf("CUST-%d", time.Now().UnixMilli()),
		Code:          fmt.Sprintf("CUST-%03d", count+1),
		Name:          guest.FirstName + " " + guest.LastName,
		Phone:         guest.Phone,
		Email:         guest.Email,
		RoomNo:        room.RoomNo,
		CheckInDate:   guest.CheckIn,
		CheckOutDate:  guest.CheckOut,
		StayDuration:  nights,
		RoomCharges:   roomCharges,
		FoodCharges:   0,
		Subtotal:      subtotal,
		GST:           gst,
		TotalBill:     round2(subtotal + gst),
		PaymentStatus: paymentStatus,
	}

	if err := s.db.Create(&customer).Error; err != nil {
		return models.Customer{}, err
	}

	if err := s.db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("availability", models.RoomBooked).Error; err != nil {
		return models.Customer{}, err
	}

	if err := s.recalculateBills(); err != nil {
		return models.Customer{}, err
	}

	// Re-read so the caller sees the recomputed ledger fields.
	if err := s.db.First(&customer, "id = ?", customer.ID).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

// UpdateCustomerPaymentStatus flips a customer's payment state. Unknown
// ids are ignored.
func (s *HotelStore) UpdateCustomerPaymentStatus(customerID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Model(&models.Customer{}).Where("id = ?", customerID).
		Update("payment_status", status).Error
}

// SetRoomAvailability moves a room between Available, Booked and
// Maintenance. Unknown ids are ignored.
func (s *HotelStore) SetRoomAvailability(roomID uint, availability string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Model(&models.Room{}).Where("id = ?", roomID).
		Update("availability", availability).Error; err != nil {
		return err
	}
	return s.recalculateBills()
}

// SetRoomPrice updates a room's nightly price. Existing ledger entries
// keep their original room charges; only future bookings see the new
// price.
func (s *HotelStore) SetRoomPrice(roomID uint, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Model(&models.Room{}).Where("id = ?", roomID).
		Update("price", math.Trunc(price)).Error; err != nil {
		return err
	}
	return s.recalculateBills()
}

// UpdateRoomDetails rewrites a room's editable fields from the admin
// room form. Unknown ids are ignored.
func (s *HotelStore) UpdateRoomDetails(roomID uint, details RoomDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updates := map[string]interface{}{
		"room_no":      details.RoomNo,
		"type":         details.Type,
		"price":        math.Trunc(details.Price),
		"availability": details.Availability,
		"image":        details.Image,
	}
	if err := s.db.Model(&models.Room{}).Where("id = ?", roomID).
		Updates(updates).Error; err != nil {
		return err
	}
	return s.recalculateBills()
}

// AddRoom creates a room from the admin form. Ids are sequential:
// one past the current maximum, starting at 1 on an empty inventory.
func (s *HotelStore) AddRoom(details RoomDetails) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	availability := details.Availability
	if availability == "" {
		availability = models.RoomAvailable
	}

	room := models.Room{
		RoomNo:       details.RoomNo,
		Type:         details.Type,
		Price:        math.Trunc(details.Price),
		Availability: availability,
		Image:        details.Image,
	}
	if err := s.db.Create(&room).Error; err != nil {
		return models.Room{}, err
	}

	if err := s.recalculateBills(); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// RoomStats aggregates the inventory by availability.
func (s *HotelStore) RoomStats() (RoomStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats RoomStats
	if err := s.db.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return RoomStats{}, err
	}
	if err := s.db.Model(&models.Room{}).Where("availability = ?", models.RoomAvailable).
		Count(&stats.AvailableRooms).Error; err != nil {
		return RoomStats{}, err
	}
	if err := s.db.Model(&models.Room{}).Where("availability = ?", models.RoomBooked).
		Count(&stats.BookedRooms).Error; err != nil {
		return RoomStats{}, err
	}
	return stats, nil
}

// AddOrder records a food order against a room number, stamped with
// today's date, and folds it into the matching customer's bill.
func (s *HotelStore) AddOrder(details OrderDetails) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.Order{
		RoomNo:       details.RoomNo,
		CustomerName: details.CustomerName,
		FoodItems:    details.FoodItems,
		Quantity:     details.Quantity,
		Date:         time.Now().Format(isoDate),
		TotalAmount:  details.TotalAmount,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}

	if err := s.recalculateBills(); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// DeleteOrder removes an order and takes it back out of the matching
// customer's bill. Unknown ids are ignored.
func (s *HotelStore) DeleteOrder(orderID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Delete(&models.Order{}, orderID).Error; err != nil {
		return err
	}
	return s.recalculateBills()
}

// AddFoodItem appends an item to one category's menu. The category must
// be one of the fixed set.
func (s *HotelStore) AddFoodItem(categoryKey string, details FoodItemDetails) (models.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var category models.FoodCategory
	if err := s.db.Where("key = ?", categoryKey).First(&category).Error; err != nil {
		return models.FoodItem{}, err
	}

	item := models.FoodItem{
		ID:          fmt.Sprintf("%s-%d", categoryKey, time.Now().UnixMilli()),
		CategoryKey: categoryKey,
		Name:        details.Name,
		Description: details.Description,
		Price:       details.Price,
		Image:       details.Image,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return models.FoodItem{}, err
	}
	return item, nil
}

// EditFoodItem rewrites a menu item within one category. Unknown items
// are ignored.
func (s *HotelStore) EditFoodItem(categoryKey, itemID string, details FoodItemDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Model(&models.FoodItem{}).
		Where("id = ? AND category_key = ?", itemID, categoryKey).
		Updates(map[string]interface{}{
			"name":        details.Name,
			"description": details.Description,
			"price":       details.Price,
			"image":       details.Image,
		}).Error
}

// DeleteFoodItem removes a menu item from one category. Unknown items
// are ignored.
func (s *HotelStore) DeleteFoodItem(categoryKey, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Where("id = ? AND category_key = ?", itemID, categoryKey).
		Delete(&models.FoodItem{}).Error
}

// CustomerExpenses builds the expense breakdown for the most recent
// customer holding a room number. An unknown room number yields an
// empty breakdown, not an error.
func (s *HotelStore) CustomerExpenses(roomNo string) (Expenses, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customer models.Customer
	err := s.db.Where("room_no = ?", roomNo).
		Order("created_at DESC").First(&customer).Error
	if err == gorm.ErrRecordNotFound {
		return Expenses{FoodOrders: []ExpenseLine{}}, nil
	}
	if err != nil {
		return Expenses{}, err
	}

	nights := customer.StayDuration
	if nights < 1 {
		nights = 1
	}
	perNight := customer.RoomCharges / float64(nights)

	expenses := Expenses{
		RoomCharge: ExpenseLine{
			Date: customer.CheckInDate,
			Description: fmt.Sprintf("Room Charges (%d nights @ Rs. %s/night)",
				customer.StayDuration, utils.FormatINR(perNight)),
			Amount: customer.RoomCharges,
		},
		FoodOrders: []ExpenseLine{},
	}

	var orders []models.Order
	if err := s.db.Where("room_no = ?", roomNo).Order("id ASC").Find(&orders).Error; err != nil {
		return Expenses{}, err
	}
	for _, o := range orders {
		expenses.FoodOrders = append(expenses.FoodOrders, ExpenseLine{
			Date:        o.Date,
			Description: fmt.Sprintf("Food Order #%d (%s)", o.ID, o.FoodItems),
			Amount:      o.TotalAmount,
			Quantity:    o.Quantity,
		})
	}
	return expenses, nil
}

// Rooms lists the inventory, newest first.
func (s *HotelStore) Rooms() ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rooms []models.Room
	err := s.db.Order("id DESC").Find(&rooms).Error
	return rooms, err
}

// RoomByID fetches one room.
func (s *HotelStore) RoomByID(roomID uint) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var room models.Room
	err := s.db.First(&room, roomID).Error
	return room, err
}

// Customers lists the ledger, most recent booking first.
func (s *HotelStore) Customers() ([]models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customers []models.Customer
	err := s.db.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

// CustomerByID fetches one ledger entry.
func (s *HotelStore) CustomerByID(customerID string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customer models.Customer
	err := s.db.First(&customer, "id = ?", customerID).Error
	return customer, err
}

// Orders lists food orders, newest first.
func (s *HotelStore) Orders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	err := s.db.Order("id DESC").Find(&orders).Error
	return orders, err
}

// FoodMenu returns the menu grouped by its fixed categories, seeded
// order preserved.
func (s *HotelStore) FoodMenu() ([]models.FoodCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categories []models.FoodCategory
	err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Order("id ASC").Find(&categories).Error
	return categories, err
}

// Recalculate re-derives every customer's billing fields from the
// current order collection. It is idempotent; the mutating operations
// call it internally, so callers only need it after bulk loads.
func (s *HotelStore) Recalculate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.recalculateBills()
}

// recalculateBills is the invariant-maintenance pass: for every
// customer, foodCharges is the sum of order totals matching the
// customer's room number, subtotal = roomCharges + foodCharges,
// gst = subtotal * rate, totalBill = subtotal + gst. A full recompute
// over all customers, not an incremental patch — the collections hold
// tens of records.
func (s *HotelStore) recalculateBills() error {
	var customers []models.Customer
	if err := s.db.Find(&customers).Error; err != nil {
		return err
	}

	for i := range customers {
		c := &customers[i]

		var foodCharges float64
		err := s.db.Model(&models.Order{}).
			Where("room_no = ?", c.RoomNo).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&foodCharges).Error
		if err != nil {
			return err
		}

		subtotal := round2(c.RoomCharges + foodCharges)
		gst := round2(subtotal * config.GSTRate)
		totalBill := round2(subtotal + gst)

		err = s.db.Model(&models.Customer{}).Where("id = ?", c.ID).
			Updates(map[string]interface{}{
				"food_charges": foodCharges,
				"subtotal":     subtotal,
				"gst":          gst,
				"total_bill":   totalBill,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
