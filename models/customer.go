package models

import "time"

// Payment states for a customer's bill.
const (
	PaymentPending  = "Pending"
	PaymentComplete = "Complete"
)

// Customer is one guest ledger entry. RoomCharges is fixed at booking
// time; FoodCharges, Subtotal, GST and TotalBill are derived and kept
// consistent with the order collection by the store.
type Customer struct {
	ID            string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Code          string    `gorm:"type:varchar(16)" json:"customerId"`
	Name          string    `gorm:"type:varchar(255);not null" json:"customerName"`
	Phone         string    `gorm:"type:varchar(32)" json:"phone"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	RoomNo        string    `gorm:"type:varchar(10);index" json:"roomNo"`
	CheckInDate   string    `gorm:"type:varchar(10)" json:"checkInDate"`
	CheckOutDate  string    `gorm:"type:varchar(10)" json:"checkOutDate"`
	StayDuration  int       `json:"stayDuration"`
	RoomCharges   float64   `json:"roomCharges"`
	FoodCharges   float64   `json:"foodCharges"`
	Subtotal      float64   `json:"subtotal"`
	GST           float64   `gorm:"column:gst" json:"gst"`
	TotalBill     float64   `json:"totalBill"`
	PaymentStatus string    `gorm:"type:varchar(16);not null;default:'Pending'" json:"paymentStatus"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
