package models

import "time"

// Order is a room-service food order. RoomNo is a loose matching key:
// every order placed against a room number counts toward the bill of
// the customer currently holding that number.
type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RoomNo       string    `gorm:"type:varchar(10);not null;index" json:"roomNo"`
	CustomerName string    `gorm:"type:varchar(255)" json:"customerName"`
	FoodItems    string    `gorm:"type:text" json:"foodItems"`
	Quantity     int       `gorm:"not null;default:1" json:"quantity"`
	Date         string    `gorm:"type:varchar(10)" json:"date"`
	TotalAmount  float64   `gorm:"not null" json:"totalAmount"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
