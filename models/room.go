package models

import "time"

// Room availability states. A room is never deleted; it only moves
// between these states.
const (
	RoomAvailable   = "Available"
	RoomBooked      = "Booked"
	RoomMaintenance = "Maintenance"
)

// Room types offered by the hotel.
const (
	RoomTypeSingle    = "Single"
	RoomTypeDouble    = "Double"
	RoomTypeTriple    = "Triple"
	RoomTypeDormitory = "Dormitory"
)

type Room struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RoomNo       string    `gorm:"type:varchar(10);not null;index" json:"roomNo"`
	Type         string    `gorm:"type:varchar(20);not null" json:"type"`
	Price        float64   `gorm:"not null" json:"price"`
	Availability string    `gorm:"type:varchar(20);not null;default:'Available'" json:"availability"`
	Image        string    `gorm:"type:text" json:"image"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
