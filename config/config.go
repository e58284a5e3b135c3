package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Billing constants. GST applies to the customer ledger; the service
// charge applies only to the public ordering flow's own total.
const (
	GSTRate           = 0.18
	ServiceChargeRate = 0.05
)

// RoomTypeOption is one entry of the fixed room-type catalog served
// to the booking flow.
type RoomTypeOption struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	MaxRooms int     `json:"max"`
}

// RoomTypeCatalog is the hotel's fixed offering. Prices here drive the
// public booking page; actual per-room prices live on the Room records.
var RoomTypeCatalog = []RoomTypeOption{
	{Key: "single", Name: "Single Bed Room", Price: 2500, MaxRooms: 12},
	{Key: "double", Name: "Double Bed Room", Price: 4000, MaxRooms: 8},
	{Key: "triple", Name: "Triple Bed Room", Price: 5500, MaxRooms: 6},
	{Key: "dormitory", Name: "Dormitory Bed", Price: 1200, MaxRooms: 20},
}

// InitDB opens the in-memory database backing the state store. State
// lives only for the lifetime of the process; every start begins from
// seed data.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("STORE_DSN")
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}
