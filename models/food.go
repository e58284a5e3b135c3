package models

import "time"

// Fixed menu category keys. Categories are seeded once and are not
// creatable or deletable at runtime.
const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
)

type FoodCategory struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	Key       string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"key"`
	Name      string     `gorm:"type:varchar(50);not null" json:"name"`
	TimeLabel string     `gorm:"type:varchar(50)" json:"time"`
	Items     []FoodItem `gorm:"foreignKey:CategoryKey;references:Key" json:"items"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// FoodItem ids are category-prefixed slugs; runtime-created items get a
// timestamp suffix instead of a slug. Price is whole rupees.
type FoodItem struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CategoryKey string    `gorm:"type:varchar(20);not null;index" json:"-"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"desc"`
	Price       int       `gorm:"not null" json:"price"`
	Image       string    `gorm:"type:text" json:"img"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
