package entities

import (
	"github.com/google/uuid"
)

// MealLog is one logged meal for a user on a date. The composite unique
// index keeps at most one row per (user, date, meal type).
type MealLog struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_meal_log_user_date_type" json:"user_id"`
	MealDate string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_meal_log_user_date_type" json:"meal_date"`
	MealType string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_meal_log_user_date_type" json:"meal_type"`
	MealID   *uuid.UUID `gorm:"type:uuid" json:"meal_id,omitempty"`

	User  *User          `gorm:"foreignKey:UserID"`
	Meal  *Meal          `gorm:"foreignKey:MealID"`
	Items []*MealLogItem `gorm:"foreignKey:LogID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// MealLogItem rows are snapshots owned by their log entry. They are copied
// from the request at write time, never derived from the template, so later
// template edits do not rewrite history.
type MealLogItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LogID    uuid.UUID `gorm:"type:uuid;not null;index" json:"log_id"`
	FoodID   uuid.UUID `gorm:"type:uuid;not null" json:"food_id"`
	Quantity float64   `gorm:"not null;default:1" json:"quantity"`

	Food *Food `gorm:"foreignKey:FoodID"`
	Timestamp
}
