package entities

import (
	"github.com/google/uuid"
)

// Meal is a reusable named composition of foods. A meal without a
// description is an ad hoc template created while logging and is hidden
// from the browsable listing.
type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`

	Items []*MealItem `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type MealItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MealID   uuid.UUID `gorm:"type:uuid;not null;index" json:"meal_id"`
	FoodID   uuid.UUID `gorm:"type:uuid;not null" json:"food_id"`
	Quantity float64   `gorm:"not null;default:1" json:"quantity"`

	Food *Food `gorm:"foreignKey:FoodID"`
	Timestamp
}
