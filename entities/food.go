package entities

import (
	"github.com/google/uuid"
)

type Food struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Calories int       `gorm:"not null" json:"calories"` // kcal per unit

	Timestamp
}
