package domain

import (
	"errors"
)

// MealTypes is the fixed set of daily meal slots. The order is canonical:
// it drives display and the slot iteration order of the daily log.
var MealTypes = []string{
	"breakfast",
	"morning_snack",
	"lunch",
	"afternoon_snack",
	"dinner",
	"evening_snack",
}

func IsValidMealType(mealType string) bool {
	for _, t := range MealTypes {
		if t == mealType {
			return true
		}
	}
	return false
}

const MealDateLayout = "2006-01-02"

var (
	MessageSuccessGetDailyLog = "daily log retrieved successfully"
	MessageSuccessGetLogDates = "log dates retrieved successfully"
	MessageSuccessGetLogEntry = "log entry retrieved successfully"
	MessageSuccessUpsertLog   = "meal logged successfully"
	MessageSuccessDeleteLog   = "log entry deleted successfully"

	MessageFailedGetDailyLog = "failed to retrieve daily log"
	MessageFailedGetLogDates = "failed to retrieve log dates"
	MessageFailedGetLogEntry = "failed to retrieve log entry"
	MessageFailedUpsertLog   = "failed to log meal"
	MessageFailedDeleteLog   = "failed to delete log entry"

	ErrInvalidMealType  = errors.New("invalid meal type")
	ErrInvalidMealDate  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrLogEntryNotFound = errors.New("log entry not found")
	ErrLogAccessDenied  = errors.New("not authorized to access this log entry")
)

type (
	LogItemRequest struct {
		FoodID   string   `json:"food_id" validate:"omitempty,uuid"`
		Quantity *float64 `json:"quantity" validate:"omitempty"`
	}

	UpsertLogRequest struct {
		MealType string           `json:"meal_type" validate:"required"`
		MealDate string           `json:"meal_date" validate:"omitempty"`
		MealName string           `json:"meal_name" validate:"omitempty"`
		Items    []LogItemRequest `json:"items" validate:"omitempty,dive"`
	}

	LogItemResponse struct {
		ID       string  `json:"id"`
		FoodID   string  `json:"food_id"`
		FoodName string  `json:"food_name"`
		Calories int     `json:"calories"`
		Quantity float64 `json:"quantity"`
	}

	LogEntryResponse struct {
		ID            string            `json:"id"`
		MealDate      string            `json:"meal_date"`
		MealType      string            `json:"meal_type"`
		MealID        *string           `json:"meal_id"`
		MealName      *string           `json:"meal_name"`
		Items         []LogItemResponse `json:"items"`
		TotalCalories int               `json:"total_calories"`
	}

	DailySlotResponse struct {
		LogID    *string           `json:"log_id"`
		MealName *string           `json:"meal_name"`
		Items    []LogItemResponse `json:"items"`
		Calories int               `json:"calories"`
	}

	DailyLogResponse struct {
		Date          string                       `json:"date"`
		TotalCalories int                          `json:"total_calories"`
		Meals         map[string]DailySlotResponse `json:"meals"`
	}

	LogDatesResponse struct {
		Dates []string `json:"dates"`
	}

	DeleteLogResponse struct {
		Success bool `json:"success"`
	}
)
