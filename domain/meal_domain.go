package domain

import (
	"errors"
)

var (
	MessageSuccessCreateMeal = "meal created successfully"
	MessageSuccessGetMeals   = "meals retrieved successfully"
	MessageSuccessGetMeal    = "meal retrieved successfully"

	MessageFailedCreateMeal = "failed to create meal"
	MessageFailedGetMeals   = "failed to retrieve meals"
	MessageFailedGetMeal    = "failed to retrieve meal"

	ErrMealNameRequired = errors.New("meal name is required")
	ErrMealNameTaken    = errors.New("meal with this name already exists")
	ErrMealNotFound     = errors.New("meal not found")
)

type (
	MealItemRequest struct {
		FoodID   string   `json:"food_id" validate:"omitempty,uuid"`
		Quantity *float64 `json:"quantity" validate:"omitempty"`
	}

	CreateMealRequest struct {
		Name        string            `json:"name" validate:"required"`
		Description string            `json:"description" validate:"omitempty"`
		Items       []MealItemRequest `json:"items" validate:"omitempty,dive"`
	}

	MealItemResponse struct {
		ID       string  `json:"id"`
		FoodID   string  `json:"food_id"`
		FoodName string  `json:"food_name"`
		Calories int     `json:"calories"`
		Quantity float64 `json:"quantity"`
	}

	MealResponse struct {
		ID            string             `json:"id"`
		Name          string             `json:"name"`
		Description   *string            `json:"description"`
		Items         []MealItemResponse `json:"items"`
		TotalCalories int                `json:"total_calories"`
	}
)
