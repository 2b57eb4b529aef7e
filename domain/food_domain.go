package domain

import (
	"errors"
)

var (
	MessageSuccessCreateFood = "food created successfully"
	MessageSuccessGetFoods   = "foods retrieved successfully"
	MessageSuccessGetFood    = "food retrieved successfully"

	MessageFailedCreateFood = "failed to create food"
	MessageFailedGetFoods   = "failed to retrieve foods"
	MessageFailedGetFood    = "failed to retrieve food"

	ErrFoodNameRequired = errors.New("food name is required")
	ErrInvalidCalories  = errors.New("calories must be a non-negative number")
	ErrFoodNameTaken    = errors.New("food with this name already exists")
	ErrFoodNotFound     = errors.New("food not found")
)

type (
	CreateFoodRequest struct {
		Name     string `json:"name" validate:"required"`
		Calories *int   `json:"calories" validate:"required,min=0"`
	}

	FoodResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Calories int    `json:"calories"`
	}
)
