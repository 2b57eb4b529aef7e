package meallog

import (
	"Meal-Tracker-API/domain"
)

// ItemCalories converts one log line to display calories. The float product
// is truncated toward zero, not rounded; totals are built from the truncated
// per-item values.
func ItemCalories(caloriesPerUnit int, quantity float64) int {
	return int(float64(caloriesPerUnit) * quantity)
}

func SumItemCalories(items []domain.LogItemResponse) int {
	total := 0
	for _, item := range items {
		total += ItemCalories(item.Calories, item.Quantity)
	}
	return total
}
