package meal

import (
	"Meal-Tracker-API/domain"
	"Meal-Tracker-API/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealService interface {
		CreateMeal(ctx context.Context, req domain.CreateMealRequest) (domain.MealResponse, error)
		GetMeals(ctx context.Context) ([]domain.MealResponse, error)
		GetMealByID(ctx context.Context, id string) (domain.MealResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
	}
)

func NewMealService(mealRepository MealRepository) MealService {
	return &mealService{mealRepository: mealRepository}
}

func (s *mealService) CreateMeal(ctx context.Context, req domain.CreateMealRequest) (domain.MealResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.MealResponse{}, domain.ErrMealNameRequired
	}

	if _, err := s.mealRepository.GetMealByName(ctx, name); err == nil {
		return domain.MealResponse{}, domain.ErrMealNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.MealResponse{}, err
	}

	var description *string
	if d := strings.TrimSpace(req.Description); d != "" {
		description = &d
	}

	meal := &entities.Meal{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}

	var items []*entities.MealItem
	for _, item := range req.Items {
		if item.FoodID == "" {
			continue
		}
		foodID, err := uuid.Parse(item.FoodID)
		if err != nil {
			return domain.MealResponse{}, domain.ErrParseUUID
		}
		quantity := 1.0
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		items = append(items, &entities.MealItem{
			ID:       uuid.New(),
			MealID:   meal.ID,
			FoodID:   foodID,
			Quantity: quantity,
		})
	}

	if err := s.mealRepository.CreateMealWithItems(ctx, meal, items); err != nil {
		return domain.MealResponse{}, err
	}

	return s.GetMealByID(ctx, meal.ID.String())
}

func (s *mealService) GetMeals(ctx context.Context) ([]domain.MealResponse, error) {
	meals, err := s.mealRepository.GetBrowsableMeals(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		response = append(response, toMealResponse(m))
	}
	return response, nil
}

func (s *mealService) GetMealByID(ctx context.Context, id string) (domain.MealResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.MealResponse{}, domain.ErrMealNotFound
	}

	meal, err := s.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealResponse{}, domain.ErrMealNotFound
		}
		return domain.MealResponse{}, err
	}
	return toMealResponse(meal), nil
}

func toMealResponse(meal *entities.Meal) domain.MealResponse {
	items := make([]domain.MealItemResponse, 0, len(meal.Items))
	total := 0
	for _, item := range meal.Items {
		res := domain.MealItemResponse{
			ID:       item.ID.String(),
			FoodID:   item.FoodID.String(),
			Quantity: item.Quantity,
		}
		if item.Food != nil {
			res.FoodName = item.Food.Name
			res.Calories = item.Food.Calories
			total += int(float64(item.Food.Calories) * item.Quantity)
		}
		items = append(items, res)
	}

	return domain.MealResponse{
		ID:            meal.ID.String(),
		Name:          meal.Name,
		Description:   meal.Description,
		Items:         items,
		TotalCalories: total,
	}
}
