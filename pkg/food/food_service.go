package food

import (
	"Meal-Tracker-API/domain"
	"Meal-Tracker-API/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const searchLimit = 20

type (
	FoodService interface {
		CreateFood(ctx context.Context, req domain.CreateFoodRequest) (domain.FoodResponse, error)
		GetFoods(ctx context.Context) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error)
		SearchFoods(ctx context.Context, q string) ([]domain.FoodResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) CreateFood(ctx context.Context, req domain.CreateFoodRequest) (domain.FoodResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FoodResponse{}, domain.ErrFoodNameRequired
	}
	if req.Calories == nil || *req.Calories < 0 {
		return domain.FoodResponse{}, domain.ErrInvalidCalories
	}

	if _, err := s.foodRepository.GetFoodByName(ctx, name); err == nil {
		return domain.FoodResponse{}, domain.ErrFoodNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FoodResponse{}, err
	}

	food := &entities.Food{
		ID:       uuid.New(),
		Name:     name,
		Calories: *req.Calories,
	}

	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return domain.FoodResponse{
		ID:       food.ID.String(),
		Name:     food.Name,
		Calories: food.Calories,
	}, nil
}

func (s *foodService) GetFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.FoodResponse{}, domain.ErrFoodNotFound
	}

	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	return domain.FoodResponse{
		ID:       food.ID.String(),
		Name:     food.Name,
		Calories: food.Calories,
	}, nil
}

func (s *foodService) SearchFoods(ctx context.Context, q string) ([]domain.FoodResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []domain.FoodResponse{}, nil
	}

	foods, err := s.foodRepository.SearchFoods(ctx, q, searchLimit)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func toFoodResponses(foods []*entities.Food) []domain.FoodResponse {
	response := make([]domain.FoodResponse, 0, len(foods))
	for _, f := range foods {
		response = append(response, domain.FoodResponse{
			ID:       f.ID.String(),
			Name:     f.Name,
			Calories: f.Calories,
		})
	}
	return response
}
