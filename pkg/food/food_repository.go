package food

import (
	"Meal-Tracker-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		GetFoodByName(ctx context.Context, name string) (*entities.Food, error)
		GetFoods(ctx context.Context) ([]*entities.Food, error)
		SearchFoods(ctx context.Context, q string, limit int) ([]*entities.Food, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoodByName(ctx context.Context, name string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) SearchFoods(ctx context.Context, q string, limit int) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+q+"%").
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
