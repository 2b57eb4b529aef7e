package meal

import (
	"Meal-Tracker-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		// WithTx returns a repository bound to an open transaction, so meal
		// creation can join another writer's transaction boundary.
		WithTx(tx *gorm.DB) MealRepository

		CreateMealWithItems(ctx context.Context, meal *entities.Meal, items []*entities.MealItem) error
		GetMealByID(ctx context.Context, id string) (*entities.Meal, error)
		GetMealByName(ctx context.Context, name string) (*entities.Meal, error)
		GetBrowsableMeals(ctx context.Context) ([]*entities.Meal, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) WithTx(tx *gorm.DB) MealRepository {
	return &mealRepository{db: tx}
}

func (r *mealRepository) CreateMealWithItems(ctx context.Context, meal *entities.Meal, items []*entities.MealItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).
		Preload("Items.Food").
		Where("id = ?", id).
		First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) GetMealByName(ctx context.Context, name string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) GetBrowsableMeals(ctx context.Context) ([]*entities.Meal, error) {
	var meals []*entities.Meal
	if err := r.db.WithContext(ctx).
		Preload("Items.Food").
		Where("description IS NOT NULL AND description != ''").
		Order("name ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
