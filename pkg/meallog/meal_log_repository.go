package meallog

import (
	"Meal-Tracker-API/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealLogRepository interface {
		// WithTx returns a repository bound to an open transaction.
		WithTx(tx *gorm.DB) MealLogRepository
		// Transaction runs fn atomically; any error rolls the whole unit back.
		Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error

		CreateLog(ctx context.Context, log *entities.MealLog) error
		UpdateLog(ctx context.Context, log *entities.MealLog) error
		GetLogByID(ctx context.Context, id string) (*entities.MealLog, error)
		GetLogBySlot(ctx context.Context, userID uuid.UUID, mealDate, mealType string) (*entities.MealLog, error)
		GetLogsForDate(ctx context.Context, userID uuid.UUID, mealDate string) ([]*entities.MealLog, error)
		GetLogDates(ctx context.Context, userID uuid.UUID) ([]string, error)
		DeleteLog(ctx context.Context, logID uuid.UUID) error

		CreateLogItems(ctx context.Context, items []*entities.MealLogItem) error
		DeleteLogItems(ctx context.Context, logID uuid.UUID) error
	}

	mealLogRepository struct {
		db *gorm.DB
	}
)

func NewMealLogRepository(db *gorm.DB) MealLogRepository {
	return &mealLogRepository{db: db}
}

func (r *mealLogRepository) WithTx(tx *gorm.DB) MealLogRepository {
	return &mealLogRepository{db: tx}
}

func (r *mealLogRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *mealLogRepository) CreateLog(ctx context.Context, log *entities.MealLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *mealLogRepository) UpdateLog(ctx context.Context, log *entities.MealLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *mealLogRepository) GetLogByID(ctx context.Context, id string) (*entities.MealLog, error) {
	var log entities.MealLog
	if err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Items.Food").
		Where("id = ?", id).
		First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *mealLogRepository) GetLogBySlot(ctx context.Context, userID uuid.UUID, mealDate, mealType string) (*entities.MealLog, error) {
	var log entities.MealLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND meal_date = ? AND meal_type = ?", userID, mealDate, mealType).
		First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *mealLogRepository) GetLogsForDate(ctx context.Context, userID uuid.UUID, mealDate string) ([]*entities.MealLog, error) {
	var logs []*entities.MealLog
	if err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Items.Food").
		Where("user_id = ? AND meal_date = ?", userID, mealDate).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *mealLogRepository) GetLogDates(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var dates []string
	if err := r.db.WithContext(ctx).
		Model(&entities.MealLog{}).
		Distinct("meal_date").
		Where("user_id = ?", userID).
		Order("meal_date ASC").
		Pluck("meal_date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

// DeleteLog removes the entry and its items in one transaction, mirroring the
// ON DELETE CASCADE constraint so no orphan item rows survive on any backend.
func (r *mealLogRepository) DeleteLog(ctx context.Context, logID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("log_id = ?", logID).Delete(&entities.MealLogItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", logID).Delete(&entities.MealLog{}).Error
	})
}

func (r *mealLogRepository) CreateLogItems(ctx context.Context, items []*entities.MealLogItem) error {
	for _, item := range items {
		if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *mealLogRepository) DeleteLogItems(ctx context.Context, logID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("log_id = ?", logID).Delete(&entities.MealLogItem{}).Error
}
