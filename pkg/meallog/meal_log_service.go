package meallog

import (
	"Meal-Tracker-API/domain"
	"Meal-Tracker-API/entities"
	"Meal-Tracker-API/pkg/meal"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealLogService interface {
		UpsertLogEntry(ctx context.Context, req domain.UpsertLogRequest, userID string) (domain.LogEntryResponse, error)
		GetDailyLog(ctx context.Context, userID string, date string) (domain.DailyLogResponse, error)
		GetLogEntry(ctx context.Context, logID string, userID string) (domain.LogEntryResponse, error)
		DeleteLogEntry(ctx context.Context, logID string, userID string) error
		GetLogDates(ctx context.Context, userID string) (domain.LogDatesResponse, error)
	}

	mealLogService struct {
		mealLogRepository MealLogRepository
		mealRepository    meal.MealRepository
		location          *time.Location
	}

	logItemInput struct {
		foodID   uuid.UUID
		quantity float64
	}
)

func NewMealLogService(mealLogRepository MealLogRepository, mealRepository meal.MealRepository, location *time.Location) MealLogService {
	return &mealLogService{
		mealLogRepository: mealLogRepository,
		mealRepository:    mealRepository,
		location:          location,
	}
}

// Today returns the current date in the configured reference timezone. The
// zone is a business rule: every user shares one canonical day boundary.
func (s *mealLogService) Today() string {
	return time.Now().In(s.location).Format(domain.MealDateLayout)
}

func (s *mealLogService) UpsertLogEntry(ctx context.Context, req domain.UpsertLogRequest, userID string) (domain.LogEntryResponse, error) {
	mealType := strings.TrimSpace(req.MealType)
	if !domain.IsValidMealType(mealType) {
		return domain.LogEntryResponse{}, domain.ErrInvalidMealType
	}

	mealDate := req.MealDate
	if mealDate == "" {
		mealDate = s.Today()
	}
	if _, err := time.Parse(domain.MealDateLayout, mealDate); err != nil {
		return domain.LogEntryResponse{}, domain.ErrInvalidMealDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.LogEntryResponse{}, domain.ErrParseUUID
	}

	mealName := strings.TrimSpace(req.MealName)

	// Items without a food id are skipped on purpose, not rejected.
	inputs := make([]logItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		if item.FoodID == "" {
			continue
		}
		foodID, err := uuid.Parse(item.FoodID)
		if err != nil {
			return domain.LogEntryResponse{}, domain.ErrParseUUID
		}
		quantity := 1.0
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		inputs = append(inputs, logItemInput{foodID: foodID, quantity: quantity})
	}

	var logID uuid.UUID

	err = s.mealLogRepository.Transaction(ctx, func(tx *gorm.DB) error {
		logs := s.mealLogRepository.WithTx(tx)
		meals := s.mealRepository.WithTx(tx)

		// Phase one: resolve the named template, creating an ad hoc one
		// (no description) that also takes a copy of the supplied items.
		// An existing template is only referenced; its own items stay as
		// they are and the request items remain authoritative for the log.
		var mealID *uuid.UUID
		if mealName != "" {
			existing, err := meals.GetMealByName(ctx, mealName)
			switch {
			case err == nil:
				mealID = &existing.ID
			case errors.Is(err, gorm.ErrRecordNotFound):
				adHoc := &entities.Meal{
					ID:   uuid.New(),
					Name: mealName,
				}
				templateItems := make([]*entities.MealItem, 0, len(inputs))
				for _, in := range inputs {
					templateItems = append(templateItems, &entities.MealItem{
						ID:       uuid.New(),
						MealID:   adHoc.ID,
						FoodID:   in.foodID,
						Quantity: in.quantity,
					})
				}
				if err := meals.CreateMealWithItems(ctx, adHoc, templateItems); err != nil {
					return err
				}
				mealID = &adHoc.ID
			default:
				return err
			}
		}

		// Phase two: find-or-create the slot entry. An existing entry keeps
		// its id, gets the new template reference and a fresh timestamp, and
		// loses all of its items before the new set goes in.
		existingLog, err := logs.GetLogBySlot(ctx, userUUID, mealDate, mealType)
		switch {
		case err == nil:
			existingLog.MealID = mealID
			if err := logs.UpdateLog(ctx, existingLog); err != nil {
				return err
			}
			if err := logs.DeleteLogItems(ctx, existingLog.ID); err != nil {
				return err
			}
			logID = existingLog.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			newLog := &entities.MealLog{
				ID:       uuid.New(),
				UserID:   userUUID,
				MealDate: mealDate,
				MealType: mealType,
				MealID:   mealID,
			}
			if err := logs.CreateLog(ctx, newLog); err != nil {
				return err
			}
			logID = newLog.ID
		default:
			return err
		}

		logItems := make([]*entities.MealLogItem, 0, len(inputs))
		for _, in := range inputs {
			logItems = append(logItems, &entities.MealLogItem{
				ID:       uuid.New(),
				LogID:    logID,
				FoodID:   in.foodID,
				Quantity: in.quantity,
			})
		}
		return logs.CreateLogItems(ctx, logItems)
	})
	if err != nil {
		return domain.LogEntryResponse{}, err
	}

	log, err := s.mealLogRepository.GetLogByID(ctx, logID.String())
	if err != nil {
		return domain.LogEntryResponse{}, err
	}
	return toLogEntryResponse(log), nil
}

func (s *mealLogService) GetDailyLog(ctx context.Context, userID string, date string) (domain.DailyLogResponse, error) {
	if date == "" {
		date = s.Today()
	}
	if _, err := time.Parse(domain.MealDateLayout, date); err != nil {
		return domain.DailyLogResponse{}, domain.ErrInvalidMealDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DailyLogResponse{}, domain.ErrParseUUID
	}

	logs, err := s.mealLogRepository.GetLogsForDate(ctx, userUUID, date)
	if err != nil {
		return domain.DailyLogResponse{}, err
	}

	logsByType := make(map[string]*entities.MealLog, len(logs))
	for _, log := range logs {
		logsByType[log.MealType] = log
	}

	// Every slot is always present in canonical order; absent slots get an
	// explicit empty placeholder, never a missing key.
	meals := make(map[string]domain.DailySlotResponse, len(domain.MealTypes))
	totalCalories := 0

	for _, mealType := range domain.MealTypes {
		log, ok := logsByType[mealType]
		if !ok {
			meals[mealType] = domain.DailySlotResponse{
				LogID:    nil,
				MealName: nil,
				Items:    []domain.LogItemResponse{},
				Calories: 0,
			}
			continue
		}

		items := toLogItemResponses(log.Items)
		calories := SumItemCalories(items)
		totalCalories += calories

		logIDStr := log.ID.String()
		meals[mealType] = domain.DailySlotResponse{
			LogID:    &logIDStr,
			MealName: mealNameOf(log),
			Items:    items,
			Calories: calories,
		}
	}

	return domain.DailyLogResponse{
		Date:          date,
		TotalCalories: totalCalories,
		Meals:         meals,
	}, nil
}

func (s *mealLogService) GetLogEntry(ctx context.Context, logID string, userID string) (domain.LogEntryResponse, error) {
	log, err := s.findOwnedLog(ctx, logID, userID)
	if err != nil {
		return domain.LogEntryResponse{}, err
	}
	return toLogEntryResponse(log), nil
}

func (s *mealLogService) DeleteLogEntry(ctx context.Context, logID string, userID string) error {
	log, err := s.findOwnedLog(ctx, logID, userID)
	if err != nil {
		return err
	}
	return s.mealLogRepository.DeleteLog(ctx, log.ID)
}

func (s *mealLogService) GetLogDates(ctx context.Context, userID string) (domain.LogDatesResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.LogDatesResponse{}, domain.ErrParseUUID
	}

	dates, err := s.mealLogRepository.GetLogDates(ctx, userUUID)
	if err != nil {
		return domain.LogDatesResponse{}, err
	}
	if dates == nil {
		dates = []string{}
	}
	return domain.LogDatesResponse{Dates: dates}, nil
}

// findOwnedLog resolves the entry and checks ownership. Not-found and
// not-yours are distinct outcomes; callers may collapse them at the
// transport boundary but the service never does.
func (s *mealLogService) findOwnedLog(ctx context.Context, logID string, userID string) (*entities.MealLog, error) {
	if _, err := uuid.Parse(logID); err != nil {
		return nil, domain.ErrLogEntryNotFound
	}

	log, err := s.mealLogRepository.GetLogByID(ctx, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLogEntryNotFound
		}
		return nil, err
	}

	if log.UserID.String() != userID {
		return nil, domain.ErrLogAccessDenied
	}
	return log, nil
}

func mealNameOf(log *entities.MealLog) *string {
	if log.Meal == nil {
		return nil
	}
	name := log.Meal.Name
	return &name
}

func toLogItemResponses(items []*entities.MealLogItem) []domain.LogItemResponse {
	response := make([]domain.LogItemResponse, 0, len(items))
	for _, item := range items {
		res := domain.LogItemResponse{
			ID:       item.ID.String(),
			FoodID:   item.FoodID.String(),
			Quantity: item.Quantity,
		}
		if item.Food != nil {
			res.FoodName = item.Food.Name
			res.Calories = item.Food.Calories
		}
		response = append(response, res)
	}
	return response
}

func toLogEntryResponse(log *entities.MealLog) domain.LogEntryResponse {
	items := toLogItemResponses(log.Items)

	var mealID *string
	if log.MealID != nil {
		id := log.MealID.String()
		mealID = &id
	}

	return domain.LogEntryResponse{
		ID:            log.ID.String(),
		MealDate:      log.MealDate,
		MealType:      log.MealType,
		MealID:        mealID,
		MealName:      mealNameOf(log),
		Items:         items,
		TotalCalories: SumItemCalories(items),
	}
}
