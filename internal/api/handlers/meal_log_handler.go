package handlers

import (
	"Meal-Tracker-API/domain"
	"Meal-Tracker-API/internal/api/presenters"
	"Meal-Tracker-API/pkg/meallog"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealLogHandler interface {
		UpsertLog(c *fiber.Ctx) error
		GetDailyLog(c *fiber.Ctx) error
		GetLogDates(c *fiber.Ctx) error
		GetLogEntry(c *fiber.Ctx) error
		DeleteLogEntry(c *fiber.Ctx) error
	}

	mealLogHandler struct {
		mealLogService meallog.MealLogService
		validator      *validator.Validate
	}
)

func NewMealLogHandler(mealLogService meallog.MealLogService, validator *validator.Validate) MealLogHandler {
	return &mealLogHandler{
		mealLogService: mealLogService,
		validator:      validator,
	}
}

func (h *mealLogHandler) UpsertLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpsertLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertLog, err)
	}

	res, err := h.mealLogService.UpsertLogEntry(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMealType) ||
			errors.Is(err, domain.ErrInvalidMealDate) ||
			errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertLog, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpsertLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUpsertLog)
}

func (h *mealLogHandler) GetDailyLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	date := c.Query("date", "")

	res, err := h.mealLogService.GetDailyLog(c.Context(), userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMealDate) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailyLog, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDailyLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDailyLog)
}

func (h *mealLogHandler) GetLogDates(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealLogService.GetLogDates(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLogDates, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLogDates)
}

func (h *mealLogHandler) GetLogEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")

	res, err := h.mealLogService.GetLogEntry(c.Context(), logID, userID)
	if err != nil {
		return h.logEntryError(c, domain.MessageFailedGetLogEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLogEntry)
}

func (h *mealLogHandler) DeleteLogEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")

	if err := h.mealLogService.DeleteLogEntry(c.Context(), logID, userID); err != nil {
		return h.logEntryError(c, domain.MessageFailedDeleteLog, err)
	}

	return presenters.SuccessResponse(c, domain.DeleteLogResponse{Success: true}, fiber.StatusOK, domain.MessageSuccessDeleteLog)
}

func (h *mealLogHandler) logEntryError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrLogEntryNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrLogAccessDenied):
		return presenters.ErrorResponse(c, fiber.StatusForbidden, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
	}
}
