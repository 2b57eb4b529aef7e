package handlers

import (
	"Meal-Tracker-API/domain"
	"Meal-Tracker-API/internal/api/presenters"
	"Meal-Tracker-API/pkg/meal"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		CreateMeal(c *fiber.Ctx) error
		GetMeals(c *fiber.Ctx) error
		GetMealDetails(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) CreateMeal(c *fiber.Ctx) error {
	req := new(domain.CreateMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMeal, err)
	}

	res, err := h.mealService.CreateMeal(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrMealNameTaken) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateMeal, err)
		}
		if errors.Is(err, domain.ErrMealNameRequired) || errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMeal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMeal)
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	meals, err := h.mealService.GetMeals(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, meals, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) GetMealDetails(c *fiber.Ctx) error {
	mealID := c.Params("id")

	res, err := h.mealService.GetMealByID(c.Context(), mealID)
	if err != nil {
		if errors.Is(err, domain.ErrMealNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMeal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeal)
}
