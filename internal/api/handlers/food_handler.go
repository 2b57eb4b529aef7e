package handlers

import (
	"Meal-Tracker-API/domain"
	"Meal-Tracker-API/internal/api/presenters"
	"Meal-Tracker-API/pkg/food"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		CreateFood(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetFoodDetails(c *fiber.Ctx) error
		SearchFoods(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) CreateFood(c *fiber.Ctx) error {
	req := new(domain.CreateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFood, err)
	}

	res, err := h.foodService.CreateFood(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNameTaken) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateFood, err)
		}
		if errors.Is(err, domain.ErrFoodNameRequired) || errors.Is(err, domain.ErrInvalidCalories) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFood)
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodDetails(c *fiber.Ctx) error {
	foodID := c.Params("id")

	res, err := h.foodService.GetFoodByID(c.Context(), foodID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFood)
}

func (h *foodHandler) SearchFoods(c *fiber.Ctx) error {
	q := c.Query("q", "")

	foods, err := h.foodService.SearchFoods(c.Context(), q)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}
