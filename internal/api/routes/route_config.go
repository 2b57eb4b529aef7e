package routes

import (
	"Meal-Tracker-API/internal/api/handlers"
	"Meal-Tracker-API/internal/middleware"
	"Meal-Tracker-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	FoodHandler    handlers.FoodHandler
	MealHandler    handlers.MealHandler
	MealLogHandler handlers.MealLogHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Health()
	c.Auth()
	c.Foods()
	c.Meals()
	c.MealLog()
}

func (c *Config) Health() {
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/foods", c.Middleware.AuthMiddleware(c.JWTService))

	foods.Get("", c.FoodHandler.GetFoods)
	foods.Get("/search", c.FoodHandler.SearchFoods)
	foods.Get("/:id", c.FoodHandler.GetFoodDetails)
	foods.Post("", c.FoodHandler.CreateFood)
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/meals", c.Middleware.AuthMiddleware(c.JWTService))

	meals.Get("", c.MealHandler.GetMeals)
	meals.Get("/:id", c.MealHandler.GetMealDetails)
	meals.Post("", c.MealHandler.CreateMeal)
}

func (c *Config) MealLog() {
	log := c.App.Group("/api/log", c.Middleware.AuthMiddleware(c.JWTService))

	log.Get("", c.MealLogHandler.GetDailyLog)
	log.Get("/dates", c.MealLogHandler.GetLogDates)
	log.Get("/:id", c.MealLogHandler.GetLogEntry)
	log.Post("", c.MealLogHandler.UpsertLog)
	log.Delete("/:id", c.MealLogHandler.DeleteLogEntry)
}
