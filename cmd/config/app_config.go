package config

import (
	"Meal-Tracker-API/internal/api/handlers"
	"Meal-Tracker-API/internal/api/routes"
	"Meal-Tracker-API/internal/middleware"
	"Meal-Tracker-API/internal/utils"
	"Meal-Tracker-API/pkg/food"
	"Meal-Tracker-API/pkg/jwt"
	"Meal-Tracker-API/pkg/meal"
	"Meal-Tracker-API/pkg/meallog"
	"Meal-Tracker-API/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("LOG_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// The meal log pins "today" to one reference timezone for every user.
	location, err := time.LoadLocation(utils.GetConfig("LOG_TIMEZONE"))
	if err != nil {
		log.Fatalf("error loading log timezone: %v", err)
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	mealRepository := meal.NewMealRepository(db)
	mealLogRepository := meallog.NewMealLogRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository)
	mealService := meal.NewMealService(mealRepository)
	mealLogService := meallog.NewMealLogService(mealLogRepository, mealRepository, location)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	mealLogHandler := handlers.NewMealLogHandler(mealLogService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		FoodHandler:    foodHandler,
		MealHandler:    mealHandler,
		MealLogHandler: mealLogHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
