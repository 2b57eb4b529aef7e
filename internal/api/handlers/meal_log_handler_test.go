package handlers

import (
	"Meal-Tracker-API/domain"
	"Meal-Tracker-API/entities"
	"Meal-Tracker-API/pkg/meal"
	"Meal-Tracker-API/pkg/meallog"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type logTestEnv struct {
	app    *fiber.App
	db     *gorm.DB
	userID uuid.UUID
	other  uuid.UUID
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// newLogTestEnv wires the real service against an in-memory database and a
// stub auth layer that trusts the X-User-ID header.
func newLogTestEnv(t *testing.T) *logTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Food{},
		&entities.Meal{},
		&entities.MealItem{},
		&entities.MealLog{},
		&entities.MealLogItem{},
	))

	userID := uuid.New()
	other := uuid.New()
	require.NoError(t, db.Create(&entities.User{ID: userID, Username: "alice", PasswordHash: "x"}).Error)
	require.NoError(t, db.Create(&entities.User{ID: other, Username: "mallory", PasswordHash: "x"}).Error)

	mealRepository := meal.NewMealRepository(db)
	service := meallog.NewMealLogService(meallog.NewMealLogRepository(db), mealRepository, time.UTC)
	handler := NewMealLogHandler(service, validator.New())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", c.Get("X-User-ID"))
		c.Locals("role", domain.RoleUser)
		return c.Next()
	})

	log := app.Group("/api/log")
	log.Post("", handler.UpsertLog)
	log.Get("", handler.GetDailyLog)
	log.Get("/dates", handler.GetLogDates)
	log.Get("/:id", handler.GetLogEntry)
	log.Delete("/:id", handler.DeleteLogEntry)

	return &logTestEnv{app: app, db: db, userID: userID, other: other}
}

func (e *logTestEnv) createFood(t *testing.T, name string, calories int) uuid.UUID {
	t.Helper()
	food := &entities.Food{ID: uuid.New(), Name: name, Calories: calories}
	require.NoError(t, e.db.Create(food).Error)
	return food.ID
}

func (e *logTestEnv) request(t *testing.T, method, target string, body any, asUser uuid.UUID) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", asUser.String())

	res, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return res, env
}

func TestUpsertLogRoute(t *testing.T) {
	env := newLogTestEnv(t)
	food := env.createFood(t, "Oatmeal", 150)

	res, env_ := env.request(t, fiber.MethodPost, "/api/log", fiber.Map{
		"meal_type": "breakfast",
		"meal_date": "2024-01-01",
		"items":     []fiber.Map{{"food_id": food.String(), "quantity": 2}},
	}, env.userID)

	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	assert.True(t, env_.Status)

	var entry domain.LogEntryResponse
	require.NoError(t, json.Unmarshal(env_.Data, &entry))
	assert.Equal(t, "breakfast", entry.MealType)
	assert.Equal(t, 300, entry.TotalCalories)
}

func TestUpsertLogRoute_InvalidMealType(t *testing.T) {
	env := newLogTestEnv(t)

	res, env_ := env.request(t, fiber.MethodPost, "/api/log", fiber.Map{
		"meal_type": "brunch",
		"meal_date": "2024-01-01",
	}, env.userID)

	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.False(t, env_.Status)
	assert.Equal(t, domain.ErrInvalidMealType.Error(), env_.Error)
}

func TestGetDailyLogRoute(t *testing.T) {
	env := newLogTestEnv(t)
	food := env.createFood(t, "Salad", 120)

	_, _ = env.request(t, fiber.MethodPost, "/api/log", fiber.Map{
		"meal_type": "lunch",
		"meal_date": "2024-01-01",
		"items":     []fiber.Map{{"food_id": food.String()}},
	}, env.userID)

	res, env_ := env.request(t, fiber.MethodGet, "/api/log?date=2024-01-01", nil, env.userID)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var daily domain.DailyLogResponse
	require.NoError(t, json.Unmarshal(env_.Data, &daily))
	assert.Equal(t, "2024-01-01", daily.Date)
	assert.Equal(t, 120, daily.TotalCalories)
	assert.Len(t, daily.Meals, len(domain.MealTypes))
}

func TestGetLogEntryRoute_NotFoundAndForbidden(t *testing.T) {
	env := newLogTestEnv(t)
	food := env.createFood(t, "Pasta", 350)

	_, created := env.request(t, fiber.MethodPost, "/api/log", fiber.Map{
		"meal_type": "dinner",
		"meal_date": "2024-01-01",
		"items":     []fiber.Map{{"food_id": food.String()}},
	}, env.userID)

	var entry domain.LogEntryResponse
	require.NoError(t, json.Unmarshal(created.Data, &entry))

	res, _ := env.request(t, fiber.MethodGet, "/api/log/"+uuid.NewString(), nil, env.userID)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	res, _ = env.request(t, fiber.MethodGet, "/api/log/"+entry.ID, nil, env.other)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	res, _ = env.request(t, fiber.MethodGet, "/api/log/"+entry.ID, nil, env.userID)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestDeleteLogEntryRoute(t *testing.T) {
	env := newLogTestEnv(t)
	food := env.createFood(t, "Soup", 180)

	_, created := env.request(t, fiber.MethodPost, "/api/log", fiber.Map{
		"meal_type": "dinner",
		"meal_date": "2024-01-01",
		"items":     []fiber.Map{{"food_id": food.String()}},
	}, env.userID)

	var entry domain.LogEntryResponse
	require.NoError(t, json.Unmarshal(created.Data, &entry))

	res, _ := env.request(t, fiber.MethodDelete, "/api/log/"+entry.ID, nil, env.other)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	res, env_ := env.request(t, fiber.MethodDelete, "/api/log/"+entry.ID, nil, env.userID)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var deleted domain.DeleteLogResponse
	require.NoError(t, json.Unmarshal(env_.Data, &deleted))
	assert.True(t, deleted.Success)

	res, _ = env.request(t, fiber.MethodDelete, "/api/log/"+entry.ID, nil, env.userID)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestGetLogDatesRoute(t *testing.T) {
	env := newLogTestEnv(t)
	food := env.createFood(t, "Tea", 5)

	for i, date := range []string{"2024-02-01", "2024-01-01"} {
		_, _ = env.request(t, fiber.MethodPost, "/api/log", fiber.Map{
			"meal_type": domain.MealTypes[i],
			"meal_date": date,
			"items":     []fiber.Map{{"food_id": food.String()}},
		}, env.userID)
	}

	res, env_ := env.request(t, fiber.MethodGet, "/api/log/dates", nil, env.userID)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var dates domain.LogDatesResponse
	require.NoError(t, json.Unmarshal(env_.Data, &dates))
	assert.Equal(t, []string{"2024-01-01", "2024-02-01"}, dates.Dates)
}
