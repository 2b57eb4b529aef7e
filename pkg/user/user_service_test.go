package user

import (
	"Meal-Tracker-API/domain"
	"Meal-Tracker-API/entities"
	"Meal-Tracker-API/pkg/jwt"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) UserService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return NewUserService(NewUserRepository(db), jwt.NewJWTService())
}

func TestRegister(t *testing.T) {
	service := newTestService(t)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "  alice  ",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "alice", res.Username)
}

func TestRegister_Validation(t *testing.T) {
	service := newTestService(t)

	_, err := service.Register(context.Background(), domain.RegisterRequest{Username: "ab", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUsernameTooShort)

	_, err = service.Register(context.Background(), domain.RegisterRequest{Username: "alice", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
}

func TestRegister_UsernameTaken(t *testing.T) {
	service := newTestService(t)

	_, err := service.Register(context.Background(), domain.RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{Username: "alice", Password: "different1"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	service := newTestService(t)

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Password: "secret123",
	})
	require.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, registered.ID, res.ID)
	assert.NotEmpty(t, res.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	service := newTestService(t)

	_, err := service.Register(context.Background(), domain.RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "wrongpass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Unknown users get the same error as a wrong password.
	_, err = service.Login(context.Background(), domain.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	service := newTestService(t)

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Password: "secret123",
	})
	require.NoError(t, err)

	me, err := service.Me(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)
}
