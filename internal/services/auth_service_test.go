package services_test

import (
	"context"
	"sync"
	"testing"

	"quicktweet_backend/internal/appErrors"
	"quicktweet_backend/internal/auth"
	"quicktweet_backend/internal/config"
	"quicktweet_backend/internal/models"
	"quicktweet_backend/internal/services"
	"quicktweet_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfigOnce sync.Once

// setTestConfig настраивает JWT для тестов без чтения config.yaml
func setTestConfig(t *testing.T) {
	t.Helper()
	testConfigOnce.Do(func() {
		cfg := &config.Config{}
		cfg.JWT.Secret = "test-secret"
		cfg.JWT.TTL = 60
		config.AppConfig = cfg
	})
}

func seedWithPassword(t *testing.T, store *memStore, username, password string) *models.User {
	t.Helper()
	user := store.seedUser(username, models.UserRoleUser)
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	store.users[user.ID].user.PasswordHash = hash
	return user
}

func TestLogin_Success(t *testing.T) {
	setTestConfig(t)

	store := newMemStore()
	user := seedWithPassword(t, store, "alice", "super_password123")
	svc := services.NewAuthService(store)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "super_password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.UserRoleUser, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	setTestConfig(t)

	store := newMemStore()
	seedWithPassword(t, store, "alice", "super_password123")
	svc := services.NewAuthService(store)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "wrong_password",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

// TestLogin_UnknownUser - неизвестный логин неотличим от неверного пароля
func TestLogin_UnknownUser(t *testing.T) {
	setTestConfig(t)

	store := newMemStore()
	svc := services.NewAuthService(store)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "whatever123",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

// TestLogin_PendingAccount - неодобренный аккаунт не допускается
func TestLogin_PendingAccount(t *testing.T) {
	setTestConfig(t)

	store := newMemStore()
	pending := store.seedPendingUser("newbie")
	hash, err := auth.HashPassword("super_password123")
	require.NoError(t, err)
	store.users[pending.ID].user.PasswordHash = hash
	svc := services.NewAuthService(store)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "newbie",
		Password: "super_password123",
	})
	assert.ErrorIs(t, err, appErrors.ErrAccountPending)
}

func TestLogin_EmptyFields(t *testing.T) {
	setTestConfig(t)

	store := newMemStore()
	svc := services.NewAuthService(store)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: ""})
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument)
}
