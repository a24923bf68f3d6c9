package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/brewshare/backend/internal/types"
)

func TestAuthHandlers(t *testing.T) {
	env := setupTestEnv(t)

	register := types.RegisterRequest{
		Email:    "Barista@Example.com",
		Password: "password123",
		Name:     "Barista",
	}

	w := performRequest(env.router, http.MethodPost, "/api/v1/auth/register", "", register)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var registered types.AuthResponse
	decode(t, w, &registered)
	assert.NotEmpty(t, registered.Token)
	require.NotNil(t, registered.User)
	assert.Equal(t, "barista@example.com", registered.User.Email)

	t.Run("duplicate email", func(t *testing.T) {
		w := performRequest(env.router, http.MethodPost, "/api/v1/auth/register", "", register)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("login", func(t *testing.T) {
		w := performRequest(env.router, http.MethodPost, "/api/v1/auth/login", "", types.LoginRequest{
			Email:    "barista@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp types.AuthResponse
		decode(t, w, &resp)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, registered.User.ID, resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := performRequest(env.router, http.MethodPost, "/api/v1/auth/login", "", types.LoginRequest{
			Email:    "barista@example.com",
			Password: "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid email or password", errorMessage(t, w))
	})

	t.Run("me", func(t *testing.T) {
		w := performRequest(env.router, http.MethodGet, "/api/v1/me", registered.Token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var info types.UserInfo
		decode(t, w, &info)
		assert.Equal(t, registered.User.ID, info.ID)

		w = performRequest(env.router, http.MethodGet, "/api/v1/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRegisterValidation(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name    string
		body    interface{}
		message string
	}{
		{
			name:    "invalid email",
			body:    types.RegisterRequest{Email: "nope", Password: "password123", Name: "A"},
			message: "email must be a valid email address",
		},
		{
			name:    "short password",
			body:    types.RegisterRequest{Email: "a@example.com", Password: "short", Name: "A"},
			message: "password must be at least 8",
		},
		{
			name:    "missing name",
			body:    map[string]string{"email": "a@example.com", "password": "password123"},
			message: "name is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(env.router, http.MethodPost, "/api/v1/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, errorMessage(t, w))
		})
	}
}

func TestHealthCheck(t *testing.T) {
	env := setupTestEnv(t)

	w := performRequest(env.router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
