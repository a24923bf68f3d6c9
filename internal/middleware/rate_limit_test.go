package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/brewshare/backend/internal/middleware"
	"github.com/pageza/brewshare/backend/internal/testhelpers"
)

func TestRateLimiterWithRedis(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	limiter := middleware.NewRateLimiter(client, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     2,
		KeyPrefix: "test:toggle",
	})

	ctx := context.Background()
	user := uuid.NewString()
	for i, want := range []bool{true, true, false} {
		allowed, _, _, err := limiter.IsAllowed(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, want, allowed, "request %d", i+1)
	}

	// Other users have their own budget
	allowed, remaining, _, err := limiter.IsAllowed(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	limiter := middleware.NewRateLimiter(client, middleware.RateLimitConfig{
		Window:    time.Hour,
		Limit:     1,
		KeyPrefix: "test:toggle",
	})

	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	router := gin.New()
	router.POST("/toggle", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}, limiter.RateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/toggle", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/toggle", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestGetRemainingRequestsDoesNotConsume(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	limiter := middleware.NewRateLimiter(client, middleware.RateLimitConfig{
		Window:    time.Hour,
		Limit:     3,
		KeyPrefix: "test:toggle",
	})

	ctx := context.Background()
	user := uuid.NewString()

	remaining, reset, err := limiter.GetRemainingRequests(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)
	assert.True(t, reset.After(time.Now()))

	_, _, _, err = limiter.IsAllowed(ctx, user)
	require.NoError(t, err)

	for range 2 {
		remaining, _, err = limiter.GetRemainingRequests(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
	}
}
