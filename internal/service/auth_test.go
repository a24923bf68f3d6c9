package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/service"
	"github.com/pageza/brewshare/backend/internal/testhelpers"
	"github.com/pageza/brewshare/backend/internal/types"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)
	ctx := context.Background()

	user, token, err := authSvc.Register(ctx, " Barista@Example.com ", "password123", "Barista")
	require.NoError(t, err)
	assert.Equal(t, "barista@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)

	claims, err := authSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)

	loggedIn, loginToken, err := authSvc.Login(ctx, "barista@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, loginToken)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, "Barista", stored.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)
	ctx := context.Background()

	_, _, err := authSvc.Register(ctx, "dup@example.com", "password123", "First")
	require.NoError(t, err)

	_, _, err = authSvc.Register(ctx, "DUP@example.com", "password456", "Second")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)
	ctx := context.Background()

	_, _, err := authSvc.Register(ctx, "user@example.com", "password123", "User")
	require.NoError(t, err)

	_, _, err = authSvc.Login(ctx, "user@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = authSvc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsForeignAndExpiredTokens(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret", time.Hour)
	user := testhelpers.CreateTestUser(t, db)

	other := service.NewAuthService(db, "other-secret", time.Hour)
	foreign, err := other.GenerateToken(&types.TokenClaims{UserID: user.ID})
	require.NoError(t, err)
	_, err = authSvc.ValidateToken(foreign)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	expired := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "brewshare",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: user.ID,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = authSvc.ValidateToken(signed)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = authSvc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
