package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/brewshare/backend/internal/models"
)

// CreateTestUser inserts a user with a unique email
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	id := uuid.New()
	user := &models.User{
		ID:           id,
		Name:         "Test Brewer",
		Email:        fmt.Sprintf("brewer+%s@example.com", id.String()[:8]),
		PasswordHash: "hashed_password",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestRecipe inserts a V60 recipe owned by userID
func CreateTestRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		UserID:       userID,
		Title:        "Morning V60",
		Description:  "Bright and clean",
		BrewMethod:   "v60",
		DoseGrams:    15,
		WaterGrams:   250,
		WaterTempC:   94,
		GrindSetting: "medium-fine",
		BrewSeconds:  180,
		Steps:        models.JSONBStringArray{"bloom 45g for 30s", "pour to 250g"},
		Embedding:    pgvector.NewVector(make([]float32, models.ProfileDimensions)),
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

// CreateTestBean inserts a bean owned by userID
func CreateTestBean(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.Bean {
	t.Helper()
	bean := &models.Bean{
		UserID:     userID,
		Name:       "Yirgacheffe Kochere",
		Roaster:    "Local Roasters",
		Origin:     "Ethiopia",
		Process:    "washed",
		RoastLevel: "light",
	}
	require.NoError(t, db.Create(bean).Error)
	return bean
}
