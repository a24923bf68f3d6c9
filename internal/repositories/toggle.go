package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/brewshare/backend/internal/models"
)

// ToggleStore persists (user, recipe) marks for one toggle kind.
// Every write is a single conditional statement so that the pair's
// primary key, not application logic, decides the outcome.
type ToggleStore interface {
	// Delete removes the pair and reports whether a row existed.
	Delete(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	// Insert adds the pair unless it already exists and reports whether a row was written.
	Insert(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ToggleRecord, error)
	DeleteByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error)
}

type gormToggleStore struct {
	db    *gorm.DB
	table string
}

// NewToggleStore returns a gorm-backed store over the given table
func NewToggleStore(db *gorm.DB, table string) ToggleStore {
	return &gormToggleStore{db: db, table: table}
}

func (s *gormToggleStore) scoped(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table(s.table)
}

func (s *gormToggleStore) Delete(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	result := s.scoped(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ToggleRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *gormToggleStore) Insert(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	record := models.ToggleRecord{UserID: userID, RecipeID: recipeID}
	result := s.scoped(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (s *gormToggleStore) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var n int64
	err := s.scoped(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

func (s *gormToggleStore) CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var n int64
	err := s.scoped(ctx).Where("recipe_id = ?", recipeID).Count(&n).Error
	return n, err
}

func (s *gormToggleStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ToggleRecord, error) {
	var records []models.ToggleRecord
	err := s.scoped(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	return records, err
}

func (s *gormToggleStore) DeleteByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	result := s.scoped(ctx).Where("recipe_id = ?", recipeID).Delete(&models.ToggleRecord{})
	return result.RowsAffected, result.Error
}
