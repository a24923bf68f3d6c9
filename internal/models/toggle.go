package models

import (
	"time"

	"github.com/google/uuid"
)

// ToggleRecord marks that a user has liked or favorited a recipe.
// The composite primary key allows at most one record per pair.
type ToggleRecord struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

type RecipeLike ToggleRecord

func (RecipeLike) TableName() string {
	return "recipe_likes"
}

type RecipeFavorite ToggleRecord

func (RecipeFavorite) TableName() string {
	return "recipe_favorites"
}
