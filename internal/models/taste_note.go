package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TasteNote is a user's tasting record for a brewed recipe.
type TasteNote struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	RecipeID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"recipe_id"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Rating     int              `gorm:"not null" json:"rating"`
	Acidity    int              `json:"acidity"`
	Sweetness  int              `json:"sweetness"`
	Body       int              `json:"body"`
	Bitterness int              `json:"bitterness"`
	Flavors    JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"flavors"`
	Notes      string           `gorm:"type:text" json:"notes"`
}

func (TasteNote) TableName() string {
	return "taste_notes"
}

func (n *TasteNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TasteSummary aggregates the taste notes of a recipe
type TasteSummary struct {
	RecipeID      uuid.UUID `json:"recipe_id"`
	NoteCount     int64     `json:"note_count"`
	AverageRating float64   `json:"average_rating"`
}
