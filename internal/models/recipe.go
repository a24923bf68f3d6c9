package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// ProfileDimensions is the length of the brew-profile embedding
const ProfileDimensions = 6

type Recipe struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string           `gorm:"size:255;not null" json:"title"`
	Description  string           `gorm:"type:text" json:"description"`
	BrewMethod   string           `gorm:"size:30;not null;index" json:"brew_method"`
	DoseGrams    float64          `json:"dose_grams"`
	WaterGrams   float64          `json:"water_grams"`
	WaterTempC   float64          `json:"water_temp_c"`
	GrindSetting string           `gorm:"size:50" json:"grind_setting"`
	BrewSeconds  int              `json:"brew_seconds"`
	Steps        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	BeanID       *uuid.UUID       `gorm:"type:uuid;index" json:"bean_id,omitempty"`
	GrinderID    *uuid.UUID       `gorm:"type:uuid;index" json:"grinder_id,omitempty"`
	Embedding    pgvector.Vector  `gorm:"type:vector(6)" json:"-"`
}

func (Recipe) TableName() string {
	return "recipes"
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Ratio returns grams of water per gram of coffee, or 0 when the dose is unset
func (r *Recipe) Ratio() float64 {
	if r.DoseGrams <= 0 {
		return 0
	}
	return r.WaterGrams / r.DoseGrams
}
