package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Grinder is shared reference data; brand and model together are unique.
type Grinder struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Brand      string    `gorm:"size:100;not null;uniqueIndex:idx_grinder_brand_model" json:"brand"`
	Model      string    `gorm:"size:100;not null;uniqueIndex:idx_grinder_brand_model" json:"model"`
	BurrType   string    `gorm:"size:20;not null" json:"burr_type"`
	MinSetting float64   `json:"min_setting"`
	MaxSetting float64   `json:"max_setting"`
	CreatedBy  uuid.UUID `gorm:"type:uuid" json:"created_by"`
}

func (Grinder) TableName() string {
	return "grinders"
}

func (g *Grinder) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
