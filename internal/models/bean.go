package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Bean struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Roaster    string         `gorm:"size:255;index" json:"roaster"`
	Origin     string         `gorm:"size:100;index" json:"origin"`
	Process    string         `gorm:"size:20" json:"process"`
	RoastLevel string         `gorm:"size:20" json:"roast_level"`
	RoastDate  *time.Time     `json:"roast_date,omitempty"`
	Notes      string         `gorm:"type:text" json:"notes"`
	ImageKey   string         `gorm:"size:255" json:"-"`
}

func (Bean) TableName() string {
	return "beans"
}

func (b *Bean) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
