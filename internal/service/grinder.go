package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/types"
)

// GrinderService manages the shared grinder catalogue
type GrinderService struct {
	db *gorm.DB
}

// NewGrinderService creates a new GrinderService instance
func NewGrinderService(db *gorm.DB) *GrinderService {
	return &GrinderService{db: db}
}

// CreateGrinder adds a grinder. A brand and model pair can only be added once.
func (s *GrinderService) CreateGrinder(ctx context.Context, userID uuid.UUID, req *types.CreateGrinderRequest) (*models.Grinder, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	grinder := &models.Grinder{
		Brand:      strings.TrimSpace(req.Brand),
		Model:      strings.TrimSpace(req.Model),
		BurrType:   req.BurrType,
		MinSetting: req.MinSetting,
		MaxSetting: req.MaxSetting,
		CreatedBy:  userID,
	}
	if err := s.db.WithContext(ctx).Create(grinder).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("grinder %s %s: %w", grinder.Brand, grinder.Model, ErrDuplicate)
		}
		return nil, storageErr("create grinder", err)
	}
	return grinder, nil
}

// GetGrinder retrieves a grinder by ID
func (s *GrinderService) GetGrinder(ctx context.Context, id uuid.UUID) (*models.Grinder, error) {
	var grinder models.Grinder
	if err := s.db.WithContext(ctx).First(&grinder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("grinder %s: %w", id, ErrNotFound)
		}
		return nil, storageErr("get grinder", err)
	}
	return &grinder, nil
}

// ListGrinders lists grinders ordered by brand and model
func (s *GrinderService) ListGrinders(ctx context.Context, limit, offset int) ([]models.Grinder, error) {
	var grinders []models.Grinder
	err := s.db.WithContext(ctx).
		Order("brand ASC, model ASC").
		Limit(pageLimit(limit)).
		Offset(max(offset, 0)).
		Find(&grinders).Error
	if err != nil {
		return nil, storageErr("list grinders", err)
	}
	return grinders, nil
}
