package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/repositories"
)

// ToggleKind names a per-user mark on a recipe
type ToggleKind string

const (
	KindLike     ToggleKind = "like"
	KindFavorite ToggleKind = "favorite"
)

// Table returns the table holding marks of this kind
func (k ToggleKind) Table() string {
	switch k {
	case KindLike:
		return models.RecipeLike{}.TableName()
	case KindFavorite:
		return models.RecipeFavorite{}.TableName()
	default:
		return ""
	}
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// TargetLookup reports whether a recipe exists
type TargetLookup interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ToggleService flips and queries one kind of mark
type ToggleService struct {
	kind    ToggleKind
	store   repositories.ToggleStore
	targets TargetLookup
}

// NewToggleService creates a ToggleService for kind backed by store
func NewToggleService(kind ToggleKind, store repositories.ToggleStore, targets TargetLookup) *ToggleService {
	return &ToggleService{
		kind:    kind,
		store:   store,
		targets: targets,
	}
}

// Kind returns the mark this service manages
func (s *ToggleService) Kind() ToggleKind {
	return s.kind
}

// Toggle flips the mark of subjectID on targetID and returns the new state.
// A lost race against a concurrent toggle of the same pair is retried once.
func (s *ToggleService) Toggle(ctx context.Context, subjectID, targetID uuid.UUID) (bool, error) {
	if subjectID == uuid.Nil {
		return false, ErrAuthenticationRequired
	}
	if err := s.requireTarget(ctx, targetID); err != nil {
		return false, err
	}

	isSet, err := s.flip(ctx, subjectID, targetID)
	if errors.Is(err, ErrUniquenessConflict) {
		log.Printf("%s toggle conflict for user %s on recipe %s, retrying", s.kind, subjectID, targetID)
		isSet, err = s.flip(ctx, subjectID, targetID)
		if errors.Is(err, ErrUniquenessConflict) {
			return false, storageErr(string(s.kind)+" toggle", err)
		}
	}
	return isSet, err
}

func (s *ToggleService) flip(ctx context.Context, subjectID, targetID uuid.UUID) (bool, error) {
	removed, err := s.store.Delete(ctx, subjectID, targetID)
	if err != nil {
		return false, storageErr(string(s.kind)+" delete", err)
	}
	if removed {
		return false, nil
	}

	inserted, err := s.store.Insert(ctx, subjectID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, ErrUniquenessConflict
		}
		return false, storageErr(string(s.kind)+" insert", err)
	}
	if !inserted {
		return false, ErrUniquenessConflict
	}
	return true, nil
}

// IsSet reports whether subjectID has marked targetID. Anonymous callers get false.
func (s *ToggleService) IsSet(ctx context.Context, subjectID, targetID uuid.UUID) (bool, error) {
	if subjectID == uuid.Nil {
		return false, nil
	}
	if err := s.requireTarget(ctx, targetID); err != nil {
		return false, err
	}
	ok, err := s.store.Exists(ctx, subjectID, targetID)
	if err != nil {
		return false, storageErr(string(s.kind)+" check", err)
	}
	return ok, nil
}

// Count returns how many users have marked targetID
func (s *ToggleService) Count(ctx context.Context, targetID uuid.UUID) (int64, error) {
	if err := s.requireTarget(ctx, targetID); err != nil {
		return 0, err
	}
	n, err := s.store.CountByRecipe(ctx, targetID)
	if err != nil {
		return 0, storageErr(string(s.kind)+" count", err)
	}
	return n, nil
}

// ListForSubject returns the marks of subjectID, newest first
func (s *ToggleService) ListForSubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]models.ToggleRecord, error) {
	if subjectID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	records, err := s.store.ListByUser(ctx, subjectID, pageLimit(limit), max(offset, 0))
	if err != nil {
		return nil, storageErr(string(s.kind)+" list", err)
	}
	return records, nil
}

func (s *ToggleService) requireTarget(ctx context.Context, targetID uuid.UUID) error {
	if targetID == uuid.Nil {
		return ErrTargetNotFound
	}
	ok, err := s.targets.Exists(ctx, targetID)
	if err != nil {
		return storageErr("recipe lookup", err)
	}
	if !ok {
		return ErrTargetNotFound
	}
	return nil
}
