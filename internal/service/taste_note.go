package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/types"
)

// TasteNoteService handles tasting notes on recipes
type TasteNoteService struct {
	db      *gorm.DB
	recipes TargetLookup
}

// NewTasteNoteService creates a new TasteNoteService instance
func NewTasteNoteService(db *gorm.DB, recipes TargetLookup) *TasteNoteService {
	return &TasteNoteService{db: db, recipes: recipes}
}

// CreateNote records a tasting of recipeID by userID
func (s *TasteNoteService) CreateNote(ctx context.Context, userID, recipeID uuid.UUID, req *types.TasteNoteRequest) (*models.TasteNote, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	ok, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return nil, storageErr("recipe lookup", err)
	}
	if !ok {
		return nil, ErrTargetNotFound
	}

	note := &models.TasteNote{RecipeID: recipeID, UserID: userID}
	applyNote(note, req)
	if err := s.db.WithContext(ctx).Create(note).Error; err != nil {
		return nil, storageErr("create taste note", err)
	}
	return note, nil
}

// ListNotes returns the notes of a recipe, newest first
func (s *TasteNoteService) ListNotes(ctx context.Context, recipeID uuid.UUID, limit, offset int) ([]models.TasteNote, error) {
	var notes []models.TasteNote
	err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Limit(pageLimit(limit)).
		Offset(max(offset, 0)).
		Find(&notes).Error
	if err != nil {
		return nil, storageErr("list taste notes", err)
	}
	return notes, nil
}

type tasteAggregate struct {
	NoteCount     int64
	AverageRating *float64
}

// Summary returns the note count and average rating of a recipe
func (s *TasteNoteService) Summary(ctx context.Context, recipeID uuid.UUID) (*models.TasteSummary, error) {
	var row tasteAggregate
	err := s.db.WithContext(ctx).Model(&models.TasteNote{}).
		Select("COUNT(*) AS note_count, AVG(rating) AS average_rating").
		Where("recipe_id = ?", recipeID).
		Scan(&row).Error
	if err != nil {
		return nil, storageErr("taste summary", err)
	}

	summary := &models.TasteSummary{RecipeID: recipeID, NoteCount: row.NoteCount}
	if row.AverageRating != nil {
		summary.AverageRating = *row.AverageRating
	}
	return summary, nil
}

// UpdateNote replaces a note. Only its author may update it.
func (s *TasteNoteService) UpdateNote(ctx context.Context, userID, id uuid.UUID, req *types.TasteNoteRequest) (*models.TasteNote, error) {
	note, err := s.authorNote(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	applyNote(note, req)
	if err := s.db.WithContext(ctx).Save(note).Error; err != nil {
		return nil, storageErr("update taste note", err)
	}
	return note, nil
}

// DeleteNote removes a note. Only its author may delete it.
func (s *TasteNoteService) DeleteNote(ctx context.Context, userID, id uuid.UUID) error {
	note, err := s.authorNote(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(note).Error; err != nil {
		return storageErr("delete taste note", err)
	}
	return nil
}

func (s *TasteNoteService) authorNote(ctx context.Context, userID, id uuid.UUID) (*models.TasteNote, error) {
	var note models.TasteNote
	if err := s.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("taste note %s: %w", id, ErrNotFound)
		}
		return nil, storageErr("get taste note", err)
	}
	if note.UserID != userID {
		return nil, ErrForbidden
	}
	return &note, nil
}

func applyNote(note *models.TasteNote, req *types.TasteNoteRequest) {
	note.Rating = req.Rating
	note.Acidity = req.Acidity
	note.Sweetness = req.Sweetness
	note.Body = req.Body
	note.Bitterness = req.Bitterness
	note.Flavors = models.JSONBStringArray(req.Flavors)
	note.Notes = req.Notes
}
