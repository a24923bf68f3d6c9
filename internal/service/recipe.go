package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/repositories"
	"github.com/pageza/brewshare/backend/internal/types"
)

// RecipeService handles recipe operations
type RecipeService struct {
	db        *gorm.DB
	likes     repositories.ToggleStore
	favorites repositories.ToggleStore
}

// NewRecipeService creates a new RecipeService instance. The toggle stores
// are cleared when a recipe is deleted.
func NewRecipeService(db *gorm.DB, likes, favorites repositories.ToggleStore) *RecipeService {
	return &RecipeService{
		db:        db,
		likes:     likes,
		favorites: favorites,
	}
}

// CleanupFailure records a secondary delete that did not succeed
type CleanupFailure struct {
	Step string
	Err  error
}

// DeleteResult describes what a recipe delete removed
type DeleteResult struct {
	RecipeID  uuid.UUID
	Likes     int64
	Favorites int64
	Notes     int64
	Failures  []CleanupFailure
}

// Complete reports whether every cleanup step succeeded
func (r *DeleteResult) Complete() bool {
	return len(r.Failures) == 0
}

// FailedSteps names the cleanup steps that failed
func (r *DeleteResult) FailedSteps() []string {
	steps := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		steps = append(steps, f.Step)
	}
	return steps
}

// CreateRecipe creates a new recipe owned by userID
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	if err := s.checkReferences(ctx, req.BeanID, req.GrinderID); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		UserID:       userID,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		BrewMethod:   req.BrewMethod,
		DoseGrams:    req.DoseGrams,
		WaterGrams:   req.WaterGrams,
		WaterTempC:   req.WaterTempC,
		GrindSetting: req.GrindSetting,
		BrewSeconds:  req.BrewSeconds,
		Steps:        models.JSONBStringArray(req.Steps),
		BeanID:       req.BeanID,
		GrinderID:    req.GrinderID,
	}
	recipe.Embedding = BrewProfile(recipe)

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, storageErr("create recipe", err)
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
		}
		return nil, storageErr("get recipe", err)
	}
	return &recipe, nil
}

// Exists reports whether a live recipe with the given id exists
func (s *RecipeService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateRecipe applies the non-nil fields of req. Only the owner may update.
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrForbidden
	}
	if err := s.checkReferences(ctx, req.BeanID, req.GrinderID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.BrewMethod != nil {
		recipe.BrewMethod = *req.BrewMethod
	}
	if req.DoseGrams != nil {
		recipe.DoseGrams = *req.DoseGrams
	}
	if req.WaterGrams != nil {
		recipe.WaterGrams = *req.WaterGrams
	}
	if req.WaterTempC != nil {
		recipe.WaterTempC = *req.WaterTempC
	}
	if req.GrindSetting != nil {
		recipe.GrindSetting = *req.GrindSetting
	}
	if req.BrewSeconds != nil {
		recipe.BrewSeconds = *req.BrewSeconds
	}
	if req.Steps != nil {
		recipe.Steps = models.JSONBStringArray(req.Steps)
	}
	if req.BeanID != nil {
		recipe.BeanID = req.BeanID
	}
	if req.GrinderID != nil {
		recipe.GrinderID = req.GrinderID
	}
	recipe.Embedding = BrewProfile(recipe)

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, storageErr("update recipe", err)
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe and then its likes, favorites and taste notes.
// The recipe delete is the primary write; a failed cleanup step is reported in
// the result rather than undoing it.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) (*DeleteResult, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrForbidden
	}

	if err := s.db.WithContext(ctx).Delete(recipe).Error; err != nil {
		return nil, storageErr("delete recipe", err)
	}

	result := &DeleteResult{RecipeID: id}
	if n, err := s.likes.DeleteByRecipe(ctx, id); err != nil {
		result.Failures = append(result.Failures, CleanupFailure{Step: "likes", Err: err})
	} else {
		result.Likes = n
	}
	if n, err := s.favorites.DeleteByRecipe(ctx, id); err != nil {
		result.Failures = append(result.Failures, CleanupFailure{Step: "favorites", Err: err})
	} else {
		result.Favorites = n
	}
	notes := s.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&models.TasteNote{})
	if notes.Error != nil {
		result.Failures = append(result.Failures, CleanupFailure{Step: "taste_notes", Err: notes.Error})
	} else {
		result.Notes = notes.RowsAffected
	}

	return result, nil
}

// ListRecipes lists recipes matching the filter, newest first
func (s *RecipeService) ListRecipes(ctx context.Context, filter types.RecipeFilter) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{})
	if filter.BrewMethod != "" {
		query = query.Where("brew_method = ?", filter.BrewMethod)
	}
	if filter.BeanID != nil {
		query = query.Where("bean_id = ?", *filter.BeanID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var recipes []models.Recipe
	err := query.Order("created_at DESC").
		Limit(pageLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&recipes).Error
	if err != nil {
		return nil, storageErr("list recipes", err)
	}
	return recipes, nil
}

// SimilarRecipes returns the recipes whose brew profile is closest to id.
// PostgreSQL ranks by pgvector distance; other databases fall back to
// recipes of the same brew method ordered by ratio difference.
func (s *RecipeService) SimilarRecipes(ctx context.Context, id uuid.UUID, limit int) ([]models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Where("id <> ?", id).Limit(pageLimit(limit))
	var distance clause.Expr
	if s.db.Dialector.Name() == "postgres" {
		distance = clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{BrewProfile(recipe)}}
	} else {
		query = query.Where("brew_method = ?", recipe.BrewMethod)
		distance = clause.Expr{SQL: "ABS((water_grams / dose_grams) - ?)", Vars: []interface{}{recipe.Ratio()}}
	}
	query = query.Clauses(clause.OrderBy{Expression: distance})

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, storageErr("similar recipes", err)
	}
	return recipes, nil
}

func (s *RecipeService) checkReferences(ctx context.Context, beanID, grinderID *uuid.UUID) error {
	if beanID != nil {
		if err := s.requireRow(ctx, &models.Bean{}, *beanID, "bean"); err != nil {
			return err
		}
	}
	if grinderID != nil {
		if err := s.requireRow(ctx, &models.Grinder{}, *grinderID, "grinder"); err != nil {
			return err
		}
	}
	return nil
}

func (s *RecipeService) requireRow(ctx context.Context, model interface{}, id uuid.UUID, name string) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return storageErr("lookup "+name, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", name, id, ErrNotFound)
	}
	return nil
}

func pageLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
