package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
}

// IToggleService defines one kind of per-user mark on recipes
type IToggleService interface {
	Kind() ToggleKind
	Toggle(ctx context.Context, subjectID, targetID uuid.UUID) (bool, error)
	IsSet(ctx context.Context, subjectID, targetID uuid.UUID) (bool, error)
	Count(ctx context.Context, targetID uuid.UUID) (int64, error)
	ListForSubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]models.ToggleRecord, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, userID, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, id uuid.UUID) (*DeleteResult, error)
	ListRecipes(ctx context.Context, filter types.RecipeFilter) ([]models.Recipe, error)
	SimilarRecipes(ctx context.Context, id uuid.UUID, limit int) ([]models.Recipe, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// IBeanService defines the interface for bean operations
type IBeanService interface {
	CreateBean(ctx context.Context, userID uuid.UUID, req *types.CreateBeanRequest) (*models.Bean, error)
	GetBean(ctx context.Context, id uuid.UUID) (*BeanView, error)
	UpdateBean(ctx context.Context, userID, id uuid.UUID, req *types.UpdateBeanRequest) (*models.Bean, error)
	DeleteBean(ctx context.Context, userID, id uuid.UUID) error
	ListBeans(ctx context.Context, filter types.BeanFilter) ([]BeanView, error)
	AttachImage(ctx context.Context, userID, id uuid.UUID, contentType string) (*types.UploadURLResponse, error)
}

// ITasteNoteService defines the interface for taste note operations
type ITasteNoteService interface {
	CreateNote(ctx context.Context, userID, recipeID uuid.UUID, req *types.TasteNoteRequest) (*models.TasteNote, error)
	ListNotes(ctx context.Context, recipeID uuid.UUID, limit, offset int) ([]models.TasteNote, error)
	Summary(ctx context.Context, recipeID uuid.UUID) (*models.TasteSummary, error)
	UpdateNote(ctx context.Context, userID, id uuid.UUID, req *types.TasteNoteRequest) (*models.TasteNote, error)
	DeleteNote(ctx context.Context, userID, id uuid.UUID) error
}

// IGrinderService defines the interface for grinder operations
type IGrinderService interface {
	CreateGrinder(ctx context.Context, userID uuid.UUID, req *types.CreateGrinderRequest) (*models.Grinder, error)
	GetGrinder(ctx context.Context, id uuid.UUID) (*models.Grinder, error)
	ListGrinders(ctx context.Context, limit, offset int) ([]models.Grinder, error)
}

var (
	_ IAuthService      = (*AuthService)(nil)
	_ IToggleService    = (*ToggleService)(nil)
	_ IRecipeService    = (*RecipeService)(nil)
	_ IBeanService      = (*BeanService)(nil)
	_ ITasteNoteService = (*TasteNoteService)(nil)
	_ IGrinderService   = (*GrinderService)(nil)
)
