package types

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=100"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title        string     `json:"title" binding:"required,max=255"`
	Description  string     `json:"description"`
	BrewMethod   string     `json:"brew_method" binding:"required,brew_method"`
	DoseGrams    float64    `json:"dose_grams" binding:"required,gt=0,lte=100"`
	WaterGrams   float64    `json:"water_grams" binding:"required,gt=0,lte=2000"`
	WaterTempC   float64    `json:"water_temp_c" binding:"omitempty,gte=0,lte=100"`
	GrindSetting string     `json:"grind_setting" binding:"max=50"`
	BrewSeconds  int        `json:"brew_seconds" binding:"omitempty,gte=0,lte=86400"`
	Steps        []string   `json:"steps" binding:"dive,required"`
	BeanID       *uuid.UUID `json:"bean_id"`
	GrinderID    *uuid.UUID `json:"grinder_id"`
}

// UpdateRecipeRequest represents the request body for updating a recipe.
// Nil fields are left unchanged.
type UpdateRecipeRequest struct {
	Title        *string    `json:"title" binding:"omitempty,min=1,max=255"`
	Description  *string    `json:"description"`
	BrewMethod   *string    `json:"brew_method" binding:"omitempty,brew_method"`
	DoseGrams    *float64   `json:"dose_grams" binding:"omitempty,gt=0,lte=100"`
	WaterGrams   *float64   `json:"water_grams" binding:"omitempty,gt=0,lte=2000"`
	WaterTempC   *float64   `json:"water_temp_c" binding:"omitempty,gte=0,lte=100"`
	GrindSetting *string    `json:"grind_setting" binding:"omitempty,max=50"`
	BrewSeconds  *int       `json:"brew_seconds" binding:"omitempty,gte=0,lte=86400"`
	Steps        []string   `json:"steps" binding:"omitempty,dive,required"`
	BeanID       *uuid.UUID `json:"bean_id"`
	GrinderID    *uuid.UUID `json:"grinder_id"`
}

// RecipeFilter narrows a recipe listing
type RecipeFilter struct {
	BrewMethod string     `form:"brew_method" binding:"omitempty,brew_method"`
	BeanID     *uuid.UUID `form:"-"`
	UserID     *uuid.UUID `form:"-"`
	Query      string     `form:"q"`
	Limit      int        `form:"limit" binding:"omitempty,gte=1,lte=100"`
	Offset     int        `form:"offset" binding:"omitempty,gte=0"`
}

// CreateBeanRequest represents the request body for creating a bean
type CreateBeanRequest struct {
	Name       string     `json:"name" binding:"required,max=255"`
	Roaster    string     `json:"roaster" binding:"max=255"`
	Origin     string     `json:"origin" binding:"max=100"`
	Process    string     `json:"process" binding:"omitempty,bean_process"`
	RoastLevel string     `json:"roast_level" binding:"omitempty,roast_level"`
	RoastDate  *time.Time `json:"roast_date"`
	Notes      string     `json:"notes"`
}

// UpdateBeanRequest represents the request body for updating a bean
type UpdateBeanRequest struct {
	Name       *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Roaster    *string    `json:"roaster" binding:"omitempty,max=255"`
	Origin     *string    `json:"origin" binding:"omitempty,max=100"`
	Process    *string    `json:"process" binding:"omitempty,bean_process"`
	RoastLevel *string    `json:"roast_level" binding:"omitempty,roast_level"`
	RoastDate  *time.Time `json:"roast_date"`
	Notes      *string    `json:"notes"`
}

// BeanFilter narrows a bean listing
type BeanFilter struct {
	Roaster string     `form:"roaster"`
	Origin  string     `form:"origin"`
	UserID  *uuid.UUID `form:"-"`
	Limit   int        `form:"limit" binding:"omitempty,gte=1,lte=100"`
	Offset  int        `form:"offset" binding:"omitempty,gte=0"`
}

// BeanImageRequest asks for an upload URL for a bean photo
type BeanImageRequest struct {
	ContentType string `json:"content_type" binding:"required,oneof=image/jpeg image/png image/webp"`
}

// TasteNoteRequest is used to create or replace a taste note
type TasteNoteRequest struct {
	Rating     int      `json:"rating" binding:"required,gte=1,lte=5"`
	Acidity    int      `json:"acidity" binding:"omitempty,gte=1,lte=5"`
	Sweetness  int      `json:"sweetness" binding:"omitempty,gte=1,lte=5"`
	Body       int      `json:"body" binding:"omitempty,gte=1,lte=5"`
	Bitterness int      `json:"bitterness" binding:"omitempty,gte=1,lte=5"`
	Flavors    []string `json:"flavors" binding:"omitempty,max=20,dive,required,max=50"`
	Notes      string   `json:"notes" binding:"max=2000"`
}

// CreateGrinderRequest represents the request body for adding a grinder
type CreateGrinderRequest struct {
	Brand      string  `json:"brand" binding:"required,max=100"`
	Model      string  `json:"model" binding:"required,max=100"`
	BurrType   string  `json:"burr_type" binding:"required,burr_type"`
	MinSetting float64 `json:"min_setting"`
	MaxSetting float64 `json:"max_setting" binding:"gtefield=MinSetting"`
}

// Pagination is the common limit/offset query pair
type Pagination struct {
	Limit  int `form:"limit" binding:"omitempty,gte=1,lte=100"`
	Offset int `form:"offset" binding:"omitempty,gte=0"`
}
