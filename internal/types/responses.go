package types

import (
	"time"

	"github.com/google/uuid"
)

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo is the public view of a user
type UserInfo struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// ToggleResponse is returned by a like or favorite toggle
type ToggleResponse struct {
	Success bool `json:"success"`
	IsSet   bool `json:"isSet"`
}

// CheckResponse reports whether the caller has marked a recipe
type CheckResponse struct {
	IsSet bool `json:"isSet"`
}

// CountResponse reports how many users have marked a recipe
type CountResponse struct {
	Count int64 `json:"count"`
}

// MarkedRecipe is one entry of a "my likes" or "my favorites" listing
type MarkedRecipe struct {
	RecipeID  uuid.UUID `json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadURLResponse carries a presigned upload URL for a bean photo
type UploadURLResponse struct {
	UploadURL string    `json:"upload_url"`
	ObjectKey string    `json:"object_key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DeleteRecipeResponse reports the outcome of deleting a recipe.
// CleanupErrors names the secondary cleanups that failed.
type DeleteRecipeResponse struct {
	Success       bool     `json:"success"`
	CleanupErrors []string `json:"cleanup_errors,omitempty"`
}
