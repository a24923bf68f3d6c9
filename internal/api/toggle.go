package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/brewshare/backend/internal/middleware"
	"github.com/pageza/brewshare/backend/internal/service"
	"github.com/pageza/brewshare/backend/internal/types"
)

// ToggleHandler serves one kind of mark (like or favorite) on recipes
type ToggleHandler struct {
	toggles service.IToggleService
	auth    middleware.TokenValidator
	limiter *middleware.RateLimiter
}

// NewToggleHandler creates a handler. limiter may be nil.
func NewToggleHandler(toggles service.IToggleService, auth middleware.TokenValidator, limiter *middleware.RateLimiter) *ToggleHandler {
	return &ToggleHandler{
		toggles: toggles,
		auth:    auth,
		limiter: limiter,
	}
}

func (h *ToggleHandler) RegisterRoutes(router *gin.RouterGroup) {
	kind := string(h.toggles.Kind())

	marks := router.Group("/recipes/:id/" + kind)
	{
		marks.POST("", middleware.AuthMiddleware(h.auth), h.limiter.RateLimitMiddleware(), h.Toggle)
		marks.GET("/check", middleware.OptionalAuth(h.auth), h.Check)
		marks.GET("/count", h.Count)
	}

	router.GET("/me/"+kind+"s", middleware.AuthMiddleware(h.auth), h.ListMine)
}

// Toggle flips the caller's mark on the recipe
func (h *ToggleHandler) Toggle(c *gin.Context) {
	recipeID, ok := pathID(c, "recipe")
	if !ok {
		return
	}

	isSet, err := h.toggles.Toggle(c.Request.Context(), middleware.UserID(c), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ToggleResponse{Success: true, IsSet: isSet})
}

// Check reports whether the caller has marked the recipe; anonymous callers get false
func (h *ToggleHandler) Check(c *gin.Context) {
	recipeID, ok := pathID(c, "recipe")
	if !ok {
		return
	}

	isSet, err := h.toggles.IsSet(c.Request.Context(), middleware.UserID(c), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.CheckResponse{IsSet: isSet})
}

// Count returns how many users have marked the recipe
func (h *ToggleHandler) Count(c *gin.Context) {
	recipeID, ok := pathID(c, "recipe")
	if !ok {
		return
	}

	count, err := h.toggles.Count(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.CountResponse{Count: count})
}

// ListMine lists the recipes the caller has marked, newest first
func (h *ToggleHandler) ListMine(c *gin.Context) {
	var page types.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, err)
		return
	}

	records, err := h.toggles.ListForSubject(c.Request.Context(), middleware.UserID(c), page.Limit, page.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	marked := make([]types.MarkedRecipe, 0, len(records))
	for _, r := range records {
		marked = append(marked, types.MarkedRecipe{RecipeID: r.RecipeID, CreatedAt: r.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"recipes": marked})
}
