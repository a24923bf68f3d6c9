package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/brewshare/backend/internal/database"
	"github.com/pageza/brewshare/backend/internal/middleware"
	"github.com/pageza/brewshare/backend/internal/service"
)

// Services bundles everything the HTTP layer depends on. ToggleLimiter may be nil.
type Services struct {
	DB            *gorm.DB
	Auth          service.IAuthService
	Likes         service.IToggleService
	Favorites     service.IToggleService
	Recipes       service.IRecipeService
	Beans         service.IBeanService
	TasteNotes    service.ITasteNoteService
	Grinders      service.IGrinderService
	ToggleLimiter *middleware.RateLimiter
}

// HealthCheck reports whether the API and its database are reachable
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			if err := database.HealthCheck(c.Request.Context(), db); err != nil {
				log.Printf("Health check failed: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "BrewShare API is running",
		})
	}
}

// RegisterRoutes registers all API routes under /api/v1
func RegisterRoutes(router *gin.Engine, svc Services) {
	router.GET("/health", HealthCheck(svc.DB))
	router.GET("/api/health", HealthCheck(svc.DB))

	v1 := router.Group("/api/v1")
	NewAuthHandler(svc.Auth).RegisterRoutes(v1)
	NewRecipeHandler(svc.Recipes, svc.Auth).RegisterRoutes(v1)
	NewToggleHandler(svc.Likes, svc.Auth, svc.ToggleLimiter).RegisterRoutes(v1)
	NewToggleHandler(svc.Favorites, svc.Auth, svc.ToggleLimiter).RegisterRoutes(v1)
	NewTasteNoteHandler(svc.TasteNotes, svc.Auth).RegisterRoutes(v1)
	NewBeanHandler(svc.Beans, svc.Auth).RegisterRoutes(v1)
	NewGrinderHandler(svc.Grinders, svc.Auth).RegisterRoutes(v1)

	if svc.ToggleLimiter != nil {
		RegisterRateLimitRoutes(v1, svc.Auth, svc.ToggleLimiter)
	}
}

// RegisterRateLimitRoutes exposes the caller's remaining toggle quota
func RegisterRateLimitRoutes(router *gin.RouterGroup, auth middleware.TokenValidator, limiter *middleware.RateLimiter) {
	router.GET("/rate-limits/toggle", middleware.AuthMiddleware(auth), func(c *gin.Context) {
		remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), middleware.UserID(c).String())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"limit":      limiter.Limit(),
			"remaining":  remaining,
			"reset_time": resetTime.Unix(),
			"window":     limiter.Window().String(),
		})
	})
}
