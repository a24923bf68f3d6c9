package server

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/brewshare/backend/config"
	"github.com/pageza/brewshare/backend/internal/api"
	"github.com/pageza/brewshare/backend/internal/middleware"
	"github.com/pageza/brewshare/backend/internal/repositories"
	"github.com/pageza/brewshare/backend/internal/service"
)

// NewServices wires the services over db. redisClient and storage may be nil,
// which disables toggle rate limiting and bean photos respectively.
func NewServices(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, storage *config.S3Config) api.Services {
	likeStore := repositories.NewToggleStore(db, service.KindLike.Table())
	favoriteStore := repositories.NewToggleStore(db, service.KindFavorite.Table())
	recipes := service.NewRecipeService(db, likeStore, favoriteStore)

	// A nil *S3Config must not become a non-nil Presigner
	var presigner service.Presigner
	if storage != nil {
		presigner = storage
	}

	return api.Services{
		DB:            db,
		Auth:          service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL),
		Likes:         service.NewToggleService(service.KindLike, likeStore, recipes),
		Favorites:     service.NewToggleService(service.KindFavorite, favoriteStore, recipes),
		Recipes:       recipes,
		Beans:         service.NewBeanService(db, presigner),
		TasteNotes:    service.NewTasteNoteService(db, recipes),
		Grinders:      service.NewGrinderService(db),
		ToggleLimiter: middleware.NewToggleRateLimiter(redisClient, cfg.ToggleRateLimit),
	}
}
