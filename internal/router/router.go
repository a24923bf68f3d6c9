package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/brewshare/backend/config"
	"github.com/pageza/brewshare/backend/internal/api"
	"github.com/pageza/brewshare/backend/internal/middleware"
)

// SetupRouter builds the engine with the shared middleware stack and all API routes
func SetupRouter(cfg *config.Config, svc api.Services) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	api.RegisterValidators()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	api.RegisterRoutes(router, svc)
	return router
}
