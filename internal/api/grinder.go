package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/brewshare/backend/internal/middleware"
	"github.com/pageza/brewshare/backend/internal/service"
	"github.com/pageza/brewshare/backend/internal/types"
)

type GrinderHandler struct {
	grinderService service.IGrinderService
	auth           middleware.TokenValidator
}

func NewGrinderHandler(grinderService service.IGrinderService, auth middleware.TokenValidator) *GrinderHandler {
	return &GrinderHandler{grinderService: grinderService, auth: auth}
}

func (h *GrinderHandler) RegisterRoutes(router *gin.RouterGroup) {
	grinders := router.Group("/grinders")
	{
		grinders.GET("", h.ListGrinders)
		grinders.GET("/:id", h.GetGrinder)
		grinders.POST("", middleware.AuthMiddleware(h.auth), h.CreateGrinder)
	}
}

func (h *GrinderHandler) ListGrinders(c *gin.Context) {
	var page types.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, err)
		return
	}
	grinders, err := h.grinderService.ListGrinders(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"grinders": grinders})
}

func (h *GrinderHandler) GetGrinder(c *gin.Context) {
	id, ok := pathID(c, "grinder")
	if !ok {
		return
	}
	grinder, err := h.grinderService.GetGrinder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grinder)
}

func (h *GrinderHandler) CreateGrinder(c *gin.Context) {
	var req types.CreateGrinderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	grinder, err := h.grinderService.CreateGrinder(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, grinder)
}
