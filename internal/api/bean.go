package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/brewshare/backend/internal/middleware"
	"github.com/pageza/brewshare/backend/internal/service"
	"github.com/pageza/brewshare/backend/internal/types"
)

type BeanHandler struct {
	beanService service.IBeanService
	auth        middleware.TokenValidator
}

func NewBeanHandler(beanService service.IBeanService, auth middleware.TokenValidator) *BeanHandler {
	return &BeanHandler{beanService: beanService, auth: auth}
}

func (h *BeanHandler) RegisterRoutes(router *gin.RouterGroup) {
	beans := router.Group("/beans")
	{
		beans.GET("", h.ListBeans)
		beans.GET("/:id", h.GetBean)
		beans.POST("", middleware.AuthMiddleware(h.auth), h.CreateBean)
		beans.PUT("/:id", middleware.AuthMiddleware(h.auth), h.UpdateBean)
		beans.DELETE("/:id", middleware.AuthMiddleware(h.auth), h.DeleteBean)
		beans.POST("/:id/image", middleware.AuthMiddleware(h.auth), h.AttachImage)
	}
}

func (h *BeanHandler) ListBeans(c *gin.Context) {
	var filter types.BeanFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}
	var ok bool
	if filter.UserID, ok = queryID(c, "user_id"); !ok {
		return
	}

	beans, err := h.beanService.ListBeans(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"beans": beans})
}

func (h *BeanHandler) GetBean(c *gin.Context) {
	id, ok := pathID(c, "bean")
	if !ok {
		return
	}
	bean, err := h.beanService.GetBean(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bean)
}

func (h *BeanHandler) CreateBean(c *gin.Context) {
	var req types.CreateBeanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	bean, err := h.beanService.CreateBean(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bean)
}

func (h *BeanHandler) UpdateBean(c *gin.Context) {
	id, ok := pathID(c, "bean")
	if !ok {
		return
	}
	var req types.UpdateBeanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	bean, err := h.beanService.UpdateBean(c.Request.Context(), middleware.UserID(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bean)
}

func (h *BeanHandler) DeleteBean(c *gin.Context) {
	id, ok := pathID(c, "bean")
	if !ok {
		return
	}
	if err := h.beanService.DeleteBean(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AttachImage returns a presigned URL the owner uploads the bean photo to
func (h *BeanHandler) AttachImage(c *gin.Context) {
	id, ok := pathID(c, "bean")
	if !ok {
		return
	}
	var req types.BeanImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	upload, err := h.beanService.AttachImage(c.Request.Context(), middleware.UserID(c), id, req.ContentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}
