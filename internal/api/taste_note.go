package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/brewshare/backend/internal/middleware"
	"github.com/pageza/brewshare/backend/internal/service"
	"github.com/pageza/brewshare/backend/internal/types"
)

type TasteNoteHandler struct {
	noteService service.ITasteNoteService
	auth        middleware.TokenValidator
}

func NewTasteNoteHandler(noteService service.ITasteNoteService, auth middleware.TokenValidator) *TasteNoteHandler {
	return &TasteNoteHandler{noteService: noteService, auth: auth}
}

func (h *TasteNoteHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes/:id/notes", h.ListNotes)
	router.POST("/recipes/:id/notes", middleware.AuthMiddleware(h.auth), h.CreateNote)

	notes := router.Group("/notes", middleware.AuthMiddleware(h.auth))
	{
		notes.PUT("/:id", h.UpdateNote)
		notes.DELETE("/:id", h.DeleteNote)
	}
}

// ListNotes returns a recipe's notes together with its rating summary
func (h *TasteNoteHandler) ListNotes(c *gin.Context) {
	recipeID, ok := pathID(c, "recipe")
	if !ok {
		return
	}
	var page types.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, err)
		return
	}

	notes, err := h.noteService.ListNotes(c.Request.Context(), recipeID, page.Limit, page.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := h.noteService.Summary(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes, "summary": summary})
}

func (h *TasteNoteHandler) CreateNote(c *gin.Context) {
	recipeID, ok := pathID(c, "recipe")
	if !ok {
		return
	}
	var req types.TasteNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), middleware.UserID(c), recipeID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *TasteNoteHandler) UpdateNote(c *gin.Context) {
	id, ok := pathID(c, "taste note")
	if !ok {
		return
	}
	var req types.TasteNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), middleware.UserID(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *TasteNoteHandler) DeleteNote(c *gin.Context) {
	id, ok := pathID(c, "taste note")
	if !ok {
		return
	}
	if err := h.noteService.DeleteNote(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
