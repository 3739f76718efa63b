package note

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renalworks/dialysis-api/internal/handler"
	"github.com/renalworks/dialysis-api/internal/model"
	noteService "github.com/renalworks/dialysis-api/internal/service/note"
)

type Handler struct {
	service *noteService.Service
}

func NewHandler(service *noteService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notes := r.Group("/medical-notes")
	{
		notes.POST("", h.CreateNote)
		notes.GET("", h.ListNotes)
	}
}

func (h *Handler) CreateNote(c *gin.Context) {
	var req model.CreateMedicalNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"noteId": id})
}

func (h *Handler) ListNotes(c *gin.Context) {
	notes, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}
