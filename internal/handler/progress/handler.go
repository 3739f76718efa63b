package progress

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renalworks/dialysis-api/internal/handler"
	"github.com/renalworks/dialysis-api/internal/middleware"
	"github.com/renalworks/dialysis-api/internal/model"
	progressService "github.com/renalworks/dialysis-api/internal/service/progress"
)

type Handler struct {
	service *progressService.Service
}

func NewHandler(service *progressService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	progress := r.Group("/clinical-progress")
	{
		progress.POST("/log", h.CreateLog)
		progress.GET("/:patientId", h.ListLogs)
	}
}

func (h *Handler) CreateLog(c *gin.Context) {
	var req model.CreateProgressLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	entries, err := h.service.CreateBatch(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entries": entries})
}

func (h *Handler) ListLogs(c *gin.Context) {
	patientID, ok := handler.PathID(c, "patientId")
	if !ok {
		return
	}

	entries, err := h.service.List(c.Request.Context(), middleware.UserID(c), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
