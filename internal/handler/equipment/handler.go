package equipment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renalworks/dialysis-api/internal/handler"
	"github.com/renalworks/dialysis-api/internal/middleware"
	"github.com/renalworks/dialysis-api/internal/model"
	equipmentService "github.com/renalworks/dialysis-api/internal/service/equipment"
)

type Handler struct {
	service *equipmentService.Service
}

func NewHandler(service *equipmentService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	equipment := r.Group("/equipment")
	{
		equipment.POST("/maintenance", h.CreateRecord)
		equipment.GET("/maintenance", h.ListRecords)
	}
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	id, err := h.service.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recordId": id})
}

func (h *Handler) ListRecords(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
