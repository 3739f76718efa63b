package management

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renalworks/dialysis-api/internal/handler"
	"github.com/renalworks/dialysis-api/internal/middleware"
	"github.com/renalworks/dialysis-api/internal/model"
	managementService "github.com/renalworks/dialysis-api/internal/service/management"
)

type Handler struct {
	service *managementService.Service
}

func NewHandler(service *managementService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	management := r.Group("/patient-management")
	{
		management.POST("", h.CreateRecord)
		management.GET("", h.ListRecords)
	}
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateManagementRequest
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
	records, err := h.service.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
