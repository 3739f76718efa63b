package medication

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renalworks/dialysis-api/internal/handler"
	"github.com/renalworks/dialysis-api/internal/middleware"
	"github.com/renalworks/dialysis-api/internal/model"
	medicationService "github.com/renalworks/dialysis-api/internal/service/medication"
)

type Handler struct {
	service *medicationService.Service
}

func NewHandler(service *medicationService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	medication := r.Group("/medication")
	{
		medication.POST("/records", h.CreateRecord)
		medication.GET("/records/:patientId", h.ListRecords)
	}
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateMedicationRequest
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
	patientID, ok := handler.PathID(c, "patientId")
	if !ok {
		return
	}

	records, err := h.service.List(c.Request.Context(), middleware.UserID(c), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
