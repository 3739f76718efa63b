package hemodialysis

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renalworks/dialysis-api/internal/handler"
	"github.com/renalworks/dialysis-api/internal/middleware"
	"github.com/renalworks/dialysis-api/internal/model"
	hemoService "github.com/renalworks/dialysis-api/internal/service/hemodialysis"
	patientService "github.com/renalworks/dialysis-api/internal/service/patient"
)

type Handler struct {
	sessions *hemoService.Service
	patients *patientService.Service
}

func NewHandler(sessions *hemoService.Service, patients *patientService.Service) *Handler {
	return &Handler{sessions: sessions, patients: patients}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	hemo := r.Group("/hemodialysis")
	{
		hemo.POST("/:patientId/record", h.CreateRecord)
		hemo.GET("/:patientId/records", h.ListRecords)
		hemo.GET("/patient/:patientId", h.GetPatientDetails)
	}
}

func (h *Handler) CreateRecord(c *gin.Context) {
	patientID, ok := handler.PathID(c, "patientId")
	if !ok {
		return
	}

	var req model.CreateHemodialysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	record, err := h.sessions.Create(c.Request.Context(), patientID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *Handler) ListRecords(c *gin.Context) {
	patientID, ok := handler.PathID(c, "patientId")
	if !ok {
		return
	}

	records, err := h.sessions.List(c.Request.Context(), middleware.UserID(c), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetPatientDetails serves the master-record subset the session form uses
// for autofill.
func (h *Handler) GetPatientDetails(c *gin.Context) {
	patientID, ok := handler.PathID(c, "patientId")
	if !ok {
		return
	}

	details, err := h.patients.GetDetails(c.Request.Context(), middleware.UserID(c), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
