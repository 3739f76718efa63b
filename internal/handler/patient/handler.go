package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renalworks/dialysis-api/internal/handler"
	"github.com/renalworks/dialysis-api/internal/middleware"
	"github.com/renalworks/dialysis-api/internal/model"
	pathologyService "github.com/renalworks/dialysis-api/internal/service/pathology"
	patientService "github.com/renalworks/dialysis-api/internal/service/patient"
)

type Handler struct {
	patients  *patientService.Service
	pathology *pathologyService.Service
}

func NewHandler(patients *patientService.Service, pathology *pathologyService.Service) *Handler {
	return &Handler{patients: patients, pathology: pathology}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.CreatePatient)
		patients.GET("", h.ListPatients)
		patients.GET("/search", h.SearchPatients)
		patients.POST("/:patientId/pathology", h.CreatePathology)
		patients.GET("/:patientId/pathology", h.ListPathology)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	id, err := h.patients.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"patientId": id})
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.patients.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) SearchPatients(c *gin.Context) {
	patients, err := h.patients.Search(c.Request.Context(), middleware.UserID(c), c.Query("q"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) CreatePathology(c *gin.Context) {
	patientID, ok := handler.PathID(c, "patientId")
	if !ok {
		return
	}

	var req model.CreatePathologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	record, err := h.pathology.Create(c.Request.Context(), patientID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *Handler) ListPathology(c *gin.Context) {
	patientID, ok := handler.PathID(c, "patientId")
	if !ok {
		return
	}

	records, err := h.pathology.List(c.Request.Context(), middleware.UserID(c), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
