package dialysis

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renalworks/dialysis-api/internal/handler"
	"github.com/renalworks/dialysis-api/internal/middleware"
	"github.com/renalworks/dialysis-api/internal/model"
	dialysisService "github.com/renalworks/dialysis-api/internal/service/dialysis"
)

type Handler struct {
	charts *dialysisService.Service
}

func NewHandler(charts *dialysisService.Service) *Handler {
	return &Handler{charts: charts}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	dialysis := r.Group("/dialysis")
	{
		dialysis.POST("/charts", h.CreateChart)
		dialysis.GET("/charts/:patientId", h.ListCharts)
	}
}

func (h *Handler) CreateChart(c *gin.Context) {
	var req model.CreateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	id, err := h.charts.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chartId": id})
}

func (h *Handler) ListCharts(c *gin.Context) {
	patientID, ok := handler.PathID(c, "patientId")
	if !ok {
		return
	}

	charts, err := h.charts.List(c.Request.Context(), middleware.UserID(c), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, charts)
}
