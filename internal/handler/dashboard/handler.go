package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renalworks/dialysis-api/internal/handler"
	"github.com/renalworks/dialysis-api/internal/middleware"
	dashboardService "github.com/renalworks/dialysis-api/internal/service/dashboard"
)

type Handler struct {
	service *dashboardService.Service
}

func NewHandler(service *dashboardService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/:patientId", h.GetSummary)
	}
}

func (h *Handler) GetSummary(c *gin.Context) {
	patientID, ok := handler.PathID(c, "patientId")
	if !ok {
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), middleware.UserID(c), patientID, c.Query("timeFrame"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
