package handlers

import (
	"net/http"

	"trimly/services/insights"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InsightsHandler exposes the metrics and alerts endpoints.
type InsightsHandler struct {
	Service insights.InsightsService
}

func NewInsightsHandler(svc insights.InsightsService) *InsightsHandler {
	return &InsightsHandler{Service: svc}
}

// InsightsDashboardHandler returns the full metrics + alerts report.
func (h *InsightsHandler) InsightsDashboardHandler(c *gin.Context) {
	logger := utils.GetLogger()
	shopID := shopIDFromContext(c)

	report, err := h.Service.Dashboard(c.Request.Context(), shopID)
	if err != nil {
		logger.Error("Failed to build insights dashboard", zap.String("shopID", shopID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build dashboard", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}

// InsightsMetricsHandler returns only the metrics snapshot.
func (h *InsightsHandler) InsightsMetricsHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	metrics, err := h.Service.Metrics(c.Request.Context(), shopID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute metrics", err.Error())
		return
	}
	c.JSON(http.StatusOK, metrics)
}
