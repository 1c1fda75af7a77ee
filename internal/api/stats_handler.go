package api

import (
	"net/http"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler holds the stats service dependency.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetSummary handles GET /stats/summary.
func (h *StatsHandler) GetSummary(c *gin.Context) {
	stats, err := h.statsService.GetSummary(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute statistics.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetWeeklyDuration handles GET /stats/charts/duration.
func (h *StatsHandler) GetWeeklyDuration(c *gin.Context) {
	series, err := h.statsService.GetWeeklyDuration(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute duration chart.")
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetCaloriesByType handles GET /stats/charts/calories.
func (h *StatsHandler) GetCaloriesByType(c *gin.Context) {
	series, err := h.statsService.GetCaloriesByType(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute calories chart.")
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetTypeDistribution handles GET /stats/charts/types.
func (h *StatsHandler) GetTypeDistribution(c *gin.Context) {
	series, err := h.statsService.GetTypeDistribution(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute type distribution.")
		return
	}
	c.JSON(http.StatusOK, series)
}
