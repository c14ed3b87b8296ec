package handlers

import (
	"net/http"

	"gitfora-core/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the headline metrics and the weekly activity
// series.
type DashboardHandler struct {
	analytics *service.Analytics
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(analytics *service.Analytics) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// Metrics handles GET /api/dashboard/metrics
// @Summary Dashboard metrics
// @Description Returns the four headline dashboard metrics; callers match records by metric_type
// @Tags Dashboard
// @Produce json
// @Success 200 {array} models.DashboardMetric
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.DashboardMetrics())
}

// WeeklyActivityResponse is a fixed labeled time series for the activity
// chart. It is static, not derived from the store.
type WeeklyActivityResponse struct {
	Labels       []string `json:"labels"`
	Commits      []int    `json:"commits"`
	PullRequests []int    `json:"pull_requests"`
}

var weeklyActivity = WeeklyActivityResponse{
	Labels:       []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	Commits:      []int{420, 510, 475, 590, 620, 310, 280},
	PullRequests: []int{130, 145, 120, 170, 185, 90, 75},
}

// WeeklyActivity handles GET /api/activity/weekly
// @Summary Weekly activity series
// @Description Returns the fixed weekly activity time series
// @Tags Dashboard
// @Produce json
// @Success 200 {object} WeeklyActivityResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activity/weekly [get]
func (h *DashboardHandler) WeeklyActivity(c *gin.Context) {
	c.JSON(http.StatusOK, weeklyActivity)
}
