package handlers

import (
	"net/http"
	"strconv"

	"gitfora-core/internal/service"

	"github.com/gin-gonic/gin"
)

// TechnologyHandler serves the top-technologies view.
type TechnologyHandler struct {
	analytics *service.Analytics
}

// NewTechnologyHandler creates a new technology handler
func NewTechnologyHandler(analytics *service.Analytics) *TechnologyHandler {
	return &TechnologyHandler{analytics: analytics}
}

// List handles GET /api/technologies
// @Summary Top technologies
// @Description Returns technologies sorted by adoption percentage
// @Tags Technologies
// @Produce json
// @Param limit query int false "Max records" default(10) maximum(20)
// @Success 200 {array} models.Technology
// @Failure 500 {object} ErrorResponse
// @Router /api/technologies [get]
func (h *TechnologyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.TopTechnologies(parseLimit(c)))
}

// parseLimit reads the limit query parameter. Missing, non-numeric or
// non-positive values come back as 0, which the aggregation service maps to
// the view's default. Caps are enforced by the service as well.
func parseLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
