package handlers

import (
	"net/http"

	"gitfora-core/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the rising users view.
type UserHandler struct {
	analytics *service.Analytics
}

// NewUserHandler creates a new user handler
func NewUserHandler(analytics *service.Analytics) *UserHandler {
	return &UserHandler{analytics: analytics}
}

// Rising handles GET /api/users/rising
// @Summary Rising users
// @Description Returns cached GitHub profiles sorted by follower count
// @Tags Users
// @Produce json
// @Success 200 {array} models.GithubProfile
// @Failure 500 {object} ErrorResponse
// @Router /api/users/rising [get]
func (h *UserHandler) Rising(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.RisingUsers())
}
