package handlers

import (
	"errors"
	"net/http"

	"gitfora-core/internal/github"
	"gitfora-core/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GithubHandler serves the on-demand lookup endpoints that go straight to
// the upstream API on a cache miss.
type GithubHandler struct {
	store   *store.Store
	fetcher GitHubFetcher
	logger  *zap.Logger
}

// NewGithubHandler creates a new GitHub lookup handler
func NewGithubHandler(st *store.Store, fetcher GitHubFetcher, logger *zap.Logger) *GithubHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GithubHandler{
		store:   st,
		fetcher: fetcher,
		logger:  logger,
	}
}

// SearchRequest is the body for POST /api/github/search.
type SearchRequest struct {
	Username string `json:"username" binding:"required,min=1"`
}

// Search handles POST /api/github/search
// @Summary Look up a GitHub user
// @Description Returns the cached profile for a username, fetching it from GitHub on a cache miss
// @Tags GitHub
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Username to look up"
// @Success 200 {object} models.GithubProfile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/github/search [post]
func (h *GithubHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "username is required",
			Details: err.Error(),
		})
		return
	}

	if profile, ok := h.store.ProfileByUsername(req.Username); ok {
		c.JSON(http.StatusOK, profile)
		return
	}

	patch, err := h.fetcher.FetchUserProfile(c.Request.Context(), req.Username)
	if err != nil {
		h.respondFetchError(c, err, "user lookup failed")
		return
	}

	c.JSON(http.StatusOK, h.store.UpsertProfile(patch))
}

// UserRepositories handles GET /api/github/users/:username/repos
// @Summary List a GitHub user's repositories
// @Description Returns the user's repositories in the normalized upstream shape, sorted by stars
// @Tags GitHub
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {array} github.RepoSummary
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/github/users/{username}/repos [get]
func (h *GithubHandler) UserRepositories(c *gin.Context) {
	username := c.Param("username")

	// The raw upstream shape is not persisted, so this endpoint always
	// fetches; the normalized records still feed the trending cache.
	repos, err := h.fetcher.FetchUserRepositories(c.Request.Context(), username)
	if err != nil {
		h.respondFetchError(c, err, "user repository listing failed")
		return
	}

	for _, repo := range repos {
		h.store.UpsertRepository(repo.Patch())
	}

	c.JSON(http.StatusOK, repos)
}

// respondFetchError maps the adapter failure taxonomy to HTTP statuses.
// Upstream detail is logged, never returned.
func (h *GithubHandler) respondFetchError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, github.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "user_not_found",
			Message: "User not found",
		})
	case errors.Is(err, github.ErrNoToken):
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "unconfigured",
			Message: "GitHub access token is not configured",
		})
	default:
		h.logger.Error(context, zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "upstream_error",
			Message: "Failed to fetch data from GitHub",
		})
	}
}
