package handlers

import (
	"net/http"
	"time"

	"gitfora-core/internal/service"
	"gitfora-core/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// trendingFallbackWindow is how far back the empty-store fallback searches
// for recently created repositories.
const trendingFallbackWindow = 7 * 24 * time.Hour

// RepositoryHandler serves the trending repositories view. When the store is
// empty and an access token is configured it seeds the store once from the
// upstream search API before answering.
type RepositoryHandler struct {
	analytics *service.Analytics
	store     *store.Store
	fetcher   GitHubFetcher
	logger    *zap.Logger
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(analytics *service.Analytics, st *store.Store, fetcher GitHubFetcher, logger *zap.Logger) *RepositoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepositoryHandler{
		analytics: analytics,
		store:     st,
		fetcher:   fetcher,
		logger:    logger,
	}
}

// Trending handles GET /api/repositories/trending
// @Summary Trending repositories
// @Description Returns repositories sorted by today's star delta
// @Tags Repositories
// @Produce json
// @Param limit query int false "Max records" default(10) maximum(15)
// @Success 200 {array} models.Repository
// @Failure 500 {object} ErrorResponse
// @Router /api/repositories/trending [get]
func (h *RepositoryHandler) Trending(c *gin.Context) {
	limit := parseLimit(c)

	repos := h.analytics.TrendingRepositories(limit)
	if len(repos) > 0 || h.fetcher == nil || !h.fetcher.Configured() {
		c.JSON(http.StatusOK, repos)
		return
	}

	// Single fallback cycle: fetch, upsert, re-query once. A still-empty
	// result afterwards is a valid empty response.
	since := time.Now().Add(-trendingFallbackWindow)
	candidates, err := h.fetcher.SearchTrendingCandidates(c.Request.Context(), since)
	if err != nil {
		h.logger.Error("trending fallback fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "upstream_error",
			Message: "Failed to fetch trending repositories",
		})
		return
	}

	for _, candidate := range candidates {
		h.store.UpsertRepository(candidate.Patch())
	}

	c.JSON(http.StatusOK, h.analytics.TrendingRepositories(limit))
}
