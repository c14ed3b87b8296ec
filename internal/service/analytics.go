// Package service computes the derived read-side views served by the API:
// trending repositories, rising users, top technologies and the dashboard
// metric set. Views are recomputed on demand; the underlying collections are
// small enough that a single sort per request beats maintaining incremental
// indexes.
package service

import (
	"gitfora-core/internal/config"
	"gitfora-core/internal/models"
	"gitfora-core/internal/store"
)

// Analytics translates view requests into store queries with the configured
// default and cap semantics. Store and aggregation never report "not found";
// an empty slice is a valid result that handlers interpret in context.
type Analytics struct {
	store *store.Store
}

// NewAnalytics creates the aggregation service over the given store.
func NewAnalytics(st *store.Store) *Analytics {
	return &Analytics{store: st}
}

// TrendingRepositories returns repositories sorted descending by today's
// star delta. A non-positive limit falls back to the default; any limit is
// clamped to the trending cap.
func (a *Analytics) TrendingRepositories(limit int) []models.Repository {
	return a.store.RepositoriesByTodayStars(
		clampLimit(limit, config.DefaultTrendingLimit, config.MaxTrendingLimit))
}

// RisingUsers returns profiles sorted descending by follower count, always
// capped at the fixed rising-users limit.
func (a *Analytics) RisingUsers() []models.GithubProfile {
	return a.store.ProfilesByFollowers(config.RisingUsersLimit)
}

// TopTechnologies returns technologies sorted descending by adoption
// percentage, clamped to the technology cap.
func (a *Analytics) TopTechnologies(limit int) []models.Technology {
	return a.store.TechnologiesByPercentage(
		clampLimit(limit, config.DefaultTechnologyLimit, config.MaxTechnologyLimit))
}

// DashboardMetrics returns every dashboard metric; callers match records by
// metric type.
func (a *Analytics) DashboardMetrics() []models.DashboardMetric {
	return a.store.Metrics()
}

func clampLimit(limit, fallback, ceiling int) int {
	if limit <= 0 {
		limit = fallback
	}
	if limit > ceiling {
		limit = ceiling
	}
	return limit
}
