// Package store is the in-memory entity store backing the analytics API.
//
// Each entity type lives in its own keyed collection with auto-incrementing
// integer ids and insert-or-merge (upsert) semantics keyed by a natural key:
// username for profiles and accounts, the upstream numeric id for
// repositories, name for technologies and metric type for dashboard metrics.
// Records are never deleted; the store lives for the process lifetime and is
// rebuilt from seed data on every start.
package store

import (
	"sync"

	"gitfora-core/internal/models"
)

// Store holds every entity collection. It is constructed once at startup and
// passed to the services and handlers that need it; callers receive copies of
// records and must route all mutation through the upsert operations.
type Store struct {
	mu sync.RWMutex

	profiles      []models.GithubProfile
	profileIdx    map[string]int
	nextProfileID int64

	repos      []models.Repository
	repoIdx    map[int64]int
	nextRepoID int64

	technologies []models.Technology
	techIdx      map[string]int
	nextTechID   int64

	metrics      []models.DashboardMetric
	metricIdx    map[string]int
	nextMetricID int64

	accounts      []models.Account
	accountIdx    map[string]int
	nextAccountID int64
}

// New creates an empty store.
func New() *Store {
	return &Store{
		profileIdx: make(map[string]int),
		repoIdx:    make(map[int64]int),
		techIdx:    make(map[string]int),
		metricIdx:  make(map[string]int),
		accountIdx: make(map[string]int),
	}
}

// setIfPresent overwrites dst when the patch supplied a value for the field.
func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
