package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitfora-core/internal/github"
	"gitfora-core/internal/models"
	"gitfora-core/internal/service"
	"gitfora-core/internal/store"

	"github.com/gin-gonic/gin"
)

type stubFetcher struct{}

func (stubFetcher) Configured() bool { return false }
func (stubFetcher) FetchUserProfile(context.Context, string) (models.ProfilePatch, error) {
	return models.ProfilePatch{}, github.ErrNoToken
}
func (stubFetcher) FetchUserRepositories(context.Context, string) ([]github.RepoSummary, error) {
	return nil, github.ErrNoToken
}
func (stubFetcher) SearchTrendingCandidates(context.Context, time.Time) ([]github.RepoSummary, error) {
	return nil, github.ErrNoToken
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	st.Seed()
	router, err := NewRouter(Dependencies{
		Store:     st,
		Analytics: service.NewAnalytics(st),
		Fetcher:   stubFetcher{},
	})
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	return router
}

func TestNewRouter_RequiresDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.New()

	if _, err := NewRouter(Dependencies{}); err == nil {
		t.Error("expected error for missing store")
	}
	if _, err := NewRouter(Dependencies{Store: st}); err == nil {
		t.Error("expected error for missing analytics")
	}
	if _, err := NewRouter(Dependencies{Store: st, Analytics: service.NewAnalytics(st)}); err == nil {
		t.Error("expected error for missing fetcher")
	}
}

func TestRouter_WiresCoreRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/dashboard/metrics", http.StatusOK},
		{http.MethodGet, "/api/activity/weekly", http.StatusOK},
		{http.MethodGet, "/api/technologies", http.StatusOK},
		{http.MethodGet, "/api/repositories/trending", http.StatusOK},
		{http.MethodGet, "/api/users/rising", http.StatusOK},
		// No token issuer configured, so auth routes are absent.
		{http.MethodPost, "/api/auth/login", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.status {
			t.Errorf("%s %s: status = %d, want %d", tc.method, tc.path, rec.Code, tc.status)
		}
	}
}

func TestRouter_SeededTechnologies(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/technologies?limit=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var got []models.Technology
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Name != "JavaScript" {
		t.Errorf("top seeded technology = %q, want JavaScript", got[0].Name)
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Errorf("X-Request-ID = %q, want caller-supplied id echoed", got)
	}
}
