package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchUserProfile_Normalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		fmt.Fprint(w, `{
			"login": "octocat",
			"name": "The Octocat",
			"avatar_url": "https://avatars.example/octocat",
			"followers": 4200,
			"following": 9,
			"public_repos": 8,
			"bio": null,
			"location": "San Francisco",
			"stargazers_count": 999
		}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token")
	patch, err := c.FetchUserProfile(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("FetchUserProfile() error = %v", err)
	}

	if patch.Username != "octocat" {
		t.Errorf("Username = %q", patch.Username)
	}
	if patch.Name == nil || *patch.Name != "The Octocat" {
		t.Errorf("Name = %v, want The Octocat", patch.Name)
	}
	if patch.Followers == nil || *patch.Followers != 4200 {
		t.Errorf("Followers = %v, want 4200", patch.Followers)
	}
	// Upstream null must stay absent so the store merge leaves it alone.
	if patch.Bio != nil {
		t.Errorf("Bio = %v, want nil for upstream null", patch.Bio)
	}
	if patch.Company != nil {
		t.Errorf("Company = %v, want nil for missing upstream field", patch.Company)
	}
}

func TestFetchUserProfile_ErrorTaxonomy(t *testing.T) {
	status := http.StatusNotFound
	body := `{"message":"Not Found"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token")

	if _, err := c.FetchUserProfile(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("404 error = %v, want ErrNotFound", err)
	}

	status = http.StatusForbidden
	body = `{"message":"API rate limit exceeded"}`
	_, err := c.FetchUserProfile(context.Background(), "ghost")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("403 error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}

	unconfigured := NewClient(srv.URL, "")
	if _, err := unconfigured.FetchUserProfile(context.Background(), "octocat"); !errors.Is(err, ErrNoToken) {
		t.Errorf("tokenless error = %v, want ErrNoToken", err)
	}
	if unconfigured.Configured() {
		t.Error("Configured() = true for empty token")
	}
}

func TestFetchUserRepositories_SortsAndCaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[")
		for i := 0; i < 12; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			// Stars deliberately out of order.
			fmt.Fprintf(w, `{"id": %d, "name": "repo-%d", "full_name": "octocat/repo-%d",
				"owner": {"login": "octocat"}, "stargazers_count": %d, "forks_count": 1,
				"html_url": "https://github.com/octocat/repo-%d"}`, i+1, i, i, (i*7)%12, i)
		}
		fmt.Fprint(w, "]")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token")
	repos, err := c.FetchUserRepositories(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("FetchUserRepositories() error = %v", err)
	}

	if len(repos) != 10 {
		t.Fatalf("len = %d, want capped at 10", len(repos))
	}
	for i := 1; i < len(repos); i++ {
		if repos[i].Stars > repos[i-1].Stars {
			t.Errorf("result not sorted by stars desc at %d", i)
		}
	}
	if repos[0].Owner != "octocat" {
		t.Errorf("Owner = %q, want octocat", repos[0].Owner)
	}
}

func TestSearchTrendingCandidates(t *testing.T) {
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/repositories" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "created:>2024-05-01" {
			t.Errorf("q = %q", got)
		}
		if got := r.URL.Query().Get("sort"); got != "stars" {
			t.Errorf("sort = %q", got)
		}
		fmt.Fprint(w, `{"total_count": 1, "items": [
			{"id": 77, "name": "hot", "full_name": "someone/hot", "description": "a hot repo",
			 "owner": {"login": "someone"}, "language": "Go", "stargazers_count": 1500,
			 "forks_count": 30, "html_url": "https://github.com/someone/hot"}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token")
	repos, err := c.SearchTrendingCandidates(context.Background(), since)
	if err != nil {
		t.Fatalf("SearchTrendingCandidates() error = %v", err)
	}
	if len(repos) != 1 {
		t.Fatalf("len = %d, want 1", len(repos))
	}
	if repos[0].GithubID != 77 || repos[0].Language != "Go" {
		t.Errorf("unexpected summary %+v", repos[0])
	}
}

func TestRepoSummaryPatch_DeterministicEstimate(t *testing.T) {
	s := RepoSummary{GithubID: 1, Name: "hot", Owner: "someone", Stars: 1500}

	a := s.Patch()
	b := s.Patch()

	if a.TodayStars == nil || *a.TodayStars != 30 {
		t.Fatalf("TodayStars = %v, want 30 for 1500 stars", a.TodayStars)
	}
	if *a.TodayStars != *b.TodayStars {
		t.Error("estimate not deterministic across calls")
	}
	if a.Estimated == nil || !*a.Estimated {
		t.Error("Estimated flag not set on derived delta")
	}
	if a.GrowthPercentage == nil || *a.GrowthPercentage != "+2.0%" {
		t.Errorf("GrowthPercentage = %v, want +2.0%%", a.GrowthPercentage)
	}

	zero := RepoSummary{GithubID: 2, Name: "new", Owner: "someone", Stars: 0}.Patch()
	if *zero.TodayStars != 0 {
		t.Errorf("TodayStars for unstarred repo = %d, want 0", *zero.TodayStars)
	}
}
