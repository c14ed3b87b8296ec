package service

import (
	"testing"

	"gitfora-core/internal/config"
	"gitfora-core/internal/models"
	"gitfora-core/internal/store"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestTrendingRepositories_DefaultAndCap(t *testing.T) {
	st := store.New()
	for i := 0; i < 25; i++ {
		st.UpsertRepository(models.RepositoryPatch{
			GithubID:   int64(i + 1),
			TodayStars: intPtr(i),
		})
	}
	a := NewAnalytics(st)

	if got := len(a.TrendingRepositories(0)); got != config.DefaultTrendingLimit {
		t.Errorf("limit 0 returned %d, want default %d", got, config.DefaultTrendingLimit)
	}
	if got := len(a.TrendingRepositories(-5)); got != config.DefaultTrendingLimit {
		t.Errorf("negative limit returned %d, want default %d", got, config.DefaultTrendingLimit)
	}
	if got := len(a.TrendingRepositories(1000)); got != config.MaxTrendingLimit {
		t.Errorf("limit 1000 returned %d, want cap %d", got, config.MaxTrendingLimit)
	}

	got := a.TrendingRepositories(3)
	if len(got) != 3 {
		t.Fatalf("limit 3 returned %d", len(got))
	}
	if got[0].TodayStars != 24 {
		t.Errorf("top delta = %d, want 24", got[0].TodayStars)
	}
}

func TestTopTechnologies_ConcreteScenario(t *testing.T) {
	st := store.New()
	st.UpsertTechnology(models.TechnologyPatch{Name: "JavaScript", Percentage: floatPtr(85)})
	st.UpsertTechnology(models.TechnologyPatch{Name: "Python", Percentage: floatPtr(78)})
	a := NewAnalytics(st)

	got := a.TopTechnologies(1)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Name != "JavaScript" || got[0].Percentage != 85 {
		t.Errorf("got %q (%.0f), want JavaScript (85)", got[0].Name, got[0].Percentage)
	}
}

func TestRisingUsers_FixedCap(t *testing.T) {
	st := store.New()
	for i := 0; i < config.RisingUsersLimit+10; i++ {
		st.UpsertProfile(models.ProfilePatch{
			Username:  "user-" + string(rune('a'+i%26)) + string(rune('a'+i/26)),
			Followers: intPtr(i),
		})
	}
	a := NewAnalytics(st)

	got := a.RisingUsers()
	if len(got) != config.RisingUsersLimit {
		t.Fatalf("len = %d, want %d", len(got), config.RisingUsersLimit)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Followers > got[i-1].Followers {
			t.Errorf("not sorted by followers desc at %d", i)
		}
	}
}

func TestDashboardMetrics_ReturnsSeededSet(t *testing.T) {
	st := store.New()
	st.Seed()
	a := NewAnalytics(st)

	if got := len(a.DashboardMetrics()); got != 4 {
		t.Errorf("len = %d, want 4", got)
	}
}
