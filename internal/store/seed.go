package store

import (
	"gitfora-core/internal/models"
)

// Seed loads the fixed technology set and the four dashboard metrics. It is
// called once at process start; running it against a non-empty store merges
// the seed values over whatever is already there.
func (s *Store) Seed() {
	for _, t := range seedTechnologies {
		s.UpsertTechnology(t)
	}
	for _, m := range seedMetrics {
		s.UpsertMetric(m)
	}
}

var seedTechnologies = []models.TechnologyPatch{
	{Name: "JavaScript", Icon: ptr("javascript"), Color: ptr("#F7DF1E"), Percentage: ptr(85.3), ReposCount: ptr(2400000)},
	{Name: "Python", Icon: ptr("python"), Color: ptr("#3776AB"), Percentage: ptr(78.1), ReposCount: ptr(2100000)},
	{Name: "TypeScript", Icon: ptr("typescript"), Color: ptr("#3178C6"), Percentage: ptr(71.8), ReposCount: ptr(1600000)},
	{Name: "Java", Icon: ptr("java"), Color: ptr("#E76F00"), Percentage: ptr(64.5), ReposCount: ptr(1450000)},
	{Name: "Go", Icon: ptr("go"), Color: ptr("#00ADD8"), Percentage: ptr(57.2), ReposCount: ptr(980000)},
	{Name: "Rust", Icon: ptr("rust"), Color: ptr("#DEA584"), Percentage: ptr(44.9), ReposCount: ptr(520000)},
	{Name: "C++", Icon: ptr("cplusplus"), Color: ptr("#00599C"), Percentage: ptr(41.3), ReposCount: ptr(760000)},
	{Name: "Ruby", Icon: ptr("ruby"), Color: ptr("#CC342D"), Percentage: ptr(33.6), ReposCount: ptr(410000)},
}

var seedMetrics = []models.MetricPatch{
	{MetricType: models.MetricUsers, Total: ptr[int64](114_000_000), GrowthPercentage: ptr("+12.4%")},
	{MetricType: models.MetricRepositories, Total: ptr[int64](372_000_000), GrowthPercentage: ptr("+9.1%")},
	{MetricType: models.MetricStars, Total: ptr[int64](1_650_000_000), GrowthPercentage: ptr("+15.3%")},
	{MetricType: models.MetricActivity, Total: ptr[int64](89_000_000), GrowthPercentage: ptr("+4.2%")},
}

func ptr[T any](v T) *T {
	return &v
}
