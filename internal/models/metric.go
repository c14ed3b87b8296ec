package models

import (
	"time"
)

// Metric types understood by the dashboard.
const (
	MetricUsers        = "users"
	MetricRepositories = "repositories"
	MetricStars        = "stars"
	MetricActivity     = "activity"
)

// DashboardMetric represents a single headline dashboard figure
type DashboardMetric struct {
	ID               int64     `json:"id"`
	MetricType       string    `json:"metric_type"`
	Total            int64     `json:"total"`
	GrowthPercentage string    `json:"growth_percentage,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MetricPatch is a partial update applied to a DashboardMetric by metric type.
// A nil field leaves the stored value untouched; a set field overwrites it.
type MetricPatch struct {
	MetricType       string
	Total            *int64
	GrowthPercentage *string
}
