package store

import (
	"time"

	"gitfora-core/internal/models"
)

// UpsertMetric inserts a new dashboard metric or merges the patch over the
// existing record with the same metric type. Returns a copy of the stored
// record.
func (s *Store) UpsertMetric(p models.MetricPatch) models.DashboardMetric {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	if i, ok := s.metricIdx[p.MetricType]; ok {
		rec := &s.metrics[i]
		applyMetricPatch(rec, p)
		rec.UpdatedAt = now
		return *rec
	}

	s.nextMetricID++
	rec := models.DashboardMetric{
		ID:         s.nextMetricID,
		MetricType: p.MetricType,
		UpdatedAt:  now,
	}
	applyMetricPatch(&rec, p)
	s.metrics = append(s.metrics, rec)
	s.metricIdx[p.MetricType] = len(s.metrics) - 1
	return rec
}

// Metrics returns every dashboard metric in insertion order. The collection
// is small and fixed-size; callers match records by metric type.
func (s *Store) Metrics() []models.DashboardMetric {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DashboardMetric, len(s.metrics))
	copy(out, s.metrics)
	return out
}

func applyMetricPatch(rec *models.DashboardMetric, p models.MetricPatch) {
	setIfPresent(&rec.Total, p.Total)
	setIfPresent(&rec.GrowthPercentage, p.GrowthPercentage)
}
