package store

import (
	"sort"
	"time"

	"gitfora-core/internal/models"
)

// UpsertTechnology inserts a new technology record or merges the patch over
// the existing record with the same name. Returns a copy of the stored
// record.
func (s *Store) UpsertTechnology(p models.TechnologyPatch) models.Technology {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	if i, ok := s.techIdx[p.Name]; ok {
		rec := &s.technologies[i]
		applyTechnologyPatch(rec, p)
		rec.UpdatedAt = now
		return *rec
	}

	s.nextTechID++
	rec := models.Technology{
		ID:        s.nextTechID,
		Name:      p.Name,
		UpdatedAt: now,
	}
	applyTechnologyPatch(&rec, p)
	s.technologies = append(s.technologies, rec)
	s.techIdx[p.Name] = len(s.technologies) - 1
	return rec
}

// TechnologyByName looks up a technology record by exact name.
func (s *Store) TechnologyByName(name string) (models.Technology, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.techIdx[name]
	if !ok {
		return models.Technology{}, false
	}
	return s.technologies[i], true
}

// TechnologiesByPercentage returns up to limit technologies sorted descending
// by adoption percentage. Ties keep insertion order.
func (s *Store) TechnologiesByPercentage(limit int) []models.Technology {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Technology, len(s.technologies))
	copy(out, s.technologies)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Percentage > out[b].Percentage
	})
	return truncate(out, limit)
}

func applyTechnologyPatch(rec *models.Technology, p models.TechnologyPatch) {
	setIfPresent(&rec.Icon, p.Icon)
	setIfPresent(&rec.Color, p.Color)
	setIfPresent(&rec.Percentage, p.Percentage)
	setIfPresent(&rec.ReposCount, p.ReposCount)
}
