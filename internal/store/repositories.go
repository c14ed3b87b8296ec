package store

import (
	"sort"
	"time"

	"gitfora-core/internal/models"
)

// UpsertRepository inserts a new repository record or merges the patch over
// the existing record with the same upstream id. Returns a copy of the
// stored record.
func (s *Store) UpsertRepository(p models.RepositoryPatch) models.Repository {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	if i, ok := s.repoIdx[p.GithubID]; ok {
		rec := &s.repos[i]
		applyRepositoryPatch(rec, p)
		rec.UpdatedAt = now
		return *rec
	}

	s.nextRepoID++
	rec := models.Repository{
		ID:        s.nextRepoID,
		GithubID:  p.GithubID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyRepositoryPatch(&rec, p)
	s.repos = append(s.repos, rec)
	s.repoIdx[p.GithubID] = len(s.repos) - 1
	return rec
}

// RepositoryByGithubID looks up a repository by its upstream numeric id.
func (s *Store) RepositoryByGithubID(githubID int64) (models.Repository, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.repoIdx[githubID]
	if !ok {
		return models.Repository{}, false
	}
	return s.repos[i], true
}

// RepositoriesByTodayStars returns up to limit repositories sorted descending
// by today's star delta. Ties keep insertion order.
func (s *Store) RepositoriesByTodayStars(limit int) []models.Repository {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Repository, len(s.repos))
	copy(out, s.repos)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].TodayStars > out[b].TodayStars
	})
	return truncate(out, limit)
}

func applyRepositoryPatch(rec *models.Repository, p models.RepositoryPatch) {
	setIfPresent(&rec.Name, p.Name)
	setIfPresent(&rec.FullName, p.FullName)
	setIfPresent(&rec.Description, p.Description)
	setIfPresent(&rec.Owner, p.Owner)
	setIfPresent(&rec.Language, p.Language)
	setIfPresent(&rec.Stars, p.Stars)
	setIfPresent(&rec.Forks, p.Forks)
	setIfPresent(&rec.TodayStars, p.TodayStars)
	setIfPresent(&rec.Estimated, p.Estimated)
	setIfPresent(&rec.GrowthPercentage, p.GrowthPercentage)
	setIfPresent(&rec.URL, p.URL)
}
