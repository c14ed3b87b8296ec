package store

import (
	"sort"
	"strings"
	"time"

	"gitfora-core/internal/models"
)

// UpsertProfile inserts a new profile or merges the patch over the existing
// record for the same username. The username match is case-insensitive; the
// first spelling seen is the one kept. Returns a copy of the stored record.
func (s *Store) UpsertProfile(p models.ProfilePatch) models.GithubProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(p.Username)
	now := time.Now().UTC()

	if i, ok := s.profileIdx[key]; ok {
		rec := &s.profiles[i]
		applyProfilePatch(rec, p)
		rec.UpdatedAt = now
		return *rec
	}

	s.nextProfileID++
	rec := models.GithubProfile{
		ID:        s.nextProfileID,
		Username:  p.Username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProfilePatch(&rec, p)
	s.profiles = append(s.profiles, rec)
	s.profileIdx[key] = len(s.profiles) - 1
	return rec
}

// ProfileByUsername looks up a profile by username, case-insensitively.
func (s *Store) ProfileByUsername(username string) (models.GithubProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.profileIdx[strings.ToLower(username)]
	if !ok {
		return models.GithubProfile{}, false
	}
	return s.profiles[i], true
}

// ProfilesByFollowers returns up to limit profiles sorted descending by
// follower count. Ties keep insertion order.
func (s *Store) ProfilesByFollowers(limit int) []models.GithubProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.GithubProfile, len(s.profiles))
	copy(out, s.profiles)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Followers > out[b].Followers
	})
	return truncate(out, limit)
}

func applyProfilePatch(rec *models.GithubProfile, p models.ProfilePatch) {
	setIfPresent(&rec.Name, p.Name)
	setIfPresent(&rec.AvatarURL, p.AvatarURL)
	setIfPresent(&rec.Followers, p.Followers)
	setIfPresent(&rec.Following, p.Following)
	setIfPresent(&rec.PublicRepos, p.PublicRepos)
	setIfPresent(&rec.Bio, p.Bio)
	setIfPresent(&rec.Location, p.Location)
	setIfPresent(&rec.Company, p.Company)
	setIfPresent(&rec.Blog, p.Blog)
}

// truncate caps a sorted result set. A negative or zero limit returns an
// empty slice rather than the full set so a bad limit can never over-fetch.
func truncate[T any](in []T, limit int) []T {
	if limit <= 0 {
		return []T{}
	}
	if limit < len(in) {
		return in[:limit]
	}
	return in
}
