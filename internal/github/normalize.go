package github

import (
	"fmt"

	"gitfora-core/internal/models"
)

// RepoSummary is the normalized upstream repository shape. The user
// repository endpoint returns it directly; Patch converts it into the
// store's internal record shape.
type RepoSummary struct {
	GithubID    int64  `json:"github_id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description,omitempty"`
	Owner       string `json:"owner"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	URL         string `json:"url"`
}

func normalizeUser(u userPayload, requested string) models.ProfilePatch {
	username := u.Login
	if username == "" {
		username = requested
	}
	return models.ProfilePatch{
		Username:    username,
		Name:        u.Name,
		AvatarURL:   u.AvatarURL,
		Followers:   u.Followers,
		Following:   u.Following,
		PublicRepos: u.PublicRepos,
		Bio:         u.Bio,
		Location:    u.Location,
		Company:     u.Company,
		Blog:        u.Blog,
	}
}

func normalizeRepo(r repoPayload) RepoSummary {
	s := RepoSummary{
		GithubID: r.ID,
		Name:     r.Name,
		FullName: r.FullName,
		Owner:    r.Owner.Login,
		Stars:    r.StargazersCount,
		Forks:    r.ForksCount,
		URL:      r.HTMLURL,
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
	if r.Language != nil {
		s.Language = *r.Language
	}
	return s
}

// Patch converts the summary into a store patch. The upstream API exposes
// no daily star delta, so TodayStars is a deterministic estimate derived
// from the total star count at ingestion time; the record is flagged as
// estimated so readers can tell it apart from a true delta.
func (s RepoSummary) Patch() models.RepositoryPatch {
	today := estimateTodayStars(s.Stars)
	estimated := true
	growth := growthPercentage(today, s.Stars)

	return models.RepositoryPatch{
		GithubID:         s.GithubID,
		Name:             &s.Name,
		FullName:         &s.FullName,
		Description:      &s.Description,
		Owner:            &s.Owner,
		Language:         &s.Language,
		Stars:            &s.Stars,
		Forks:            &s.Forks,
		TodayStars:       &today,
		Estimated:        &estimated,
		GrowthPercentage: &growth,
		URL:              &s.URL,
	}
}

// estimateTodayStars derives a stand-in daily delta from the total star
// count: 2% of total, at least 1 for any starred repository.
func estimateTodayStars(stars int) int {
	if stars <= 0 {
		return 0
	}
	est := stars / 50
	if est < 1 {
		est = 1
	}
	return est
}

func growthPercentage(today, stars int) string {
	if stars <= 0 || today <= 0 {
		return ""
	}
	return fmt.Sprintf("+%.1f%%", float64(today)/float64(stars)*100)
}
