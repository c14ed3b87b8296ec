package models

import (
	"time"
)

// Repository represents a cached GitHub repository with its ranking metrics
type Repository struct {
	ID               int64     `json:"id"`
	GithubID         int64     `json:"github_id"`
	Name             string    `json:"name"`
	FullName         string    `json:"full_name"`
	Description      string    `json:"description,omitempty"`
	Owner            string    `json:"owner"`
	Language         string    `json:"language,omitempty"`
	Stars            int       `json:"stars"`
	Forks            int       `json:"forks"`
	TodayStars       int       `json:"today_stars"`
	Estimated        bool      `json:"estimated"`
	GrowthPercentage string    `json:"growth_percentage,omitempty"`
	URL              string    `json:"url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RepositoryPatch is a partial update applied to a Repository. GithubID is
// the upstream platform's numeric repository id and acts as the natural key.
// A nil field leaves the stored value untouched; a set field overwrites it.
// Estimated marks TodayStars as a derived estimate rather than a true daily
// delta.
type RepositoryPatch struct {
	GithubID         int64
	Name             *string
	FullName         *string
	Description      *string
	Owner            *string
	Language         *string
	Stars            *int
	Forks            *int
	TodayStars       *int
	Estimated        *bool
	GrowthPercentage *string
	URL              *string
}
