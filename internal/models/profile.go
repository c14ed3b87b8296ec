package models

import (
	"time"
)

// GithubProfile represents a cached GitHub user profile
type GithubProfile struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	Bio         string    `json:"bio,omitempty"`
	Location    string    `json:"location,omitempty"`
	Company     string    `json:"company,omitempty"`
	Blog        string    `json:"blog,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfilePatch is a partial update applied to a GithubProfile by natural key.
// Username is the natural key and is matched case-insensitively. A nil field
// leaves the stored value untouched; a set field overwrites it.
type ProfilePatch struct {
	Username    string
	Name        *string
	AvatarURL   *string
	Followers   *int
	Following   *int
	PublicRepos *int
	Bio         *string
	Location    *string
	Company     *string
	Blog        *string
}
