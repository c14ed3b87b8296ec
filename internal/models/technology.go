package models

import (
	"time"
)

// Technology represents an aggregated technology adoption record
type Technology struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Icon       string    `json:"icon,omitempty"`
	Color      string    `json:"color,omitempty"`
	Percentage float64   `json:"percentage"`
	ReposCount int       `json:"repos_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TechnologyPatch is a partial update applied to a Technology by name.
// A nil field leaves the stored value untouched; a set field overwrites it.
type TechnologyPatch struct {
	Name       string
	Icon       *string
	Color      *string
	Percentage *float64
	ReposCount *int
}
