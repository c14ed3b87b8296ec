package models

import (
	"time"
)

// Account represents a local login account. Accounts are created once and
// never updated or deleted.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
