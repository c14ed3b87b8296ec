package store

import (
	"errors"
	"strings"
	"time"

	"gitfora-core/internal/models"
)

// ErrAccountExists is returned when an account is created with a username
// that is already taken (case-insensitively).
var ErrAccountExists = errors.New("account already exists")

// CreateAccount inserts a new login account. Accounts are create-once: there
// is no update or delete path.
func (s *Store) CreateAccount(username, passwordHash string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(username)
	if _, ok := s.accountIdx[key]; ok {
		return models.Account{}, ErrAccountExists
	}

	s.nextAccountID++
	rec := models.Account{
		ID:           s.nextAccountID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.accounts = append(s.accounts, rec)
	s.accountIdx[key] = len(s.accounts) - 1
	return rec, nil
}

// AccountByUsername looks up an account by username, case-insensitively.
func (s *Store) AccountByUsername(username string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.accountIdx[strings.ToLower(username)]
	if !ok {
		return models.Account{}, false
	}
	return s.accounts[i], true
}
