package handlers

import (
	"context"
	"time"

	"gitfora-core/internal/github"
	"gitfora-core/internal/models"
)

// GitHubFetcher is the slice of the outbound adapter the handlers depend on.
// It is satisfied by *github.Client and by fakes in tests.
type GitHubFetcher interface {
	// Configured reports whether an access token is present. Handlers skip
	// the empty-store fallback entirely when it is not.
	Configured() bool

	FetchUserProfile(ctx context.Context, username string) (models.ProfilePatch, error)
	FetchUserRepositories(ctx context.Context, username string) ([]github.RepoSummary, error)
	SearchTrendingCandidates(ctx context.Context, since time.Time) ([]github.RepoSummary, error)
}

// Compile-time check that the real client satisfies the interface.
var _ GitHubFetcher = (*github.Client)(nil)
