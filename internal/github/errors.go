package github

import (
	"errors"
	"fmt"
)

// Adapter failure taxonomy. Handlers translate these to HTTP status codes;
// nothing in this package retries.
var (
	// ErrNotFound reports an upstream 404 for the requested resource.
	ErrNotFound = errors.New("github: not found")

	// ErrNoToken reports that no access token is configured. The client
	// refuses to issue unauthenticated calls because anonymous rate limits
	// are prohibitively low.
	ErrNoToken = errors.New("github: access token not configured")
)

// APIError reports a non-2xx, non-404 upstream response or a malformed
// upstream payload. The message is logged server-side only and never
// returned to API clients.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: upstream status %d: %s", e.StatusCode, e.Message)
}
