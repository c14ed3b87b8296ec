// Package github is the outbound adapter for the GitHub REST API. It is the
// only package that performs network calls; it normalizes upstream JSON into
// the internal entity shapes and never writes to the store itself.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"gitfora-core/internal/models"
)

// maxFetchedRepos caps every repository listing pulled from upstream. It
// bounds response sizes and keeps the empty-store fallback from over-fetching.
const maxFetchedRepos = 10

// Client handles GitHub API interactions
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new GitHub API client. An empty token produces a
// client whose fetch methods fail with ErrNoToken.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		token:   token,
	}
}

// Configured reports whether an access token is present.
func (c *Client) Configured() bool {
	return c.token != ""
}

// userPayload mirrors the upstream user object. Nullable upstream fields are
// pointers so that null and absent both leave the internal field untouched.
type userPayload struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	AvatarURL   *string `json:"avatar_url"`
	Followers   *int    `json:"followers"`
	Following   *int    `json:"following"`
	PublicRepos *int    `json:"public_repos"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	Company     *string `json:"company"`
	Blog        *string `json:"blog"`
}

// repoPayload mirrors the upstream repository object.
type repoPayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Description *string `json:"description"`
	Owner       struct {
		Login string `json:"login"`
	} `json:"owner"`
	Language        *string `json:"language"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	HTMLURL         string  `json:"html_url"`
}

type searchPayload struct {
	TotalCount int           `json:"total_count"`
	Items      []repoPayload `json:"items"`
}

// FetchUserProfile fetches a single user and normalizes it into a profile
// patch ready for the store.
func (c *Client) FetchUserProfile(ctx context.Context, username string) (models.ProfilePatch, error) {
	var payload userPayload
	path := fmt.Sprintf("/users/%s", url.PathEscape(username))
	if err := c.get(ctx, path, &payload); err != nil {
		return models.ProfilePatch{}, err
	}
	return normalizeUser(payload, username), nil
}

// FetchUserRepositories fetches a user's repositories sorted by stars
// descending, capped at maxFetchedRepos.
func (c *Client) FetchUserRepositories(ctx context.Context, username string) ([]RepoSummary, error) {
	var payload []repoPayload
	path := fmt.Sprintf("/users/%s/repos?per_page=100", url.PathEscape(username))
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	sort.SliceStable(payload, func(a, b int) bool {
		return payload[a].StargazersCount > payload[b].StargazersCount
	})
	if len(payload) > maxFetchedRepos {
		payload = payload[:maxFetchedRepos]
	}

	out := make([]RepoSummary, len(payload))
	for i, r := range payload {
		out[i] = normalizeRepo(r)
	}
	return out, nil
}

// SearchTrendingCandidates searches for repositories created after since,
// sorted by stars descending and capped at maxFetchedRepos. It exists only
// to seed an empty store.
func (c *Client) SearchTrendingCandidates(ctx context.Context, since time.Time) ([]RepoSummary, error) {
	query := url.QueryEscape(fmt.Sprintf("created:>%s", since.UTC().Format("2006-01-02")))
	path := fmt.Sprintf("/search/repositories?q=%s&sort=stars&order=desc&per_page=%d", query, maxFetchedRepos)

	var payload searchPayload
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	out := make([]RepoSummary, len(payload.Items))
	for i, r := range payload.Items {
		out[i] = normalizeRepo(r)
	}
	return out, nil
}

// get issues an authenticated GET and decodes the body into v.
func (c *Client) get(ctx context.Context, path string, v interface{}) error {
	if c.token == "" {
		return ErrNoToken
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}
