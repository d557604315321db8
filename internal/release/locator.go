// Package release locates published releases through the GitHub API.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the GitHub API endpoint queried for release metadata.
	DefaultBaseURL = "https://api.github.com"
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second

	userAgent = "project-dash-install"
)

// Release is the subset of the GitHub release payload the installer needs.
type Release struct {
	TagName string `json:"tag_name"`
}

// Locator fetches release metadata for a fixed repository.
type Locator struct {
	client  *http.Client
	baseURL string
	repo    string
}

// Option configures a Locator.
type Option func(*Locator)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(l *Locator) {
		l.client = c
	}
}

// WithBaseURL overrides the GitHub API endpoint (useful for testing).
func WithBaseURL(baseURL string) Option {
	return func(l *Locator) {
		l.baseURL = baseURL
	}
}

// NewLocator creates a Locator for the given "owner/name" repository.
func NewLocator(repo string, opts ...Option) *Locator {
	l := &Locator{
		client:  &http.Client{Timeout: DefaultTimeout},
		baseURL: DefaultBaseURL,
		repo:    repo,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LatestTag returns the tag name of the repository's latest published
// release.
func (l *Locator) LatestTag(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", l.baseURL, l.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	// Optional token raises the unauthenticated rate limit.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("no published release for %s", l.repo)
	}
	if resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	var rel Release
	if err := json.Unmarshal(body, &rel); err != nil {
		return "", fmt.Errorf("parse release JSON: %w", err)
	}

	if rel.TagName == "" {
		return "", fmt.Errorf("no tag_name in latest release")
	}

	return rel.TagName, nil
}
