package runbook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/incidentflow/triaged/pkg/config"
)

// Service fetches runbook content for alerts, caching downloads by
// normalized URL. A fetch failure is returned to the caller; the alert
// cannot be analyzed without its runbook.
type Service struct {
	github *GitHubClient
	cache  *Cache
	cfg    config.RunbookConfig
}

// NewService creates a runbook service from configuration.
func NewService(cfg config.RunbookConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &Service{
		github: NewGitHubClient(cfg.GitHubToken),
		cache:  NewCache(cacheTTL),
		cfg:    cfg,
	}
}

// Fetch downloads the runbook at the given URL, validating it against the
// configured domain allow-list and serving repeated fetches from cache.
func (s *Service) Fetch(ctx context.Context, runbookURL string) (string, error) {
	if runbookURL == "" {
		return "", fmt.Errorf("runbook URL is empty")
	}
	if err := ValidateURL(runbookURL, s.cfg.AllowedDomains); err != nil {
		return "", fmt.Errorf("invalid runbook URL %s: %w", runbookURL, err)
	}

	normalizedURL := ConvertToRawURL(runbookURL)
	if content, ok := s.cache.Get(normalizedURL); ok {
		return content, nil
	}

	content, err := s.github.DownloadContent(ctx, runbookURL)
	if err != nil {
		return "", err
	}

	s.cache.Set(normalizedURL, content)
	return content, nil
}

// OverrideHTTPClientForTest replaces the internal HTTP client.
// For testing only.
func (s *Service) OverrideHTTPClientForTest(httpClient *http.Client) {
	s.github.httpClient = httpClient
}
