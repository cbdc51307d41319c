package runbook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/incidentflow/triaged/pkg/version"
)

// GitHubClient downloads raw runbook content from GitHub.
type GitHubClient struct {
	httpClient *http.Client
	token      string
}

// NewGitHubClient creates an HTTP client for GitHub downloads.
// token may be empty (public repos only, lower rate limits).
func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      token,
	}
}

// DownloadContent fetches raw content from a GitHub URL.
// Blob URLs are converted to raw.githubusercontent.com URLs first.
func (c *GitHubClient) DownloadContent(ctx context.Context, rawURL string) (string, error) {
	downloadURL := ConvertToRawURL(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", version.Full())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch runbook from %s: %w", downloadURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub returned HTTP %d for %s", resp.StatusCode, downloadURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	return string(body), nil
}
