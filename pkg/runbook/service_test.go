package runbook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentflow/triaged/pkg/config"
)

func TestCache_TTLExpiry(t *testing.T) {
	cache := NewCache(30 * time.Millisecond)

	cache.Set("url", "content")
	content, ok := cache.Get("url")
	require.True(t, ok)
	assert.Equal(t, "content", content)

	time.Sleep(50 * time.Millisecond)
	_, ok = cache.Get("url")
	assert.False(t, ok, "entry must expire after TTL")
}

func TestCache_MissingKey(t *testing.T) {
	cache := NewCache(time.Minute)
	_, ok := cache.Get("never-set")
	assert.False(t, ok)
}

func TestService_Fetch(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("# Runbook\nrestart the pod"))
	}))
	defer ts.Close()

	host := mustHostname(t, ts.URL)
	svc := NewService(config.RunbookConfig{
		CacheTTL:       time.Minute,
		AllowedDomains: []string{host},
	})
	svc.OverrideHTTPClientForTest(ts.Client())
	ctx := context.Background()

	t.Run("downloads content", func(t *testing.T) {
		content, err := svc.Fetch(ctx, ts.URL+"/rb.md")
		require.NoError(t, err)
		assert.Contains(t, content, "restart the pod")
	})

	t.Run("repeated fetch served from cache", func(t *testing.T) {
		before := hits.Load()
		_, err := svc.Fetch(ctx, ts.URL+"/rb.md")
		require.NoError(t, err)
		assert.Equal(t, before, hits.Load(), "cached fetch must not hit the server")
	})

	t.Run("empty URL is an error", func(t *testing.T) {
		_, err := svc.Fetch(ctx, "")
		assert.Error(t, err)
	})

	t.Run("disallowed domain is rejected before any request", func(t *testing.T) {
		before := hits.Load()
		_, err := svc.Fetch(ctx, "https://evil.example.com/rb.md")
		require.Error(t, err)
		assert.Equal(t, before, hits.Load())
	})
}

func TestService_FetchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	svc := NewService(config.RunbookConfig{
		AllowedDomains: []string{mustHostname(t, ts.URL)},
	})
	svc.OverrideHTTPClientForTest(ts.Client())

	_, err := svc.Fetch(context.Background(), ts.URL+"/missing.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func mustHostname(t *testing.T, rawURL string) string {
	t.Helper()
	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	return parsed.Hostname()
}
