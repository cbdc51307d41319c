package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentflow/triaged/pkg/config"
)

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(config.LLMConfig{Provider: "watson"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watson")
}

func TestNewAnthropicClient_RequiresAPIKey(t *testing.T) {
	_, err := NewAnthropicClient(config.LLMConfig{Provider: config.ProviderAnthropic})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &Error{Provider: "anthropic", Model: "m", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "anthropic")
	assert.Contains(t, err.Error(), "connection reset")
}

func newAnthropicTestClient(t *testing.T, handler http.HandlerFunc) *AnthropicClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewAnthropicClient(config.LLMConfig{
		Provider: config.ProviderAnthropic,
		APIKey:   "test-key",
		Model:    "claude-sonnet-4-5",
	})
	require.NoError(t, err)
	client.endpoint = ts.URL
	client.httpClient = ts.Client()
	return client
}

func TestAnthropicClient_Generate(t *testing.T) {
	var got anthropicRequest
	client := newAnthropicTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicAPIVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "the pod "},
				{"type": "text", "text": "was OOM-killed"},
			},
			"stop_reason": "end_turn",
		})
	})

	text, err := client.Generate(context.Background(), []Message{
		{Role: RoleSystem, Content: "you are an SRE"},
		{Role: RoleUser, Content: "why did the pod crash?"},
	}, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "the pod was OOM-killed", text)

	// System turns are lifted into the top-level field.
	assert.Equal(t, "you are an SRE", got.System)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, RoleUser, got.Messages[0].Role)
	assert.Equal(t, "claude-sonnet-4-5", got.Model)
}

func TestAnthropicClient_APIError(t *testing.T) {
	client := newAnthropicTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, "s")
	require.Error(t, err)

	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, config.ProviderAnthropic, llmErr.Provider)
	assert.Contains(t, llmErr.Err.Error(), "429")
}

func TestAnthropicClient_EmptyCompletion(t *testing.T) {
	client := newAnthropicTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"content": []any{}})
	})

	_, err := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, "s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty completion")
}

func TestAnthropicClient_ContextCancellation(t *testing.T) {
	client := newAnthropicTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Generate(ctx, []Message{{Role: RoleUser, Content: "hi"}}, "s")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
