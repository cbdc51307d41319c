package mcp

import (
	"context"
	"sync"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentflow/triaged/pkg/models"
)

type recordedCall struct {
	sessionID string
	server    string
	tool      string
	errMsg    string
}

type memoryCallRecorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (r *memoryCallRecorder) RecordToolCall(_ context.Context, sessionID, server, tool string, _ map[string]any, _ any, errMsg string, _ time.Duration) {
	r.mu.Lock()
	r.calls = append(r.calls, recordedCall{sessionID, server, tool, errMsg})
	r.mu.Unlock()
}

func TestGateway_DisallowedServerRejected(t *testing.T) {
	recorder := &memoryCallRecorder{}
	// A nil client proves the backend is never touched on this path.
	gateway := NewGateway(nil, []string{"kubernetes", "prometheus"}, "sess-1", recorder)

	result := gateway.CallTool(context.Background(), models.ToolCallRequest{
		Server:     "filesystem",
		Tool:       "read_file",
		Parameters: map[string]any{"path": "/etc/passwd"},
		Reason:     "inspect",
	})

	require.NotNil(t, result)
	assert.True(t, result.IsError())
	assert.Contains(t, result.Error, `MCP server "filesystem" is not allowed`)
	assert.Contains(t, result.Error, "kubernetes, prometheus")
	assert.Equal(t, "filesystem", result.Server)
	assert.Equal(t, "read_file", result.Tool)

	// The rejection is still audited.
	require.Len(t, recorder.calls, 1)
	assert.Equal(t, "sess-1", recorder.calls[0].sessionID)
	assert.Equal(t, "filesystem", recorder.calls[0].server)
	assert.NotEmpty(t, recorder.calls[0].errMsg)
}

func TestGateway_NilRecorderIsSafe(t *testing.T) {
	gateway := NewGateway(nil, []string{"kubernetes"}, "sess-1", nil)

	require.NotPanics(t, func() {
		result := gateway.CallTool(context.Background(), models.ToolCallRequest{
			Server: "other", Tool: "t", Parameters: map[string]any{}, Reason: "r",
		})
		assert.True(t, result.IsError())
	})
}

func TestExtractResult(t *testing.T) {
	t.Run("structured content wins", func(t *testing.T) {
		raw := &mcpsdk.CallToolResult{
			StructuredContent: map[string]any{"pods": 3},
			Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: "ignored"}},
		}
		assert.Equal(t, map[string]any{"pods": 3}, extractResult(raw))
	})

	t.Run("falls back to joined text", func(t *testing.T) {
		raw := &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: "line one"},
				&mcpsdk.TextContent{Text: "line two"},
			},
		}
		assert.Equal(t, "line one\nline two", extractResult(raw))
	})

	t.Run("non-text content skipped", func(t *testing.T) {
		raw := &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{
				&mcpsdk.ImageContent{Data: []byte{1}, MIMEType: "image/png"},
				&mcpsdk.TextContent{Text: "caption"},
			},
		}
		assert.Equal(t, "caption", extractTextContent(raw))
	})
}

func TestMarshalSchema(t *testing.T) {
	assert.Equal(t, "", marshalSchema(nil))
	assert.JSONEq(t, `{"type":"object"}`, marshalSchema(map[string]any{"type": "object"}))
}
