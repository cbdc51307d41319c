package mcp

import (
	"context"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentflow/triaged/pkg/config"
	"github.com/incidentflow/triaged/pkg/models"
)

func toolCall(server, tool string) models.ToolCallRequest {
	return models.ToolCallRequest{Server: server, Tool: tool, Parameters: map[string]any{}, Reason: "test"}
}

// emptySchema is a minimal valid JSON Schema for test tools.
var emptySchema = &jsonschema.Schema{Type: "object"}

// startTestServer creates an in-memory MCP server with the given tools
// and returns the client half of its transport pair.
func startTestServer(t *testing.T, name string, tools map[string]mcpsdk.ToolHandler) *mcpsdk.InMemoryTransport {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name: name, Version: "test",
	}, nil)

	for toolName, handler := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        toolName,
			Description: "test tool: " + toolName,
			InputSchema: emptySchema,
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
	go func() {
		_ = server.Run(context.Background(), serverTransport)
	}()

	return clientTransport
}

// connectClientDirect wires a Client to a pre-built in-memory transport,
// bypassing the registry/createTransport path.
func connectClientDirect(t *testing.T, serverID string, transport *mcpsdk.InMemoryTransport) *Client {
	t.Helper()
	ctx := context.Background()

	client := NewClient(ctx, config.NewMCPServerRegistry(nil), nil)

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name: "triaged-test", Version: "test",
	}, nil)

	session, err := sdkClient.Connect(ctx, transport, nil)
	require.NoError(t, err)

	client.mu.Lock()
	client.sessions[serverID] = session
	client.mu.Unlock()

	t.Cleanup(func() { _ = client.Close() })
	return client
}

func okHandler(text string) mcpsdk.ToolHandler {
	return func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}}}, nil
	}
}

func TestClient_ListTools(t *testing.T) {
	transport := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"get_pods": okHandler("ok"),
		"get_logs": okHandler("ok"),
	})
	client := connectClientDirect(t, "kubernetes", transport)

	tools, err := client.ListTools(context.Background(), "kubernetes")
	require.NoError(t, err)
	assert.Len(t, tools, 2)

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.Contains(t, names, "get_pods")
	assert.Contains(t, names, "get_logs")
}

func TestClient_ListToolsCached(t *testing.T) {
	transport := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"get_pods": okHandler("ok"),
	})
	client := connectClientDirect(t, "kubernetes", transport)
	ctx := context.Background()

	tools1, err := client.ListTools(ctx, "kubernetes")
	require.NoError(t, err)
	tools2, err := client.ListTools(ctx, "kubernetes")
	require.NoError(t, err)
	assert.Equal(t, tools1, tools2)
}

func TestClient_CallTool(t *testing.T) {
	transport := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"get_pods": okHandler("pod-1\npod-2"),
	})
	client := connectClientDirect(t, "kubernetes", transport)

	result, err := client.CallTool(context.Background(), "kubernetes", "get_pods", map[string]any{})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	tc, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Equal(t, "pod-1\npod-2", tc.Text)
}

func TestClient_CallToolErrorResult(t *testing.T) {
	transport := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"bad_tool": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "tool error: invalid namespace"}},
				IsError: true,
			}, nil
		},
	})
	client := connectClientDirect(t, "kubernetes", transport)

	result, err := client.CallTool(context.Background(), "kubernetes", "bad_tool", map[string]any{})
	require.NoError(t, err) // no Go error; the error rides on the result
	assert.True(t, result.IsError)
}

func TestClient_NoSession(t *testing.T) {
	client := NewClient(context.Background(), config.NewMCPServerRegistry(nil), nil)

	_, err := client.ListTools(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no session")

	_, err = client.CallTool(context.Background(), "nonexistent", "tool", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no session")
}

func TestClient_FailedServersRecorded(t *testing.T) {
	client := NewClient(context.Background(), config.NewMCPServerRegistry(nil), []string{"ghost-server"})

	failed := client.FailedServers()
	assert.Contains(t, failed, "ghost-server")
	assert.False(t, client.HasSession("ghost-server"))
}

func TestClient_Close(t *testing.T) {
	transport := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"ping": okHandler("pong"),
	})
	client := connectClientDirect(t, "kubernetes", transport)

	assert.True(t, client.HasSession("kubernetes"))
	require.NoError(t, client.Close())
	assert.False(t, client.HasSession("kubernetes"))
}

func TestGateway_OverInMemoryServer(t *testing.T) {
	transport := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"get_pods": okHandler("pod-1"),
	})
	client := connectClientDirect(t, "kubernetes", transport)
	recorder := &memoryCallRecorder{}
	gateway := NewGateway(client, []string{"kubernetes"}, "sess-9", recorder)

	tools := gateway.ListTools(context.Background())
	require.Contains(t, tools, "kubernetes")
	require.Len(t, tools["kubernetes"], 1)
	assert.Equal(t, "get_pods", tools["kubernetes"][0].Name)
	assert.NotEmpty(t, tools["kubernetes"][0].InputSchema)

	result := gateway.CallTool(context.Background(), toolCall("kubernetes", "get_pods"))
	assert.False(t, result.IsError())
	assert.Equal(t, "pod-1", result.Result)

	// Unknown tool on a connected server fails as an error result, not a panic.
	result = gateway.CallTool(context.Background(), toolCall("kubernetes", "no_such_tool"))
	assert.True(t, result.IsError())

	require.Len(t, recorder.calls, 2)
}
