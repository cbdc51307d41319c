package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/incidentflow/triaged/pkg/models"
)

// CallRecorder receives an audit record for every tool invocation the
// gateway performs, successful or not. Implementations must not block
// the call path on persistence failures.
type CallRecorder interface {
	RecordToolCall(ctx context.Context, sessionID, server, tool string, params map[string]any, result any, errMsg string, duration time.Duration)
}

// Gateway executes tool calls for a single triage run, enforcing the
// agent's server allow-list. CallTool never returns a Go error: backend
// failures become error-tagged results so the analysis loop can degrade
// instead of aborting.
type Gateway struct {
	client    *Client
	serverIDs []string
	sessionID string
	recorder  CallRecorder
	logger    *slog.Logger
}

// NewGateway creates a gateway over the given client, restricted to the
// agent's allowed servers. recorder may be nil (auditing disabled).
func NewGateway(client *Client, serverIDs []string, sessionID string, recorder CallRecorder) *Gateway {
	return &Gateway{
		client:    client,
		serverIDs: slices.Clone(serverIDs),
		sessionID: sessionID,
		recorder:  recorder,
		logger:    slog.Default(),
	}
}

// ListTools returns the tools available on each allowed server. Servers
// that fail to answer are logged and omitted from the result.
func (g *Gateway) ListTools(ctx context.Context) map[string][]models.ToolDescriptor {
	result := make(map[string][]models.ToolDescriptor)
	for _, serverID := range g.serverIDs {
		tools, err := g.client.ListTools(ctx, serverID)
		if err != nil {
			g.logger.Warn("Failed to list tools from MCP server",
				"server", serverID, "error", err)
			continue
		}
		descriptors := make([]models.ToolDescriptor, 0, len(tools))
		for _, tool := range tools {
			descriptors = append(descriptors, models.ToolDescriptor{
				Name:        tool.Name,
				Description: tool.Description,
				InputSchema: marshalSchema(tool.InputSchema),
			})
		}
		result[serverID] = descriptors
	}
	return result
}

// CallTool executes one tool call and returns its result. A server
// outside the allow-list is rejected without touching the backend; the
// rejection is still recorded and still appears in the aggregated data
// under that server's key.
func (g *Gateway) CallTool(ctx context.Context, call models.ToolCallRequest) *models.ToolResult {
	start := time.Now()

	result := &models.ToolResult{
		Server:     call.Server,
		Tool:       call.Tool,
		Parameters: call.Parameters,
		Reason:     call.Reason,
	}

	if !slices.Contains(g.serverIDs, call.Server) {
		result.Error = fmt.Sprintf(
			"MCP server %q is not allowed for this agent. Allowed servers: %s",
			call.Server, strings.Join(g.serverIDs, ", "))
		g.record(ctx, call, result, time.Since(start))
		return result
	}

	raw, err := g.client.CallTool(ctx, call.Server, call.Tool, call.Parameters)
	switch {
	case err != nil:
		result.Error = fmt.Sprintf("tool execution failed: %s", err)
	case raw.IsError:
		result.Error = extractTextContent(raw)
		if result.Error == "" {
			result.Error = "tool returned an error with no message"
		}
	default:
		result.Result = extractResult(raw)
	}

	g.record(ctx, call, result, time.Since(start))
	return result
}

func (g *Gateway) record(ctx context.Context, call models.ToolCallRequest, result *models.ToolResult, duration time.Duration) {
	if g.recorder == nil {
		return
	}
	g.recorder.RecordToolCall(ctx, g.sessionID, call.Server, call.Tool, call.Parameters, result.Result, result.Error, duration)
}

// extractResult prefers the structured content of a tool result and falls
// back to concatenated text.
func extractResult(result *mcpsdk.CallToolResult) any {
	if result.StructuredContent != nil {
		return result.StructuredContent
	}
	return extractTextContent(result)
}

// extractTextContent concatenates all TextContent items. Non-text content
// (images, embedded resources) is logged at debug level and skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("MCP tool returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", c))
		}
	}
	return strings.Join(parts, "\n")
}

// marshalSchema serializes a tool's input schema to a JSON string.
func marshalSchema(schema any) string {
	if schema == nil {
		return ""
	}
	data, err := json.Marshal(schema)
	if err != nil {
		slog.Debug("Failed to marshal tool input schema", "error", err)
		return ""
	}
	return string(data)
}
