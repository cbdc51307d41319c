package mcp

import (
	"context"
	"log/slog"

	"github.com/incidentflow/triaged/pkg/agent"
	"github.com/incidentflow/triaged/pkg/config"
)

// Compile-time checks against the controller's contracts.
var (
	_ agent.ToolGateway    = (*Gateway)(nil)
	_ agent.GatewayFactory = (*GatewayFactory)(nil)
)

// GatewayFactory opens per-run gateways over fresh MCP client sessions.
// One client per triage run keeps tool caches naturally scoped and lets
// stdio subprocesses die with the run.
type GatewayFactory struct {
	registry *config.MCPServerRegistry
	recorder CallRecorder
}

// NewGatewayFactory creates the factory. recorder may be nil.
func NewGatewayFactory(registry *config.MCPServerRegistry, recorder CallRecorder) *GatewayFactory {
	return &GatewayFactory{
		registry: registry,
		recorder: recorder,
	}
}

// Open connects a client to the agent's allowed servers and wraps it in
// a gateway. The returned close function shuts the sessions down.
func (f *GatewayFactory) Open(ctx context.Context, serverIDs []string, sessionID string) (agent.ToolGateway, func()) {
	client := NewClient(ctx, f.registry, serverIDs)
	gateway := NewGateway(client, serverIDs, sessionID, f.recorder)
	closeFn := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close MCP client", "session_id", sessionID, "error", err)
		}
	}
	return gateway, closeFn
}
