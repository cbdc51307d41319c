// Package agent implements the alert triage core: the iteration
// controller driving the LLM tool-calling loop, and the orchestrator
// sequencing a full alert run around it.
package agent

import (
	"context"
	"time"

	"github.com/incidentflow/triaged/pkg/llm"
	"github.com/incidentflow/triaged/pkg/models"
)

// AnalysisClient is the slice of the LLM client the controller needs.
type AnalysisClient interface {
	Generate(ctx context.Context, messages []llm.Message, sessionID string) (string, error)
	Model() string
}

// ToolGateway executes tool calls for one triage run. CallTool never
// returns a Go error: failures come back as error-tagged results.
type ToolGateway interface {
	ListTools(ctx context.Context) map[string][]models.ToolDescriptor
	CallTool(ctx context.Context, call models.ToolCallRequest) *models.ToolResult
}

// GatewayFactory opens a tool gateway scoped to one triage run,
// restricted to the agent's allowed servers. The returned close function
// shuts down the run's tool-server sessions.
type GatewayFactory interface {
	Open(ctx context.Context, serverIDs []string, sessionID string) (ToolGateway, func())
}

// Recorder is the audit sink for session lifecycle and LLM exchanges.
// Implementations are fire-and-forget: persistence failures are logged
// and swallowed, never surfaced to the triage path.
type Recorder interface {
	// CreateSession returns a session ID even when persistence fails, so
	// the run can proceed with degraded auditing.
	CreateSession(ctx context.Context, req models.CreateSessionRequest) string
	UpdateSessionStatus(ctx context.Context, sessionID string, status models.SessionStatus, errorMessage, finalAnalysis *string)
	RecordLLMExchange(ctx context.Context, sessionID, stepDescription, prompt, response, modelName string, duration time.Duration, errMsg string)
}

// RunbookFetcher downloads runbook content for an alert. A fetch error
// is fatal for that alert.
type RunbookFetcher interface {
	Fetch(ctx context.Context, runbookURL string) (string, error)
}

// ProgressFunc receives coarse progress milestones during a run.
// Dispatch is synchronous; errors and panics are swallowed by the
// orchestrator. May be nil.
type ProgressFunc func(percent int, message string)
