package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/incidentflow/triaged/pkg/agent"
	"github.com/incidentflow/triaged/pkg/mcp"
	"github.com/incidentflow/triaged/pkg/metrics"
	"github.com/incidentflow/triaged/pkg/models"
)

// Compile-time checks that Recorder satisfies both audit contracts.
var (
	_ agent.Recorder   = (*Recorder)(nil)
	_ mcp.CallRecorder = (*Recorder)(nil)
)

// Recorder adapts HistoryService to the fire-and-forget audit contract:
// persistence failures are logged and swallowed so alert processing never
// fails because telemetry failed to persist.
type Recorder struct {
	history *HistoryService
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewRecorder creates the audit adapter over the history service. The
// metrics argument may be nil when instrumentation is not wired.
func NewRecorder(history *HistoryService, m *metrics.Metrics) *Recorder {
	return &Recorder{
		history: history,
		metrics: m,
		logger:  slog.Default(),
	}
}

// CreateSession persists a new session record. The session ID is
// generated here so the run can proceed with degraded auditing even when
// the insert fails.
func (r *Recorder) CreateSession(ctx context.Context, req models.CreateSessionRequest) string {
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	if _, err := r.history.CreateSession(ctx, req); err != nil {
		r.logger.Warn("Failed to persist session record",
			"session_id", req.SessionID, "alert_id", req.AlertID, "error", err)
	}
	return req.SessionID
}

// UpdateSessionStatus transitions the session, swallowing persistence
// failures.
func (r *Recorder) UpdateSessionStatus(ctx context.Context, sessionID string, status models.SessionStatus, errorMessage, finalAnalysis *string) {
	if err := r.history.UpdateSessionStatus(ctx, sessionID, status, errorMessage, finalAnalysis); err != nil {
		r.logger.Warn("Failed to update session status",
			"session_id", sessionID, "status", status, "error", err)
	}
}

// RecordLLMExchange persists one LLM exchange, swallowing failures.
func (r *Recorder) RecordLLMExchange(ctx context.Context, sessionID, stepDescription, prompt, response, modelName string, duration time.Duration, errMsg string) {
	if r.metrics != nil {
		r.metrics.ObserveLLMCall(stepDescription, duration.Seconds(), errMsg != "")
	}
	if err := r.history.RecordLLMExchange(ctx, sessionID, stepDescription, prompt, response, modelName, duration, errMsg); err != nil {
		r.logger.Warn("Failed to record LLM exchange",
			"session_id", sessionID, "step", stepDescription, "error", err)
	}
}

// RecordToolCall persists one tool invocation; the history service
// already swallows failures on this path.
func (r *Recorder) RecordToolCall(ctx context.Context, sessionID, server, tool string, params map[string]any, result any, errMsg string, duration time.Duration) {
	if r.metrics != nil {
		r.metrics.ObserveToolCall(server, duration.Seconds(), errMsg != "")
	}
	r.history.RecordToolCall(ctx, sessionID, server, tool, params, result, errMsg, duration)
}
