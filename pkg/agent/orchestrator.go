package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/incidentflow/triaged/pkg/agent/prompt"
	"github.com/incidentflow/triaged/pkg/config"
	"github.com/incidentflow/triaged/pkg/metrics"
	"github.com/incidentflow/triaged/pkg/models"
)

// Orchestrator sequences a full alert run: agent selection, session
// creation, runbook fetch, controller run, report formatting, session
// close. ProcessAlert always returns a formatted report string; every
// failure is absorbed into an error report plus a failed session.
type Orchestrator struct {
	cfg      *config.Config
	llm      AnalysisClient
	recorder Recorder
	runbooks RunbookFetcher
	gateways GatewayFactory
	builder  *prompt.Builder
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewOrchestrator wires the orchestrator's collaborators.
func NewOrchestrator(cfg *config.Config, analysisClient AnalysisClient, recorder Recorder, runbooks RunbookFetcher, gateways GatewayFactory) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		llm:      analysisClient,
		recorder: recorder,
		runbooks: runbooks,
		gateways: gateways,
		builder:  prompt.NewBuilder(cfg.MCPServerRegistry),
		logger:   slog.Default(),
	}
}

// SetMetrics attaches the instrumentation sink. Safe to skip when
// metrics are not wired.
func (o *Orchestrator) SetMetrics(m *metrics.Metrics) {
	o.metrics = m
}

// ProcessAlert triages one alert end to end and returns the formatted
// report. There is no error return: callers always get displayable text.
func (o *Orchestrator) ProcessAlert(ctx context.Context, alertID string, alert models.Alert, progress ProgressFunc) string {
	if alertID == "" {
		alertID = uuid.New().String()
	}
	started := time.Now()
	sessionStatus := string(models.StatusFailed)
	sessionAgent := config.UnknownAgent
	sessionIterations := 0
	defer func() {
		if o.metrics != nil {
			o.metrics.ObserveSession(sessionStatus, sessionAgent,
				time.Since(started).Seconds(), sessionIterations)
		}
	}()

	o.notify(progress, 5, "Selecting agent")

	agentName, err := o.cfg.AgentRegistry.GetForAlertType(alert.AlertType)
	if err != nil {
		o.logger.Error("Agent selection failed",
			"alert_id", alertID, "alert_type", alert.AlertType, "error", err)
		// Best-effort audit labeling with the sentinel agent.
		sessionID := o.recorder.CreateSession(ctx, models.CreateSessionRequest{
			AlertID:   alertID,
			AlertData: alertDataFor(alert),
			AgentType: o.cfg.AgentRegistry.GetForAlertTypeSafe(alert.AlertType),
			AlertType: alert.AlertType,
		})
		return o.fail(ctx, sessionID, alert, progress,
			fmt.Errorf("no agent available for alert type %q: %w", alert.AlertType, err))
	}

	sessionAgent = agentName

	agentCfg, err := o.cfg.GetAgent(agentName)
	if err != nil {
		o.logger.Error("Agent configuration lookup failed",
			"alert_id", alertID, "agent", agentName, "error", err)
		sessionID := o.recorder.CreateSession(ctx, models.CreateSessionRequest{
			AlertID:   alertID,
			AlertData: alertDataFor(alert),
			AgentType: agentName,
			AlertType: alert.AlertType,
		})
		return o.fail(ctx, sessionID, alert, progress,
			fmt.Errorf("agent %q is misconfigured: %w", agentName, err))
	}

	sessionID := o.recorder.CreateSession(ctx, models.CreateSessionRequest{
		AlertID:   alertID,
		AlertData: alertDataFor(alert),
		AgentType: agentName,
		AlertType: alert.AlertType,
	})
	o.recorder.UpdateSessionStatus(ctx, sessionID, models.StatusInProgress, nil, nil)

	o.notify(progress, 10, "Fetching runbook")
	runbookContent, err := o.runbooks.Fetch(ctx, alert.RunbookURL)
	if err != nil {
		o.logger.Error("Runbook fetch failed",
			"session_id", sessionID, "runbook", alert.RunbookURL, "error", err)
		return o.fail(ctx, sessionID, alert, progress,
			fmt.Errorf("failed to fetch runbook: %w", err))
	}

	o.notify(progress, 15, "Connecting tool servers")
	gateway, closeGateway := o.gateways.Open(ctx, agentCfg.MCPServers, sessionID)
	defer closeGateway()

	controller := NewController(o.llm, gateway, o.recorder, o.builder, ControllerConfig{
		MaxIterations:     o.cfg.MaxIterationsFor(agentCfg),
		MaxTotalToolCalls: o.cfg.Processing.MaxTotalToolCalls,
	})

	result := controller.Run(ctx, RunInput{
		SessionID:          sessionID,
		Alert:              alert,
		RunbookContent:     runbookContent,
		ServerIDs:          agentCfg.MCPServers,
		CustomInstructions: agentCfg.CustomInstructions,
		Progress:           progress,
	})

	report := o.formatReport(alert, agentName, result)
	sessionIterations = result.Iterations
	if result.Failed {
		errMsg := result.Err.Error()
		o.recorder.UpdateSessionStatus(ctx, sessionID, models.StatusFailed, &errMsg, &result.Analysis)
	} else {
		sessionStatus = string(models.StatusCompleted)
		o.recorder.UpdateSessionStatus(ctx, sessionID, models.StatusCompleted, nil, &result.Analysis)
	}

	o.notify(progress, 100, "Analysis complete")
	o.logger.Info("Alert processing finished",
		"session_id", sessionID, "agent", agentName,
		"iterations", result.Iterations, "failed", result.Failed)
	return report
}

// fail closes the session as failed and returns the error report.
func (o *Orchestrator) fail(ctx context.Context, sessionID string, alert models.Alert, progress ProgressFunc, cause error) string {
	errMsg := cause.Error()
	o.recorder.UpdateSessionStatus(ctx, sessionID, models.StatusFailed, &errMsg, nil)
	o.notify(progress, 100, "Processing failed")
	return o.formatErrorReport(alert, cause)
}

// formatReport renders the success report: alert metadata, the analysis
// text, and the iteration count.
func (o *Orchestrator) formatReport(alert models.Alert, agentName string, result *RunResult) string {
	if result.Failed {
		return o.formatErrorReport(alert, result.Err)
	}

	var sb strings.Builder
	sb.WriteString("# Alert Analysis Report\n\n")
	fmt.Fprintf(&sb, "**Alert Type:** %s\n", alert.AlertType)
	if alert.Severity != "" {
		fmt.Fprintf(&sb, "**Severity:** %s\n", alert.Severity)
	}
	if alert.Environment != "" {
		fmt.Fprintf(&sb, "**Environment:** %s\n", alert.Environment)
	}
	fmt.Fprintf(&sb, "**Agent:** %s\n", agentName)
	fmt.Fprintf(&sb, "**Iterations:** %d\n\n", result.Iterations)
	sb.WriteString("---\n\n")
	sb.WriteString(result.Analysis)
	sb.WriteString("\n")
	return sb.String()
}

// formatErrorReport renders the failure report: alert metadata, the
// error, and generic troubleshooting hints.
func (o *Orchestrator) formatErrorReport(alert models.Alert, cause error) string {
	var sb strings.Builder
	sb.WriteString("# Alert Processing Error\n\n")
	fmt.Fprintf(&sb, "**Alert Type:** %s\n", alert.AlertType)
	if alert.Severity != "" {
		fmt.Fprintf(&sb, "**Severity:** %s\n", alert.Severity)
	}
	if alert.Environment != "" {
		fmt.Fprintf(&sb, "**Environment:** %s\n", alert.Environment)
	}
	fmt.Fprintf(&sb, "\n**Error:** %s\n\n", cause)
	sb.WriteString("## Troubleshooting\n")
	sb.WriteString("- Verify the alert type is mapped to an agent in the agent configuration\n")
	sb.WriteString("- Check that the runbook URL is reachable and the GitHub token is valid\n")
	sb.WriteString("- Confirm the configured MCP servers and LLM provider are available\n")
	sb.WriteString("- Review service logs for the session's detailed error trail\n")
	return sb.String()
}

func (o *Orchestrator) notify(progress ProgressFunc, percent int, message string) {
	if progress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			o.logger.Warn("Progress callback panicked", "panic", r)
		}
	}()
	progress(percent, message)
}

// alertDataFor flattens the alert into the audit payload stored on the
// session record.
func alertDataFor(alert models.Alert) map[string]any {
	data := make(map[string]any, len(alert.Data)+4)
	for k, v := range alert.Data {
		data[k] = v
	}
	data["alert_type"] = alert.AlertType
	if alert.Severity != "" {
		data["severity"] = alert.Severity
	}
	if alert.Environment != "" {
		data["environment"] = alert.Environment
	}
	if alert.RunbookURL != "" {
		data["runbook"] = alert.RunbookURL
	}
	return data
}
