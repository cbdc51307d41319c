package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/incidentflow/triaged/ent"
	"github.com/incidentflow/triaged/ent/alertsession"
	"github.com/incidentflow/triaged/ent/llminteraction"
	"github.com/incidentflow/triaged/ent/mcpinteraction"
	"github.com/incidentflow/triaged/pkg/models"
)

const writeTimeout = 10 * time.Second

// HistoryService owns the session audit trail: session lifecycle records
// plus every LLM exchange and tool call made on a session's behalf.
type HistoryService struct {
	client *ent.Client
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(client *ent.Client) *HistoryService {
	return &HistoryService{client: client}
}

// CreateSession creates a new alert session in pending status and returns
// its ID. A duplicate alert_id fails with ErrAlreadyExists.
func (s *HistoryService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (string, error) {
	if req.AlertID == "" {
		return "", NewValidationError("alert_id", "required")
	}
	if req.AgentType == "" {
		return "", NewValidationError("agent_type", "required")
	}
	if req.AlertType == "" {
		return "", NewValidationError("alert_type", "required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	alertData := req.AlertData
	if alertData == nil {
		alertData = map[string]any{}
	}

	// Critical write: detach from the HTTP request context.
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	_, err := s.client.AlertSession.Create().
		SetID(sessionID).
		SetAlertID(req.AlertID).
		SetAlertData(alertData).
		SetAgentType(req.AgentType).
		SetAlertType(req.AlertType).
		SetStatus(alertsession.StatusPending).
		SetStartedAtUs(models.NowUS()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return "", ErrAlreadyExists
		}
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return sessionID, nil
}

// UpdateSessionStatus transitions a session. Terminal transitions set
// completed_at_us exactly once: a session that already has a completion
// timestamp is left untouched, so closing twice is a no-op.
func (s *HistoryService) UpdateSessionStatus(ctx context.Context, sessionID string, status models.SessionStatus, errorMessage, finalAnalysis *string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if !status.Terminal() {
		// Status moves only forward: a closed session is never reopened.
		count, err := s.client.AlertSession.Update().
			Where(
				alertsession.IDEQ(sessionID),
				alertsession.CompletedAtUsIsNil(),
			).
			SetStatus(alertsession.Status(status)).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to update session status: %w", err)
		}
		if count == 0 {
			return s.requireSession(writeCtx, sessionID)
		}
		return nil
	}

	update := s.client.AlertSession.Update().
		Where(
			alertsession.IDEQ(sessionID),
			alertsession.CompletedAtUsIsNil(),
		).
		SetStatus(alertsession.Status(status)).
		SetCompletedAtUs(models.NowUS())
	if errorMessage != nil {
		update = update.SetErrorMessage(*errorMessage)
	}
	if finalAnalysis != nil {
		update = update.SetFinalAnalysis(*finalAnalysis)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	if count == 0 {
		// Either already closed (no-op) or the session never existed.
		return s.requireSession(writeCtx, sessionID)
	}
	return nil
}

// requireSession distinguishes a guarded no-op update from a missing
// session.
func (s *HistoryService) requireSession(ctx context.Context, sessionID string) error {
	exists, err := s.client.AlertSession.Query().
		Where(alertsession.IDEQ(sessionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session existence: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// RecordLLMExchange stores one LLM request/response pair on the session's
// audit trail. The timestamp marks the start of the exchange.
func (s *HistoryService) RecordLLMExchange(ctx context.Context, sessionID, stepDescription, prompt, response, modelName string, duration time.Duration, errMsg string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	create := s.client.LLMInteraction.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetTimestampUs(models.NowUS() - duration.Microseconds()).
		SetStepDescription(stepDescription).
		SetPrompt(prompt).
		SetResponse(response).
		SetModelName(modelName).
		SetDurationMs(duration.Milliseconds())
	if errMsg != "" {
		create = create.SetErrorMessage(errMsg)
	}

	if err := create.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to record LLM exchange: %w", err)
	}
	return nil
}

// RecordToolCall stores one tool invocation (successful or failed) on the
// session's audit trail.
func (s *HistoryService) RecordToolCall(ctx context.Context, sessionID, server, tool string, params map[string]any, result any, errMsg string, duration time.Duration) {
	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	create := s.client.MCPInteraction.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetTimestampUs(models.NowUS() - duration.Microseconds()).
		SetServerName(server).
		SetToolName(tool).
		SetDurationMs(duration.Milliseconds())
	if params != nil {
		create = create.SetToolArguments(params)
	}
	if resultJSON := toolResultJSON(result); resultJSON != nil {
		create = create.SetToolResult(resultJSON)
	}
	if errMsg != "" {
		create = create.SetErrorMessage(errMsg)
	}

	if err := create.Exec(writeCtx); err != nil {
		// Auditing must not fail the tool call path.
		logRecorderError("tool call", sessionID, err)
	}
}

// GetSession retrieves a session by ID.
func (s *HistoryService) GetSession(ctx context.Context, sessionID string) (*ent.AlertSession, error) {
	session, err := s.client.AlertSession.Query().
		Where(alertsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions lists sessions with filtering and pagination, newest first.
func (s *HistoryService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResult, error) {
	query := s.client.AlertSession.Query()

	if len(filters.Status) > 0 {
		statuses := make([]alertsession.Status, len(filters.Status))
		for i, st := range filters.Status {
			statuses[i] = alertsession.Status(st)
		}
		query = query.Where(alertsession.StatusIn(statuses...))
	}
	if filters.AgentType != "" {
		query = query.Where(alertsession.AgentTypeEQ(filters.AgentType))
	}
	if filters.AlertType != "" {
		query = query.Where(alertsession.AlertTypeEQ(filters.AlertType))
	}
	if filters.Search != "" {
		query = query.Where(alertsession.Or(
			alertsession.FinalAnalysisContainsFold(filters.Search),
			alertsession.ErrorMessageContainsFold(filters.Search),
		))
	}
	if filters.StartUS != nil {
		query = query.Where(alertsession.StartedAtUsGTE(*filters.StartUS))
	}
	if filters.EndUS != nil {
		query = query.Where(alertsession.StartedAtUsLT(*filters.EndUS))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(alertsession.FieldStartedAtUs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	summaries := make([]models.SessionSummary, len(sessions))
	for i, session := range sessions {
		summaries[i] = toSummary(session)
	}

	return &models.SessionListResult{
		Sessions:   summaries,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// GetTimeline reconstructs a session's chronological timeline by merging
// its LLM exchanges and tool calls by timestamp.
func (s *HistoryService) GetTimeline(ctx context.Context, sessionID string) ([]models.TimelineEvent, error) {
	exists, err := s.client.AlertSession.Query().
		Where(alertsession.IDEQ(sessionID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check session existence: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	llmRecords, err := s.client.LLMInteraction.Query().
		Where(llminteraction.SessionIDEQ(sessionID)).
		Order(ent.Asc(llminteraction.FieldTimestampUs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query LLM interactions: %w", err)
	}

	mcpRecords, err := s.client.MCPInteraction.Query().
		Where(mcpinteraction.SessionIDEQ(sessionID)).
		Order(ent.Asc(mcpinteraction.FieldTimestampUs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query MCP interactions: %w", err)
	}

	return mergeTimeline(llmRecords, mcpRecords), nil
}

// ExportSession returns the full session document: the session record,
// its alert payload, and the merged audit trail.
func (s *HistoryService) ExportSession(ctx context.Context, sessionID string) (*models.SessionExport, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	timeline, err := s.GetTimeline(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	llmCount := 0
	toolCount := 0
	for _, event := range timeline {
		switch event.EventType {
		case models.TimelineEventLLM:
			llmCount++
		case models.TimelineEventMCP:
			toolCount++
		}
	}

	return &models.SessionExport{
		Session:       toSummary(session),
		AlertData:     session.AlertData,
		FinalAnalysis: session.FinalAnalysis,
		Timeline:      timeline,
		LLMExchanges:  llmCount,
		ToolCalls:     toolCount,
	}, nil
}

// mergeTimeline merges the two pre-sorted interaction lists into one
// chronological stream.
func mergeTimeline(llmRecords []*ent.LLMInteraction, mcpRecords []*ent.MCPInteraction) []models.TimelineEvent {
	events := make([]models.TimelineEvent, 0, len(llmRecords)+len(mcpRecords))
	i, j := 0, 0
	for i < len(llmRecords) || j < len(mcpRecords) {
		takeLLM := j >= len(mcpRecords) ||
			(i < len(llmRecords) && llmRecords[i].TimestampUs <= mcpRecords[j].TimestampUs)
		if takeLLM {
			events = append(events, llmEvent(llmRecords[i]))
			i++
		} else {
			events = append(events, mcpEvent(mcpRecords[j]))
			j++
		}
	}
	return events
}

func llmEvent(record *ent.LLMInteraction) models.TimelineEvent {
	event := models.TimelineEvent{
		EventType:   models.TimelineEventLLM,
		TimestampUS: record.TimestampUs,
		DurationMS:  record.DurationMs,
		Description: record.StepDescription,
		Details: map[string]any{
			"prompt":     record.Prompt,
			"response":   record.Response,
			"model_name": record.ModelName,
		},
	}
	if record.ErrorMessage != nil {
		event.Error = *record.ErrorMessage
	}
	return event
}

func mcpEvent(record *ent.MCPInteraction) models.TimelineEvent {
	event := models.TimelineEvent{
		EventType:   models.TimelineEventMCP,
		TimestampUS: record.TimestampUs,
		DurationMS:  record.DurationMs,
		Description: fmt.Sprintf("%s.%s", record.ServerName, record.ToolName),
		Details: map[string]any{
			"server":    record.ServerName,
			"tool":      record.ToolName,
			"arguments": record.ToolArguments,
			"result":    record.ToolResult,
		},
	}
	if record.ErrorMessage != nil {
		event.Error = *record.ErrorMessage
	}
	return event
}

func toSummary(session *ent.AlertSession) models.SessionSummary {
	summary := models.SessionSummary{
		SessionID:     session.ID,
		AlertID:       session.AlertID,
		AgentType:     session.AgentType,
		AlertType:     session.AlertType,
		Status:        string(session.Status),
		StartedAtUS:   session.StartedAtUs,
		CompletedAtUS: session.CompletedAtUs,
		ErrorMessage:  session.ErrorMessage,
	}
	if session.CompletedAtUs != nil {
		durationMS := (*session.CompletedAtUs - session.StartedAtUs) / 1000
		summary.DurationMS = &durationMS
	}
	return summary
}

func logRecorderError(kind, sessionID string, err error) {
	slog.Warn("Failed to record audit entry",
		"kind", kind, "session_id", sessionID, "error", err)
}

// toolResultJSON normalizes a tool result payload into the JSON column
// shape. Map payloads are stored as-is; everything else is wrapped.
func toolResultJSON(result any) map[string]any {
	switch v := result.(type) {
	case nil:
		return nil
	case map[string]any:
		return v
	default:
		return map[string]any{"value": v}
	}
}
