package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentflow/triaged/ent/alertsession"
	"github.com/incidentflow/triaged/pkg/models"
	"github.com/incidentflow/triaged/test/util"
)

func newTestService(t *testing.T) *HistoryService {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return NewHistoryService(client)
}

func createTestSession(t *testing.T, service *HistoryService) string {
	t.Helper()
	sessionID, err := service.CreateSession(context.Background(), models.CreateSessionRequest{
		AlertID:   uuid.New().String(),
		AlertData: map[string]any{"pod": "api-0"},
		AgentType: "KubernetesAgent",
		AlertType: "pod-crash",
	})
	require.NoError(t, err)
	return sessionID
}

func TestHistoryService_CreateSession(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	t.Run("creates pending session", func(t *testing.T) {
		sessionID, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			AlertID:   "alert-1",
			AlertData: map[string]any{"namespace": "prod"},
			AgentType: "KubernetesAgent",
			AlertType: "pod-crash",
		})
		require.NoError(t, err)

		session, err := service.GetSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusPending, session.Status)
		assert.Equal(t, "alert-1", session.AlertID)
		assert.Equal(t, map[string]any{"namespace": "prod"}, session.AlertData)
		assert.Greater(t, session.StartedAtUs, int64(0))
		assert.Nil(t, session.CompletedAtUs)
	})

	t.Run("generates session ID when empty", func(t *testing.T) {
		sessionID, err := service.CreateSession(ctx, models.CreateSessionRequest{
			AlertID:   "alert-2",
			AgentType: "KubernetesAgent",
			AlertType: "pod-crash",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, sessionID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateSessionRequest
		}{
			{"missing alert_id", models.CreateSessionRequest{AgentType: "a", AlertType: "t"}},
			{"missing agent_type", models.CreateSessionRequest{AlertID: "id", AlertType: "t"}},
			{"missing alert_type", models.CreateSessionRequest{AlertID: "id", AgentType: "a"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateSession(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects duplicate alert_id", func(t *testing.T) {
		req := models.CreateSessionRequest{
			AlertID:   "alert-dup",
			AgentType: "KubernetesAgent",
			AlertType: "pod-crash",
		}
		_, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateSession(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestHistoryService_UpdateSessionStatus(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	t.Run("non-terminal transition", func(t *testing.T) {
		sessionID := createTestSession(t, service)

		err := service.UpdateSessionStatus(ctx, sessionID, models.StatusInProgress, nil, nil)
		require.NoError(t, err)

		session, err := service.GetSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusInProgress, session.Status)
		assert.Nil(t, session.CompletedAtUs)
	})

	t.Run("terminal transition stamps completion", func(t *testing.T) {
		sessionID := createTestSession(t, service)
		analysis := "root cause: OOM"

		err := service.UpdateSessionStatus(ctx, sessionID, models.StatusCompleted, nil, &analysis)
		require.NoError(t, err)

		session, err := service.GetSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusCompleted, session.Status)
		require.NotNil(t, session.CompletedAtUs)
		require.NotNil(t, session.FinalAnalysis)
		assert.Equal(t, analysis, *session.FinalAnalysis)
	})

	t.Run("closing twice is a no-op", func(t *testing.T) {
		sessionID := createTestSession(t, service)
		analysis := "first close"

		require.NoError(t, service.UpdateSessionStatus(ctx, sessionID, models.StatusCompleted, nil, &analysis))
		first, err := service.GetSession(ctx, sessionID)
		require.NoError(t, err)

		// Second terminal close must leave the record untouched.
		errMsg := "late failure"
		require.NoError(t, service.UpdateSessionStatus(ctx, sessionID, models.StatusFailed, &errMsg, nil))

		second, err := service.GetSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, first.Status, second.Status)
		assert.Equal(t, *first.CompletedAtUs, *second.CompletedAtUs)
		assert.Equal(t, *first.FinalAnalysis, *second.FinalAnalysis)
		assert.Nil(t, second.ErrorMessage)
	})

	t.Run("failed close records error message", func(t *testing.T) {
		sessionID := createTestSession(t, service)
		errMsg := "runbook fetch failed"

		require.NoError(t, service.UpdateSessionStatus(ctx, sessionID, models.StatusFailed, &errMsg, nil))

		session, err := service.GetSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusFailed, session.Status)
		require.NotNil(t, session.ErrorMessage)
		assert.Equal(t, errMsg, *session.ErrorMessage)
	})

	t.Run("closed session is never reopened", func(t *testing.T) {
		sessionID := createTestSession(t, service)
		require.NoError(t, service.UpdateSessionStatus(ctx, sessionID, models.StatusCompleted, nil, nil))

		require.NoError(t, service.UpdateSessionStatus(ctx, sessionID, models.StatusInProgress, nil, nil))

		session, err := service.GetSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusCompleted, session.Status)
	})

	t.Run("unknown session", func(t *testing.T) {
		err := service.UpdateSessionStatus(ctx, "ghost", models.StatusInProgress, nil, nil)
		assert.ErrorIs(t, err, ErrNotFound)

		err = service.UpdateSessionStatus(ctx, "ghost", models.StatusCompleted, nil, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestHistoryService_Timeline(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()
	sessionID := createTestSession(t, service)

	// Recorded durations push timestamps backwards, so interleave by
	// recording in sequence with zero duration.
	require.NoError(t, service.RecordLLMExchange(ctx, sessionID,
		"initial tool selection", "prompt-1", "response-1", "test-model", 0, ""))
	time.Sleep(2 * time.Millisecond)
	service.RecordToolCall(ctx, sessionID, "kubernetes", "get_pods",
		map[string]any{"namespace": "prod"}, map[string]any{"pods": 3}, "", 0)
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, service.RecordLLMExchange(ctx, sessionID,
		"final analysis", "prompt-2", "response-2", "test-model", 0, "model overloaded"))

	t.Run("merged chronological order", func(t *testing.T) {
		timeline, err := service.GetTimeline(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, timeline, 3)

		assert.Equal(t, models.TimelineEventLLM, timeline[0].EventType)
		assert.Equal(t, "initial tool selection", timeline[0].Description)
		assert.Equal(t, models.TimelineEventMCP, timeline[1].EventType)
		assert.Equal(t, "kubernetes.get_pods", timeline[1].Description)
		assert.Equal(t, models.TimelineEventLLM, timeline[2].EventType)
		assert.Equal(t, "model overloaded", timeline[2].Error)

		for i := 1; i < len(timeline); i++ {
			assert.GreaterOrEqual(t, timeline[i].TimestampUS, timeline[i-1].TimestampUS)
		}
	})

	t.Run("empty timeline for fresh session", func(t *testing.T) {
		fresh := createTestSession(t, service)
		timeline, err := service.GetTimeline(ctx, fresh)
		require.NoError(t, err)
		assert.Empty(t, timeline)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := service.GetTimeline(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("export counts interactions", func(t *testing.T) {
		export, err := service.ExportSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 2, export.LLMExchanges)
		assert.Equal(t, 1, export.ToolCalls)
		assert.Len(t, export.Timeline, 3)
		assert.Equal(t, map[string]any{"pod": "api-0"}, export.AlertData)
	})
}

func TestHistoryService_ListSessions(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	mkSession := func(agentType, alertType string, status models.SessionStatus, analysis string) string {
		sessionID, err := service.CreateSession(ctx, models.CreateSessionRequest{
			AlertID:   uuid.New().String(),
			AgentType: agentType,
			AlertType: alertType,
		})
		require.NoError(t, err)
		if status != models.StatusPending {
			var analysisPtr *string
			if analysis != "" {
				analysisPtr = &analysis
			}
			require.NoError(t, service.UpdateSessionStatus(ctx, sessionID, status, nil, analysisPtr))
		}
		// Distinct started_at_us for stable ordering.
		time.Sleep(2 * time.Millisecond)
		return sessionID
	}

	first := mkSession("KubernetesAgent", "pod-crash", models.StatusCompleted, "memory pressure on node")
	mkSession("KubernetesAgent", "namespace-terminating", models.StatusFailed, "")
	third := mkSession("ArgoCDAgent", "out-of-sync", models.StatusCompleted, "drift in deployment manifest")
	mkSession("KubernetesAgent", "pod-crash", models.StatusPending, "")

	t.Run("no filters, newest first", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{})
		require.NoError(t, err)
		assert.Equal(t, 4, result.TotalCount)
		require.Len(t, result.Sessions, 4)
		assert.Equal(t, first, result.Sessions[3].SessionID)
	})

	t.Run("status filter with OR semantics", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{
			Status: []string{"completed", "failed"},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalCount)
	})

	t.Run("agent and alert type filters", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{
			AgentType: "KubernetesAgent",
			AlertType: "pod-crash",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalCount)
	})

	t.Run("case-insensitive search over analysis", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{Search: "DRIFT"})
		require.NoError(t, err)
		require.Equal(t, 1, result.TotalCount)
		assert.Equal(t, third, result.Sessions[0].SessionID)
	})

	t.Run("pagination", func(t *testing.T) {
		page1, err := service.ListSessions(ctx, models.SessionFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, page1.TotalCount)
		assert.Len(t, page1.Sessions, 2)

		page2, err := service.ListSessions(ctx, models.SessionFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, page2.Sessions, 2)
		assert.NotEqual(t, page1.Sessions[0].SessionID, page2.Sessions[0].SessionID)
	})

	t.Run("time range", func(t *testing.T) {
		session, err := service.GetSession(ctx, third)
		require.NoError(t, err)
		start := session.StartedAtUs

		result, err := service.ListSessions(ctx, models.SessionFilters{StartUS: &start})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalCount)

		end := start
		result, err = service.ListSessions(ctx, models.SessionFilters{EndUS: &end})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalCount)
	})

	t.Run("duration computed for closed sessions", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{Status: []string{"completed"}})
		require.NoError(t, err)
		for _, s := range result.Sessions {
			require.NotNil(t, s.DurationMS, "completed session %s must have a duration", s.SessionID)
			assert.GreaterOrEqual(t, *s.DurationMS, int64(0))
		}
	})
}

func TestHistoryService_GetSessionNotFound(t *testing.T) {
	service := newTestService(t)
	_, err := service.GetSession(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryService_ToolResultShapes(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()
	sessionID := createTestSession(t, service)

	service.RecordToolCall(ctx, sessionID, "kubernetes", "get_logs", nil, "plain text result", "", time.Second)
	service.RecordToolCall(ctx, sessionID, "kubernetes", "get_pods", nil, nil, "connection refused", time.Second)

	timeline, err := service.GetTimeline(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, timeline, 2)

	// Non-map payloads are wrapped for the JSON column.
	var wrapped, failed int
	for _, event := range timeline {
		details := event.Details
		if result, ok := details["result"].(map[string]any); ok && result["value"] == "plain text result" {
			wrapped++
		}
		if event.Error == "connection refused" {
			failed++
		}
	}
	assert.Equal(t, 1, wrapped)
	assert.Equal(t, 1, failed)
}

func TestHistoryService_ConcurrentToolRecording(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()
	sessionID := createTestSession(t, service)

	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			service.RecordToolCall(ctx, sessionID, "kubernetes",
				fmt.Sprintf("tool-%d", n), nil, map[string]any{"n": n}, "", 0)
		}(i)
	}
	for i := 0; i < 5; i++ {
		<-done
	}

	timeline, err := service.GetTimeline(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, timeline, 5)
}
