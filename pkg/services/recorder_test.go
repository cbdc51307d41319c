package services

import (
	"context"
	stdsql "database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentflow/triaged/ent"
	"github.com/incidentflow/triaged/pkg/metrics"
	"github.com/incidentflow/triaged/pkg/models"
	"github.com/incidentflow/triaged/test/util"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// brokenHistoryService returns a HistoryService whose database cannot be
// reached, so every persistence call fails with a dial error.
func brokenHistoryService(t *testing.T) *HistoryService {
	t.Helper()
	db, err := stdsql.Open("pgx", "postgres://nobody@127.0.0.1:1/none")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	return NewHistoryService(client)
}

func TestRecorder_SwallowsPersistenceFailures(t *testing.T) {
	recorder := NewRecorder(brokenHistoryService(t), nil)
	ctx := context.Background()

	// None of these may panic or surface an error to the caller.
	sessionID := recorder.CreateSession(ctx, models.CreateSessionRequest{
		AlertID:   "alert-1",
		AgentType: "KubernetesAgent",
		AlertType: "pod-crash",
	})
	assert.NotEmpty(t, sessionID, "a session ID is issued even when persistence fails")

	recorder.UpdateSessionStatus(ctx, sessionID, models.StatusInProgress, nil, nil)
	recorder.RecordLLMExchange(ctx, sessionID, "initial tool selection",
		"prompt", "response", "test-model", 0, "")
	recorder.RecordToolCall(ctx, sessionID, "kubernetes", "get_pods",
		nil, map[string]any{"pods": 1}, "", 0)
}

func TestRecorder_PreservesCallerSessionID(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	recorder := NewRecorder(NewHistoryService(client), nil)

	sessionID := recorder.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID: "session-fixed",
		AlertID:   "alert-fixed",
		AgentType: "KubernetesAgent",
		AlertType: "pod-crash",
	})
	assert.Equal(t, "session-fixed", sessionID)
}

func TestRecorder_ObservesMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)
	recorder := NewRecorder(brokenHistoryService(t), m)
	ctx := context.Background()

	recorder.RecordLLMExchange(ctx, "s1", "final analysis", "p", "r", "test-model", 0, "")
	recorder.RecordLLMExchange(ctx, "s1", "final analysis", "p", "r", "test-model", 0, "model overloaded")
	recorder.RecordToolCall(ctx, "s1", "kubernetes", "get_pods", nil, nil, "", 0)

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.LLMCallsTotal.WithLabelValues("final analysis", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.LLMCallsTotal.WithLabelValues("final analysis", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.ToolCallsTotal.WithLabelValues("kubernetes", "success")))
}
