package agent

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentflow/triaged/pkg/config"
	"github.com/incidentflow/triaged/pkg/metrics"
	"github.com/incidentflow/triaged/pkg/models"
)

type statusUpdate struct {
	sessionID     string
	status        models.SessionStatus
	errorMessage  *string
	finalAnalysis *string
}

// auditRecorder captures the full session lifecycle for assertions.
type auditRecorder struct {
	mu       sync.Mutex
	created  []models.CreateSessionRequest
	updates  []statusUpdate
	llmSteps []string
}

func (r *auditRecorder) CreateSession(_ context.Context, req models.CreateSessionRequest) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if req.SessionID == "" {
		req.SessionID = "generated-session"
	}
	r.created = append(r.created, req)
	return req.SessionID
}

func (r *auditRecorder) UpdateSessionStatus(_ context.Context, sessionID string, status models.SessionStatus, errorMessage, finalAnalysis *string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, statusUpdate{sessionID, status, errorMessage, finalAnalysis})
}

func (r *auditRecorder) RecordLLMExchange(_ context.Context, _, step, _, _, _ string, _ time.Duration, _ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.llmSteps = append(r.llmSteps, step)
}

func (r *auditRecorder) lastStatus() *statusUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.updates) == 0 {
		return nil
	}
	u := r.updates[len(r.updates)-1]
	return &u
}

type fakeFetcher struct {
	content string
	err     error
}

func (f *fakeFetcher) Fetch(context.Context, string) (string, error) {
	return f.content, f.err
}

type fakeFactory struct {
	gateway *countingGateway
	closed  bool
}

func (f *fakeFactory) Open(context.Context, []string, string) (ToolGateway, func()) {
	return f.gateway, func() { f.closed = true }
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Processing: &config.ProcessingConfig{
			MaxIterations:       3,
			MaxTotalToolCalls:   10,
			MaxConcurrentAlerts: 2,
			QueueTimeout:        time.Second,
		},
		AgentRegistry: config.NewAgentRegistry(map[string]*config.AgentConfig{
			"KubernetesAgent": {
				AlertTypes: []string{"pod-crash", "namespace-terminating"},
				MCPServers: []string{"kubernetes"},
			},
		}),
		MCPServerRegistry: config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{
			"kubernetes": {Transport: config.TransportConfig{Type: config.TransportStdio, Command: "kubectl-mcp"}},
			"prometheus": {Transport: config.TransportConfig{Type: config.TransportHTTP, URL: "http://localhost:9090"}},
		}),
	}
}

func TestOrchestrator_HappyPath(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectOneTool},
		{response: stopDecision},
		{response: "The pod was OOM-killed; raise the memory limit."},
	}}
	recorder := &auditRecorder{}
	factory := &fakeFactory{gateway: &countingGateway{}}

	o := NewOrchestrator(testConfig(t), llmClient, recorder, &fakeFetcher{content: "runbook text"}, factory)
	report := o.ProcessAlert(context.Background(), "alert-1",
		models.Alert{AlertType: "pod-crash", Severity: "critical", RunbookURL: "https://example.com/rb.md"}, nil)

	assert.Contains(t, report, "# Alert Analysis Report")
	assert.Contains(t, report, "pod-crash")
	assert.Contains(t, report, "KubernetesAgent")
	assert.Contains(t, report, "OOM-killed")

	require.Len(t, recorder.created, 1)
	assert.Equal(t, "KubernetesAgent", recorder.created[0].AgentType)
	assert.Equal(t, "alert-1", recorder.created[0].AlertID)

	last := recorder.lastStatus()
	require.NotNil(t, last)
	assert.Equal(t, models.StatusCompleted, last.status)
	require.NotNil(t, last.finalAnalysis)
	assert.Contains(t, *last.finalAnalysis, "OOM-killed")
	assert.Nil(t, last.errorMessage)

	assert.True(t, factory.closed, "gateway must be closed after the run")
}

func TestOrchestrator_UnmappedAlertType(t *testing.T) {
	recorder := &auditRecorder{}
	o := NewOrchestrator(testConfig(t), &scriptedLLM{}, recorder, &fakeFetcher{}, &fakeFactory{gateway: &countingGateway{}})

	report := o.ProcessAlert(context.Background(), "",
		models.Alert{AlertType: "disk-full"}, nil)

	// The caller still gets displayable text naming the problem and type.
	assert.Contains(t, report, "Error")
	assert.Contains(t, report, "disk-full")

	// A failed session is still recorded, labeled with the sentinel agent.
	require.Len(t, recorder.created, 1)
	assert.Equal(t, "unknown", recorder.created[0].AgentType)
	assert.Equal(t, "disk-full", recorder.created[0].AlertType)

	last := recorder.lastStatus()
	require.NotNil(t, last)
	assert.Equal(t, models.StatusFailed, last.status)
	require.NotNil(t, last.errorMessage)
	assert.Contains(t, *last.errorMessage, "disk-full")
}

func TestOrchestrator_RunbookFetchFailure(t *testing.T) {
	recorder := &auditRecorder{}
	o := NewOrchestrator(testConfig(t), &scriptedLLM{}, recorder,
		&fakeFetcher{err: errors.New("404 not found")}, &fakeFactory{gateway: &countingGateway{}})

	report := o.ProcessAlert(context.Background(), "alert-2",
		models.Alert{AlertType: "pod-crash", RunbookURL: "https://example.com/missing.md"}, nil)

	assert.Contains(t, report, "Error")
	assert.Contains(t, report, "pod-crash")

	last := recorder.lastStatus()
	require.NotNil(t, last)
	assert.Equal(t, models.StatusFailed, last.status)
	require.NotNil(t, last.errorMessage)
	assert.Contains(t, *last.errorMessage, "runbook")
}

func TestOrchestrator_FinalizeFailureFailsSession(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectOneTool},
		{response: stopDecision},
		{err: errors.New("model overloaded")},
	}}
	recorder := &auditRecorder{}
	o := NewOrchestrator(testConfig(t), llmClient, recorder, &fakeFetcher{content: "rb"}, &fakeFactory{gateway: &countingGateway{}})

	report := o.ProcessAlert(context.Background(), "alert-3",
		models.Alert{AlertType: "pod-crash"}, nil)

	assert.Contains(t, report, "Error")

	last := recorder.lastStatus()
	require.NotNil(t, last)
	assert.Equal(t, models.StatusFailed, last.status)
	require.NotNil(t, last.finalAnalysis)
	assert.Contains(t, *last.finalAnalysis, "Analysis incomplete due to error")
}

func TestOrchestrator_ProgressMilestones(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectOneTool},
		{response: stopDecision},
		{response: "done"},
	}}

	var mu sync.Mutex
	var percents []int
	progress := func(percent int, _ string) {
		mu.Lock()
		percents = append(percents, percent)
		mu.Unlock()
	}

	o := NewOrchestrator(testConfig(t), llmClient, &auditRecorder{}, &fakeFetcher{content: "rb"}, &fakeFactory{gateway: &countingGateway{}})
	o.ProcessAlert(context.Background(), "alert-4", models.Alert{AlertType: "pod-crash"}, progress)

	require.NotEmpty(t, percents)
	assert.Equal(t, 5, percents[0])
	assert.Equal(t, 100, percents[len(percents)-1])
	// Milestones never go backwards.
	for i := 1; i < len(percents); i++ {
		assert.GreaterOrEqual(t, percents[i], percents[i-1])
	}
}

func TestOrchestrator_ProgressPanicDoesNotAbort(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectOneTool},
		{response: stopDecision},
		{response: "done"},
	}}
	o := NewOrchestrator(testConfig(t), llmClient, &auditRecorder{}, &fakeFetcher{content: "rb"}, &fakeFactory{gateway: &countingGateway{}})

	require.NotPanics(t, func() {
		report := o.ProcessAlert(context.Background(), "alert-5",
			models.Alert{AlertType: "pod-crash"},
			func(int, string) { panic("listener bug") })
		assert.Contains(t, report, "done")
	})
}

func TestOrchestrator_SessionMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectOneTool},
		{response: stopDecision},
		{response: "analysis"},
	}}
	o := NewOrchestrator(testConfig(t), llmClient, &auditRecorder{}, &fakeFetcher{content: "rb"}, &fakeFactory{gateway: &countingGateway{}})
	o.SetMetrics(m)

	o.ProcessAlert(context.Background(), "alert-6", models.Alert{AlertType: "pod-crash"}, nil)
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.SessionsTotal.WithLabelValues("completed")))

	// Unmapped alert types close as failed under the sentinel agent.
	o.ProcessAlert(context.Background(), "alert-7", models.Alert{AlertType: "disk-full"}, nil)
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.SessionsTotal.WithLabelValues("failed")))
}
