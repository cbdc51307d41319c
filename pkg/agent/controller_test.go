package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentflow/triaged/pkg/agent/prompt"
	"github.com/incidentflow/triaged/pkg/config"
	"github.com/incidentflow/triaged/pkg/llm"
	"github.com/incidentflow/triaged/pkg/models"
)

// scriptedLLM replays canned responses in call order. When the script is
// exhausted the fallback response is returned, which lets budget tests
// model an LLM that always wants to continue.
type scriptedLLM struct {
	mu       sync.Mutex
	script   []scriptStep
	fallback string
	calls    int
}

type scriptStep struct {
	response string
	err      error
}

func (s *scriptedLLM) Generate(_ context.Context, _ []llm.Message, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	s.calls++
	if idx < len(s.script) {
		return s.script[idx].response, s.script[idx].err
	}
	return s.fallback, nil
}

func (s *scriptedLLM) Model() string { return "test-model" }

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// countingGateway echoes every call back as a successful result and
// tracks invocation order per server.
type countingGateway struct {
	mu       sync.Mutex
	calls    []models.ToolCallRequest
	onCall   func()
	failures map[string]string // tool name → error message
}

func (g *countingGateway) ListTools(context.Context) map[string][]models.ToolDescriptor {
	return map[string][]models.ToolDescriptor{
		"kubernetes": {{Name: "get_pods"}, {Name: "get_logs"}},
		"prometheus": {{Name: "query"}},
	}
}

func (g *countingGateway) CallTool(_ context.Context, call models.ToolCallRequest) *models.ToolResult {
	g.mu.Lock()
	g.calls = append(g.calls, call)
	n := len(g.calls)
	g.mu.Unlock()
	if g.onCall != nil {
		g.onCall()
	}
	if msg, ok := g.failures[call.Tool]; ok {
		return &models.ToolResult{Server: call.Server, Tool: call.Tool, Error: msg}
	}
	return &models.ToolResult{
		Server: call.Server,
		Tool:   call.Tool,
		Result: fmt.Sprintf("result-%d", n),
	}
}

func (g *countingGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

// memoryRecorder captures recorded LLM exchange steps.
type memoryRecorder struct {
	mu    sync.Mutex
	steps []string
}

func (r *memoryRecorder) CreateSession(_ context.Context, req models.CreateSessionRequest) string {
	return req.SessionID
}

func (r *memoryRecorder) UpdateSessionStatus(context.Context, string, models.SessionStatus, *string, *string) {
}

func (r *memoryRecorder) RecordLLMExchange(_ context.Context, _, step, _, _, _ string, _ time.Duration, _ string) {
	r.mu.Lock()
	r.steps = append(r.steps, step)
	r.mu.Unlock()
}

func (r *memoryRecorder) recordedSteps() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.steps...)
}

func testBuilder(t *testing.T) *prompt.Builder {
	t.Helper()
	registry := config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{
		"kubernetes": {Transport: config.TransportConfig{Type: config.TransportStdio, Command: "kubectl-mcp"}},
		"prometheus": {Transport: config.TransportConfig{Type: config.TransportHTTP, URL: "http://localhost:9090"}},
	})
	return prompt.NewBuilder(registry)
}

func testRunInput() RunInput {
	return RunInput{
		SessionID:      "sess-1",
		Alert:          models.Alert{AlertType: "pod-crash", Severity: "critical"},
		RunbookContent: "restart the pod",
		ServerIDs:      []string{"kubernetes", "prometheus"},
	}
}

const (
	selectTwoTools = `[
		{"server": "kubernetes", "tool": "get_pods", "parameters": {}, "reason": "check pods"},
		{"server": "kubernetes", "tool": "get_logs", "parameters": {}, "reason": "check logs"}
	]`
	selectOneTool = `[{"server": "kubernetes", "tool": "get_pods", "parameters": {}, "reason": "check pods"}]`
	stopDecision  = `{"continue": false, "reasoning": "enough data"}`
	continueWith  = `{"continue": true, "reasoning": "need more", "tools": [{"server": "kubernetes", "tool": "get_logs", "parameters": {}, "reason": "dig deeper"}]}`
)

func TestController_SingleRoundThenStop(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectTwoTools},
		{response: stopDecision},
		{response: "root cause: OOM"},
	}}
	gateway := &countingGateway{}
	recorder := &memoryRecorder{}

	c := NewController(llmClient, gateway, recorder, testBuilder(t),
		ControllerConfig{MaxIterations: 5, MaxTotalToolCalls: 20})
	result := c.Run(context.Background(), testRunInput())

	assert.False(t, result.Failed)
	assert.Equal(t, "root cause: OOM", result.Analysis)
	assert.Equal(t, 1, result.Iterations)
	require.Len(t, result.History, 1)
	assert.Equal(t, "Initial tool selection - 2 tools determined", result.History[0].Reasoning)
	assert.Equal(t, 2, gateway.callCount())

	// Per-server result order matches call order.
	require.Len(t, result.MCPData["kubernetes"], 2)
	assert.Equal(t, "get_pods", result.MCPData["kubernetes"][0].Tool)
	assert.Equal(t, "get_logs", result.MCPData["kubernetes"][1].Tool)

	assert.Equal(t, []string{"initial tool selection", "continuation decision", "final analysis"},
		recorder.recordedSteps())
}

func TestController_IterationBudget(t *testing.T) {
	// The fallback always continues, so only the budget can stop the loop.
	llmClient := &scriptedLLM{
		script:   []scriptStep{{response: selectOneTool}},
		fallback: continueWith,
	}
	gateway := &countingGateway{}

	c := NewController(llmClient, gateway, &memoryRecorder{}, testBuilder(t),
		ControllerConfig{MaxIterations: 3, MaxTotalToolCalls: 100})
	result := c.Run(context.Background(), testRunInput())

	assert.Equal(t, 3, result.Iterations)
	assert.Len(t, result.History, 3)
	assert.Equal(t, 3, gateway.callCount())
	// selection + 2 continuations (after rounds 1 and 2) + final analysis.
	assert.Equal(t, 4, llmClient.callCount())
}

func TestController_ToolCallBudget(t *testing.T) {
	twoMoreTools := `{"continue": true, "reasoning": "more", "tools": [
		{"server": "kubernetes", "tool": "get_pods", "parameters": {}, "reason": "a"},
		{"server": "kubernetes", "tool": "get_logs", "parameters": {}, "reason": "b"}
	]}`
	llmClient := &scriptedLLM{
		script:   []scriptStep{{response: selectTwoTools}},
		fallback: twoMoreTools,
	}
	gateway := &countingGateway{}

	c := NewController(llmClient, gateway, &memoryRecorder{}, testBuilder(t),
		ControllerConfig{MaxIterations: 10, MaxTotalToolCalls: 3})
	result := c.Run(context.Background(), testRunInput())

	// Round 1 spends 2 calls, round 2 is capped to the single remaining
	// call. The cumulative total never exceeds the budget.
	assert.Equal(t, 3, gateway.callCount())
	assert.Equal(t, 2, result.Iterations)
	require.Len(t, result.History, 2)
	assert.Len(t, result.History[1].ToolsCalled, 1)
}

func TestController_SelectionParseFailureDegrades(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: "I am not sure which tools to use."},
		{response: "analysis without tool data"},
	}}
	gateway := &countingGateway{}
	recorder := &memoryRecorder{}

	c := NewController(llmClient, gateway, recorder, testBuilder(t),
		ControllerConfig{MaxIterations: 3, MaxTotalToolCalls: 10})
	result := c.Run(context.Background(), testRunInput())

	assert.False(t, result.Failed)
	assert.Equal(t, "analysis without tool data", result.Analysis)
	assert.Equal(t, 0, result.Iterations)
	assert.Empty(t, result.History)
	assert.Equal(t, 0, gateway.callCount())
}

func TestController_SelectionLLMErrorDegrades(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{err: errors.New("provider unavailable")},
		{response: "analysis without tool data"},
	}}
	gateway := &countingGateway{}

	c := NewController(llmClient, gateway, &memoryRecorder{}, testBuilder(t),
		ControllerConfig{MaxIterations: 3, MaxTotalToolCalls: 10})
	result := c.Run(context.Background(), testRunInput())

	assert.False(t, result.Failed)
	assert.Equal(t, 0, result.Iterations)
	assert.Equal(t, 0, gateway.callCount())
}

func TestController_FinalAnalysisErrorIsAbsorbed(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectOneTool},
		{response: stopDecision},
		{err: errors.New("model overloaded")},
	}}
	gateway := &countingGateway{}

	c := NewController(llmClient, gateway, &memoryRecorder{}, testBuilder(t),
		ControllerConfig{MaxIterations: 3, MaxTotalToolCalls: 10})
	result := c.Run(context.Background(), testRunInput())

	assert.True(t, result.Failed)
	assert.Error(t, result.Err)
	assert.Equal(t, "Analysis incomplete due to error: model overloaded", result.Analysis)
	// Gathered data survives the failed synthesis.
	assert.Equal(t, 1, result.Iterations)
	assert.Len(t, result.History, 1)
}

func TestController_MissingContinueKeyStops(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectOneTool},
		{response: `{"reasoning": "forgot the flag"}`},
		{response: "done"},
	}}
	gateway := &countingGateway{}

	c := NewController(llmClient, gateway, &memoryRecorder{}, testBuilder(t),
		ControllerConfig{MaxIterations: 5, MaxTotalToolCalls: 10})
	result := c.Run(context.Background(), testRunInput())

	assert.Equal(t, 1, result.Iterations)
	assert.Equal(t, "done", result.Analysis)
}

func TestController_ContinueWithEmptyToolListCountsRound(t *testing.T) {
	llmClient := &scriptedLLM{
		script:   []scriptStep{{response: selectOneTool}},
		fallback: `{"continue": true, "reasoning": "thinking", "tools": []}`,
	}
	gateway := &countingGateway{}

	c := NewController(llmClient, gateway, &memoryRecorder{}, testBuilder(t),
		ControllerConfig{MaxIterations: 2, MaxTotalToolCalls: 10})
	result := c.Run(context.Background(), testRunInput())

	assert.Equal(t, 2, result.Iterations)
	require.Len(t, result.History, 2)
	assert.Empty(t, result.History[1].ToolsCalled)
	assert.Equal(t, 1, gateway.callCount())
}

func TestController_CancellationStopsNewRounds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	llmClient := &scriptedLLM{
		script:   []scriptStep{{response: selectTwoTools}},
		fallback: continueWith,
	}
	// Cancel mid-round: the in-flight calls still finish, but no new
	// round starts afterwards.
	gateway := &countingGateway{onCall: cancel}
	recorder := &memoryRecorder{}

	c := NewController(llmClient, gateway, recorder, testBuilder(t),
		ControllerConfig{MaxIterations: 5, MaxTotalToolCalls: 20})
	result := c.Run(ctx, testRunInput())

	assert.Equal(t, 1, result.Iterations)
	assert.Equal(t, 2, gateway.callCount())
	// No continuation exchange happened after cancellation.
	for _, step := range recorder.recordedSteps() {
		assert.NotEqual(t, "continuation decision", step)
	}
}

func TestController_AggregatesAcrossRounds(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectOneTool},
		{response: continueWith},
		{response: stopDecision},
		{response: "final"},
	}}
	gateway := &countingGateway{}

	c := NewController(llmClient, gateway, &memoryRecorder{}, testBuilder(t),
		ControllerConfig{MaxIterations: 5, MaxTotalToolCalls: 10})
	result := c.Run(context.Background(), testRunInput())

	assert.Equal(t, 2, result.Iterations)
	// Both rounds hit the kubernetes server; results accumulate in order.
	require.Len(t, result.MCPData["kubernetes"], 2)
	assert.Equal(t, "get_pods", result.MCPData["kubernetes"][0].Tool)
	assert.Equal(t, "get_logs", result.MCPData["kubernetes"][1].Tool)
}

func TestController_ToolErrorsLandInResults(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectTwoTools},
		{response: stopDecision},
		{response: "final"},
	}}
	gateway := &countingGateway{failures: map[string]string{"get_logs": "connection refused"}}

	c := NewController(llmClient, gateway, &memoryRecorder{}, testBuilder(t),
		ControllerConfig{MaxIterations: 3, MaxTotalToolCalls: 10})
	result := c.Run(context.Background(), testRunInput())

	require.Len(t, result.MCPData["kubernetes"], 2)
	assert.False(t, result.MCPData["kubernetes"][0].IsError())
	assert.True(t, result.MCPData["kubernetes"][1].IsError())
	assert.Equal(t, "connection refused", result.MCPData["kubernetes"][1].Error)
}

func TestController_ProgressPanicIsSwallowed(t *testing.T) {
	llmClient := &scriptedLLM{script: []scriptStep{
		{response: selectOneTool},
		{response: stopDecision},
		{response: "final"},
	}}
	in := testRunInput()
	in.Progress = func(int, string) { panic("listener bug") }

	c := NewController(llmClient, &countingGateway{}, &memoryRecorder{}, testBuilder(t),
		ControllerConfig{MaxIterations: 3, MaxTotalToolCalls: 10})

	require.NotPanics(t, func() {
		result := c.Run(context.Background(), in)
		assert.Equal(t, "final", result.Analysis)
	})
}
