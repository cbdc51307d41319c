package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/incidentflow/triaged/pkg/agent/prompt"
	"github.com/incidentflow/triaged/pkg/llm"
	"github.com/incidentflow/triaged/pkg/models"
)

// Controller states. The loop always terminates in stateDone: every
// failure path degrades toward FINALIZING instead of aborting.
type controllerState int

const (
	stateSelectingTools controllerState = iota
	stateExecutingTools
	stateDecidingContinue
	stateFinalizing
	stateDone
)

// Audit step descriptions for LLM exchanges.
const (
	stepToolSelection = "initial tool selection"
	stepContinuation  = "continuation decision"
	stepFinalAnalysis = "final analysis"
)

// ControllerConfig carries the per-run budgets.
type ControllerConfig struct {
	MaxIterations     int
	MaxTotalToolCalls int
}

// Controller drives the iterative tool-calling loop for one alert:
// rounds of tool selection, execution, and continuation decisions,
// bounded by iteration and tool-call budgets, ending in a synthesis over
// everything gathered.
type Controller struct {
	llm      AnalysisClient
	gateway  ToolGateway
	recorder Recorder
	builder  *prompt.Builder
	cfg      ControllerConfig
	logger   *slog.Logger
}

// NewController creates a controller for one triage run.
func NewController(analysisClient AnalysisClient, gateway ToolGateway, recorder Recorder, builder *prompt.Builder, cfg ControllerConfig) *Controller {
	return &Controller{
		llm:      analysisClient,
		gateway:  gateway,
		recorder: recorder,
		builder:  builder,
		cfg:      cfg,
		logger:   slog.Default(),
	}
}

// RunInput is everything a controller run needs.
type RunInput struct {
	SessionID          string
	Alert              models.Alert
	RunbookContent     string
	ServerIDs          []string
	CustomInstructions string
	Progress           ProgressFunc
}

// RunResult is the outcome of a controller run. Analysis is always
// non-empty; Failed marks the finalize-step degradation where the
// provider error was absorbed into the text.
type RunResult struct {
	Analysis   string
	Iterations int
	History    []models.IterationRecord
	MCPData    models.MCPData
	Failed     bool
	Err        error
}

// Run executes the state machine to completion. It never returns an
// error: every failure degrades into the final analysis text.
func (c *Controller) Run(ctx context.Context, in RunInput) *RunResult {
	tools := c.gateway.ListTools(ctx)
	system := c.builder.SystemPrompt(in.ServerIDs, in.CustomInstructions)

	var (
		history    []models.IterationRecord
		aggregated = make(models.MCPData)
		totalCalls int
		iteration  int

		pending       []models.ToolCallRequest
		pendingReason string
	)

	state := stateSelectingTools
	for state != stateFinalizing {
		switch state {
		case stateSelectingTools:
			c.progress(in, 20, "Selecting diagnostic tools")
			userPrompt := c.builder.BuildToolSelectionPrompt(in.Alert, in.RunbookContent, tools)
			response, err := c.generate(ctx, in.SessionID, stepToolSelection, system, userPrompt)
			if err != nil {
				c.logger.Warn("Tool selection failed, finalizing with no tool data",
					"session_id", in.SessionID, "error", err)
				state = stateFinalizing
				break
			}
			calls, err := ParseToolSelection(response)
			if err != nil {
				c.logger.Warn("Tool selection response unparseable, finalizing with no tool data",
					"session_id", in.SessionID, "error", err)
				state = stateFinalizing
				break
			}
			if len(calls) == 0 {
				c.logger.Info("No tools selected, finalizing", "session_id", in.SessionID)
				state = stateFinalizing
				break
			}
			pending = calls
			pendingReason = fmt.Sprintf("Initial tool selection - %d tools determined", len(calls))
			state = stateExecutingTools

		case stateExecutingTools:
			iteration++
			c.progress(in, c.iterationPercent(iteration),
				fmt.Sprintf("Iteration %d/%d: gathering data (%d tools)", iteration, c.cfg.MaxIterations, len(pending)))

			// Cap the round so the cumulative budget is never exceeded.
			if c.cfg.MaxTotalToolCalls > 0 && totalCalls+len(pending) > c.cfg.MaxTotalToolCalls {
				pending = pending[:c.cfg.MaxTotalToolCalls-totalCalls]
			}

			roundData := c.executeRound(ctx, pending)
			totalCalls += len(pending)

			history = append(history, models.IterationRecord{
				Iteration:   iteration,
				Reasoning:   pendingReason,
				ToolsCalled: pending,
				MCPData:     roundData,
			})
			aggregated.Merge(roundData)
			state = stateDecidingContinue

		case stateDecidingContinue:
			if ctx.Err() != nil {
				c.logger.Info("Run cancelled, no further rounds",
					"session_id", in.SessionID, "iteration", iteration)
				state = stateFinalizing
				break
			}
			if iteration >= c.cfg.MaxIterations {
				c.logger.Info("Iteration budget reached, finalizing",
					"session_id", in.SessionID, "iterations", iteration)
				state = stateFinalizing
				break
			}
			if c.cfg.MaxTotalToolCalls > 0 && totalCalls >= c.cfg.MaxTotalToolCalls {
				c.logger.Info("Tool call budget reached, finalizing",
					"session_id", in.SessionID, "tool_calls", totalCalls)
				state = stateFinalizing
				break
			}

			userPrompt := c.builder.BuildContinuationPrompt(in.Alert, in.RunbookContent, tools, history, iteration, c.cfg.MaxIterations)
			response, err := c.generate(ctx, in.SessionID, stepContinuation, system, userPrompt)
			if err != nil {
				c.logger.Warn("Continuation decision failed, finalizing",
					"session_id", in.SessionID, "error", err)
				state = stateFinalizing
				break
			}
			decision, err := ParseContinueDecision(response)
			if err != nil || decision.Continue == nil {
				c.logger.Warn("Continuation response unparseable, treating as stop",
					"session_id", in.SessionID, "error", err)
				state = stateFinalizing
				break
			}
			if !*decision.Continue {
				c.logger.Info("LLM decided to stop iterating",
					"session_id", in.SessionID, "iteration", iteration, "reasoning", decision.Reasoning)
				state = stateFinalizing
				break
			}
			// continue=true loops even with an empty tool list; the empty
			// round still counts against the iteration budget.
			pending = decision.Tools
			pendingReason = decision.Reasoning
			state = stateExecutingTools
		}
	}

	result := &RunResult{
		Iterations: iteration,
		History:    history,
		MCPData:    aggregated,
	}

	c.progress(in, 90, "Synthesizing final analysis")
	userPrompt := c.builder.BuildFinalAnalysisPrompt(in.Alert, in.RunbookContent, aggregated, iteration)
	analysis, err := c.generate(ctx, in.SessionID, stepFinalAnalysis, system, userPrompt)
	if err != nil {
		result.Analysis = fmt.Sprintf("Analysis incomplete due to error: %s", err)
		result.Failed = true
		result.Err = err
		return result
	}

	result.Analysis = analysis
	return result
}

// executeRound runs one round's tool calls: grouped by server, servers in
// parallel, calls within a server sequential so per-server result order
// matches call order. The calls run under a detached context so an
// in-flight round finishes even when the run is cancelled.
func (c *Controller) executeRound(ctx context.Context, calls []models.ToolCallRequest) models.MCPData {
	data := make(models.MCPData)
	if len(calls) == 0 {
		return data
	}

	perServer := make(map[string][]models.ToolCallRequest)
	var servers []string
	for _, call := range calls {
		if _, seen := perServer[call.Server]; !seen {
			servers = append(servers, call.Server)
		}
		perServer[call.Server] = append(perServer[call.Server], call)
	}

	execCtx := context.WithoutCancel(ctx)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, server := range servers {
		wg.Add(1)
		go func(server string, serverCalls []models.ToolCallRequest) {
			defer wg.Done()
			results := make([]models.ToolResult, 0, len(serverCalls))
			for _, call := range serverCalls {
				results = append(results, *c.gateway.CallTool(execCtx, call))
			}
			mu.Lock()
			data[server] = results
			mu.Unlock()
		}(server, perServer[server])
	}
	wg.Wait()

	return data
}

// generate performs one LLM exchange and records it on the audit trail.
func (c *Controller) generate(ctx context.Context, sessionID, step, system, user string) (string, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}

	start := time.Now()
	response, err := c.llm.Generate(ctx, messages, sessionID)
	duration := time.Since(start)

	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	c.recorder.RecordLLMExchange(ctx, sessionID, step, user, response, c.llm.Model(), duration, errMsg)

	return response, err
}

// iterationPercent spreads iteration progress across the 20-85 band.
func (c *Controller) iterationPercent(iteration int) int {
	if c.cfg.MaxIterations <= 0 {
		return 20
	}
	return 20 + ((iteration-1)*65)/c.cfg.MaxIterations
}

func (c *Controller) progress(in RunInput, percent int, message string) {
	if in.Progress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("Progress callback panicked", "session_id", in.SessionID, "panic", r)
		}
	}()
	in.Progress(percent, message)
}
