// Package metrics registers Prometheus instrumentation for the
// alert-processing pipeline.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the pipeline's Prometheus collectors.
type Metrics struct {
	SubmitsTotal    *prometheus.CounterVec
	SessionsTotal   *prometheus.CounterVec
	SessionDuration *prometheus.HistogramVec
	ActiveRuns      prometheus.Gauge
	LLMCallsTotal   *prometheus.CounterVec
	LLMDuration     prometheus.Histogram
	ToolCallsTotal  *prometheus.CounterVec
	ToolDuration    *prometheus.HistogramVec
	Iterations      prometheus.Histogram
}

// NewMetrics registers and returns the pipeline metrics on the given
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SubmitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "triaged_submits_total",
			Help: "Total alert submissions by result.",
		}, []string{"result"}),
		SessionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "triaged_sessions_total",
			Help: "Total processing sessions by final status.",
		}, []string{"status"}),
		SessionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "triaged_session_duration_seconds",
			Help:    "Duration of processing sessions in seconds.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1s .. ~512s
		}, []string{"status", "agent"}),
		ActiveRuns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "triaged_active_runs",
			Help: "Alert runs currently being processed.",
		}),
		LLMCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "triaged_llm_calls_total",
			Help: "Total LLM provider calls by step and status.",
		}, []string{"step", "status"}),
		LLMDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "triaged_llm_call_duration_seconds",
			Help:    "Duration of individual LLM calls in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8), // 0.5s .. ~64s
		}),
		ToolCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "triaged_tool_calls_total",
			Help: "Total tool executions by server and status.",
		}, []string{"server", "status"}),
		ToolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "triaged_tool_duration_seconds",
			Help:    "Duration of tool executions in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 8), // 0.1s .. ~12.8s
		}, []string{"server"}),
		Iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "triaged_session_iterations",
			Help:    "Investigation iterations per session.",
			Buckets: prometheus.LinearBuckets(0, 1, 12), // 0 .. 11
		}),
	}

	reg.MustRegister(
		m.SubmitsTotal,
		m.SessionsTotal,
		m.SessionDuration,
		m.ActiveRuns,
		m.LLMCallsTotal,
		m.LLMDuration,
		m.ToolCallsTotal,
		m.ToolDuration,
		m.Iterations,
	)

	return m
}

// ObserveSubmit counts an alert submission outcome.
func (m *Metrics) ObserveSubmit(result string) {
	m.SubmitsTotal.WithLabelValues(result).Inc()
}

// ObserveSession counts a finished session and its duration.
func (m *Metrics) ObserveSession(status, agent string, seconds float64, iterations int) {
	m.SessionsTotal.WithLabelValues(status).Inc()
	m.SessionDuration.WithLabelValues(status, agent).Observe(seconds)
	m.Iterations.Observe(float64(iterations))
}

// ObserveLLMCall counts an LLM call by step and outcome.
func (m *Metrics) ObserveLLMCall(step string, seconds float64, isError bool) {
	status := "success"
	if isError {
		status = "error"
	}
	m.LLMCallsTotal.WithLabelValues(step, status).Inc()
	m.LLMDuration.Observe(seconds)
}

// ObserveToolCall counts a tool execution by server and outcome.
func (m *Metrics) ObserveToolCall(server string, seconds float64, isError bool) {
	status := "success"
	if isError {
		status = "error"
	}
	m.ToolCallsTotal.WithLabelValues(server, status).Inc()
	m.ToolDuration.WithLabelValues(server).Observe(seconds)
}
