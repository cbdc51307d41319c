package models

// TimelineEventType discriminates the two interaction kinds merged into
// a session timeline.
type TimelineEventType string

const (
	TimelineEventLLM TimelineEventType = "llm"
	TimelineEventMCP TimelineEventType = "mcp"
)

// TimelineEvent is one entry in a session's chronological timeline,
// reconstructed by merging LLM exchanges and tool calls by timestamp.
type TimelineEvent struct {
	EventType   TimelineEventType `json:"event_type"`
	TimestampUS int64             `json:"timestamp_us"`
	DurationMS  int64             `json:"duration_ms"`
	Description string            `json:"description"`
	Details     map[string]any    `json:"details,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// SessionExport is the structured document returned by the per-session
// export endpoint: the session record plus its full audit trail.
type SessionExport struct {
	Session       SessionSummary  `json:"session"`
	AlertData     map[string]any  `json:"alert_data"`
	FinalAnalysis *string         `json:"final_analysis,omitempty"`
	Timeline      []TimelineEvent `json:"timeline"`
	LLMExchanges  int             `json:"llm_exchange_count"`
	ToolCalls     int             `json:"tool_call_count"`
}
