package models

// CreateSessionRequest contains the fields for creating a new alert session.
type CreateSessionRequest struct {
	SessionID string         `json:"session_id"`
	AlertID   string         `json:"alert_id"`
	AlertData map[string]any `json:"alert_data"`
	AgentType string         `json:"agent_type"`
	AlertType string         `json:"alert_type"`
}

// SessionFilters contains filtering options for listing sessions.
// Status accepts one or many values (OR semantics). Search is matched
// against error_message and final_analysis.
type SessionFilters struct {
	Status    []string `json:"status,omitempty"`
	AgentType string   `json:"agent_type,omitempty"`
	AlertType string   `json:"alert_type,omitempty"`
	Search    string   `json:"search,omitempty"`
	StartUS   *int64   `json:"start_us,omitempty"`
	EndUS     *int64   `json:"end_us,omitempty"`
	Limit     int      `json:"limit,omitempty"`
	Offset    int      `json:"offset,omitempty"`
}

// SessionSummary is the list-view projection of a session.
type SessionSummary struct {
	SessionID     string  `json:"session_id"`
	AlertID       string  `json:"alert_id"`
	AgentType     string  `json:"agent_type"`
	AlertType     string  `json:"alert_type"`
	Status        string  `json:"status"`
	StartedAtUS   int64   `json:"started_at_us"`
	CompletedAtUS *int64  `json:"completed_at_us,omitempty"`
	ErrorMessage  *string `json:"error_message,omitempty"`
	DurationMS    *int64  `json:"duration_ms,omitempty"`
}

// SessionListResult contains one page of sessions plus pagination metadata.
type SessionListResult struct {
	Sessions   []SessionSummary `json:"sessions"`
	TotalCount int              `json:"total_count"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}
