package api

// SubmitAlertRequest is the HTTP request body for POST /api/v1/alerts.
type SubmitAlertRequest struct {
	AlertID     string         `json:"alert_id,omitempty"`
	AlertType   string         `json:"alert_type"`
	Severity    string         `json:"severity,omitempty"`
	Environment string         `json:"environment,omitempty"`
	Runbook     string         `json:"runbook,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}
