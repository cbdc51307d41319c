package api

import (
	"github.com/incidentflow/triaged/pkg/database"
	"github.com/incidentflow/triaged/pkg/queue"
)

// AlertResponse is returned by POST /api/v1/alerts. Analysis is always
// populated: when processing fails it carries the formatted error report
// instead of an analysis.
type AlertResponse struct {
	AlertID  string `json:"alert_id"`
	Analysis string `json:"analysis"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status        string                 `json:"status"`
	Version       string                 `json:"version"`
	Database      *database.HealthStatus `json:"database"`
	Queue         queue.Stats            `json:"queue"`
	Configuration ConfigurationStats     `json:"configuration"`
}

// ConfigurationStats contains counts of loaded configuration items.
type ConfigurationStats struct {
	Agents     int `json:"agents"`
	MCPServers int `json:"mcp_servers"`
}
