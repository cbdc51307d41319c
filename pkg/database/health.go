package database

import (
	"context"
	"time"
)

// HealthStatus reports database connectivity and pool utilization.
type HealthStatus struct {
	Healthy        bool          `json:"healthy"`
	ResponseTime   time.Duration `json:"response_time"`
	Error          string        `json:"error,omitempty"`
	OpenConns      int           `json:"open_connections"`
	InUseConns     int           `json:"in_use_connections"`
	IdleConns      int           `json:"idle_connections"`
	WaitCount      int64         `json:"wait_count"`
	WaitDuration   time.Duration `json:"wait_duration"`
	MaxOpenAllowed int           `json:"max_open_allowed"`
}

// HealthCheck pings the database and collects pool statistics.
func (c *Client) HealthCheck(ctx context.Context) HealthStatus {
	start := time.Now()
	err := c.db.PingContext(ctx)
	elapsed := time.Since(start)

	stats := c.db.Stats()
	status := HealthStatus{
		Healthy:        err == nil,
		ResponseTime:   elapsed,
		OpenConns:      stats.OpenConnections,
		InUseConns:     stats.InUse,
		IdleConns:      stats.Idle,
		WaitCount:      stats.WaitCount,
		WaitDuration:   stats.WaitDuration,
		MaxOpenAllowed: stats.MaxOpenConnections,
	}
	if err != nil {
		status.Error = err.Error()
	}
	return status
}

// Close closes the Ent client and the underlying connection pool.
func (c *Client) Close() error {
	return c.Client.Close()
}
