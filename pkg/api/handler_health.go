package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incidentflow/triaged/pkg/version"
)

// healthHandler handles GET /api/v1/health. Reports 503 when the
// database is unreachable; the response body carries the details either
// way.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := &HealthResponse{
		Status:  "healthy",
		Version: version.Full(),
		Queue:   s.gate.Stats(),
		Configuration: ConfigurationStats{
			Agents:     s.cfg.AgentRegistry.Len(),
			MCPServers: len(s.cfg.MCPServerRegistry.IDs()),
		},
	}

	if s.db != nil {
		dbHealth := s.db.HealthCheck(ctx)
		resp.Database = &dbHealth
		if !dbHealth.Healthy {
			resp.Status = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
