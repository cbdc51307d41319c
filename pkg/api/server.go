// Package api exposes the HTTP surface: alert submission, session
// history, timelines, exports, health, and Prometheus metrics.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/incidentflow/triaged/pkg/agent"
	"github.com/incidentflow/triaged/pkg/config"
	"github.com/incidentflow/triaged/pkg/database"
	"github.com/incidentflow/triaged/pkg/metrics"
	"github.com/incidentflow/triaged/pkg/models"
	"github.com/incidentflow/triaged/pkg/queue"
	"github.com/incidentflow/triaged/pkg/services"
)

const healthCheckTimeout = 5 * time.Second

// AlertProcessor runs one alert end to end and returns the formatted
// report. It never returns an error: failures are rendered into the
// report text.
type AlertProcessor interface {
	ProcessAlert(ctx context.Context, alertID string, alert models.Alert, progress agent.ProgressFunc) string
}

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	cfg       *config.Config
	db        *database.Client
	history   *services.HistoryService
	processor AlertProcessor
	gate      *queue.Gate
	metrics   *metrics.Metrics
	registry  *prometheus.Registry
	logger    *slog.Logger
}

// NewServer creates the API server. db may be nil in tests that do not
// exercise the health endpoint.
func NewServer(cfg *config.Config, db *database.Client, history *services.HistoryService, processor AlertProcessor, gate *queue.Gate, m *metrics.Metrics, registry *prometheus.Registry) *Server {
	return &Server{
		cfg:       cfg,
		db:        db,
		history:   history,
		processor: processor,
		gate:      gate,
		metrics:   m,
		registry:  registry,
		logger:    slog.Default(),
	}
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/alerts", s.submitAlertHandler)
		v1.GET("/sessions", s.listSessionsHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)
		v1.GET("/sessions/:id/timeline", s.sessionTimelineHandler)
		v1.GET("/sessions/:id/export", s.exportSessionHandler)
		v1.GET("/health", s.healthHandler)
	}

	if s.registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}

	return r
}
