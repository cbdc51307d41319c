package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/incidentflow/triaged/pkg/models"
)

// submitAlertHandler handles POST /api/v1/alerts.
//
// Processing is synchronous: the handler blocks until the alert has been
// triaged and returns the formatted report. Only a malformed request body
// yields 400; processing failures (unmapped alert type, runbook errors,
// LLM errors) still return 200 with an error report in the analysis field,
// so callers always receive something actionable.
func (s *Server) submitAlertHandler(c *gin.Context) {
	var req SubmitAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.observeSubmit("rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.AlertType) == "" {
		s.observeSubmit("rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert_type field is required"})
		return
	}

	release, err := s.gate.Acquire(c.Request.Context())
	if err != nil {
		s.observeSubmit("queue_timeout")
		abortWithServiceError(c, err)
		return
	}
	defer release()

	if s.metrics != nil {
		s.metrics.ActiveRuns.Inc()
		defer s.metrics.ActiveRuns.Dec()
	}

	alertID := req.AlertID
	if alertID == "" {
		alertID = uuid.New().String()
	}
	alert := models.Alert{
		AlertType:   req.AlertType,
		Severity:    req.Severity,
		Environment: req.Environment,
		RunbookURL:  req.Runbook,
		Data:        req.Data,
	}

	analysis := s.processor.ProcessAlert(c.Request.Context(), alertID, alert, s.progressLogger(alertID))
	s.observeSubmit("processed")

	c.JSON(http.StatusOK, &AlertResponse{
		AlertID:  alertID,
		Analysis: analysis,
	})
}

func (s *Server) observeSubmit(result string) {
	if s.metrics != nil {
		s.metrics.ObserveSubmit(result)
	}
}

// progressLogger surfaces processing milestones in the server log.
func (s *Server) progressLogger(alertID string) func(percent int, message string) {
	return func(percent int, message string) {
		s.logger.Info("Alert progress",
			"alert_id", alertID, "percent", percent, "message", message)
	}
}
