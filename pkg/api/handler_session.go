package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/incidentflow/triaged/pkg/models"
)

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	session, err := s.history.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *gin.Context) {
	var filters models.SessionFilters

	if v := c.Query("status"); v != "" {
		statuses := strings.Split(v, ",")
		for _, st := range statuses {
			if !validStatus(st) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + st})
				return
			}
		}
		filters.Status = statuses
	}
	filters.AgentType = c.Query("agent_type")
	filters.AlertType = c.Query("alert_type")
	filters.Search = c.Query("search")

	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date: must be RFC3339"})
			return
		}
		us := t.UnixMicro()
		filters.StartUS = &us
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date: must be RFC3339"})
			return
		}
		us := t.UnixMicro()
		filters.EndUS = &us
	}

	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	result, err := s.history.ListSessions(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// sessionTimelineHandler handles GET /api/v1/sessions/:id/timeline.
func (s *Server) sessionTimelineHandler(c *gin.Context) {
	timeline, err := s.history.GetTimeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": c.Param("id"),
		"timeline":   timeline,
	})
}

// exportSessionHandler handles GET /api/v1/sessions/:id/export.
func (s *Server) exportSessionHandler(c *gin.Context) {
	export, err := s.history.ExportSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, export)
}

func validStatus(st string) bool {
	switch models.SessionStatus(st) {
	case models.StatusPending, models.StatusInProgress, models.StatusCompleted, models.StatusFailed:
		return true
	}
	return false
}
