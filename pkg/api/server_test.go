package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentflow/triaged/pkg/agent"
	"github.com/incidentflow/triaged/pkg/config"
	"github.com/incidentflow/triaged/pkg/metrics"
	"github.com/incidentflow/triaged/pkg/models"
	"github.com/incidentflow/triaged/pkg/queue"
)

// fakeProcessor returns a canned report and remembers what it was asked
// to process.
type fakeProcessor struct {
	report  string
	alertID string
	alert   models.Alert
	block   chan struct{}
}

func (p *fakeProcessor) ProcessAlert(_ context.Context, alertID string, alert models.Alert, _ agent.ProgressFunc) string {
	p.alertID = alertID
	p.alert = alert
	if p.block != nil {
		<-p.block
	}
	return p.report
}

func testAPIConfig() *config.Config {
	return &config.Config{
		Processing: &config.ProcessingConfig{
			MaxIterations:       3,
			MaxTotalToolCalls:   10,
			MaxConcurrentAlerts: 2,
			QueueTimeout:        time.Second,
		},
		AgentRegistry: config.NewAgentRegistry(map[string]*config.AgentConfig{
			"KubernetesAgent": {
				AlertTypes: []string{"pod-crash"},
				MCPServers: []string{"kubernetes"},
			},
		}),
		MCPServerRegistry: config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{
			"kubernetes": {ServerType: "kubernetes"},
		}),
	}
}

func newTestServer(t *testing.T, processor AlertProcessor, gate *queue.Gate) *Server {
	t.Helper()
	if gate == nil {
		gate = queue.NewGate(2, time.Second)
	}
	return NewServer(testAPIConfig(), nil, nil, processor, gate, nil, nil)
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestSubmitAlert(t *testing.T) {
	t.Run("returns the report", func(t *testing.T) {
		processor := &fakeProcessor{report: "# Alert Analysis Report\n\nall good"}
		server := newTestServer(t, processor, nil)

		w := doRequest(t, server.Handler(), http.MethodPost, "/api/v1/alerts",
			`{"alert_id":"alert-1","alert_type":"pod-crash","severity":"critical","runbook":"https://example.com/rb.md","data":{"pod":"api-0"}}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp AlertResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alert-1", resp.AlertID)
		assert.Contains(t, resp.Analysis, "all good")

		assert.Equal(t, "pod-crash", processor.alert.AlertType)
		assert.Equal(t, "critical", processor.alert.Severity)
		assert.Equal(t, "https://example.com/rb.md", processor.alert.RunbookURL)
		assert.Equal(t, map[string]any{"pod": "api-0"}, processor.alert.Data)
	})

	t.Run("generates alert ID when omitted", func(t *testing.T) {
		processor := &fakeProcessor{report: "report"}
		server := newTestServer(t, processor, nil)

		w := doRequest(t, server.Handler(), http.MethodPost, "/api/v1/alerts",
			`{"alert_type":"pod-crash"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp AlertResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AlertID)
		assert.Equal(t, resp.AlertID, processor.alertID)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := newTestServer(t, &fakeProcessor{}, nil)
		w := doRequest(t, server.Handler(), http.MethodPost, "/api/v1/alerts", `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing alert_type", func(t *testing.T) {
		server := newTestServer(t, &fakeProcessor{}, nil)
		w := doRequest(t, server.Handler(), http.MethodPost, "/api/v1/alerts",
			`{"alert_id":"alert-1","alert_type":"   "}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "alert_type")
	})

	t.Run("queue full", func(t *testing.T) {
		gate := queue.NewGate(1, 20*time.Millisecond)
		release, err := gate.Acquire(context.Background())
		require.NoError(t, err)
		defer release()

		server := newTestServer(t, &fakeProcessor{report: "report"}, gate)
		w := doRequest(t, server.Handler(), http.MethodPost, "/api/v1/alerts",
			`{"alert_type":"pod-crash"}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestListSessions_ParamValidation(t *testing.T) {
	server := newTestServer(t, &fakeProcessor{}, nil)
	handler := server.Handler()

	t.Run("invalid status", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodGet, "/api/v1/sessions?status=completed,bogus", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "bogus")
	})

	t.Run("invalid start_date", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodGet, "/api/v1/sessions?start_date=yesterday", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "RFC3339")
	})

	t.Run("invalid end_date", func(t *testing.T) {
		w := doRequest(t, handler, http.MethodGet, "/api/v1/sessions?end_date=2026-02-30", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t, &fakeProcessor{}, queue.NewGate(2, time.Second))
	w := doRequest(t, server.Handler(), http.MethodGet, "/api/v1/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Version)
	assert.Nil(t, resp.Database)
	assert.Equal(t, 2, resp.Queue.MaxConcurrent)
	assert.Equal(t, 1, resp.Configuration.Agents)
	assert.Equal(t, 1, resp.Configuration.MCPServers)
}

func TestSecurityHeaders(t *testing.T) {
	server := newTestServer(t, &fakeProcessor{}, nil)
	w := doRequest(t, server.Handler(), http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestMetricsEndpoint(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)
	server := NewServer(testAPIConfig(), nil, nil, &fakeProcessor{report: "report"},
		queue.NewGate(1, time.Second), m, registry)
	handler := server.Handler()

	doRequest(t, handler, http.MethodPost, "/api/v1/alerts", `{"alert_type":"pod-crash"}`)

	w := doRequest(t, handler, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "triaged_submits_total")

	t.Run("absent without a registry", func(t *testing.T) {
		bare := newTestServer(t, &fakeProcessor{}, nil)
		w := doRequest(t, bare.Handler(), http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
