package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_Defaults(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Processing.MaxIterations)
	assert.Equal(t, 20, cfg.Processing.MaxTotalToolCalls)
	assert.Equal(t, 5, cfg.Processing.MaxConcurrentAlerts)
	assert.Equal(t, 3*time.Minute, cfg.Processing.QueueTimeout)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)

	// Built-in registries are loaded when no YAML files exist.
	assert.Equal(t, 2, cfg.AgentRegistry.Len())
	name, err := cfg.AgentRegistry.GetForAlertType("NamespaceTerminating")
	require.NoError(t, err)
	assert.Equal(t, "KubernetesAgent", name)
}

func TestInitialize_EnvOverrides(t *testing.T) {
	t.Setenv("MAX_ITERATIONS", "7")
	t.Setenv("MAX_TOTAL_TOOL_CALLS", "12")
	t.Setenv("ALERT_QUEUE_TIMEOUT", "45s")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("LLM_MODEL", "claude-sonnet-4-5")
	t.Setenv("LLM_TEMPERATURE", "0.2")

	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Processing.MaxIterations)
	assert.Equal(t, 12, cfg.Processing.MaxTotalToolCalls)
	assert.Equal(t, 45*time.Second, cfg.Processing.QueueTimeout)
	assert.Equal(t, ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "claude-sonnet-4-5", cfg.LLM.Model)
	require.NotNil(t, cfg.LLM.Temperature)
	assert.InDelta(t, 0.2, float64(*cfg.LLM.Temperature), 0.001)
}

func TestInitialize_InvalidEnv(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric iterations", "MAX_ITERATIONS", "lots"},
		{"zero iterations", "MAX_ITERATIONS", "0"},
		{"bad duration", "ALERT_QUEUE_TIMEOUT", "soon"},
		{"unknown provider", "LLM_PROVIDER", "oracle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Initialize(t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestInitialize_UserYAMLMergesOverBuiltins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "agents.yaml"), `
agents:
  DatabaseAgent:
    alert_types: ["ReplicationLagHigh"]
    mcp_servers: ["postgres-server"]
    max_iterations: 2
`)
	writeFile(t, filepath.Join(dir, "mcp_servers.yaml"), `
mcp_servers:
  postgres-server:
    server_type: postgres
    transport:
      type: http
      url: http://localhost:9200/mcp
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	// User entries are added; built-ins survive.
	name, err := cfg.AgentRegistry.GetForAlertType("ReplicationLagHigh")
	require.NoError(t, err)
	assert.Equal(t, "DatabaseAgent", name)
	_, err = cfg.AgentRegistry.GetForAlertType("NamespaceTerminating")
	assert.NoError(t, err)

	agent, err := cfg.GetAgent("DatabaseAgent")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxIterationsFor(agent))
}

func TestInitialize_RejectsUnknownServerReference(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "agents.yaml"), `
agents:
  BrokenAgent:
    alert_types: ["SomethingBroke"]
    mcp_servers: ["no-such-server"]
`)

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMCPServerNotFound)
}

func TestInitialize_RejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "agents.yaml"), "agents: [not: a: map")

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestAgentRegistry_Lookups(t *testing.T) {
	registry := NewAgentRegistry(map[string]*AgentConfig{
		"KubernetesAgent": {
			AlertTypes: []string{"pod-crash"},
			MCPServers: []string{"kubernetes-server"},
		},
	})

	t.Run("mapped type", func(t *testing.T) {
		name, err := registry.GetForAlertType("pod-crash")
		require.NoError(t, err)
		assert.Equal(t, "KubernetesAgent", name)
	})

	t.Run("unmapped type", func(t *testing.T) {
		_, err := registry.GetForAlertType("disk-full")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoAgentForAlertType)
		// Named supported types make the error operator-actionable.
		assert.Contains(t, err.Error(), "pod-crash")
	})

	t.Run("safe lookup falls back to sentinel", func(t *testing.T) {
		assert.Equal(t, "KubernetesAgent", registry.GetForAlertTypeSafe("pod-crash"))
		assert.Equal(t, UnknownAgent, registry.GetForAlertTypeSafe("disk-full"))
	})
}

func TestAgentRegistry_MisconfiguredMapping(t *testing.T) {
	// NewAgentRegistry builds mappings from agent configs, so a dangling
	// mapping requires mutating the registry the way a bad hot-reload
	// would. Simulate it directly.
	registry := NewAgentRegistry(map[string]*AgentConfig{
		"GhostAgent": {AlertTypes: []string{"haunting"}, MCPServers: []string{"s"}},
	})
	registry.mu.Lock()
	delete(registry.agents, "GhostAgent")
	registry.mu.Unlock()

	_, err := registry.GetForAlertType("haunting")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAgentMisconfigured)
}

func TestMCPServerRegistry(t *testing.T) {
	registry := NewMCPServerRegistry(map[string]*MCPServerConfig{
		"kubernetes-server": {Transport: TransportConfig{Type: TransportStdio, Command: "npx"}},
	})

	assert.True(t, registry.Has("kubernetes-server"))
	assert.False(t, registry.Has("ghost"))

	_, err := registry.Get("ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMCPServerNotFound)

	assert.Equal(t, []string{"kubernetes-server"}, registry.IDs())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
