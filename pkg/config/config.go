package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the top-level configuration, constructed once in main and
// passed by reference to the orchestrator and its collaborators.
type Config struct {
	Processing        *ProcessingConfig
	LLM               *LLMConfig
	Runbook           *RunbookConfig
	AgentRegistry     *AgentRegistry
	MCPServerRegistry *MCPServerRegistry
}

// ProcessingConfig bounds a single triage run and the process-wide
// admission of concurrent runs.
type ProcessingConfig struct {
	// MaxIterations is the round budget for one alert
	MaxIterations int

	// MaxTotalToolCalls is the cumulative tool-call budget for one alert
	MaxTotalToolCalls int

	// MaxConcurrentAlerts caps concurrently active triage runs
	MaxConcurrentAlerts int

	// QueueTimeout is how long an excess run waits for an admission slot
	QueueTimeout time.Duration
}

// LLMProviderName selects the analysis backend.
type LLMProviderName string

const (
	ProviderGemini    LLMProviderName = "gemini"
	ProviderAnthropic LLMProviderName = "anthropic"
	ProviderGRPC      LLMProviderName = "grpc"
)

// LLMConfig configures the analysis client.
type LLMConfig struct {
	Provider    LLMProviderName
	Model       string
	APIKey      string
	ServiceAddr string // For the grpc provider
	Temperature *float32
	MaxTokens   *int32
}

// RunbookConfig configures runbook fetching.
type RunbookConfig struct {
	GitHubToken    string
	CacheTTL       time.Duration
	AllowedDomains []string
}

// GetAgent retrieves an agent config by name.
func (c *Config) GetAgent(name string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(name)
}

// GetMCPServer retrieves an MCP server config by ID.
func (c *Config) GetMCPServer(serverID string) (*MCPServerConfig, error) {
	return c.MCPServerRegistry.Get(serverID)
}

// MaxIterationsFor returns the iteration budget for an agent, applying
// the per-agent override when present.
func (c *Config) MaxIterationsFor(agent *AgentConfig) int {
	if agent != nil && agent.MaxIterations != nil {
		return *agent.MaxIterations
	}
	return c.Processing.MaxIterations
}

// Initialize loads configuration: environment settings plus the agent and
// MCP server registries from configDir (falling back to built-in defaults
// when the YAML files are absent).
func Initialize(configDir string) (*Config, error) {
	processing, err := loadProcessingFromEnv()
	if err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}

	llm, err := loadLLMFromEnv()
	if err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}

	agents, servers, err := loadRegistries(configDir)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Processing:        processing,
		LLM:               llm,
		Runbook:           loadRunbookFromEnv(),
		AgentRegistry:     NewAgentRegistry(agents),
		MCPServerRegistry: NewMCPServerRegistry(servers),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks cross-references: every agent's allowed server must be
// registered.
func (c *Config) validate() error {
	for _, alertType := range c.AgentRegistry.SupportedAlertTypes() {
		name, err := c.AgentRegistry.GetForAlertType(alertType)
		if err != nil {
			return err
		}
		agent, err := c.AgentRegistry.Get(name)
		if err != nil {
			return err
		}
		for _, serverID := range agent.MCPServers {
			if !c.MCPServerRegistry.Has(serverID) {
				return NewValidationError("agent", name, "mcp_servers",
					fmt.Errorf("%w: %s", ErrMCPServerNotFound, serverID))
			}
		}
	}
	return nil
}

func loadProcessingFromEnv() (*ProcessingConfig, error) {
	maxIter, err := intEnv("MAX_ITERATIONS", 5)
	if err != nil {
		return nil, err
	}
	maxCalls, err := intEnv("MAX_TOTAL_TOOL_CALLS", 20)
	if err != nil {
		return nil, err
	}
	maxConcurrent, err := intEnv("MAX_CONCURRENT_ALERTS", 5)
	if err != nil {
		return nil, err
	}
	queueTimeout, err := durationEnv("ALERT_QUEUE_TIMEOUT", 3*time.Minute)
	if err != nil {
		return nil, err
	}
	return &ProcessingConfig{
		MaxIterations:       maxIter,
		MaxTotalToolCalls:   maxCalls,
		MaxConcurrentAlerts: maxConcurrent,
		QueueTimeout:        queueTimeout,
	}, nil
}

func loadLLMFromEnv() (*LLMConfig, error) {
	provider := LLMProviderName(getEnv("LLM_PROVIDER", string(ProviderGemini)))
	switch provider {
	case ProviderGemini, ProviderAnthropic, ProviderGRPC:
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}

	cfg := &LLMConfig{
		Provider:    provider,
		Model:       os.Getenv("LLM_MODEL"),
		APIKey:      os.Getenv("LLM_API_KEY"),
		ServiceAddr: getEnv("LLM_SERVICE_ADDR", "localhost:50051"),
	}

	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		temp, err := strconv.ParseFloat(tempStr, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TEMPERATURE: %w", err)
		}
		temp32 := float32(temp)
		cfg.Temperature = &temp32
	}
	if maxStr := os.Getenv("LLM_MAX_TOKENS"); maxStr != "" {
		max, err := strconv.ParseInt(maxStr, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_MAX_TOKENS: %w", err)
		}
		max32 := int32(max)
		cfg.MaxTokens = &max32
	}
	return cfg, nil
}

func loadRunbookFromEnv() *RunbookConfig {
	return &RunbookConfig{
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		CacheTTL:    1 * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid %s: must be >= 1", key)
	}
	return v, nil
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
