// Package config provides configuration management for the triage service:
// runtime settings, the agent registry, and the MCP server registry.
package config

import (
	"fmt"
	"sync"
)

// UnknownAgent is the sentinel returned by GetForAlertTypeSafe when no
// agent is registered for an alert type. Used only for best-effort audit
// labeling, never for dispatch.
const UnknownAgent = "unknown"

// AgentConfig defines a single agent: which MCP servers it may call and
// how its prompts are customized. Static, loaded once at startup.
type AgentConfig struct {
	// Alert types this agent handles
	AlertTypes []string `yaml:"alert_types"`

	// MCP servers this agent is allowed to call, in preference order
	MCPServers []string `yaml:"mcp_servers"`

	// Custom instructions appended to the agent's prompts
	CustomInstructions string `yaml:"custom_instructions,omitempty"`

	// Per-agent override of the deployment-wide iteration budget
	MaxIterations *int `yaml:"max_iterations,omitempty" validate:"omitempty,min=1"`
}

// AgentRegistry stores agent configurations and the alert-type mapping
// in memory with thread-safe access. Immutable after construction.
type AgentRegistry struct {
	agents   map[string]*AgentConfig
	mappings map[string]string // alert type → agent name
	mu       sync.RWMutex
}

// NewAgentRegistry creates a registry from agent configurations. The alert
// type mapping is derived from each agent's AlertTypes list; a later agent
// claiming an already-mapped alert type overrides the earlier mapping.
func NewAgentRegistry(agents map[string]*AgentConfig) *AgentRegistry {
	copied := make(map[string]*AgentConfig, len(agents))
	mappings := make(map[string]string)
	for name, cfg := range agents {
		copied[name] = cfg
		for _, alertType := range cfg.AlertTypes {
			mappings[alertType] = name
		}
	}
	return &AgentRegistry{agents: copied, mappings: mappings}
}

// Get retrieves an agent configuration by name.
func (r *AgentRegistry) Get(name string) (*AgentConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return agent, nil
}

// GetForAlertType returns the agent name mapped to the alert type.
// Returns ErrNoAgentForAlertType when no mapping exists, and
// ErrAgentMisconfigured when a mapping points at an agent that is not in
// the registry (a distinct, operator-actionable failure).
func (r *AgentRegistry) GetForAlertType(alertType string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, exists := r.mappings[alertType]
	if !exists {
		return "", fmt.Errorf("%w: %q (supported: %v)",
			ErrNoAgentForAlertType, alertType, r.supportedLocked())
	}
	if _, ok := r.agents[name]; !ok {
		return "", fmt.Errorf("%w: alert type %q maps to missing agent %q",
			ErrAgentMisconfigured, alertType, name)
	}
	return name, nil
}

// GetForAlertTypeSafe returns the mapped agent name, or the UnknownAgent
// sentinel when no mapping exists. Best-effort labeling for audit records.
func (r *AgentRegistry) GetForAlertTypeSafe(alertType string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name, exists := r.mappings[alertType]; exists {
		return name
	}
	return UnknownAgent
}

// SupportedAlertTypes returns all alert types with a registered agent.
func (r *AgentRegistry) SupportedAlertTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.supportedLocked()
}

func (r *AgentRegistry) supportedLocked() []string {
	types := make([]string, 0, len(r.mappings))
	for alertType := range r.mappings {
		types = append(types, alertType)
	}
	return types
}

// Len returns the number of registered agents.
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
