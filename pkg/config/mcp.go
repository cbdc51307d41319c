package config

import (
	"fmt"
	"sync"
)

// TransportType identifies how an MCP server is reached.
type TransportType string

const (
	TransportStdio TransportType = "stdio"
	TransportHTTP  TransportType = "http"
)

// TransportConfig defines MCP server transport configuration.
type TransportConfig struct {
	Type TransportType `yaml:"type" validate:"required"`

	// For stdio transport
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`

	// For http transport
	URL         string `yaml:"url,omitempty"`
	BearerToken string `yaml:"bearer_token,omitempty"`
	Timeout     int    `yaml:"timeout,omitempty"` // In seconds
}

// MCPServerConfig defines one MCP server: how to reach it and how the
// prompt builder should describe it to the LLM.
type MCPServerConfig struct {
	// ServerType selects type-specific prompt guidance (e.g. "kubernetes")
	ServerType string `yaml:"server_type"`

	// Instructions for the LLM when using this server's tools
	Instructions string `yaml:"instructions,omitempty"`

	// Transport configuration (required)
	Transport TransportConfig `yaml:"transport" validate:"required"`
}

// MCPServerRegistry stores MCP server configurations in memory with
// thread-safe access.
type MCPServerRegistry struct {
	servers map[string]*MCPServerConfig
	mu      sync.RWMutex
}

// NewMCPServerRegistry creates a new MCP server registry.
func NewMCPServerRegistry(servers map[string]*MCPServerConfig) *MCPServerRegistry {
	copied := make(map[string]*MCPServerConfig, len(servers))
	for k, v := range servers {
		copied[k] = v
	}
	return &MCPServerRegistry{servers: copied}
}

// Get retrieves an MCP server configuration by ID.
func (r *MCPServerRegistry) Get(serverID string) (*MCPServerConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	server, exists := r.servers[serverID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrMCPServerNotFound, serverID)
	}
	return server, nil
}

// Has checks if an MCP server exists in the registry.
func (r *MCPServerRegistry) Has(serverID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.servers[serverID]
	return exists
}

// IDs returns all registered server IDs.
func (r *MCPServerRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.servers))
	for id := range r.servers {
		ids = append(ids, id)
	}
	return ids
}
