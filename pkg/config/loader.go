package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// agentsYAML represents the agents.yaml file structure.
type agentsYAML struct {
	Agents map[string]*AgentConfig `yaml:"agents"`
}

// mcpServersYAML represents the mcp_servers.yaml file structure.
type mcpServersYAML struct {
	MCPServers map[string]*MCPServerConfig `yaml:"mcp_servers"`
}

// loadRegistries loads the agent and MCP server registries from configDir.
// Missing files fall back to built-ins; present files are merged over the
// built-ins (user entries win on name collision).
func loadRegistries(configDir string) (map[string]*AgentConfig, map[string]*MCPServerConfig, error) {
	agents := builtinAgents()
	servers := builtinMCPServers()

	var userAgents agentsYAML
	loaded, err := loadYAMLFile(filepath.Join(configDir, "agents.yaml"), &userAgents)
	if err != nil {
		return nil, nil, err
	}
	if loaded {
		for name, cfg := range userAgents.Agents {
			if err := validateAgent(name, cfg); err != nil {
				return nil, nil, err
			}
			agents[name] = cfg
		}
		slog.Info("Loaded user-defined agents", "count", len(userAgents.Agents))
	}

	var userServers mcpServersYAML
	loaded, err = loadYAMLFile(filepath.Join(configDir, "mcp_servers.yaml"), &userServers)
	if err != nil {
		return nil, nil, err
	}
	if loaded {
		for id, cfg := range userServers.MCPServers {
			if err := validateMCPServer(id, cfg); err != nil {
				return nil, nil, err
			}
			servers[id] = cfg
		}
		slog.Info("Loaded user-defined MCP servers", "count", len(userServers.MCPServers))
	}

	return agents, servers, nil
}

// loadYAMLFile parses path into out. Returns (false, nil) when the file
// does not exist; absence is not an error, it selects the built-ins.
func loadYAMLFile(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &LoadError{File: path, Err: err}
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return false, &LoadError{File: path, Err: fmt.Errorf("%w: %v", ErrInvalidYAML, err)}
	}
	return true, nil
}

func validateAgent(name string, cfg *AgentConfig) error {
	if cfg == nil {
		return NewValidationError("agent", name, "", errors.New("empty configuration"))
	}
	if len(cfg.MCPServers) == 0 {
		return NewValidationError("agent", name, "mcp_servers",
			errors.New("at least one MCP server is required"))
	}
	if cfg.MaxIterations != nil && *cfg.MaxIterations < 1 {
		return NewValidationError("agent", name, "max_iterations",
			errors.New("must be >= 1"))
	}
	return nil
}

func validateMCPServer(id string, cfg *MCPServerConfig) error {
	if cfg == nil {
		return NewValidationError("mcp_server", id, "", errors.New("empty configuration"))
	}
	switch cfg.Transport.Type {
	case TransportStdio:
		if cfg.Transport.Command == "" {
			return NewValidationError("mcp_server", id, "transport.command",
				errors.New("required for stdio transport"))
		}
	case TransportHTTP:
		if cfg.Transport.URL == "" {
			return NewValidationError("mcp_server", id, "transport.url",
				errors.New("required for http transport"))
		}
	default:
		return NewValidationError("mcp_server", id, "transport.type",
			fmt.Errorf("unknown transport type %q", cfg.Transport.Type))
	}
	return nil
}
