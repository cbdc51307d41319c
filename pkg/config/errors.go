package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAgentForAlertType indicates no agent is mapped to the alert type
	ErrNoAgentForAlertType = errors.New("no agent for alert type")

	// ErrAgentMisconfigured indicates an alert type maps to an agent that
	// is not present in the agent registry
	ErrAgentMisconfigured = errors.New("agent registered but misconfigured")

	// ErrAgentNotFound indicates the agent was not found in the registry
	ErrAgentNotFound = errors.New("agent not found")

	// ErrMCPServerNotFound indicates the MCP server was not found in the registry
	ErrMCPServerNotFound = errors.New("MCP server not found")

	// ErrInvalidYAML indicates YAML parsing failed
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrValidationFailed indicates configuration validation failed
	ErrValidationFailed = errors.New("configuration validation failed")
)

// ValidationError wraps configuration validation errors with context.
type ValidationError struct {
	Component string // Component being validated (agent, mcp_server)
	ID        string // ID of the component
	Field     string // Field name (optional)
	Err       error  // Underlying error
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s '%s': field '%s': %v", e.Component, e.ID, e.Field, e.Err)
	}
	return fmt.Sprintf("%s '%s': %v", e.Component, e.ID, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error.
func NewValidationError(component, id, field string, err error) *ValidationError {
	return &ValidationError{Component: component, ID: id, Field: field, Err: err}
}

// LoadError wraps configuration loading errors with file context.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
