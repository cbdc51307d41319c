// Package llm abstracts the text-generation providers used for alert
// analysis. All providers expose the same Client interface so the
// iteration controller never knows which backend is configured.
package llm

import (
	"context"
	"fmt"

	"github.com/incidentflow/triaged/pkg/config"
)

// Message roles mirror the conversation structure sent to providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in the conversation sent to the provider.
type Message struct {
	Role    string
	Content string
}

// Client generates a completion for a conversation. Implementations must
// honor context cancellation and return an *Error for provider failures.
type Client interface {
	// Generate returns the full completion text for the given messages.
	// The sessionID is threaded through for provider-side correlation.
	Generate(ctx context.Context, messages []Message, sessionID string) (string, error)
	// Model returns the configured model name for audit records.
	Model() string
	Close() error
}

// Error wraps a provider failure with enough context to log and record it.
type Error struct {
	Provider config.LLMProviderName
	Model    string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm provider %s (model %s): %v", e.Provider, e.Model, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewClient builds the provider selected by configuration.
func NewClient(cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(cfg)
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg)
	case config.ProviderGRPC:
		return NewGRPCClient(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
