package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/incidentflow/triaged/pkg/config"
	"github.com/incidentflow/triaged/pkg/version"
)

const (
	anthropicEndpoint   = "https://api.anthropic.com/v1/messages"
	anthropicAPIVersion = "2023-06-01"

	defaultAnthropicMaxTokens = 4096
)

// AnthropicClient talks to the Anthropic Messages API over HTTP.
type AnthropicClient struct {
	apiKey      string
	model       string
	endpoint    string
	temperature *float32
	maxTokens   *int32
	httpClient  *http.Client
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int32              `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Temperature *float32           `json:"temperature,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type anthropicResponse struct {
	Content    []anthropicContentBlock `json:"content"`
	StopReason string                  `json:"stop_reason"`
}

// NewAnthropicClient creates an Anthropic-backed client from configuration.
func NewAnthropicClient(cfg config.LLMConfig) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing API key for anthropic provider")
	}
	return &AnthropicClient{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		endpoint:    anthropicEndpoint,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

func (c *AnthropicClient) Model() string {
	return c.model
}

func (c *AnthropicClient) Generate(ctx context.Context, messages []Message, sessionID string) (string, error) {
	req := anthropicRequest{
		Model:       c.model,
		MaxTokens:   defaultAnthropicMaxTokens,
		Temperature: c.temperature,
	}
	if c.maxTokens != nil {
		req.MaxTokens = *c.maxTokens
	}

	// The Messages API takes the system prompt as a top-level field.
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			req.System = msg.Content
			continue
		}
		req.Messages = append(req.Messages, anthropicMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &Error{Provider: config.ProviderAnthropic, Model: c.model, Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: config.ProviderAnthropic, Model: c.model, Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicAPIVersion)
	httpReq.Header.Set("User-Agent", version.Full())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &Error{Provider: config.ProviderAnthropic, Model: c.model, Err: fmt.Errorf("send request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Provider: config.ProviderAnthropic, Model: c.model, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &Error{
			Provider: config.ProviderAnthropic,
			Model:    c.model,
			Err:      fmt.Errorf("api error %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var out anthropicResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", &Error{Provider: config.ProviderAnthropic, Model: c.model, Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	var text string
	for _, block := range out.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", &Error{Provider: config.ProviderAnthropic, Model: c.model, Err: fmt.Errorf("empty completion")}
	}
	return text, nil
}

func (c *AnthropicClient) Close() error {
	return nil
}
