package llm

import (
	"context"
	"fmt"

	"github.com/incidentflow/triaged/pkg/config"
	"google.golang.org/genai"
)

// GeminiClient talks to the Gemini API via the official genai SDK.
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature *float32
	maxTokens   *int32
}

// NewGeminiClient creates a Gemini-backed client from configuration.
func NewGeminiClient(cfg config.LLMConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing API key for gemini provider")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiClient{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

func (c *GeminiClient) Model() string {
	return c.model
}

func (c *GeminiClient) Generate(ctx context.Context, messages []Message, sessionID string) (string, error) {
	genCfg := &genai.GenerateContentConfig{}
	if c.temperature != nil {
		genCfg.Temperature = c.temperature
	}
	if c.maxTokens != nil {
		genCfg.MaxOutputTokens = *c.maxTokens
	}

	// Gemini takes the system message as a separate instruction, not as
	// part of the content list.
	var contents []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			genCfg.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, genCfg)
	if err != nil {
		return "", &Error{Provider: config.ProviderGemini, Model: c.model, Err: err}
	}
	text := res.Text()
	if text == "" {
		return "", &Error{Provider: config.ProviderGemini, Model: c.model, Err: fmt.Errorf("empty completion")}
	}
	return text, nil
}

func (c *GeminiClient) Close() error {
	return nil
}
