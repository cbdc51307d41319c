package llm

import (
	"context"
	"fmt"

	"github.com/incidentflow/triaged/pkg/config"
	pb "github.com/incidentflow/triaged/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient talks to a sidecar LLM service over gRPC. The service owns
// provider credentials and model routing; this client only forwards the
// conversation.
type GRPCClient struct {
	conn        *grpc.ClientConn
	client      pb.LLMServiceClient
	model       string
	temperature *float32
	maxTokens   *int32
}

// NewGRPCClient connects to the LLM service at the configured address.
func NewGRPCClient(cfg config.LLMConfig) (*GRPCClient, error) {
	if cfg.ServiceAddr == "" {
		return nil, fmt.Errorf("missing service address for grpc provider")
	}
	conn, err := grpc.NewClient(cfg.ServiceAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service: %w", err)
	}
	return &GRPCClient{
		conn:        conn,
		client:      pb.NewLLMServiceClient(conn),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

func (c *GRPCClient) Model() string {
	return c.model
}

func (c *GRPCClient) Generate(ctx context.Context, messages []Message, sessionID string) (string, error) {
	pbMessages := make([]*pb.Message, len(messages))
	for i, msg := range messages {
		var role pb.Message_Role
		switch msg.Role {
		case RoleSystem:
			role = pb.Message_ROLE_SYSTEM
		case RoleAssistant:
			role = pb.Message_ROLE_ASSISTANT
		default:
			role = pb.Message_ROLE_USER
		}
		pbMessages[i] = &pb.Message{
			Role:    role,
			Content: msg.Content,
		}
	}

	resp, err := c.client.Generate(ctx, &pb.GenerateRequest{
		SessionId:   sessionID,
		Messages:    pbMessages,
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", &Error{Provider: config.ProviderGRPC, Model: c.model, Err: err}
	}
	if resp.Content == "" {
		return "", &Error{Provider: config.ProviderGRPC, Model: c.model, Err: fmt.Errorf("empty completion")}
	}
	return resp.Content, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
