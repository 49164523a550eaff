// ABOUTME: OpenAI-compatible chat client used by the Lumo persona
// ABOUTME: One bounded chat completion per call, reply taken from choices[0].message.content
package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/harper/tag-router/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultTimeout bounds a single outbound call
	DefaultTimeout = 30 * time.Second
)

// OpenAIConfig holds configuration for the OpenAI client
type OpenAIConfig struct {
	Name       string // backend name used in failure messages
	APIKey     string
	KeyEnv     string // env var reported when APIKey is missing
	Model      string
	BaseURL    string // empty uses the public OpenAI endpoint
	Timeout    time.Duration
	HTTPClient *http.Client
}

// OpenAIClient wraps the OpenAI API client with a bounded single call
type OpenAIClient struct {
	client  *openai.Client
	name    string
	keyEnv  string
	model   string
	timeout time.Duration
}

// NewOpenAIClient creates a client. With no API key the client is still
// returned; every Generate call then fails as a configuration error without
// touching the network.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	c := &OpenAIClient{
		name:    cfg.Name,
		keyEnv:  cfg.KeyEnv,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
	if c.name == "" {
		c.name = "OpenAI"
	}
	if c.keyEnv == "" {
		c.keyEnv = "OPENAI_API_KEY"
	}
	if c.model == "" {
		c.model = DefaultChatModel
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if cfg.APIKey == "" {
		return c
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}
	c.client = openai.NewClientWithConfig(clientCfg)
	return c
}

// Name returns the backend name
func (c *OpenAIClient) Name() string {
	return c.name
}

// Generate sends prompt as a single user message and returns the reply text
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", models.NewConfigError(c.name, c.keyEnv)
	}

	// The caller's cancellation does not reach an in-flight call; only the timeout does.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", models.NewTransportError(c.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", models.NewShapeError(c.name, "no completion choices returned")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", models.NewShapeError(c.name, "first choice has no message content")
	}
	return content, nil
}
