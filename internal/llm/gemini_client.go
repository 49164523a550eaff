// ABOUTME: Gemini client used by the Io persona
// ABOUTME: One bounded generateContent call, reply read from candidates[0].content.parts[].text
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/harper/tag-router/internal/models"
	"google.golang.org/genai"
)

// DefaultGeminiModel is the default model for Gemini generation
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiConfig holds configuration for the Gemini client
type GeminiConfig struct {
	Name       string
	APIKey     string
	KeyEnv     string
	Model      string
	BaseURL    string // empty uses the public Gemini API endpoint
	Timeout    time.Duration
	HTTPClient *http.Client
}

// GeminiClient generates text through Google's Gemini API
type GeminiClient struct {
	client  *genai.Client
	initErr error
	name    string
	keyEnv  string
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a client. A missing key is reported on every
// Generate call rather than here, so startup never fails on credentials.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	c := &GeminiClient{
		name:    cfg.Name,
		keyEnv:  cfg.KeyEnv,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
	if c.name == "" {
		c.name = "Gemini"
	}
	if c.keyEnv == "" {
		c.keyEnv = "GEMINI_API_KEY"
	}
	if c.model == "" {
		c.model = DefaultGeminiModel
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if cfg.APIKey == "" {
		return c
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), clientCfg)
	if err != nil {
		c.initErr = fmt.Errorf("failed to create GenAI client: %w", err)
		return c
	}
	c.client = client
	return c
}

// Name returns the backend name
func (c *GeminiClient) Name() string {
	return c.name
}

// Generate sends prompt as a single user turn and returns the joined text parts
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.initErr != nil {
		return "", &models.BackendError{Kind: models.ErrorKindConfiguration, Backend: c.name, Err: c.initErr}
	}
	if c.client == nil {
		return "", models.NewConfigError(c.name, c.keyEnv)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", models.NewTransportError(c.name, err)
	}

	return extractGeminiText(c.name, result)
}

// extractGeminiText walks candidates -> content -> parts -> text
func extractGeminiText(name string, result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", models.NewShapeError(name, "no candidates in response")
	}
	candidate := result.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", models.NewShapeError(name, "first candidate has no content")
	}
	if len(candidate.Content.Parts) == 0 {
		return "", models.NewShapeError(name, "candidate content has no parts")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", models.NewShapeError(name, "candidate parts carry no text")
	}
	return sb.String(), nil
}
