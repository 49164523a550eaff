// ABOUTME: Handler implementations bound to tags: persona-wrapped live backends and stubs
// ABOUTME: NewHandlers builds the tag -> handler table from read-only config
package core

import (
	"context"

	"github.com/harper/tag-router/internal/config"
	"github.com/harper/tag-router/internal/llm"
	"github.com/harper/tag-router/internal/models"
)

// Handler produces the reply for one tag. A non-nil error is a failure reply.
type Handler interface {
	Generate(ctx context.Context, message string) (string, error)
}

// Generator is a live text-generation backend that takes a finished prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PersonaHandler renders the persona template and sends it to a backend
type PersonaHandler struct {
	Persona Persona
	Backend Generator
}

// Generate wraps message in the persona prompt and makes one backend call
func (h PersonaHandler) Generate(ctx context.Context, message string) (string, error) {
	return h.Backend.Generate(ctx, h.Persona.Render(message))
}

// StubHandler stands in for a backend that is not wired to a live service
type StubHandler struct {
	Reply string
}

// Generate returns the fixed placeholder regardless of message
func (h StubHandler) Generate(context.Context, string) (string, error) {
	return h.Reply, nil
}

// NewHandlers builds the default handler table:
// Io -> Gemini with the Io persona, Lumo -> OpenAI-compatible with the Lumo persona,
// Copilot -> stub.
func NewHandlers(cfg *config.Config) map[models.Tag]Handler {
	gemini := llm.NewGeminiClient(llm.GeminiConfig{
		Name:    string(models.TagIo),
		APIKey:  cfg.GeminiKey,
		KeyEnv:  "GEMINI_API_KEY",
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.BackendTimeout,
	})
	lumo := llm.NewOpenAIClient(llm.OpenAIConfig{
		Name:    string(models.TagLumo),
		APIKey:  cfg.LumoKey,
		KeyEnv:  "LUMO_API_KEY",
		Model:   cfg.LumoModel,
		BaseURL: cfg.LumoBaseURL,
		Timeout: cfg.BackendTimeout,
	})

	return map[models.Tag]Handler{
		models.TagIo:      PersonaHandler{Persona: IoPersona(), Backend: gemini},
		models.TagLumo:    PersonaHandler{Persona: LumoPersona(), Backend: lumo},
		models.TagCopilot: StubHandler{Reply: "Copilot was called."},
	}
}
