// Package llm provides structured extraction through LLM tool calling: the
// model is given one tool and must answer by calling it.
package llm

//go:generate mockgen -destination=mocks/mock_llm.go -package=mocks . Extractor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/arrmate/internal/backend/arr"
	"github.com/vmunix/arrmate/internal/config"
)

// ErrNoToolCall is returned when the model answered without calling the
// extraction tool.
var ErrNoToolCall = errors.New("model did not call the extraction tool")

// Tool is a function the model can call.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  any    `json:"parameters"` // JSON Schema
}

// Extractor turns free text into the arguments of a single tool call.
type Extractor interface {
	Extract(ctx context.Context, text string, tool Tool, systemPrompt string) (map[string]any, error)
}

// New creates the extractor selected by cfg.Provider.
func New(cfg config.LLMConfig, logger *slog.Logger) (Extractor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts := []arr.Option{arr.WithTimeout(cfg.Timeout), arr.WithLogger(logger)}

	switch cfg.Provider {
	case "", "ollama":
		if cfg.Ollama == nil {
			return nil, errors.New("llm: ollama not configured")
		}
		return NewOllama(cfg.Ollama.URL, cfg.Ollama.Model, opts...), nil
	case "openai":
		if cfg.OpenAI == nil || cfg.OpenAI.APIKey == "" {
			return nil, errors.New("llm: openai api key not configured")
		}
		return NewOpenAI(cfg.OpenAI.URL, cfg.OpenAI.APIKey, cfg.OpenAI.Model, opts...), nil
	case "anthropic":
		if cfg.Anthropic == nil || cfg.Anthropic.APIKey == "" {
			return nil, errors.New("llm: anthropic api key not configured")
		}
		return NewAnthropic(cfg.Anthropic.URL, cfg.Anthropic.APIKey, cfg.Anthropic.Model, opts...), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

// message is a chat message in the OpenAI/Ollama shape.
type message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// functionTool is the OpenAI/Ollama tool envelope.
type functionTool struct {
	Type     string `json:"type"`
	Function Tool   `json:"function"`
}

func chatMessages(text, systemPrompt string) []message {
	return []message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: text},
	}
}
