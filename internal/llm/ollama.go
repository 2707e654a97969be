package llm

import (
	"context"
	"fmt"

	"github.com/vmunix/arrmate/internal/backend/arr"
)

// Ollama uses a local Ollama server for inference.
type Ollama struct {
	client *arr.Client
	model  string
}

// NewOllama creates a new Ollama extractor.
func NewOllama(baseURL, model string, opts ...arr.Option) *Ollama {
	return &Ollama{
		client: arr.New("ollama", baseURL, nil, opts...),
		model:  model,
	}
}

type ollamaRequest struct {
	Model    string         `json:"model"`
	Messages []message      `json:"messages"`
	Tools    []functionTool `json:"tools"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Message struct {
		Content   string `json:"content"`
		ToolCalls []struct {
			Function struct {
				Name      string         `json:"name"`
				Arguments map[string]any `json:"arguments"`
			} `json:"function"`
		} `json:"tool_calls"`
	} `json:"message"`
}

// Extract sends the text to Ollama's chat endpoint with the tool attached.
func (o *Ollama) Extract(ctx context.Context, text string, tool Tool, systemPrompt string) (map[string]any, error) {
	req := ollamaRequest{
		Model:    o.model,
		Messages: chatMessages(text, systemPrompt),
		Tools:    []functionTool{{Type: "function", Function: tool}},
		Options:  map[string]any{"temperature": 0},
	}

	var resp ollamaResponse
	if err := o.client.Post(ctx, "api/chat", req, &resp); err != nil {
		return nil, err
	}

	for _, call := range resp.Message.ToolCalls {
		if call.Function.Name == tool.Name {
			return call.Function.Arguments, nil
		}
	}
	return nil, fmt.Errorf("ollama: %w", ErrNoToolCall)
}
