package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vmunix/arrmate/internal/backend/arr"
)

const anthropicVersion = "2023-06-01"

// Anthropic uses the Anthropic Messages API.
type Anthropic struct {
	client *arr.Client
	model  string
}

// NewAnthropic creates a new Anthropic extractor.
func NewAnthropic(baseURL, apiKey, model string, opts ...arr.Option) *Anthropic {
	auth := func(req *http.Request) {
		req.Header.Set("x-api-key", apiKey)
		req.Header.Set("anthropic-version", anthropicVersion)
	}
	return &Anthropic{
		client: arr.New("anthropic", baseURL, auth, opts...),
		model:  model,
	}
}

type anthropicTool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema any    `json:"input_schema"`
}

type anthropicRequest struct {
	Model      string          `json:"model"`
	MaxTokens  int             `json:"max_tokens"`
	System     string          `json:"system"`
	Messages   []message       `json:"messages"`
	Tools      []anthropicTool `json:"tools"`
	ToolChoice map[string]any  `json:"tool_choice"`
}

type anthropicResponse struct {
	Content []struct {
		Type  string         `json:"type"`
		Name  string         `json:"name"`
		Input map[string]any `json:"input"`
	} `json:"content"`
}

// Extract forces a tool_use block for tool and returns its input.
func (a *Anthropic) Extract(ctx context.Context, text string, tool Tool, systemPrompt string) (map[string]any, error) {
	req := anthropicRequest{
		Model:     a.model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages:  []message{{Role: "user", Content: text}},
		Tools: []anthropicTool{{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.Parameters,
		}},
		ToolChoice: map[string]any{"type": "tool", "name": tool.Name},
	}

	var resp anthropicResponse
	if err := a.client.Post(ctx, "v1/messages", req, &resp); err != nil {
		return nil, err
	}

	for _, block := range resp.Content {
		if block.Type == "tool_use" && block.Name == tool.Name {
			return block.Input, nil
		}
	}
	return nil, fmt.Errorf("anthropic: %w", ErrNoToolCall)
}
