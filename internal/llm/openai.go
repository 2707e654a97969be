package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vmunix/arrmate/internal/backend/arr"
)

// OpenAI uses an OpenAI-compatible chat completions endpoint.
type OpenAI struct {
	client *arr.Client
	model  string
}

// NewOpenAI creates a new OpenAI extractor. baseURL includes the version
// segment, e.g. https://api.openai.com/v1.
func NewOpenAI(baseURL, apiKey, model string, opts ...arr.Option) *OpenAI {
	return &OpenAI{
		client: arr.New("openai", baseURL, arr.Bearer(apiKey), opts...),
		model:  model,
	}
}

type openAIRequest struct {
	Model       string         `json:"model"`
	Messages    []message      `json:"messages"`
	Tools       []functionTool `json:"tools"`
	ToolChoice  any            `json:"tool_choice"`
	Temperature float64        `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"` // JSON-encoded
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// Extract forces a call of tool and decodes its arguments.
func (o *OpenAI) Extract(ctx context.Context, text string, tool Tool, systemPrompt string) (map[string]any, error) {
	req := openAIRequest{
		Model:    o.model,
		Messages: chatMessages(text, systemPrompt),
		Tools:    []functionTool{{Type: "function", Function: tool}},
		ToolChoice: map[string]any{
			"type":     "function",
			"function": map[string]string{"name": tool.Name},
		},
	}

	var resp openAIResponse
	if err := o.client.Post(ctx, "chat/completions", req, &resp); err != nil {
		return nil, err
	}

	for _, choice := range resp.Choices {
		for _, call := range choice.Message.ToolCalls {
			if call.Function.Name != tool.Name {
				continue
			}
			var args map[string]any
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				return nil, fmt.Errorf("openai: decode tool arguments: %w", err)
			}
			return args, nil
		}
	}
	return nil, fmt.Errorf("openai: %w", ErrNoToolCall)
}
