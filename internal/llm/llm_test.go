package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrmate/internal/config"
	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/llm"
)

var testTool = llm.Tool{
	Name:        "parse_media_command",
	Description: "Parse a command",
	Parameters: map[string]any{
		"type":       "object",
		"properties": map[string]any{"action": map[string]any{"type": "string"}},
	},
}

// capture records the last decoded request body.
type capture struct {
	mu     sync.Mutex
	path   string
	header http.Header
	body   map[string]any
}

func (c *capture) handler(t *testing.T, response string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		c.mu.Lock()
		c.path = r.URL.Path
		c.header = r.Header.Clone()
		c.body = body
		c.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}
}

func TestOllama_Extract(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(c.handler(t, `{
		"message": {
			"content": "",
			"tool_calls": [{"function": {"name": "parse_media_command", "arguments": {"action": "remove", "title": "The Office"}}}]
		}
	}`))
	defer srv.Close()

	o := llm.NewOllama(srv.URL, "qwen2.5:7b")
	args, err := o.Extract(context.Background(), "delete the office", testTool, "system")
	require.NoError(t, err)
	assert.Equal(t, "remove", args["action"])
	assert.Equal(t, "The Office", args["title"])

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, "/api/chat", c.path)
	assert.Equal(t, "qwen2.5:7b", c.body["model"])
	assert.Equal(t, false, c.body["stream"])
	tools := c.body["tools"].([]any)
	require.Len(t, tools, 1)
	fn := tools[0].(map[string]any)["function"].(map[string]any)
	assert.Equal(t, "parse_media_command", fn["name"])
	msgs := c.body["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "delete the office", msgs[1].(map[string]any)["content"])
}

func TestOllama_NoToolCall(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(c.handler(t, `{"message": {"content": "I cannot help with that"}}`))
	defer srv.Close()

	_, err := llm.NewOllama(srv.URL, "m").Extract(context.Background(), "hello", testTool, "")
	assert.ErrorIs(t, err, llm.ErrNoToolCall)
}

func TestOllama_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := llm.NewOllama(url, "m").Extract(context.Background(), "hello", testTool, "")
	var be *intent.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "ollama", be.Backend)
}

func TestOpenAI_Extract(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(c.handler(t, `{
		"choices": [{"message": {"tool_calls": [{"function": {"name": "parse_media_command", "arguments": "{\"action\":\"list\",\"media_type\":\"movie\"}"}}]}}]
	}`))
	defer srv.Close()

	o := llm.NewOpenAI(srv.URL, "sk-test", "gpt-4o-mini")
	args, err := o.Extract(context.Background(), "list movies", testTool, "system")
	require.NoError(t, err)
	assert.Equal(t, "list", args["action"])
	assert.Equal(t, "movie", args["media_type"])

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, "/chat/completions", c.path)
	assert.Equal(t, "Bearer sk-test", c.header.Get("Authorization"))
	choice := c.body["tool_choice"].(map[string]any)
	assert.Equal(t, "function", choice["type"])
	assert.Equal(t, "parse_media_command", choice["function"].(map[string]any)["name"])
}

func TestOpenAI_BadArguments(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(c.handler(t, `{
		"choices": [{"message": {"tool_calls": [{"function": {"name": "parse_media_command", "arguments": "not json"}}]}}]
	}`))
	defer srv.Close()

	_, err := llm.NewOpenAI(srv.URL, "k", "m").Extract(context.Background(), "x", testTool, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tool arguments")
}

func TestAnthropic_Extract(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(c.handler(t, `{
		"content": [
			{"type": "text", "text": "Sure."},
			{"type": "tool_use", "name": "parse_media_command", "input": {"action": "search", "title": "Dune"}}
		]
	}`))
	defer srv.Close()

	a := llm.NewAnthropic(srv.URL, "ant-key", "claude")
	args, err := a.Extract(context.Background(), "find dune", testTool, "be precise")
	require.NoError(t, err)
	assert.Equal(t, "search", args["action"])
	assert.Equal(t, "Dune", args["title"])

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, "/v1/messages", c.path)
	assert.Equal(t, "ant-key", c.header.Get("x-api-key"))
	assert.Equal(t, "2023-06-01", c.header.Get("anthropic-version"))
	assert.Equal(t, "be precise", c.body["system"])
	tools := c.body["tools"].([]any)
	require.Len(t, tools, 1)
	assert.Contains(t, tools[0].(map[string]any), "input_schema")
	assert.Equal(t, map[string]any{"type": "tool", "name": "parse_media_command"}, c.body["tool_choice"])
}

func TestAnthropic_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := llm.NewAnthropic(srv.URL, "bad", "m").Extract(context.Background(), "x", testTool, "")
	var be *intent.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusUnauthorized, be.Status)
}

func TestNew(t *testing.T) {
	base := config.LLMConfig{
		Timeout:   time.Second,
		Ollama:    &config.OllamaConfig{URL: "http://localhost:11434", Model: "m"},
		OpenAI:    &config.OpenAIConfig{URL: "https://api.openai.com/v1", Model: "m"},
		Anthropic: &config.AnthropicConfig{URL: "https://api.anthropic.com", APIKey: "k", Model: "m"},
	}

	tests := []struct {
		provider string
		want     any
		wantErr  bool
	}{
		{provider: "", want: &llm.Ollama{}},
		{provider: "ollama", want: &llm.Ollama{}},
		{provider: "anthropic", want: &llm.Anthropic{}},
		{provider: "openai", wantErr: true}, // no key
		{provider: "gemini", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := base
			cfg.Provider = tt.provider
			ex, err := llm.New(cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, ex)
		})
	}
}
