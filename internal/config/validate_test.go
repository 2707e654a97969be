// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBackend() BackendConfig {
	return BackendConfig{Name: "sonarr", Type: "sonarr", URL: "http://localhost:8989", APIKey: "k"}
}

func TestValidate_MinimalValid(t *testing.T) {
	cfg := &Config{Backends: []BackendConfig{validBackend()}}
	errs := cfg.Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_NoBackendsIsValid(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.Validate(), "backends are optional; requests fail with a configuration error instead")
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 99999}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.port"), "expected port error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := &Config{Server: ServerConfig{LogLevel: "verbose"}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.log_level"), "expected log level error, got %v", errs)
}

func TestValidate_LLMProvider(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{Provider: "gemini"}}
	assert.True(t, containsError(cfg.Validate(), "llm.provider"))

	cfg = &Config{LLM: LLMConfig{Provider: "openai", OpenAI: &OpenAIConfig{}}}
	assert.True(t, containsError(cfg.Validate(), "llm.openai.api_key"))

	cfg = &Config{LLM: LLMConfig{Provider: "anthropic"}}
	assert.True(t, containsError(cfg.Validate(), "llm.anthropic.api_key"))
}

func TestValidate_Backends(t *testing.T) {
	tests := []struct {
		name    string
		backend BackendConfig
		want    string
	}{
		{"unknown type", BackendConfig{Name: "x", Type: "sickbeard", URL: "http://x", APIKey: "k"}, "backends.x.type"},
		{"missing url", BackendConfig{Name: "x", Type: "radarr", APIKey: "k"}, "backends.x.url: required"},
		{"relative url", BackendConfig{Name: "x", Type: "radarr", URL: "localhost:7878", APIKey: "k"}, "backends.x.url: must be an absolute"},
		{"missing key", BackendConfig{Name: "x", Type: "radarr", URL: "http://x"}, "backends.x.api_key: required"},
		{"unnamed", BackendConfig{Type: "radarr", URL: "http://x"}, "backends[0].api_key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Backends: []BackendConfig{tt.backend}}
			errs := cfg.Validate()
			assert.True(t, containsError(errs, tt.want), "expected %q, got %v", tt.want, errs)
		})
	}
}

func TestValidate_DuplicateNames(t *testing.T) {
	cfg := &Config{Backends: []BackendConfig{validBackend(), validBackend()}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "duplicate backend name"), "got %v", errs)
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
