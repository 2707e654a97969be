// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLLMProviders = map[string]bool{
	"ollama": true, "openai": true, "anthropic": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// LLM validation
	if c.LLM.Provider != "" && !validLLMProviders[c.LLM.Provider] {
		errs = append(errs, fmt.Sprintf("llm.provider: must be one of ollama, openai, anthropic; got %q", c.LLM.Provider))
	}
	switch c.LLM.Provider {
	case "openai":
		if c.LLM.OpenAI == nil || c.LLM.OpenAI.APIKey == "" {
			errs = append(errs, "llm.openai.api_key: required when provider is openai")
		}
	case "anthropic":
		if c.LLM.Anthropic == nil || c.LLM.Anthropic.APIKey == "" {
			errs = append(errs, "llm.anthropic.api_key: required when provider is anthropic")
		}
	}

	// Backend validation
	names := make(map[string]bool, len(c.Backends))
	for i, b := range c.Backends {
		field := fmt.Sprintf("backends[%d]", i)
		if b.Name != "" {
			field = fmt.Sprintf("backends.%s", b.Name)
		}

		if !validType(b.Type) {
			errs = append(errs, fmt.Sprintf("%s.type: must be one of %s; got %q", field, strings.Join(Types, ", "), b.Type))
		}
		if b.URL == "" {
			errs = append(errs, fmt.Sprintf("%s.url: required", field))
		} else if u, err := url.Parse(b.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s.url: must be an absolute http(s) URL, got %q", field, b.URL))
		}
		if b.APIKey == "" {
			errs = append(errs, fmt.Sprintf("%s.api_key: required", field))
		}
		if b.Timeout < 0 {
			errs = append(errs, fmt.Sprintf("%s.timeout: must not be negative", field))
		}

		key := strings.ToLower(b.Name)
		if names[key] {
			errs = append(errs, fmt.Sprintf("%s: duplicate backend name", field))
		}
		names[key] = true
	}

	return errs
}
