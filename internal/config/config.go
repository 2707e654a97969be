// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database DatabaseConfig  `toml:"database"`
	LLM      LLMConfig       `toml:"llm"`
	Backends []BackendConfig `toml:"backends"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
	APIKey   string `toml:"api_key"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LLMConfig selects the structured-extraction provider.
type LLMConfig struct {
	Provider  string           `toml:"provider"`
	Timeout   time.Duration    `toml:"timeout"`
	Ollama    *OllamaConfig    `toml:"ollama"`
	OpenAI    *OpenAIConfig    `toml:"openai"`
	Anthropic *AnthropicConfig `toml:"anthropic"`
}

type OllamaConfig struct {
	URL   string `toml:"url"`
	Model string `toml:"model"`
}

type OpenAIConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

type AnthropicConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// BackendConfig is one backend instance. The order of [[backends]] entries
// is the routing priority when several instances serve the same media type.
type BackendConfig struct {
	Name    string        `toml:"name"`
	Type    string        `toml:"type"`
	URL     string        `toml:"url"`
	APIKey  string        `toml:"api_key"`
	Timeout time.Duration `toml:"timeout"`
}

// Configured reports whether the instance has everything needed to connect.
func (b BackendConfig) Configured() bool {
	return b.URL != "" && b.APIKey != ""
}

// Backend returns the configured instance with the given name.
func (c *Config) Backend(name string) (BackendConfig, bool) {
	for _, b := range c.Backends {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return BackendConfig{}, false
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// defaults but skipping validation. Unresolved variables are left in place.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

// FromEnv builds a configuration from defaults and the environment only,
// for running without a config file.
func FromEnv() *Config {
	cfg := &Config{}
	applyEnvBackends(cfg)
	applyDefaults(cfg)
	return cfg
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	applyEnvBackends(&cfg)
	applyDefaults(&cfg)

	return &cfg, missing, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8585
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/arrmate.db"
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}
	if cfg.LLM.Ollama == nil {
		cfg.LLM.Ollama = &OllamaConfig{}
	}
	if cfg.LLM.Ollama.URL == "" {
		cfg.LLM.Ollama.URL = envOr("OLLAMA_BASE_URL", "http://localhost:11434")
	}
	if cfg.LLM.Ollama.Model == "" {
		cfg.LLM.Ollama.Model = envOr("OLLAMA_MODEL", "qwen2.5:7b")
	}
	if cfg.LLM.OpenAI == nil {
		cfg.LLM.OpenAI = &OpenAIConfig{}
	}
	if cfg.LLM.OpenAI.URL == "" {
		cfg.LLM.OpenAI.URL = envOr("OPENAI_BASE_URL", "https://api.openai.com/v1")
	}
	if cfg.LLM.OpenAI.APIKey == "" {
		cfg.LLM.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.LLM.OpenAI.Model == "" {
		cfg.LLM.OpenAI.Model = envOr("OPENAI_MODEL", "gpt-4o-mini")
	}
	if cfg.LLM.Anthropic == nil {
		cfg.LLM.Anthropic = &AnthropicConfig{}
	}
	if cfg.LLM.Anthropic.URL == "" {
		cfg.LLM.Anthropic.URL = "https://api.anthropic.com"
	}
	if cfg.LLM.Anthropic.APIKey == "" {
		cfg.LLM.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.LLM.Anthropic.Model == "" {
		cfg.LLM.Anthropic.Model = envOr("ANTHROPIC_MODEL", "claude-3-5-haiku-latest")
	}

	for i := range cfg.Backends {
		b := &cfg.Backends[i]
		b.Type = strings.ToLower(b.Type)
		if b.Name == "" {
			b.Name = b.Type
		}
		b.URL = strings.TrimSuffix(b.URL, "/")
		if b.Timeout == 0 {
			b.Timeout = 30 * time.Second
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Unresolved references are left unchanged and reported in missing; for
// ${VAR:?message} the entry is "VAR: message".
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case "-":
			if !ok || value == "" {
				return arg
			}
			return value
		case "?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match // Leave unchanged if not found
		}
		return value
	})
	return out, missing
}
