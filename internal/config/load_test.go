// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Valid(t *testing.T) {
	clearBackendEnv(t)
	cfgPath := writeConfig(t, `
[server]
port = 8080

[[backends]]
type = "sonarr"
url = "http://sonarr:8989/"
api_key = "abc"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	require.Len(t, cfg.Backends, 1)
	assert.Equal(t, "sonarr", cfg.Backends[0].Name, "name defaults to type")
	assert.Equal(t, "http://sonarr:8989", cfg.Backends[0].URL)
	assert.Equal(t, 30*time.Second, cfg.Backends[0].Timeout)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	clearBackendEnv(t)
	os.Unsetenv("MISSING_KEY")
	cfgPath := writeConfig(t, `
[[backends]]
type = "radarr"
url = "http://localhost:7878"
api_key = "${MISSING_KEY}"
`)

	_, err := Load(cfgPath)
	require.Error(t, err, "expected error for missing env var")
	assert.Contains(t, err.Error(), "MISSING_KEY")

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"MISSING_KEY"}, cfgErr.Missing)
}

func TestLoad_ValidationError(t *testing.T) {
	clearBackendEnv(t)
	cfgPath := writeConfig(t, `
[server]
port = 99999
`)

	_, err := Load(cfgPath)
	require.Error(t, err, "expected error for invalid port")
	if !strings.Contains(err.Error(), "server.port") {
		t.Errorf("expected server.port in error, got %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	clearBackendEnv(t)
	cfgPath := writeConfig(t, "")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8585, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	require.NotNil(t, cfg.LLM.Ollama)
	assert.NotEmpty(t, cfg.LLM.Ollama.URL)
	assert.Empty(t, cfg.Backends)
}

func TestLoadWithoutValidation(t *testing.T) {
	clearBackendEnv(t)
	cfgPath := writeConfig(t, `
[server]
port = 99999
`)

	cfg, err := LoadWithoutValidation(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 99999, cfg.Server.Port)
}

func TestLoad_EnvVarDefault(t *testing.T) {
	clearBackendEnv(t)
	os.Unsetenv("OPTIONAL_VAR")
	cfgPath := writeConfig(t, `
[server]
host = "${OPTIONAL_VAR:-localhost}"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoad_EnvBackendsAppended(t *testing.T) {
	clearBackendEnv(t)
	t.Setenv("SONARR_URL", "http://env-sonarr:8989")
	t.Setenv("SONARR_API_KEY", "env-key")
	t.Setenv("PLEX_URL", "http://plex:32400")
	t.Setenv("PLEX_TOKEN", "tok")
	t.Setenv("RADARR_URL", "http://radarr:7878") // no key, ignored

	cfgPath := writeConfig(t, `
[[backends]]
name = "sonarr-4k"
type = "sonarr"
url = "http://sonarr4k:8989"
api_key = "file-key"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Len(t, cfg.Backends, 2)
	assert.Equal(t, "sonarr-4k", cfg.Backends[0].Name, "file entries win over env for the same type")
	assert.Equal(t, "plex", cfg.Backends[1].Name)
	assert.Equal(t, "tok", cfg.Backends[1].APIKey)
}

func TestLoad_BackendOrderPreserved(t *testing.T) {
	clearBackendEnv(t)
	cfgPath := writeConfig(t, `
[[backends]]
name = "radarr-main"
type = "radarr"
url = "http://a:7878"
api_key = "a"

[[backends]]
name = "radarr-4k"
type = "Radarr"
url = "http://b:7878"
api_key = "b"
timeout = "5s"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Len(t, cfg.Backends, 2)
	assert.Equal(t, "radarr-main", cfg.Backends[0].Name)
	assert.Equal(t, "radarr", cfg.Backends[1].Type)
	assert.Equal(t, 5*time.Second, cfg.Backends[1].Timeout)

	b, ok := cfg.Backend("RADARR-4K")
	require.True(t, ok)
	assert.Equal(t, "http://b:7878", b.URL)
}

func TestFromEnv(t *testing.T) {
	clearBackendEnv(t)
	t.Setenv("BAZARR_URL", "http://bazarr:6767")
	t.Setenv("BAZARR_API_KEY", "k")

	cfg := FromEnv()
	require.Len(t, cfg.Backends, 1)
	assert.Equal(t, TypeBazarr, cfg.Backends[0].Type)
	assert.Equal(t, 8585, cfg.Server.Port)
	assert.Empty(t, cfg.Validate())
}

func TestEnvHint(t *testing.T) {
	assert.Equal(t, "SONARR_URL and SONARR_API_KEY", EnvHint(TypeSonarr))
	assert.Equal(t, "PLEX_URL and PLEX_TOKEN", EnvHint(TypePlex))
}
