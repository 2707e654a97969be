// internal/config/write_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "arrmate", "config.toml")

	require.NoError(t, WriteDefault(path, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[server]")
	assert.Contains(t, string(content), "[[backends]]")
	assert.Contains(t, string(content), "${SONARR_API_KEY}")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteDefault_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

	err := WriteDefault(path, false)
	require.ErrorIs(t, err, ErrExists)
	content, _ := os.ReadFile(path)
	assert.Equal(t, "# mine\n", string(content))

	require.NoError(t, WriteDefault(path, true))
	content, _ = os.ReadFile(path)
	assert.Contains(t, string(content), "[llm.ollama]")
}

func TestDefaultConfig_Loads(t *testing.T) {
	clearBackendEnv(t)
	t.Setenv("SONARR_API_KEY", "s")
	t.Setenv("RADARR_API_KEY", "r")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Backends, 2)
	assert.Equal(t, "s", cfg.Backends[0].APIKey)
	assert.Equal(t, 30*time.Second, cfg.Backends[1].Timeout)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
}

func TestConfig_WriteRoundTrip(t *testing.T) {
	clearBackendEnv(t)
	cfg := &Config{
		Server:   ServerConfig{Host: "127.0.0.1", Port: 9000},
		Backends: []BackendConfig{validBackend()},
	}
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, cfg.Write(path, false))
	require.ErrorIs(t, cfg.Write(path, false), ErrExists)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", loaded.Server.Host)
	assert.Equal(t, 9000, loaded.Server.Port)
	require.Len(t, loaded.Backends, 1)
	assert.Equal(t, "http://localhost:8989", loaded.Backends[0].URL)
}
