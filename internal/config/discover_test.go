package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Contains(t, DefaultPath(), filepath.Join(".config", "arrmate", "config.toml"))

	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/arrmate/config.toml", DefaultPath())
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, []string{
		"./config.toml",
		"/xdg/arrmate/config.toml",
		"/etc/arrmate/config.toml",
	}, SearchPaths())
}

func TestDiscover(t *testing.T) {
	t.Run("env var wins", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("[server]"), 0644))
		t.Setenv(EnvConfigPath, cfgPath)

		path, err := Discover()
		require.NoError(t, err)
		assert.Equal(t, cfgPath, path)
	})

	t.Run("env var points nowhere", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/nonexistent/config.toml")

		_, err := Discover()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvConfigPath)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("current directory", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		tmp := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmp, "config.toml"), []byte("[server]"), 0644))
		t.Chdir(tmp)

		path, err := Discover()
		require.NoError(t, err)
		assert.Equal(t, "./config.toml", path)
	})

	t.Run("directory named config.toml is skipped", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")
		tmp := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(tmp, "config.toml"), 0755))
		t.Chdir(tmp)

		_, err := Discover()
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")
		t.Chdir(t.TempDir())

		_, err := Discover()
		require.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "/nonexistent/xdg/arrmate/config.toml")
	})
}
