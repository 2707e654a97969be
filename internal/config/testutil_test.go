package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// clearBackendEnv blanks every backend env var so env fallback does not
// leak the developer's environment into tests.
func clearBackendEnv(t *testing.T) {
	t.Helper()
	for _, typ := range Types {
		u, k := EnvVars(typ)
		t.Setenv(u, "")
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "failed to write test config")
	return path
}
