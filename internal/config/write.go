// internal/config/write.go
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// ErrExists is returned when a write would replace an existing file.
var ErrExists = errors.New("config file already exists")

// WriteDefault writes the annotated starter config to path.
func WriteDefault(path string, overwrite bool) error {
	return writeFile(path, []byte(defaultConfig), overwrite)
}

// Write encodes c as TOML at path. Credentials are written as-is, so the
// file is only readable by its owner.
func (c *Config) Write(path string, overwrite bool) error {
	var buf bytes.Buffer
	buf.WriteString("# arrmate configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return writeFile(path, buf.Bytes(), overwrite)
}

// writeFile replaces path via a temp file and rename so a failed write never
// leaves a truncated config behind.
func writeFile(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
