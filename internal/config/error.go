// internal/config/error.go
package config

import (
	"fmt"
	"strings"
)

// ConfigError collects every problem found while loading one file so they
// can all be fixed in one pass.
type ConfigError struct {
	Path    string
	Missing []string // unresolved ${VAR} references
	Errors  []string // validation failures, "field: reason"
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%d problem(s)", len(e.Missing)+len(e.Errors))
	for _, p := range e.Problems() {
		b.WriteString("\n  - ")
		b.WriteString(p)
	}
	return b.String()
}

// Problems lists unset variables first, then validation failures.
func (e *ConfigError) Problems() []string {
	out := make([]string, 0, len(e.Missing)+len(e.Errors))
	for _, m := range e.Missing {
		out = append(out, "unset variable "+m)
	}
	return append(out, e.Errors...)
}

// HasErrors reports whether anything was collected.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
