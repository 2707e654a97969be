package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("ARRMATE_TEST_SET", "value")
	t.Setenv("ARRMATE_TEST_EMPTY", "")

	tests := []struct {
		name    string
		in      string
		want    string
		missing []string
	}{
		{"plain", `url = "${ARRMATE_TEST_SET}"`, `url = "value"`, nil},
		{"set but empty", `key = "${ARRMATE_TEST_EMPTY}"`, `key = ""`, nil},
		{"unset left in place", `key = "${ARRMATE_TEST_UNSET}"`, `key = "${ARRMATE_TEST_UNSET}"`, []string{"ARRMATE_TEST_UNSET"}},
		{"default when unset", `url = "${ARRMATE_TEST_UNSET:-http://localhost:11434}"`, `url = "http://localhost:11434"`, nil},
		{"default when empty", `v = "${ARRMATE_TEST_EMPTY:-fallback}"`, `v = "fallback"`, nil},
		{"default ignored when set", `v = "${ARRMATE_TEST_SET:-fallback}"`, `v = "value"`, nil},
		{"empty default", `key = "${ARRMATE_TEST_UNSET:-}"`, `key = ""`, nil},
		{"required with message", `key = "${ARRMATE_TEST_UNSET:?get it from Settings > General}"`,
			`key = "${ARRMATE_TEST_UNSET:?get it from Settings > General}"`,
			[]string{"ARRMATE_TEST_UNSET: get it from Settings > General"}},
		{"required and set", `key = "${ARRMATE_TEST_SET:?needed}"`, `key = "value"`, nil},
		{"several", "${ARRMATE_TEST_SET} ${ARRMATE_TEST_UNSET} ${ARRMATE_TEST_OTHER:-three}",
			"value ${ARRMATE_TEST_UNSET} three", []string{"ARRMATE_TEST_UNSET"}},
		{"not a reference", `path = "$HOME/media"`, `path = "$HOME/media"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := substituteEnvVars(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.missing, missing)
		})
	}
}
