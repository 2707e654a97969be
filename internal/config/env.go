package config

import (
	"os"
	"strings"
)

// Backend types.
const (
	TypeSonarr         = "sonarr"
	TypeRadarr         = "radarr"
	TypeLidarr         = "lidarr"
	TypeReadarr        = "readarr"
	TypeWhisparr       = "whisparr"
	TypeAudiobookshelf = "audiobookshelf"
	TypeBazarr         = "bazarr"
	TypePlex           = "plex"
	TypeHuntarr        = "huntarr"
)

// Types lists every supported backend type in env-fallback order.
var Types = []string{
	TypeSonarr, TypeRadarr, TypeLidarr, TypeReadarr, TypeWhisparr,
	TypeAudiobookshelf, TypeBazarr, TypePlex, TypeHuntarr,
}

func validType(t string) bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// EnvVars returns the environment variables that configure a backend type
// without a config file: the URL variable and the credential variable.
func EnvVars(backendType string) (urlVar, keyVar string) {
	prefix := strings.ToUpper(backendType)
	if backendType == TypePlex {
		return prefix + "_URL", prefix + "_TOKEN"
	}
	return prefix + "_URL", prefix + "_API_KEY"
}

// EnvHint renders the variables for backendType as "X_URL and X_API_KEY".
func EnvHint(backendType string) string {
	u, k := EnvVars(backendType)
	return u + " and " + k
}

// applyEnvBackends appends an instance for every backend type configured
// through the environment that has no [[backends]] entry yet.
func applyEnvBackends(cfg *Config) {
	have := make(map[string]bool, len(cfg.Backends))
	for _, b := range cfg.Backends {
		have[strings.ToLower(b.Type)] = true
	}

	for _, t := range Types {
		if have[t] {
			continue
		}
		urlVar, keyVar := EnvVars(t)
		url, key := os.Getenv(urlVar), os.Getenv(keyVar)
		if url == "" || key == "" {
			continue
		}
		cfg.Backends = append(cfg.Backends, BackendConfig{Name: t, Type: t, URL: url, APIKey: key})
	}
}
