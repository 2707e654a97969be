package arr

import (
	"encoding/json"
	"strconv"

	"github.com/vmunix/arrmate/internal/backend"
)

// Raw is an undecoded JSON object as returned by a backend.
type Raw = map[string]any

// String returns raw[key] as a string. Numbers are formatted without
// exponent so numeric ids round-trip.
func String(raw Raw, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Int returns raw[key] as an int, or 0.
func Int(raw Raw, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

// Bool returns raw[key] as a bool.
func Bool(raw Raw, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

// FirstString returns the first non-empty string among keys.
func FirstString(raw Raw, keys ...string) string {
	for _, k := range keys {
		if s := String(raw, k); s != "" {
			return s
		}
	}
	return ""
}

// ItemFrom maps a backend object to an Item. catalogKey names the external
// id field (tvdbId, tmdbId, foreignArtistId); titleKeys lists title fields
// in preference order.
func ItemFrom(raw Raw, catalogKey string, titleKeys ...string) backend.Item {
	if len(titleKeys) == 0 {
		titleKeys = []string{"title"}
	}
	id := String(raw, "id")
	if id == "0" {
		id = ""
	}
	return backend.Item{
		ID:        id,
		CatalogID: String(raw, catalogKey),
		Title:     FirstString(raw, titleKeys...),
		Year:      Int(raw, "year"),
		Raw:       raw,
	}
}

// ItemsFrom maps a slice of backend objects.
func ItemsFrom(raws []Raw, catalogKey string, titleKeys ...string) []backend.Item {
	items := make([]backend.Item, 0, len(raws))
	for _, r := range raws {
		items = append(items, ItemFrom(r, catalogKey, titleKeys...))
	}
	return items
}

// Clone returns a shallow copy of raw.
func Clone(raw Raw) Raw {
	out := make(Raw, len(raw)+6)
	for k, v := range raw {
		out[k] = v
	}
	return out
}

// Truncate limits items to at most n entries.
func Truncate[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
