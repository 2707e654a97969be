// Package migrations provides embedded SQL migration files.
package migrations

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed sql/001_history.sql
var HistorySQL string

// all lists migrations in application order. Each is idempotent.
var all = []struct {
	name string
	sql  string
}{
	{"001_history", HistorySQL},
}

// Apply runs every migration against db.
func Apply(db *sql.DB) error {
	for _, m := range all {
		if _, err := db.Exec(m.sql); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
	}
	return nil
}
