// Package history persists executed commands in SQLite.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/migrations"
)

// ErrNotFound is returned when an entry does not exist.
var ErrNotFound = errors.New("history entry not found")

// DefaultLimit bounds List when no limit is given.
const DefaultLimit = 50

// Entry is one recorded command.
type Entry struct {
	ID         string                 `json:"id"`
	Command    string                 `json:"command"`
	Action     string                 `json:"action,omitempty"`
	MediaType  string                 `json:"media_type,omitempty"`
	Title      string                 `json:"title,omitempty"`
	Intent     json.RawMessage        `json:"intent,omitempty"`
	Result     intent.ExecutionResult `json:"result"`
	DryRun     bool                   `json:"dry_run"`
	DurationMS int64                  `json:"duration_ms"`
	CreatedAt  time.Time              `json:"created_at"`
}

// Filter specifies criteria for listing history.
type Filter struct {
	Action  *string
	Success *bool
	Limit   int
}

// Store persists history entries.
type Store struct {
	db *sql.DB
}

// NewStore creates a history store on an already migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (creating if needed) the SQLite database at path and applies
// migrations.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY and keeps
	// in-memory databases shared.
	db.SetMaxOpenConns(1)
	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// NewEntry builds an entry for a command and its (possibly nil) intent.
func NewEntry(command string, in *intent.Intent, res intent.ExecutionResult, dryRun bool, d time.Duration) *Entry {
	e := &Entry{
		Command:    command,
		Result:     res,
		DryRun:     dryRun,
		DurationMS: d.Milliseconds(),
	}
	if in != nil {
		e.Action = string(in.Action)
		e.MediaType = string(in.MediaType)
		e.Title = in.Title
		if data, err := json.Marshal(in); err == nil {
			e.Intent = data
		}
	}
	return e
}

// Add inserts e, assigning its ID and CreatedAt.
func (s *Store) Add(ctx context.Context, e *Entry) error {
	result, err := json.Marshal(e.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	in := string(e.Intent)
	if in == "" {
		in = "{}"
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO history (id, command, action, media_type, title, intent, success, message, result, dry_run, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.Command, e.Action, e.MediaType, e.Title, in,
		e.Result.Success, e.Result.Message, string(result), e.DryRun, e.DurationMS, now,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	e.ID = id
	e.CreatedAt = now
	return nil
}

const selectColumns = `SELECT id, command, action, media_type, title, intent, result, dry_run, duration_ms, created_at FROM history`

// Get returns one entry by ID.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return e, nil
}

// List returns entries matching the filter, most recent first.
func (s *Store) List(ctx context.Context, f Filter) ([]*Entry, error) {
	var conditions []string
	var args []any

	if f.Action != nil {
		conditions = append(conditions, "action = ?")
		args = append(args, *f.Action)
	}
	if f.Success != nil {
		conditions = append(conditions, "success = ?")
		args = append(args, *f.Success)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	query := selectColumns + whereClause + ` ORDER BY created_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return results, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*Entry, error) {
	var (
		e      Entry
		in     string
		result string
	)
	if err := sc.Scan(&e.ID, &e.Command, &e.Action, &e.MediaType, &e.Title, &in, &result,
		&e.DryRun, &e.DurationMS, &e.CreatedAt); err != nil {
		return nil, err
	}
	if in != "" && in != "{}" {
		e.Intent = json.RawMessage(in)
	}
	if err := json.Unmarshal([]byte(result), &e.Result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &e, nil
}
