package v1

import (
	"context"
	"errors"

	"github.com/vmunix/arrmate/internal/history"
	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/metrics"
	"github.com/vmunix/arrmate/internal/pipeline"
	"github.com/vmunix/arrmate/internal/registry"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// CommandRunner runs natural-language commands.
type CommandRunner interface {
	Run(ctx context.Context, text string, dryRun bool) pipeline.Response
	Parse(ctx context.Context, text string) (*intent.Intent, error)
}

// ServiceRegistry reports and refreshes backend status.
type ServiceRegistry interface {
	Discover(ctx context.Context) map[string]registry.Descriptor
	Descriptors() []registry.Descriptor
}

// HistoryStore reads recorded commands.
type HistoryStore interface {
	List(ctx context.Context, f history.Filter) ([]*history.Entry, error)
	Get(ctx context.Context, id string) (*history.Entry, error)
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Pipeline CommandRunner
	Registry ServiceRegistry

	// Optional dependencies (nil if not configured)
	History HistoryStore
	Metrics *metrics.Metrics
}

// Validate checks that required dependencies are present.
func (d ServerDeps) Validate() error {
	if d.Pipeline == nil {
		return errors.Join(ErrMissingDependency, errors.New("pipeline"))
	}
	if d.Registry == nil {
		return errors.Join(ErrMissingDependency, errors.New("registry"))
	}
	return nil
}
