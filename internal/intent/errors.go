package intent

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ConfigurationError means a backend is not configured for the request, or
// is configured without something it depends on (quality profiles, root
// folders).
type ConfigurationError struct {
	Param string // environment parameter(s) that would fix it, if any
	Msg   string
}

func (e *ConfigurationError) Error() string {
	if e.Param == "" {
		return "configuration: " + e.Msg
	}
	return fmt.Sprintf("configuration: %s (set %s)", e.Msg, e.Param)
}

// ParseError means the extraction step failed or returned something that is
// not a valid intent.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "parse: " + e.Msg
	}
	return fmt.Sprintf("parse: %s: %v", e.Msg, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError carries every structural rule an intent violates.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// ResolutionError means a title, season or episode could not be mapped to a
// backend identifier.
type ResolutionError struct {
	Title      string
	Msg        string
	Suggestion string // closest library title, if any
}

func (e *ResolutionError) Error() string {
	return "resolution: " + e.userMessage()
}

func (e *ResolutionError) userMessage() string {
	msg := e.Msg
	if msg == "" {
		msg = fmt.Sprintf("Could not find '%s' in library or search results", e.Title)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean '%s'?)", e.Suggestion)
	}
	return msg
}

// BackendError is a transport failure, timeout or non-2xx response from a
// backend.
type BackendError struct {
	Backend string
	Op      string
	Status  int // HTTP status, 0 for transport failures, 2xx for undecodable bodies
	Err     error
}

func (e *BackendError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "backend %s: %s", e.Backend, e.Op)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *BackendError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a deadline or network timeout.
func (e *BackendError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

func (e *BackendError) userMessage() string {
	switch {
	case e.Timeout():
		return fmt.Sprintf("%s did not respond in time", e.Backend)
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return fmt.Sprintf("%s rejected the configured credentials", e.Backend)
	case e.Status == http.StatusNotFound:
		return fmt.Sprintf("%s could not find the requested item", e.Backend)
	case e.Status == 0:
		return fmt.Sprintf("%s is unreachable", e.Backend)
	case e.Status >= 200 && e.Status < 300:
		return fmt.Sprintf("%s returned an unexpected response", e.Backend)
	default:
		return fmt.Sprintf("%s could not complete the request", e.Backend)
	}
}

// AsValidation returns the ValidationError in err's chain, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	ok := errors.As(err, &v)
	return v, ok
}

// UserMessage renders err for an end user: no stack traces, no backend
// identifiers, no raw protocol errors.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		cfg *ConfigurationError
		pe  *ParseError
		ve  *ValidationError
		re  *ResolutionError
		be  *BackendError
	)
	switch {
	case errors.As(err, &re):
		return re.userMessage()
	case errors.As(err, &be):
		return be.userMessage()
	case errors.As(err, &ve):
		return "The command is incomplete: " + strings.Join(ve.Violations, "; ")
	case errors.As(err, &cfg):
		return "Not configured: " + cfg.Msg
	case errors.As(err, &pe):
		return "Could not understand the command"
	default:
		return "Execution failed"
	}
}
