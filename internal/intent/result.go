package intent

import (
	"errors"
	"fmt"
)

// ExecutionResult is the normalized outcome of executing an intent.
type ExecutionResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
	Errors  []string       `json:"errors,omitempty"`
}

// Succeeded builds a successful result.
func Succeeded(message string, data map[string]any) ExecutionResult {
	return ExecutionResult{Success: true, Message: message, Data: data}
}

// Failed builds a failed result. When no diagnostics are given the message
// itself is recorded as the only error.
func Failed(message string, errs ...string) ExecutionResult {
	if len(errs) == 0 {
		errs = []string{message}
	}
	return ExecutionResult{Success: false, Message: message, Errors: errs}
}

// NotImplemented is the result for action and media type pairs that have no
// handler yet.
func NotImplemented(action Action, media MediaType) ExecutionResult {
	return Failed(fmt.Sprintf("Action '%s' is not yet implemented for %s", action, media))
}

// FromError converts a pipeline error into a failed result written for an
// end user. Configuration failures keep their "configuration:" diagnostic
// so callers can tell them apart from backend failures.
func FromError(err error) ExecutionResult {
	msg := UserMessage(err)
	res := Failed(msg)
	if v, ok := AsValidation(err); ok {
		res.Errors = append([]string(nil), v.Violations...)
		res.Data = map[string]any{"violations": v.Violations}
		return res
	}
	var cfg *ConfigurationError
	if errors.As(err, &cfg) {
		res.Errors = []string{cfg.Error()}
	}
	return res
}
