package v1

import (
	"github.com/vmunix/arrmate/internal/history"
	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/registry"
)

// executeRequest is the body of POST /execute and POST /parse.
type executeRequest struct {
	Command string `json:"command"`
	DryRun  bool   `json:"dry_run"`
}

// parseResponse is the response for POST /parse.
type parseResponse struct {
	Intent     *intent.Intent `json:"intent"`
	Violations []string       `json:"violations,omitempty"`
}

// servicesResponse is the response for GET /services.
type servicesResponse struct {
	Services  []registry.Descriptor `json:"services"`
	Total     int                   `json:"total"`
	Available int                   `json:"available"`
}

// historyResponse is the response for GET /history.
type historyResponse struct {
	Items []*history.Entry `json:"items"`
	Total int              `json:"total"`
	Limit int              `json:"limit"`
}

// healthResponse is the response for GET /health.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
