// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/vmunix/arrmate/internal/history"
	"github.com/vmunix/arrmate/internal/intent"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// Config holds API server configuration.
type Config struct {
	APIKey  string // empty disables authentication
	Version string
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
}

// New creates a new v1 API server.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &Server{deps: deps, cfg: cfg}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.health)
	if s.deps.Metrics != nil {
		mux.Handle("GET /metrics", s.deps.Metrics.Handler())
	}

	// Commands
	mux.HandleFunc("POST /api/v1/execute", s.requireAPIKey(s.execute))
	mux.HandleFunc("POST /api/v1/parse", s.requireAPIKey(s.parse))

	// Services
	mux.HandleFunc("GET /api/v1/services", s.requireAPIKey(s.listServices))
	mux.HandleFunc("POST /api/v1/services/refresh", s.requireAPIKey(s.refreshServices))

	// History
	mux.HandleFunc("GET /api/v1/history", s.requireAPIKey(s.requireHistory(s.listHistory)))
	mux.HandleFunc("GET /api/v1/history/{id}", s.requireAPIKey(s.requireHistory(s.getHistory)))
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryString extracts an optional string from query string.
func queryString(r *http.Request, name string) *string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	return &val
}

// queryBool extracts an optional boolean from query string.
func queryBool(r *http.Request, name string) *bool {
	val, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return nil
	}
	return &val
}

func decodeCommand(w http.ResponseWriter, r *http.Request) (executeRequest, bool) {
	var req executeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body")
		return req, false
	}
	req.Command = strings.TrimSpace(req.Command)
	if req.Command == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "command is required")
		return req, false
	}
	return req, true
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: s.cfg.Version})
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCommand(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Pipeline.Run(r.Context(), req.Command, req.DryRun))
}

func (s *Server) parse(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCommand(w, r)
	if !ok {
		return
	}
	in, err := s.deps.Pipeline.Parse(r.Context(), req.Command)
	if v, invalid := intent.AsValidation(err); invalid {
		writeJSON(w, http.StatusOK, parseResponse{Intent: in, Violations: v.Violations})
		return
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "PARSE_FAILED", intent.UserMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{Intent: in})
}

func (s *Server) servicesResponse() servicesResponse {
	descs := s.deps.Registry.Descriptors()
	resp := servicesResponse{Services: descs, Total: len(descs)}
	for _, d := range descs {
		if d.Available {
			resp.Available++
		}
	}
	return resp
}

func (s *Server) listServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.servicesResponse())
}

func (s *Server) refreshServices(w http.ResponseWriter, r *http.Request) {
	s.deps.Registry.Discover(r.Context())
	writeJSON(w, http.StatusOK, s.servicesResponse())
}

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) {
	f := history.Filter{
		Action:  queryString(r, "action"),
		Success: queryBool(r, "success"),
		Limit:   queryInt(r, "limit", history.DefaultLimit),
	}
	entries, err := s.deps.History.List(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if entries == nil {
		entries = []*history.Entry{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Items: entries, Total: len(entries), Limit: f.Limit})
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	e, err := s.deps.History.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, history.ErrNotFound) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "History entry not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, e)
}
