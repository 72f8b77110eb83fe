// SPDX-License-Identifier: MIT

// Package httpapi exposes the algorithm catalog and stored executions as a
// JSON API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/lvtrace/dispatch"
	"github.com/katalvlaran/lvtrace/dynamic"
	"github.com/katalvlaran/lvtrace/execution"
	"github.com/katalvlaran/lvtrace/graph"
	"github.com/katalvlaran/lvtrace/internal/logging"
	"github.com/katalvlaran/lvtrace/internal/metrics"
	"github.com/katalvlaran/lvtrace/samples"
	"github.com/katalvlaran/lvtrace/sorting"
	"github.com/katalvlaran/lvtrace/step"
	"github.com/katalvlaran/lvtrace/strmatch"
)

// Executor runs and stores algorithm executions.
type Executor interface {
	Execute(ctx context.Context, req execution.Request) (*execution.Execution, error)
	Get(ctx context.Context, id string) (*execution.Execution, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]execution.Summary, error)
}

// Server holds the handler dependencies.
type Server struct {
	exec    Executor
	metrics *metrics.Recorder
	log     *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMetrics mounts m under /metrics.
func WithMetrics(m *metrics.Recorder) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the logger used for request and encode failures.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// MaxRequestBytes caps the body of POST /executions.
const MaxRequestBytes = 64 << 10

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewHandler builds the router.
func NewHandler(exec Executor, opts ...Option) http.Handler {
	s := &Server{exec: exec, log: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Route("/algorithms", func(r chi.Router) {
		r.Get("/", s.listAlgorithms)
		r.Get("/{id}", s.getAlgorithm)
		r.Get("/{id}/sample", s.sample)
	})
	r.Route("/executions", func(r chi.Router) {
		r.Post("/", s.createExecution)
		r.Get("/", s.listExecutions)
		r.Get("/{id}", s.getExecution)
		r.Delete("/{id}", s.deleteExecution)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// listAlgorithms accepts an optional ?family= filter.
func (s *Server) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	family := step.Family(r.URL.Query().Get("family"))
	out := make([]dispatch.Algorithm, 0, 64)
	for _, a := range dispatch.Catalog() {
		if family == "" || a.Family == family {
			out = append(out, a)
		}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) getAlgorithm(w http.ResponseWriter, r *http.Request) {
	algo, err := dispatch.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, algo)
}

func (s *Server) sample(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := dispatch.Lookup(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	input, err := samples.For(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, input)
}

func (s *Server) createExecution(w http.ResponseWriter, r *http.Request) {
	var req execution.Request
	body := http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
			return
		}
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Algorithm == "" {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "algorithm required"})
		return
	}

	exec, err := s.exec.Execute(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/executions/"+exec.ID)
	s.writeJSON(w, http.StatusCreated, exec)
}

func (s *Server) listExecutions(w http.ResponseWriter, r *http.Request) {
	list, err := s.exec.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) getExecution(w http.ResponseWriter, r *http.Request) {
	exec, err := s.exec.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, exec)
}

func (s *Server) deleteExecution(w http.ResponseWriter, r *http.Request) {
	if err := s.exec.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dispatch.ErrUnknownAlgorithm),
		errors.Is(err, execution.ErrNotFound),
		errors.Is(err, samples.ErrNoSample):
		return http.StatusNotFound
	case errors.Is(err, dispatch.ErrInvalidShape),
		errors.Is(err, execution.ErrInvalidMaxSteps),
		errors.Is(err, sorting.ErrEmptyInput),
		errors.Is(err, sorting.ErrNonPositive),
		errors.Is(err, sorting.ErrRangeTooLarge),
		errors.Is(err, graph.ErrEmptyNodeID),
		errors.Is(err, graph.ErrDuplicateNode),
		errors.Is(err, graph.ErrNodeNotFound),
		errors.Is(err, graph.ErrNegativeWeight),
		errors.Is(err, dynamic.ErrInvalidInput),
		errors.Is(err, strmatch.ErrEmptyPattern):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", "error", err)
	}
}
