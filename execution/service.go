// SPDX-License-Identifier: MIT

package execution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvtrace/dispatch"
	"github.com/katalvlaran/lvtrace/internal/logging"
	"github.com/katalvlaran/lvtrace/internal/metrics"
)

// Request asks the Service to run one algorithm.
type Request struct {
	Algorithm string         `json:"algorithm"`
	Input     map[string]any `json:"input"`
	// MaxSteps overrides the service default when positive.
	MaxSteps int `json:"maxSteps,omitempty"`
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger. Panics on nil.
func WithLogger(log *slog.Logger) ServiceOption {
	if log == nil {
		panic("execution: WithLogger(nil)")
	}
	return func(s *Service) { s.log = log }
}

// WithMetrics records every execution on m. Panics on nil.
func WithMetrics(m *metrics.Recorder) ServiceOption {
	if m == nil {
		panic("execution: WithMetrics(nil)")
	}
	return func(s *Service) { s.metrics = m }
}

// WithMaxSteps sets the default trace budget. Zero means unlimited.
// Panics on a negative value.
func WithMaxSteps(n int) ServiceOption {
	if n < 0 {
		panic("execution: WithMaxSteps(negative)")
	}
	return func(s *Service) { s.maxSteps = n }
}

// WithServiceClock replaces time.Now for CreatedAt stamps. Panics on nil.
func WithServiceClock(now func() time.Time) ServiceOption {
	if now == nil {
		panic("execution: WithServiceClock(nil)")
	}
	return func(s *Service) { s.now = now }
}

// Service runs algorithms and stores their traces.
type Service struct {
	store    Store
	log      *slog.Logger
	metrics  *metrics.Recorder
	maxSteps int
	now      func() time.Time
}

// NewService returns a Service backed by store.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store: store,
		log:   logging.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Execute runs req, truncates the trace to the effective budget and stores
// the result.
func (s *Service) Execute(ctx context.Context, req Request) (*Execution, error) {
	// 1) Validate the request against the catalog.
	if req.MaxSteps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxSteps, req.MaxSteps)
	}
	algo, err := dispatch.Lookup(req.Algorithm)
	if err != nil {
		// The error names the requested id; the label stays fixed so that
		// arbitrary ids cannot create new series.
		s.reject(metrics.UnknownAlgorithm, err)
		return nil, err
	}

	// 2) Run to completion.
	started := time.Now()
	trace, err := dispatch.Run(ctx, algo.ID, req.Input)
	took := time.Since(started)
	if err != nil {
		s.reject(algo.ID, err)
		return nil, err
	}

	// 3) Apply the step budget after the fact.
	budget := s.maxSteps
	if req.MaxSteps > 0 {
		budget = req.MaxSteps
	}
	visible, truncated := Truncate(trace, budget)

	exec := &Execution{
		ID:         uuid.NewString(),
		Algorithm:  algo.ID,
		Family:     algo.Family,
		Input:      req.Input,
		Steps:      visible,
		TotalSteps: len(trace),
		Truncated:  truncated,
		Completed:  !truncated && trace.Completed(),
		CreatedAt:  s.now().UTC(),
	}

	// 4) Persist.
	if err := s.store.Create(ctx, exec); err != nil {
		s.log.Error("store execution", "algorithm", algo.ID, "error", err)
		return nil, err
	}

	outcome := metrics.OutcomeCompleted
	switch {
	case truncated:
		outcome = metrics.OutcomeTruncated
	case !exec.Completed:
		outcome = metrics.OutcomeAnomaly
	}
	if s.metrics != nil {
		s.metrics.Observe(algo.ID, string(algo.Family), outcome, len(trace), took)
	}
	s.log.Info("execution stored",
		"id", exec.ID,
		"algorithm", algo.ID,
		"steps", len(trace),
		"outcome", outcome,
		"took", took,
	)

	return exec, nil
}

func (s *Service) reject(algorithm string, err error) {
	if s.metrics != nil {
		s.metrics.Reject(algorithm)
	}
	s.log.Warn("execution rejected", "algorithm", algorithm, "error", err)
}

// Get returns a stored execution.
func (s *Service) Get(ctx context.Context, id string) (*Execution, error) {
	return s.store.Get(ctx, id)
}

// Delete removes a stored execution.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// List returns summaries of live executions, oldest first.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.store.List(ctx)
}
