// SPDX-License-Identifier: MIT

package execution

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/lvtrace/step"
)

// Sentinel errors.
var (
	ErrNotFound        = errors.New("execution: not found")
	ErrInvalidMaxSteps = errors.New("execution: maxSteps must be >= 0")
	ErrEmptyID         = errors.New("execution: empty id")
)

// Execution is one stored algorithm run.
type Execution struct {
	ID        string         `json:"id"`
	Algorithm string         `json:"algorithm"`
	Family    step.Family    `json:"family"`
	Input     map[string]any `json:"input"`
	Steps     step.Trace     `json:"steps"`
	// TotalSteps counts the steps the engine produced before truncation.
	TotalSteps int       `json:"totalSteps"`
	Truncated  bool      `json:"truncated"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Summary is the listing view of an Execution, without input or steps.
type Summary struct {
	ID         string      `json:"id"`
	Algorithm  string      `json:"algorithm"`
	Family     step.Family `json:"family"`
	TotalSteps int         `json:"totalSteps"`
	Truncated  bool        `json:"truncated"`
	Completed  bool        `json:"completed"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Summary returns the listing view of e.
func (e *Execution) Summary() Summary {
	return Summary{
		ID:         e.ID,
		Algorithm:  e.Algorithm,
		Family:     e.Family,
		TotalSteps: e.TotalSteps,
		Truncated:  e.Truncated,
		Completed:  e.Completed,
		CreatedAt:  e.CreatedAt,
	}
}

// Store persists executions. Implementations are safe for concurrent use.
type Store interface {
	Create(ctx context.Context, e *Execution) error
	Get(ctx context.Context, id string) (*Execution, error)
	Delete(ctx context.Context, id string) error
	// List returns live executions ordered by creation time.
	List(ctx context.Context) ([]Summary, error)
}

// Truncate keeps at most limit leading steps of trace and reports whether any
// were dropped. limit <= 0 means no limit.
func Truncate(trace step.Trace, limit int) (step.Trace, bool) {
	if limit <= 0 || len(trace) <= limit {
		return trace, false
	}

	return trace[:limit:limit], true
}
