// SPDX-License-Identifier: MIT

package step

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownFamily is returned when a serialized step carries no known family tag.
var ErrUnknownFamily = errors.New("step: unknown family")

// Step is one immutable snapshot of algorithm state.
// The interface is sealed: only the variants declared in this package implement it.
type Step interface {
	// Kind returns the transition tag.
	Kind() Kind
	// Family returns the engine family that produced the step.
	Family() Family
	// Describe returns the human-readable rationale.
	Describe() string

	sealed()
}

// Trace is the ordered, append-only sequence of steps of one call.
type Trace []Step

// Erase converts a family-typed trace into a Trace.
func Erase[S Step](steps []S) Trace {
	out := make(Trace, len(steps))
	for i, s := range steps {
		out[i] = s
	}

	return out
}

// Last returns the final step, or false for an empty trace.
func (t Trace) Last() (Step, bool) {
	if len(t) == 0 {
		return nil, false
	}

	return t[len(t)-1], true
}

// Completed reports whether the trace ends with a KindComplete step.
func (t Trace) Completed() bool {
	last, ok := t.Last()

	return ok && last.Kind() == KindComplete
}

// Count returns how many steps of kind k the trace holds.
func (t Trace) Count(k Kind) int {
	return Count([]Step(t), k)
}

// Count returns how many steps of kind k appear in steps.
func Count[S Step](steps []S, k Kind) int {
	n := 0
	for _, s := range steps {
		if s.Kind() == k {
			n++
		}
	}

	return n
}

// Last returns the final step of a typed trace. It panics on an empty slice,
// which no engine ever produces.
func Last[S Step](steps []S) S {
	return steps[len(steps)-1]
}

// Recorder accumulates the steps of a single engine call.
// The zero value is ready to use.
type Recorder[S Step] struct {
	steps []S
}

// Add appends s to the trace.
func (r *Recorder[S]) Add(s S) {
	r.steps = append(r.steps, s)
}

// Len returns the number of recorded steps.
func (r *Recorder[S]) Len() int { return len(r.steps) }

// Steps returns the recorded trace. The recorder must not be used afterwards.
func (r *Recorder[S]) Steps() []S { return r.steps }

// UnmarshalJSON decodes a serialized trace, restoring each concrete variant
// from its "family" tag.
func (t *Trace) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	out := make(Trace, 0, len(raws))
	var probe struct {
		Family Family `json:"family"`
	}
	for i, raw := range raws {
		probe.Family = ""
		if err := json.Unmarshal(raw, &probe); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		s, err := decodeVariant(probe.Family, raw)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		out = append(out, s)
	}
	*t = out

	return nil
}

// decodeVariant unmarshals raw into the variant selected by family.
func decodeVariant(family Family, raw json.RawMessage) (Step, error) {
	switch family {
	case FamilySorting:
		var s Sort
		err := json.Unmarshal(raw, &s)
		return s, err
	case FamilySearching:
		var s Search
		err := json.Unmarshal(raw, &s)
		return s, err
	case FamilyGraph:
		var s Graph
		err := json.Unmarshal(raw, &s)
		return s, err
	case FamilyDP:
		var s DP
		err := json.Unmarshal(raw, &s)
		return s, err
	case FamilyString:
		var s String
		err := json.Unmarshal(raw, &s)
		return s, err
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
}

// Span is an inclusive index range [Low, High].
type Span struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Int returns a pointer to v; used for optional index fields.
func Int(v int) *int { return &v }

// CloneInts returns an independent copy of s (nil stays nil).
func CloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}

// CloneIntMatrix deep-copies a 2-D int slice.
func CloneIntMatrix(m [][]int) [][]int {
	if m == nil {
		return nil
	}
	out := make([][]int, len(m))
	for i := range m {
		out[i] = CloneInts(m[i])
	}

	return out
}

// CloneStrings returns an independent copy of s (nil stays nil).
func CloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)

	return out
}
