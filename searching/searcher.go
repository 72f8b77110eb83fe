// SPDX-License-Identifier: MIT

package searching

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Func is the common signature of every search algorithm.
type Func func(numbers []int, target int) ([]step.Search, error)

// searcher holds the state of a single search call.
type searcher struct {
	arr    []int
	target int
	rec    step.Recorder[step.Search]
}

// newSearcher copies numbers so that later caller mutation cannot reach the trace.
func newSearcher(numbers []int, target int) *searcher {
	return &searcher{arr: step.CloneInts(numbers), target: target}
}

// emit fills the shared snapshot fields and records st.
func (s *searcher) emit(st step.Search) {
	st.Array = step.CloneInts(s.arr)
	st.Target = s.target
	st.Probe = step.CloneInts(st.Probe)
	s.rec.Add(st)
}

// compare records an equality/ordering check of arr[i] against the target.
func (s *searcher) compare(i int, span *step.Span) {
	s.emit(step.Search{
		Type:        step.KindCompare,
		Description: fmt.Sprintf("Compare arr[%d]=%d with target %d", i, s.arr[i], s.target),
		Probe:       []int{i},
		Range:       span,
	})
}

// found records a hit at i and completes the trace.
func (s *searcher) found(i int) []step.Search {
	s.emit(step.Search{
		Type:        step.KindFound,
		Description: fmt.Sprintf("Found target %d at index %d", s.target, i),
		Probe:       []int{i},
		Result:      step.Int(i),
	})

	return s.complete(i)
}

// notFound records the miss and completes the trace.
func (s *searcher) notFound(reason string) []step.Search {
	s.emit(step.Search{
		Type:        step.KindNotFound,
		Description: fmt.Sprintf("Target %d not found: %s", s.target, reason),
		Result:      step.Int(-1),
	})

	return s.complete(-1)
}

// complete appends the terminal step with the canonical result.
func (s *searcher) complete(result int) []step.Search {
	desc := fmt.Sprintf("Search finished: target %d at index %d", s.target, result)
	if result < 0 {
		desc = fmt.Sprintf("Search finished: target %d is absent", s.target)
	}
	s.emit(step.Search{
		Type:        step.KindComplete,
		Description: desc,
		Result:      step.Int(result),
	})

	return s.rec.Steps()
}

// span is shorthand for an inclusive range pointer.
func span(lo, hi int) *step.Span {
	return &step.Span{Low: lo, High: hi}
}
