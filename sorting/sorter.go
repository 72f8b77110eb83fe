// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Sentinel errors for sorting preconditions.
var (
	// ErrEmptyInput indicates a min/max-dependent sort received no numbers.
	ErrEmptyInput = errors.New("sorting: input array is empty")

	// ErrNonPositive indicates radix sort received a value ≤ 0.
	ErrNonPositive = errors.New("sorting: radix sort requires positive integers")

	// ErrRangeTooLarge indicates counting sort would allocate more than MaxCountingRange counters.
	ErrRangeTooLarge = errors.New("sorting: value range too large for counting sort")
)

// MaxCountingRange bounds the count array of counting sort (max-min+1).
// Every accumulate step snapshots the count array, so the trace grows with
// the square of the range.
const MaxCountingRange = 1 << 10

// Func is the common signature of every sorting algorithm.
type Func func(numbers []int) ([]step.Sort, error)

// sorter holds the mutable state of a single sorting call.
type sorter struct {
	arr    []int                    // private working copy
	sorted []bool                   // finalized positions
	rec    step.Recorder[step.Sort] // trace sink
}

// newSorter copies numbers into a fresh working array.
func newSorter(numbers []int) *sorter {
	arr := make([]int, len(numbers))
	copy(arr, numbers)

	return &sorter{
		arr:    arr,
		sorted: make([]bool, len(arr)),
	}
}

// emit snapshots the working state into st and records it.
// Aux and Buckets are copied here, so callers may pass live slices.
func (s *sorter) emit(st step.Sort) {
	st.Array = step.CloneInts(s.arr)
	st.Sorted = s.sortedIndices()
	st.Aux = step.CloneInts(st.Aux)
	st.Buckets = step.CloneIntMatrix(st.Buckets)
	s.rec.Add(st)
}

// sortedIndices lists finalized positions in ascending order.
func (s *sorter) sortedIndices() []int {
	out := make([]int, 0, len(s.arr))
	for i, ok := range s.sorted {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// compare records an ordering decision between positions i and j.
func (s *sorter) compare(i, j int) {
	s.emit(step.Sort{
		Type:        step.KindCompare,
		Description: fmt.Sprintf("Compare arr[%d]=%d with arr[%d]=%d", i, s.arr[i], j, s.arr[j]),
		Indices:     []int{i, j},
	})
}

// compareKey records an ordering decision between position i and a held key.
func (s *sorter) compareKey(i, key, gap int) {
	s.emit(step.Sort{
		Type:        step.KindCompare,
		Description: fmt.Sprintf("Compare arr[%d]=%d with key %d", i, s.arr[i], key),
		Indices:     []int{i},
		Gap:         gap,
	})
}

// swap exchanges positions i and j and records the write.
func (s *sorter) swap(i, j int) {
	s.arr[i], s.arr[j] = s.arr[j], s.arr[i]
	s.emit(step.Sort{
		Type:        step.KindSwap,
		Description: fmt.Sprintf("Swap arr[%d] and arr[%d] → %d, %d", i, j, s.arr[i], s.arr[j]),
		Indices:     []int{i, j},
	})
}

// markSorted finalizes position i and emits a sorted boundary step.
func (s *sorter) markSorted(i int) {
	s.sorted[i] = true
	s.emit(step.Sort{
		Type:        step.KindSorted,
		Description: fmt.Sprintf("Position %d holds its final value %d", i, s.arr[i]),
		Indices:     []int{i},
	})
}

// markAll emits a sorted boundary step for every position not yet finalized.
func (s *sorter) markAll() {
	for i, ok := range s.sorted {
		if !ok {
			s.markSorted(i)
		}
	}
}

// finish finalizes every position and appends the complete step.
func (s *sorter) finish() []step.Sort {
	for i := range s.sorted {
		s.sorted[i] = true
	}
	s.emit(step.Sort{
		Type:        step.KindComplete,
		Description: fmt.Sprintf("Array sorted: %v", s.arr),
	})

	return s.rec.Steps()
}

// minMax returns the extreme values of a non-empty slice.
func minMax(a []int) (lo, hi int) {
	lo, hi = a[0], a[0]
	for _, v := range a[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
