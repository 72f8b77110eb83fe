// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Merge sorts numbers with top-down merge sort.
//
// For every segment [lo..hi] with more than one element the trace shows
// KindDivide, KindSplit at the midpoint, the two recursive halves, then one
// KindCompare per merge decision, one KindMerge per write and a closing
// KindMerged. The merge is stable: on equal values the left run wins. Once
// the full array is merged every position is marked sorted.
//
// Complexity: O(n log n) comparisons, O(n) auxiliary space per merge.
func Merge(numbers []int) ([]step.Sort, error) {
	s := newSorter(numbers)
	s.mergeSort(0, len(s.arr)-1)
	s.markAll()

	return s.finish(), nil
}

// mergeSort sorts arr[lo..hi] recursively.
func (s *sorter) mergeSort(lo, hi int) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2

	s.emit(step.Sort{
		Type:        step.KindDivide,
		Description: fmt.Sprintf("Divide segment [%d..%d]", lo, hi),
		Range:       &step.Span{Low: lo, High: hi},
	})
	s.emit(step.Sort{
		Type:        step.KindSplit,
		Description: fmt.Sprintf("Split into [%d..%d] and [%d..%d]", lo, mid, mid+1, hi),
		Indices:     []int{mid},
		Range:       &step.Span{Low: lo, High: hi},
	})

	s.mergeSort(lo, mid)
	s.mergeSort(mid+1, hi)
	s.merge(lo, mid, hi)
}

// merge combines the sorted runs arr[lo..mid] and arr[mid+1..hi].
func (s *sorter) merge(lo, mid, hi int) {
	left := step.CloneInts(s.arr[lo : mid+1])
	right := step.CloneInts(s.arr[mid+1 : hi+1])
	span := &step.Span{Low: lo, High: hi}

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		s.emit(step.Sort{
			Type:        step.KindCompare,
			Description: fmt.Sprintf("Compare left run value %d with right run value %d", left[i], right[j]),
			Indices:     []int{k},
			Range:       span,
		})
		if left[i] <= right[j] {
			s.write(k, left[i], "left", span)
			i++
		} else {
			s.write(k, right[j], "right", span)
			j++
		}
		k++
	}
	for ; i < len(left); i++ {
		s.write(k, left[i], "left", span)
		k++
	}
	for ; j < len(right); j++ {
		s.write(k, right[j], "right", span)
		k++
	}

	s.emit(step.Sort{
		Type:        step.KindMerged,
		Description: fmt.Sprintf("Segment [%d..%d] merged", lo, hi),
		Range:       span,
	})
}

// write stores v at position k as part of a merge.
func (s *sorter) write(k, v int, run string, span *step.Span) {
	s.arr[k] = v
	s.emit(step.Sort{
		Type:        step.KindMerge,
		Description: fmt.Sprintf("Write %d from the %s run to position %d", v, run, k),
		Indices:     []int{k},
		Range:       span,
	})
}
