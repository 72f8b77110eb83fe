// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Quick sorts numbers with quicksort using the Lomuto partition scheme and
// the last element of each range as pivot. Recursion visits (low, p-1)
// before (p+1, high). Single-element ranges are finalized silently: they
// appear in the Sorted set of the next emitted step.
//
// Complexity: O(n log n) expected, O(n²) on sorted input.
func Quick(numbers []int) ([]step.Sort, error) {
	s := newSorter(numbers)
	s.quickSort(0, len(s.arr)-1)

	return s.finish(), nil
}

// quickSort sorts arr[lo..hi].
func (s *sorter) quickSort(lo, hi int) {
	if lo > hi {
		return
	}
	if lo == hi {
		s.sorted[lo] = true
		return
	}

	p := s.partition(lo, hi)
	s.quickSort(lo, p-1)
	s.quickSort(p+1, hi)
}

// partition places arr[hi] at its final position p and returns p.
// Values strictly less than the pivot end up left of p.
func (s *sorter) partition(lo, hi int) int {
	pivot := s.arr[hi]
	span := &step.Span{Low: lo, High: hi}
	s.emit(step.Sort{
		Type:        step.KindPivot,
		Description: fmt.Sprintf("Choose pivot %d at position %d for [%d..%d]", pivot, hi, lo, hi),
		Pivot:       step.Int(hi),
		Range:       span,
	})

	i := lo - 1
	for j := lo; j < hi; j++ {
		s.emit(step.Sort{
			Type:        step.KindCompare,
			Description: fmt.Sprintf("Compare arr[%d]=%d with pivot %d", j, s.arr[j], pivot),
			Indices:     []int{j, hi},
			Pivot:       step.Int(hi),
			Range:       span,
		})
		if s.arr[j] < pivot {
			i++
			if i != j {
				s.swap(i, j)
			}
		}
	}

	p := i + 1
	if p != hi {
		s.swap(p, hi)
	}
	s.markSorted(p)

	return p
}
