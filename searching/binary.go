// SPDX-License-Identifier: MIT

package searching

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Binary halves the live range [left, right] around mid = ⌊(left+right)/2⌋.
// Each round emits KindCalculateMid, KindCompare, then KindMoveLeft or
// KindMoveRight unless the midpoint matches.
//
// Complexity: O(log n).
func Binary(numbers []int, target int) ([]step.Search, error) {
	s := newSearcher(numbers, target)

	return s.binary(0, len(s.arr)-1), nil
}

// binary searches arr[left..right] and terminates the trace.
func (s *searcher) binary(left, right int) []step.Search {
	for left <= right {
		mid := (left + right) / 2
		s.emit(step.Search{
			Type:        step.KindCalculateMid,
			Description: fmt.Sprintf("mid = (%d + %d) / 2 = %d", left, right, mid),
			Probe:       []int{mid},
			Range:       span(left, right),
		})
		s.compare(mid, span(left, right))

		if s.arr[mid] == s.target {
			return s.found(mid)
		}
		if s.arr[mid] < s.target {
			left = mid + 1
			s.emit(step.Search{
				Type:        step.KindMoveRight,
				Description: fmt.Sprintf("arr[%d]=%d < %d: continue in [%d..%d]", mid, s.arr[mid], s.target, left, right),
				Range:       span(left, right),
			})
		} else {
			right = mid - 1
			s.emit(step.Search{
				Type:        step.KindMoveLeft,
				Description: fmt.Sprintf("arr[%d]=%d > %d: continue in [%d..%d]", mid, s.arr[mid], s.target, left, right),
				Range:       span(left, right),
			})
		}
	}

	return s.notFound("search range is empty")
}

// Exponential finds a bound by doubling from 1 until arr[bound] ≥ target or
// the bound leaves the array, then runs binary search on
// [bound/2, min(bound, n-1)].
//
// Complexity: O(log i) where i is the target position.
func Exponential(numbers []int, target int) ([]step.Search, error) {
	s := newSearcher(numbers, target)
	n := len(s.arr)
	if n == 0 {
		return s.notFound("array is empty"), nil
	}

	s.compare(0, nil)
	if s.arr[0] == target {
		return s.found(0), nil
	}

	bound := 1
	for bound < n && s.arr[bound] < target {
		s.emit(step.Search{
			Type:        step.KindBound,
			Description: fmt.Sprintf("arr[%d]=%d < %d: double the bound to %d", bound, s.arr[bound], target, bound*2),
			Probe:       []int{bound},
			Bound:       step.Int(bound),
		})
		bound *= 2
	}

	hi := min(bound, n-1)
	s.emit(step.Search{
		Type:        step.KindBound,
		Description: fmt.Sprintf("Bound %d reached: binary search in [%d..%d]", bound, bound/2, hi),
		Bound:       step.Int(bound),
		Range:       span(bound/2, hi),
	})

	return s.binary(bound/2, hi), nil
}
