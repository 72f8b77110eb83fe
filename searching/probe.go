// SPDX-License-Identifier: MIT

package searching

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Interpolation estimates the target position by linear interpolation
// between arr[l] and arr[r]:
//
//	pos = l + (target-arr[l])·(r-l) / (arr[r]-arr[l])
//
// It continues only while arr[l] ≤ target ≤ arr[r]. When l == r, or when the
// range is flat (arr[l] == arr[r]), the decision is a direct comparison, so
// the formula never divides by zero.
//
// Complexity: O(log log n) on uniformly distributed keys, O(n) worst case.
func Interpolation(numbers []int, target int) ([]step.Search, error) {
	s := newSearcher(numbers, target)
	l, r := 0, len(s.arr)-1

	for l <= r && target >= s.arr[l] && target <= s.arr[r] {
		if l == r || s.arr[l] == s.arr[r] {
			// arr[l] ≤ target ≤ arr[r] with equal ends: only arr[l] can match.
			s.emit(step.Search{
				Type:        step.KindProbe,
				Description: fmt.Sprintf("Range [%d..%d] is flat: check arr[%d] directly", l, r, l),
				Probe:       []int{l},
				Range:       span(l, r),
			})
			s.compare(l, span(l, r))
			if s.arr[l] == target {
				return s.found(l), nil
			}
			break
		}

		pos := interpolate(s.arr[l], s.arr[r], target, l, r)
		s.emit(step.Search{
			Type:        step.KindProbe,
			Description: fmt.Sprintf("pos = %d + (%d-%d)·(%d-%d)/(%d-%d) = %d", l, target, s.arr[l], r, l, s.arr[r], s.arr[l], pos),
			Probe:       []int{pos},
			Range:       span(l, r),
		})
		s.compare(pos, span(l, r))

		if s.arr[pos] == target {
			return s.found(pos), nil
		}
		if s.arr[pos] < target {
			l = pos + 1
			s.emit(step.Search{
				Type:        step.KindMoveRight,
				Description: fmt.Sprintf("arr[%d]=%d < %d: continue in [%d..%d]", pos, s.arr[pos], target, l, r),
				Range:       span(l, r),
			})
		} else {
			r = pos - 1
			s.emit(step.Search{
				Type:        step.KindMoveLeft,
				Description: fmt.Sprintf("arr[%d]=%d > %d: continue in [%d..%d]", pos, s.arr[pos], target, l, r),
				Range:       span(l, r),
			})
		}
	}

	return s.notFound("target outside the probed value range"), nil
}

// interpolate evaluates the position formula in float64 so that value
// differences near the int limits cannot overflow, then clamps it to [l, r].
func interpolate(lv, rv, target, l, r int) int {
	den := float64(rv) - float64(lv)
	if den <= 0 {
		return l
	}
	pos := l + int((float64(target)-float64(lv))/den*float64(r-l))

	return min(max(pos, l), r)
}

// Ternary splits [l, r] at mid1 = l+(r-l)/3 and mid2 = r-(r-l)/3 and keeps
// exactly one of the three disjoint thirds.
//
// Complexity: O(log₃ n) rounds, two comparisons each.
func Ternary(numbers []int, target int) ([]step.Search, error) {
	s := newSearcher(numbers, target)
	l, r := 0, len(s.arr)-1

	for l <= r {
		mid1 := l + (r-l)/3
		mid2 := r - (r-l)/3
		s.emit(step.Search{
			Type:        step.KindCalculateMid,
			Description: fmt.Sprintf("mid1 = %d, mid2 = %d in [%d..%d]", mid1, mid2, l, r),
			Probe:       []int{mid1, mid2},
			Range:       span(l, r),
		})

		s.compare(mid1, span(l, r))
		if s.arr[mid1] == target {
			return s.found(mid1), nil
		}
		s.compare(mid2, span(l, r))
		if s.arr[mid2] == target {
			return s.found(mid2), nil
		}

		switch {
		case target < s.arr[mid1]:
			r = mid1 - 1
			s.emit(step.Search{
				Type:        step.KindMoveLeft,
				Description: fmt.Sprintf("%d < arr[%d]: keep the left third [%d..%d]", target, mid1, l, r),
				Range:       span(l, r),
			})
		case target > s.arr[mid2]:
			l = mid2 + 1
			s.emit(step.Search{
				Type:        step.KindMoveRight,
				Description: fmt.Sprintf("%d > arr[%d]: keep the right third [%d..%d]", target, mid2, l, r),
				Range:       span(l, r),
			})
		default:
			l, r = mid1+1, mid2-1
			s.emit(step.Search{
				Type:        step.KindProbe,
				Description: fmt.Sprintf("arr[%d] < %d < arr[%d]: keep the middle third [%d..%d]", mid1, target, mid2, l, r),
				Range:       span(l, r),
			})
		}
	}

	return s.notFound("search range is empty"), nil
}
