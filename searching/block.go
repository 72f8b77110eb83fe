// SPDX-License-Identifier: MIT

package searching

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtrace/step"
)

// Jump probes the last element of consecutive blocks of ⌊√n⌋ elements until
// it reaches a block whose last element is ≥ target, then scans that block
// linearly. A block start beyond the array end ends the search as not-found.
//
// Complexity: O(√n).
func Jump(numbers []int, target int) ([]step.Search, error) {
	s := newSearcher(numbers, target)
	n := len(s.arr)
	if n == 0 {
		return s.notFound("array is empty"), nil
	}

	block := int(math.Sqrt(float64(n)))
	prev, next := 0, block
	for {
		last := min(next, n) - 1
		s.emit(step.Search{
			Type:        step.KindJump,
			Description: fmt.Sprintf("Probe block end arr[%d]=%d", last, s.arr[last]),
			Probe:       []int{last},
			Range:       span(prev, last),
			Bound:       step.Int(next),
		})
		if s.arr[last] >= target {
			break
		}
		prev = next
		next += block
		if prev >= n {
			return s.notFound(fmt.Sprintf("next block starts at %d, past the end", prev)), nil
		}
	}

	end := min(next, n) - 1
	for i := prev; i <= end; i++ {
		s.compare(i, span(prev, end))
		if s.arr[i] == target {
			return s.found(i), nil
		}
		if s.arr[i] > target {
			break
		}
	}

	return s.notFound(fmt.Sprintf("block [%d..%d] does not contain it", prev, end)), nil
}

// Fibonacci eliminates ranges using consecutive Fibonacci numbers as offsets.
//
//  1. Find the smallest Fibonacci number fib ≥ n (with fib1, fib2 its predecessors).
//  2. While fib > 1 probe i = min(offset+fib2, n-1): move the window right
//     by one Fibonacci step when arr[i] < target, left by two when greater.
//  3. A remaining single candidate at offset+1 is checked directly.
//
// Complexity: O(log n).
func Fibonacci(numbers []int, target int) ([]step.Search, error) {
	s := newSearcher(numbers, target)
	n := len(s.arr)

	fib2, fib1 := 0, 1
	fib := fib2 + fib1
	for fib < n {
		fib2, fib1 = fib1, fib
		fib = fib2 + fib1
	}
	s.emit(step.Search{
		Type:        step.KindBound,
		Description: fmt.Sprintf("Smallest Fibonacci number ≥ %d is %d", n, fib),
		Bound:       step.Int(fib),
	})

	offset := -1
	for fib > 1 {
		i := min(offset+fib2, n-1)
		s.compare(i, span(offset+1, n-1))

		switch {
		case s.arr[i] < target:
			fib = fib1
			fib1 = fib2
			fib2 = fib - fib1
			offset = i
			s.emit(step.Search{
				Type:        step.KindMoveRight,
				Description: fmt.Sprintf("arr[%d]=%d < %d: offset moves to %d, fib=%d", i, s.arr[i], target, offset, fib),
				Range:       span(offset+1, n-1),
				Bound:       step.Int(fib),
			})
		case s.arr[i] > target:
			fib = fib2
			fib1 -= fib2
			fib2 = fib - fib1
			s.emit(step.Search{
				Type:        step.KindMoveLeft,
				Description: fmt.Sprintf("arr[%d]=%d > %d: fib shrinks to %d", i, s.arr[i], target, fib),
				Range:       span(offset+1, n-1),
				Bound:       step.Int(fib),
			})
		default:
			return s.found(i), nil
		}
	}

	if fib1 == 1 && offset+1 < n {
		s.compare(offset+1, nil)
		if s.arr[offset+1] == target {
			return s.found(offset + 1), nil
		}
	}

	return s.notFound("Fibonacci range exhausted"), nil
}
