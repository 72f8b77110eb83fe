// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Bubble sorts numbers with bubble sort.
//
// Each pass bubbles the largest unsorted value to position n-1-i and emits one
// KindSorted step for it. A pass without swaps ends the sort early; the
// remaining positions are finalized by the complete step.
//
// Complexity: O(n²) comparisons, O(n) on already-sorted input.
func Bubble(numbers []int) ([]step.Sort, error) {
	s := newSorter(numbers)
	n := len(s.arr)

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			s.compare(j, j+1)
			if s.arr[j] > s.arr[j+1] {
				s.swap(j, j+1)
				swapped = true
			}
		}
		s.markSorted(n - 1 - i)
		if !swapped {
			break
		}
	}

	return s.finish(), nil
}

// Cocktail sorts numbers with bidirectional bubble (cocktail shaker) sort.
// A forward pass finalizes the right boundary, a backward pass the left one.
// The sort stops after any pass that performs no swap.
func Cocktail(numbers []int) ([]step.Sort, error) {
	s := newSorter(numbers)
	start, end := 0, len(s.arr)-1

	for start < end {
		// 1) Forward pass: carry the maximum to end.
		swapped := false
		for j := start; j < end; j++ {
			s.compare(j, j+1)
			if s.arr[j] > s.arr[j+1] {
				s.swap(j, j+1)
				swapped = true
			}
		}
		s.markSorted(end)
		end--
		if !swapped {
			break
		}

		// 2) Backward pass: carry the minimum to start.
		swapped = false
		for j := end; j > start; j-- {
			s.compare(j-1, j)
			if s.arr[j-1] > s.arr[j] {
				s.swap(j-1, j)
				swapped = true
			}
		}
		s.markSorted(start)
		start++
		if !swapped {
			break
		}
	}

	return s.finish(), nil
}

// combShrinkNum / combShrinkDen encode the 1.3 shrink factor in integer math.
const (
	combShrinkNum = 10
	combShrinkDen = 13
)

// Comb sorts numbers with comb sort: bubble passes over a gap that shrinks by
// a factor of 1.3 down to 1. The sort ends after a gap-1 pass without swaps.
func Comb(numbers []int) ([]step.Sort, error) {
	s := newSorter(numbers)
	n := len(s.arr)
	if n < 2 {
		return s.finish(), nil
	}

	gap := n
	for {
		gap = gap * combShrinkNum / combShrinkDen
		if gap < 1 {
			gap = 1
		}
		s.emit(step.Sort{
			Type:        step.KindGap,
			Description: fmt.Sprintf("Comb pass with gap %d", gap),
			Gap:         gap,
		})

		swapped := false
		for i := 0; i+gap < n; i++ {
			s.compare(i, i+gap)
			if s.arr[i] > s.arr[i+gap] {
				s.swap(i, i+gap)
				swapped = true
			}
		}
		if gap == 1 && !swapped {
			break
		}
	}
	s.markAll()

	return s.finish(), nil
}

// Selection sorts numbers with selection sort: position i receives the
// minimum of the unsorted suffix with at most one swap.
func Selection(numbers []int) ([]step.Sort, error) {
	s := newSorter(numbers)
	n := len(s.arr)

	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			s.compare(minIdx, j)
			if s.arr[j] < s.arr[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			s.swap(i, minIdx)
		}
		s.markSorted(i)
	}

	return s.finish(), nil
}
