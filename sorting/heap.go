// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Heap sorts numbers with heap sort.
//
//  1. Build a max-heap by sifting down every internal node from ⌊n/2⌋-1 to 0.
//  2. Repeatedly swap the root with the last unsorted element, finalize that
//     position and sift the new root down the shrunken heap.
//
// Complexity: O(n log n) time, O(1) extra space.
func Heap(numbers []int) ([]step.Sort, error) {
	s := newSorter(numbers)
	n := len(s.arr)

	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(n, i)
	}

	for end := n - 1; end > 0; end-- {
		s.swap(0, end)
		s.markSorted(end)
		s.siftDown(end, 0)
	}
	if n > 0 {
		s.markSorted(0)
	}

	return s.finish(), nil
}

// siftDown restores the max-heap property below root within arr[0..size-1].
func (s *sorter) siftDown(size, root int) {
	s.emit(step.Sort{
		Type:        step.KindHeapify,
		Description: fmt.Sprintf("Heapify subtree rooted at %d (heap size %d)", root, size),
		Indices:     []int{root},
		Range:       &step.Span{Low: 0, High: size - 1},
	})

	for {
		largest := root
		left, right := 2*root+1, 2*root+2
		if left < size {
			s.compare(left, largest)
			if s.arr[left] > s.arr[largest] {
				largest = left
			}
		}
		if right < size {
			s.compare(right, largest)
			if s.arr[right] > s.arr[largest] {
				largest = right
			}
		}
		if largest == root {
			return
		}
		s.swap(root, largest)
		root = largest
	}
}
