// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Insertion sorts numbers with insertion sort. Each key is lifted
// (KindKey), larger predecessors are shifted right (KindShift) and the key is
// written into the gap (KindInsert). Already-sorted input produces no shifts.
func Insertion(numbers []int) ([]step.Sort, error) {
	s := newSorter(numbers)
	for i := 1; i < len(s.arr); i++ {
		s.gappedInsert(i, 1)
	}
	s.markAll()

	return s.finish(), nil
}

// Shell sorts numbers with Shell sort over the gap sequence n/2, n/4, …, 1.
// Every gap runs one gapped insertion pass; the final gap-1 pass is a plain
// insertion sort, which stops placing a key as soon as it is in order.
func Shell(numbers []int) ([]step.Sort, error) {
	s := newSorter(numbers)
	n := len(s.arr)

	for gap := n / 2; gap > 0; gap /= 2 {
		s.emit(step.Sort{
			Type:        step.KindGap,
			Description: fmt.Sprintf("Gapped insertion pass with gap %d", gap),
			Gap:         gap,
		})
		for i := gap; i < n; i++ {
			s.gappedInsert(i, gap)
		}
	}
	s.markAll()

	return s.finish(), nil
}

// gappedInsert inserts arr[i] into the gap-strided run ending at i.
func (s *sorter) gappedInsert(i, gap int) {
	key := s.arr[i]
	s.emit(step.Sort{
		Type:        step.KindKey,
		Description: fmt.Sprintf("Take key %d from position %d", key, i),
		Indices:     []int{i},
		Gap:         gap,
	})

	j := i
	for j >= gap {
		s.compareKey(j-gap, key, gap)
		if s.arr[j-gap] <= key {
			break
		}
		s.arr[j] = s.arr[j-gap]
		s.emit(step.Sort{
			Type:        step.KindShift,
			Description: fmt.Sprintf("Shift %d from position %d to %d", s.arr[j], j-gap, j),
			Indices:     []int{j - gap, j},
			Gap:         gap,
		})
		j -= gap
	}

	s.arr[j] = key
	s.emit(step.Sort{
		Type:        step.KindInsert,
		Description: fmt.Sprintf("Insert key %d at position %d", key, j),
		Indices:     []int{j},
		Gap:         gap,
	})
}
