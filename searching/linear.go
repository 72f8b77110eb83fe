// SPDX-License-Identifier: MIT

package searching

import "github.com/katalvlaran/lvtrace/step"

// Linear scans numbers left to right and stops at the first match.
// It is the only algorithm of the package that accepts unsorted input.
func Linear(numbers []int, target int) ([]step.Search, error) {
	s := newSearcher(numbers, target)
	for i := range s.arr {
		s.compare(i, nil)
		if s.arr[i] == target {
			return s.found(i), nil
		}
	}

	return s.notFound("every element checked"), nil
}
