// SPDX-License-Identifier: MIT

package dynamic

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Fibonacci fills F[0..n] forward from F[0]=0, F[1]=1.
func Fibonacci(n int) ([]step.DP, error) {
	if n < 0 || n > MaxFibonacci {
		return nil, fmt.Errorf("%w: fibonacci index %d outside [0, %d]", ErrInvalidInput, n, MaxFibonacci)
	}
	f := &filler{table: newTable(1, n+1)}

	f.fill(0, 0, 0, "Base case F[0] = 0")
	if n >= 1 {
		f.fill(0, 1, 1, "Base case F[1] = 1")
	}
	for i := 2; i <= n; i++ {
		a, b := f.table[0][i-1], f.table[0][i-2]
		f.fill(0, i, a+b, fmt.Sprintf("F[%d] = F[%d] + F[%d] = %s + %s = %s", i, i-1, i-2, a, b, a+b),
			at(0, i-1), at(0, i-2))
	}

	return f.complete(int(f.table[0][n]), step.DP{
		Description: fmt.Sprintf("F[%d] = %s", n, f.table[0][n]),
	}), nil
}

// LIS finds a longest strictly increasing subsequence with the O(n²)
// formulation: dp[i] is the length of the longest one ending at i. Among
// equal lengths the earliest end index and earliest predecessor win.
func LIS(numbers []int) ([]step.DP, error) {
	n := len(numbers)
	f := &filler{table: newTable(1, n)}
	prev := make([]int, n)

	for i := 0; i < n; i++ {
		best, from := 1, -1
		for j := 0; j < i; j++ {
			if numbers[j] >= numbers[i] {
				continue
			}
			cand := int(f.table[0][j]) + 1
			f.compare(0, i, fmt.Sprintf("%d < %d: dp[%d]+1 = %d vs best %d", numbers[j], numbers[i], j, cand, best), at(0, j))
			if cand > best {
				best, from = cand, j
			}
		}
		prev[i] = from
		var deps []step.Cell
		if from >= 0 {
			deps = []step.Cell{at(0, from)}
		}
		f.fill(0, i, step.Dist(best), fmt.Sprintf("dp[%d] = %d", i, best), deps...)
	}

	// Backtrack from the first index holding the maximum.
	end, length := -1, 0
	for i := 0; i < n; i++ {
		if int(f.table[0][i]) > length {
			end, length = i, int(f.table[0][i])
		}
	}
	indices := make([]int, length)
	for i, k := end, length-1; i >= 0; i, k = prev[i], k-1 {
		indices[k] = i
		f.backtrack(0, i, fmt.Sprintf("Take numbers[%d] = %d", i, numbers[i]))
	}
	values := make([]int, length)
	for k, i := range indices {
		values[k] = numbers[i]
	}

	return f.complete(length, step.DP{
		Description: fmt.Sprintf("Longest increasing subsequence has length %d: %v", length, values),
		Items:       indices,
	}), nil
}
