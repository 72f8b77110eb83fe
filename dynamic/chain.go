// SPDX-License-Identifier: MIT

package dynamic

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// MatrixChain finds the cheapest parenthesization of the product
// A1·A2·…·An where Ai is dims[i-1]×dims[i]. dp[i][j] is the minimum scalar
// multiplications for Ai+1..Aj+1 (0-based); cells below the diagonal are
// never written. Text carries the parenthesization.
func MatrixChain(dims []int) ([]step.DP, error) {
	if len(dims) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 dimensions, got %d", ErrInvalidInput, len(dims))
	}
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("%w: dims[%d] = %d is not positive", ErrInvalidInput, i, d)
		}
	}
	n := len(dims) - 1
	f := &filler{table: newTable(n, n)}
	split := make([][]int, n)
	for i := range split {
		split[i] = make([]int, n)
	}

	// 1) Single matrices cost nothing.
	for i := 0; i < n; i++ {
		f.fill(i, i, 0, fmt.Sprintf("A%d alone: 0", i+1))
	}

	// 2) Chains of length 2..n, every split point.
	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			best, cut := step.Inf, -1
			for k := i; k < j; k++ {
				cost := f.table[i][k] + f.table[k+1][j] + step.Dist(dims[i]*dims[k+1]*dims[j+1])
				f.compare(i, j, fmt.Sprintf("Split after A%d: %s + %s + %d·%d·%d = %s",
					k+1, f.table[i][k], f.table[k+1][j], dims[i], dims[k+1], dims[j+1], cost),
					at(i, k), at(k+1, j))
				if cost < best {
					best, cut = cost, k
				}
			}
			split[i][j] = cut
			f.fill(i, j, best, fmt.Sprintf("dp[%d][%d] = %s (split after A%d)", i, j, best, cut+1),
				at(i, cut), at(cut+1, j))
		}
	}

	text := f.brackets(split, 0, n-1)
	cost := int(f.table[0][n-1])
	return f.complete(cost, step.DP{
		Description: fmt.Sprintf("Minimum cost %d: %s", cost, text),
		Text:        text,
	}), nil
}

// brackets renders the optimal parenthesization of Ai..Aj, recording a
// backtrack step for every chain it splits.
func (f *filler) brackets(split [][]int, i, j int) string {
	if i == j {
		return fmt.Sprintf("A%d", i+1)
	}
	k := split[i][j]
	f.backtrack(i, j, fmt.Sprintf("Split A%d..A%d after A%d", i+1, j+1, k+1))
	return "(" + f.brackets(split, i, k) + f.brackets(split, k+1, j) + ")"
}
