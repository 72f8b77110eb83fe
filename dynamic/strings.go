// SPDX-License-Identifier: MIT

package dynamic

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtrace/step"
)

// LCS computes a longest common subsequence of a and b (compared by rune).
func LCS(a, b string) ([]step.DP, error) {
	x, y := []rune(a), []rune(b)
	m, n := len(x), len(y)
	f := &filler{table: newTable(m+1, n+1)}

	// 1) Empty-prefix border.
	for j := 0; j <= n; j++ {
		f.fill(0, j, 0, fmt.Sprintf("dp[0][%d] = 0", j))
	}
	for i := 1; i <= m; i++ {
		f.fill(i, 0, 0, fmt.Sprintf("dp[%d][0] = 0", i))
	}

	// 2) Match extends the diagonal, otherwise carry the larger neighbour.
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if x[i-1] == y[j-1] {
				v := f.table[i-1][j-1] + 1
				f.fill(i, j, v, fmt.Sprintf("'%c' = '%c': dp[%d][%d] = %s", x[i-1], y[j-1], i, j, v), at(i-1, j-1))
				continue
			}
			up, left := f.table[i-1][j], f.table[i][j-1]
			f.compare(i, j, fmt.Sprintf("'%c' ≠ '%c': up = %s, left = %s", x[i-1], y[j-1], up, left),
				at(i-1, j), at(i, j-1))
			if up >= left {
				f.fill(i, j, up, fmt.Sprintf("dp[%d][%d] = %s from above", i, j, up), at(i-1, j))
			} else {
				f.fill(i, j, left, fmt.Sprintf("dp[%d][%d] = %s from the left", i, j, left), at(i, j-1))
			}
		}
	}

	// 3) Backtrack: diagonal on match, else up when up >= left.
	var out []rune
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case x[i-1] == y[j-1]:
			out = append(out, x[i-1])
			f.backtrack(i, j, fmt.Sprintf("Match '%c'", x[i-1]))
			i, j = i-1, j-1
		case f.table[i-1][j] >= f.table[i][j-1]:
			f.backtrack(i, j, "Move up")
			i--
		default:
			f.backtrack(i, j, "Move left")
			j--
		}
	}
	slices.Reverse(out)

	length := int(f.table[m][n])
	return f.complete(length, step.DP{
		Description: fmt.Sprintf("LCS length %d: %q", length, string(out)),
		Text:        string(out),
	}), nil
}

// EditDistance computes the Levenshtein distance from a to b with unit
// costs. On equal costs replace wins over insert, and insert over delete.
// Operations is the forward edit script including "keep" entries.
func EditDistance(a, b string) ([]step.DP, error) {
	x, y := []rune(a), []rune(b)
	m, n := len(x), len(y)
	f := &filler{table: newTable(m+1, n+1)}

	// 1) Borders: i deletions, j insertions.
	for j := 0; j <= n; j++ {
		f.fill(0, j, step.Dist(j), fmt.Sprintf("dp[0][%d] = %d (insert %d)", j, j, j))
	}
	for i := 1; i <= m; i++ {
		f.fill(i, 0, step.Dist(i), fmt.Sprintf("dp[%d][0] = %d (delete %d)", i, i, i))
	}

	// 2) Interior.
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if x[i-1] == y[j-1] {
				v := f.table[i-1][j-1]
				f.fill(i, j, v, fmt.Sprintf("'%c' = '%c': dp[%d][%d] = %s", x[i-1], y[j-1], i, j, v), at(i-1, j-1))
				continue
			}
			replace := f.table[i-1][j-1] + 1
			insert := f.table[i][j-1] + 1
			del := f.table[i-1][j] + 1
			f.compare(i, j, fmt.Sprintf("replace = %s, insert = %s, delete = %s", replace, insert, del),
				at(i-1, j-1), at(i, j-1), at(i-1, j))
			switch {
			case replace <= insert && replace <= del:
				f.fill(i, j, replace, fmt.Sprintf("dp[%d][%d] = %s (replace '%c' → '%c')", i, j, replace, x[i-1], y[j-1]), at(i-1, j-1))
			case insert <= del:
				f.fill(i, j, insert, fmt.Sprintf("dp[%d][%d] = %s (insert '%c')", i, j, insert, y[j-1]), at(i, j-1))
			default:
				f.fill(i, j, del, fmt.Sprintf("dp[%d][%d] = %s (delete '%c')", i, j, del, x[i-1]), at(i-1, j))
			}
		}
	}

	// 3) Backtrack with the same preference order.
	var ops []string
	for i, j := m, n; i > 0 || j > 0; {
		cur := f.table[i][j]
		switch {
		case i > 0 && j > 0 && x[i-1] == y[j-1] && cur == f.table[i-1][j-1]:
			ops = append(ops, fmt.Sprintf("keep '%c'", x[i-1]))
			f.backtrack(i, j, ops[len(ops)-1])
			i, j = i-1, j-1
		case i > 0 && j > 0 && cur == f.table[i-1][j-1]+1:
			ops = append(ops, fmt.Sprintf("replace '%c' with '%c'", x[i-1], y[j-1]))
			f.backtrack(i, j, ops[len(ops)-1])
			i, j = i-1, j-1
		case j > 0 && cur == f.table[i][j-1]+1:
			ops = append(ops, fmt.Sprintf("insert '%c'", y[j-1]))
			f.backtrack(i, j, ops[len(ops)-1])
			j--
		default:
			ops = append(ops, fmt.Sprintf("delete '%c'", x[i-1]))
			f.backtrack(i, j, ops[len(ops)-1])
			i--
		}
	}
	slices.Reverse(ops)
	if ops == nil {
		ops = []string{}
	}

	d := int(f.table[m][n])
	return f.complete(d, step.DP{
		Description: fmt.Sprintf("Edit distance %q → %q = %d", a, b, d),
		Operations:  ops,
	}), nil
}

// PalindromePartition finds the minimum number of cuts splitting s into
// palindromes. The palindrome table (Flags) is built first by expanding around
// every centre; then a single row (Table) holds cut[i], the minimum cuts for
// the prefix ending at i.
func PalindromePartition(s string) ([]step.DP, error) {
	r := []rune(s)
	n := len(r)
	f := &filler{flags: newFlags(n, n), table: newTable(1, n)}

	// 1) Palindrome table by interval expansion. Each (l, r) belongs to one centre.
	for c := 0; c < 2*n-1; c++ {
		lo, hi := c/2, c/2+c%2
		for lo >= 0 && hi < n && r[lo] == r[hi] {
			var deps []step.Cell
			if hi-lo >= 2 {
				deps = []step.Cell{at(lo+1, hi-1)}
			}
			f.flag(lo, hi, true, fmt.Sprintf("%q is a palindrome", string(r[lo:hi+1])), deps...)
			lo, hi = lo-1, hi+1
		}
	}

	// 2) Minimum cuts over prefixes.
	start := make([]int, n)
	for i := 0; i < n; i++ {
		if f.flags[0][i] {
			f.fill(0, i, 0, fmt.Sprintf("%q is a palindrome: cut[%d] = 0", string(r[:i+1]), i), at(0, i))
			continue
		}
		best, from := step.Inf, -1
		for j := 1; j <= i; j++ {
			if !f.flags[j][i] {
				continue
			}
			cand := f.table[0][j-1] + 1
			f.compare(0, i, fmt.Sprintf("%q palindrome: cut[%d]+1 = %s vs best %s", string(r[j:i+1]), j-1, cand, best),
				at(0, j-1), at(j, i))
			if cand < best {
				best, from = cand, j
			}
		}
		start[i] = from
		f.fill(0, i, best, fmt.Sprintf("cut[%d] = %s (last part starts at %d)", i, best, from), at(0, from-1))
	}

	if n == 0 {
		return f.complete(0, step.DP{Description: "Empty string needs no cuts", Parts: []string{}}), nil
	}

	// 3) Recover the parts right to left.
	var parts []string
	for i := n - 1; i >= 0; {
		j := 0
		if !f.flags[0][i] {
			j = start[i]
		}
		parts = append(parts, string(r[j:i+1]))
		f.backtrack(0, i, fmt.Sprintf("Part %q", string(r[j:i+1])))
		i = j - 1
	}
	slices.Reverse(parts)

	cuts := int(f.table[0][n-1])
	return f.complete(cuts, step.DP{
		Description: fmt.Sprintf("Minimum %d cuts: %v", cuts, parts),
		Parts:       parts,
	}), nil
}
