// SPDX-License-Identifier: MIT

// Package dynamic renders ten classic dynamic-programming recurrences as
// table-fill traces.
//
// Overview:
//
//	Each algorithm allocates a 1-D (single row) or 2-D table, fills it in a
//	fixed order and, where a solution must be reconstructed, backtracks from
//	the final cell. Every cell is written at most once: candidate values are
//	shown first as KindCompare steps, then the single write is a KindFill step.
//	Backtracking emits KindBacktrack steps that extend Path. The last step is
//	always KindComplete with Result set.
//
// Algorithms and results:
//
//	Fibonacci            F[n]                                   O(n)
//	Knapsack             best value; Items = chosen indices     O(n·W)
//	LCS                  length; Text = subsequence             O(n·m)
//	EditDistance         distance; Operations = edit script     O(n·m)
//	CoinChange           min coins or -1; Items = coins used    O(A·k)
//	MatrixChain          min multiplications; Text = brackets   O(n³)
//	LIS                  length; Items = indices                O(n²)
//	RodCutting           best revenue; Items = piece lengths    O(L·n)
//	SubsetSum            1 or 0; Items = chosen indices         O(n·T)
//	PalindromePartition  min cuts; Parts = palindromes          O(n²)
//
// Tie-breaks:
//
//   - Knapsack keeps the item out when both choices are equal.
//   - LCS backtracks diagonally on a match, else up when up >= left.
//   - EditDistance prefers replace, then insert, then delete.
//   - All minimum/maximum scans keep the first candidate on equal values.
//
// Errors:
//
//   - ErrInvalidInput for negative sizes, non-positive coins or dimensions,
//     mismatched weight/value lengths and Fibonacci indices above MaxFibonacci.
//
// Infeasible outcomes (unreachable amount, no subset) are results, not errors.
package dynamic
