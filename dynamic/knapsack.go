// SPDX-License-Identifier: MIT

package dynamic

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtrace/step"
)

// Knapsack solves 0/1 knapsack:
//
//	dp[i][w] = max(dp[i-1][w], values[i-1] + dp[i-1][w-weights[i-1]])
//
// when item i-1 fits, else dp[i-1][w]. The chosen items are recovered by
// walking i = n..1 and taking item i-1 whenever dp[i][w] != dp[i-1][w].
func Knapsack(weights, values []int, capacity int) ([]step.DP, error) {
	if len(weights) != len(values) {
		return nil, fmt.Errorf("%w: %d weights but %d values", ErrInvalidInput, len(weights), len(values))
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidInput, capacity)
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: item %d has negative weight %d", ErrInvalidInput, i, w)
		}
	}
	n := len(weights)
	f := &filler{table: newTable(n+1, capacity+1)}

	// 1) Row 0: no items, no value.
	for w := 0; w <= capacity; w++ {
		f.fill(0, w, 0, fmt.Sprintf("dp[0][%d] = 0 (no items)", w))
	}

	// 2) Items row by row.
	for i := 1; i <= n; i++ {
		wt, val := weights[i-1], values[i-1]
		for w := 0; w <= capacity; w++ {
			skip := f.table[i-1][w]
			if wt > w {
				f.fill(i, w, skip, fmt.Sprintf("Item %d (w=%d) does not fit in %d: dp[%d][%d] = %s", i-1, wt, w, i, w, skip),
					at(i-1, w))
				continue
			}
			take := step.Dist(val) + f.table[i-1][w-wt]
			f.compare(i, w, fmt.Sprintf("Item %d: skip = %s, take = %d + dp[%d][%d] = %s", i-1, skip, val, i-1, w-wt, take),
				at(i-1, w), at(i-1, w-wt))
			if take > skip {
				f.fill(i, w, take, fmt.Sprintf("dp[%d][%d] = %s (take item %d)", i, w, take, i-1), at(i-1, w-wt))
			} else {
				f.fill(i, w, skip, fmt.Sprintf("dp[%d][%d] = %s (skip item %d)", i, w, skip, i-1), at(i-1, w))
			}
		}
	}

	// 3) Backtrack.
	var chosen []int
	w := capacity
	for i := n; i >= 1; i-- {
		if f.table[i][w] != f.table[i-1][w] {
			chosen = append(chosen, i-1)
			f.backtrack(i, w, fmt.Sprintf("dp[%d][%d] ≠ dp[%d][%d]: take item %d", i, w, i-1, w, i-1))
			w -= weights[i-1]
		} else {
			f.backtrack(i, w, fmt.Sprintf("dp[%d][%d] = dp[%d][%d]: skip item %d", i, w, i-1, w, i-1))
		}
	}
	slices.Sort(chosen)
	if chosen == nil {
		chosen = []int{}
	}

	best := int(f.table[n][capacity])
	return f.complete(best, step.DP{
		Description: fmt.Sprintf("Maximum value %d with items %v", best, chosen),
		Items:       chosen,
	}), nil
}

// SubsetSum decides whether some subset of numbers sums to target using a
// boolean (n+1)×(target+1) table. Result is 1 when one exists, else 0; Items
// holds one witness subset as indices.
func SubsetSum(numbers []int, target int) ([]step.DP, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: negative target %d", ErrInvalidInput, target)
	}
	for i, v := range numbers {
		if v < 0 {
			return nil, fmt.Errorf("%w: numbers[%d] = %d is negative", ErrInvalidInput, i, v)
		}
	}
	n := len(numbers)
	f := &filler{flags: newFlags(n+1, target+1)}

	// 1) Row 0: only the empty sum is reachable.
	for s := 0; s <= target; s++ {
		f.flag(0, s, s == 0, fmt.Sprintf("dp[0][%d] = %t", s, s == 0))
	}

	// 2) Each number either joins the subset or not.
	for i := 1; i <= n; i++ {
		v := numbers[i-1]
		for s := 0; s <= target; s++ {
			without := f.flags[i-1][s]
			if v > s {
				f.flag(i, s, without, fmt.Sprintf("%d > %d: dp[%d][%d] = %t", v, s, i, s, without), at(i-1, s))
				continue
			}
			with := f.flags[i-1][s-v]
			f.compare(i, s, fmt.Sprintf("Sum %d: without %d = %t, with %d = %t", s, v, without, v, with),
				at(i-1, s), at(i-1, s-v))
			if without {
				f.flag(i, s, true, fmt.Sprintf("dp[%d][%d] = true without %d", i, s, v), at(i-1, s))
			} else {
				f.flag(i, s, with, fmt.Sprintf("dp[%d][%d] = %t", i, s, with), at(i-1, s-v))
			}
		}
	}

	if !f.flags[n][target] {
		return f.complete(0, step.DP{
			Description: fmt.Sprintf("No subset sums to %d", target),
			Items:       []int{},
		}), nil
	}

	// 3) Backtrack one witness.
	var chosen []int
	s := target
	for i := n; i >= 1 && s > 0; i-- {
		if f.flags[i-1][s] {
			f.backtrack(i, s, fmt.Sprintf("Sum %d reachable without numbers[%d]", s, i-1))
			continue
		}
		chosen = append(chosen, i-1)
		f.backtrack(i, s, fmt.Sprintf("Take numbers[%d] = %d", i-1, numbers[i-1]))
		s -= numbers[i-1]
	}
	slices.Sort(chosen)
	if chosen == nil {
		chosen = []int{}
	}

	return f.complete(1, step.DP{
		Description: fmt.Sprintf("Subset %v sums to %d", chosen, target),
		Items:       chosen,
	}), nil
}

// CoinChange finds the minimum number of coins (each usable any number of
// times) summing to amount. An unreachable amount keeps step.Inf in its cell
// and is reported as Result -1. Items lists the coins used.
func CoinChange(coins []int, amount int) ([]step.DP, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: negative amount %d", ErrInvalidInput, amount)
	}
	for i, c := range coins {
		if c <= 0 {
			return nil, fmt.Errorf("%w: coins[%d] = %d is not positive", ErrInvalidInput, i, c)
		}
	}
	f := &filler{table: newTable(1, amount+1)}
	last := make([]int, amount+1)

	f.fill(0, 0, 0, "dp[0] = 0 coins")
	for a := 1; a <= amount; a++ {
		best, from := step.Inf, 0
		for _, c := range coins {
			if c > a || f.table[0][a-c].IsInf() {
				continue
			}
			cand := f.table[0][a-c] + 1
			f.compare(0, a, fmt.Sprintf("Coin %d: dp[%d]+1 = %s vs best %s", c, a-c, cand, best), at(0, a-c))
			if cand < best {
				best, from = cand, c
			}
		}
		last[a] = from
		if from == 0 {
			f.fill(0, a, step.Inf, fmt.Sprintf("dp[%d] = ∞ (unreachable)", a))
			continue
		}
		f.fill(0, a, best, fmt.Sprintf("dp[%d] = %s using coin %d", a, best, from), at(0, a-from))
	}

	if f.table[0][amount].IsInf() {
		return f.complete(-1, step.DP{
			Description: fmt.Sprintf("Amount %d cannot be made from %v", amount, coins),
			Items:       []int{},
		}), nil
	}

	used := []int{}
	for a := amount; a > 0; a -= last[a] {
		used = append(used, last[a])
		f.backtrack(0, a, fmt.Sprintf("dp[%d] used coin %d", a, last[a]))
	}
	slices.Sort(used)

	best := int(f.table[0][amount])
	return f.complete(best, step.DP{
		Description: fmt.Sprintf("Minimum %d coins: %v", best, used),
		Items:       used,
	}), nil
}

// RodCutting maximizes revenue for a rod of the given length, where
// prices[k] is the price of a piece of length k+1. Pieces longer than
// len(prices) are not offered. Items lists the piece lengths sold.
func RodCutting(prices []int, length int) ([]step.DP, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidInput, length)
	}
	if length > 0 && len(prices) == 0 {
		return nil, fmt.Errorf("%w: no prices for a rod of length %d", ErrInvalidInput, length)
	}
	for i, p := range prices {
		if p < 0 {
			return nil, fmt.Errorf("%w: prices[%d] = %d is negative", ErrInvalidInput, i, p)
		}
	}
	f := &filler{table: newTable(1, length+1)}
	cut := make([]int, length+1)

	f.fill(0, 0, 0, "dp[0] = 0")
	for l := 1; l <= length; l++ {
		best, piece := step.Dist(-1), 0
		for k := 1; k <= l && k <= len(prices); k++ {
			cand := step.Dist(prices[k-1]) + f.table[0][l-k]
			f.compare(0, l, fmt.Sprintf("Piece %d: %d + dp[%d] = %s vs best %s", k, prices[k-1], l-k, cand, best), at(0, l-k))
			if cand > best {
				best, piece = cand, k
			}
		}
		cut[l] = piece
		f.fill(0, l, best, fmt.Sprintf("dp[%d] = %s (first piece %d)", l, best, piece), at(0, l-piece))
	}

	pieces := []int{}
	for l := length; l > 0; l -= cut[l] {
		pieces = append(pieces, cut[l])
		f.backtrack(0, l, fmt.Sprintf("Cut a piece of length %d", cut[l]))
	}

	best := int(f.table[0][length])
	return f.complete(best, step.DP{
		Description: fmt.Sprintf("Maximum revenue %d with pieces %v", best, pieces),
		Items:       pieces,
	}), nil
}
