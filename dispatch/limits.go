// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"
	"unicode/utf8"
)

// Input limits. Every step snapshots the full working state, so trace memory
// grows with the step count times the state size; these caps keep a single
// run at visualization scale. Oversize input fails with ErrInvalidShape.
const (
	// MaxArrayLength bounds sorting, searching, LIS and subset-sum arrays and
	// the coin and price lists.
	MaxArrayLength = 128

	// MaxNodes and MaxEdges bound graph inputs.
	MaxNodes = 16
	MaxEdges = 128

	// MaxTableCells bounds rows×cols of the knapsack, subset-sum, LCS and
	// edit-distance tables.
	MaxTableCells = 1024

	// MaxAmount bounds the coin-change amount and the rod length.
	MaxAmount = 128

	// MaxMatrices bounds the matrix-chain length (dimensions-1).
	MaxMatrices = 16

	// MaxPalindromeLength bounds the palindrome-partition text in runes.
	MaxPalindromeLength = 64

	// MaxTextLength bounds texts and patterns in bytes; MaxPatterns bounds the
	// multi-pattern list.
	MaxTextLength = 256
	MaxPatterns   = 8
)

// bounded is implemented by argument shapes that carry size limits.
type bounded interface {
	bounds() error
}

func tooLarge(what string, got, limit int) error {
	return fmt.Errorf("%w: %s %d exceeds limit %d", ErrInvalidShape, what, got, limit)
}

func checkLen(what string, n, limit int) error {
	if n > limit {
		return tooLarge(what, n, limit)
	}
	return nil
}

// checkCells bounds a rows×cols table without overflowing the product.
// Non-positive sizes are left to the engine's own validation.
func checkCells(what string, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	if cols > MaxTableCells/rows {
		return fmt.Errorf("%w: %s table %d×%d exceeds %d cells", ErrInvalidShape, what, rows, cols, MaxTableCells)
	}
	return nil
}

func (a arrayArgs) bounds() error {
	return checkLen("array length", len(a.Array), MaxArrayLength)
}

func (a searchArgs) bounds() error {
	return checkLen("array length", len(a.Array), MaxArrayLength)
}

func (a subsetArgs) bounds() error {
	if err := checkLen("array length", len(a.Array), MaxArrayLength); err != nil {
		return err
	}
	return checkCells("subset-sum", len(a.Array)+1, a.Target+1)
}

func (a graphArgs) bounds() error {
	if err := checkLen("node count", len(a.Nodes), MaxNodes); err != nil {
		return err
	}
	return checkLen("edge count", len(a.Edges), MaxEdges)
}

func (a knapsackArgs) bounds() error {
	if err := checkLen("item count", len(a.Weights), MaxArrayLength); err != nil {
		return err
	}
	return checkCells("knapsack", len(a.Weights)+1, a.Capacity+1)
}

func (a pairArgs) bounds() error {
	return checkCells("string pair", utf8.RuneCountInString(a.Str1)+1, utf8.RuneCountInString(a.Str2)+1)
}

func (a coinArgs) bounds() error {
	if err := checkLen("coin count", len(a.Coins), MaxArrayLength); err != nil {
		return err
	}
	return checkLen("amount", a.Amount, MaxAmount)
}

func (a chainArgs) bounds() error {
	return checkLen("matrix count", len(a.Dimensions)-1, MaxMatrices)
}

func (a rodArgs) bounds() error {
	if err := checkLen("price count", len(a.Prices), MaxArrayLength); err != nil {
		return err
	}
	return checkLen("rod length", a.Length, MaxAmount)
}

func (a palindromeArgs) bounds() error {
	return checkLen("text length", utf8.RuneCountInString(a.Text), MaxPalindromeLength)
}

func (a textArgs) bounds() error {
	if err := checkLen("text length", len(a.Text), MaxTextLength); err != nil {
		return err
	}
	return checkLen("pattern length", len(a.Pattern), MaxTextLength)
}

func (a multiArgs) bounds() error {
	if err := checkLen("text length", len(a.Text), MaxTextLength); err != nil {
		return err
	}
	if err := checkLen("pattern count", len(a.Patterns), MaxPatterns); err != nil {
		return err
	}
	for _, p := range a.Patterns {
		if err := checkLen("pattern length", len(p), MaxTextLength); err != nil {
			return err
		}
	}
	return nil
}
