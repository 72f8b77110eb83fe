// SPDX-License-Identifier: MIT

package strmatch

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtrace/step"
)

// Naive slides the pattern one position at a time and compares left to
// right, stopping at the first mismatch. O(n·m).
func Naive(text, pattern string) ([]step.String, error) {
	m, err := newMatcher(text, pattern)
	if err != nil {
		return nil, err
	}
	m.scan()
	return m.complete("Naive search"), nil
}

// scan is the naive window loop for the current pattern.
func (m *matcher) scan() {
	n, p := len(m.text), len(m.pattern)
	for s := 0; s+p <= n; s++ {
		j := 0
		for j < p && m.compare(s, j, nil) {
			j++
		}
		if j == p {
			m.found(s, nil)
		}
	}
}

// MultiPattern searches text for each pattern in turn with a naive scan. The
// final step carries the positions per pattern and, in Matches, the sorted
// union of all start positions.
func MultiPattern(text string, patterns []string) ([]step.String, error) {
	for i, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("%w: patterns[%d]", ErrEmptyPattern, i)
		}
	}
	m := &matcher{text: text}
	per := make(map[string][]int, len(patterns))
	var union []int

	for _, p := range patterns {
		if _, done := per[p]; done {
			continue
		}
		m.pattern, m.matches = p, nil
		m.emit(step.String{
			Type:           step.KindPattern,
			Description:    fmt.Sprintf("Scan for pattern %q", p),
			Pattern:        p,
			PatternMatches: per,
		})
		m.scan()
		per[p] = m.matchList()
		union = append(union, m.matches...)
	}

	slices.Sort(union)
	m.matches = slices.Compact(union)
	m.pattern = ""
	m.emit(step.String{
		Type:           step.KindComplete,
		Description:    fmt.Sprintf("Multi-pattern search complete: %d pattern(s), matches at %v", len(per), m.matchList()),
		PatternMatches: per,
	})
	return m.rec.Steps(), nil
}
