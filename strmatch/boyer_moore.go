// SPDX-License-Identifier: MIT

package strmatch

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// BoyerMoore uses the bad-character rule only. The window is compared right
// to left; on a mismatch at pattern index j against text byte c the window
// moves max(1, j - last[c]), where last[c] is the last index of c in the
// pattern or -1. After a full match it moves so the byte after the window
// lines up with its last occurrence, or by one at the end of the text.
func BoyerMoore(text, pattern string) ([]step.String, error) {
	m, err := newMatcher(text, pattern)
	if err != nil {
		return nil, err
	}
	n, p := len(text), len(pattern)

	// 1) Bad-character table over all byte values.
	last := make([]int, 256)
	for i := range last {
		last[i] = -1
	}
	for i := 0; i < p; i++ {
		last[pattern[i]] = i
	}
	m.emit(step.String{
		Type:        step.KindPattern,
		Description: fmt.Sprintf("Bad-character table built for %q", pattern),
		Pattern:     pattern,
		Table:       last,
	})

	// 2) Right-to-left window comparison.
	for s := 0; s+p <= n; {
		j := p - 1
		for j >= 0 && m.compare(s, j, nil) {
			j--
		}

		var shift int
		var why string
		if j < 0 {
			m.found(s, nil)
			shift = 1
			if s+p < n {
				shift = p - last[text[s+p]]
			}
			why = "after full match"
		} else {
			c := text[s+j]
			shift = max(1, j-last[c])
			why = fmt.Sprintf("bad character '%c', last[%c] = %d", c, c, last[c])
		}
		s += shift
		m.emit(step.String{
			Type:        step.KindShift,
			Description: fmt.Sprintf("Shift by %d to %d (%s)", shift, s, why),
			Shift:       step.Int(s),
		})
	}

	return m.complete("Boyer–Moore"), nil
}
