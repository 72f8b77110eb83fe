// SPDX-License-Identifier: MIT

package strmatch

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// KMP runs Knuth–Morris–Pratt. The LPS table is built first (one KindLPS
// step per entry or fallback), then the scan never re-reads a matched text
// byte: on mismatch j falls back to lps[j-1], and after a full match scanning
// resumes at lps[m-1]. O(n + m).
func KMP(text, pattern string) ([]step.String, error) {
	m, err := newMatcher(text, pattern)
	if err != nil {
		return nil, err
	}
	lps := m.lps()

	n, p := len(text), len(pattern)
	for i, j := 0, 0; i < n; {
		if m.compare(i-j, j, lps) {
			i, j = i+1, j+1
			if j == p {
				m.found(i-p, lps)
				j = lps[j-1]
			}
			continue
		}
		if j == 0 {
			i++
			continue
		}
		prev := j
		j = lps[prev-1]
		m.emit(step.String{
			Type:         step.KindShift,
			Description:  fmt.Sprintf("Fall back: j = lps[%d] = %d, window moves to %d", prev-1, j, i-j),
			TextIndex:    step.Int(i),
			PatternIndex: step.Int(j),
			Shift:        step.Int(i - j),
			Table:        lps,
		})
	}

	return m.complete("KMP"), nil
}

// lps builds the longest-proper-prefix-that-is-also-suffix table.
func (m *matcher) lps() []int {
	p := m.pattern
	lps := make([]int, len(p))
	m.emit(step.String{
		Type:         step.KindLPS,
		Description:  "lps[0] = 0",
		PatternIndex: step.Int(0),
		Table:        lps,
	})
	for i, length := 1, 0; i < len(p); {
		switch {
		case p[i] == p[length]:
			length++
			lps[i] = length
			m.emit(step.String{
				Type:         step.KindLPS,
				Description:  fmt.Sprintf("'%c' extends the prefix: lps[%d] = %d", p[i], i, length),
				PatternIndex: step.Int(i),
				Table:        lps,
			})
			i++
		case length > 0:
			length = lps[length-1]
			m.emit(step.String{
				Type:         step.KindLPS,
				Description:  fmt.Sprintf("'%c' breaks the prefix: fall back to length %d", p[i], length),
				PatternIndex: step.Int(i),
				Table:        lps,
			})
		default:
			m.emit(step.String{
				Type:         step.KindLPS,
				Description:  fmt.Sprintf("lps[%d] = 0", i),
				PatternIndex: step.Int(i),
				Table:        lps,
			})
			i++
		}
	}
	return lps
}
