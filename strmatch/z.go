// SPDX-License-Identifier: MIT

package strmatch

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// zSentinel separates pattern from text in the Z-algorithm input.
const zSentinel = "\x00"

// ZAlgorithm computes the Z-array of pattern + "\x00" + text. Z[i] is the
// length of the longest substring starting at i that is also a prefix; every
// text position with Z >= len(pattern) starts a match. Values inside the
// current Z-box are seeded from their mirror before explicit extension.
func ZAlgorithm(text, pattern string) ([]step.String, error) {
	m, err := newMatcher(text, pattern)
	if err != nil {
		return nil, err
	}
	s := pattern + zSentinel + text
	p := len(pattern)
	z := make([]int, len(s))

	for i, l, r := 1, 0, 0; i < len(s); i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
			m.emit(step.String{
				Type:        step.KindMirror,
				Description: fmt.Sprintf("Z[%d] starts at min(%d, Z[%d]) = %d from box [%d, %d)", i, r-i, i-l, z[i], l, r),
				Table:       z,
				Center:      step.Int(l),
				Right:       step.Int(r),
			})
		}
		start := z[i]
		for i+z[i] < len(s) && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if z[i] > start {
			m.emit(step.String{
				Type:        step.KindExpand,
				Description: fmt.Sprintf("Extend Z[%d] from %d to %d", i, start, z[i]),
				Table:       z,
			})
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
		if i > p && z[i] >= p {
			m.found(i-p-1, z)
		}
	}

	return m.complete("Z-algorithm"), nil
}
