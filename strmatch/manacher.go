// SPDX-License-Identifier: MIT

package strmatch

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Manacher finds the longest palindromic substring of text in O(n). The text
// is interleaved with '#' so odd and even palindromes share one loop; the
// radius table (Table) of the transformed string equals palindrome length in
// the original. The first longest palindrome wins. The final step carries it
// in Palindrome and its start in Matches.
func Manacher(text string) ([]step.String, error) {
	m := &matcher{text: text}
	n := len(text)
	if n == 0 {
		m.emit(step.String{Type: step.KindComplete, Description: "Empty text has no palindrome"})
		return m.rec.Steps(), nil
	}

	t := make([]byte, 2*n+1)
	for i := range t {
		t[i] = '#'
		if i%2 == 1 {
			t[i] = text[i/2]
		}
	}
	rad := make([]int, len(t))

	for i, center, right := 0, 0, 0; i < len(t); i++ {
		if i < right {
			mirror := 2*center - i
			rad[i] = min(right-i, rad[mirror])
			m.emit(step.String{
				Type:        step.KindMirror,
				Description: fmt.Sprintf("Mirror of %d around %d is %d: radius starts at %d", i, center, mirror, rad[i]),
				Table:       rad,
				Center:      step.Int(center),
				Right:       step.Int(right),
			})
		}
		for i-rad[i]-1 >= 0 && i+rad[i]+1 < len(t) && t[i-rad[i]-1] == t[i+rad[i]+1] {
			rad[i]++
		}
		if i+rad[i] > right {
			center, right = i, i+rad[i]
		}
		m.emit(step.String{
			Type:        step.KindExpand,
			Description: fmt.Sprintf("Centre %d: radius %d", i, rad[i]),
			Table:       rad,
			Center:      step.Int(center),
			Right:       step.Int(right),
		})
	}

	best := 0
	for i := range rad {
		if rad[i] > rad[best] {
			best = i
		}
	}
	start := (best - rad[best]) / 2
	pal := text[start : start+rad[best]]
	m.matches = []int{start}
	m.emit(step.String{
		Type:        step.KindComplete,
		Description: fmt.Sprintf("Longest palindrome %q at %d", pal, start),
		Table:       rad,
		Palindrome:  pal,
	})
	return m.rec.Steps(), nil
}
