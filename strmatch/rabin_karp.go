// SPDX-License-Identifier: MIT

package strmatch

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// Rabin–Karp hash parameters.
const (
	hashBase    = 256
	hashModulus = 101
)

// RabinKarp compares a rolling polynomial hash of every window with the
// pattern hash. Equal hashes are verified byte by byte; only a verified
// window is a match. A failed verification is recorded as a spurious hit.
func RabinKarp(text, pattern string) ([]step.String, error) {
	m, err := newMatcher(text, pattern)
	if err != nil {
		return nil, err
	}
	n, p := len(text), len(pattern)
	if p > n {
		return m.complete("Rabin–Karp"), nil
	}

	// 1) h = base^(p-1) mod q, then the pattern and first window hashes.
	h := 1
	for i := 0; i < p-1; i++ {
		h = h * hashBase % hashModulus
	}
	ph, th := 0, 0
	for i := 0; i < p; i++ {
		ph = (hashBase*ph + int(pattern[i])) % hashModulus
		th = (hashBase*th + int(text[i])) % hashModulus
	}
	m.emit(step.String{
		Type:        step.KindHash,
		Description: fmt.Sprintf("Pattern hash %d, first window hash %d", ph, th),
		Shift:       step.Int(0),
		TextHash:    step.Int(th),
		PatternHash: step.Int(ph),
	})

	for s := 0; ; s++ {
		// 2) Verify on equal hashes.
		if th == ph {
			j := 0
			for j < p && m.compare(s, j, nil) {
				j++
			}
			if j == p {
				m.found(s, nil)
			} else {
				m.emit(step.String{
					Type:        step.KindSpuriousHit,
					Description: fmt.Sprintf("Hash %d matched at %d but text differs", th, s),
					Shift:       step.Int(s),
					TextHash:    step.Int(th),
					PatternHash: step.Int(ph),
				})
			}
		}
		if s+p >= n {
			break
		}

		// 3) Roll: drop text[s], add text[s+p].
		th = (hashBase*(th-int(text[s])*h) + int(text[s+p])) % hashModulus
		if th < 0 {
			th += hashModulus
		}
		m.emit(step.String{
			Type:        step.KindRollHash,
			Description: fmt.Sprintf("Roll to window %d: drop '%c', add '%c', hash %d", s+1, text[s], text[s+p], th),
			Shift:       step.Int(s + 1),
			TextHash:    step.Int(th),
			PatternHash: step.Int(ph),
		})
	}

	return m.complete("Rabin–Karp"), nil
}
