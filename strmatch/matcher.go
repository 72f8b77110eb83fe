// SPDX-License-Identifier: MIT

package strmatch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtrace/step"
)

// ErrEmptyPattern indicates an empty search pattern.
var ErrEmptyPattern = errors.New("strmatch: pattern is empty")

// Func is the signature shared by the single-pattern matchers.
type Func func(text, pattern string) ([]step.String, error)

// matcher is the per-call scan state.
type matcher struct {
	text    string
	pattern string
	matches []int
	rec     step.Recorder[step.String]
}

func newMatcher(text, pattern string) (*matcher, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	return &matcher{text: text, pattern: pattern}, nil
}

// emit snapshots the match list and st's table into the recorded step.
func (m *matcher) emit(st step.String) {
	st.Matches = step.CloneInts(m.matches)
	if st.Matches == nil {
		st.Matches = []int{}
	}
	st.Table = step.CloneInts(st.Table)
	if st.PatternMatches != nil {
		pm := make(map[string][]int, len(st.PatternMatches))
		for k, v := range st.PatternMatches {
			pm[k] = step.CloneInts(v)
		}
		st.PatternMatches = pm
	}
	m.rec.Add(st)
}

// compare checks text[s+j] against pattern[j] and records the outcome.
func (m *matcher) compare(s, j int, table []int) bool {
	tc, pc := m.text[s+j], m.pattern[j]
	st := step.String{
		TextIndex:    step.Int(s + j),
		PatternIndex: step.Int(j),
		Shift:        step.Int(s),
		Table:        table,
	}
	if tc == pc {
		st.Type = step.KindMatch
		st.Description = fmt.Sprintf("text[%d] = '%c' matches pattern[%d]", s+j, tc, j)
		m.emit(st)
		return true
	}
	st.Type = step.KindMismatch
	st.Description = fmt.Sprintf("text[%d] = '%c' ≠ pattern[%d] = '%c'", s+j, tc, j, pc)
	m.emit(st)
	return false
}

// found records a full occurrence starting at s.
func (m *matcher) found(s int, table []int) {
	m.matches = append(m.matches, s)
	m.emit(step.String{
		Type:        step.KindFound,
		Description: fmt.Sprintf("Pattern %q found at index %d", m.pattern, s),
		Shift:       step.Int(s),
		Table:       table,
	})
}

// complete records the terminal step with the sorted match list.
func (m *matcher) complete(name string) []step.String {
	slices.Sort(m.matches)
	m.emit(step.String{
		Type:        step.KindComplete,
		Description: fmt.Sprintf("%s complete: %d match(es) at %v", name, len(m.matches), m.matchList()),
	})
	return m.rec.Steps()
}

func (m *matcher) matchList() []int {
	if m.matches == nil {
		return []int{}
	}
	return m.matches
}
