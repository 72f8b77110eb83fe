// SPDX-License-Identifier: MIT

package dynamic

import (
	"errors"

	"github.com/katalvlaran/lvtrace/step"
)

// ErrInvalidInput indicates arguments outside an algorithm's domain.
var ErrInvalidInput = errors.New("dynamic: invalid input")

// MaxFibonacci is the largest n whose F[n] is exactly representable in a
// table cell.
const MaxFibonacci = 78

// filler is the per-call table state. table holds numeric cells, flags holds
// boolean ones; an algorithm uses either or both.
type filler struct {
	table [][]step.Dist
	flags [][]bool
	path  []step.Cell
	rec   step.Recorder[step.DP]
}

func newTable(rows, cols int) [][]step.Dist {
	t := make([][]step.Dist, rows)
	for i := range t {
		t[i] = make([]step.Dist, cols)
	}
	return t
}

func newFlags(rows, cols int) [][]bool {
	t := make([][]bool, rows)
	for i := range t {
		t[i] = make([]bool, cols)
	}
	return t
}

func at(r, c int) step.Cell { return step.Cell{Row: r, Col: c} }

// emit snapshots the tables and the path into st.
func (f *filler) emit(st step.DP) {
	st.Table = step.CloneDistMatrix(f.table)
	st.Flags = step.CloneBoolMatrix(f.flags)
	if len(f.path) > 0 {
		st.Path = append([]step.Cell(nil), f.path...)
	}
	if st.Deps != nil {
		st.Deps = append([]step.Cell(nil), st.Deps...)
	}
	st.Items = step.CloneInts(st.Items)
	st.Operations = step.CloneStrings(st.Operations)
	st.Parts = step.CloneStrings(st.Parts)
	f.rec.Add(st)
}

// compare records a candidate evaluation for cell (r, c) without writing it.
func (f *filler) compare(r, c int, desc string, deps ...step.Cell) {
	cell := at(r, c)
	f.emit(step.DP{Type: step.KindCompare, Description: desc, Cell: &cell, Deps: deps})
}

// fill writes v into table[r][c] and records it.
func (f *filler) fill(r, c int, v step.Dist, desc string, deps ...step.Cell) {
	f.table[r][c] = v
	cell := at(r, c)
	f.emit(step.DP{Type: step.KindFill, Description: desc, Cell: &cell, Deps: deps})
}

// flag writes v into flags[r][c] and records it.
func (f *filler) flag(r, c int, v bool, desc string, deps ...step.Cell) {
	f.flags[r][c] = v
	cell := at(r, c)
	f.emit(step.DP{Type: step.KindFill, Description: desc, Cell: &cell, Deps: deps})
}

// backtrack appends (r, c) to the path and records it.
func (f *filler) backtrack(r, c int, desc string) {
	f.path = append(f.path, at(r, c))
	cell := at(r, c)
	f.emit(step.DP{Type: step.KindBacktrack, Description: desc, Cell: &cell})
}

// complete records the terminal step. st carries the family-specific extras.
func (f *filler) complete(result int, st step.DP) []step.DP {
	st.Type = step.KindComplete
	st.Result = step.Int(result)
	f.emit(st)
	return f.rec.Steps()
}
