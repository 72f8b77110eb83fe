// SPDX-License-Identifier: MIT

package step

import "encoding/json"

// Sort is a sorting-engine snapshot.
type Sort struct {
	Type        Kind    `json:"type"`
	Description string  `json:"description"`
	Array       []int   `json:"array"`             // working array at this instant
	Indices     []int   `json:"indices,omitempty"` // positions compared or written
	Pivot       *int    `json:"pivot,omitempty"`   // pivot position (quick sort)
	Range       *Span   `json:"range,omitempty"`   // active segment
	Sorted      []int   `json:"sorted"`            // finalized positions, ascending
	Aux         []int   `json:"aux,omitempty"`     // count or output array
	Buckets     [][]int `json:"buckets,omitempty"` // bucket/radix distribution
	Gap         int     `json:"gap,omitempty"`     // shell/comb gap
	Exp         int     `json:"exp,omitempty"`     // radix place value
}

// Search is a searching-engine snapshot.
type Search struct {
	Type        Kind   `json:"type"`
	Description string `json:"description"`
	Array       []int  `json:"array"`
	Target      int    `json:"target"`
	Probe       []int  `json:"probe,omitempty"`  // indices examined by this step
	Range       *Span  `json:"range,omitempty"`  // live search interval
	Bound       *int   `json:"bound,omitempty"`  // jump/exponential/fibonacci bound
	Result      *int   `json:"result,omitempty"` // found index, -1 when absent
}

// NodeState is a graph node together with its transient annotations.
type NodeState struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Visited  bool    `json:"visited"`
	Distance Dist    `json:"distance"`
	Parent   string  `json:"parent,omitempty"`
	InQueue  bool    `json:"inQueue"`
}

// EdgeState is a graph edge together with its transient annotations.
type EdgeState struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Weight      float64 `json:"weight"`
	Highlighted bool    `json:"highlighted"`
	Selected    bool    `json:"selected"`
	InMST       bool    `json:"inMST"`
}

// Graph is a graph-engine snapshot.
type Graph struct {
	Type          Kind        `json:"type"`
	Description   string      `json:"description"`
	Nodes         []NodeState `json:"nodes"`
	Edges         []EdgeState `json:"edges"`
	Current       string      `json:"current,omitempty"`
	Frontier      []string    `json:"frontier,omitempty"` // queue or stack contents
	Order         []string    `json:"order,omitempty"`    // visit order so far
	Round         *int        `json:"round,omitempty"`    // relaxation round or intermediate k
	Matrix        [][]Dist    `json:"matrix,omitempty"`   // Floyd–Warshall distances
	MST           []EdgeState `json:"mst,omitempty"`
	TotalWeight   float64     `json:"totalWeight,omitempty"`
	NegativeCycle bool        `json:"negativeCycle,omitempty"`
}

// Cell addresses a DP table entry. Row is 0 for 1-D tables.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// DP is a dynamic-programming snapshot.
type DP struct {
	Type        Kind     `json:"type"`
	Description string   `json:"description"`
	Table       [][]Dist `json:"table,omitempty"` // numeric table; 1-D tables use one row
	Flags       [][]bool `json:"flags,omitempty"` // boolean table
	Cell        *Cell    `json:"cell,omitempty"`  // cell being evaluated or written
	Deps        []Cell   `json:"deps,omitempty"`  // cells the current value is derived from
	Path        []Cell   `json:"path,omitempty"`  // backtracking path so far
	Result      *int     `json:"result,omitempty"`
	Items       []int    `json:"items,omitempty"` // chosen indices / values
	Text        string   `json:"text,omitempty"`  // subsequence, parenthesization
	Operations  []string `json:"operations,omitempty"`
	Parts       []string `json:"parts,omitempty"`
}

// String is a string-matching snapshot.
type String struct {
	Type           Kind             `json:"type"`
	Description    string           `json:"description"`
	TextIndex      *int             `json:"textIndex,omitempty"`
	PatternIndex   *int             `json:"patternIndex,omitempty"`
	Shift          *int             `json:"shift,omitempty"` // window start in the text
	Table          []int            `json:"table,omitempty"` // LPS, Z or radius array
	TextHash       *int             `json:"textHash,omitempty"`
	PatternHash    *int             `json:"patternHash,omitempty"`
	Center         *int             `json:"center,omitempty"`
	Right          *int             `json:"right,omitempty"`
	Pattern        string           `json:"pattern,omitempty"`
	Matches        []int            `json:"matches"`
	PatternMatches map[string][]int `json:"patternMatches,omitempty"`
	Palindrome     string           `json:"palindrome,omitempty"`
}

func (s Sort) Kind() Kind         { return s.Type }
func (s Sort) Family() Family     { return FamilySorting }
func (s Sort) Describe() string   { return s.Description }
func (Sort) sealed()              {}
func (s Search) Kind() Kind       { return s.Type }
func (s Search) Family() Family   { return FamilySearching }
func (s Search) Describe() string { return s.Description }
func (Search) sealed()            {}
func (s Graph) Kind() Kind        { return s.Type }
func (s Graph) Family() Family    { return FamilyGraph }
func (s Graph) Describe() string  { return s.Description }
func (Graph) sealed()             {}
func (s DP) Kind() Kind           { return s.Type }
func (s DP) Family() Family       { return FamilyDP }
func (s DP) Describe() string     { return s.Description }
func (DP) sealed()                {}
func (s String) Kind() Kind       { return s.Type }
func (s String) Family() Family   { return FamilyString }
func (s String) Describe() string { return s.Description }
func (String) sealed()            {}

// MarshalJSON adds the family tag.
func (s Sort) MarshalJSON() ([]byte, error) {
	type alias Sort
	return json.Marshal(struct {
		Family Family `json:"family"`
		alias
	}{FamilySorting, alias(s)})
}

// MarshalJSON adds the family tag.
func (s Search) MarshalJSON() ([]byte, error) {
	type alias Search
	return json.Marshal(struct {
		Family Family `json:"family"`
		alias
	}{FamilySearching, alias(s)})
}

// MarshalJSON adds the family tag.
func (s Graph) MarshalJSON() ([]byte, error) {
	type alias Graph
	return json.Marshal(struct {
		Family Family `json:"family"`
		alias
	}{FamilyGraph, alias(s)})
}

// MarshalJSON adds the family tag.
func (s DP) MarshalJSON() ([]byte, error) {
	type alias DP
	return json.Marshal(struct {
		Family Family `json:"family"`
		alias
	}{FamilyDP, alias(s)})
}

// MarshalJSON adds the family tag.
func (s String) MarshalJSON() ([]byte, error) {
	type alias String
	return json.Marshal(struct {
		Family Family `json:"family"`
		alias
	}{FamilyString, alias(s)})
}
