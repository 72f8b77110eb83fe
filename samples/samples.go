// SPDX-License-Identifier: MIT

package samples

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvtrace/graph"
)

// Array returns size values drawn uniformly from the configured range.
func Array(opts ...Option) []int {
	cfg := newConfig(opts...)
	return cfg.array()
}

func (c config) array() []int {
	out := make([]int, c.size)
	for i := range out {
		out[i] = c.min + c.rng.Intn(c.max-c.min+1)
	}
	return out
}

// SortedArray returns Array sorted ascending.
func SortedArray(opts ...Option) []int {
	out := Array(opts...)
	slices.Sort(out)
	return out
}

// SearchInput returns a sorted array and a target taken from it.
func SearchInput(opts ...Option) ([]int, int) {
	cfg := newConfig(opts...)
	arr := cfg.array()
	slices.Sort(arr)
	if len(arr) == 0 {
		return arr, cfg.min
	}
	return arr, arr[cfg.rng.Intn(len(arr))]
}

// SampleGraph returns the fixed five-node graph used by the documented
// scenarios. Coordinates fit a 400×300 canvas.
func SampleGraph() ([]graph.Node, []graph.Edge) {
	nodes := []graph.Node{
		{ID: "A", X: 50, Y: 150},
		{ID: "B", X: 200, Y: 50},
		{ID: "C", X: 350, Y: 50},
		{ID: "D", X: 200, Y: 250},
		{ID: "E", X: 350, Y: 250},
	}
	edges := []graph.Edge{
		{Source: "A", Target: "B", Weight: 4},
		{Source: "A", Target: "D", Weight: 2},
		{Source: "B", Target: "C", Weight: 3},
		{Source: "B", Target: "D", Weight: 1},
		{Source: "C", Target: "E", Weight: 2},
		{Source: "D", Target: "E", Weight: 3},
	}
	return nodes, edges
}

// RandomGraph returns a connected graph of size nodes laid out on a circle.
// A random spanning tree guarantees connectivity; size/2 extra edges are
// added between distinct, not yet adjacent pairs when available.
func RandomGraph(opts ...Option) ([]graph.Node, []graph.Edge) {
	cfg := newConfig(opts...)
	n := cfg.size
	nodes := make([]graph.Node, n)
	for i := range nodes {
		angle := 2 * math.Pi * float64(i) / float64(max(n, 1))
		nodes[i] = graph.Node{
			ID: cfg.idFn(i),
			X:  math.Round(200 + 150*math.Cos(angle)),
			Y:  math.Round(200 + 150*math.Sin(angle)),
		}
	}

	type pair struct{ a, b int }
	seen := make(map[pair]bool)
	var edges []graph.Edge
	link := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		seen[pair{a, b}] = true
		edges = append(edges, graph.Edge{Source: nodes[a].ID, Target: nodes[b].ID, Weight: cfg.weightFn(cfg.rng)})
	}

	// 1) Spanning tree: node i attaches to an earlier node.
	for i := 1; i < n; i++ {
		link(cfg.rng.Intn(i), i)
	}

	// 2) Extra edges, bounded attempts so dense small graphs terminate.
	for extra, tries := 0, 0; extra < n/2 && tries < 8*n; tries++ {
		a, b := cfg.rng.Intn(n), cfg.rng.Intn(n)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if seen[pair{a, b}] {
			continue
		}
		link(a, b)
		extra++
	}

	return nodes, edges
}

// Text returns a random text of 2·size letters over {A, B, C} and a pattern of
// up to 3 letters copied from it.
func Text(opts ...Option) (string, string) {
	cfg := newConfig(opts...)
	n := max(2*cfg.size, 1)
	b := make([]byte, n)
	for i := range b {
		b[i] = "ABC"[cfg.rng.Intn(3)]
	}
	m := min(3, n)
	at := cfg.rng.Intn(n - m + 1)
	return string(b), string(b[at : at+m])
}
