// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvtrace/step"
)

// forest tracks the spanning edges chosen so far.
type forest struct {
	*network
	tree  []step.EdgeState
	total float64
}

func (f *forest) take(e int) {
	f.edges[e].InMST = true
	f.tree = append(f.tree, f.edges[e])
	f.total += f.edges[e].Weight
}

func (f *forest) complete(name string, want int) []step.Graph {
	desc := fmt.Sprintf("%s complete. MST weight %g with %d edges", name, f.total, len(f.tree))
	if len(f.tree) < want {
		desc = fmt.Sprintf("%s complete. Graph is disconnected: spanning forest weight %g with %d of %d edges",
			name, f.total, len(f.tree), want)
	}
	f.emit(step.Graph{
		Type:        step.KindComplete,
		Description: desc,
		MST:         f.tree,
		TotalWeight: f.total,
	})
	return f.rec.Steps()
}

// Kruskal builds a minimum spanning forest over undirected edges. Edges are
// sorted stably by weight (ties keep caller order) and accepted when they join
// two components. The scan stops once |V|-1 edges are taken.
//
// Complexity: O(E log E + E·α(V)).
func Kruskal(nodes []Node, edges []Edge) ([]step.Graph, error) {
	n, err := newNetwork(nodes, edges)
	if err != nil {
		return nil, err
	}
	f := &forest{network: n}
	want := len(nodes) - 1

	// 1) Stable sort of edge indices by weight.
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return edges[order[a]].Weight < edges[order[b]].Weight
	})
	sorted := make([]string, len(order))
	for i, e := range order {
		sorted[i] = fmt.Sprintf("%s–%s(%g)", edges[e].Source, edges[e].Target, edges[e].Weight)
	}
	f.emit(step.Graph{
		Type:        step.KindSortEdges,
		Description: fmt.Sprintf("Sort edges by weight: %v", sorted),
	})

	// 2) Accept edges that join two components.
	uf := newUnionFind(len(nodes))
	for _, e := range order {
		if len(f.tree) >= want {
			break
		}
		u, v := f.ends[e][0], f.ends[e][1]
		label := fmt.Sprintf("%s–%s (%g)", f.ids[u], f.ids[v], f.edges[e].Weight)
		f.emitEdge(step.Graph{
			Type:        step.KindCheckEdge,
			Description: "Check edge " + label,
			MST:         f.tree,
			TotalWeight: f.total,
		}, e)
		if !uf.union(u, v) {
			f.emitEdge(step.Graph{
				Type:        step.KindSkipEdge,
				Description: fmt.Sprintf("Skip edge %s: would form a cycle", label),
				MST:         f.tree,
				TotalWeight: f.total,
			}, e)
			continue
		}
		f.take(e)
		f.nodes[u].Visited = true
		f.nodes[v].Visited = true
		f.emitEdge(step.Graph{
			Type:        step.KindAddEdge,
			Description: "Add edge " + label,
			MST:         f.tree,
			TotalWeight: f.total,
		}, e)
	}

	return f.complete("Kruskal", want), nil
}

// Prim grows a minimum spanning tree from start over undirected edges. Each
// round scans every edge in caller order and takes the lightest one crossing
// the tree boundary; earlier edges win ties. If no crossing edge remains the
// graph is disconnected and the partial tree is reported.
//
// Complexity: O(V·E).
func Prim(nodes []Node, edges []Edge, start string) ([]step.Graph, error) {
	n, err := newNetwork(nodes, edges)
	if err != nil {
		return nil, err
	}
	s, err := n.lookup(start)
	if err != nil {
		return nil, err
	}
	f := &forest{network: n}
	want := len(nodes) - 1

	f.nodes[s].Visited = true
	f.emit(step.Graph{
		Type:        step.KindVisit,
		Description: fmt.Sprintf("Start tree at %s", start),
		Current:     start,
	})

	for len(f.tree) < want {
		// 1) Find the lightest crossing edge.
		best := -1
		for e, ends := range f.ends {
			in0, in1 := f.nodes[ends[0]].Visited, f.nodes[ends[1]].Visited
			if in0 == in1 {
				continue
			}
			f.emitEdge(step.Graph{
				Type: step.KindCheckEdge,
				Description: fmt.Sprintf("Check crossing edge %s–%s (%g)",
					f.ids[ends[0]], f.ids[ends[1]], f.edges[e].Weight),
				MST:         f.tree,
				TotalWeight: f.total,
			}, e)
			if best < 0 || f.edges[e].Weight < f.edges[best].Weight {
				best = e
			}
		}
		if best < 0 {
			break
		}

		// 2) Take it and pull the outside endpoint into the tree.
		u, v := f.ends[best][0], f.ends[best][1]
		if f.nodes[v].Visited {
			u, v = v, u
		}
		f.take(best)
		f.nodes[v].Visited = true
		f.nodes[v].Parent = f.ids[u]
		f.emitEdge(step.Graph{
			Type:        step.KindAddEdge,
			Description: fmt.Sprintf("Add edge %s–%s (%g)", f.ids[u], f.ids[v], f.edges[best].Weight),
			Current:     f.ids[v],
			MST:         f.tree,
			TotalWeight: f.total,
		}, best)
	}

	return f.complete("Prim", want), nil
}
