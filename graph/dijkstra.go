// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// runner holds the mutable state of one shortest-path run.
type runner struct {
	*network
	done   []bool
	parent []int // parent edge per node, -1 when unset
}

func newRunner(nodes []Node, edges []Edge, start string) (*runner, int, error) {
	n, err := newNetwork(nodes, edges)
	if err != nil {
		return nil, 0, err
	}
	s, err := n.lookup(start)
	if err != nil {
		return nil, 0, err
	}
	return &runner{network: n, done: make([]bool, len(nodes)), parent: noParents(len(nodes))}, s, nil
}

// init sets the source distance to zero and records the initial state.
func (r *runner) init(s int) {
	r.nodes[s].Distance = 0
	r.emit(step.Graph{
		Type:        step.KindInitialize,
		Description: fmt.Sprintf("Initialize: dist[%s] = 0, all others ∞", r.ids[s]),
		Current:     r.ids[s],
	})
}

// relax tries to improve v through u along edge e with weight w. It records a
// check-edge step, and a relax step on strict improvement.
func (r *runner) relax(u, v, e int, w float64, round *int) bool {
	du, dv := r.nodes[u].Distance, r.nodes[v].Distance
	alt := du + step.Dist(w)
	r.emitEdge(step.Graph{
		Type:        step.KindCheckEdge,
		Description: fmt.Sprintf("Check %s→%s: %s + %g = %s vs %s", r.ids[u], r.ids[v], du, w, alt, dv),
		Current:     r.ids[u],
		Round:       round,
	}, e)
	if alt >= dv {
		return false
	}
	r.nodes[v].Distance = alt
	r.setParent(v, u, e, r.parent)
	r.emitEdge(step.Graph{
		Type:        step.KindRelax,
		Description: fmt.Sprintf("Relax %s: dist %s → %s via %s", r.ids[v], dv, alt, r.ids[u]),
		Current:     r.ids[u],
		Round:       round,
	}, e)
	return true
}

// next returns the unsettled node with the smallest finite distance, or -1.
// Ties go to the node that appears first.
func (r *runner) next() int {
	best := -1
	for i := range r.nodes {
		if r.done[i] || r.nodes[i].Distance.IsInf() {
			continue
		}
		if best < 0 || r.nodes[i].Distance < r.nodes[best].Distance {
			best = i
		}
	}
	return best
}

func (r *runner) complete(name string) []step.Graph {
	r.emit(step.Graph{
		Type:        step.KindComplete,
		Description: fmt.Sprintf("%s complete. Distances: %s", name, r.distances()),
	})
	return r.rec.Steps()
}

// Dijkstra computes single-source shortest paths over undirected edges with
// non-negative weights. Selection is a linear scan, so no heap is needed and
// the order of settled nodes is fully deterministic.
//
// Complexity: O(V² + E).
func Dijkstra(nodes []Node, edges []Edge, start string) ([]step.Graph, error) {
	for i, e := range edges {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge #%d %s–%s has weight %g", ErrNegativeWeight, i, e.Source, e.Target, e.Weight)
		}
	}
	r, s, err := newRunner(nodes, edges, start)
	if err != nil {
		return nil, err
	}

	r.init(s)
	for u := r.next(); u >= 0; u = r.next() {
		r.done[u] = true
		r.nodes[u].Visited = true
		r.emit(step.Graph{
			Type:        step.KindVisit,
			Description: fmt.Sprintf("Settle %s", r.label(u)),
			Current:     r.ids[u],
		})
		for _, a := range r.adj[u] {
			if r.done[a.to] {
				continue
			}
			r.relax(u, a.to, a.edge, a.weight, nil)
		}
	}

	return r.complete("Dijkstra"), nil
}
