// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// BellmanFord computes single-source shortest paths over directed edges
// (Source→Target), allowing negative weights. It runs exactly |V|-1 rounds,
// each checking every edge in caller order, then scans once more for an edge
// that still improves. If one exists the trace ends with a KindNegativeCycle
// step and no KindComplete step.
//
// Edges whose source is still unreached are skipped without a step.
//
// Complexity: O(V·E).
func BellmanFord(nodes []Node, edges []Edge, start string) ([]step.Graph, error) {
	r, s, err := newRunner(nodes, edges, start)
	if err != nil {
		return nil, err
	}
	r.init(s)

	// 1) |V|-1 relaxation rounds.
	for round := 1; round < len(nodes); round++ {
		r.emit(step.Graph{
			Type:        step.KindIteration,
			Description: fmt.Sprintf("Round %d of %d", round, len(nodes)-1),
			Round:       step.Int(round),
		})
		for e, ends := range r.ends {
			u, v := ends[0], ends[1]
			if r.nodes[u].Distance.IsInf() {
				continue
			}
			if r.relax(u, v, e, r.edges[e].Weight, step.Int(round)) {
				r.nodes[v].Visited = true
			}
		}
	}
	r.nodes[s].Visited = true

	// 2) One more pass: any improvement means a reachable negative cycle.
	for e, ends := range r.ends {
		u, v := ends[0], ends[1]
		du := r.nodes[u].Distance
		if du.IsInf() || du+step.Dist(r.edges[e].Weight) >= r.nodes[v].Distance {
			continue
		}
		r.emitEdge(step.Graph{
			Type: step.KindNegativeCycle,
			Description: fmt.Sprintf("Negative cycle detected: edge %s→%s still improves %s",
				r.ids[u], r.ids[v], r.label(v)),
			Current:       r.ids[v],
			NegativeCycle: true,
		}, e)
		return r.rec.Steps(), nil
	}

	return r.complete("Bellman–Ford"), nil
}
