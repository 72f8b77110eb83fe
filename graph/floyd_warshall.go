// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/step"
)

// FloydWarshall computes all-pairs shortest paths over directed edges. The
// loop order is fixed k → i → j and an entry changes only on strict
// improvement, so the trace is deterministic. Pairs involving an unreachable
// intermediate are skipped without a step.
//
// The final step carries NegativeCycle = true when any diagonal entry is
// negative.
//
// Complexity: O(V³) time, O(V²) per snapshot.
func FloydWarshall(nodes []Node, edges []Edge) ([]step.Graph, error) {
	n, err := newNetwork(nodes, edges)
	if err != nil {
		return nil, err
	}
	dist := n.distanceMatrix()
	n.emit(step.Graph{
		Type:        step.KindInitialize,
		Description: "Initialize distance matrix from direct edges",
		Matrix:      dist,
	})

	for k := range dist {
		n.emit(step.Graph{
			Type:        step.KindIteration,
			Description: fmt.Sprintf("Intermediate node %s", n.ids[k]),
			Current:     n.ids[k],
			Round:       step.Int(k),
			Matrix:      dist,
		})
		for i := range dist {
			if dist[i][k].IsInf() {
				continue
			}
			for j := range dist {
				if dist[k][j].IsInf() {
					continue
				}
				alt := dist[i][k] + dist[k][j]
				if alt >= dist[i][j] {
					continue
				}
				old := dist[i][j]
				dist[i][j] = alt
				n.emit(step.Graph{
					Type: step.KindUpdate,
					Description: fmt.Sprintf("dist[%s][%s]: %s → %s via %s",
						n.ids[i], n.ids[j], old, alt, n.ids[k]),
					Current: n.ids[k],
					Round:   step.Int(k),
					Matrix:  dist,
				})
			}
		}
	}

	negative := false
	for i := range dist {
		if dist[i][i] < 0 {
			negative = true
			break
		}
	}
	desc := "Floyd–Warshall complete"
	if negative {
		desc += ": negative cycle present"
	}
	n.emit(step.Graph{
		Type:          step.KindComplete,
		Description:   desc,
		Matrix:        dist,
		NegativeCycle: negative,
	})
	return n.rec.Steps(), nil
}
