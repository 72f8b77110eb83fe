// SPDX-License-Identifier: MIT

package graph

import "github.com/katalvlaran/lvtrace/step"

// distanceMatrix builds the directed V×V seed matrix: 0 on the diagonal, the
// lightest edge weight for every connected ordered pair, step.Inf elsewhere.
// A negative self-loop lowers the diagonal entry below zero.
func (n *network) distanceMatrix() [][]step.Dist {
	size := len(n.nodes)
	m := make([][]step.Dist, size)
	for i := range m {
		m[i] = make([]step.Dist, size)
		for j := range m[i] {
			if i != j {
				m[i][j] = step.Inf
			}
		}
	}
	for e, ends := range n.ends {
		i, j := ends[0], ends[1]
		if w := step.Dist(n.edges[e].Weight); w < m[i][j] {
			m[i][j] = w
		}
	}
	return m
}
