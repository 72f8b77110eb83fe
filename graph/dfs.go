// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/lvtrace/step"
)

// frame is a DFS stack entry: the node to visit and how it was reached.
type frame struct {
	node   int
	parent int // -1 for the start node
	edge   int // -1 for the start node
	depth  int
}

// DFS explores the graph depth-first from start with an explicit stack.
// Neighbours are pushed in reverse adjacency order so they pop in original
// order. A node may sit on the stack more than once; stale entries are
// skipped when popped. Distance holds the depth in the DFS tree.
//
// Complexity: O(V + E) work.
func DFS(nodes []Node, edges []Edge, start string) ([]step.Graph, error) {
	w, err := newWalker(nodes, edges)
	if err != nil {
		return nil, err
	}
	s, err := w.lookup(start)
	if err != nil {
		return nil, err
	}

	stack := arraystack.New()
	frontier := func() []string { return w.idsOf(stack.Values()) }

	stack.Push(frame{node: s, parent: -1, edge: -1})
	w.nodes[s].InQueue = true
	w.emit(step.Graph{
		Type:        step.KindPush,
		Description: fmt.Sprintf("Push start node %s", start),
		Current:     start,
		Frontier:    frontier(),
	})

	for !stack.Empty() {
		top, _ := stack.Pop()
		f := top.(frame)
		u := f.node
		if w.seen[u] {
			continue
		}

		// 1) Visit, attaching the node to the tree edge it was reached by.
		w.seen[u] = true
		w.nodes[u].Distance = step.Dist(f.depth)
		if f.edge >= 0 {
			w.nodes[u].Parent = w.ids[f.parent]
			w.edges[f.edge].Selected = true
		}
		w.visit(u, frontier())

		// 2) Push unvisited neighbours, last first.
		for i := len(w.adj[u]) - 1; i >= 0; i-- {
			a := w.adj[u][i]
			if w.seen[a.to] {
				continue
			}
			stack.Push(frame{node: a.to, parent: u, edge: a.edge, depth: f.depth + 1})
			w.nodes[a.to].InQueue = true
			w.emitEdge(step.Graph{
				Type:        step.KindPush,
				Description: fmt.Sprintf("Push %s (from %s)", w.ids[a.to], w.ids[u]),
				Current:     w.ids[u],
				Frontier:    frontier(),
				Order:       w.order,
			}, a.edge)
		}
	}

	return w.complete("DFS"), nil
}
