// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/lvtrace/step"
)

// walker holds the per-call queue/stack traversal state for BFS and DFS.
type walker struct {
	*network
	seen  []bool
	order []string
}

func newWalker(nodes []Node, edges []Edge) (*walker, error) {
	n, err := newNetwork(nodes, edges)
	if err != nil {
		return nil, err
	}
	return &walker{network: n, seen: make([]bool, len(nodes))}, nil
}

// visit marks u visited, appends it to the order and records a visit step.
func (w *walker) visit(u int, frontier []string) {
	w.nodes[u].InQueue = false
	w.nodes[u].Visited = true
	w.order = append(w.order, w.ids[u])
	w.emit(step.Graph{
		Type:        step.KindVisit,
		Description: fmt.Sprintf("Visit %s (depth %s)", w.ids[u], w.nodes[u].Distance),
		Current:     w.ids[u],
		Frontier:    frontier,
		Order:       w.order,
	})
}

// complete records the terminal step.
func (w *walker) complete(name string) []step.Graph {
	w.emit(step.Graph{
		Type:        step.KindComplete,
		Description: fmt.Sprintf("%s complete. Visit order: %v", name, w.order),
		Order:       w.order,
	})
	return w.rec.Steps()
}

// BFS explores the graph breadth-first from start. Node Distance holds the
// hop count from start; unreached nodes keep step.Inf.
//
// Complexity: O(V + E) work, O((V + E)·(V + E)) total snapshot size.
func BFS(nodes []Node, edges []Edge, start string) ([]step.Graph, error) {
	w, err := newWalker(nodes, edges)
	if err != nil {
		return nil, err
	}
	s, err := w.lookup(start)
	if err != nil {
		return nil, err
	}

	queue := arrayqueue.New()
	frontier := func() []string { return w.idsOf(queue.Values()) }

	// 1) Seed the queue with the start node.
	w.seen[s] = true
	w.nodes[s].Distance = 0
	w.nodes[s].InQueue = true
	queue.Enqueue(s)
	w.emit(step.Graph{
		Type:        step.KindEnqueue,
		Description: fmt.Sprintf("Enqueue start node %s", start),
		Current:     start,
		Frontier:    frontier(),
	})

	// 2) Dequeue, visit, enqueue unseen neighbours.
	for !queue.Empty() {
		head, _ := queue.Dequeue()
		u := head.(int)
		w.visit(u, frontier())

		for _, a := range w.adj[u] {
			w.emitEdge(step.Graph{
				Type:        step.KindExplore,
				Description: fmt.Sprintf("Explore edge %s–%s", w.ids[u], w.ids[a.to]),
				Current:     w.ids[u],
				Frontier:    frontier(),
				Order:       w.order,
			}, a.edge)
			if w.seen[a.to] {
				continue
			}
			w.seen[a.to] = true
			w.nodes[a.to].Distance = w.nodes[u].Distance + 1
			w.nodes[a.to].InQueue = true
			w.nodes[a.to].Parent = w.ids[u]
			w.edges[a.edge].Selected = true
			queue.Enqueue(a.to)
			w.emit(step.Graph{
				Type:        step.KindEnqueue,
				Description: fmt.Sprintf("Enqueue %s (parent %s)", w.ids[a.to], w.ids[u]),
				Current:     w.ids[u],
				Frontier:    frontier(),
				Order:       w.order,
			})
		}
	}

	return w.complete("BFS"), nil
}

// idsOf maps container values (node indices) to node IDs.
func (w *walker) idsOf(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		switch x := v.(type) {
		case int:
			out = append(out, w.ids[x])
		case frame:
			out = append(out, w.ids[x.node])
		}
	}
	return out
}
