// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/step"
)

// arc is one adjacency entry: the neighbour index, the edge weight and the
// index of the caller edge it came from.
type arc struct {
	to     int
	weight float64
	edge   int
}

// network is the per-call mutable state shared by every algorithm. It owns the
// node/edge annotations that each step snapshots.
type network struct {
	ids   []string
	index map[string]int
	nodes []step.NodeState
	edges []step.EdgeState
	ends  [][2]int // ends[e] = {source index, target index}
	adj   [][]arc  // undirected adjacency, in edge order
	rec   step.Recorder[step.Graph]
}

// newNetwork validates nodes and edges and builds the adjacency list.
func newNetwork(nodes []Node, edges []Edge) (*network, error) {
	n := &network{
		ids:   make([]string, len(nodes)),
		index: make(map[string]int, len(nodes)),
		nodes: make([]step.NodeState, len(nodes)),
		edges: make([]step.EdgeState, len(edges)),
		ends:  make([][2]int, len(edges)),
		adj:   make([][]arc, len(nodes)),
	}

	// 1) Register nodes in caller order.
	for i, nd := range nodes {
		if nd.ID == "" {
			return nil, fmt.Errorf("%w: node #%d", ErrEmptyNodeID, i)
		}
		if _, dup := n.index[nd.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, nd.ID)
		}
		n.index[nd.ID] = i
		n.ids[i] = nd.ID
		n.nodes[i] = step.NodeState{ID: nd.ID, X: nd.X, Y: nd.Y, Distance: step.Inf}
	}

	// 2) Resolve edge endpoints and derive adjacency in edge order.
	for e, ed := range edges {
		u, ok := n.index[ed.Source]
		if !ok {
			return nil, fmt.Errorf("%w: edge #%d source %q", ErrNodeNotFound, e, ed.Source)
		}
		v, ok := n.index[ed.Target]
		if !ok {
			return nil, fmt.Errorf("%w: edge #%d target %q", ErrNodeNotFound, e, ed.Target)
		}
		n.ends[e] = [2]int{u, v}
		n.edges[e] = step.EdgeState{Source: ed.Source, Target: ed.Target, Weight: ed.Weight}
		n.adj[u] = append(n.adj[u], arc{to: v, weight: ed.Weight, edge: e})
		if u != v {
			n.adj[v] = append(n.adj[v], arc{to: u, weight: ed.Weight, edge: e})
		}
	}

	return n, nil
}

// lookup resolves a start node ID.
func (n *network) lookup(id string) (int, error) {
	i, ok := n.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: start %q", ErrNodeNotFound, id)
	}
	return i, nil
}

// emit snapshots every annotation into st and records it.
func (n *network) emit(st step.Graph) {
	st.Nodes = append([]step.NodeState(nil), n.nodes...)
	st.Edges = append([]step.EdgeState(nil), n.edges...)
	st.Frontier = step.CloneStrings(st.Frontier)
	st.Order = step.CloneStrings(st.Order)
	st.Matrix = step.CloneDistMatrix(st.Matrix)
	if st.MST != nil {
		st.MST = append([]step.EdgeState(nil), st.MST...)
	}
	n.rec.Add(st)
}

// emitEdge records st with edge e highlighted for this step only.
func (n *network) emitEdge(st step.Graph, e int) {
	n.edges[e].Highlighted = true
	n.emit(st)
	n.edges[e].Highlighted = false
}

// setParent points v at u through edge e and moves the Selected flag off the
// previous parent edge.
func (n *network) setParent(v, u, e int, prev []int) {
	if prev[v] >= 0 {
		n.edges[prev[v]].Selected = false
	}
	prev[v] = e
	n.edges[e].Selected = true
	n.nodes[v].Parent = n.ids[u]
}

// noParents returns a parent-edge table with every entry unset.
func noParents(size int) []int {
	p := make([]int, size)
	for i := range p {
		p[i] = -1
	}
	return p
}

// label renders a node ID with its current distance.
func (n *network) label(i int) string {
	return fmt.Sprintf("%s(%s)", n.ids[i], n.nodes[i].Distance)
}

// distances formats all final distances in node order.
func (n *network) distances() string {
	parts := make([]string, len(n.nodes))
	for i := range n.nodes {
		parts[i] = n.label(i)
	}
	return strings.Join(parts, ", ")
}
