// SPDX-License-Identifier: MIT

// Package graph rewrites seven graph algorithms as step-emitting state
// machines over caller-supplied nodes and edges.
//
// Overview:
//
//   - Nodes and edges are plain values supplied by the caller; the engine
//     never creates nodes. Node IDs must be unique and non-empty, and every
//     edge endpoint must name an existing node.
//   - Adjacency is derived internally in edge order. BFS, DFS, Dijkstra,
//     Kruskal and Prim treat every edge as undirected; Bellman–Ford and
//     Floyd–Warshall treat Source→Target as directed.
//   - Every step carries a copy of all node and edge annotations (visited,
//     distance, parent, inQueue / highlighted, selected, inMST).
//
// Algorithms:
//
//	BFS            — FIFO queue; visit, then enqueue unseen neighbours
//	DFS            — LIFO stack; neighbours pushed in reverse adjacency order
//	Dijkstra       — O(V²) selection scan in node order; ties go to the earlier node
//	BellmanFord    — exactly |V|-1 rounds, then one negative-cycle scan
//	FloydWarshall  — k → i → j, strict improvement only
//	Kruskal        — stable weight order, union–find by rank, stops at |V|-1 edges
//	Prim           — cheapest crossing edge per round, edge order breaks ties
//
// Terminal states:
//
//	Every trace ends with one KindComplete step, except a Bellman–Ford run that
//	detects a negative cycle: it ends with KindNegativeCycle instead.
//	Unreachable nodes keep Distance = step.Inf (JSON null). A disconnected
//	graph yields a partial spanning forest (Kruskal) or tree (Prim).
//
// Errors (sentinel):
//
//   - ErrEmptyNodeID    a node has an empty ID.
//   - ErrDuplicateNode  two nodes share an ID.
//   - ErrNodeNotFound   an edge endpoint or the start node is unknown.
//   - ErrNegativeWeight Dijkstra received a negative edge weight.
package graph
