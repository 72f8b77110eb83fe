// SPDX-License-Identifier: MIT

package graph

import (
	"errors"

	"github.com/katalvlaran/lvtrace/step"
)

// Sentinel errors for graph input validation.
var (
	// ErrEmptyNodeID indicates a node with an empty ID.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrDuplicateNode indicates two nodes with the same ID.
	ErrDuplicateNode = errors.New("graph: duplicate node ID")

	// ErrNodeNotFound indicates an edge endpoint or start node that does not exist.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrNegativeWeight indicates a negative edge weight where only non-negative ones are allowed.
	ErrNegativeWeight = errors.New("graph: negative edge weight encountered")
)

// Node is a caller-supplied vertex. X and Y are presentation-only coordinates.
type Node struct {
	ID string  `json:"id" mapstructure:"id"`
	X  float64 `json:"x" mapstructure:"x"`
	Y  float64 `json:"y" mapstructure:"y"`
}

// Edge is a caller-supplied connection between two nodes.
type Edge struct {
	Source string  `json:"source" mapstructure:"source"`
	Target string  `json:"target" mapstructure:"target"`
	Weight float64 `json:"weight" mapstructure:"weight"`
}

// TraversalFunc is the signature shared by BFS, DFS, Dijkstra, Bellman–Ford and Prim.
type TraversalFunc func(nodes []Node, edges []Edge, start string) ([]step.Graph, error)

// GlobalFunc is the signature shared by Kruskal and Floyd–Warshall.
type GlobalFunc func(nodes []Node, edges []Edge) ([]step.Graph, error)
