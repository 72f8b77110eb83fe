package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/graph"
	"github.com/katalvlaran/lvtrace/step"
)

// ExampleDijkstra runs Dijkstra on the five-node sample graph and prints the
// final distances.
func ExampleDijkstra() {
	nodes := []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}}
	edges := []graph.Edge{
		{Source: "A", Target: "B", Weight: 4},
		{Source: "A", Target: "D", Weight: 2},
		{Source: "B", Target: "C", Weight: 3},
		{Source: "B", Target: "D", Weight: 1},
		{Source: "C", Target: "E", Weight: 2},
		{Source: "D", Target: "E", Weight: 3},
	}
	steps, err := graph.Dijkstra(nodes, edges, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(step.Last(steps).Description)
	// Output:
	// Dijkstra complete. Distances: A(0), B(3), C(6), D(2), E(5)
}

// ExampleKruskal prints the spanning tree chosen for the same graph.
func ExampleKruskal() {
	nodes := []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}}
	edges := []graph.Edge{
		{Source: "A", Target: "B", Weight: 4},
		{Source: "A", Target: "D", Weight: 2},
		{Source: "B", Target: "C", Weight: 3},
		{Source: "B", Target: "D", Weight: 1},
		{Source: "C", Target: "E", Weight: 2},
		{Source: "D", Target: "E", Weight: 3},
	}
	steps, _ := graph.Kruskal(nodes, edges)
	for _, e := range step.Last(steps).MST {
		fmt.Printf("%s–%s %g\n", e.Source, e.Target, e.Weight)
	}
	// Output:
	// B–D 1
	// A–D 2
	// C–E 2
	// B–C 3
}
