package graph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/graph"
	"github.com/katalvlaran/lvtrace/samples"
	"github.com/katalvlaran/lvtrace/step"
)

// sample is the five-node weighted graph used throughout: the shortest A→E
// distance is 5 (A–D–E) and the MST weight is 8.
func sample() ([]graph.Node, []graph.Edge) {
	nodes := []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}}
	edges := []graph.Edge{
		{Source: "A", Target: "B", Weight: 4},
		{Source: "A", Target: "D", Weight: 2},
		{Source: "B", Target: "C", Weight: 3},
		{Source: "B", Target: "D", Weight: 1},
		{Source: "C", Target: "E", Weight: 2},
		{Source: "D", Target: "E", Weight: 3},
	}
	return nodes, edges
}

// symmetric returns edges plus their reversals, so directed algorithms see
// the same graph the undirected ones do.
func symmetric(edges []graph.Edge) []graph.Edge {
	out := append([]graph.Edge(nil), edges...)
	for _, e := range edges {
		out = append(out, graph.Edge{Source: e.Target, Target: e.Source, Weight: e.Weight})
	}
	return out
}

func distances(s step.Graph) map[string]step.Dist {
	out := make(map[string]step.Dist, len(s.Nodes))
	for _, n := range s.Nodes {
		out[n.ID] = n.Distance
	}
	return out
}

func TestValidation(t *testing.T) {
	nodes, edges := sample()

	_, err := graph.BFS([]graph.Node{{ID: "A"}, {ID: "A"}}, nil, "A")
	assert.ErrorIs(t, err, graph.ErrDuplicateNode)

	_, err = graph.DFS([]graph.Node{{ID: ""}}, nil, "A")
	assert.ErrorIs(t, err, graph.ErrEmptyNodeID)

	_, err = graph.Kruskal(nodes, append(edges, graph.Edge{Source: "A", Target: "Z", Weight: 1}))
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)

	_, err = graph.Prim(nodes, edges, "Z")
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)

	_, err = graph.Dijkstra(nodes, append(edges, graph.Edge{Source: "A", Target: "C", Weight: -1}), "A")
	assert.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestBFS_Order(t *testing.T) {
	nodes, edges := sample()
	steps, err := graph.BFS(nodes, edges, "A")
	require.NoError(t, err)

	last := step.Last(steps)
	require.Equal(t, step.KindComplete, last.Type)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, last.Order)
	assert.Equal(t, map[string]step.Dist{"A": 0, "B": 1, "C": 2, "D": 1, "E": 2}, distances(last))
	assert.Equal(t, 5, step.Count(steps, step.KindVisit))
	assert.Equal(t, 5, step.Count(steps, step.KindEnqueue))

	// The first step precedes every visit.
	for _, n := range steps[0].Nodes {
		assert.False(t, n.Visited, n.ID)
	}
	for _, n := range last.Nodes {
		assert.True(t, n.Visited, n.ID)
		assert.False(t, n.InQueue, n.ID)
	}
}

func TestDFS_Order(t *testing.T) {
	nodes, edges := sample()
	steps, err := graph.DFS(nodes, edges, "A")
	require.NoError(t, err)

	last := step.Last(steps)
	assert.Equal(t, []string{"A", "B", "C", "E", "D"}, last.Order)
	assert.Equal(t, 5, step.Count(steps, step.KindVisit))

	parents := map[string]string{}
	for _, n := range last.Nodes {
		parents[n.ID] = n.Parent
	}
	assert.Equal(t, map[string]string{"A": "", "B": "A", "C": "B", "E": "C", "D": "E"}, parents)
}

func TestDijkstra_Sample(t *testing.T) {
	nodes, edges := sample()
	steps, err := graph.Dijkstra(nodes, edges, "A")
	require.NoError(t, err)

	last := step.Last(steps)
	require.Equal(t, step.KindComplete, last.Type)
	assert.Equal(t, map[string]step.Dist{"A": 0, "B": 3, "C": 6, "D": 2, "E": 5}, distances(last))
	assert.Equal(t, step.KindInitialize, steps[0].Type)

	// Selected edges form the shortest-path tree.
	selected := 0
	for _, e := range last.Edges {
		if e.Selected {
			selected++
		}
		assert.False(t, e.Highlighted)
	}
	assert.Equal(t, 4, selected)
}

func TestDijkstra_AgreesWithBellmanFord(t *testing.T) {
	nodes, edges := sample()
	edges = append(edges,
		graph.Edge{Source: "A", Target: "E", Weight: 9},
		graph.Edge{Source: "C", Target: "D", Weight: 0.5},
	)

	dj, err := graph.Dijkstra(nodes, edges, "B")
	require.NoError(t, err)
	bf, err := graph.BellmanFord(nodes, symmetric(edges), "B")
	require.NoError(t, err)

	require.Equal(t, step.KindComplete, step.Last(bf).Type)
	assert.Equal(t, distances(step.Last(dj)), distances(step.Last(bf)))
}

func TestBellmanFord_Rounds(t *testing.T) {
	nodes, edges := sample()
	steps, err := graph.BellmanFord(nodes, edges, "A")
	require.NoError(t, err)

	assert.Equal(t, len(nodes)-1, step.Count(steps, step.KindIteration))
	// Directed: C is only reachable through B.
	assert.Equal(t, map[string]step.Dist{"A": 0, "B": 4, "C": 7, "D": 2, "E": 5}, distances(step.Last(steps)))
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	nodes := []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	edges := []graph.Edge{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "B", Target: "C", Weight: -2},
		{Source: "C", Target: "A", Weight: -1},
	}
	steps, err := graph.BellmanFord(nodes, edges, "A")
	require.NoError(t, err)

	last := step.Last(steps)
	assert.Equal(t, step.KindNegativeCycle, last.Type)
	assert.True(t, last.NegativeCycle)
	assert.Zero(t, step.Count(steps, step.KindComplete))
}

func TestFloydWarshall(t *testing.T) {
	nodes, edges := sample()
	steps, err := graph.FloydWarshall(nodes, symmetric(edges))
	require.NoError(t, err)

	last := step.Last(steps)
	require.Equal(t, step.KindComplete, last.Type)
	assert.False(t, last.NegativeCycle)
	assert.Equal(t, len(nodes), step.Count(steps, step.KindIteration))

	// Row A matches Dijkstra from A.
	dj, err := graph.Dijkstra(nodes, edges, "A")
	require.NoError(t, err)
	want := distances(step.Last(dj))
	for j, n := range nodes {
		assert.Equal(t, want[n.ID], last.Matrix[0][j], n.ID)
	}

	// The initial matrix is not affected by later updates.
	assert.True(t, steps[0].Matrix[0][4].IsInf())
}

func TestFloydWarshall_NegativeCycleAndUnreachable(t *testing.T) {
	nodes := []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	edges := []graph.Edge{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "B", Target: "A", Weight: -3},
	}
	steps, err := graph.FloydWarshall(nodes, edges)
	require.NoError(t, err)

	last := step.Last(steps)
	assert.True(t, last.NegativeCycle)
	assert.True(t, last.Matrix[0][2].IsInf())
	assert.True(t, last.Matrix[2][0].IsInf())
}

func TestMST_KruskalMatchesPrim(t *testing.T) {
	nodes, edges := sample()

	kr, err := graph.Kruskal(nodes, edges)
	require.NoError(t, err)
	pr, err := graph.Prim(nodes, edges, "C")
	require.NoError(t, err)

	k, p := step.Last(kr), step.Last(pr)
	assert.Equal(t, 8.0, k.TotalWeight)
	assert.Equal(t, 8.0, p.TotalWeight)
	assert.Len(t, k.MST, len(nodes)-1)
	assert.Len(t, p.MST, len(nodes)-1)
	assert.Equal(t, step.KindSortEdges, kr[0].Type)

	// The tree is complete after B–C, so D–E and A–B are never examined.
	assert.Equal(t, 4, step.Count(kr, step.KindAddEdge))
	assert.Zero(t, step.Count(kr, step.KindSkipEdge))
}

func TestKruskal_SkipsCycleEdge(t *testing.T) {
	nodes := []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}
	edges := []graph.Edge{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "B", Target: "C", Weight: 2},
		{Source: "A", Target: "C", Weight: 3},
		{Source: "C", Target: "D", Weight: 4},
	}
	steps, err := graph.Kruskal(nodes, edges)
	require.NoError(t, err)

	assert.Equal(t, 1, step.Count(steps, step.KindSkipEdge))
	assert.Equal(t, 7.0, step.Last(steps).TotalWeight)
	for _, e := range step.Last(steps).Edges {
		assert.Equal(t, e.Source+e.Target != "AC", e.InMST, e.Source+e.Target)
	}
}

func TestMST_Disconnected(t *testing.T) {
	nodes := []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}
	edges := []graph.Edge{
		{Source: "A", Target: "B", Weight: 2},
		{Source: "C", Target: "D", Weight: 5},
	}

	kr, err := graph.Kruskal(nodes, edges)
	require.NoError(t, err)
	assert.Len(t, step.Last(kr).MST, 2)
	assert.Equal(t, 7.0, step.Last(kr).TotalWeight)
	assert.Contains(t, step.Last(kr).Description, "disconnected")

	pr, err := graph.Prim(nodes, edges, "A")
	require.NoError(t, err)
	assert.Len(t, step.Last(pr).MST, 1)
	assert.Contains(t, step.Last(pr).Description, "disconnected")

	dj, err := graph.Dijkstra(nodes, edges, "A")
	require.NoError(t, err)
	assert.True(t, distances(step.Last(dj))["C"].IsInf())
}

func TestHighlightIsTransient(t *testing.T) {
	nodes, edges := sample()
	runs := map[string]func() ([]step.Graph, error){
		"bfs":      func() ([]step.Graph, error) { return graph.BFS(nodes, edges, "A") },
		"dfs":      func() ([]step.Graph, error) { return graph.DFS(nodes, edges, "A") },
		"dijkstra": func() ([]step.Graph, error) { return graph.Dijkstra(nodes, edges, "A") },
		"kruskal":  func() ([]step.Graph, error) { return graph.Kruskal(nodes, edges) },
		"prim":     func() ([]step.Graph, error) { return graph.Prim(nodes, edges, "A") },
	}
	for name, run := range runs {
		steps, err := run()
		require.NoError(t, err, name)
		for i, s := range steps {
			lit := 0
			for _, e := range s.Edges {
				if e.Highlighted {
					lit++
				}
			}
			assert.LessOrEqual(t, lit, 1, "%s step %d", name, i)
		}
	}
}

// randomGraphs yields seeded connected graphs of varying size and weight
// range for the cross-algorithm properties below.
func randomGraphs(t *testing.T, fn func(name string, nodes []graph.Node, edges []graph.Edge)) {
	t.Helper()
	for seed := int64(1); seed <= 40; seed++ {
		size := 2 + int(seed%9)
		nodes, edges := samples.RandomGraph(
			samples.WithSeed(seed),
			samples.WithSize(size),
			samples.WithWeightFn(samples.UniformWeightFn(0, int(seed%4)*5+1)),
			samples.WithIDScheme(samples.SymbolNumberIDFn("v")),
		)
		fn(fmt.Sprintf("seed=%d size=%d", seed, size), nodes, edges)
	}
}

func TestDijkstra_AgreesWithBellmanFord_RandomGraphs(t *testing.T) {
	randomGraphs(t, func(name string, nodes []graph.Node, edges []graph.Edge) {
		for _, start := range []string{nodes[0].ID, nodes[len(nodes)-1].ID} {
			dj, err := graph.Dijkstra(nodes, edges, start)
			require.NoError(t, err, name)
			bf, err := graph.BellmanFord(nodes, symmetric(edges), start)
			require.NoError(t, err, name)

			require.Equal(t, step.KindComplete, step.Last(bf).Type, name)
			assert.Equal(t, distances(step.Last(dj)), distances(step.Last(bf)), "%s from %s", name, start)
		}
	})
}

func TestMST_KruskalMatchesPrim_RandomGraphs(t *testing.T) {
	randomGraphs(t, func(name string, nodes []graph.Node, edges []graph.Edge) {
		kr, err := graph.Kruskal(nodes, edges)
		require.NoError(t, err, name)
		pr, err := graph.Prim(nodes, edges, nodes[0].ID)
		require.NoError(t, err, name)

		k, p := step.Last(kr), step.Last(pr)
		assert.Equal(t, k.TotalWeight, p.TotalWeight, name)
		assert.Len(t, k.MST, len(nodes)-1, name)
		assert.Len(t, p.MST, len(nodes)-1, name)
	})
}

func TestMST_ConstantWeights(t *testing.T) {
	for _, size := range []int{2, 5, 9} {
		nodes, edges := samples.RandomGraph(samples.WithSize(size), samples.WithWeightFn(samples.ConstantWeightFn(3)))

		kr, err := graph.Kruskal(nodes, edges)
		require.NoError(t, err)
		pr, err := graph.Prim(nodes, edges, nodes[0].ID)
		require.NoError(t, err)

		want := float64(3 * (size - 1))
		assert.Equal(t, want, step.Last(kr).TotalWeight)
		assert.Equal(t, want, step.Last(pr).TotalWeight)
	}
}
