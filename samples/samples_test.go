package samples_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/graph"
	"github.com/katalvlaran/lvtrace/samples"
	"github.com/katalvlaran/lvtrace/step"
)

func TestArray_Deterministic(t *testing.T) {
	a := samples.Array(samples.WithSeed(9), samples.WithSize(25), samples.WithRange(-5, 5))
	b := samples.Array(samples.WithSeed(9), samples.WithSize(25), samples.WithRange(-5, 5))
	assert.Equal(t, a, b)
	require.Len(t, a, 25)
	for _, v := range a {
		assert.GreaterOrEqual(t, v, -5)
		assert.LessOrEqual(t, v, 5)
	}
	assert.Equal(t, samples.Array(), samples.Array(), "default seed is fixed")
}

func TestSearchInput(t *testing.T) {
	arr, target := samples.SearchInput(samples.WithSeed(3))
	assert.True(t, slices.IsSorted(arr))
	assert.Contains(t, arr, target)
}

func TestSampleGraph_Scenario(t *testing.T) {
	nodes, edges := samples.SampleGraph()
	steps, err := graph.Dijkstra(nodes, edges, "A")
	require.NoError(t, err)
	for _, n := range step.Last(steps).Nodes {
		if n.ID == "E" {
			assert.Equal(t, step.Dist(5), n.Distance)
		}
	}
}

func TestRandomGraph_Connected(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		nodes, edges := samples.RandomGraph(samples.WithSeed(seed), samples.WithSize(12))
		require.Len(t, nodes, 12)
		assert.GreaterOrEqual(t, len(edges), 11)

		steps, err := graph.BFS(nodes, edges, nodes[0].ID)
		require.NoError(t, err)
		assert.Len(t, step.Last(steps).Order, 12, "seed %d", seed)
	}

	nodes, _ := samples.RandomGraph(samples.WithSize(3), samples.WithIDScheme(samples.SymbolNumberIDFn("v")))
	assert.Equal(t, "v2", nodes[2].ID)
}

func TestText_ContainsPattern(t *testing.T) {
	text, pattern := samples.Text(samples.WithSeed(4))
	assert.True(t, strings.Contains(text, pattern))
	assert.Len(t, text, 2*samples.DefaultSize)
}

func TestExcelColumnIDFn(t *testing.T) {
	assert.Equal(t, "A", samples.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", samples.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", samples.ExcelColumnIDFn(26))
	assert.Panics(t, func() { samples.ExcelColumnIDFn(-1) })
}

func TestFor_Unknown(t *testing.T) {
	_, err := samples.For("bogo-sort")
	assert.ErrorIs(t, err, samples.ErrNoSample)
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { samples.WithRange(3, 1) })
	assert.Panics(t, func() { samples.WithRand(nil) })
	assert.Panics(t, func() { samples.UniformWeightFn(5, 2) })
}

func TestFor_SizedGraph(t *testing.T) {
	fixed, err := samples.For("dijkstra")
	require.NoError(t, err)
	assert.Len(t, fixed["nodes"], 5)
	assert.Equal(t, "A", fixed["startNode"])

	input, err := samples.For("prim", samples.WithSeed(9), samples.WithSize(8),
		samples.WithIDScheme(samples.SymbolNumberIDFn("n")))
	require.NoError(t, err)
	nodes := input["nodes"].([]graph.Node)
	assert.Len(t, nodes, 8)
	assert.Equal(t, "n0", input["startNode"])

	again, err := samples.For("prim", samples.WithSeed(9), samples.WithSize(8),
		samples.WithIDScheme(samples.SymbolNumberIDFn("n")))
	require.NoError(t, err)
	assert.Equal(t, input, again, "same seed, same graph")

	global, err := samples.For("kruskal", samples.WithSize(4))
	require.NoError(t, err)
	assert.NotContains(t, global, "startNode")
	assert.Len(t, global["nodes"], 4)
}
