package step_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/step"
)

func TestDist_JSON(t *testing.T) {
	data, err := json.Marshal([]step.Dist{0, 2.5, step.Inf})
	require.NoError(t, err)
	assert.JSONEq(t, `[0, 2.5, null]`, string(data))

	var back []step.Dist
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, step.Dist(2.5), back[1])
	assert.True(t, back[2].IsInf())
	assert.Equal(t, "∞", back[2].String())
	assert.Equal(t, "2.5", back[1].String())
}

func TestTrace_RoundTrip(t *testing.T) {
	trace := step.Trace{
		step.Sort{Type: step.KindSwap, Description: "swap", Array: []int{2, 1}, Indices: []int{0, 1}, Pivot: step.Int(1)},
		step.Search{Type: step.KindCalculateMid, Array: []int{1, 2, 3}, Target: 2, Range: &step.Span{Low: 0, High: 2}},
		step.Graph{
			Type:  step.KindRelax,
			Nodes: []step.NodeState{{ID: "A", Distance: 0}, {ID: "B", Distance: step.Inf}},
			Edges: []step.EdgeState{{Source: "A", Target: "B", Weight: 3, Highlighted: true}},
		},
		step.DP{Type: step.KindFill, Table: [][]step.Dist{{0, step.Inf}}, Cell: &step.Cell{Row: 0, Col: 1}},
		step.String{Type: step.KindComplete, Matches: []int{4}, PatternMatches: map[string][]int{"ab": {4}}},
	}

	data, err := json.Marshal(trace)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"family":"graph"`)

	var back step.Trace
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, trace, back)
}

func TestTrace_UnknownFamily(t *testing.T) {
	var back step.Trace
	err := json.Unmarshal([]byte(`[{"family":"quantum","type":"complete"}]`), &back)
	assert.ErrorIs(t, err, step.ErrUnknownFamily)
}

func TestTrace_Helpers(t *testing.T) {
	var empty step.Trace
	_, ok := empty.Last()
	assert.False(t, ok)
	assert.False(t, empty.Completed())

	steps := []step.Sort{
		{Type: step.KindCompare},
		{Type: step.KindSwap},
		{Type: step.KindCompare},
		{Type: step.KindComplete},
	}
	assert.Equal(t, 2, step.Count(steps, step.KindCompare))
	assert.Equal(t, step.KindComplete, step.Last(steps).Type)

	trace := step.Erase(steps)
	assert.True(t, trace.Completed())
	assert.Equal(t, 1, trace.Count(step.KindSwap))
	assert.Equal(t, step.FamilySorting, trace[0].Family())
}

func TestRecorder(t *testing.T) {
	var rec step.Recorder[step.Search]
	rec.Add(step.Search{Type: step.KindProbe})
	rec.Add(step.Search{Type: step.KindFound})
	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, step.KindFound, rec.Steps()[1].Type)
}

func TestClones(t *testing.T) {
	m := [][]int{{1, 2}, {3}}
	c := step.CloneIntMatrix(m)
	c[0][0] = 9
	assert.Equal(t, 1, m[0][0])

	assert.Nil(t, step.CloneInts(nil))
	assert.Nil(t, step.CloneDistMatrix(nil))

	b := [][]bool{{true}}
	cb := step.CloneBoolMatrix(b)
	cb[0][0] = false
	assert.True(t, b[0][0])
}
