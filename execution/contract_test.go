package execution_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/execution"
	"github.com/katalvlaran/lvtrace/step"
)

func newExecution(created time.Time) *execution.Execution {
	return &execution.Execution{
		ID:        uuid.NewString(),
		Algorithm: "linear-search",
		Family:    step.FamilySearching,
		Input:     map[string]any{"array": []any{1.0, 2.0}, "target": 2.0},
		Steps: step.Trace{
			step.Search{Type: step.KindCompare, Description: "Compare arr[0]=1 with 2", Array: []int{1, 2}, Target: 2, Probe: []int{0}},
			step.Search{Type: step.KindComplete, Description: "Search complete", Array: []int{1, 2}, Target: 2, Result: step.Int(1)},
		},
		TotalSteps: 2,
		Completed:  true,
		CreatedAt:  created.UTC().Truncate(time.Second),
	}
}

// runStoreContract checks the behaviour every Store must share.
func runStoreContract(t *testing.T, store execution.Store) {
	ctx := context.Background()

	t.Run("Create and Get", func(t *testing.T) {
		e := newExecution(time.Now())
		require.NoError(t, store.Create(ctx, e))

		got, err := store.Get(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.ID, got.ID)
		assert.Equal(t, e.Algorithm, got.Algorithm)
		assert.Equal(t, e.Family, got.Family)
		assert.True(t, e.CreatedAt.Equal(got.CreatedAt))
		require.Len(t, got.Steps, 2)
		assert.True(t, got.Steps.Completed())
		last, _ := got.Steps.Last()
		assert.Equal(t, 1, *last.(step.Search).Result)
		assert.Equal(t, 2.0, got.Input["target"])
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.NewString())
		assert.ErrorIs(t, err, execution.ErrNotFound)
	})

	t.Run("Create Without ID", func(t *testing.T) {
		e := newExecution(time.Now())
		e.ID = ""
		assert.ErrorIs(t, store.Create(ctx, e), execution.ErrEmptyID)
	})

	t.Run("Delete", func(t *testing.T) {
		e := newExecution(time.Now())
		require.NoError(t, store.Create(ctx, e))
		require.NoError(t, store.Delete(ctx, e.ID))

		_, err := store.Get(ctx, e.ID)
		assert.ErrorIs(t, err, execution.ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, e.ID), execution.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		before, err := store.List(ctx)
		require.NoError(t, err)

		base := time.Now().Add(time.Minute)
		older := newExecution(base)
		newer := newExecution(base.Add(time.Second))
		require.NoError(t, store.Create(ctx, newer))
		require.NoError(t, store.Create(ctx, older))

		list, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, len(before)+2)
		assert.Equal(t, older.ID, list[len(list)-2].ID)
		assert.Equal(t, newer.ID, list[len(list)-1].ID)
		assert.Equal(t, 2, list[len(list)-1].TotalSteps)
	})
}

func TestTruncate(t *testing.T) {
	trace := newExecution(time.Now()).Steps

	out, cut := execution.Truncate(trace, 0)
	assert.False(t, cut)
	assert.Len(t, out, 2)

	out, cut = execution.Truncate(trace, 2)
	assert.False(t, cut)
	assert.True(t, out.Completed())

	out, cut = execution.Truncate(trace, 1)
	assert.True(t, cut)
	require.Len(t, out, 1)
	assert.False(t, out.Completed())
	assert.Equal(t, 1, cap(out))
}
