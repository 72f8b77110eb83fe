package sorting_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/sorting"
	"github.com/katalvlaran/lvtrace/step"
)

// all lists every algorithm by name so property tests can range over them.
var all = map[string]sorting.Func{
	"bubble":    sorting.Bubble,
	"selection": sorting.Selection,
	"insertion": sorting.Insertion,
	"merge":     sorting.Merge,
	"quick":     sorting.Quick,
	"heap":      sorting.Heap,
	"counting":  sorting.Counting,
	"radix":     sorting.Radix,
	"bucket":    sorting.Bucket,
	"shell":     sorting.Shell,
	"cocktail":  sorting.Cocktail,
	"comb":      sorting.Comb,
}

// fixtures are positive so that radix sort accepts them too.
func fixtures() [][]int {
	r := rand.New(rand.NewSource(7))
	random := make([]int, 40)
	for i := range random {
		random[i] = 1 + r.Intn(99)
	}

	return [][]int{
		{5, 2, 4, 1, 3},
		{1},
		{2, 1},
		{3, 3, 3},
		{1, 2, 3, 4, 5, 6},
		{9, 8, 7, 6, 5, 4, 3, 2, 1},
		{170, 45, 75, 90, 802, 24, 2, 66},
		{4, 1, 4, 2, 1, 4},
		random,
	}
}

// TestSort_ResultIsSortedPermutation checks the completion contract of every algorithm.
func TestSort_ResultIsSortedPermutation(t *testing.T) {
	for name, fn := range all {
		for _, in := range fixtures() {
			original := slices.Clone(in)
			steps, err := fn(in)
			require.NoError(t, err, name)
			require.NotEmpty(t, steps, name)

			assert.Equal(t, original, in, "%s must not modify the caller's slice", name)

			last := step.Last(steps)
			assert.Equal(t, step.KindComplete, last.Type, name)
			assert.Equal(t, 1, step.Count(steps, step.KindComplete), name)

			want := slices.Clone(original)
			slices.Sort(want)
			assert.Equal(t, want, last.Array, "%s on %v", name, original)

			positions := make([]int, len(in))
			for i := range positions {
				positions[i] = i
			}
			assert.Equal(t, positions, last.Sorted, "%s must finalize every position", name)
		}
	}
}

// TestSort_SnapshotsAreCopies verifies that emitted arrays never alias each other.
func TestSort_SnapshotsAreCopies(t *testing.T) {
	for name, fn := range all {
		in := []int{5, 2, 4, 1, 3}
		steps, err := fn(in)
		require.NoError(t, err)
		require.Greater(t, len(steps), 1, name)

		first := slices.Clone(steps[0].Array)
		steps[len(steps)-1].Array[0] = -100
		assert.Equal(t, first, steps[0].Array, "%s: mutating one snapshot leaked into another", name)
	}
}

// TestBubble_Scenario reproduces the documented five-element run.
func TestBubble_Scenario(t *testing.T) {
	steps, err := sorting.Bubble([]int{5, 2, 4, 1, 3})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, step.Last(steps).Array)
	assert.Equal(t, 4, step.Count(steps, step.KindSorted))
}

// TestSort_AlreadySortedHasNoSwaps covers the short-circuiting stable sorts.
func TestSort_AlreadySortedHasNoSwaps(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7}
	for _, fn := range []sorting.Func{sorting.Bubble, sorting.Insertion, sorting.Cocktail, sorting.Comb} {
		steps, err := fn(in)
		require.NoError(t, err)
		assert.Zero(t, step.Count(steps, step.KindSwap))
		assert.Zero(t, step.Count(steps, step.KindShift))
	}

	// Bubble stops after the first pass.
	steps, _ := sorting.Bubble(in)
	assert.Equal(t, 1, step.Count(steps, step.KindSorted))
	assert.Equal(t, len(in)-1, step.Count(steps, step.KindCompare))
}

// TestSort_Empty covers the empty-array contract.
func TestSort_Empty(t *testing.T) {
	for _, fn := range []sorting.Func{sorting.Bubble, sorting.Merge, sorting.Quick, sorting.Heap, sorting.Shell, sorting.Comb} {
		steps, err := fn(nil)
		require.NoError(t, err)
		require.Len(t, steps, 1)
		assert.Equal(t, step.KindComplete, steps[0].Type)
	}

	for _, fn := range []sorting.Func{sorting.Counting, sorting.Radix, sorting.Bucket} {
		_, err := fn([]int{})
		assert.ErrorIs(t, err, sorting.ErrEmptyInput)
	}
}

// TestRadix_NonPositive verifies the positivity precondition.
func TestRadix_NonPositive(t *testing.T) {
	_, err := sorting.Radix([]int{3, 0, 2})
	assert.ErrorIs(t, err, sorting.ErrNonPositive)

	_, err = sorting.Radix([]int{-4, 2})
	assert.ErrorIs(t, err, sorting.ErrNonPositive)
}

// TestCounting_NegativeAndRange handles negative values and the range guard.
func TestCounting_NegativeAndRange(t *testing.T) {
	steps, err := sorting.Counting([]int{3, -2, 0, -2, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{-2, -2, 0, 3, 5}, step.Last(steps).Array)

	_, err = sorting.Counting([]int{0, sorting.MaxCountingRange + 1})
	assert.ErrorIs(t, err, sorting.ErrRangeTooLarge)
}

// TestQuick_PivotSteps checks the Lomuto pivot choice.
func TestQuick_PivotSteps(t *testing.T) {
	steps, err := sorting.Quick([]int{3, 1, 2})
	require.NoError(t, err)

	var first *step.Sort
	for i := range steps {
		if steps[i].Type == step.KindPivot {
			first = &steps[i]
			break
		}
	}
	require.NotNil(t, first)
	require.NotNil(t, first.Pivot)
	assert.Equal(t, 2, *first.Pivot, "last element is the first pivot")
	assert.Equal(t, &step.Span{Low: 0, High: 2}, first.Range)
}

// TestMerge_Stages checks the divide/split/merged bracketing.
func TestMerge_Stages(t *testing.T) {
	steps, err := sorting.Merge([]int{4, 3, 2, 1})
	require.NoError(t, err)

	assert.Equal(t, 3, step.Count(steps, step.KindDivide))
	assert.Equal(t, 3, step.Count(steps, step.KindSplit))
	assert.Equal(t, 3, step.Count(steps, step.KindMerged))
	assert.Equal(t, 8, step.Count(steps, step.KindMerge), "one write per element per level")
	assert.Equal(t, step.KindDivide, steps[0].Type)
}

// TestHeap_MarksEveryPosition verifies explicit sorted markers during extraction.
func TestHeap_MarksEveryPosition(t *testing.T) {
	steps, err := sorting.Heap([]int{4, 10, 3, 5, 1})
	require.NoError(t, err)
	assert.Equal(t, 5, step.Count(steps, step.KindSorted))
}

// TestRadix_DigitPasses counts bucket passes by digit length.
func TestRadix_DigitPasses(t *testing.T) {
	steps, err := sorting.Radix([]int{170, 45, 75, 90, 802, 24, 2, 66})
	require.NoError(t, err)
	// 3 digit passes × 8 values.
	assert.Equal(t, 24, step.Count(steps, step.KindBucket))
	assert.Equal(t, 24, step.Count(steps, step.KindCollect))
}

// TestSort_EmitsSortedBoundaries requires every algorithm to report finalized
// positions before completion, not only through the closing step.
func TestSort_EmitsSortedBoundaries(t *testing.T) {
	for name, fn := range all {
		for _, in := range fixtures() {
			if len(in) < 2 {
				continue
			}
			steps, err := fn(in)
			require.NoError(t, err, name)
			assert.Positive(t, step.Count(steps, step.KindSorted), "%s on %v", name, in)
		}
	}
}

// TestSort_FullPassMarksEveryPosition covers the sorts that finalize the whole
// array at once after their last pass.
func TestSort_FullPassMarksEveryPosition(t *testing.T) {
	in := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	for _, fn := range []sorting.Func{sorting.Merge, sorting.Insertion, sorting.Shell, sorting.Comb, sorting.Counting, sorting.Radix, sorting.Bucket} {
		steps, err := fn(in)
		require.NoError(t, err)
		assert.Equal(t, len(in), step.Count(steps, step.KindSorted))
	}
}

// TestBucket_TracesBucketInterior requires a compare step for every ordering
// decision inside a bucket.
func TestBucket_TracesBucketInterior(t *testing.T) {
	in := []int{29, 25, 3, 49, 9, 37, 21, 43, 27, 26, 28, 24}
	steps, err := sorting.Bucket(in)
	require.NoError(t, err)

	assert.Positive(t, step.Count(steps, step.KindCompare))
	assert.Positive(t, step.Count(steps, step.KindShift))
	for _, st := range steps {
		if st.Type == step.KindCompare {
			assert.NotEmpty(t, st.Buckets, "bucket comparisons carry the bucket snapshot")
		}
	}
	assert.Equal(t, []int{3, 9, 21, 24, 25, 26, 27, 28, 29, 37, 43, 49}, step.Last(steps).Array)
}

// TestBucket_ExtremeRange places values spanning the whole int range.
func TestBucket_ExtremeRange(t *testing.T) {
	cases := [][]int{
		{math.MinInt64, math.MaxInt64},
		{math.MaxInt64, 0, -1, math.MinInt64, 1},
		{math.MaxInt64, math.MaxInt64 - 1, math.MaxInt64 - 2},
		{math.MinInt64, math.MinInt64 + 3, math.MinInt64 + 1},
	}
	for _, in := range cases {
		var steps []step.Sort
		require.NotPanics(t, func() {
			var err error
			steps, err = sorting.Bucket(in)
			require.NoError(t, err)
		}, "%v", in)

		want := slices.Clone(in)
		slices.Sort(want)
		assert.Equal(t, want, step.Last(steps).Array)
	}
}
