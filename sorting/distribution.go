// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/lvtrace/step"
)

// Counting sorts numbers with counting sort.
//
//  1. Count occurrences over the range max-min+1 (KindCount).
//  2. Turn counts into cumulative end positions (KindAccumulate).
//  3. Place values right to left into the output (KindPlace); this keeps the
//     sort stable.
//  4. Copy the output back (KindCollect).
//
// Returns ErrEmptyInput for an empty slice and ErrRangeTooLarge when the
// value range exceeds MaxCountingRange.
func Counting(numbers []int) ([]step.Sort, error) {
	if len(numbers) == 0 {
		return nil, ErrEmptyInput
	}
	s := newSorter(numbers)
	n := len(s.arr)
	lo, hi := minMax(s.arr)
	k := hi - lo + 1
	if k <= 0 || k > MaxCountingRange {
		return nil, fmt.Errorf("%w: range %d..%d", ErrRangeTooLarge, lo, hi)
	}

	count := make([]int, k)
	for i, v := range s.arr {
		count[v-lo]++
		s.emit(step.Sort{
			Type:        step.KindCount,
			Description: fmt.Sprintf("Count value %d (count[%d]=%d)", v, v-lo, count[v-lo]),
			Indices:     []int{i},
			Aux:         count,
		})
	}

	for i := 1; i < k; i++ {
		count[i] += count[i-1]
		s.emit(step.Sort{
			Type:        step.KindAccumulate,
			Description: fmt.Sprintf("Cumulative count[%d]=%d", i, count[i]),
			Aux:         count,
		})
	}

	output := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		v := s.arr[i]
		count[v-lo]--
		output[count[v-lo]] = v
		s.emit(step.Sort{
			Type:        step.KindPlace,
			Description: fmt.Sprintf("Place %d from position %d at output[%d]", v, i, count[v-lo]),
			Indices:     []int{i},
			Aux:         output,
		})
	}

	for i, v := range output {
		s.arr[i] = v
		s.emit(step.Sort{
			Type:        step.KindCollect,
			Description: fmt.Sprintf("Copy %d back to position %d", v, i),
			Indices:     []int{i},
			Aux:         output,
		})
		s.markSorted(i)
	}

	return s.finish(), nil
}

// radixBase is the number of buckets per digit.
const radixBase = 10

// Radix sorts numbers with least-significant-digit radix sort.
// The digit count is ⌊log10(max)⌋+1, computed with integer division.
//
// Returns ErrEmptyInput for an empty slice and ErrNonPositive when any value
// is ≤ 0.
func Radix(numbers []int) ([]step.Sort, error) {
	if len(numbers) == 0 {
		return nil, ErrEmptyInput
	}
	for i, v := range numbers {
		if v <= 0 {
			return nil, fmt.Errorf("%w: numbers[%d]=%d", ErrNonPositive, i, v)
		}
	}
	s := newSorter(numbers)
	_, hi := minMax(s.arr)

	digits := 0
	for m := hi; m > 0; m /= radixBase {
		digits++
	}

	exp := 1
	for d := 0; d < digits; d++ {
		buckets := make([][]int, radixBase)
		for i, v := range s.arr {
			b := (v / exp) % radixBase
			buckets[b] = append(buckets[b], v)
			s.emit(step.Sort{
				Type:        step.KindBucket,
				Description: fmt.Sprintf("Digit %d of %d is %d: bucket %d", d+1, v, b, b),
				Indices:     []int{i},
				Buckets:     buckets,
				Exp:         exp,
			})
		}

		k := 0
		for b := range buckets {
			for _, v := range buckets[b] {
				s.arr[k] = v
				s.emit(step.Sort{
					Type:        step.KindCollect,
					Description: fmt.Sprintf("Collect %d from bucket %d into position %d", v, b, k),
					Indices:     []int{k},
					Buckets:     buckets,
					Exp:         exp,
				})
				if d == digits-1 {
					s.markSorted(k)
				}
				k++
			}
		}
		exp *= radixBase
	}

	return s.finish(), nil
}

// minBuckets is the lower bound on the bucket count of bucket sort.
const minBuckets = 5

// Bucket sorts numbers with bucket sort over max(5, ⌊√n⌋) equal-width
// buckets. Each bucket is ordered with a traced insertion pass before the
// buckets are concatenated.
//
// Returns ErrEmptyInput for an empty slice.
func Bucket(numbers []int) ([]step.Sort, error) {
	if len(numbers) == 0 {
		return nil, ErrEmptyInput
	}
	s := newSorter(numbers)
	n := len(s.arr)

	count := max(minBuckets, int(math.Sqrt(float64(n))))
	index := bucketIndexer(s.arr, count)
	buckets := make([][]int, count)
	for i, v := range s.arr {
		b := index(v)
		buckets[b] = append(buckets[b], v)
		s.emit(step.Sort{
			Type:        step.KindBucket,
			Description: fmt.Sprintf("Put %d into bucket %d", v, b),
			Indices:     []int{i},
			Buckets:     buckets,
		})
	}

	for b := range buckets {
		s.insertBucket(buckets, b)
	}

	k := 0
	for b := range buckets {
		for _, v := range buckets[b] {
			s.arr[k] = v
			s.emit(step.Sort{
				Type:        step.KindCollect,
				Description: fmt.Sprintf("Collect %d from bucket %d into position %d", v, b, k),
				Indices:     []int{k},
				Buckets:     buckets,
			})
			s.markSorted(k)
			k++
		}
	}

	return s.finish(), nil
}

// bucketIndexer maps a value of a onto [0, count) proportionally to its
// offset from min(a). The product offset·count is taken in 128 bits, so the
// full int range is accepted.
func bucketIndexer(a []int, count int) func(v int) int {
	lo, hi := minMax(a)
	span := uint64(hi) - uint64(lo) // width-1, exact in two's complement

	return func(v int) int {
		off := uint64(v) - uint64(lo)
		h, l := bits.Mul64(off, uint64(count))
		if span == math.MaxUint64 {
			return int(h)
		}
		q, _ := bits.Div64(h, l, span+1)

		return int(q)
	}
}

// insertBucket orders buckets[b] in place with insertion sort, recording each
// comparison against the held key.
func (s *sorter) insertBucket(buckets [][]int, b int) {
	bkt := buckets[b]
	for i := 1; i < len(bkt); i++ {
		key := bkt[i]
		j := i
		for j > 0 {
			s.emit(step.Sort{
				Type:        step.KindCompare,
				Description: fmt.Sprintf("Compare bucket %d value %d with key %d", b, bkt[j-1], key),
				Buckets:     buckets,
			})
			if bkt[j-1] <= key {
				break
			}
			bkt[j] = bkt[j-1]
			s.emit(step.Sort{
				Type:        step.KindShift,
				Description: fmt.Sprintf("Shift %d within bucket %d from slot %d to %d", bkt[j], b, j-1, j),
				Buckets:     buckets,
			})
			j--
		}
		bkt[j] = key
		s.emit(step.Sort{
			Type:        step.KindInsert,
			Description: fmt.Sprintf("Insert key %d into bucket %d at slot %d", key, b, j),
			Buckets:     buckets,
		})
	}
}
