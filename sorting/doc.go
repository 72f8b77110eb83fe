// SPDX-License-Identifier: MIT

// Package sorting rewrites twelve classical sorting algorithms as
// step-emitting state machines.
//
// Overview:
//
//   - Every algorithm takes the caller's numbers, works on a private copy and
//     returns the full trace. The caller's slice is never modified.
//   - A KindCompare step precedes every ordering decision; every write to the
//     working array emits KindSwap, KindShift, KindInsert, KindMerge,
//     KindPlace or KindCollect; KindSorted marks positions that hold their
//     final value.
//   - The trace always ends with one KindComplete step whose Array is sorted
//     ascending and whose Sorted set covers every position.
//
// Algorithms:
//
//	Bubble, Cocktail, Comb  — exchange sorts, stop after a pass without swaps
//	Selection               — one swap per position at most
//	Insertion, Shell        — shift/insert; Shell uses gaps n/2, n/4, …, 1
//	Merge                   — top-down, stable (ties favour the left run)
//	Quick                   — Lomuto partition, last element as pivot
//	Heap                    — max-heap built from ⌊n/2⌋-1 down to 0
//	Counting                — stable right-to-left placement
//	Radix                   — LSD, 10 buckets, positive integers only
//	Bucket                  — max(5, ⌊√n⌋) buckets, traced insertion per bucket
//
// Preconditions (sentinel errors):
//
//   - ErrEmptyInput:    Counting, Radix and Bucket need min/max of a non-empty array.
//   - ErrNonPositive:   Radix accepts only positive integers.
//   - ErrRangeTooLarge: Counting refuses a value range above MaxCountingRange.
//
// Complexity:
//
//	Step emission copies the array for every step, so a trace costs
//	O(steps · n) memory on top of the algorithm's own bound. Inputs are
//	expected to be visualization-sized.
package sorting
