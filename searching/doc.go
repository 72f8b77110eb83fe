// SPDX-License-Identifier: MIT

// Package searching rewrites seven array-search algorithms as step-emitting
// state machines.
//
// Every algorithm takes (numbers, target) and returns a trace whose terminal
// decision is a KindFound step (Result = index) or a KindNotFound step
// (Result = -1), followed by the KindComplete step carrying the same result.
//
// Precondition:
//
//	All algorithms except Linear assume numbers is sorted ascending. On
//	unsorted input their behavior is undefined: they terminate, but the
//	answer is meaningless. The engines do not re-check sortedness.
//
// Algorithms and policies:
//
//	Linear        — left to right, stops at the first match
//	Binary        — mid = ⌊(left+right)/2⌋
//	Jump          — block size ⌊√n⌋, not-found as soon as a block start passes the end
//	Interpolation — probes only while arr[l] ≤ target ≤ arr[r]; a range whose
//	                end values are equal is decided by direct comparison,
//	                never by dividing by zero
//	Exponential   — doubles the bound, then binary search on [bound/2, min(bound, n-1)]
//	Ternary       — mid1 = l+(r-l)/3, mid2 = r-(r-l)/3, three disjoint branches
//	Fibonacci     — Fibonacci-offset elimination with a final offset+1 check
package searching
