// SPDX-License-Identifier: MIT

// Package step defines the snapshot record shared by every lvtrace engine.
//
// Overview:
//
//   - An engine never returns only a final answer. It returns a trace: the
//     ordered sequence of steps, one per observable state transition, ending
//     with exactly one KindComplete step that carries the canonical result.
//   - The single exception is Bellman–Ford, whose trace may end with a
//     KindNegativeCycle step instead (a terminal failure state, not an error).
//
// Tagged union:
//
//	Step is sealed to five variants, one per algorithm family:
//
//	  Sort    — array snapshot + compared/written indices, pivot, range, sorted set
//	  Search  — array snapshot + probe indices, live range, result index
//	  Graph   — node/edge annotation snapshot, frontier, distance matrix, MST
//	  DP      — 1-D/2-D table snapshot, current cell, dependencies, backtrack path
//	  String  — text/pattern cursors, window shift, auxiliary table, matches
//
//	Each variant lists exactly the optional fields legal for its family.
//
// Immutability:
//
//	A step is a pure value. Every slice, matrix or map it holds is a copy made
//	at the moment of emission, so later mutation of the engine's working
//	structure can never change a step that was already recorded. The Clone*
//	helpers in this package are the only sanctioned way to take those copies.
//
// JSON:
//
//	Every variant marshals with "family", "type" and "description" followed by
//	its own fields. Dist encodes +Inf ("no path") as null. Trace.UnmarshalJSON
//	restores the concrete variant from the "family" tag.
package step
