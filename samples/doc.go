// SPDX-License-Identifier: MIT

// Package samples generates deterministic demo inputs for every algorithm.
//
// Overview:
//
//   - Array / SortedArray / Target: integer inputs for the sorting and
//     searching engines.
//   - SampleGraph: the fixed five-node weighted graph A–E (A→E shortest path
//     2+3 = 5, MST weight 8). RandomGraph: a seeded, connected random graph.
//   - Text: a random text plus a pattern cut from it, so at least one match
//     exists.
//   - For(id): a complete dispatcher input map for an algorithm identifier.
//
// Determinism:
//
//	Nothing here reads global randomness. Every generator draws from the
//	*rand.Rand in its options; the default is seeded with DefaultSeed, so equal
//	options always give equal output. Use WithSeed or WithRand to vary it.
//
// Options follow the functional-option pattern; option constructors panic on
// meaningless arguments (nil functions, empty ranges), generators never do.
package samples
