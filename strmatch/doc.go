// SPDX-License-Identifier: MIT

// Package strmatch traces seven string algorithms.
//
// Overview:
//
//	Naive, KMP, RabinKarp, BoyerMoore and ZAlgorithm report every start
//	position of pattern in text. Manacher finds the longest palindromic
//	substring of text. MultiPattern runs one naive scan per pattern.
//	Positions are byte offsets; comparison is byte-wise.
//
//	Every full occurrence is announced by a KindFound step, and every trace
//	ends with one KindComplete step whose Matches holds the sorted start
//	positions (an empty, non-nil slice when there are none).
//
// Details:
//
//	KMP          LPS table by the proper-prefix-suffix recurrence; after a
//	             full match scanning resumes at lps[m-1].
//	RabinKarp    base 256, modulus 101; equal hashes are always verified
//	             byte by byte, a failed check is a KindSpuriousHit.
//	BoyerMoore   256-entry bad-character table; on mismatch at j the window
//	             moves max(1, j - last[c]).
//	ZAlgorithm   Z-array over pattern + "\x00" + text; a match is any text
//	             position whose Z value reaches len(pattern).
//	Manacher     "#"-separated transform, mirror reuse, centre and right
//	             boundary tracking.
//	MultiPattern repeated naive scans, not an Aho–Corasick automaton.
//
// Errors:
//
//   - ErrEmptyPattern when the pattern (or any pattern in a multi-pattern
//     scan) is empty.
package strmatch
