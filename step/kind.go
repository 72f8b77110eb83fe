// SPDX-License-Identifier: MIT

package step

// Kind is the closed tag describing the transition a step records.
type Kind string

// Shared terminal kinds.
const (
	KindComplete Kind = "complete"
	KindFound    Kind = "found"
	KindNotFound Kind = "not-found"
)

// Sorting kinds.
const (
	KindCompare    Kind = "compare"
	KindSwap       Kind = "swap"
	KindShift      Kind = "shift"
	KindInsert     Kind = "insert"
	KindKey        Kind = "key"
	KindPivot      Kind = "pivot"
	KindDivide     Kind = "divide"
	KindSplit      Kind = "split"
	KindMerge      Kind = "merge"
	KindMerged     Kind = "merged"
	KindHeapify    Kind = "heapify"
	KindCount      Kind = "count"
	KindAccumulate Kind = "accumulate"
	KindPlace      Kind = "place"
	KindBucket     Kind = "bucket"
	KindCollect    Kind = "collect"
	KindSorted     Kind = "sorted"
	KindGap        Kind = "gap"
)

// Searching kinds.
const (
	KindCalculateMid Kind = "calculate-mid"
	KindMoveLeft     Kind = "move-left"
	KindMoveRight    Kind = "move-right"
	KindJump         Kind = "jump"
	KindProbe        Kind = "probe"
	KindBound        Kind = "bound"
)

// Graph kinds.
const (
	KindVisit         Kind = "visit"
	KindEnqueue       Kind = "enqueue"
	KindPush          Kind = "push"
	KindExplore       Kind = "explore"
	KindRelax         Kind = "relax"
	KindIteration     Kind = "iteration"
	KindUpdate        Kind = "update"
	KindNegativeCycle Kind = "negative-cycle"
	KindSortEdges     Kind = "sort-edges"
	KindCheckEdge     Kind = "check-edge"
	KindAddEdge       Kind = "add-edge"
	KindSkipEdge      Kind = "skip-edge"
	KindInitialize    Kind = "initialize"
)

// Dynamic-programming kinds. Candidate evaluations reuse KindCompare.
const (
	KindFill      Kind = "fill"
	KindBacktrack Kind = "backtrack"
)

// String-matching kinds.
const (
	KindLPS         Kind = "lps"
	KindMatch       Kind = "match"
	KindMismatch    Kind = "mismatch"
	KindHash        Kind = "hash"
	KindRollHash    Kind = "roll-hash"
	KindSpuriousHit Kind = "spurious-hit"
	KindExpand      Kind = "expand"
	KindMirror      Kind = "mirror"
	KindPattern     Kind = "pattern"
)

// Family names the engine that produced a step.
type Family string

const (
	FamilySorting   Family = "sorting"
	FamilySearching Family = "searching"
	FamilyGraph     Family = "graph"
	FamilyDP        Family = "dp"
	FamilyString    Family = "string"
)
