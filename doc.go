// Package lvtrace is an instrumented algorithm execution engine: every
// algorithm it runs records an ordered trace of immutable snapshots that a
// visualizer can replay step by step.
//
// What is inside?
//
//	step/       — the Step sum type (Sort, Search, Graph, DP, String), Kind tags, Trace
//	sorting/    — twelve comparison and distribution sorts
//	searching/  — seven searches over sorted arrays
//	graph/      — BFS, DFS, Dijkstra, Bellman–Ford, Floyd–Warshall, Kruskal, Prim
//	dynamic/    — ten table-filling dynamic programs with backtracking
//	strmatch/   — naive, KMP, Rabin–Karp, Boyer–Moore, Z, Manacher, multi-pattern
//	samples/    — deterministic sample inputs for every algorithm
//	dispatch/   — the algorithm catalog and map-shaped input decoding
//	execution/  — truncation, execution stores (memory, Redis) and the run service
//
// Engines are synchronous and single-threaded: a call always runs to
// completion and returns the full trace. The last step of every trace is
// "complete" and carries the result, except for Bellman–Ford which ends with
// "negative-cycle" when one is reachable.
//
// Quick example:
//
//	steps, _ := searching.Binary([]int{1, 3, 5, 7, 9, 11}, 7)
//	for _, s := range steps {
//		fmt.Println(s.Type, s.Description)
//	}
//
// The lvtrace command wraps the same engines in a CLI and an HTTP API:
//
//	go install github.com/katalvlaran/lvtrace/cmd/lvtrace@latest
//	lvtrace run dijkstra --sample
//	lvtrace serve --config lvtrace.yaml
package lvtrace
