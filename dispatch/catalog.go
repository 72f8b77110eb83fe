// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/katalvlaran/lvtrace/dynamic"
	"github.com/katalvlaran/lvtrace/graph"
	"github.com/katalvlaran/lvtrace/searching"
	"github.com/katalvlaran/lvtrace/sorting"
	"github.com/katalvlaran/lvtrace/step"
	"github.com/katalvlaran/lvtrace/strmatch"
)

// Algorithm describes one runnable algorithm.
type Algorithm struct {
	ID     string      `json:"id"`
	Family step.Family `json:"family"`
	Name   string      `json:"name"`
	Params []string    `json:"params"`
}

// entry pairs the public description with its engine adapter.
type entry struct {
	Algorithm
	run func(input map[string]any) (step.Trace, error)
}

var (
	arrayParams  = []string{"array"}
	searchParams = []string{"array", "target"}
	walkParams   = []string{"nodes", "edges", "startNode"}
	globalParams = []string{"nodes", "edges"}
	textParams   = []string{"text", "pattern"}
)

func sortEntry(id, name string, fn sorting.Func) entry {
	return entry{
		Algorithm: Algorithm{ID: id, Family: step.FamilySorting, Name: name, Params: arrayParams},
		run: func(in map[string]any) (step.Trace, error) {
			a, err := decode[arrayArgs](in, arrayParams)
			if err != nil {
				return nil, err
			}
			steps, err := fn(a.Array)
			return erase(steps, err)
		},
	}
}

func searchEntry(id, name string, fn searching.Func) entry {
	return entry{
		Algorithm: Algorithm{ID: id, Family: step.FamilySearching, Name: name, Params: searchParams},
		run: func(in map[string]any) (step.Trace, error) {
			a, err := decode[searchArgs](in, searchParams)
			if err != nil {
				return nil, err
			}
			steps, err := fn(a.Array, a.Target)
			return erase(steps, err)
		},
	}
}

func walkEntry(id, name string, fn graph.TraversalFunc) entry {
	return entry{
		Algorithm: Algorithm{ID: id, Family: step.FamilyGraph, Name: name, Params: walkParams},
		run: func(in map[string]any) (step.Trace, error) {
			a, err := decode[graphArgs](in, walkParams)
			if err != nil {
				return nil, err
			}
			steps, err := fn(a.Nodes, a.Edges, a.StartNode)
			return erase(steps, err)
		},
	}
}

func globalEntry(id, name string, fn graph.GlobalFunc) entry {
	return entry{
		Algorithm: Algorithm{ID: id, Family: step.FamilyGraph, Name: name, Params: globalParams},
		run: func(in map[string]any) (step.Trace, error) {
			a, err := decode[graphArgs](in, globalParams)
			if err != nil {
				return nil, err
			}
			steps, err := fn(a.Nodes, a.Edges)
			return erase(steps, err)
		},
	}
}

// dpEntry adapts a DP engine whose argument struct is A.
func dpEntry[A any](id, name string, params []string, call func(A) ([]step.DP, error)) entry {
	return entry{
		Algorithm: Algorithm{ID: id, Family: step.FamilyDP, Name: name, Params: params},
		run: func(in map[string]any) (step.Trace, error) {
			a, err := decode[A](in, params)
			if err != nil {
				return nil, err
			}
			steps, err := call(a)
			return erase(steps, err)
		},
	}
}

func textEntry(id, name string, fn strmatch.Func) entry {
	return entry{
		Algorithm: Algorithm{ID: id, Family: step.FamilyString, Name: name, Params: textParams},
		run: func(in map[string]any) (step.Trace, error) {
			a, err := decode[textArgs](in, textParams)
			if err != nil {
				return nil, err
			}
			steps, err := fn(a.Text, a.Pattern)
			return erase(steps, err)
		},
	}
}

// catalog is the stable, ordered list of every algorithm.
var catalog = []entry{
	sortEntry("bubble-sort", "Bubble Sort", sorting.Bubble),
	sortEntry("selection-sort", "Selection Sort", sorting.Selection),
	sortEntry("insertion-sort", "Insertion Sort", sorting.Insertion),
	sortEntry("merge-sort", "Merge Sort", sorting.Merge),
	sortEntry("quick-sort", "Quick Sort", sorting.Quick),
	sortEntry("heap-sort", "Heap Sort", sorting.Heap),
	sortEntry("counting-sort", "Counting Sort", sorting.Counting),
	sortEntry("radix-sort", "Radix Sort", sorting.Radix),
	sortEntry("bucket-sort", "Bucket Sort", sorting.Bucket),
	sortEntry("shell-sort", "Shell Sort", sorting.Shell),
	sortEntry("cocktail-sort", "Cocktail Shaker Sort", sorting.Cocktail),
	sortEntry("comb-sort", "Comb Sort", sorting.Comb),

	searchEntry("linear-search", "Linear Search", searching.Linear),
	searchEntry("binary-search", "Binary Search", searching.Binary),
	searchEntry("jump-search", "Jump Search", searching.Jump),
	searchEntry("interpolation-search", "Interpolation Search", searching.Interpolation),
	searchEntry("exponential-search", "Exponential Search", searching.Exponential),
	searchEntry("ternary-search", "Ternary Search", searching.Ternary),
	searchEntry("fibonacci-search", "Fibonacci Search", searching.Fibonacci),

	walkEntry("bfs", "Breadth-First Search", graph.BFS),
	walkEntry("dfs", "Depth-First Search", graph.DFS),
	walkEntry("dijkstra", "Dijkstra", graph.Dijkstra),
	walkEntry("bellman-ford", "Bellman–Ford", graph.BellmanFord),
	globalEntry("floyd-warshall", "Floyd–Warshall", graph.FloydWarshall),
	globalEntry("kruskal", "Kruskal", graph.Kruskal),
	walkEntry("prim", "Prim", graph.Prim),

	dpEntry("fibonacci", "Fibonacci", []string{"n"}, func(a fibonacciArgs) ([]step.DP, error) {
		return dynamic.Fibonacci(a.N)
	}),
	dpEntry("knapsack", "0/1 Knapsack", []string{"weights", "values", "capacity"}, func(a knapsackArgs) ([]step.DP, error) {
		return dynamic.Knapsack(a.Weights, a.Values, a.Capacity)
	}),
	dpEntry("lcs", "Longest Common Subsequence", []string{"str1", "str2"}, func(a pairArgs) ([]step.DP, error) {
		return dynamic.LCS(a.Str1, a.Str2)
	}),
	dpEntry("edit-distance", "Edit Distance", []string{"str1", "str2"}, func(a pairArgs) ([]step.DP, error) {
		return dynamic.EditDistance(a.Str1, a.Str2)
	}),
	dpEntry("coin-change", "Coin Change", []string{"coins", "amount"}, func(a coinArgs) ([]step.DP, error) {
		return dynamic.CoinChange(a.Coins, a.Amount)
	}),
	dpEntry("matrix-chain", "Matrix Chain Multiplication", []string{"dimensions"}, func(a chainArgs) ([]step.DP, error) {
		return dynamic.MatrixChain(a.Dimensions)
	}),
	dpEntry("lis", "Longest Increasing Subsequence", arrayParams, func(a arrayArgs) ([]step.DP, error) {
		return dynamic.LIS(a.Array)
	}),
	dpEntry("rod-cutting", "Rod Cutting", []string{"prices", "length"}, func(a rodArgs) ([]step.DP, error) {
		return dynamic.RodCutting(a.Prices, a.Length)
	}),
	dpEntry("subset-sum", "Subset Sum", searchParams, func(a subsetArgs) ([]step.DP, error) {
		return dynamic.SubsetSum(a.Array, a.Target)
	}),
	dpEntry("palindrome-partition", "Palindrome Partitioning", []string{"text"}, func(a palindromeArgs) ([]step.DP, error) {
		return dynamic.PalindromePartition(a.Text)
	}),

	textEntry("naive", "Naive String Search", strmatch.Naive),
	textEntry("kmp", "Knuth–Morris–Pratt", strmatch.KMP),
	textEntry("rabin-karp", "Rabin–Karp", strmatch.RabinKarp),
	textEntry("boyer-moore", "Boyer–Moore", strmatch.BoyerMoore),
	textEntry("z-algorithm", "Z-Algorithm", strmatch.ZAlgorithm),
	{
		Algorithm: Algorithm{ID: "manacher", Family: step.FamilyString, Name: "Manacher", Params: []string{"text"}},
		run: func(in map[string]any) (step.Trace, error) {
			a, err := decode[textArgs](in, []string{"text"})
			if err != nil {
				return nil, err
			}
			steps, err := strmatch.Manacher(a.Text)
			return erase(steps, err)
		},
	},
	{
		Algorithm: Algorithm{ID: "multi-pattern", Family: step.FamilyString, Name: "Multi-Pattern Search", Params: []string{"text", "patterns"}},
		run: func(in map[string]any) (step.Trace, error) {
			a, err := decode[multiArgs](in, []string{"text", "patterns"})
			if err != nil {
				return nil, err
			}
			steps, err := strmatch.MultiPattern(a.Text, a.Patterns)
			return erase(steps, err)
		},
	},
}

// erase converts a typed engine result into a Trace.
func erase[S step.Step](steps []S, err error) (step.Trace, error) {
	if err != nil {
		return nil, err
	}
	return step.Erase(steps), nil
}
