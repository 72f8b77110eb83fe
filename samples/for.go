// SPDX-License-Identifier: MIT

package samples

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtrace/graph"
)

// ErrNoSample indicates an algorithm identifier without a sample generator.
var ErrNoSample = errors.New("samples: no sample for algorithm")

// For returns a dispatcher input map for the algorithm identifier. Array and
// text inputs are drawn from opts. Graph inputs are the fixed SampleGraph
// unless WithSize is given, in which case RandomGraph builds them from opts.
// DP inputs are the fixed textbook instances used in the documentation.
func For(id string, opts ...Option) (map[string]any, error) {
	switch id {
	case "bubble-sort", "selection-sort", "insertion-sort", "merge-sort", "quick-sort", "heap-sort",
		"counting-sort", "radix-sort", "bucket-sort", "shell-sort", "cocktail-sort", "comb-sort":
		return map[string]any{"array": Array(opts...)}, nil

	case "linear-search", "binary-search", "jump-search", "interpolation-search",
		"exponential-search", "ternary-search", "fibonacci-search":
		arr, target := SearchInput(opts...)
		return map[string]any{"array": arr, "target": target}, nil

	case "bfs", "dfs", "dijkstra", "bellman-ford", "prim":
		nodes, edges := graphFor(opts)
		start := ""
		if len(nodes) > 0 {
			start = nodes[0].ID
		}
		return map[string]any{"nodes": nodes, "edges": edges, "startNode": start}, nil
	case "kruskal", "floyd-warshall":
		nodes, edges := graphFor(opts)
		return map[string]any{"nodes": nodes, "edges": edges}, nil

	case "fibonacci":
		return map[string]any{"n": 10}, nil
	case "knapsack":
		return map[string]any{"weights": []int{2, 3, 4, 5}, "values": []int{3, 4, 5, 6}, "capacity": 8}, nil
	case "lcs":
		return map[string]any{"str1": "ABCBDAB", "str2": "BDCABA"}, nil
	case "edit-distance":
		return map[string]any{"str1": "kitten", "str2": "sitting"}, nil
	case "coin-change":
		return map[string]any{"coins": []int{1, 2, 5}, "amount": 11}, nil
	case "matrix-chain":
		return map[string]any{"dimensions": []int{10, 30, 5, 60}}, nil
	case "lis":
		return map[string]any{"array": []int{10, 9, 2, 5, 3, 7, 101, 18}}, nil
	case "rod-cutting":
		return map[string]any{"prices": []int{1, 5, 8, 9, 10, 17, 17, 20}, "length": 8}, nil
	case "subset-sum":
		return map[string]any{"array": []int{3, 34, 4, 12, 5, 2}, "target": 9}, nil
	case "palindrome-partition":
		return map[string]any{"text": "aabbcbbd"}, nil

	case "naive", "kmp", "rabin-karp", "boyer-moore", "z-algorithm":
		text, pattern := Text(opts...)
		return map[string]any{"text": text, "pattern": pattern}, nil
	case "manacher":
		return map[string]any{"text": "forgeeksskeegfor"}, nil
	case "multi-pattern":
		text, pattern := Text(opts...)
		return map[string]any{"text": text, "patterns": []string{pattern, "AB", "CA"}}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNoSample, id)
}

func graphFor(opts []Option) ([]graph.Node, []graph.Edge) {
	if newConfig(opts...).sized {
		return RandomGraph(opts...)
	}
	return SampleGraph()
}
