package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

const (
	methodStar     = "Star"
	methodComplete = "Complete"

	// MinStarNodes is a center plus one leaf.
	MinStarNodes = 2
)

// Star returns a Constructor with center 0 and leaves 1..n-1, edges 0→i
// (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(cfg builderConfig) (int, []graph.Edge[float64], error) {
		if n < MinStarNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		edges := make([]graph.Edge[float64], 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, graph.Edge[float64]{From: 0, To: i, Weight: cfg.weight()})
		}

		return n, edges, nil
	}
}

// Complete returns a Constructor for K_n (n ≥ 1): every ordered pair i≠j in
// a directed graph, every unordered pair i<j in an undirected one.
// Edge order: i ascending, then j ascending.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(cfg builderConfig) (int, []graph.Edge[float64], error) {
		if n < 1 {
			return 0, nil, fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		var edges []graph.Edge[float64]
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				edges = append(edges, graph.Edge[float64]{From: i, To: j, Weight: cfg.weight()})
			}
		}

		return n, edges, nil
	}
}
