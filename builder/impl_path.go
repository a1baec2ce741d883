package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"

	// MinPathNodes is the smallest path with an edge.
	MinPathNodes = 2
	// MinCycleNodes is the smallest ring without loops or parallel edges.
	MinCycleNodes = 3
)

// Path returns a Constructor for the path 0→1→…→n-1 (n ≥ 2).
// Edge order: i→i+1 for i ascending.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(cfg builderConfig) (int, []graph.Edge[float64], error) {
		if n < MinPathNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		edges := make([]graph.Edge[float64], 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, graph.Edge[float64]{From: i, To: i + 1, Weight: cfg.weight()})
		}

		return n, edges, nil
	}
}

// Cycle returns a Constructor for the ring 0→1→…→n-1→0 (n ≥ 3).
// Edge order: i→(i+1) mod n for i ascending.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (int, []graph.Edge[float64], error) {
		if n < MinCycleNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		edges := make([]graph.Edge[float64], 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, graph.Edge[float64]{From: i, To: (i + 1) % n, Weight: cfg.weight()})
		}

		return n, edges, nil
	}
}
