package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomDAG    = "RandomDAG"

	// MinProbability and MaxProbability bound the edge probability p.
	MinProbability = 0.0
	MaxProbability = 1.0
)

// RandomSparse returns a Constructor for an Erdős–Rényi-like graph: each
// admissible pair becomes an edge independently with probability p. Directed
// graphs try every ordered pair i≠j, undirected ones every i<j. No loops.
//
// Requires n ≥ 1, p in [0, 1] and an RNG (WithSeed/WithRand) unless p is 0
// or 1. Trials run i ascending, then j ascending, so a fixed seed fixes the
// graph.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (int, []graph.Edge[float64], error) {
		if err := checkRandom(methodRandomSparse, n, p, cfg); err != nil {
			return 0, nil, err
		}
		var edges []graph.Edge[float64]
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				if trial(cfg, p) {
					edges = append(edges, graph.Edge[float64]{From: i, To: j, Weight: cfg.weight()})
				}
			}
		}

		return n, edges, nil
	}
}

// RandomDAG is RandomSparse restricted to pairs i<j with edges i→j, so the
// result is acyclic in a directed graph with 0..n-1 as a topological order.
// Same requirements as RandomSparse.
// Complexity: O(n²).
func RandomDAG(n int, p float64) Constructor {
	return func(cfg builderConfig) (int, []graph.Edge[float64], error) {
		if err := checkRandom(methodRandomDAG, n, p, cfg); err != nil {
			return 0, nil, err
		}
		var edges []graph.Edge[float64]
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if trial(cfg, p) {
					edges = append(edges, graph.Edge[float64]{From: i, To: j, Weight: cfg.weight()})
				}
			}
		}

		return n, edges, nil
	}
}

// checkRandom validates in order: size, probability, RNG presence.
func checkRandom(method string, n int, p float64, cfg builderConfig) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d < min=1: %w", method, n, ErrTooFewVertices)
	}
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > MinProbability && p < MaxProbability {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// trial is one Bernoulli draw; p of 0 or 1 needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	}

	return cfg.rng.Float64() < p
}
