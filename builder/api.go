package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// Constructor emits the vertex count and edges of one topology. Weights are
// float64 here and converted by BuildGraph. Constructors validate their
// parameters and return sentinel errors; they never panic.
type Constructor func(cfg builderConfig) (int, []graph.Edge[float64], error)

// BuildGraph resolves bopts, runs every constructor over a shared vertex
// range and builds the graph with gopts. The vertex count is the largest one
// any constructor asked for; edges keep constructor order.
//
// Errors: ErrConstructFailed for a nil constructor or when graph.New refuses
// the edges (e.g. WithoutMultiEdges over overlapping topologies), otherwise
// the constructor's sentinel, each wrapped with "BuildGraph: ".
//
// Complexity: O(len(bopts)) plus the constructors plus graph.New.
func BuildGraph[W graph.Weight](gopts []graph.GraphOption, bopts []BuilderOption, cons ...Constructor) (*graph.Graph[W], error) {
	cfg := newBuilderConfig(bopts...)
	probe, err := graph.New[W](0, nil, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}
	cfg.directed = probe.Directed()

	n := 0
	var edges []graph.Edge[W]
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		m, es, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		n = max(n, m)
		for _, e := range es {
			edges = append(edges, graph.Edge[W]{From: e.From, To: e.To, Weight: W(e.Weight)})
		}
	}

	g, err := graph.New(n, edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
