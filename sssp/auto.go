package sssp

import (
	"errors"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/topo"
)

// Auto picks the cheapest routine that is correct for g:
//
//  1. no negative weight        → Dijkstra
//  2. acyclic from source       → DAG
//  3. otherwise                 → BellmanFord (may fail with ErrNegativeCycle)
//
// Result.Algorithm tells which one ran.
func Auto[W graph.Weight](g *graph.Graph[W], source int, opts ...Option) (*Result[W], error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	if !g.HasNegativeWeight() {
		return Dijkstra(g, source, opts...)
	}

	res, err := DAG(g, source, opts...)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, ErrCyclicGraph) && !errors.Is(err, topo.ErrUndirectedGraph) {
		return nil, err
	}

	return BellmanFord(g, source, opts...)
}
