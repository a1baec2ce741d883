package sssp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/topo"
)

// DAG computes shortest distances from source by relaxing edges in
// topological order. Negative weights are fine: when a vertex is processed
// every edge into it has already been relaxed, so its distance is final.
//
// Only the part of g reachable from source has to be acyclic. A reachable
// cycle fails with an error matching ErrPreconditionViolation and
// ErrCyclicGraph (a *topo.CycleError carrying the cycle is wrapped).
// Cycles elsewhere in g are ignored. Undirected graphs are rejected the same
// way, with topo.ErrUndirectedGraph.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V)
func DAG[W graph.Weight](g *graph.Graph[W], source int, opts ...Option) (*Result[W], error) {
	r, err := prepare(g, source, opts)
	if err != nil {
		return nil, err
	}

	order, err := topo.Order(g, source, topo.WithContext(r.cfg.Ctx))
	if err != nil {
		if errors.Is(err, topo.ErrCycleDetected) || errors.Is(err, topo.ErrUndirectedGraph) {
			return nil, fmt.Errorf("%w: %w", ErrPreconditionViolation, err)
		}

		return nil, err
	}

	for _, u := range order {
		if err = r.cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		// Reachable in the graph but cut off by MaxDistance or impassable edges.
		if !r.table.Reached(u) {
			continue
		}
		r.settle(u)
		r.relax(u, nil)
	}

	return r.result(AlgDAG, true), nil
}
