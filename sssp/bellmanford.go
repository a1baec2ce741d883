package sssp

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// BellmanFord computes shortest distances from source on any graph, negative
// weights and cycles included, as long as no negative cycle is reachable
// from source. It runs up to V-1 relaxation rounds over all arcs and stops
// early once a round changes nothing. One extra round detects a reachable
// negative cycle, reported as ErrPreconditionViolation+ErrNegativeCycle.
//
// In an undirected graph a negative edge is itself a negative cycle.
//
// Result.Order is nil: there is no single moment a vertex becomes final.
// OnFinalize is not called.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V)
func BellmanFord[W graph.Weight](g *graph.Graph[W], source int, opts ...Option) (*Result[W], error) {
	r, err := prepare(g, source, opts)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	for round := 1; round < n; round++ {
		if err = r.cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		if !r.round(nil) {
			break
		}
	}

	var from, to int
	if r.round(func(u, v int) { from, to = u, v }) {
		return nil, fmt.Errorf("%w: %w: still relaxing %d→%d after %d rounds", ErrPreconditionViolation, ErrNegativeCycle, from, to, n-1)
	}

	return r.result(AlgBellmanFord, false), nil
}

// round relaxes every arc out of every reached vertex once and reports
// whether anything changed. changed, if non-nil, sees the first change only.
func (r *runner[W]) round(changed func(u, v int)) bool {
	moved := false
	for u := 0; u < r.g.VertexCount(); u++ {
		if !r.table.Reached(u) {
			continue
		}
		r.relax(u, func(v int, _ W) {
			if !moved && changed != nil {
				changed(u, v)
			}
			moved = true
		})
	}

	return moved
}
