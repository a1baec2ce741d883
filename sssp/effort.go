package sssp

import (
	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/graph"
)

// MinEffort finds, for every vertex, the path from source whose heaviest
// edge is as light as possible. Dist[v] is that heaviest edge (the effort),
// 0 for the source. On a grid whose edge weights are height differences
// this is the minimum-effort route.
//
// The search is Dijkstra with max in place of +, so it has the same
// preconditions and errors as Dijkstra. MaxDistance caps the effort and
// InfEdgeThreshold walls off heavy edges as usual.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func MinEffort[W graph.Weight](g *graph.Graph[W], source int, opts ...Option) (*Result[W], error) {
	r, err := prepare(g, source, opts)
	if err != nil {
		return nil, err
	}
	if err = requireNonNegative(g); err != nil {
		return nil, err
	}

	n := g.VertexCount()
	finalized := make([]bool, n)
	pq := frontier.New[W](n)
	pq.Push(0, source)

	for pq.Len() > 0 {
		if err = r.cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		item, _ := pq.PopMin()
		u := item.Vertex
		if finalized[u] {
			continue
		}
		finalized[u] = true
		r.settle(u)

		arcs, _ := g.Neighbors(u)
		for _, a := range arcs {
			if float64(a.Weight) >= r.cfg.InfEdgeThreshold {
				continue
			}
			if !r.ceil.admits(a.Weight, 0) {
				continue
			}
			if !r.table.TryBottleneck(u, a.To, a.Weight) {
				continue
			}
			if r.cfg.OnRelax != nil {
				r.cfg.OnRelax(u, a.To)
			}
			dv, _ := r.table.Distance(a.To)
			pq.Push(dv, a.To)
		}
	}

	return r.result(AlgMinEffort, true), nil
}
