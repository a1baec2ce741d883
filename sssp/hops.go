package sssp

import (
	"github.com/katalvlaran/shortpath/graph"
)

// Hops computes the fewest-edges distance from source to every vertex with
// a breadth-first search, ignoring edge weights. Dist holds hop counts in
// the graph's weight type; Parent gives one fewest-hop path.
//
// InfEdgeThreshold still removes heavy edges, and MaxDistance caps the hop
// count. Negative weights are irrelevant here.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V)
func Hops[W graph.Weight](g *graph.Graph[W], source int, opts ...Option) (*Result[W], error) {
	r, err := prepare(g, source, opts)
	if err != nil {
		return nil, err
	}

	queue := make([]int, 0, g.VertexCount())
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		if err = r.cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		u := queue[head]
		r.settle(u)

		du, _ := r.table.Distance(u)
		if !r.ceil.admits(du, 1) {
			continue
		}
		arcs, _ := g.Neighbors(u)
		for _, a := range arcs {
			if float64(a.Weight) >= r.cfg.InfEdgeThreshold {
				continue
			}
			// First discovery is the fewest-hop one; later ones never improve it.
			if !r.table.TryRelax(u, a.To, 1) {
				continue
			}
			if r.cfg.OnRelax != nil {
				r.cfg.OnRelax(u, a.To)
			}
			queue = append(queue, a.To)
		}
	}

	return r.result(AlgHops, true), nil
}
