package sssp

import (
	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/graph"
)

// Dijkstra computes shortest distances from source to every vertex of g,
// which must have no negative edge weights.
//
// Every vertex moves Unvisited → Frontier → Finalized. The frontier is a
// lazy-deletion min-heap: each improvement pushes a fresh entry and entries
// for already finalized vertices are dropped when popped. The first pop of a
// vertex carries its final distance. The loop ends when the frontier is
// empty; vertices never reached keep the infinity sentinel.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (graph.ErrNilGraph).
//  2. options must be valid (ErrOptionViolation).
//  3. source must be in [0, V) (graph.ErrOutOfRange).
//  4. no edge may be negative: an O(E) pre-scan fails with an error matching
//     both ErrPreconditionViolation and ErrNegativeWeight instead of
//     returning silently wrong distances.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the frontier holding up to one entry per relaxation.
func Dijkstra[W graph.Weight](g *graph.Graph[W], source int, opts ...Option) (*Result[W], error) {
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
		item, _ := pq.PopMin() // non-empty by the loop condition
		u := item.Vertex
		// Stale entry: u was finalized through a smaller one.
		if finalized[u] {
			continue
		}
		finalized[u] = true
		r.settle(u)

		r.relax(u, func(v int, d W) {
			pq.Push(d, v)
		})
	}

	return r.result(AlgDijkstra, true), nil
}
