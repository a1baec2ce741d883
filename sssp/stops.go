package sssp

import (
	"fmt"

	"github.com/katalvlaran/shortpath/distance"
	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/graph"
)

// WithinStops returns the cheapest src→dst path that passes through at most
// maxStops intermediate vertices (i.e. uses at most maxStops+1 edges), with
// its cost.
//
// The same vertex reached with different edge counts is a different state,
// so the search runs Dijkstra over (vertex, edges used) pairs: state
// used·V + v. The first time any state of dst is popped its cost is minimal.
// Weights must be non-negative, as for Dijkstra. OnRelax sees plain vertex
// pairs; OnFinalize is not called since a vertex may be settled once per
// edge count.
//
// Errors: those of Dijkstra, graph.ErrOutOfRange for dst, ErrOptionViolation
// for maxStops < 0, distance.ErrNoPath when no path fits the limit.
//
// Complexity:
//
//   - Time:  O(K · (V + E) log(K · V)) with K = min(maxStops+2, V)
//   - Space: O(K · V)
func WithinStops[W graph.Weight](g *graph.Graph[W], src, dst, maxStops int, opts ...Option) (W, []int, error) {
	r, err := prepare(g, src, opts)
	if err != nil {
		return 0, nil, err
	}
	n := g.VertexCount()
	if !g.Contains(dst) {
		return 0, nil, fmt.Errorf("%w: target %d not in [0, %d)", graph.ErrOutOfRange, dst, n)
	}
	if maxStops < 0 {
		return 0, nil, fmt.Errorf("%w: maxStops must be non-negative (%d)", ErrOptionViolation, maxStops)
	}
	if err = requireNonNegative(g); err != nil {
		return 0, nil, err
	}
	if src == dst {
		return 0, []int{src}, nil
	}

	// A cheapest path never needs to repeat a vertex, so V-1 edges always suffice.
	limit := n - 1
	if maxStops < n-1 {
		limit = maxStops + 1
	}

	states, err := distance.New[W](n*(limit+1), src)
	if err != nil {
		return 0, nil, err
	}
	done := make([]bool, n*(limit+1))
	pq := frontier.New[W](n)
	pq.Push(0, src)

	for pq.Len() > 0 {
		if err = r.cfg.Ctx.Err(); err != nil {
			return 0, nil, err
		}
		item, _ := pq.PopMin()
		s := item.Vertex
		if done[s] {
			continue
		}
		done[s] = true
		v, used := s%n, s/n

		if v == dst {
			path, werr := distance.Walk(states.Parents(), src, s)
			if werr != nil {
				return 0, nil, werr
			}
			for i := range path {
				path[i] %= n
			}

			return item.Priority, path, nil
		}
		if used == limit {
			continue
		}

		arcs, _ := g.Neighbors(v)
		for _, a := range arcs {
			if float64(a.Weight) >= r.cfg.InfEdgeThreshold {
				continue
			}
			if !r.ceil.admits(item.Priority, a.Weight) {
				continue
			}
			next := (used+1)*n + a.To
			if !states.TryRelax(s, next, a.Weight) {
				continue
			}
			if r.cfg.OnRelax != nil {
				r.cfg.OnRelax(v, a.To)
			}
			d, _ := states.Distance(next)
			pq.Push(d, next)
		}
	}

	return 0, nil, fmt.Errorf("%w: %d from %d within %d stops", distance.ErrNoPath, dst, src, maxStops)
}
