package sssp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/distance"
	"github.com/katalvlaran/shortpath/graph"
)

// runner holds the mutable state of a single run.
type runner[W graph.Weight] struct {
	g     *graph.Graph[W]    // read-only within a run
	cfg   Options            // validated options
	table *distance.Table[W] // distances and parents
	order []int              // settled vertices, in order
	ceil  bound[W]           // MaxDistance in W
}

// bound is MaxDistance converted to the weight type, so that the cap is
// compared without rounding large integer distances through float64.
type bound[W graph.Weight] struct {
	on  bool
	max W
}

// newBound converts max to W. A max at or beyond Infinity is no cap at all;
// integer types keep the floor of max.
func newBound[W graph.Weight](max float64) bound[W] {
	if math.IsInf(max, 1) || max >= float64(graph.Infinity[W]()) {
		return bound[W]{}
	}

	return bound[W]{on: true, max: W(max)}
}

// admits reports whether d+w stays within the cap. d is a finite distance;
// the sum is never formed where it could wrap.
func (b bound[W]) admits(d, w W) bool {
	if !b.on {
		return true
	}
	if w <= 0 {
		if d <= b.max {
			return true
		}
		// d > max ≥ 0, so d+w cannot wrap.
		return d+w <= b.max
	}
	if w > b.max {
		return false
	}

	return d <= b.max-w
}

// prepare applies and validates options, then checks g and source.
// Validation order: nil graph, options, source range.
func prepare[W graph.Weight](g *graph.Graph[W], source int, opts []Option) (*runner[W], error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	table, err := distance.New[W](g.VertexCount(), source)
	if err != nil {
		return nil, err
	}

	return &runner[W]{
		g:     g,
		cfg:   cfg,
		table: table,
		order: make([]int, 0, g.VertexCount()),
		ceil:  newBound[W](cfg.MaxDistance),
	}, nil
}

// requireNonNegative fails with ErrPreconditionViolation+ErrNegativeWeight
// naming the first negative edge.
func requireNonNegative[W graph.Weight](g *graph.Graph[W]) error {
	if e, ok := g.NegativeEdge(); ok {
		return fmt.Errorf("%w: %w: edge %d→%d weight=%v", ErrPreconditionViolation, ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	return nil
}

// settle records u as final.
func (r *runner[W]) settle(u int) {
	r.order = append(r.order, u)
	if r.cfg.OnFinalize != nil {
		r.cfg.OnFinalize(u)
	}
}

// relax tries every usable arc out of u and calls improved(v, newDist) for
// each neighbour whose distance went down. Arcs at or above InfEdgeThreshold,
// and relaxations that would land beyond MaxDistance, are skipped.
func (r *runner[W]) relax(u int, improved func(v int, d W)) {
	arcs, _ := r.g.Neighbors(u) // u comes from the graph
	du, _ := r.table.Distance(u)
	for _, a := range arcs {
		if float64(a.Weight) >= r.cfg.InfEdgeThreshold {
			continue
		}
		if !r.ceil.admits(du, a.Weight) {
			continue
		}
		if !r.table.TryRelax(u, a.To, a.Weight) {
			continue
		}
		if r.cfg.OnRelax != nil {
			r.cfg.OnRelax(u, a.To)
		}
		if improved != nil {
			dv, _ := r.table.Distance(a.To)
			improved(a.To, dv)
		}
	}
}

// result snapshots the table into a Result.
func (r *runner[W]) result(alg Algorithm, withOrder bool) *Result[W] {
	res := &Result[W]{
		Algorithm: alg,
		Source:    r.table.Source(),
		Dist:      r.table.Distances(),
		Parent:    r.table.Parents(),
		inf:       r.table.Infinity(),
	}
	if withOrder {
		res.Order = r.order
	}

	return res
}
