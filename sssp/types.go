// Package sssp defines the options, errors and result type shared by every
// single-source shortest-path routine in this package.
package sssp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/distance"
	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/topo"
)

// Sentinel errors returned by the shortest-path routines.
var (
	// ErrPreconditionViolation marks every "this algorithm cannot give a correct
	// answer on this graph" failure. More specific errors below are wrapped
	// together with it.
	ErrPreconditionViolation = errors.New("sssp: precondition violation")

	// ErrNegativeWeight indicates a negative edge where only non-negative weights are valid.
	ErrNegativeWeight = errors.New("sssp: negative edge weight")

	// ErrCyclicGraph indicates a cycle reachable from the source in the DAG variant.
	// It is the same value as topo.ErrCycleDetected.
	ErrCyclicGraph = topo.ErrCycleDetected

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("sssp: negative cycle reachable from source")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sssp: invalid option supplied")
)

// Algorithm names the routine that produced a Result.
type Algorithm string

const (
	AlgDijkstra    Algorithm = "dijkstra"
	AlgDAG         Algorithm = "dag"
	AlgBellmanFord Algorithm = "bellman-ford"
	AlgHops        Algorithm = "hops"
	AlgMinEffort   Algorithm = "min-effort"
)

// Option configures a shortest-path run. Invalid values are recorded and
// surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds the settings of one run.
type Options struct {
	// Ctx allows cancellation; checked once per settled vertex (or per round
	// for Bellman-Ford).
	Ctx context.Context

	// MaxDistance caps exploration: a relaxation whose result would exceed it
	// is skipped, so vertices farther than the cap stay unreached.
	// Default +Inf (no cap).
	MaxDistance float64

	// InfEdgeThreshold makes every edge with weight ≥ threshold impassable.
	// Default +Inf (every edge usable).
	InfEdgeThreshold float64

	// OnFinalize, if non-nil, is called when a vertex's distance becomes final
	// (popped by Dijkstra, processed by DAG, dequeued by Hops).
	OnFinalize func(v int)

	// OnRelax, if non-nil, is called after each successful relaxation from→to.
	OnRelax func(from, to int)

	err error
}

// DefaultOptions returns background context, no distance cap, no impassable
// edges and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithContext sets a context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance limits exploration to distances ≤ max.
// A negative or NaN max is an ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// threshold must be positive; otherwise ErrOptionViolation.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%v)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnFinalize registers a hook called when a vertex is settled.
func WithOnFinalize(fn func(v int)) Option {
	return func(o *Options) { o.OnFinalize = fn }
}

// WithOnRelax registers a hook called after every successful relaxation.
func WithOnRelax(fn func(from, to int)) Option {
	return func(o *Options) { o.OnRelax = fn }
}

// Result is the outcome of a run from Source.
type Result[W graph.Weight] struct {
	Algorithm Algorithm
	Source    int

	// Dist[v] is the shortest distance to v, or Infinity() if v was not reached.
	Dist []W

	// Parent[v] is the predecessor of v on one shortest path,
	// distance.NoParent for the source and for unreached vertices.
	Parent []int

	// Order lists vertices in the order they were settled.
	// Nil for Bellman-Ford, which has no such order.
	Order []int

	inf W
}

// Infinity returns the sentinel stored in Dist for unreached vertices.
func (r *Result[W]) Infinity() W { return r.inf }

// Distance returns Dist[v], failing with graph.ErrOutOfRange for a bad v.
func (r *Result[W]) Distance(v int) (W, error) {
	if v < 0 || v >= len(r.Dist) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", graph.ErrOutOfRange, v, len(r.Dist))
	}

	return r.Dist[v], nil
}

// Reachable reports whether v has a finite distance.
func (r *Result[W]) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != r.inf
}

// PathTo returns the vertices of a shortest path Source→…→v.
// An unreached v yields distance.ErrNoPath, never a partial path.
func (r *Result[W]) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(r.Dist) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", graph.ErrOutOfRange, v, len(r.Dist))
	}
	if !r.Reachable(v) {
		return nil, fmt.Errorf("%w: %d from %d", distance.ErrNoPath, v, r.Source)
	}

	return distance.Walk(r.Parent, r.Source, v)
}
