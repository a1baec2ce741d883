// Package graph defines the read-only, integer-indexed weighted graph used by
// every shortest-path routine in this module.
//
// This file declares Weight, Edge, Arc, Graph, GraphOption and the sentinel
// errors. Construction and queries live in graph.go.
//
// Errors:
//
//	ErrNilGraph            - graph pointer is nil.
//	ErrBadVertexCount      - vertex count is negative.
//	ErrOutOfRange          - vertex index outside [0, V).
//	ErrBadWeight           - NaN or infinite edge weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package graph

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to an algorithm.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrOutOfRange indicates a vertex index outside [0, V).
	ErrOutOfRange = errors.New("graph: vertex out of range")

	// ErrBadWeight indicates a weight that cannot take part in a sum (NaN or ±Inf).
	ErrBadWeight = errors.New("graph: weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was supplied while loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was supplied while multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// Weight is the set of numeric types an edge weight may have.
// Any integer or floating-point type works: both support addition and a total
// order over finite values.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is one input edge: a directed connection From→To with a Weight.
type Edge[W Weight] struct {
	From   int
	To     int
	Weight W
}

// Arc is an adjacency entry: the head vertex and the weight of the edge leading to it.
type Arc[W Weight] struct {
	To     int
	Weight W
}

// GraphOption configures a Graph before its edges are loaded.
type GraphOption func(c *config)

// config collects construction-time policy flags.
type config struct {
	directed   bool // mirror every edge when false
	allowLoops bool // accept From == To
	allowMulti bool // accept repeated From→To pairs
}

func defaultConfig() config {
	return config{directed: true, allowLoops: true, allowMulti: true}
}

// WithDirected sets whether edges are one-way (true, the default) or
// mirrored in both directions (false).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithoutLoops rejects self-loops with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(c *config) { c.allowLoops = false }
}

// WithoutMultiEdges rejects parallel edges with ErrMultiEdgeNotAllowed.
func WithoutMultiEdges() GraphOption {
	return func(c *config) { c.allowMulti = false }
}

// Graph is an immutable adjacency-list graph over vertices [0, V).
//
// adj[u] holds the outgoing arcs of u in input order (mirrored arcs for
// undirected graphs follow the same order). Nothing mutates a Graph after
// New returns, so any number of goroutines may read it concurrently.
type Graph[W Weight] struct {
	directed bool
	adj      [][]Arc[W]
	edges    []Edge[W] // input edges, input order

	negative    bool // at least one negative weight
	negativeIdx int  // index into edges of the first negative edge
}
