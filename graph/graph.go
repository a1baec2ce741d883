package graph

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/slices"
)

// New builds a Graph with vertexCount vertices from the given edge list.
//
// Validation (in order, per edge):
//  1. vertexCount must be ≥ 0 (ErrBadVertexCount).
//  2. both endpoints must be in [0, vertexCount) (ErrOutOfRange).
//  3. the weight must be finite (ErrBadWeight).
//  4. loop and multi-edge policies (ErrLoopNotAllowed, ErrMultiEdgeNotAllowed).
//
// Negative weights are accepted; use HasNegativeWeight to find out.
//
// Complexity: O(V + E) time and space, plus O(E) expected for the
// multi-edge check when WithoutMultiEdges is set.
func New[W Weight](vertexCount int, edges []Edge[W], opts ...GraphOption) (*Graph[W], error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, vertexCount)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[W]{
		directed:    cfg.directed,
		adj:         make([][]Arc[W], vertexCount),
		edges:       make([]Edge[W], 0, len(edges)),
		negativeIdx: -1,
	}

	var seen map[[2]int]struct{}
	if !cfg.allowMulti {
		seen = make(map[[2]int]struct{}, len(edges))
	}

	for i, e := range edges {
		if e.From < 0 || e.From >= vertexCount || e.To < 0 || e.To >= vertexCount {
			return nil, fmt.Errorf("%w: edge #%d %d→%d with %d vertices", ErrOutOfRange, i, e.From, e.To, vertexCount)
		}
		if !finite(e.Weight) {
			return nil, fmt.Errorf("%w: edge #%d %d→%d weight=%v", ErrBadWeight, i, e.From, e.To, e.Weight)
		}
		if e.From == e.To && !cfg.allowLoops {
			return nil, fmt.Errorf("%w: edge #%d on vertex %d", ErrLoopNotAllowed, i, e.From)
		}
		if seen != nil {
			key := pairKey(e.From, e.To, cfg.directed)
			if _, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: edge #%d %d→%d", ErrMultiEdgeNotAllowed, i, e.From, e.To)
			}
			seen[key] = struct{}{}
		}

		g.adj[e.From] = append(g.adj[e.From], Arc[W]{To: e.To, Weight: e.Weight})
		// A mirrored self-loop would just duplicate the arc.
		if !cfg.directed && e.From != e.To {
			g.adj[e.To] = append(g.adj[e.To], Arc[W]{To: e.From, Weight: e.Weight})
		}
		if e.Weight < 0 && !g.negative {
			g.negative = true
			g.negativeIdx = len(g.edges)
		}
		g.edges = append(g.edges, e)
	}

	return g, nil
}

// VertexCount returns V. Complexity: O(1).
func (g *Graph[W]) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of input edges (mirrors are not counted).
// Complexity: O(1).
func (g *Graph[W]) EdgeCount() int { return len(g.edges) }

// Directed reports whether edges are one-way.
func (g *Graph[W]) Directed() bool { return g.directed }

// Contains reports whether v is a valid vertex index.
func (g *Graph[W]) Contains(v int) bool { return v >= 0 && v < len(g.adj) }

// Neighbors returns the outgoing arcs of v in insertion order.
// The returned slice is shared with the graph and must not be modified.
//
// Complexity: O(1).
func (g *Graph[W]) Neighbors(v int) ([]Arc[W], error) {
	if !g.Contains(v) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, v, len(g.adj))
	}

	return g.adj[v], nil
}

// Degree returns the out-degree of v.
func (g *Graph[W]) Degree(v int) (int, error) {
	if !g.Contains(v) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, v, len(g.adj))
	}

	return len(g.adj[v]), nil
}

// Edges returns a copy of the input edges in input order.
// Complexity: O(E).
func (g *Graph[W]) Edges() []Edge[W] {
	return slices.Clone(g.edges)
}

// HasNegativeWeight reports whether any edge weight is below zero.
func (g *Graph[W]) HasNegativeWeight() bool { return g.negative }

// NegativeEdge returns the first negative-weight edge in input order.
func (g *Graph[W]) NegativeEdge() (Edge[W], bool) {
	if !g.negative {
		return Edge[W]{}, false
	}

	return g.edges[g.negativeIdx], true
}

// Infinity returns the sentinel distance for unreachable vertices:
// +Inf for floating-point weights and the largest representable value for
// integer weights. Named types are resolved by their underlying kind.
func Infinity[W Weight]() W {
	var w W
	v := reflect.ValueOf(&w).Elem()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(1))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(math.MaxInt64 >> (64 - v.Type().Bits()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(math.MaxUint64 >> (64 - v.Type().Bits()))
	}

	return w
}

// Lowest returns the most negative representable weight: -Inf for
// floating-point weights, the type minimum for signed integers and 0 for
// unsigned ones.
func Lowest[W Weight]() W {
	var w W
	v := reflect.ValueOf(&w).Elem()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(-1))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(math.MinInt64 >> (64 - v.Type().Bits()))
	}

	return w
}

// finite rejects NaN and ±Inf. Integer conversions to float64 are always finite.
func finite[W Weight](w W) bool {
	f := float64(w)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// pairKey normalises an endpoint pair so that undirected u–v and v–u collide.
func pairKey(from, to int, directed bool) [2]int {
	if !directed && from > to {
		from, to = to, from
	}

	return [2]int{from, to}
}
