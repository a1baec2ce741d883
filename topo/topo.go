// Package topo computes topological orders of directed graphs and finds cycles.
//
// Order returns the reverse depth-first post-order of the vertices reachable
// from a start vertex: for every edge u→v inside that subgraph, u precedes v.
// Sort does the same over the whole graph. Both walk the graph with an
// explicit stack of (vertex, next-arc) frames, so stack usage does not depend
// on the length of the longest path.
//
// A back-edge to a vertex still on the DFS path (Gray) means the traversed
// subgraph has a cycle; it is reported as a *CycleError instead of returning
// a meaningless order. Cycles that the traversal never reaches are not seen.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for colours, order and the explicit stack
package topo

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/shortpath/graph"
)

// frame is one entry of the explicit DFS stack.
type frame[W graph.Weight] struct {
	v    int
	arcs []graph.Arc[W]
	next int // index of the next arc to explore

	parent     int  // undirected cycle search only
	skipParent bool // the arc back to parent has not been skipped yet
}

// walker holds the state of one traversal.
type walker[W graph.Weight] struct {
	g     *graph.Graph[W]
	opts  options
	state []uint8
	order []int // post-order
	stack []frame[W]

	undirected bool // ignore one arc back to the DFS parent
}

func newWalker[W graph.Weight](g *graph.Graph[W], opts []Option) *walker[W] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.VertexCount()

	return &walker[W]{
		g:     g,
		opts:  o,
		state: make([]uint8, n),
		order: make([]int, 0, n),
	}
}

// Order returns a topological order of the vertices reachable from start.
//
// Errors:
//   - graph.ErrNilGraph      g is nil
//   - graph.ErrOutOfRange    start not in [0, V)
//   - ErrUndirectedGraph     g is undirected
//   - *CycleError            a reachable cycle (errors.Is ErrCycleDetected)
//   - ctx.Err()              cancelled via WithContext
func Order[W graph.Weight](g *graph.Graph[W], start int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start %d not in [0, %d)", graph.ErrOutOfRange, start, g.VertexCount())
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	w := newWalker(g, opts)
	if err := w.visit(start); err != nil {
		return nil, err
	}
	slices.Reverse(w.order)

	return w.order, nil
}

// Sort returns a topological order of every vertex in g. DFS roots are taken
// in ascending id order, so disconnected parts are all included.
// Errors are those of Order, minus the start check.
func Sort[W graph.Weight](g *graph.Graph[W], opts ...Option) ([]int, error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	w := newWalker(g, opts)
	for v := 0; v < g.VertexCount(); v++ {
		if w.state[v] != White {
			continue
		}
		if err := w.visit(v); err != nil {
			return nil, err
		}
	}
	slices.Reverse(w.order)

	return w.order, nil
}

// FindCycle looks for a cycle anywhere in g and returns it closed
// ([v0, ..., v0]) with found == true. In undirected graphs walking an edge
// straight back to where it came from does not count, but a second parallel
// edge or a self-loop does.
func FindCycle[W graph.Weight](g *graph.Graph[W], opts ...Option) (cycle []int, found bool, err error) {
	if g == nil {
		return nil, false, graph.ErrNilGraph
	}

	w := newWalker(g, opts)
	w.undirected = !g.Directed()
	for v := 0; v < g.VertexCount(); v++ {
		if w.state[v] != White {
			continue
		}
		err = w.visit(v)
		if err == nil {
			continue
		}
		if ce, ok := err.(*CycleError); ok {
			return ce.Cycle, true, nil
		}

		return nil, false, err
	}

	return nil, false, nil
}

// visit runs an iterative DFS from root, appending finished vertices to
// w.order. It stops at the first back-edge.
func (w *walker[W]) visit(root int) error {
	if err := w.enter(root, -1); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.arcs) {
			// All arcs explored: post-order position.
			w.state[top.v] = Black
			w.order = append(w.order, top.v)
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		u := top.arcs[top.next].To
		top.next++
		if w.undirected && top.skipParent && u == top.parent {
			top.skipParent = false
			continue
		}

		switch w.state[u] {
		case White:
			// top is not used after enter; the stack may have been reallocated.
			if err := w.enter(u, top.v); err != nil {
				return err
			}
		case Gray:
			return w.cycleTo(u)
		}
	}

	return nil
}

// enter colours v Gray and pushes its frame.
func (w *walker[W]) enter(v, parent int) error {
	select {
	case <-w.opts.ctx.Done():
		return w.opts.ctx.Err()
	default:
	}

	arcs, err := w.g.Neighbors(v)
	if err != nil {
		return err
	}
	w.state[v] = Gray
	w.stack = append(w.stack, frame[W]{
		v:          v,
		arcs:       arcs,
		parent:     parent,
		skipParent: parent >= 0,
	})

	return nil
}

// cycleTo builds the cycle closed by a back-edge from the stack top to u.
// Every Gray vertex is on the stack, so u is found.
func (w *walker[W]) cycleTo(u int) error {
	i := len(w.stack) - 1
	for w.stack[i].v != u {
		i--
	}
	cycle := make([]int, 0, len(w.stack)-i+1)
	for _, f := range w.stack[i:] {
		cycle = append(cycle, f.v)
	}
	cycle = append(cycle, u)

	return &CycleError{Cycle: cycle}
}
