// Package distance holds the per-run distance and predecessor tables shared by
// every shortest-path variant, together with the single relaxation primitive
// they all use.
//
// A Table starts with dist[source] = 0 and every other entry at the infinity
// sentinel (graph.Infinity). Values only ever decrease: TryRelax lowers a
// distance and records the predecessor in the same step, or changes nothing.
package distance

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/shortpath/graph"
)

// NoParent marks a vertex without a predecessor (the source, or unreached).
const NoParent = -1

// ErrNoPath indicates that the requested target was never reached from the source.
var ErrNoPath = errors.New("distance: no path to target")

// Table maps each vertex to its best known distance and predecessor.
// A Table belongs to one run; it is not safe for concurrent mutation.
type Table[W graph.Weight] struct {
	source int
	inf    W
	low    W
	dist   []W
	parent []int
}

// New returns a Table for vertexCount vertices with source at distance 0.
// Returns graph.ErrOutOfRange if source is not in [0, vertexCount).
//
// Complexity: O(V).
func New[W graph.Weight](vertexCount, source int) (*Table[W], error) {
	if source < 0 || source >= vertexCount {
		return nil, fmt.Errorf("%w: source %d not in [0, %d)", graph.ErrOutOfRange, source, vertexCount)
	}
	t := &Table[W]{
		source: source,
		inf:    graph.Infinity[W](),
		low:    graph.Lowest[W](),
		dist:   make([]W, vertexCount),
		parent: make([]int, vertexCount),
	}
	for v := range t.dist {
		t.dist[v] = t.inf
		t.parent[v] = NoParent
	}
	t.dist[source] = 0

	return t, nil
}

// TryRelax tests the edge from→to with weight w. If dist[from]+w is strictly
// smaller than dist[to], it stores the new distance, sets parent[to] = from and
// returns true. Otherwise the table is unchanged and it returns false.
//
// An unreached from never relaxes anything. For integer weights, a sum that
// would overflow the sentinel, or wrap below the type minimum, counts as
// "no improvement".
//
// from and to must be valid indices; callers take them from the graph.
func (t *Table[W]) TryRelax(from, to int, w W) bool {
	d := t.dist[from]
	if d == t.inf {
		return false
	}
	if w > 0 && d > t.inf-w {
		return false
	}
	if w < 0 && d < t.low-w {
		return false
	}
	cand := d + w
	if cand >= t.dist[to] {
		return false
	}
	t.dist[to] = cand
	t.parent[to] = from

	return true
}

// TryBottleneck is TryRelax for minimax paths: the candidate is
// max(dist[from], w) instead of the sum. It never overflows.
func (t *Table[W]) TryBottleneck(from, to int, w W) bool {
	d := t.dist[from]
	if d == t.inf {
		return false
	}
	cand := max(d, w)
	if cand >= t.dist[to] {
		return false
	}
	t.dist[to] = cand
	t.parent[to] = from

	return true
}

// Source returns the source vertex.
func (t *Table[W]) Source() int { return t.source }

// Len returns the number of vertices.
func (t *Table[W]) Len() int { return len(t.dist) }

// Infinity returns the sentinel stored for unreached vertices.
func (t *Table[W]) Infinity() W { return t.inf }

// Distance returns the current distance of v (the sentinel if unreached).
func (t *Table[W]) Distance(v int) (W, error) {
	if err := t.check(v); err != nil {
		return 0, err
	}

	return t.dist[v], nil
}

// Reached reports whether v has a finite distance. Out-of-range v is unreached.
func (t *Table[W]) Reached(v int) bool {
	return v >= 0 && v < len(t.dist) && t.dist[v] != t.inf
}

// Parent returns the predecessor of v, or NoParent.
func (t *Table[W]) Parent(v int) (int, error) {
	if err := t.check(v); err != nil {
		return NoParent, err
	}

	return t.parent[v], nil
}

// Distances returns a copy of the distance column.
func (t *Table[W]) Distances() []W { return slices.Clone(t.dist) }

// Parents returns a copy of the predecessor column.
func (t *Table[W]) Parents() []int { return slices.Clone(t.parent) }

// PathTo rebuilds the source→target vertex sequence by following parent links
// back from target and reversing. An unreached target yields ErrNoPath rather
// than a partial path.
//
// Complexity: O(path length).
func (t *Table[W]) PathTo(target int) ([]int, error) {
	if err := t.check(target); err != nil {
		return nil, err
	}
	if !t.Reached(target) {
		return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, target, t.source)
	}

	return Walk(t.parent, t.source, target)
}

// Walk follows parent links from target back to source and returns the path
// in source→target order. It fails with ErrNoPath if the chain breaks or
// loops before reaching source.
func Walk(parent []int, source, target int) ([]int, error) {
	path := []int{target}
	for v := target; v != source; {
		v = parent[v]
		// A chain longer than V vertices must contain a loop.
		if v == NoParent || len(path) > len(parent) {
			return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, target, source)
		}
		path = append(path, v)
	}
	slices.Reverse(path)

	return path, nil
}

func (t *Table[W]) check(v int) error {
	if v < 0 || v >= len(t.dist) {
		return fmt.Errorf("%w: %d not in [0, %d)", graph.ErrOutOfRange, v, len(t.dist))
	}

	return nil
}
