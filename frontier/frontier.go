// Package frontier implements the min-priority queue that drives Dijkstra-style
// searches.
//
// The queue follows the "lazy decrease-key" pattern: there is no operation to
// lower the priority of an entry already in the heap. A caller that finds a
// shorter distance to vertex v simply pushes (newDist, v) again; the older
// entry stays in the heap and is discarded when it is eventually popped.
//
// Complexity:
//
//   - Push:   O(log n)
//   - PopMin: O(log n)
//   - Peek:   O(1)
//   - Space:  O(E) entries over a full run, since every relaxation may push.
package frontier

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/shortpath/graph"
)

// ErrEmptyFrontier is returned by PopMin and Peek on an empty Frontier.
var ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")

// Entry is one (tentative distance, vertex) pair.
type Entry[W graph.Weight] struct {
	Priority W
	Vertex   int
}

// Frontier is a binary min-heap of Entry ordered by Priority.
// Entries with equal Priority come out in ascending Vertex order.
//
// The zero value is an empty, ready-to-use Frontier.
type Frontier[W graph.Weight] struct {
	items entryHeap[W]
}

// New returns an empty Frontier with room for capacity entries.
func New[W graph.Weight](capacity int) *Frontier[W] {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier[W]{items: make(entryHeap[W], 0, capacity)}
}

// Len returns the number of entries, stale ones included.
func (f *Frontier[W]) Len() int { return len(f.items) }

// Push inserts (priority, vertex). Duplicates for the same vertex are allowed.
func (f *Frontier[W]) Push(priority W, vertex int) {
	heap.Push(&f.items, Entry[W]{Priority: priority, Vertex: vertex})
}

// PopMin removes and returns the entry with the smallest Priority.
func (f *Frontier[W]) PopMin() (Entry[W], error) {
	if len(f.items) == 0 {
		return Entry[W]{}, ErrEmptyFrontier
	}

	return heap.Pop(&f.items).(Entry[W]), nil
}

// Peek returns the entry PopMin would return, without removing it.
func (f *Frontier[W]) Peek() (Entry[W], error) {
	if len(f.items) == 0 {
		return Entry[W]{}, ErrEmptyFrontier
	}

	return f.items[0], nil
}

// Reset drops every entry but keeps the allocated capacity.
func (f *Frontier[W]) Reset() { f.items = f.items[:0] }

// entryHeap implements heap.Interface over Entry values.
type entryHeap[W graph.Weight] []Entry[W]

func (h entryHeap[W]) Len() int { return len(h) }

// Less orders by Priority, then by Vertex so that extraction order is reproducible.
func (h entryHeap[W]) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].Vertex < h[j].Vertex
}

func (h entryHeap[W]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an Entry[W].
func (h *entryHeap[W]) Push(x interface{}) { *h = append(*h, x.(Entry[W])) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap[W]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
