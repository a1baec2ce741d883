// Package graph provides Graph, an immutable adjacency-list representation of
// a weighted graph whose vertices are the integers [0, V).
//
// What:
//
//   - New builds the graph once from a vertex count and an edge list.
//   - Neighbors(v) returns the outgoing (neighbor, weight) arcs of v in
//     insertion order; an index outside [0, V) fails with ErrOutOfRange.
//   - Weights are any integer or floating-point type (see Weight). Negative
//     weights are stored as given; the graph only remembers that one exists,
//     so algorithms that cannot handle them can refuse up front.
//   - Infinity[W]() is the distance sentinel for unreachable vertices.
//
// Options:
//
//   - WithDirected(false): mirror every edge (undirected graph).
//   - WithoutLoops():      reject self-loops.
//   - WithoutMultiEdges(): reject parallel edges.
//
// Concurrency:
//
//	A Graph is never mutated after New returns. Any number of shortest-path
//	runs may share one Graph without synchronisation.
//
// Complexity:
//
//   - New:       O(V + E)
//   - Neighbors: O(1)
//   - Edges:     O(E) (defensive copy)
package graph
