// Package sssp implements single-source shortest paths over a graph.Graph.
//
// What:
//
//   - Dijkstra:    non-negative weights, lazy-deletion priority frontier,
//     O((V + E) log V). Refuses graphs with a negative edge up front.
//   - DAG:         any weight sign, relaxes edges in the topological order of
//     the part reachable from the source, O(V + E). Refuses a reachable cycle.
//   - BellmanFord: any weight sign and any shape, O(V · E). Refuses a
//     reachable negative cycle.
//   - Hops:        fewest edges (breadth-first), weights ignored.
//   - WithinStops: cheapest path to one target using a bounded number of
//     intermediate vertices.
//   - MinEffort:   paths whose heaviest edge is minimal (minimax), O((V+E) log V).
//   - Auto:        Dijkstra, DAG or BellmanFord, whichever fits the graph.
//
// All sum-based routines share one relaxation primitive (distance.Table.TryRelax), so
// distances only ever decrease during a run and a parent link always changes
// together with its distance.
//
// Results:
//
//	Result.Dist[v] is the shortest distance, or Result.Infinity() when v is
//	unreachable. Result.PathTo(v) follows Result.Parent back to the source
//	and fails with distance.ErrNoPath for unreachable v.
//
// Errors (sentinel):
//
//   - graph.ErrNilGraph           nil graph.
//   - graph.ErrOutOfRange         source (or target) outside [0, V).
//   - ErrOptionViolation          invalid option value.
//   - ErrPreconditionViolation    the algorithm cannot be correct on this
//     graph; always wrapped together with one of ErrNegativeWeight,
//     ErrCyclicGraph (a *topo.CycleError), topo.ErrUndirectedGraph or
//     ErrNegativeCycle.
//   - context errors              cancelled via WithContext.
//
// Concurrency:
//
//	A run owns its table, frontier and markers; the graph is only read.
//	Independent runs over one shared graph may execute in parallel.
//
// Example:
//
//	g, _ := graph.New(3, []graph.Edge[int]{{0, 1, 4}, {1, 2, 1}, {0, 2, 7}})
//	res, err := sssp.Dijkstra(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.PathTo(2) // [0 1 2], res.Dist[2] == 5
package sssp
