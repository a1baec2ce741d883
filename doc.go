// Package shortpath computes single-source shortest paths on fixed,
// read-only weighted graphs whose vertices are the integers [0, V).
//
// The module is split into small packages, each usable on its own:
//
//	graph/    immutable adjacency-list Graph[W], Edge, Arc, Weight constraint, Infinity
//	frontier/ min-priority frontier with lazy deletion (no decrease-key)
//	distance/ distance/parent table: TryRelax, PathTo
//	topo/     iterative DFS topological order and cycle detection
//	sssp/     Dijkstra, DAG, BellmanFord, Hops, WithinStops, MinEffort and Auto
//	builder/  deterministic graph fixtures (paths, grids, random DAGs)
//
// Which routine to use:
//
//	weights ≥ 0                       → sssp.Dijkstra   O((V+E) log V)
//	acyclic from the source, any sign → sssp.DAG        O(V+E)
//	cycles and negative weights       → sssp.BellmanFord O(V·E)
//	not sure                          → sssp.Auto
//
// Weights are any integer or floating-point type. Unreached vertices report
// graph.Infinity[W]() (+Inf for floats, the type's maximum for integers) and
// PathTo returns distance.ErrNoPath for them.
//
// Errors are sentinels matched with errors.Is:
//
//	graph.ErrOutOfRange             vertex outside [0, V)
//	frontier.ErrEmptyFrontier       PopMin on an empty frontier
//	sssp.ErrPreconditionViolation   a routine's input contract is broken,
//	                                together with ErrNegativeWeight,
//	                                ErrCyclicGraph or ErrNegativeCycle
//
// Quick example:
//
//	g, _ := graph.New(3, []graph.Edge[int]{{From: 0, To: 1, Weight: 4}, {From: 1, To: 2, Weight: 1}})
//	res, _ := sssp.Dijkstra(g, 0)
//	path, _ := res.PathTo(2) // [0 1 2], res.Dist[2] == 5
//
// A Graph is never mutated after graph.New, so any number of goroutines may
// run algorithms on the same graph; each run owns its own state.
package shortpath
