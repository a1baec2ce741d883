// Package builder produces deterministic graph fixtures for shortest-path
// runs: classic topologies (Path, Cycle, Star, Complete, Grid) and seeded
// random ones (RandomSparse, RandomDAG), with pluggable edge-weight
// distributions.
//
// Every constructor works over the vertex range [0, n) and emits edges in a
// stable, documented order. BuildGraph composes constructors over the same
// range (the largest n wins) and hands the result to graph.New:
//
//	g, err := builder.BuildGraph[int64](
//		nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(1, 9)},
//		builder.Path(100), builder.RandomDAG(100, 0.05),
//	)
//
// Options:
//
//   - WithSeed / WithRand select the RNG for random topologies and weights.
//   - WithWeightFn and its shorthands (WithConstantWeight, WithUniformWeight,
//     WithIntWeight) select the weight distribution.
//
// Option constructors panic on meaningless input (nil RNG, min > max);
// constructors never panic and report sentinel errors instead.
//
// Weights are drawn as float64 and converted to the graph's weight type, so
// integer graphs should use WithIntWeight or WithConstantWeight.
package builder
