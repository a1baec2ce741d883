package builder

import (
	"math/rand"
)

// builderConfig aggregates the knobs used by constructors.
// Passed by value; constructors never mutate it.
type builderConfig struct {
	rng      *rand.Rand // nil: no randomness available
	weightFn WeightFn   // per-edge weight generator
	directed bool       // target graph mode, set by BuildGraph
}

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		directed: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
