package sssp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/dag"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/sssp"
)

// forwardPrefix exposes vertices [0, last] of a graph whose edges all point
// to higher ids, in the shape dag.ShortestPath expects.
type forwardPrefix struct {
	g    *graph.Graph[int64]
	last int
}

func (f forwardPrefix) AppendEdges(ee []graph.Arc[int64], v int) []graph.Arc[int64] {
	arcs, _ := f.g.Neighbors(v)
	for _, a := range arcs {
		if a.To <= f.last {
			ee = append(ee, a)
		}
	}
	return ee
}

func (f forwardPrefix) Length(_ int, a graph.Arc[int64]) int64 { return a.Weight }

func (f forwardPrefix) To(_ int, a graph.Arc[int64]) int { return a.To }

// TestDAG_AgreesWithForwardDP compares against an independent dynamic
// program over forward-ordered vertices. The backbone path keeps every
// vertex reachable from 0.
func TestDAG_AgreesWithForwardDP(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph[int64](nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(-10, 20)},
			builder.Path(25), builder.RandomDAG(25, 0.2))
		require.NoError(t, err)

		res, err := sssp.DAG(g, 0)
		require.NoError(t, err)

		for target := 1; target < g.VertexCount(); target++ {
			arcs, err := dag.ShortestPath[graph.Arc[int64], int64](forwardPrefix{g: g, last: target}, target)
			require.NoError(t, err, "seed %d target %d", seed, target)

			var total int64
			for _, a := range arcs {
				total += a.Weight
			}
			assert.Equal(t, total, res.Dist[target], "seed %d target %d", seed, target)
		}
	}
}
