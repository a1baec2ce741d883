package sssp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/sssp"
)

func TestAuto_PicksAlgorithm(t *testing.T) {
	cases := []struct {
		name     string
		n        int
		edges    []graph.Edge[int]
		directed bool
		want     sssp.Algorithm
		dist     []int
	}{
		{
			name:     "non-negative",
			n:        6,
			edges:    scenarioEdges,
			directed: true,
			want:     sssp.AlgDijkstra,
			dist:     []int{0, 1, 2, 7, 9, 10},
		},
		{
			name: "negative DAG",
			n:    3,
			edges: []graph.Edge[int]{
				{From: 0, To: 1, Weight: 5},
				{From: 1, To: 2, Weight: -4},
				{From: 0, To: 2, Weight: 3},
			},
			directed: true,
			want:     sssp.AlgDAG,
			dist:     []int{0, 5, 1},
		},
		{
			name: "negative with cycle",
			n:    3,
			edges: []graph.Edge[int]{
				{From: 0, To: 1, Weight: 2},
				{From: 1, To: 2, Weight: -1},
				{From: 2, To: 1, Weight: 4},
			},
			directed: true,
			want:     sssp.AlgBellmanFord,
			dist:     []int{0, 2, 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.n, tc.edges, graph.WithDirected(tc.directed))
			res, err := sssp.Auto(g, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Algorithm)
			assert.Equal(t, tc.dist, res.Dist)
		})
	}
}

func TestAuto_Errors(t *testing.T) {
	_, err := sssp.Auto[int](nil, 0)
	assert.ErrorIs(t, err, graph.ErrNilGraph)

	g := mustGraph(t, 6, scenarioEdges)
	_, err = sssp.Auto(g, 9)
	assert.ErrorIs(t, err, graph.ErrOutOfRange)
	_, err = sssp.Auto(g, 0, sssp.WithMaxDistance(-1))
	assert.ErrorIs(t, err, sssp.ErrOptionViolation)

	negCycle := mustGraph(t, 2, []graph.Edge[int]{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 0, Weight: -3},
	})
	_, err = sssp.Auto(negCycle, 0)
	assert.ErrorIs(t, err, sssp.ErrNegativeCycle)

	undirected := mustGraph(t, 2, []graph.Edge[int]{{From: 0, To: 1, Weight: -1}}, graph.WithDirected(false))
	_, err = sssp.Auto(undirected, 0)
	assert.ErrorIs(t, err, sssp.ErrNegativeCycle)

	// A DAG failure other than a cycle is returned as is.
	negDAG := mustGraph(t, 2, []graph.Edge[int]{{From: 0, To: 1, Weight: -1}})
	_, err = sssp.Auto(negDAG, 5)
	assert.ErrorIs(t, err, graph.ErrOutOfRange)
}
