package sssp_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/sssp"
)

func TestBellmanFord_Scenario1(t *testing.T) {
	g := mustGraph(t, 6, scenarioEdges)
	res, err := sssp.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, sssp.AlgBellmanFord, res.Algorithm)
	assert.Equal(t, []int{0, 1, 2, 7, 9, 10}, res.Dist)
	assert.Nil(t, res.Order)
}

func TestBellmanFord_NegativeEdgeInCycle(t *testing.T) {
	// 0→1(1), 1→2(-2), 2→1(3): the 1⇄2 cycle weighs +1, so it is harmless.
	g := mustGraph(t, 4, []graph.Edge[int]{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: -2},
		{From: 2, To: 1, Weight: 3},
		{From: 2, To: 3, Weight: 4},
	})
	res, err := sssp.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, -1, 3}, res.Dist)
	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	// Neither of the other variants accepts this graph.
	_, err = sssp.Dijkstra(g, 0)
	assert.ErrorIs(t, err, sssp.ErrNegativeWeight)
	_, err = sssp.DAG(g, 0)
	assert.ErrorIs(t, err, sssp.ErrCyclicGraph)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := mustGraph(t, 3, []graph.Edge[int]{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: -2},
		{From: 2, To: 1, Weight: 1},
	})
	res, err := sssp.BellmanFord(g, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, sssp.ErrNegativeCycle)
	assert.ErrorIs(t, err, sssp.ErrPreconditionViolation)
}

func TestBellmanFord_NegativeSelfLoop(t *testing.T) {
	g := mustGraph(t, 1, []graph.Edge[int]{{From: 0, To: 0, Weight: -1}})
	_, err := sssp.BellmanFord(g, 0)
	assert.ErrorIs(t, err, sssp.ErrNegativeCycle)
}

func TestBellmanFord_UnreachableNegativeCycle(t *testing.T) {
	g := mustGraph(t, 4, []graph.Edge[int]{
		{From: 0, To: 1, Weight: 5},
		{From: 2, To: 3, Weight: -1},
		{From: 3, To: 2, Weight: -1},
	})
	res, err := sssp.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Dist[1])
	assert.False(t, res.Reachable(2))
}

func TestBellmanFord_UndirectedNegativeEdge(t *testing.T) {
	g := mustGraph(t, 2, []graph.Edge[int]{{From: 0, To: 1, Weight: -1}}, graph.WithDirected(false))
	_, err := sssp.BellmanFord(g, 0)
	assert.ErrorIs(t, err, sssp.ErrNegativeCycle)
}

// TestNegativeSumBelowTypeMinimum: -200 does not fit int8, so 2 stays
// unreached instead of wrapping to a positive distance.
func TestNegativeSumBelowTypeMinimum(t *testing.T) {
	g := mustGraph(t, 3, []graph.Edge[int8]{
		{From: 0, To: 1, Weight: -100},
		{From: 1, To: 2, Weight: -100},
	})
	inf := graph.Infinity[int8]()

	bf, err := sssp.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int8{0, -100, inf}, bf.Dist)
	assert.False(t, bf.Reachable(2))

	dag, err := sssp.DAG(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int8{0, -100, inf}, dag.Dist)
	assert.False(t, dag.Reachable(2))
}

func TestBellmanFord_Cancelled(t *testing.T) {
	g := mustGraph(t, 6, scenarioEdges)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sssp.BellmanFord(g, 0, sssp.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBellmanFord_AgreesWithDijkstra on non-negative random graphs with cycles.
func TestBellmanFord_AgreesWithDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(15)
		g := mustGraph(t, n, randomEdges(rng, n, rng.Intn(4*n+1), 0, 30, false))
		src := rng.Intn(n)

		bf, err := sssp.BellmanFord(g, src)
		require.NoError(t, err)
		dij, err := sssp.Dijkstra(g, src)
		require.NoError(t, err)
		assert.Equal(t, dij.Dist, bf.Dist, "trial %d", trial)
	}
}

// TestBellmanFord_AgreesWithDAG on mixed-sign random DAGs.
func TestBellmanFord_AgreesWithDAG(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for trial := 0; trial < 100; trial++ {
		n := 2 + rng.Intn(15)
		g := mustGraph(t, n, randomEdges(rng, n, rng.Intn(4*n), -20, 20, true))

		bf, err := sssp.BellmanFord(g, 0)
		require.NoError(t, err)
		dag, err := sssp.DAG(g, 0)
		require.NoError(t, err)
		assert.Equal(t, dag.Dist, bf.Dist, "trial %d", trial)
	}
}
