package sssp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/graph"
)

// scenarioEdges is the reference DAG 0→1→2→{3,4}, 3→4, 4→5.
var scenarioEdges = []graph.Edge[int]{
	{From: 0, To: 1, Weight: 1},
	{From: 1, To: 2, Weight: 1},
	{From: 2, To: 3, Weight: 5},
	{From: 2, To: 4, Weight: 8},
	{From: 3, To: 4, Weight: 2},
	{From: 4, To: 5, Weight: 1},
}

// mustGraph builds a graph or fails the test.
func mustGraph[W graph.Weight](t testing.TB, n int, edges []graph.Edge[W], opts ...graph.GraphOption) *graph.Graph[W] {
	t.Helper()
	g, err := graph.New(n, edges, opts...)
	require.NoError(t, err)

	return g
}

// randomEdges returns m random edges over n vertices with weights in [lo, hi].
// With dag set, every edge goes from a lower to a higher id.
func randomEdges(rng *rand.Rand, n, m int, lo, hi int64, dag bool) []graph.Edge[int64] {
	edges := make([]graph.Edge[int64], 0, m)
	for len(edges) < m {
		u, v := rng.Intn(n), rng.Intn(n)
		if dag {
			if u == v {
				continue
			}
			if u > v {
				u, v = v, u
			}
		}
		w := lo + rng.Int63n(hi-lo+1)
		edges = append(edges, graph.Edge[int64]{From: u, To: v, Weight: w})
	}

	return edges
}

// bruteForce returns the minimum total weight over every simple path from
// source, and false for vertices no path reaches. Exponential; small graphs only.
func bruteForce(g *graph.Graph[int64], source int) ([]int64, []bool) {
	n := g.VertexCount()
	best := make([]int64, n)
	seen := make([]bool, n)
	onPath := make([]bool, n)

	var walk func(u int, d int64)
	walk = func(u int, d int64) {
		if !seen[u] || d < best[u] {
			best[u], seen[u] = d, true
		}
		onPath[u] = true
		arcs, _ := g.Neighbors(u)
		for _, a := range arcs {
			if !onPath[a.To] {
				walk(a.To, d+a.Weight)
			}
		}
		onPath[u] = false
	}
	walk(source, 0)

	return best, seen
}

// pathWeight sums the cheapest arc for each consecutive pair of path.
func pathWeight(t *testing.T, g *graph.Graph[int64], path []int) int64 {
	t.Helper()
	var total int64
	for i := 1; i < len(path); i++ {
		arcs, err := g.Neighbors(path[i-1])
		require.NoError(t, err)
		found := false
		var w int64
		for _, a := range arcs {
			if a.To == path[i] && (!found || a.Weight < w) {
				w, found = a.Weight, true
			}
		}
		require.True(t, found, "no edge %d→%d on path %v", path[i-1], path[i], path)
		total += w
	}

	return total
}
