package topo_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/topo"
)

// BenchmarkSort_RandomDAG sorts a random DAG whose edges all point from a
// lower to a higher id.
func BenchmarkSort_RandomDAG(b *testing.B) {
	const V, E = 10000, 50000
	rng := rand.New(rand.NewSource(7))
	edges := make([]graph.Edge[int], 0, E)
	for len(edges) < E {
		u, v := rng.Intn(V), rng.Intn(V)
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		edges = append(edges, graph.Edge[int]{From: u, To: v, Weight: 1})
	}
	g, err := graph.New(V, edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = topo.Sort(g)
	}
}

// BenchmarkOrder_Grid walks a 300×300 right/down grid: long DFS chains.
func BenchmarkOrder_Grid(b *testing.B) {
	g, err := builder.BuildGraph[int](nil, nil, builder.Grid(300, 300))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := topo.Order(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
