package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

const methodGrid = "Grid"

// MinGridDim is the smallest rows or cols value; a 1×1 grid has no edges.
const MinGridDim = 1

// GridVertex maps cell (r, c) of a grid with cols columns to its vertex id
// (row-major).
func GridVertex(r, c, cols int) int {
	return r*cols + c
}

// Grid returns a Constructor for a rows×cols 4-neighbourhood grid with
// vertices numbered row-major (see GridVertex).
//
// Each cell links to its right and bottom neighbour. In a directed graph the
// grid is therefore acyclic with every path moving right or down; in an
// undirected one it is the usual walkable grid.
// Edge order: row-major cells, right before bottom.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (int, []graph.Edge[float64], error) {
		if rows < MinGridDim || cols < MinGridDim {
			return 0, nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		edges := make([]graph.Edge[float64], 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridVertex(r, c, cols)
				if c+1 < cols {
					edges = append(edges, graph.Edge[float64]{From: u, To: GridVertex(r, c+1, cols), Weight: cfg.weight()})
				}
				if r+1 < rows {
					edges = append(edges, graph.Edge[float64]{From: u, To: GridVertex(r+1, c, cols), Weight: cfg.weight()})
				}
			}
		}

		return rows * cols, edges, nil
	}
}
