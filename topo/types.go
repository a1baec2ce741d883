// Package topo defines options, visitation colours and errors for the
// topological orderer and cycle finder.
package topo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Visitation colours of a vertex during depth-first search.
const (
	White = iota // not discovered yet
	Gray         // on the current DFS path
	Black        // it and all of its descendants are finished
)

var (
	// ErrCycleDetected indicates a back-edge, i.e. the traversed subgraph is not a DAG.
	ErrCycleDetected = errors.New("topo: cycle detected")

	// ErrUndirectedGraph indicates that an ordering was requested on an undirected graph,
	// where every edge is a two-vertex cycle.
	ErrUndirectedGraph = errors.New("topo: ordering requires a directed graph")
)

// CycleError reports the first cycle found. It matches ErrCycleDetected
// under errors.Is.
type CycleError struct {
	// Cycle is closed: Cycle[0] == Cycle[len(Cycle)-1].
	Cycle []int
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, v := range e.Cycle {
		parts[i] = strconv.Itoa(v)
	}

	return fmt.Sprintf("%s: %s", ErrCycleDetected, strings.Join(parts, "→"))
}

// Is makes errors.Is(err, ErrCycleDetected) true for any *CycleError.
func (e *CycleError) Is(target error) bool { return target == ErrCycleDetected }

// Option configures Order, Sort and FindCycle.
type Option func(*options)

type options struct {
	ctx context.Context // checked each time a vertex is discovered
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
