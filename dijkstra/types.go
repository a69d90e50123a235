package dijkstra

import (
	"errors"

	"github.com/nwgraph/graphcore/graph"
)

// ErrSourceNotFound is returned when the requested source vertex does
// not exist in the graph.
var ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")

// WeightFunc computes the traversal cost of an edge. The default,
// supplied by [DefaultOptions], returns 1 for every edge (unweighted
// shortest path by hop count).
type WeightFunc[K graph.Unsigned, EV any] func(e graph.Edge[K, EV]) int64

// DistanceRecord is the distance-variant output record: the distance
// from firstVertex (the algorithm's source) to lastVertex.
type DistanceRecord[K graph.Unsigned] struct {
	First    K
	Last     K
	Distance int64
}

// PathRecord is the path-variant output record: a reconstructed path
// from source to Path's last element, and its total distance. Source's
// own record is Path == []K{source}, Distance == 0.
type PathRecord[K graph.Unsigned] struct {
	Path     []K
	Distance int64
}

// Options configures a Dijkstra run.
type Options[K graph.Unsigned, EV any] struct {
	LeavesOnly bool
	WeightFn   WeightFunc[K, EV]
}

// Option is a functional option over Options.
type Option[K graph.Unsigned, EV any] func(*Options[K, EV])

// WithLeavesOnly restricts output to reachable vertices, other than the
// source, whose edge range ([graph.Reader.EdgesAt]) is empty.
func WithLeavesOnly[K graph.Unsigned, EV any]() Option[K, EV] {
	return func(o *Options[K, EV]) { o.LeavesOnly = true }
}

// WithWeightFunc overrides the default unit-weight function.
func WithWeightFunc[K graph.Unsigned, EV any](fn WeightFunc[K, EV]) Option[K, EV] {
	return func(o *Options[K, EV]) { o.WeightFn = fn }
}

// DefaultOptions returns an Options with the unit-weight default and
// LeavesOnly disabled.
func DefaultOptions[K graph.Unsigned, EV any]() Options[K, EV] {
	return Options[K, EV]{
		WeightFn: func(graph.Edge[K, EV]) int64 { return 1 },
	}
}
