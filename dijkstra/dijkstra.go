package dijkstra

import (
	"math"

	"github.com/nwgraph/graphcore/graph"
	"github.com/nwgraph/graphcore/internal/heapq"
)

// runner holds the mutable state for a single Dijkstra execution.
type runner[K graph.Unsigned, GV any, VV any, EV any] struct {
	g           graph.Reader[K, GV, VV, EV]
	options     Options[K, EV]
	distance    []int64
	predecessor []K
	leaf        []bool
	inQueue     []bool
	queue       *heapq.Queue[K, int64]
}

func newRunner[K graph.Unsigned, GV any, VV any, EV any](g graph.Reader[K, GV, VV, EV], source K, opts Options[K, EV]) *runner[K, GV, VV, EV] {
	n := g.VerticesSize()
	r := &runner[K, GV, VV, EV]{
		g:           g,
		options:     opts,
		distance:    make([]int64, n),
		predecessor: make([]K, n),
		leaf:        make([]bool, n),
		inQueue:     make([]bool, n),
		queue:       heapq.New[K, int64](n),
	}
	for i := range r.distance {
		r.distance[i] = math.MaxInt64
		r.predecessor[i] = graph.NoKey[K]()
	}
	r.distance[source] = 0
	r.predecessor[source] = source
	r.queue.Push(source, 0)
	r.inQueue[source] = true

	return r
}

// run pops the queue to exhaustion, relaxing every outgoing edge of each
// popped vertex against the current best-known distance. A popped vertex
// with at least one edge is marked non-leaf.
func (r *runner[K, GV, VV, EV]) run() {
	for r.queue.Len() > 0 {
		top := r.queue.Pop()
		u := top.Key
		r.inQueue[u] = false
		for _, e := range r.g.EdgesAt(u) {
			v, ok := e.OtherKey(u)
			if !ok {
				continue
			}
			r.leaf[u] = false
			d := r.distance[u] + r.options.WeightFn(e)
			if d < r.distance[v] {
				r.distance[v] = d
				r.predecessor[v] = u
				r.leaf[v] = true
				if !r.inQueue[v] {
					r.queue.Push(v, d)
					r.inQueue[v] = true
				}
			}
		}
	}
}

// Distances computes the distance from source to every reachable
// vertex (or, with [WithLeavesOnly], only to reachable vertices whose
// edge range is empty). Unreachable vertices are skipped from the output.
//
// Negative edge weights are a documented precondition violation: see
// the package doc.
func Distances[K graph.Unsigned, GV any, VV any, EV any](
	g graph.Reader[K, GV, VV, EV],
	source K,
	opts ...Option[K, EV],
) ([]DistanceRecord[K], error) {
	cfg := DefaultOptions[K, EV]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := g.FindVertex(source); !ok {
		return nil, ErrSourceNotFound
	}

	r := newRunner[K, GV, VV, EV](g, source, cfg)
	r.run()

	out := make([]DistanceRecord[K], 0, len(r.distance))
	for v := 0; v < len(r.distance); v++ {
		if r.distance[v] == math.MaxInt64 {
			continue
		}
		if cfg.LeavesOnly && !r.leaf[v] {
			continue
		}
		out = append(out, DistanceRecord[K]{First: source, Last: K(v), Distance: r.distance[v]})
	}

	return out, nil
}

// Paths computes, for every vertex reachable from source (or, with
// [WithLeavesOnly], only those whose edge range is empty), the full
// reconstructed path from source to that vertex plus its total distance.
func Paths[K graph.Unsigned, GV any, VV any, EV any](
	g graph.Reader[K, GV, VV, EV],
	source K,
	opts ...Option[K, EV],
) ([]PathRecord[K], error) {
	cfg := DefaultOptions[K, EV]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := g.FindVertex(source); !ok {
		return nil, ErrSourceNotFound
	}

	r := newRunner[K, GV, VV, EV](g, source, cfg)
	r.run()

	out := make([]PathRecord[K], 0, len(r.distance))
	for v := 0; v < len(r.distance); v++ {
		if r.distance[v] == math.MaxInt64 {
			continue
		}
		if cfg.LeavesOnly && !r.leaf[v] {
			continue
		}
		out = append(out, PathRecord[K]{Path: reconstructPath(r.predecessor, source, K(v)), Distance: r.distance[v]})
	}

	return out, nil
}

// reconstructPath walks predecessor from target back to source,
// buffering keys, then reverses the buffer into emission order.
func reconstructPath[K graph.Unsigned](predecessor []K, source, target K) []K {
	path := []K{target}
	cur := target
	for cur != source {
		cur = predecessor[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
