package bellmanford

import (
	"math"

	"github.com/nwgraph/graphcore/graph"
)

// run performs the |V|-round relaxation loop (with early exit once a
// round makes no improvement), then, if requested, one further pass to
// test for a still-relaxable edge — a reachable negative-weight cycle.
func run[K graph.Unsigned, GV any, VV any, EV any](
	g graph.Reader[K, GV, VV, EV],
	source K,
	cfg Options[K, EV],
) (distance []int64, predecessor []K, negativeCycle bool) {
	n := g.VerticesSize()
	distance = make([]int64, n)
	predecessor = make([]K, n)
	for i := range distance {
		distance[i] = math.MaxInt64
		predecessor[i] = graph.NoKey[K]()
	}
	distance[source] = 0
	predecessor[source] = source

	edges := g.Edges()
	for i := 0; i < n; i++ {
		changed := false
		for _, e := range edges {
			u, v := e.Key()
			if distance[u] == math.MaxInt64 {
				continue
			}
			if d := distance[u] + cfg.WeightFn(e); d < distance[v] {
				distance[v] = d
				predecessor[v] = u
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	if cfg.DetectNegativeCycle {
		for _, e := range edges {
			u, v := e.Key()
			if distance[u] == math.MaxInt64 {
				continue
			}
			if distance[u]+cfg.WeightFn(e) < distance[v] {
				negativeCycle = true

				break
			}
		}
	}

	return distance, predecessor, negativeCycle
}

// leafSet derives the leaf set by scanning every edge and marking each
// edge's source as non-leaf: a leaf is a vertex that is the source of no
// edge, whether or not its edges belong to the shortest-path tree.
func leafSet[K graph.Unsigned, EV any](edges []graph.Edge[K, EV], n int) []bool {
	leaf := make([]bool, n)
	for i := range leaf {
		leaf[i] = true
	}
	for _, e := range edges {
		u, _ := e.Key()
		leaf[u] = false
	}

	return leaf
}

// Distances computes the distance from source to every reachable
// vertex (or, with [WithLeavesOnly], only to reachable vertices that are
// the source of no edge). With [WithDetectNegativeCycle], a reachable negative-weight
// cycle is reported via the boolean return and the records slice is nil.
func Distances[K graph.Unsigned, GV any, VV any, EV any](
	g graph.Reader[K, GV, VV, EV],
	source K,
	opts ...Option[K, EV],
) ([]DistanceRecord[K], bool, error) {
	cfg := DefaultOptions[K, EV]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := g.FindVertex(source); !ok {
		return nil, false, ErrSourceNotFound
	}

	distance, _, negativeCycle := run[K, GV, VV, EV](g, source, cfg)
	if negativeCycle {
		return nil, true, nil
	}

	var leaf []bool
	if cfg.LeavesOnly {
		leaf = leafSet(g.Edges(), len(distance))
	}

	out := make([]DistanceRecord[K], 0, len(distance))
	for v := 0; v < len(distance); v++ {
		if distance[v] == math.MaxInt64 {
			continue
		}
		if cfg.LeavesOnly && !leaf[v] {
			continue
		}
		out = append(out, DistanceRecord[K]{First: source, Last: K(v), Distance: distance[v]})
	}

	return out, false, nil
}

// Paths computes, for every vertex reachable from source (or, with
// [WithLeavesOnly], only those that are the source of no edge), the full reconstructed path from source
// to that vertex plus its total distance. With [WithDetectNegativeCycle],
// a reachable negative-weight cycle is reported via the boolean return
// and the records slice is nil.
func Paths[K graph.Unsigned, GV any, VV any, EV any](
	g graph.Reader[K, GV, VV, EV],
	source K,
	opts ...Option[K, EV],
) ([]PathRecord[K], bool, error) {
	cfg := DefaultOptions[K, EV]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := g.FindVertex(source); !ok {
		return nil, false, ErrSourceNotFound
	}

	distance, predecessor, negativeCycle := run[K, GV, VV, EV](g, source, cfg)
	if negativeCycle {
		return nil, true, nil
	}

	var leaf []bool
	if cfg.LeavesOnly {
		leaf = leafSet(g.Edges(), len(distance))
	}

	out := make([]PathRecord[K], 0, len(distance))
	for v := 0; v < len(distance); v++ {
		if distance[v] == math.MaxInt64 {
			continue
		}
		if cfg.LeavesOnly && !leaf[v] {
			continue
		}
		out = append(out, PathRecord[K]{Path: reconstructPath(predecessor, source, K(v)), Distance: distance[v]})
	}

	return out, false, nil
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
