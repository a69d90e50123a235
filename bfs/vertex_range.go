package bfs

import "github.com/nwgraph/graphcore/graph"

// VertexRange is a lazy breadth-first iterator over reachable vertices.
// Construct with [NewVertexRange], then call [VertexRange.Next]
// repeatedly; each true result makes [VertexRange.Vertex] and
// [VertexRange.Depth] valid for the newly emitted vertex.
type VertexRange[K graph.Unsigned, GV any, VV any, EV any] struct {
	g       graph.Reader[K, GV, VV, EV]
	visited []bool
	queue   []frame[K, EV]
	started bool
	seed    K
	seedOK  bool
	current K
	depth   int
}

// NewVertexRange constructs a range seeded at vertex seed. If seed is
// out of range, the first call to Next returns false.
func NewVertexRange[K graph.Unsigned, GV any, VV any, EV any](g graph.Reader[K, GV, VV, EV], seed K) *VertexRange[K, GV, VV, EV] {
	_, ok := g.FindVertex(seed)

	return &VertexRange[K, GV, VV, EV]{
		g:       g,
		visited: make([]bool, g.VerticesSize()),
		seed:    seed,
		seedOK:  ok,
	}
}

// Next advances the range, returning false once every reachable vertex
// has been emitted.
func (r *VertexRange[K, GV, VV, EV]) Next() bool {
	if !r.started {
		r.started = true
		if !r.seedOK {
			return false
		}
		r.visited[r.seed] = true
		r.queue = append(r.queue, newFrame[K, GV, VV, EV](r.g, r.seed, 1))
		r.current = r.seed
		r.depth = 1

		return true
	}

	if len(r.queue) == 0 {
		return false
	}
	front := r.queue[0]
	r.queue = r.queue[1:]
	for _, e := range front.edges {
		other, ok := e.OtherKey(front.vertex)
		if !ok || r.visited[other] {
			continue
		}
		r.visited[other] = true
		r.queue = append(r.queue, newFrame[K, GV, VV, EV](r.g, other, front.depth+1))
	}

	if len(r.queue) == 0 {
		return false
	}
	r.current = r.queue[0].vertex
	r.depth = r.queue[0].depth

	return true
}

// Vertex returns the vertex emitted by the most recent Next call.
func (r *VertexRange[K, GV, VV, EV]) Vertex() K { return r.current }

// Depth returns the current vertex's BFS layer: 1 for the seed, 2 for
// its immediate neighbors, and so on.
func (r *VertexRange[K, GV, VV, EV]) Depth() int { return r.depth }
