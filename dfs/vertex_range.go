package dfs

import "github.com/nwgraph/graphcore/graph"

// VertexRange is a lazy depth-first iterator over reachable vertices.
// Construct with [NewVertexRange], then call [VertexRange.Next]
// repeatedly; each true result makes [VertexRange.Vertex] and
// [VertexRange.Depth] valid for the newly emitted vertex.
type VertexRange[K graph.Unsigned, GV any, VV any, EV any] struct {
	g       graph.Reader[K, GV, VV, EV]
	visited []bool
	stack   []frame[K, EV]
	started bool
	seed    K
	seedOK  bool
	current K
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
		r.stack = append(r.stack, newFrame[K, GV, VV, EV](r.g, r.seed))
		r.current = r.seed

		return true
	}

	for len(r.stack) > 0 {
		top := &r.stack[len(r.stack)-1]
		found := false
		for top.cursor < len(top.edges) {
			e := top.edges[top.cursor]
			top.cursor++
			other, ok := e.OtherKey(top.vertex)
			if !ok || r.visited[other] {
				continue
			}
			r.visited[other] = true
			r.stack = append(r.stack, newFrame[K, GV, VV, EV](r.g, other))
			r.current = other
			found = true

			break
		}
		if found {
			return true
		}
		r.stack = r.stack[:len(r.stack)-1]
	}

	return false
}

// Vertex returns the vertex emitted by the most recent Next call.
func (r *VertexRange[K, GV, VV, EV]) Vertex() K { return r.current }

// Depth returns the current vertex's stack depth: 1 for the seed, 2 for
// its first discovered child, and so on.
func (r *VertexRange[K, GV, VV, EV]) Depth() int { return len(r.stack) }
