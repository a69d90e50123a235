package bfs

import "github.com/nwgraph/graphcore/graph"

// EdgeRange is a lazy breadth-first iterator over edges, classifying
// each as a tree edge, a back edge, or a path-end sentinel. Construct
// with [NewEdgeRange], then call [EdgeRange.Next] repeatedly.
type EdgeRange[K graph.Unsigned, GV any, VV any, EV any] struct {
	g       graph.Reader[K, GV, VV, EV]
	visited []bool
	queue   []frame[K, EV]
	seed    K
	seedOK  bool
	primed  bool

	kind     EdgeKind
	edge     graph.Edge[K, EV]
	inVertex K
	backKey  K
	depth    int
}

// NewEdgeRange constructs a range seeded at vertex seed. If seed is out
// of range, the first call to Next returns false.
func NewEdgeRange[K graph.Unsigned, GV any, VV any, EV any](g graph.Reader[K, GV, VV, EV], seed K) *EdgeRange[K, GV, VV, EV] {
	_, ok := g.FindVertex(seed)

	return &EdgeRange[K, GV, VV, EV]{
		g:       g,
		visited: make([]bool, g.VerticesSize()),
		seed:    seed,
		seedOK:  ok,
	}
}

func (r *EdgeRange[K, GV, VV, EV]) prime() {
	r.primed = true
	if !r.seedOK {
		return
	}
	r.visited[r.seed] = true
	r.queue = append(r.queue, newFrame[K, GV, VV, EV](r.g, r.seed, 1))
}

// Next advances the range, returning false once the seed's component
// has been fully explored.
func (r *EdgeRange[K, GV, VV, EV]) Next() bool {
	if !r.primed {
		r.prime()
	}

	for len(r.queue) > 0 {
		front := &r.queue[0]
		if front.cursor < len(front.edges) {
			e := front.edges[front.cursor]
			front.cursor++
			other, ok := e.OtherKey(front.vertex)
			if !ok {
				continue
			}
			r.edge = e
			r.inVertex = front.vertex
			r.backKey = other
			r.depth = front.depth
			if !r.visited[other] {
				r.visited[other] = true
				r.queue = append(r.queue, newFrame[K, GV, VV, EV](r.g, other, front.depth+1))
				r.kind = TreeEdge
			} else {
				r.kind = BackEdge
			}

			return true
		}

		r.inVertex = front.vertex
		r.backKey = front.vertex
		r.depth = front.depth
		r.kind = PathEnd
		r.queue = r.queue[1:]

		return true
	}

	return false
}

// Depth returns the owning frame's BFS layer at the moment of the
// current emission.
func (r *EdgeRange[K, GV, VV, EV]) Depth() int { return r.depth }

// Kind reports whether the current emission is a tree edge, back edge,
// or path-end sentinel.
func (r *EdgeRange[K, GV, VV, EV]) Kind() EdgeKind { return r.kind }

// IsTreeEdge reports whether the current emission discovered a
// previously unvisited vertex.
func (r *EdgeRange[K, GV, VV, EV]) IsTreeEdge() bool { return r.kind == TreeEdge }

// IsBackEdge reports whether the current emission reaches an
// already-visited vertex.
func (r *EdgeRange[K, GV, VV, EV]) IsBackEdge() bool { return r.kind == BackEdge }

// IsPathEnd reports whether the current emission is a path-end
// sentinel.
func (r *EdgeRange[K, GV, VV, EV]) IsPathEnd() bool { return r.kind == PathEnd }

// Edge returns the current tree or back edge. It is not meaningful for
// a path-end emission.
func (r *EdgeRange[K, GV, VV, EV]) Edge() graph.Edge[K, EV] { return r.edge }

// InVertex returns the source of the current emission: the frame vertex
// the edge was scanned from, or, for a path-end, the frame vertex whose
// edges were exhausted.
func (r *EdgeRange[K, GV, VV, EV]) InVertex() K { return r.inVertex }

// BackVertex returns the current emission's terminal endpoint: the far
// endpoint of a tree/back edge, or the exhausted frame's own vertex for
// a path-end.
func (r *EdgeRange[K, GV, VV, EV]) BackVertex() K { return r.backKey }
