package caa

import "github.com/nwgraph/graphcore/graph"

// GraphValue returns the graph's optional user value.
// Complexity: O(1).
func (g *Graph[K, GV, VV, EV]) GraphValue() GV { return g.value }

// VerticesSize returns |V|.
// Complexity: O(1).
func (g *Graph[K, GV, VV, EV]) VerticesSize() int { return len(g.vertices) }

// Vertices returns every vertex in key order.
// Complexity: O(|V|).
func (g *Graph[K, GV, VV, EV]) Vertices() []graph.Vertex[K, VV] {
	out := make([]graph.Vertex[K, VV], len(g.vertices))
	for i := range g.vertices {
		out[i] = graph.Vertex[K, VV]{Key: K(i), Value: g.vertices[i].value}
	}

	return out
}

// FindVertex returns the vertex for key, or (zero, false) if key is out of
// range. Complexity: O(1).
func (g *Graph[K, GV, VV, EV]) FindVertex(key K) (graph.Vertex[K, VV], bool) {
	if uint64(key) >= uint64(len(g.vertices)) {
		var zero graph.Vertex[K, VV]

		return zero, false
	}

	return graph.Vertex[K, VV]{Key: key, Value: g.vertices[key].value}, true
}

// VertexValue returns the user value stored at key.
// Complexity: O(1).
func (g *Graph[K, GV, VV, EV]) VertexValue(key K) (VV, bool) {
	v, ok := g.FindVertex(key)

	return v.Value, ok
}

// VertexValuePtr returns a mutable pointer to the user value stored at
// key. This is a container-specific extension beyond the read-only
// [graph.Reader] protocol; it is never used by traversal ranges or
// shortest-path algorithms, which only read values.
func (g *Graph[K, GV, VV, EV]) VertexValuePtr(key K) (*VV, bool) {
	if uint64(key) >= uint64(len(g.vertices)) {
		return nil, false
	}

	return &g.vertices[key].value, true
}

// outRange returns [begin, end) into g.edges for vertex u's outgoing
// group, and whether u is in range.
func (g *Graph[K, GV, VV, EV]) outRange(u K) (begin, end int, ok bool) {
	if uint64(u) >= uint64(len(g.vertices)) {
		return 0, 0, false
	}
	begin = g.vertices[u].firstEdge
	if uint64(u)+1 < uint64(len(g.vertices)) {
		end = g.vertices[u+1].firstEdge
	} else {
		end = len(g.edges)
	}

	return begin, end, true
}

// EdgesAt returns u's outgoing range [firstEdge(u), firstEdge(u+1)).
// Complexity: O(outDegree(u)) to materialize the view slice.
func (g *Graph[K, GV, VV, EV]) EdgesAt(u K) []graph.Edge[K, EV] {
	begin, end, ok := g.outRange(u)
	if !ok {
		return nil
	}
	out := make([]graph.Edge[K, EV], 0, end-begin)
	for i := begin; i < end; i++ {
		out = append(out, toEdgeView(g.edges[i]))
	}

	return out
}

// OutDegree returns len(EdgesAt(u)).
// Complexity: O(1).
func (g *Graph[K, GV, VV, EV]) OutDegree(u K) (int, bool) {
	begin, end, ok := g.outRange(u)

	return end - begin, ok
}

// EdgesSize returns |E|.
// Complexity: O(1).
func (g *Graph[K, GV, VV, EV]) EdgesSize() int { return len(g.edges) }

// Edges returns every edge, in source-key order (ties broken by arrival
// order, the construction-time order).
// Complexity: O(|E|).
func (g *Graph[K, GV, VV, EV]) Edges() []graph.Edge[K, EV] {
	out := make([]graph.Edge[K, EV], len(g.edges))
	for i, e := range g.edges {
		out[i] = toEdgeView(e)
	}

	return out
}

// FindOutEdge searches u's outgoing range for the first edge reaching v.
// Complexity: O(outDegree(u)).
func (g *Graph[K, GV, VV, EV]) FindOutEdge(u, v K) (graph.Edge[K, EV], bool) {
	begin, end, ok := g.outRange(u)
	if !ok {
		var zero graph.Edge[K, EV]

		return zero, false
	}
	for i := begin; i < end; i++ {
		if g.edges[i].tgt == v {
			return toEdgeView(g.edges[i]), true
		}
	}
	var zero graph.Edge[K, EV]

	return zero, false
}

// FindEdge is an alias for FindOutEdge: CAA is directed, so "an edge
// between u and v" and "an outgoing edge from u reaching v" coincide.
func (g *Graph[K, GV, VV, EV]) FindEdge(u, v K) (graph.Edge[K, EV], bool) {
	return g.FindOutEdge(u, v)
}

// FindVertexEdge is an alias for FindOutEdge, per the access-protocol
// table (distinct containers may define incidence search differently;
// CAA's incidence range at u is its outgoing range).
func (g *Graph[K, GV, VV, EV]) FindVertexEdge(u, v K) (graph.Edge[K, EV], bool) {
	return g.FindOutEdge(u, v)
}

// EdgeValue returns a mutable pointer to the value of the first outgoing
// edge from u reaching v. Container-specific extension beyond Reader.
func (g *Graph[K, GV, VV, EV]) EdgeValue(u, v K) (*EV, bool) {
	begin, end, ok := g.outRange(u)
	if !ok {
		return nil, false
	}
	for i := begin; i < end; i++ {
		if g.edges[i].tgt == v {
			return &g.edges[i].value, true
		}
	}

	return nil, false
}

// Source returns the vertex at e's source key.
func (g *Graph[K, GV, VV, EV]) Source(e graph.Edge[K, EV]) (graph.Vertex[K, VV], bool) {
	return g.FindVertex(e.Src)
}

// Target returns the vertex at e's target key.
func (g *Graph[K, GV, VV, EV]) Target(e graph.Edge[K, EV]) (graph.Vertex[K, VV], bool) {
	return g.FindVertex(e.Tgt)
}

func toEdgeView[K graph.Unsigned, EV any](e edgeRecord[K, EV]) graph.Edge[K, EV] {
	return graph.Edge[K, EV]{Src: e.src, Tgt: e.tgt, Value: e.value}
}

// Compile-time check: *Graph satisfies the access protocol.
var _ graph.Reader[uint32, struct{}, struct{}, struct{}] = (*Graph[uint32, struct{}, struct{}, struct{}])(nil)
