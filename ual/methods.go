package ual

import "github.com/nwgraph/graphcore/graph"

// GraphValue returns the graph's optional user value.
func (g *Graph[K, GV, VV, EV]) GraphValue() GV { return g.value }

// VerticesSize returns |V|.
func (g *Graph[K, GV, VV, EV]) VerticesSize() int { return len(g.vertices) }

// Vertices returns every vertex in key order.
func (g *Graph[K, GV, VV, EV]) Vertices() []graph.Vertex[K, VV] {
	out := make([]graph.Vertex[K, VV], len(g.vertices))
	for i := range g.vertices {
		out[i] = graph.Vertex[K, VV]{Key: K(i), Value: g.vertices[i].value}
	}

	return out
}

// FindVertex returns the vertex for key, or (zero, false) if out of range.
func (g *Graph[K, GV, VV, EV]) FindVertex(key K) (graph.Vertex[K, VV], bool) {
	if uint64(key) >= uint64(len(g.vertices)) {
		var zero graph.Vertex[K, VV]

		return zero, false
	}

	return graph.Vertex[K, VV]{Key: key, Value: g.vertices[key].value}, true
}

// VertexValue returns the user value stored at key.
func (g *Graph[K, GV, VV, EV]) VertexValue(key K) (VV, bool) {
	v, ok := g.FindVertex(key)

	return v.Value, ok
}

// VertexValuePtr returns a mutable pointer to the user value at key.
// Container-specific extension beyond the read-only [graph.Reader].
func (g *Graph[K, GV, VV, EV]) VertexValuePtr(key K) (*VV, bool) {
	if uint64(key) >= uint64(len(g.vertices)) {
		return nil, false
	}

	return &g.vertices[key].value, true
}

// EdgesSize returns the count of distinct live edges (not the doubled
// incidence-list traversal count).
func (g *Graph[K, GV, VV, EV]) EdgesSize() int { return g.edgeCount }

// Edges returns every edge. Each edge is visited exactly twice: once
// from each endpoint's incidence list.
func (g *Graph[K, GV, VV, EV]) Edges() []graph.Edge[K, EV] {
	out := make([]graph.Edge[K, EV], 0, g.edgeCount*2)
	for u := range g.vertices {
		it := g.VertexEdgesBegin(K(u))
		for !it.Done() {
			out = append(out, it.Edge())
			it = it.Next()
		}
	}

	return out
}

// EdgesAt returns u's incidence range.
func (g *Graph[K, GV, VV, EV]) EdgesAt(u K) []graph.Edge[K, EV] {
	if uint64(u) >= uint64(len(g.vertices)) {
		return nil
	}
	out := make([]graph.Edge[K, EV], 0, g.vertices[u].size)
	it := g.VertexEdgesBegin(u)
	for !it.Done() {
		out = append(out, it.Edge())
		it = it.Next()
	}

	return out
}

// OutDegree returns the size of u's incidence list.
func (g *Graph[K, GV, VV, EV]) OutDegree(u K) (int, bool) {
	if uint64(u) >= uint64(len(g.vertices)) {
		return 0, false
	}

	return g.vertices[u].size, true
}

// FindOutEdge searches u's incidence list for an edge whose other
// endpoint is v.
func (g *Graph[K, GV, VV, EV]) FindOutEdge(u, v K) (graph.Edge[K, EV], bool) {
	it := g.VertexEdgesBegin(u)
	for !it.Done() {
		e := it.Edge()
		if other, ok := e.OtherKey(u); ok && other == v {
			return e, true
		}
		it = it.Next()
	}
	var zero graph.Edge[K, EV]

	return zero, false
}

// FindEdge is an alias for FindOutEdge: the graph is undirected, so
// there is no separate "outgoing-only" search.
func (g *Graph[K, GV, VV, EV]) FindEdge(u, v K) (graph.Edge[K, EV], bool) {
	return g.FindOutEdge(u, v)
}

// FindVertexEdge performs the incidence-list search from u, per the
// access-protocol table. Identical to FindOutEdge for this container.
func (g *Graph[K, GV, VV, EV]) FindVertexEdge(u, v K) (graph.Edge[K, EV], bool) {
	return g.FindOutEdge(u, v)
}

// EdgeValue returns a mutable pointer to the value of the first edge in
// u's incidence list reaching v. Container-specific extension beyond
// the read-only [graph.Reader].
func (g *Graph[K, GV, VV, EV]) EdgeValue(u, v K) (*EV, bool) {
	if uint64(u) >= uint64(len(g.vertices)) {
		return nil, false
	}
	cur := g.vertices[u].head
	for cur.idx >= 0 {
		e := &g.edges[cur.idx]
		other := e.b
		if !cur.isA {
			other = e.a
		}
		if other == v {
			return &e.value, true
		}
		cur = e.next(cur.isA)
	}

	return nil, false
}

// Compile-time check: *Graph satisfies the access protocol.
var _ graph.Reader[uint32, struct{}, struct{}, struct{}] = (*Graph[uint32, struct{}, struct{}, struct{}])(nil)
