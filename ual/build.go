package ual

import "github.com/nwgraph/graphcore/graph"

// EdgeTuple is one entry of the initializer-list construction form.
type EdgeTuple[K graph.Unsigned, EV any] struct {
	Src   K
	Tgt   K
	Value EV
}

// FromEdges builds a Graph from an edge sequence plus an optional vertex
// sequence: the same loader shape as [caa.FromEdges]. Every edge is
// materialized via [Graph.CreateEdge], which links it into both
// endpoints' incidence lists.
//
// edges MUST arrive in non-decreasing source-key order; a decreasing
// source returns [graph.ErrUnorderedEdges] and the returned *Graph is nil.
func FromEdges[K graph.Unsigned, GV any, VV any, EV any, E any, V any](
	edges []E,
	ekey func(E) (K, K),
	evalue func(E) EV,
	vertices []V,
	vvalue func(V) VV,
	graphValue GV,
) (*Graph[K, GV, VV, EV], error) {
	var maxKey uint64
	if len(vertices) > 0 {
		maxKey = uint64(len(vertices) - 1)
	}
	for _, e := range edges {
		s, t := ekey(e)
		if u := uint64(s); u > maxKey {
			maxKey = u
		}
		if u := uint64(t); u > maxKey {
			maxKey = u
		}
	}
	if maxKey >= graph.MaxVertexCount[K]() {
		return nil, graph.ErrKeyOverflow
	}
	n := maxKey + 1

	g := &Graph[K, GV, VV, EV]{value: graphValue, vertices: make([]vertexRecord[K, VV], n)}
	for i := range g.vertices {
		g.vertices[i].head = noLink
		g.vertices[i].tail = noLink
	}
	for i, v := range vertices {
		g.vertices[i].value = vvalue(v)
	}

	var prevSrc K
	havePrev := false
	for _, e := range edges {
		s, t := ekey(e)
		if havePrev && s < prevSrc {
			return nil, graph.ErrUnorderedEdges
		}
		g.createEdge(s, t, evalue(e))
		prevSrc = s
		havePrev = true
	}

	return g, nil
}

// FromTuples builds a Graph from a flat initializer sequence of
// (srcKey, tgtKey, value) tuples.
func FromTuples[K graph.Unsigned, GV any, VV any, EV any](
	tuples []EdgeTuple[K, EV],
	vertexCount int,
	graphValue GV,
) (*Graph[K, GV, VV, EV], error) {
	placeholders := make([]struct{}, vertexCount)

	return FromEdges[K, GV, VV, EV](
		tuples,
		func(t EdgeTuple[K, EV]) (K, K) { return t.Src, t.Tgt },
		func(t EdgeTuple[K, EV]) EV { return t.Value },
		placeholders,
		func(struct{}) VV { var zero VV; return zero },
		graphValue,
	)
}

// AppendVertex grows the vertex set by one and returns the new vertex's
// key. This may invalidate previously taken vertex iterators but never
// invalidates keys.
func (g *Graph[K, GV, VV, EV]) AppendVertex(value VV) (K, error) {
	if uint64(len(g.vertices)) >= graph.MaxVertexCount[K]() {
		var zero K

		return zero, graph.ErrKeyOverflow
	}
	key := K(len(g.vertices))
	g.vertices = append(g.vertices, vertexRecord[K, VV]{value: value, head: noLink, tail: noLink})

	return key, nil
}

// CreateEdge allocates a new edge between u and v, links it into both
// endpoints' incidence lists (linkBack: appended at the tail), and
// returns an iterator positioned at the new edge within u's list.
func (g *Graph[K, GV, VV, EV]) CreateEdge(u, v K, value EV) (EdgeIterator[K, GV, VV, EV], error) {
	if uint64(u) >= uint64(len(g.vertices)) || uint64(v) >= uint64(len(g.vertices)) {
		var zero EdgeIterator[K, GV, VV, EV]

		return zero, ErrVertexNotFound
	}
	idx := g.createEdge(u, v, value)

	return EdgeIterator[K, GV, VV, EV]{g: g, owner: u, cur: link{idx: idx, isA: true}}, nil
}

// EraseEdge unlinks and deallocates the edge it points to, and returns
// the next iterator within the same owner's incidence list. Erasing a
// Done iterator is a no-op.
func (g *Graph[K, GV, VV, EV]) EraseEdge(it EdgeIterator[K, GV, VV, EV]) EdgeIterator[K, GV, VV, EV] {
	if it.cur.idx < 0 {
		return it
	}
	next := g.edges[it.cur.idx].next(it.cur.isA)
	g.eraseEdge(it.cur.idx)

	return EdgeIterator[K, GV, VV, EV]{g: g, owner: it.owner, cur: next}
}

// ClearEdges erases every edge in u's incidence list.
func (g *Graph[K, GV, VV, EV]) ClearEdges(u K) {
	it := g.VertexEdgesBegin(u)
	for !it.Done() {
		it = g.EraseEdge(it)
	}
}

// Clear erases all edges, then drops all vertices, returning the graph to
// its zero-vertex, zero-edge state (graph value is preserved).
func (g *Graph[K, GV, VV, EV]) Clear() {
	for u := range g.vertices {
		g.ClearEdges(K(u))
	}
	g.vertices = g.vertices[:0]
	g.edges = g.edges[:0]
	g.free = g.free[:0]
	g.edgeCount = 0
}

// VertexEdgesBegin returns an iterator positioned at the first edge in
// u's incidence list (the Done iterator if empty or u is out of range).
func (g *Graph[K, GV, VV, EV]) VertexEdgesBegin(u K) EdgeIterator[K, GV, VV, EV] {
	if uint64(u) >= uint64(len(g.vertices)) {
		return EdgeIterator[K, GV, VV, EV]{g: g, owner: u, cur: noLink}
	}

	return EdgeIterator[K, GV, VV, EV]{g: g, owner: u, cur: g.vertices[u].head}
}

// VertexEdgesEnd returns the past-the-end iterator for u's incidence
// list.
func (g *Graph[K, GV, VV, EV]) VertexEdgesEnd(u K) EdgeIterator[K, GV, VV, EV] {
	return EdgeIterator[K, GV, VV, EV]{g: g, owner: u, cur: noLink}
}
