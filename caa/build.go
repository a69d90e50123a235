package caa

import "github.com/nwgraph/graphcore/graph"

// EdgeTuple is one entry of the initializer-list construction form: a
// (source key, target key, edge value) triple. Use the zero value of EV
// when no edge value is needed.
type EdgeTuple[K graph.Unsigned, EV any] struct {
	Src   K
	Tgt   K
	Value EV
}

// FromEdges builds a Graph from an edge sequence plus an optional vertex
// sequence.
//
// ekey extracts (sourceKey, targetKey) from each element of edges; evalue
// extracts its user value. vertices supplies VV values in iteration order
// for the leading vertices (any vertex beyond len(vertices) — because an
// edge references a larger key — is default-constructed). graphValue is
// the optional per-graph user value.
//
// edges MUST arrive in non-decreasing source-key order; a decreasing
// source returns [graph.ErrUnorderedEdges] and the returned *Graph is nil.
// An endpoint key that would require more vertices than K can address
// returns [graph.ErrKeyOverflow].
//
// Complexity: O(len(vertices) + len(edges)).
func FromEdges[K graph.Unsigned, GV any, VV any, EV any, E any, V any](
	edges []E,
	ekey func(E) (K, K),
	evalue func(E) EV,
	vertices []V,
	vvalue func(V) VV,
	graphValue GV,
) (*Graph[K, GV, VV, EV], error) {
	// 1) maxKey = max(len(vertices)-1, max over edges of max(src,tgt)).
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

	g := &Graph[K, GV, VV, EV]{
		value:    graphValue,
		vertices: make([]vertexRecord[K, VV], n),
	}
	for i, v := range vertices {
		g.vertices[i].value = vvalue(v)
	}

	// 2) Walk edges in order, checking non-decreasing source key and
	//    assigning firstEdge to every vertex as its group begins.
	g.edges = make([]edgeRecord[K, EV], 0, len(edges))
	var cursor uint64
	var prevSrc K
	havePrev := false
	for _, e := range edges {
		s, t := ekey(e)
		if havePrev && s < prevSrc {
			return nil, graph.ErrUnorderedEdges
		}
		for cursor <= uint64(s) {
			g.vertices[cursor].firstEdge = len(g.edges)
			cursor++
		}
		g.edges = append(g.edges, edgeRecord[K, EV]{src: s, tgt: t, value: evalue(e)})
		prevSrc = s
		havePrev = true
	}
	// 3) Trailing vertices with no outgoing edges: firstEdge = edge-set end.
	for cursor < n {
		g.vertices[cursor].firstEdge = len(g.edges)
		cursor++
	}

	return g, nil
}

// FromTuples builds a Graph from a flat initializer sequence of
// (srcKey, tgtKey, value) tuples. vertexCount sets the minimum
// vertex-set size (vertices beyond the highest edge endpoint key are
// still created, default-valued).
//
// Same ordering requirement and error behavior as [FromEdges].
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
