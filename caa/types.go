package caa

import "github.com/nwgraph/graphcore/graph"

// vertexRecord is the CAA's internal per-vertex storage: the offset of its
// first outgoing edge in the shared edge array, plus its optional user
// value.
type vertexRecord[K graph.Unsigned, VV any] struct {
	firstEdge int
	value     VV
}

// edgeRecord is the CAA's internal per-edge storage: both endpoint keys
// plus the optional user value. Edges for a given source are contiguous;
// the invariant is enforced once, at construction.
type edgeRecord[K graph.Unsigned, EV any] struct {
	src   K
	tgt   K
	value EV
}

// Graph is a directed, immutable-after-build graph stored as a compressed
// adjacency array: a dense vertex array plus a dense, source-ordered edge
// array. See the package doc for the storage invariant.
//
// The zero Graph is not usable; build one via [FromEdges] or [FromTuples].
type Graph[K graph.Unsigned, GV any, VV any, EV any] struct {
	value    GV
	vertices []vertexRecord[K, VV]
	edges    []edgeRecord[K, EV]
}
