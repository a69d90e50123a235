// Package ual implements UndirectedAdjacencyList: an undirected graph whose
// edges are heap-allocated (here: slab-allocated, addressed by stable
// index) nodes, each simultaneously a member of the incidence lists of
// both its endpoints, linked in place.
//
// Go has no raw pointer graphs, so ownership is modeled with an arena:
// the graph owns a slab of edge nodes addressed by index.
// Each edge node stores both endpoint keys and two independent link pairs
// — one threaded through endpoint A's incidence list, one through
// endpoint B's. A self-loop (a == b) threads both pairs into the same
// vertex's list, so it contributes 2 to that vertex's degree, matching
// the usual graph-theoretic convention and the invariant
// 2·|E| == Σ outDegree(u).
//
// Unlike caa.Graph, ual.Graph is mutable after construction:
// [Graph.CreateEdge], [Graph.EraseEdge], [Graph.ClearEdges],
// [Graph.Clear], and [Graph.AppendVertex] are all supported. Keys are
// never invalidated by edge operations. ual.Graph satisfies
// [github.com/nwgraph/graphcore/graph.Reader].
//
// Complexity: O(1) amortized CreateEdge/EraseEdge, O(degree) linear
// FindEdge/FindOutEdge, O(|V|+|E|) construction.
package ual

import "errors"

// ErrVertexNotFound is returned by CreateEdge when an endpoint key is not
// a valid, already-appended vertex.
var ErrVertexNotFound = errors.New("ual: vertex key not found")
