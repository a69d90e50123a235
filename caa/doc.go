// Package caa implements CompressedAdjacencyArray: an immutable-after-build,
// directed graph with dense, cache-friendly storage and O(1) neighbor-range
// access.
//
// A Graph owns a contiguous vertex set (indexed 0..|V|-1) and a contiguous
// edge set ordered by source key. Each vertex records the index of its
// first outgoing edge ("firstEdge"); a vertex's outgoing range is
// [firstEdge(u), firstEdge(u+1)) (or to the edge-set end for the last
// vertex). Construction walks the edge sequence once and requires it to
// arrive in non-decreasing source-key order — a decreasing source is fatal
// ([graph.ErrUnorderedEdges]).
//
// Once built, caa.Graph never reallocates or reorders vertices/edges: all
// returned views ([graph.Vertex], [graph.Edge]) and indices remain valid
// for the graph's lifetime. caa.Graph satisfies [graph.Reader].
//
// Complexity: O(1) FindVertex, O(degree) EdgesAt (copies the views), O(degree) linear
// FindEdge/FindOutEdge, O(|V|+|E|) construction.
package caa
