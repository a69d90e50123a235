// Package bfs provides lazy, single-pass breadth-first traversal ranges
// over any container satisfying [graph.Reader]: [VertexRange] yields
// each reachable vertex exactly once in non-decreasing depth order, and
// [EdgeRange] yields every edge encountered, classified as a tree edge,
// a back edge, or a path-end sentinel marking exhaustion of one
// vertex's incidence range.
//
// Both ranges are cooperative iterators: construct one with a seed
// vertex, then call Next repeatedly until it returns false. Neither
// mutates the graph, and neither is safe to advance from more than one
// goroutine, or to restart — construct a fresh range instead.
package bfs
