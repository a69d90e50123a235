// Package dfs provides lazy, single-pass depth-first traversal ranges
// over any container satisfying [graph.Reader]: [VertexRange] yields
// each reachable vertex exactly once, and [EdgeRange] yields every edge
// encountered, classified as a tree edge, a back edge, or a path-end
// sentinel marking exhaustion of the current branch.
//
// Both ranges are cooperative iterators: construct one with a seed
// vertex, then call Next repeatedly until it returns false. Neither
// mutates the graph, and neither is safe to advance from more than one
// goroutine, or to restart — construct a fresh range instead.
//
// On undirected graphs, the edge immediately back to the traversal's
// current parent is reported as a back edge, not suppressed: the
// visited bitset makes no distinction between "the vertex we just came
// from" and any other already-visited vertex.
package dfs
