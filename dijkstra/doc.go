// Package dijkstra implements Dijkstra's shortest-path algorithm over any
// container satisfying [graph.Reader].
//
// Dijkstra computes the minimum-cost distance (and, via [Paths], the
// reconstructed path) from a single source vertex to every other
// reachable vertex, on a graph with non-negative edge weights. It uses a
// min-heap priority queue of (distance, vertex) entries. A vertex is
// pushed only while it is not already queued: if its distance improves
// while it is queued, its entry keeps the distance it was pushed with,
// and the vertex is relaxed with its current distance when popped. A
// vertex whose distance improves after it was popped is pushed again.
//
// Complexity:
//
//   - Time:  O(|E| + |V| log |V|)
//   - Space: O(|V| + |E|)
//
// Negative edge weights are a documented precondition, not a runtime
// check: Dijkstra does not pre-scan edges, and passing a graph with a
// negative weight yields unspecified results. Use [bellmanford] when
// negative weights (or negative-cycle detection) are required.
package dijkstra
