// Package bellmanford implements the Bellman-Ford shortest-path
// algorithm over any container satisfying [graph.Reader].
//
// Unlike [dijkstra], Bellman-Ford tolerates negative edge weights and
// detects negative-weight cycles reachable from the source. It relaxes
// every edge in the graph up to |V| times, exiting early once a full
// pass makes no improvement. With [WithDetectNegativeCycle] it then
// performs one further relaxation pass to test for a still-relaxable
// edge: if one exists, a negative cycle is reachable from the source and
// the algorithm reports this via its boolean return, leaving its output
// untouched. Without that option no such pass is made.
//
// Complexity:
//
//   - Time:  O(|V| * |E|)
//   - Space: O(|V| + |E|)
package bellmanford
