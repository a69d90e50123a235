package bfs

import "github.com/nwgraph/graphcore/graph"

// frame is one queue entry: the vertex it was enqueued for, its full
// incidence/outgoing edge list, a cursor into that list, and the depth
// at which it was discovered.
type frame[K graph.Unsigned, EV any] struct {
	vertex K
	edges  []graph.Edge[K, EV]
	cursor int
	depth  int
}

func newFrame[K graph.Unsigned, GV any, VV any, EV any](g graph.Reader[K, GV, VV, EV], u K, depth int) frame[K, EV] {
	return frame[K, EV]{vertex: u, edges: g.EdgesAt(u), depth: depth}
}

// EdgeKind classifies one [EdgeRange] emission.
type EdgeKind int

const (
	// TreeEdge discovers a previously unvisited vertex.
	TreeEdge EdgeKind = iota
	// BackEdge reaches an already-visited vertex.
	BackEdge
	// PathEnd is a sentinel: the current frame's edges are exhausted.
	PathEnd
)
