package dfs

import "github.com/nwgraph/graphcore/graph"

// frame is one stack entry: the vertex it was pushed for, its full
// incidence/outgoing edge list, and a cursor into that list marking how
// far it has been scanned.
type frame[K graph.Unsigned, EV any] struct {
	vertex K
	edges  []graph.Edge[K, EV]
	cursor int
}

func newFrame[K graph.Unsigned, GV any, VV any, EV any](g graph.Reader[K, GV, VV, EV], u K) frame[K, EV] {
	return frame[K, EV]{vertex: u, edges: g.EdgesAt(u)}
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
