package ual

import "github.com/nwgraph/graphcore/graph"

// link addresses one occurrence of an edge inside one vertex's incidence
// list: the edge's slab index, and which of the edge's two link pairs
// (A, rooted at the edge's "a" endpoint, or B, rooted at "b") to follow.
// idx == -1 denotes "no edge" (a list terminator).
type link struct {
	idx int
	isA bool
}

var noLink = link{idx: -1}

// edgeNode is one slab-allocated edge: both endpoint keys, the optional
// user value, and the two independent doubly-linked-list pairs (A for
// endpoint a's incidence list, B for endpoint b's).
type edgeNode[K graph.Unsigned, EV any] struct {
	a, b       K
	value      EV
	prevA, nextA link
	prevB, nextB link
}

func (e *edgeNode[K, EV]) next(isA bool) link {
	if isA {
		return e.nextA
	}

	return e.nextB
}

func (e *edgeNode[K, EV]) setNext(isA bool, l link) {
	if isA {
		e.nextA = l
	} else {
		e.nextB = l
	}
}

func (e *edgeNode[K, EV]) prev(isA bool) link {
	if isA {
		return e.prevA
	}

	return e.prevB
}

func (e *edgeNode[K, EV]) setPrev(isA bool, l link) {
	if isA {
		e.prevA = l
	} else {
		e.prevB = l
	}
}

// vertexRecord is one vertex's incidence-list head/tail/size plus its
// optional user value.
type vertexRecord[K graph.Unsigned, VV any] struct {
	value      VV
	head, tail link
	size       int
}

// Graph is an undirected graph stored as per-vertex incidence lists over
// a shared, slab-allocated edge arena. The zero Graph is not usable;
// build one via [FromEdges], [FromTuples], or [New].
type Graph[K graph.Unsigned, GV any, VV any, EV any] struct {
	value     GV
	vertices  []vertexRecord[K, VV]
	edges     []edgeNode[K, EV]
	free      []int // recycled slab indices from erased edges
	edgeCount int    // distinct live edges
}

// New returns an empty graph carrying graphValue, with no vertices or
// edges. Use [Graph.AppendVertex] and [Graph.CreateEdge] to populate it.
func New[K graph.Unsigned, GV any, VV any, EV any](graphValue GV) *Graph[K, GV, VV, EV] {
	return &Graph[K, GV, VV, EV]{value: graphValue}
}

// EdgeIterator is a cursor into one vertex's incidence list: a borrow,
// not an owning reference. It remains valid across insertions elsewhere
// in the graph and across erasures of edges other than the one it points
// to.
type EdgeIterator[K graph.Unsigned, GV any, VV any, EV any] struct {
	g     *Graph[K, GV, VV, EV]
	owner K
	cur   link
}

// Done reports whether the iterator is at the end of owner's incidence
// list.
func (it EdgeIterator[K, GV, VV, EV]) Done() bool { return it.cur.idx < 0 }

// OwnerKey returns the vertex whose incidence list this iterator walks.
func (it EdgeIterator[K, GV, VV, EV]) OwnerKey() K { return it.owner }

// Edge returns a view of the edge the iterator currently points to. Edge
// panics if called on a Done iterator, the same contract C++ gives
// dereferencing an end iterator.
func (it EdgeIterator[K, GV, VV, EV]) Edge() graph.Edge[K, EV] {
	e := it.g.edges[it.cur.idx]

	return graph.Edge[K, EV]{Src: e.a, Tgt: e.b, Value: e.value}
}

// Next returns an iterator advanced one position within owner's
// incidence list.
func (it EdgeIterator[K, GV, VV, EV]) Next() EdgeIterator[K, GV, VV, EV] {
	if it.cur.idx < 0 {
		return it
	}
	n := it.g.edges[it.cur.idx].next(it.cur.isA)

	return EdgeIterator[K, GV, VV, EV]{g: it.g, owner: it.owner, cur: n}
}

// Prev returns an iterator retreated one position. Decrementing from the
// end-of-list position yields the list's tail.
func (it EdgeIterator[K, GV, VV, EV]) Prev() EdgeIterator[K, GV, VV, EV] {
	if it.cur.idx < 0 {
		return EdgeIterator[K, GV, VV, EV]{g: it.g, owner: it.owner, cur: it.g.vertices[it.owner].tail}
	}
	p := it.g.edges[it.cur.idx].prev(it.cur.isA)

	return EdgeIterator[K, GV, VV, EV]{g: it.g, owner: it.owner, cur: p}
}
