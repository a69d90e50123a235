// Package graph defines the access protocol shared by every concrete graph
// container in this module ([caa.Graph], [ual.Graph]): a small, fixed
// vocabulary of operations — vertices, edges, incidence, keys, values,
// endpoints, lookup — expressed as one generic interface, [Reader].
//
// Traversal ranges (dfs, bfs) and shortest-path algorithms (dijkstra,
// bellmanford) depend only on [Reader]; they never assume a particular
// container's internal storage. A container satisfies the protocol by
// implementing Reader's methods over its own representation — a dense
// edge array for caa.Graph, slab-indexed intrusive incidence lists for
// ual.Graph.
//
// Keys are dense, 0-based, unsigned integers: vertex 0, 1, ..., |V|-1.
// [NoKey] is the reserved sentinel for "no predecessor" / "unreachable".
// [MaxVertexCount], one less than NoKey, is the largest vertex count a
// key type allows.
package graph

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Unsigned is the key-type constraint: every concrete container is
// parameterized by an unsigned integer key type, defaulting to uint32 in
// this module's tests and examples.
type Unsigned = constraints.Unsigned

// Sentinel errors for construction and lookup. Construction errors are
// fatal (the constructor's second return value); lookup "misses" are
// signalled in-band via the comma-ok idiom on every Find* method, never
// through an error.
var (
	// ErrUnorderedEdges is returned by a container constructor when the
	// input edge sequence arrives with a decreasing source key.
	ErrUnorderedEdges = errors.New("graph: edges must arrive in non-decreasing source-key order")

	// ErrKeyOverflow is returned when an endpoint key would require
	// growing the vertex set past the key type's addressable range:
	// maximum |V| is the key type's maximum value minus one, since the
	// all-ones pattern is reserved for NoKey.
	ErrKeyOverflow = errors.New("graph: vertex key exceeds the addressable range of K")
)

// NoKey returns the reserved sentinel key value for K: the all-ones
// pattern, i.e. K's maximum representable value. It is used to mean
// "no predecessor" and "unreachable" throughout dijkstra/bellmanford, and
// as the canonical "not found" key.
func NoKey[K Unsigned]() K {
	var k K
	k--

	return k
}

// MaxVertexCount returns the largest |V| addressable by K: NoKey[K]()-1,
// so the usable key range is [0, NoKey[K]()-2].
func MaxVertexCount[K Unsigned]() uint64 {
	return uint64(NoKey[K]()) - 1
}

// Vertex is a read-only view of one vertex: its key and its optional
// user value. Containers produce Vertex values on demand; they are not
// living references into storage.
type Vertex[K Unsigned, VV any] struct {
	Key   K
	Value VV
}

// Edge is a read-only view of one edge: its endpoint keys and its
// optional user value. For ual.Graph, Src/Tgt are the edge's two stored
// endpoint keys in the order they were created (undirected: neither is
// privileged as "the" source at query time).
type Edge[K Unsigned, EV any] struct {
	Src   K
	Tgt   K
	Value EV
}

// SourceKey returns the edge's source endpoint key.
func (e Edge[K, EV]) SourceKey() K { return e.Src }

// TargetKey returns the edge's target endpoint key.
func (e Edge[K, EV]) TargetKey() K { return e.Tgt }

// Key returns (SourceKey, TargetKey) as a pair, matching the protocol's
// edgeKey(g, uv) operation.
func (e Edge[K, EV]) Key() (K, K) { return e.Src, e.Tgt }

// OtherKey returns the endpoint of an undirected edge opposite w, and
// false if w is neither endpoint.
func (e Edge[K, EV]) OtherKey(w K) (K, bool) {
	switch w {
	case e.Src:
		return e.Tgt, true
	case e.Tgt:
		return e.Src, true
	default:
		var zero K
		return zero, false
	}
}

// Reader is the access protocol that every container satisfies.
// Algorithms and traversal ranges are written exclusively against
// Reader and never against a concrete container type.
//
// Implementations: [caa.Graph], [ual.Graph].
type Reader[K Unsigned, GV any, VV any, EV any] interface {
	// GraphValue returns the graph's optional user value.
	GraphValue() GV

	// VerticesSize returns |V|.
	VerticesSize() int

	// Vertices returns every vertex, in key order.
	Vertices() []Vertex[K, VV]

	// FindVertex returns the vertex for key, or (zero, false) if
	// key >= VerticesSize().
	FindVertex(key K) (Vertex[K, VV], bool)

	// VertexValue returns the user value stored at key.
	VertexValue(key K) (VV, bool)

	// EdgesSize returns |E| (for ual.Graph: the count of distinct
	// edges, not the doubled incidence-list traversal count).
	EdgesSize() int

	// Edges returns every edge. For ual.Graph this visits each edge
	// twice, once per endpoint incidence list.
	Edges() []Edge[K, EV]

	// EdgesAt returns the incidence/outgoing range at u.
	EdgesAt(u K) []Edge[K, EV]

	// OutDegree returns len(EdgesAt(u)), or (0, false) if u is absent.
	OutDegree(u K) (int, bool)

	// FindEdge performs a linear search for an edge between u and v.
	FindEdge(u, v K) (Edge[K, EV], bool)

	// FindOutEdge performs a linear search within u's outgoing/incidence
	// range for an edge reaching v.
	FindOutEdge(u, v K) (Edge[K, EV], bool)

	// FindVertexEdge performs an incidence-list search from u for an
	// edge reaching v. Equivalent to FindOutEdge for both containers in
	// this module; kept as a distinct protocol entry for containers
	// whose incidence and outgoing ranges differ, which neither
	// caa.Graph nor ual.Graph does.
	FindVertexEdge(u, v K) (Edge[K, EV], bool)
}
