package caa_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwgraph/graphcore/caa"
	"github.com/nwgraph/graphcore/graph"
)

// germanyRoute is the Germany-Routes fixture: a directed, weighted
// edge between two cities, by index into germanyCities.
type germanyRoute struct {
	from, to int
	km       int64
}

var germanyCities = []string{
	"Augsburg", "Erfurt", "Frankfürt", "Karlsruhe", "Kassel",
	"Mannheim", "München", "Nürnberg", "Stuttgart", "Würzburg",
}

var germanyRoutes = []germanyRoute{
	{0, 6, 84}, {2, 5, 85}, {2, 9, 217}, {2, 4, 173}, {3, 0, 250},
	{4, 6, 502}, {5, 3, 80}, {7, 8, 183}, {7, 6, 167}, {9, 1, 186}, {9, 7, 103},
}

func buildGermanyGraph(t *testing.T) *caa.Graph[uint32, struct{}, string, int64] {
	t.Helper()
	vertices := make([]string, len(germanyCities))
	copy(vertices, germanyCities)

	g, err := caa.FromEdges[uint32, struct{}, string, int64](
		germanyRoutes,
		func(r germanyRoute) (uint32, uint32) { return uint32(r.from), uint32(r.to) },
		func(r germanyRoute) int64 { return r.km },
		vertices,
		func(name string) string { return name },
		struct{}{},
	)
	require.NoError(t, err)

	return g
}

func TestFromEdges_GermanyRoutes_Invariants(t *testing.T) {
	g := buildGermanyGraph(t)

	require.Equal(t, len(germanyCities), g.VerticesSize())
	require.Equal(t, len(germanyRoutes), g.EdgesSize())

	// Every vertex's key equals its offset in Vertices().
	for i, v := range g.Vertices() {
		assert.EqualValues(t, i, v.Key)
	}

	// Frankfürt (key 2) has out-edges to Mannheim(5), Würzburg(9), Kassel(4).
	out := g.EdgesAt(2)
	require.Len(t, out, 3)
	for _, e := range out {
		assert.EqualValues(t, 2, e.SourceKey())
	}

	deg, ok := g.OutDegree(2)
	require.True(t, ok)
	assert.Equal(t, 3, deg)

	// findOutEdge finds 2->5 but not the reverse direction.
	e, ok := g.FindOutEdge(2, 5)
	require.True(t, ok)
	assert.EqualValues(t, 85, e.Value)

	_, ok = g.FindOutEdge(5, 2)
	assert.False(t, ok, "no edge 5->2 exists")
}

func TestFromEdges_VertexKeyEqualsOffset(t *testing.T) {
	g := buildGermanyGraph(t)
	for _, v := range g.Vertices() {
		got, ok := g.FindVertex(v.Key)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestFromEdges_FirstEdgeMonotonic(t *testing.T) {
	g := buildGermanyGraph(t)
	n := g.VerticesSize()
	var total int
	for u := 0; u < n; u++ {
		d, ok := g.OutDegree(uint32(u))
		require.True(t, ok)
		assert.GreaterOrEqual(t, d, 0, "firstEdge(u) <= firstEdge(u+1)")
		total += d
	}
	assert.Equal(t, len(germanyRoutes), total)
}

// Constructing a CAA with edges (0,1), (2,3), (1,2) must fail, since
// the third edge's source key decreases.
func TestFromEdges_UnorderedEdges_Fails(t *testing.T) {
	type e struct{ s, t uint32 }
	bad := []e{{0, 1}, {2, 3}, {1, 2}}

	g, err := caa.FromEdges[uint32, struct{}, struct{}, struct{}](
		bad,
		func(x e) (uint32, uint32) { return x.s, x.t },
		func(e) struct{} { return struct{}{} },
		nil,
		func(struct{}) struct{} { return struct{}{} },
		struct{}{},
	)
	require.Nil(t, g)
	require.True(t, errors.Is(err, graph.ErrUnorderedEdges))
}

// uint8's NoKey is 255, so MaxVertexCount[uint8]() is 254: the highest
// addressable key is 253, giving a maximum |V| of 254.
func TestFromEdges_KeyAtMaxVertexCount_Succeeds(t *testing.T) {
	type e struct{ s, t uint8 }
	edges := []e{{0, 253}}

	g, err := caa.FromEdges[uint8, struct{}, struct{}, struct{}](
		edges,
		func(x e) (uint8, uint8) { return x.s, x.t },
		func(e) struct{} { return struct{}{} },
		nil,
		func(struct{}) struct{} { return struct{}{} },
		struct{}{},
	)
	require.NoError(t, err)
	assert.Equal(t, 254, g.VerticesSize())
}

func TestFromEdges_KeyPastMaxVertexCount_Fails(t *testing.T) {
	type e struct{ s, t uint8 }
	edges := []e{{0, 254}}

	g, err := caa.FromEdges[uint8, struct{}, struct{}, struct{}](
		edges,
		func(x e) (uint8, uint8) { return x.s, x.t },
		func(e) struct{} { return struct{}{} },
		nil,
		func(struct{}) struct{} { return struct{}{} },
		struct{}{},
	)
	require.Nil(t, g)
	require.True(t, errors.Is(err, graph.ErrKeyOverflow))
}

func TestFromTuples_InitializerListForm(t *testing.T) {
	tuples := []caa.EdgeTuple[uint32, int64]{
		{Src: 0, Tgt: 1, Value: 10},
		{Src: 0, Tgt: 2, Value: 20},
		{Src: 1, Tgt: 2, Value: 5},
	}
	g, err := caa.FromTuples[uint32, struct{}, struct{}, int64](tuples, 0, struct{}{})
	require.NoError(t, err)
	require.Equal(t, 3, g.VerticesSize())

	e, ok := g.FindOutEdge(0, 2)
	require.True(t, ok)
	assert.EqualValues(t, 20, e.Value)
}

func TestFindVertex_OutOfRange(t *testing.T) {
	g := buildGermanyGraph(t)
	_, ok := g.FindVertex(uint32(g.VerticesSize()))
	assert.False(t, ok)
}
