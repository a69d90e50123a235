package ual_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwgraph/graphcore/graph"
	"github.com/nwgraph/graphcore/ual"
)

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

func buildGermanyGraph(t *testing.T) *ual.Graph[uint32, struct{}, string, int64] {
	t.Helper()
	vertices := make([]string, len(germanyCities))
	copy(vertices, germanyCities)

	g, err := ual.FromEdges[uint32, struct{}, string, int64](
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

	// 2*|E| == sum of outDegree(u).
	var sumDeg int
	for u := 0; u < g.VerticesSize(); u++ {
		d, ok := g.OutDegree(uint32(u))
		require.True(t, ok)
		sumDeg += d
	}
	assert.Equal(t, 2*len(germanyRoutes), sumDeg)

	// Edges() visits each edge exactly twice.
	assert.Len(t, g.Edges(), 2*len(germanyRoutes))

	// Every edge at u has one endpoint equal to u.
	for u := 0; u < g.VerticesSize(); u++ {
		for _, e := range g.EdgesAt(uint32(u)) {
			assert.True(t, e.Src == uint32(u) || e.Tgt == uint32(u))
		}
	}

	// Undirected: edge is reachable from both endpoints.
	e, ok := g.FindOutEdge(2, 5)
	require.True(t, ok)
	assert.EqualValues(t, 85, e.Value)
	_, ok = g.FindOutEdge(5, 2)
	require.True(t, ok)
}

func TestEraseEdge_RemovesFromBothIncidenceLists(t *testing.T) {
	g := buildGermanyGraph(t)
	before2, _ := g.OutDegree(2)
	before5, _ := g.OutDegree(5)

	it := g.VertexEdgesBegin(2)
	for !it.Done() && !(it.Edge().Src == 5 || it.Edge().Tgt == 5) {
		it = it.Next()
	}
	require.False(t, it.Done(), "expected to find the 2-5 edge")

	next := g.EraseEdge(it)
	_ = next

	after2, _ := g.OutDegree(2)
	after5, _ := g.OutDegree(5)
	assert.Equal(t, before2-1, after2)
	assert.Equal(t, before5-1, after5)

	_, ok := g.FindOutEdge(2, 5)
	assert.False(t, ok)
	_, ok = g.FindOutEdge(5, 2)
	assert.False(t, ok)

	// all other edges survive untouched
	assert.Equal(t, len(germanyRoutes)-1, g.EdgesSize())
}

func TestClearEdges_EmptiesIncidenceLists(t *testing.T) {
	g := buildGermanyGraph(t)
	g.ClearEdges(2)

	deg, ok := g.OutDegree(2)
	require.True(t, ok)
	assert.Zero(t, deg)

	// neighbors lost their edge to 2, but kept their other edges
	deg5, _ := g.OutDegree(5)
	assert.NotContains(t, edgeEndpoints(g, 5), uint32(2))
	assert.Equal(t, 1, deg5, "Mannheim keeps its edge to Karlsruhe")
}

func edgeEndpoints(g *ual.Graph[uint32, struct{}, string, int64], u uint32) []uint32 {
	var out []uint32
	for _, e := range g.EdgesAt(u) {
		if other, ok := e.OtherKey(u); ok {
			out = append(out, other)
		}
	}

	return out
}

func TestClear_ResetsGraph(t *testing.T) {
	g := buildGermanyGraph(t)
	g.Clear()
	assert.Zero(t, g.VerticesSize())
	assert.Zero(t, g.EdgesSize())
}

func TestAppendVertexAndCreateEdge(t *testing.T) {
	g := ual.New[uint32, struct{}, string, int64](struct{}{})
	a, err := g.AppendVertex("A")
	require.NoError(t, err)
	b, err := g.AppendVertex("B")
	require.NoError(t, err)

	_, err = g.CreateEdge(a, b, 42)
	require.NoError(t, err)

	e, ok := g.FindOutEdge(a, b)
	require.True(t, ok)
	assert.EqualValues(t, 42, e.Value)

	deg, _ := g.OutDegree(a)
	assert.Equal(t, 1, deg)
}

func TestSelfLoop_CountsTwiceInDegree(t *testing.T) {
	g := ual.New[uint32, struct{}, string, int64](struct{}{})
	a, _ := g.AppendVertex("A")
	_, err := g.CreateEdge(a, a, 1)
	require.NoError(t, err)

	deg, ok := g.OutDegree(a)
	require.True(t, ok)
	assert.Equal(t, 2, deg)
	assert.Equal(t, 1, g.EdgesSize())
}

// A decreasing source key must fail construction, same as the directed
// container.
func TestFromEdges_UnorderedEdges_Fails(t *testing.T) {
	type e struct{ s, t uint32 }
	bad := []e{{0, 1}, {2, 3}, {1, 2}}

	g, err := ual.FromEdges[uint32, struct{}, struct{}, struct{}](
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

	g, err := ual.FromEdges[uint8, struct{}, struct{}, struct{}](
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

	g, err := ual.FromEdges[uint8, struct{}, struct{}, struct{}](
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

func TestAppendVertex_PastMaxVertexCount_Fails(t *testing.T) {
	g := ual.New[uint8, struct{}, struct{}, struct{}](struct{}{})
	for i := 0; i < 254; i++ {
		_, err := g.AppendVertex(struct{}{})
		require.NoError(t, err)
	}
	_, err := g.AppendVertex(struct{}{})
	require.True(t, errors.Is(err, graph.ErrKeyOverflow))
}
