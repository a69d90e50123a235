package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwgraph/graphcore/bellmanford"
	"github.com/nwgraph/graphcore/caa"
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

const frankfurt = 2

func weightByKm(e graph.Edge[uint32, int64]) int64 { return e.Value }

func buildGermanyGraph(t *testing.T) *caa.Graph[uint32, struct{}, string, int64] {
	t.Helper()
	g, err := caa.FromEdges[uint32, struct{}, string, int64](
		germanyRoutes,
		func(r germanyRoute) (uint32, uint32) { return uint32(r.from), uint32(r.to) },
		func(r germanyRoute) int64 { return r.km },
		germanyCities,
		func(name string) string { return name },
		struct{}{},
	)
	require.NoError(t, err)

	return g
}

// Bellman-Ford must agree with Dijkstra when all weights are non-negative.
func TestDistances_AgreesWithDijkstraOnGermanyRoutes(t *testing.T) {
	g := buildGermanyGraph(t)

	records, negCycle, err := bellmanford.Distances[uint32, struct{}, string, int64](g, frankfurt, bellmanford.WithWeightFunc[uint32, int64](weightByKm))
	require.NoError(t, err)
	require.False(t, negCycle)

	want := map[uint32]int64{
		0: 415, 1: 403, 3: 165, 4: 173, 5: 85, 6: 487, 7: 320, 8: 503, 9: 217,
	}
	got := make(map[uint32]int64, len(records))
	for _, r := range records {
		got[r.Last] = r.Distance
	}
	assert.Equal(t, want, got)
}

func buildGermanyUndirectedGraph(t *testing.T) *ual.Graph[uint32, struct{}, string, int64] {
	t.Helper()
	g, err := ual.FromEdges[uint32, struct{}, string, int64](
		germanyRoutes,
		func(r germanyRoute) (uint32, uint32) { return uint32(r.from), uint32(r.to) },
		func(r germanyRoute) int64 { return r.km },
		germanyCities,
		func(name string) string { return name },
		struct{}{},
	)
	require.NoError(t, err)

	return g
}

// Same edge set treated undirected: the shortest paths from Frankfürt
// are unchanged from the directed case.
func TestDistances_GermanyRoutesUndirected_SameDistancesAsDirected(t *testing.T) {
	g := buildGermanyUndirectedGraph(t)

	records, negCycle, err := bellmanford.Distances[uint32, struct{}, string, int64](g, frankfurt, bellmanford.WithWeightFunc[uint32, int64](weightByKm))
	require.NoError(t, err)
	require.False(t, negCycle)

	want := map[uint32]int64{
		0: 415, 1: 403, 3: 165, 4: 173, 5: 85, 6: 487, 7: 320, 8: 503, 9: 217,
	}
	got := make(map[uint32]int64, len(records))
	for _, r := range records {
		got[r.Last] = r.Distance
	}
	assert.Equal(t, want, got)
}

func TestDistances_WithNegativeCycle_ReportsAndWithholdsOutput(t *testing.T) {
	g, err := caa.FromTuples[uint32, struct{}, struct{}, int64](
		[]caa.EdgeTuple[uint32, int64]{
			{Src: 0, Tgt: 1, Value: 1},
			{Src: 1, Tgt: 2, Value: 1},
			{Src: 2, Tgt: 0, Value: -3},
		},
		3, struct{}{},
	)
	require.NoError(t, err)

	weightFn := func(e graph.Edge[uint32, int64]) int64 { return e.Value }

	records, negCycle, err := bellmanford.Distances[uint32, struct{}, struct{}, int64](
		g, 0,
		bellmanford.WithWeightFunc[uint32, int64](weightFn),
		bellmanford.WithDetectNegativeCycle[uint32, int64](),
	)
	require.NoError(t, err)
	assert.True(t, negCycle)
	assert.Nil(t, records)

	paths, negCyclePaths, err := bellmanford.Paths[uint32, struct{}, struct{}, int64](
		g, 0,
		bellmanford.WithWeightFunc[uint32, int64](weightFn),
		bellmanford.WithDetectNegativeCycle[uint32, int64](),
	)
	require.NoError(t, err)
	assert.True(t, negCyclePaths)
	assert.Nil(t, paths)
}

func TestDistances_SourceNotFound(t *testing.T) {
	g := buildGermanyGraph(t)
	_, _, err := bellmanford.Distances[uint32, struct{}, string, int64](g, 999)
	require.ErrorIs(t, err, bellmanford.ErrSourceNotFound)
}

func TestDistances_LeavesOnly_MatchesEdgeSourceDerivation(t *testing.T) {
	g := buildGermanyGraph(t)
	records, negCycle, err := bellmanford.Distances[uint32, struct{}, string, int64](
		g, frankfurt,
		bellmanford.WithWeightFunc[uint32, int64](weightByKm),
		bellmanford.WithLeavesOnly[uint32, int64](),
	)
	require.NoError(t, err)
	require.False(t, negCycle)

	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, germanyCities[r.Last])
	}
	assert.ElementsMatch(t, []string{"Erfurt", "München", "Stuttgart"}, names)
}
