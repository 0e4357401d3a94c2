package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-metro/graph"
	"github.com/ttpr0/go-metro/itinerary"
	"github.com/ttpr0/go-metro/routing"
)

func newBuiltinManager(t *testing.T) *NetworkManager {
	t.Helper()
	manager, err := NewNetworkManager(DefaultConfig())
	require.NoError(t, err)
	return manager
}

func TestManagerInfo(t *testing.T) {
	manager := newBuiltinManager(t)

	info := manager.GetInfo()
	assert.Equal(t, "kolkata", info.Name)
	assert.Equal(t, 50, info.Stations)
	assert.Equal(t, 51, info.Connections)
	assert.Equal(t, 1, info.Components)
	assert.Equal(t, "Blue", info.Lines["B"])
}

func TestResolveStation(t *testing.T) {
	manager := newBuiltinManager(t)

	cases := map[string]string{
		"Esplanade~BGP": "Esplanade~BGP",
		"1":             "Baranagar~BP",
		"esplanade":     "Esplanade~BGP",
		"mgr":           "Mahatma Gandhi Road~B",
		"  Joka~P ":     "Joka~P",
	}
	for ref, expected := range cases {
		name, err := manager.ResolveStation(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, expected, name, ref)
	}

	_, err := manager.ResolveStation("Kavi Nazrul")
	assert.ErrorIs(t, err, ErrAmbiguousStation)
	_, err = manager.ResolveStation("Atlantis")
	assert.ErrorIs(t, err, graph.ErrStationNotFound)
	_, err = manager.ResolveStation("51")
	assert.ErrorIs(t, err, graph.ErrStationNotFound)
	_, err = manager.ResolveStation("")
	assert.ErrorIs(t, err, graph.ErrStationNotFound)
}

func TestManagerStationsAndMap(t *testing.T) {
	manager := newBuiltinManager(t)

	stations := manager.Stations()
	require.Len(t, stations, 50)
	assert.Equal(t, 1, stations[0].Number)
	assert.Equal(t, "Baranagar~BP", stations[0].Name)
	assert.Equal(t, "BP", stations[0].Lines)
	assert.True(t, stations[0].Hub)

	entries := manager.Map()
	require.Len(t, entries, 50)
	for _, entry := range entries {
		if entry.Station != "Esplanade~BGP" {
			continue
		}
		require.Len(t, entry.Neighbours, 4)
		assert.Equal(t, "Chandni Chowk~B", entry.Neighbours[0].To)
		assert.Equal(t, int32(1), entry.Neighbours[0].Distance)
	}
}

func TestManagerCost(t *testing.T) {
	manager := newBuiltinManager(t)

	resp, err := manager.Cost("Dakshineswar~B", "Dum Dum~B", graph.DISTANCE)
	require.NoError(t, err)
	assert.Equal(t, int64(6), resp.Cost)
	assert.Equal(t, int64(6), resp.Total)
	assert.Equal(t, "km", resp.Unit)

	resp, err = manager.Cost("Dakshineswar~B", "Dum Dum~B", graph.TIME)
	require.NoError(t, err)
	assert.Equal(t, int64(600), resp.Cost)
	assert.Equal(t, int64(10), resp.Total)
	assert.Equal(t, "min", resp.Unit)
}

func TestManagerRoute(t *testing.T) {
	manager := newBuiltinManager(t)

	for _, alg := range []routing.AlgorithmType{routing.DIJKSTRA, routing.EXHAUSTIVE} {
		resp, err := manager.Route("Howrah~G", "Joka~P", graph.DISTANCE, alg)
		require.NoError(t, err)
		assert.Equal(t, int64(18), resp.Distance)
		assert.Len(t, resp.Stations, 11)
		assert.Equal(t, "Howrah~G", resp.From)
		assert.Equal(t, "Joka~P", resp.To)

		it := resp.Itinerary
		assert.Equal(t, 2, it.Interchanges)
		assert.Equal(t, itinerary.Segment{Kind: itinerary.INTERCHANGE, Station: "Mahakaran~G", Next: "Esplanade~BGP"}, it.Segments[1])
		assert.Equal(t, int64(18), it.Total)
	}

	resp, err := manager.Route("dakshineswar", "dum dum", graph.TIME, routing.DIJKSTRA)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Itinerary.Interchanges)
	assert.Equal(t, int64(10), resp.Itinerary.Total)
	assert.Equal(t, "min", resp.Itinerary.Unit)
}

func TestManagerMutations(t *testing.T) {
	manager := newBuiltinManager(t)

	name, err := manager.AddStation("Airport", "Y")
	require.NoError(t, err)
	assert.Equal(t, "Airport~Y", name)
	_, err = manager.AddStation("Airport", "Y")
	assert.ErrorIs(t, err, graph.ErrStationExists)
	_, err = manager.AddStation("", "Y")
	assert.Error(t, err)

	reach, err := manager.Reachable("Airport~Y", "Joka~P")
	require.NoError(t, err)
	assert.False(t, reach.Reachable)
	_, err = manager.Cost("Airport~Y", "Joka~P", graph.DISTANCE)
	assert.ErrorIs(t, err, routing.ErrNoRoute)

	_, err = manager.AddConnection("Airport~Y", "Jai Hind~YO", 0)
	assert.ErrorIs(t, err, graph.ErrInvalidEdge)
	conn, err := manager.AddConnection("Airport~Y", "Jai Hind~YO", 2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), conn.Distance)
	_, err = manager.AddConnection("Jai Hind~YO", "Airport~Y", 2)
	assert.ErrorIs(t, err, graph.ErrConnectionExists)

	reach, err = manager.Reachable("Airport~Y", "Joka~P")
	require.NoError(t, err)
	assert.True(t, reach.Reachable)
	assert.Equal(t, 51, manager.GetInfo().Stations)

	_, err = manager.RemoveConnection("Airport~Y", "Jai Hind~YO")
	require.NoError(t, err)
	_, err = manager.RemoveConnection("Airport~Y", "Jai Hind~YO")
	assert.ErrorIs(t, err, graph.ErrInvalidEdge)
	assert.Equal(t, 2, manager.GetInfo().Components)

	_, err = manager.RemoveStation("Airport~Y")
	require.NoError(t, err)
	_, err = manager.RemoveStation("Airport~Y")
	assert.ErrorIs(t, err, graph.ErrStationNotFound)
}

func TestManagerRouteCacheInvalidation(t *testing.T) {
	manager := newBuiltinManager(t)

	first, err := manager.Route("Howrah~G", "Joka~P", graph.DISTANCE, routing.DIJKSTRA)
	require.NoError(t, err)
	cached, err := manager.Route("Howrah~G", "Joka~P", graph.DISTANCE, routing.DIJKSTRA)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	_, err = manager.AddConnection("Howrah~G", "Joka~P", 1)
	require.NoError(t, err)
	updated, err := manager.Route("Howrah~G", "Joka~P", graph.DISTANCE, routing.DIJKSTRA)
	require.NoError(t, err)
	assert.Equal(t, int32(1), updated.Distance)
	assert.Len(t, updated.Stations, 2)
}
