package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-metro/structs"
)

func buildSmallGraph() *Graph {
	g := NewGraph()
	g.AddVertex("A~X")
	g.AddVertex("B~X")
	g.AddVertex("C~Y")
	g.AddVertex("D~Z")
	g.AddEdge("A~X", "B~X", 5)
	g.AddEdge("B~X", "C~Y", 3)
	return g
}

func TestAddEdgeIsSymmetric(t *testing.T) {
	g := buildSmallGraph()

	w1, ok1 := g.GetEdgeWeight("A~X", "B~X")
	w2, ok2 := g.GetEdgeWeight("B~X", "A~X")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, int32(5), w1)
	assert.Equal(t, w1, w2)
	assert.True(t, g.ContainsEdge("C~Y", "B~X"))
	assert.Equal(t, 4, g.NumVertex())
	assert.Equal(t, 2, g.NumEdges())
}

func TestAddEdgeRejectsInvalid(t *testing.T) {
	g := buildSmallGraph()

	assert.False(t, g.AddEdge("A~X", "A~X", 1), "self loop")
	assert.False(t, g.AddEdge("A~X", "C~Y", 0), "zero weight")
	assert.False(t, g.AddEdge("A~X", "C~Y", -4), "negative weight")
	assert.False(t, g.AddEdge("A~X", "Q~Q", 2), "missing endpoint")
	assert.False(t, g.AddEdge("B~X", "A~X", 9), "existing edge")

	w, _ := g.GetEdgeWeight("A~X", "B~X")
	assert.Equal(t, int32(5), w)
	assert.Equal(t, 2, g.NumEdges())
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := buildSmallGraph()
	before := g.NumVertex()

	assert.True(t, g.RemoveVertex("B~X"))
	assert.Equal(t, before-1, g.NumVertex())
	assert.False(t, g.ContainsVertex("B~X"))
	assert.Equal(t, 0, g.NumEdges())
	for _, key := range g.GetKeys() {
		g.ForAdjacentEdges(key, func(other string, weight int32) {
			assert.NotEqual(t, "B~X", other)
		})
	}
	assert.False(t, g.RemoveVertex("B~X"))
	assert.Equal(t, before-1, g.NumVertex())
}

func TestRemoveEdge(t *testing.T) {
	g := buildSmallGraph()

	assert.True(t, g.RemoveEdge("B~X", "A~X"))
	assert.False(t, g.ContainsEdge("A~X", "B~X"))
	assert.False(t, g.ContainsEdge("B~X", "A~X"))
	assert.False(t, g.RemoveEdge("A~X", "B~X"))
	assert.False(t, g.RemoveEdge("A~X", "Q~Q"))
	assert.Equal(t, 1, g.NumEdges())
}

func TestAddVertexTwiceClearsEdges(t *testing.T) {
	g := buildSmallGraph()

	g.AddVertex("B~X")
	assert.Equal(t, 4, g.NumVertex())
	assert.Equal(t, 0, g.NumEdges())
	assert.False(t, g.ContainsEdge("A~X", "B~X"))
	assert.Empty(t, g.GetNeighbours("A~X"))
}

func TestHasPath(t *testing.T) {
	g := buildSmallGraph()

	assert.True(t, g.HasPath("A~X", "C~Y"))
	assert.True(t, g.HasPath("C~Y", "A~X"))
	assert.True(t, g.HasPath("A~X", "A~X"))
	assert.True(t, g.HasPath("D~Z", "D~Z"))
	assert.False(t, g.HasPath("A~X", "D~Z"))
	assert.False(t, g.HasPath("A~X", "Q~Q"))
	assert.False(t, g.HasPath("Q~Q", "Q~Q"))
}

func TestHasPathOnCycle(t *testing.T) {
	g := NewGraph()
	for _, name := range []string{"1~R", "2~R", "3~R", "4~R", "5~R"} {
		g.AddVertex(name)
	}
	g.AddEdge("1~R", "2~R", 1)
	g.AddEdge("2~R", "3~R", 1)
	g.AddEdge("3~R", "1~R", 1)
	g.AddEdge("4~R", "5~R", 1)

	assert.True(t, g.HasPath("1~R", "3~R"))
	assert.False(t, g.HasPath("1~R", "5~R"))
	assert.True(t, g.HasPath("5~R", "4~R"))
}

func TestGetNeighboursSorted(t *testing.T) {
	g := buildSmallGraph()

	nbrs := g.GetNeighbours("B~X")
	require.Len(t, nbrs, 2)
	assert.Equal(t, "A~X", nbrs[0].A)
	assert.Equal(t, int32(5), nbrs[0].B)
	assert.Equal(t, "C~Y", nbrs[1].A)
	assert.Equal(t, int32(3), nbrs[1].B)
	assert.Nil(t, g.GetNeighbours("Q~Q"))
}

func TestGetStation(t *testing.T) {
	g := NewGraph()
	g.AddVertex("Esplanade~BG")

	station, ok := g.GetStation("Esplanade~BG")
	require.True(t, ok)
	assert.Equal(t, "Esplanade", station.Title)
	assert.True(t, station.IsInterchange())
	_, ok = g.GetStation("Nowhere~B")
	assert.False(t, ok)
}

func TestBuildGraph(t *testing.T) {
	stations := []string{"A~X", "B~X", "C~Y", "A~X"}
	conns := []structs.Connection{
		{From: "A~X", To: "B~X", Distance: 5},
		{From: "B~X", To: "C~Y", Distance: 3},
		{From: "B~X", To: "A~X", Distance: 7},
	}
	g, err := BuildGraph(stations, conns)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertex())
	assert.Equal(t, 2, g.NumEdges())
	w, _ := g.GetEdgeWeight("A~X", "B~X")
	assert.Equal(t, int32(5), w)
}

func TestBuildGraphErrors(t *testing.T) {
	stations := []string{"A~X", "B~X"}

	_, err := BuildGraph(stations, []structs.Connection{{From: "A~X", To: "Z~Z", Distance: 1}})
	assert.True(t, errors.Is(err, ErrStationNotFound))

	_, err = BuildGraph(stations, []structs.Connection{{From: "A~X", To: "B~X", Distance: 0}})
	assert.True(t, errors.Is(err, ErrInvalidEdge))

	_, err = BuildGraph(stations, []structs.Connection{{From: "A~X", To: "A~X", Distance: 2}})
	assert.True(t, errors.Is(err, ErrInvalidEdge))
}

func TestConnectedComponents(t *testing.T) {
	g := buildSmallGraph()
	g.AddVertex("E~Z")
	g.AddEdge("D~Z", "E~Z", 1)
	g.AddVertex("F~W")

	comps := ConnectedComponents(g)
	require.Len(t, comps, 3)
	assert.Equal(t, []string{"A~X", "B~X", "C~Y"}, []string(comps[0]))
	assert.Equal(t, []string{"D~Z", "E~Z"}, []string(comps[1]))
	assert.Equal(t, []string{"F~W"}, []string(comps[2]))
	assert.False(t, IsConnected(g))

	g.AddEdge("C~Y", "D~Z", 2)
	g.AddEdge("E~Z", "F~W", 2)
	assert.True(t, IsConnected(g))
}

func TestWeighting(t *testing.T) {
	dist := BuildWeighting(DISTANCE, DefaultTimeModel())
	assert.Equal(t, int64(7), dist.GetEdgeWeight(7))
	assert.Equal(t, DISTANCE, dist.Metric())

	time := BuildWeighting(TIME, DefaultTimeModel())
	assert.Equal(t, int64(120+40*5), time.GetEdgeWeight(5))
	assert.Equal(t, TIME, time.Metric())

	custom := NewTimeWeighting(TimeModel{Overhead: 30, PerKm: 60})
	assert.Equal(t, int64(150), custom.GetEdgeWeight(2))
}

func TestTimeModelValidate(t *testing.T) {
	assert.NoError(t, DefaultTimeModel().Validate())
	assert.NoError(t, TimeModel{Overhead: 0, PerKm: MAX_TIME_PARAM}.Validate())
	assert.Error(t, TimeModel{Overhead: -1, PerKm: 40}.Validate())
	assert.Error(t, TimeModel{Overhead: 120, PerKm: 0}.Validate())
	assert.Error(t, TimeModel{Overhead: MAX_TIME_PARAM + 1, PerKm: 40}.Validate())
	assert.Error(t, TimeModel{Overhead: 120, PerKm: 2000000000}.Validate())
}

func TestSecondsToMinutes(t *testing.T) {
	assert.Equal(t, int64(0), SecondsToMinutes(0))
	assert.Equal(t, int64(1), SecondsToMinutes(1))
	assert.Equal(t, int64(1), SecondsToMinutes(60))
	assert.Equal(t, int64(2), SecondsToMinutes(61))
	assert.Equal(t, int64(12), SecondsToMinutes(680))
}

func TestMetricTypeFromString(t *testing.T) {
	m, err := MetricTypeFromString("time")
	require.NoError(t, err)
	assert.Equal(t, TIME, m)
	m, err = MetricTypeFromString("distance")
	require.NoError(t, err)
	assert.Equal(t, DISTANCE, m)
	_, err = MetricTypeFromString("speed")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}
