package routing

import (
	"fmt"
	"strings"

	"github.com/ttpr0/go-metro/graph"
	. "github.com/ttpr0/go-metro/util"
)

// PATH_SEPARATOR joins station names in the textual path form. Two spaces
// keep it apart from the single spaces inside station titles.
const PATH_SEPARATOR = "  "

type Path struct {
	stations List[string]
	distance int64
	cost     int64
	metric   graph.MetricType
}

func NewPath(g graph.IGraph, weight graph.IWeighting, stations List[string]) (Path, error) {
	path := Path{
		stations: stations,
		metric:   weight.Metric(),
	}
	for i := 1; i < stations.Length(); i++ {
		dist, ok := g.GetEdgeWeight(stations[i-1], stations[i])
		if !ok {
			return Path{}, fmt.Errorf("no connection %v - %v: %w", stations[i-1], stations[i], ErrNoRoute)
		}
		path.distance += int64(dist)
		path.cost += weight.GetEdgeWeight(dist)
	}
	return path, nil
}

func (self Path) GetStations() List[string] {
	return self.stations
}

func (self Path) Length() int {
	return self.stations.Length()
}

// Distance in km.
func (self Path) GetDistance() int64 {
	return self.distance
}

// GetCost returns the raw accumulated cost under the path's metric (km or seconds).
func (self Path) GetCost() int64 {
	return self.cost
}

// GetDisplayCost is the cost shown to users: km for distance, minutes
// rounded up for time.
func (self Path) GetDisplayCost() int64 {
	if self.metric == graph.TIME {
		return graph.SecondsToMinutes(self.cost)
	}
	return self.cost
}

func (self Path) GetMetric() graph.MetricType {
	return self.metric
}

func (self Path) String() string {
	return strings.Join(self.stations, PATH_SEPARATOR)
}

// SplitPath tokenizes the textual path form.
func SplitPath(path string) List[string] {
	stations := NewList[string](8)
	for _, token := range strings.Split(path, PATH_SEPARATOR) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		stations.Add(token)
	}
	return stations
}
