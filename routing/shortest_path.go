package routing

import (
	"encoding/json"
	"fmt"

	"github.com/ttpr0/go-metro/graph"
	. "github.com/ttpr0/go-metro/util"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

type IShortestPath interface {
	CalcShortestPath() bool
	GetShortestPath() Path
}

//*******************************************
// algorithm type
//*******************************************

type AlgorithmType byte

const (
	DIJKSTRA   AlgorithmType = 0
	EXHAUSTIVE AlgorithmType = 1
)

func (self AlgorithmType) String() string {
	switch self {
	case DIJKSTRA:
		return "dijkstra"
	case EXHAUSTIVE:
		return "exhaustive"
	default:
		panic("unknown algorithm type")
	}
}
func (self AlgorithmType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *AlgorithmType) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = AlgorithmTypeFromString(typ)
	return err
}
func (self AlgorithmType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *AlgorithmType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := AlgorithmTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func AlgorithmTypeFromString(s string) (AlgorithmType, error) {
	switch s {
	case "dijkstra", "":
		return DIJKSTRA, nil
	case "exhaustive":
		return EXHAUSTIVE, nil
	default:
		return DIJKSTRA, ErrUnknownAlgorithm
	}
}

//*******************************************
// queries
//*******************************************

func checkStations(g graph.IGraph, start, end string) error {
	if !g.ContainsVertex(start) {
		return fmt.Errorf("%w: %v", graph.ErrStationNotFound, start)
	}
	if !g.ContainsVertex(end) {
		return fmt.Errorf("%w: %v", graph.ErrStationNotFound, end)
	}
	return nil
}

// Reachable reports whether a route between the two stations exists.
func Reachable(g graph.IGraph, start, end string) bool {
	return g.HasPath(start, end)
}

// ShortestCost returns the minimum raw cost (km or seconds) between two stations.
func ShortestCost(g graph.IGraph, weight graph.IWeighting, start, end string) (int64, error) {
	if err := checkStations(g, start, end); err != nil {
		return 0, err
	}
	alg := NewDijkstra(g, weight, start, end)
	if !alg.CalcShortestPath() {
		return 0, fmt.Errorf("%v - %v: %w", start, end, ErrNoRoute)
	}
	cost, _ := alg.GetCost()
	return cost, nil
}

// BestPath recovers the cost-minimal route between two stations.
func BestPath(g graph.IGraph, weight graph.IWeighting, start, end string, algorithm AlgorithmType) (Path, error) {
	if err := checkStations(g, start, end); err != nil {
		return Path{}, err
	}
	var alg IShortestPath
	switch algorithm {
	case DIJKSTRA:
		alg = NewDijkstra(g, weight, start, end)
	case EXHAUSTIVE:
		alg = NewExhaustive(g, weight, start, end)
	default:
		return Path{}, ErrUnknownAlgorithm
	}
	if !alg.CalcShortestPath() {
		return Path{}, fmt.Errorf("%v - %v: %w", start, end, ErrNoRoute)
	}
	return alg.GetShortestPath(), nil
}

// ListStations returns all station names sorted.
func ListStations(g graph.IGraph) List[string] {
	keys := g.GetKeys()
	slices.Sort(keys)
	return keys
}
