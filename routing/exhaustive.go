package routing

import (
	"fmt"

	"github.com/ttpr0/go-metro/graph"
	. "github.com/ttpr0/go-metro/util"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

type _Record struct {
	station  string
	path     List[string]
	distance int64
	cost     int64
}

func (self _Record) contains(station string) bool {
	return slices.Contains(self.path, station)
}

// Exhaustive enumerates simple paths from the start with an explicit stack.
// Stations are excluded per partial path only, there is no global visited
// set, so a station reached first by an expensive path is still expanded
// again through cheaper ones. Partial paths that already cost at least as
// much as the best complete path are cut off. Among equally cheap paths the
// first one found is kept.
type Exhaustive struct {
	start_id string
	end_id   string
	graph    graph.IGraph
	weight   graph.IWeighting
	best     Optional[_Record]
	expanded int
}

func NewExhaustive(g graph.IGraph, weight graph.IWeighting, start, end string) *Exhaustive {
	return &Exhaustive{
		start_id: start,
		end_id:   end,
		graph:    g,
		weight:   weight,
		best:     None[_Record](),
	}
}

func (self *Exhaustive) CalcShortestPath() bool {
	if !self.graph.ContainsVertex(self.start_id) || !self.graph.ContainsVertex(self.end_id) {
		return false
	}
	stack := NewList[_Record](32)
	stack.Add(_Record{station: self.start_id, path: List[string]{self.start_id}})
	nbrs := NewList[Tuple[string, int32]](8)
	for stack.Length() > 0 {
		curr := stack.Last()
		stack = stack[:stack.Length()-1]
		if self.best.HasValue() && curr.cost >= self.best.Value.cost {
			continue
		}
		if curr.station == self.end_id {
			self.best = Some(curr)
			continue
		}
		self.expanded += 1

		nbrs = nbrs[:0]
		self.graph.ForAdjacentEdges(curr.station, func(other string, distance int32) {
			if curr.contains(other) {
				return
			}
			nbrs.Add(MakeTuple(other, distance))
		})
		// pushed in reverse so the lexically smallest neighbour is explored first
		slices.SortFunc(nbrs, func(a, b Tuple[string, int32]) int {
			if a.A > b.A {
				return -1
			}
			if a.A < b.A {
				return 1
			}
			return 0
		})
		for _, nbr := range nbrs {
			path := NewList[string](curr.path.Length() + 1)
			path = append(path, curr.path...)
			path.Add(nbr.A)
			stack.Add(_Record{
				station:  nbr.A,
				path:     path,
				distance: curr.distance + int64(nbr.B),
				cost:     curr.cost + self.weight.GetEdgeWeight(nbr.B),
			})
		}
	}
	slog.Debug(fmt.Sprintf("exhaustive search expanded %v partial paths", self.expanded))
	return self.best.HasValue()
}

func (self *Exhaustive) GetShortestPath() Path {
	if !self.best.HasValue() {
		return Path{metric: self.weight.Metric()}
	}
	best := self.best.Value
	return Path{
		stations: best.path,
		distance: best.distance,
		cost:     best.cost,
		metric:   self.weight.Metric(),
	}
}

// GetCost returns the cost of the best complete path, false if none was found.
func (self *Exhaustive) GetCost() (int64, bool) {
	if !self.best.HasValue() {
		return 0, false
	}
	return self.best.Value.cost, true
}
