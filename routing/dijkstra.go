package routing

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-metro/graph"
	. "github.com/ttpr0/go-metro/util"
	"golang.org/x/exp/slog"
)

type flag_d struct {
	path_length int64
	prev        string
	visited     bool
}

// Dijkstra is a single pair search with lazy deletion: improved costs are
// pushed as new queue entries and stale entries are skipped on pop.
type Dijkstra struct {
	heap     PriorityQueue[string, int64]
	start_id string
	end_id   string
	graph    graph.IGraph
	weight   graph.IWeighting
	flags    Dict[string, flag_d]
}

func NewDijkstra(g graph.IGraph, weight graph.IWeighting, start, end string) *Dijkstra {
	d := Dijkstra{graph: g, weight: weight, start_id: start, end_id: end}

	flags := NewDict[string, flag_d](g.NumVertex())
	flags[start] = flag_d{path_length: 0}
	d.flags = flags

	heap := NewPriorityQueue[string, int64](100)
	heap.Enqueue(d.start_id, 0)
	d.heap = heap

	return &d
}

func (self *Dijkstra) getFlag(id string) flag_d {
	flag, ok := self.flags[id]
	if !ok {
		return flag_d{path_length: math.MaxInt64}
	}
	return flag
}

func (self *Dijkstra) CalcShortestPath() bool {
	if !self.graph.ContainsVertex(self.start_id) || !self.graph.ContainsVertex(self.end_id) {
		return false
	}
	for {
		curr_id, ok := self.heap.Dequeue()
		if !ok {
			return false
		}
		curr_flag := self.getFlag(curr_id)
		if curr_flag.visited {
			continue
		}
		curr_flag.visited = true
		self.flags[curr_id] = curr_flag
		if curr_id == self.end_id {
			return true
		}
		self.graph.ForAdjacentEdges(curr_id, func(other_id string, distance int32) {
			other_flag := self.getFlag(other_id)
			if other_flag.visited {
				return
			}
			new_length := curr_flag.path_length + self.weight.GetEdgeWeight(distance)
			if other_flag.path_length > new_length {
				other_flag.prev = curr_id
				other_flag.path_length = new_length
				self.flags[other_id] = other_flag
				self.heap.Enqueue(other_id, new_length)
			}
		})
	}
}

// GetCost returns the finalized cost of the end station, false if the search
// did not reach it.
func (self *Dijkstra) GetCost() (int64, bool) {
	flag := self.getFlag(self.end_id)
	if !flag.visited {
		return 0, false
	}
	return flag.path_length, true
}

func (self *Dijkstra) GetShortestPath() Path {
	path := NewList[string](10)
	curr_id := self.end_id
	for {
		path.Add(curr_id)
		if curr_id == self.start_id {
			break
		}
		curr_id = self.flags[curr_id].prev
	}
	for i, j := 0, path.Length()-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	slog.Debug(fmt.Sprintf("length: %v", self.getFlag(self.end_id).path_length))
	p, _ := NewPath(self.graph, self.weight, path)
	return p
}
