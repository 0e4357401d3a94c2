package graph

import (
	"github.com/ttpr0/go-metro/structs"
	. "github.com/ttpr0/go-metro/util"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//*******************************************
// graph interface
//*******************************************

// IGraph is the read-only view used by the searches.
type IGraph interface {
	NumVertex() int
	NumEdges() int
	ContainsVertex(name string) bool
	ContainsEdge(a, b string) bool
	GetStation(name string) (structs.Station, bool)
	GetEdgeWeight(a, b string) (int32, bool)
	// Calls the callback for every neighbour of the station, order is unspecified.
	ForAdjacentEdges(name string, callback func(other string, weight int32))
	HasPath(a, b string) bool
	GetKeys() List[string]
}

//*******************************************
// graph store
//*******************************************

type Vertex struct {
	station structs.Station
	nbrs    Dict[string, int32]
}

// Graph is an undirected weighted graph keyed by station name. Every edge is
// stored in the adjacency of both endpoints with the same weight.
//
// Graph is not safe for concurrent mutation. Callers that mutate while
// serving queries have to serialize access.
type Graph struct {
	vertices Dict[string, *Vertex]
}

func NewGraph() *Graph {
	return &Graph{
		vertices: NewDict[string, *Vertex](64),
	}
}

func (self *Graph) NumVertex() int {
	return self.vertices.Length()
}

// NumEdges counts every undirected edge once.
func (self *Graph) NumEdges() int {
	count := 0
	for _, vertex := range self.vertices {
		count += vertex.nbrs.Length()
	}
	return count / 2
}

func (self *Graph) ContainsVertex(name string) bool {
	return self.vertices.ContainsKey(name)
}

// AddVertex inserts a station with empty adjacency. Re-adding an existing
// station is destructive: all of its edges are removed.
func (self *Graph) AddVertex(name string) {
	if self.ContainsVertex(name) {
		self.RemoveVertex(name)
	}
	self.vertices[name] = &Vertex{
		station: structs.ParseStation(name),
		nbrs:    NewDict[string, int32](4),
	}
}

// RemoveVertex removes the station and all edges incident to it.
// Returns false if the station is absent.
func (self *Graph) RemoveVertex(name string) bool {
	vertex, ok := self.vertices[name]
	if !ok {
		return false
	}
	for nbr := range vertex.nbrs {
		self.vertices[nbr].nbrs.Delete(name)
	}
	self.vertices.Delete(name)
	return true
}

func (self *Graph) ContainsEdge(a, b string) bool {
	vertex, ok := self.vertices[a]
	if !ok || !self.ContainsVertex(b) {
		return false
	}
	return vertex.nbrs.ContainsKey(b)
}

// AddEdge inserts an undirected edge. Nothing changes if an endpoint is
// missing, the edge already exists, a == b or the weight is not positive.
func (self *Graph) AddEdge(a, b string, weight int32) bool {
	if a == b || weight <= 0 {
		return false
	}
	vertex_a, ok_a := self.vertices[a]
	vertex_b, ok_b := self.vertices[b]
	if !ok_a || !ok_b {
		return false
	}
	if vertex_a.nbrs.ContainsKey(b) {
		return false
	}
	vertex_a.nbrs[b] = weight
	vertex_b.nbrs[a] = weight
	return true
}

// RemoveEdge removes an undirected edge. Returns false if an endpoint or the
// edge is missing.
func (self *Graph) RemoveEdge(a, b string) bool {
	if !self.ContainsEdge(a, b) {
		return false
	}
	self.vertices[a].nbrs.Delete(b)
	self.vertices[b].nbrs.Delete(a)
	return true
}

func (self *Graph) GetEdgeWeight(a, b string) (int32, bool) {
	vertex, ok := self.vertices[a]
	if !ok {
		return 0, false
	}
	weight, ok := vertex.nbrs[b]
	return weight, ok
}

func (self *Graph) GetStation(name string) (structs.Station, bool) {
	vertex, ok := self.vertices[name]
	if !ok {
		return structs.Station{}, false
	}
	return vertex.station, true
}

func (self *Graph) ForAdjacentEdges(name string, callback func(other string, weight int32)) {
	vertex, ok := self.vertices[name]
	if !ok {
		return
	}
	for nbr, weight := range vertex.nbrs {
		callback(nbr, weight)
	}
}

// HasPath is a depth-first reachability check. It stops as soon as the
// current vertex has a direct edge to the target. Absent stations are never
// reachable, a present station always reaches itself.
func (self *Graph) HasPath(a, b string) bool {
	if !self.ContainsVertex(a) || !self.ContainsVertex(b) {
		return false
	}
	if a == b {
		return true
	}
	processed := NewDict[string, bool](self.NumVertex())
	stack := NewList[string](16)
	stack.Add(a)
	for stack.Length() > 0 {
		curr := stack.Last()
		stack = stack[:stack.Length()-1]
		if self.ContainsEdge(curr, b) {
			return true
		}
		if processed[curr] {
			continue
		}
		processed[curr] = true
		for nbr := range self.vertices[curr].nbrs {
			if !processed[nbr] {
				stack.Add(nbr)
			}
		}
	}
	return false
}

// GetKeys returns a snapshot of all station names in map iteration order.
func (self *Graph) GetKeys() List[string] {
	return List[string](maps.Keys(self.vertices))
}

// GetSortedKeys returns all station names in lexical order.
func (self *Graph) GetSortedKeys() List[string] {
	keys := self.GetKeys()
	slices.Sort(keys)
	return keys
}

// GetNeighbours returns the adjacency of a station sorted by neighbour name.
func (self *Graph) GetNeighbours(name string) List[Tuple[string, int32]] {
	vertex, ok := self.vertices[name]
	if !ok {
		return nil
	}
	nbrs := NewList[Tuple[string, int32]](vertex.nbrs.Length())
	for nbr, weight := range vertex.nbrs {
		nbrs.Add(MakeTuple(nbr, weight))
	}
	slices.SortFunc(nbrs, func(a, b Tuple[string, int32]) int {
		if a.A < b.A {
			return -1
		}
		if a.A > b.A {
			return 1
		}
		return 0
	})
	return nbrs
}
