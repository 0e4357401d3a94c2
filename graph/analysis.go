package graph

import (
	. "github.com/ttpr0/go-metro/util"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ConnectedComponents groups the stations into islands that can reach each
// other. Components are ordered by size (largest first), stations inside a
// component are sorted by name.
func ConnectedComponents(g IGraph) List[List[string]] {
	keys := g.GetKeys()
	slices.Sort(keys)
	ids := NewDict[string, int64](keys.Length())
	ug := simple.NewUndirectedGraph()
	for i, key := range keys {
		ids[key] = int64(i)
		ug.AddNode(simple.Node(i))
	}
	for _, key := range keys {
		g.ForAdjacentEdges(key, func(other string, weight int32) {
			a, b := ids[key], ids[other]
			if a < b {
				ug.SetEdge(ug.NewEdge(simple.Node(a), simple.Node(b)))
			}
		})
	}

	groups := topo.ConnectedComponents(ug)
	components := NewList[List[string]](len(groups))
	for _, group := range groups {
		component := NewList[string](len(group))
		for _, node := range group {
			component.Add(keys[node.ID()])
		}
		slices.Sort(component)
		components.Add(component)
	}
	slices.SortFunc(components, func(a, b List[string]) int {
		if a.Length() != b.Length() {
			return b.Length() - a.Length()
		}
		if a[0] < b[0] {
			return -1
		}
		return 1
	})
	return components
}

// IsConnected is true if every station can reach every other one.
func IsConnected(g IGraph) bool {
	return ConnectedComponents(g).Length() <= 1
}
