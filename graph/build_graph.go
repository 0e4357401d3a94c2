package graph

import (
	"fmt"

	"github.com/ttpr0/go-metro/structs"
	"golang.org/x/exp/slog"
)

// BuildGraph bulk-loads a network. Repeated stations are added once and
// repeated connections are ignored; connections to unknown stations or with
// a non-positive distance fail the whole load.
func BuildGraph(stations []string, connections []structs.Connection) (*Graph, error) {
	g := NewGraph()
	for _, name := range stations {
		if g.ContainsVertex(name) {
			slog.Debug(fmt.Sprintf("skipping duplicate station %v", name))
			continue
		}
		g.AddVertex(name)
	}
	for _, conn := range connections {
		if !g.ContainsVertex(conn.From) {
			return nil, fmt.Errorf("connection %v - %v: %w: %v", conn.From, conn.To, ErrStationNotFound, conn.From)
		}
		if !g.ContainsVertex(conn.To) {
			return nil, fmt.Errorf("connection %v - %v: %w: %v", conn.From, conn.To, ErrStationNotFound, conn.To)
		}
		if conn.From == conn.To || conn.Distance <= 0 {
			return nil, fmt.Errorf("connection %v - %v (%v km): %w", conn.From, conn.To, conn.Distance, ErrInvalidEdge)
		}
		if !g.AddEdge(conn.From, conn.To, conn.Distance) {
			slog.Debug(fmt.Sprintf("skipping duplicate connection %v - %v", conn.From, conn.To))
		}
	}
	slog.Debug(fmt.Sprintf("built graph with %v stations and %v connections", g.NumVertex(), g.NumEdges()))
	return g, nil
}
