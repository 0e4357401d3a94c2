package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bluele/gcache"
	"github.com/ttpr0/go-metro/graph"
	"github.com/ttpr0/go-metro/itinerary"
	"github.com/ttpr0/go-metro/parser"
	"github.com/ttpr0/go-metro/routing"
	"github.com/ttpr0/go-metro/structs"
	. "github.com/ttpr0/go-metro/util"
	"golang.org/x/exp/slog"
)

var ErrAmbiguousStation = errors.New("ambiguous station reference")

// NewNetworkManager loads the configured network and builds its graph.
func NewNetworkManager(config Config) (*NetworkManager, error) {
	network, err := parser.LoadNetwork(config.Network.Source, config.Network.Format, config.Network.LineTags)
	if err != nil {
		return nil, err
	}
	g, err := network.BuildGraph()
	if err != nil {
		return nil, err
	}
	manager := NewNetworkManagerFromGraph(g, config)
	manager.name = network.Name
	manager.lines = network.Lines
	return manager, nil
}

func NewNetworkManagerFromGraph(g *graph.Graph, config Config) *NetworkManager {
	manager := &NetworkManager{
		config: config,
		graph:  g,
		lines:  NewDict[string, string](0),
	}
	if config.Routing.CacheSize > 0 {
		manager.cache = gcache.New(config.Routing.CacheSize).
			LRU().
			Build()
	}
	manager._OnNetworkChanged()
	return manager
}

// NetworkManager serializes access to the graph. Queries share a read lock,
// mutations take the write lock and invalidate cached routes.
type NetworkManager struct {
	mu     sync.RWMutex
	config Config
	name   string
	lines  Dict[string, string]
	graph  *graph.Graph
	cache  gcache.Cache
}

func (self *NetworkManager) _OnNetworkChanged() {
	if self.cache != nil {
		self.cache.Purge()
	}
	components := graph.ConnectedComponents(self.graph)
	updateNetworkGauges(self.graph, components.Length())
	if components.Length() > 1 {
		slog.Warn(fmt.Sprintf("network has %v disconnected components", components.Length()))
	}
	slog.Info(fmt.Sprintf("network: %v stations, %v connections", self.graph.NumVertex(), self.graph.NumEdges()))
}

func (self *NetworkManager) _GetWeighting(metric graph.MetricType) graph.IWeighting {
	return graph.BuildWeighting(metric, self.config.Routing.TimeModel)
}

//**********************************************************
// station resolution
//**********************************************************

// ResolveStation maps a user reference onto a station name. A reference is
// either the full name, the 1-based number in the sorted station list, the
// station title or the station code. Title and code are compared case
// insensitive and must be unique.
func (self *NetworkManager) ResolveStation(ref string) (string, error) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self._ResolveStation(ref)
}

func (self *NetworkManager) _ResolveStation(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", graph.ErrStationNotFound)
	}
	if self.graph.ContainsVertex(ref) {
		return ref, nil
	}
	keys := self.graph.GetSortedKeys()
	if num, err := strconv.Atoi(ref); err == nil {
		if num >= 1 && num <= keys.Length() {
			return keys[num-1], nil
		}
	}
	by_title := NewList[string](1)
	by_code := NewList[string](1)
	for _, key := range keys {
		station, _ := self.graph.GetStation(key)
		if strings.EqualFold(station.Title, ref) {
			by_title.Add(key)
		}
		if strings.EqualFold(station.Code(), ref) {
			by_code.Add(key)
		}
	}
	for _, matches := range []List[string]{by_title, by_code} {
		switch matches.Length() {
		case 0:
			continue
		case 1:
			return matches[0], nil
		default:
			return "", fmt.Errorf("%w %q: matches %v", ErrAmbiguousStation, ref, strings.Join(matches, ", "))
		}
	}
	return "", fmt.Errorf("%w: %v", graph.ErrStationNotFound, ref)
}

func (self *NetworkManager) _ResolvePair(from, to string) (string, string, error) {
	start, err := self._ResolveStation(from)
	if err != nil {
		return "", "", err
	}
	end, err := self._ResolveStation(to)
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}

//**********************************************************
// queries
//**********************************************************

func (self *NetworkManager) GetInfo() NetworkInfo {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return NetworkInfo{
		Name:        self.name,
		Lines:       self.lines,
		Stations:    self.graph.NumVertex(),
		Connections: self.graph.NumEdges(),
		Components:  graph.ConnectedComponents(self.graph).Length(),
	}
}

// Stations lists all stations sorted by name.
func (self *NetworkManager) Stations() List[StationInfo] {
	self.mu.RLock()
	defer self.mu.RUnlock()

	keys := routing.ListStations(self.graph)
	stations := NewList[StationInfo](keys.Length())
	for i, key := range keys {
		station, _ := self.graph.GetStation(key)
		stations.Add(StationInfo{
			Number: i + 1,
			Name:   station.Name,
			Title:  station.Title,
			Lines:  station.Lines.String(),
			Code:   station.Code(),
			Hub:    station.IsInterchange(),
			Degree: self.graph.GetNeighbours(key).Length(),
		})
	}
	return stations
}

// Map lists every station together with its neighbours.
func (self *NetworkManager) Map() List[MapEntry] {
	self.mu.RLock()
	defer self.mu.RUnlock()

	keys := self.graph.GetSortedKeys()
	entries := NewList[MapEntry](keys.Length())
	for _, key := range keys {
		entry := MapEntry{
			Station:    key,
			Neighbours: NewList[structs.Connection](4),
		}
		for _, nbr := range self.graph.GetNeighbours(key) {
			entry.Neighbours.Add(structs.Connection{From: key, To: nbr.A, Distance: nbr.B})
		}
		entries.Add(entry)
	}
	return entries
}

func (self *NetworkManager) Components() List[List[string]] {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return graph.ConnectedComponents(self.graph)
}

func (self *NetworkManager) Reachable(from, to string) (ReachableResponse, error) {
	t := time.Now()
	self.mu.RLock()
	defer self.mu.RUnlock()

	start, end, err := self._ResolvePair(from, to)
	defer func() { observeQuery("reachable", t, err) }()
	if err != nil {
		return ReachableResponse{}, err
	}
	return ReachableResponse{
		From:      start,
		To:        end,
		Reachable: routing.Reachable(self.graph, start, end),
	}, nil
}

func (self *NetworkManager) Cost(from, to string, metric graph.MetricType) (CostResponse, error) {
	t := time.Now()
	self.mu.RLock()
	defer self.mu.RUnlock()

	var err error
	defer func() { observeQuery("cost", t, err) }()
	start, end, err := self._ResolvePair(from, to)
	if err != nil {
		return CostResponse{}, err
	}
	cost, err := routing.ShortestCost(self.graph, self._GetWeighting(metric), start, end)
	if err != nil {
		return CostResponse{}, err
	}
	return NewCostResponse(start, end, metric, cost), nil
}

func (self *NetworkManager) Route(from, to string, metric graph.MetricType, algorithm routing.AlgorithmType) (RouteResponse, error) {
	t := time.Now()
	self.mu.RLock()
	defer self.mu.RUnlock()

	var err error
	defer func() { observeQuery("route", t, err) }()
	start, end, err := self._ResolvePair(from, to)
	if err != nil {
		return RouteResponse{}, err
	}

	key := fmt.Sprintf("%v|%v|%d|%d", start, end, metric, algorithm)
	if self.cache != nil {
		if cached, cache_err := self.cache.Get(key); cache_err == nil {
			if resp, ok := cached.(RouteResponse); ok {
				routeCacheTotal.WithLabelValues("hit").Inc()
				return resp, nil
			}
		}
		routeCacheTotal.WithLabelValues("miss").Inc()
	}

	path, err := routing.BestPath(self.graph, self._GetWeighting(metric), start, end, algorithm)
	if err != nil {
		return RouteResponse{}, err
	}
	resp := NewRouteResponse(path, algorithm, itinerary.FromPath(path))
	if self.cache != nil {
		self.cache.Set(key, resp)
	}
	return resp, nil
}

//**********************************************************
// mutations
//**********************************************************

func (self *NetworkManager) AddStation(title string, lines string) (string, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	var err error
	defer func() { observeMutation("add_station", err) }()
	title = strings.TrimSpace(title)
	line_set := structs.NewLineSet(lines)
	if title == "" || strings.Contains(title, structs.LINE_DELIMITER) || len(line_set) == 0 {
		err = fmt.Errorf("invalid station %q with lines %q", title, lines)
		return "", err
	}
	name := structs.MakeStationName(title, line_set)
	if self.graph.ContainsVertex(name) {
		err = fmt.Errorf("%w: %v", graph.ErrStationExists, name)
		return "", err
	}
	self.graph.AddVertex(name)
	self._OnNetworkChanged()
	return name, nil
}

func (self *NetworkManager) RemoveStation(ref string) (string, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	var err error
	defer func() { observeMutation("remove_station", err) }()
	name, err := self._ResolveStation(ref)
	if err != nil {
		return "", err
	}
	self.graph.RemoveVertex(name)
	self._OnNetworkChanged()
	return name, nil
}

func (self *NetworkManager) AddConnection(from, to string, distance int32) (structs.Connection, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	var err error
	defer func() { observeMutation("add_connection", err) }()
	start, end, err := self._ResolvePair(from, to)
	if err != nil {
		return structs.Connection{}, err
	}
	if start == end || distance <= 0 {
		err = fmt.Errorf("%v - %v (%v km): %w", start, end, distance, graph.ErrInvalidEdge)
		return structs.Connection{}, err
	}
	if !self.graph.AddEdge(start, end, distance) {
		err = fmt.Errorf("%w: %v - %v", graph.ErrConnectionExists, start, end)
		return structs.Connection{}, err
	}
	self._OnNetworkChanged()
	return structs.Connection{From: start, To: end, Distance: distance}, nil
}

func (self *NetworkManager) RemoveConnection(from, to string) (structs.Connection, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	var err error
	defer func() { observeMutation("remove_connection", err) }()
	start, end, err := self._ResolvePair(from, to)
	if err != nil {
		return structs.Connection{}, err
	}
	distance, _ := self.graph.GetEdgeWeight(start, end)
	if !self.graph.RemoveEdge(start, end) {
		err = fmt.Errorf("no connection %v - %v: %w", start, end, graph.ErrInvalidEdge)
		return structs.Connection{}, err
	}
	self._OnNetworkChanged()
	return structs.Connection{From: start, To: end, Distance: distance}, nil
}
