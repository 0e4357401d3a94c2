package main

import (
	"github.com/ttpr0/go-metro/graph"
	"github.com/ttpr0/go-metro/itinerary"
	"github.com/ttpr0/go-metro/routing"
	"github.com/ttpr0/go-metro/structs"
	. "github.com/ttpr0/go-metro/util"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type NetworkInfo struct {
	Name        string               `json:"name"`
	Lines       Dict[string, string] `json:"lines"`
	Stations    int                  `json:"stations"`
	Connections int                  `json:"connections"`
	Components  int                  `json:"components"`
}

type StationInfo struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Lines  string `json:"lines"`
	Code   string `json:"code"`
	Hub    bool   `json:"hub"`
	Degree int    `json:"degree"`
}

type MapEntry struct {
	Station    string                   `json:"station"`
	Neighbours List[structs.Connection] `json:"neighbours"`
}

type ReachableResponse struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Reachable bool   `json:"reachable"`
}

// CostResponse carries the raw cost (km or seconds) and the total in the display unit.
type CostResponse struct {
	From   string           `json:"from"`
	To     string           `json:"to"`
	Metric graph.MetricType `json:"metric"`
	Cost   int64            `json:"cost"`
	Total  int64            `json:"total"`
	Unit   string           `json:"unit"`
}

func NewCostResponse(from, to string, metric graph.MetricType, cost int64) CostResponse {
	resp := CostResponse{
		From:   from,
		To:     to,
		Metric: metric,
		Cost:   cost,
		Total:  cost,
		Unit:   "km",
	}
	if metric == graph.TIME {
		resp.Total = graph.SecondsToMinutes(cost)
		resp.Unit = "min"
	}
	return resp
}

type RouteResponse struct {
	From      string                `json:"from"`
	To        string                `json:"to"`
	Metric    graph.MetricType      `json:"metric"`
	Algorithm routing.AlgorithmType `json:"algorithm"`
	Stations  List[string]          `json:"stations"`
	Distance  int64                 `json:"distance"`
	Cost      int64                 `json:"cost"`
	Itinerary itinerary.Itinerary   `json:"itinerary"`
}

func NewRouteResponse(path routing.Path, algorithm routing.AlgorithmType, it itinerary.Itinerary) RouteResponse {
	stations := path.GetStations()
	return RouteResponse{
		From:      stations[0],
		To:        stations.Last(),
		Metric:    path.GetMetric(),
		Algorithm: algorithm,
		Stations:  stations,
		Distance:  path.GetDistance(),
		Cost:      path.GetCost(),
		Itinerary: it,
	}
}
