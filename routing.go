package main

import (
	"github.com/gorilla/mux"
	"github.com/ttpr0/go-metro/graph"
	"github.com/ttpr0/go-metro/routing"
)

//**********************************************************
// routing requests
//**********************************************************

type ReachableRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type CostRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Metric string `json:"metric"`
}

type RouteRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Metric    string `json:"metric"`
	Algorithm string `json:"algorithm"`
}

//**********************************************************
// routing handlers
//**********************************************************

func MapRoutingHandlers(app *mux.Router, manager *NetworkManager) {
	MapGet(app, "/v0/reachable", func(req ReachableRequest) Result {
		if req.From == "" || req.To == "" {
			return BadRequest("from and to are required")
		}
		resp, err := manager.Reachable(req.From, req.To)
		if err != nil {
			return ErrorResult(err)
		}
		return OK(resp)
	})
	MapGet(app, "/v0/cost", func(req CostRequest) Result {
		if req.From == "" || req.To == "" {
			return BadRequest("from and to are required")
		}
		metric, err := _ParseMetric(req.Metric, manager.config.Routing.Metric)
		if err != nil {
			return ErrorResult(err)
		}
		resp, err := manager.Cost(req.From, req.To, metric)
		if err != nil {
			return ErrorResult(err)
		}
		return OK(resp)
	})
	MapGet(app, "/v0/route", func(req RouteRequest) Result {
		if req.From == "" || req.To == "" {
			return BadRequest("from and to are required")
		}
		metric, err := _ParseMetric(req.Metric, manager.config.Routing.Metric)
		if err != nil {
			return ErrorResult(err)
		}
		algorithm := manager.config.Routing.Algorithm
		if req.Algorithm != "" {
			algorithm, err = routing.AlgorithmTypeFromString(req.Algorithm)
			if err != nil {
				return ErrorResult(err)
			}
		}
		resp, err := manager.Route(req.From, req.To, metric, algorithm)
		if err != nil {
			return ErrorResult(err)
		}
		return OK(resp)
	})
}

func _ParseMetric(metric string, fallback graph.MetricType) (graph.MetricType, error) {
	if metric == "" {
		return fallback, nil
	}
	return graph.MetricTypeFromString(metric)
}
