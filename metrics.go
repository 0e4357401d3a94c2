package main

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/ttpr0/go-metro/graph"
	"github.com/ttpr0/go-metro/routing"
)

var (
	// queryTotal counts queries by operation and result
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metro_query_total",
		Help: "Total network queries by operation and result",
	}, []string{"operation", "result"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "metro_query_duration_seconds",
		Help:    "Query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"operation"})

	routeCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metro_route_cache_total",
		Help: "Route cache lookups by result",
	}, []string{"result"})

	mutationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metro_mutation_total",
		Help: "Network mutations by operation and result",
	}, []string{"operation", "result"})

	stationGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "metro_stations",
		Help: "Number of stations in the network",
	})
	connectionGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "metro_connections",
		Help: "Number of connections in the network",
	})
	componentGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "metro_components",
		Help: "Number of connected components of the network",
	})
)

func _ResultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, graph.ErrStationNotFound):
		return "station_not_found"
	case errors.Is(err, routing.ErrNoRoute):
		return "no_route"
	default:
		return "error"
	}
}

func observeQuery(operation string, start time.Time, err error) {
	queryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	queryTotal.WithLabelValues(operation, _ResultLabel(err)).Inc()
}

func observeMutation(operation string, err error) {
	mutationTotal.WithLabelValues(operation, _ResultLabel(err)).Inc()
}

func updateNetworkGauges(g *graph.Graph, components int) {
	stationGauge.Set(float64(g.NumVertex()))
	connectionGauge.Set(float64(g.NumEdges()))
	componentGauge.Set(float64(components))
}
