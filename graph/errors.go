package graph

import "errors"

var (
	// ErrStationNotFound is returned when a station name is not part of the graph.
	ErrStationNotFound = errors.New("station not found")

	// ErrInvalidEdge is returned for self loops and non-positive weights.
	ErrInvalidEdge = errors.New("invalid edge")
)

var (
	ErrStationExists    = errors.New("station already exists")
	ErrConnectionExists = errors.New("connection already exists")
)
