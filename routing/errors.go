package routing

import "errors"

var (
	// ErrNoRoute is returned when both stations exist but are not connected.
	ErrNoRoute = errors.New("no route between stations")

	ErrUnknownAlgorithm = errors.New("unknown routing algorithm")
)
