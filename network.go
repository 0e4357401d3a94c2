package main

import (
	"github.com/gorilla/mux"
)

//**********************************************************
// network requests
//**********************************************************

type StationRequest struct {
	Title string `json:"title"`
	Lines string `json:"lines"`
}

type RemoveStationRequest struct {
	Station string `json:"station"`
}

type ConnectionRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int32  `json:"distance"`
}

//**********************************************************
// network handlers
//**********************************************************

func MapNetworkHandlers(app *mux.Router, manager *NetworkManager) {
	MapGet(app, "/v0/network", func(none) Result {
		return OK(manager.GetInfo())
	})
	MapGet(app, "/v0/stations", func(none) Result {
		return OK(manager.Stations())
	})
	MapGet(app, "/v0/map", func(none) Result {
		return OK(manager.Map())
	})
	MapGet(app, "/v0/components", func(none) Result {
		return OK(manager.Components())
	})

	MapPost(app, "/v0/stations", func(req StationRequest) Result {
		name, err := manager.AddStation(req.Title, req.Lines)
		if err != nil {
			return ErrorResult(err)
		}
		return OK(map[string]string{"station": name})
	})
	MapPost(app, "/v0/stations/remove", func(req RemoveStationRequest) Result {
		name, err := manager.RemoveStation(req.Station)
		if err != nil {
			return ErrorResult(err)
		}
		return OK(map[string]string{"station": name})
	})
	MapPost(app, "/v0/connections", func(req ConnectionRequest) Result {
		conn, err := manager.AddConnection(req.From, req.To, req.Distance)
		if err != nil {
			return ErrorResult(err)
		}
		return OK(conn)
	})
	MapPost(app, "/v0/connections/remove", func(req ConnectionRequest) Result {
		conn, err := manager.RemoveConnection(req.From, req.To)
		if err != nil {
			return ErrorResult(err)
		}
		return OK(conn)
	})
}
