package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

func NewRouter(manager *NetworkManager) *mux.Router {
	app := mux.NewRouter()
	MapNetworkHandlers(app, manager)
	MapRoutingHandlers(app, manager)
	app.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return app
}

// Serve runs the http api until the context is cancelled.
func Serve(ctx context.Context, address string, manager *NetworkManager) error {
	server := &http.Server{
		Addr:              address,
		Handler:           NewRouter(manager),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("listening on %v", address))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down server")
		shutdown_ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdown_ctx)
	}
}
