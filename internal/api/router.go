package api

import (
	"delivery-dashboard-service/internal/api/handlers"
	"delivery-dashboard-service/internal/platform/metrics"
	"delivery-dashboard-service/internal/ports"
	"net/http"

	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(log zerolog.Logger, recorder *metrics.Recorder, fleet ports.FleetRepository, selector ports.PlanSelector, feed ports.MetricsFeed) http.Handler {
	mux := http.NewServeMux()

	vehicleHandler := &handlers.VehicleHandler{Fleet: fleet}
	planHandler := &handlers.PlanHandler{
		Selector: selector,
		Recorder: recorder,
	}
	loadingHandler := &handlers.LoadingHandler{Fleet: fleet}
	feedHandler := &handlers.FeedHandler{Feed: feed}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/vehicles", vehicleHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/loading-plans", loadingHandler.Create)
	mux.HandleFunc("/metrics/live", feedHandler.Live)

	return requestIDMiddleware(log, loggingMiddleware(recorder, mux))
}
