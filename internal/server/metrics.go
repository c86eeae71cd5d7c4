package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/utilkit-io/utilkit/internal/metrics"
)

// metricsRouter serves the Prometheus scrape endpoint on its own listener so
// that scrapes stay off the API address and out of the API's rate limits.
func metricsRouter(m *metrics.Metrics) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", m.Handler())

	return router
}
