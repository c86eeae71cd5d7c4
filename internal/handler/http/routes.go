package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.metrics.Middleware)

	// rate-limited API routes
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Use(withGZip)

		r.Post("/api/text/slug", h.slugify)
		r.Post("/api/text/title", h.titleCase)
		r.Post("/api/text/slug-title", h.slugToTitle)

		r.Post("/api/crypto/key", h.generateKey)
		r.Post("/api/crypto/encrypt", h.encrypt)
		r.Post("/api/crypto/decrypt", h.decrypt)

		r.Post("/api/format/date", h.formatDate)
		r.Post("/api/format/price", h.formatPrice)

		r.Post("/api/delay", h.delay)
	})

	// operational routes bypass the limiter
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/health", h.health)
	})

	// metrics share the API listener unless a dedicated address is configured
	if h.cfg.Metrics.Address == "" {
		router.Handle("/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
