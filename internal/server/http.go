package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/utilkit-io/utilkit/internal/config"
	"github.com/utilkit-io/utilkit/internal/logger"
)

// idleTimeout bounds how long a keep-alive connection may sit unused.
const idleTimeout = 60 * time.Second

// httpServer is one listener with its shutdown budget. The name tells the
// API and metrics listeners apart in logs.
type httpServer struct {
	name   string
	server *http.Server

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newHTTPServer(name, address string, handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:         address,
			Handler:      handler,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
			IdleTimeout:  idleTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// RunServer blocks until the listener stops. A server closed by [Shutdown]
// is a clean exit, anything else is a failure.
func (h *httpServer) RunServer() error {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server ListenAndServe: %w", h.name, err)
	}
	return nil
}

func (h *httpServer) Shutdown() {
	h.logger.Info().Str("server", h.name).Msg("HTTP server Shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Str("server", h.name).Msg("error during HTTP server Shutdown")
	}
}
