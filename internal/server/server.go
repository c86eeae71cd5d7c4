package server

import (
	"context"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/utilkit-io/utilkit/internal/config"
	myHTTP "github.com/utilkit-io/utilkit/internal/handler/http"
	"github.com/utilkit-io/utilkit/internal/logger"
	"github.com/utilkit-io/utilkit/internal/metrics"
)

type server struct {
	apiServer     *httpServer
	metricsServer *httpServer
	logger        *logger.Logger
}

func NewServer(handler *myHTTP.Handler, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.Server.Address != "" {
		servers.apiServer = newHTTPServer("api", cfg.Server.Address, handler.Init(), cfg.Server, logger)
	}
	if cfg.Metrics.Address != "" {
		servers.metricsServer = newHTTPServer("metrics", cfg.Metrics.Address, metricsRouter(m), cfg.Server, logger)
	}

	if servers.apiServer == nil && servers.metricsServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Msgf("Error running server: %v", err)
	}
}

func (s *server) Shutdown() {
	if s.apiServer != nil {
		s.apiServer.Shutdown()
	}

	if s.metricsServer != nil {
		s.metricsServer.Shutdown()
	}
}

func (s *server) run() error {
	// check if any listener was created
	if s.apiServer == nil && s.metricsServer == nil {
		return errNoServersAreCreated
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	// launch all created listeners
	for _, srv := range []*httpServer{s.apiServer, s.metricsServer} {
		if srv == nil {
			continue
		}
		s.logger.Info().Str("server", srv.name).Str("address", srv.server.Addr).Msg("Launching HTTP server")
		group.Go(srv.RunServer)
	}

	// stop every listener once a signal arrives or one of them fails
	group.Go(func() error {
		<-ctx.Done()
		s.Shutdown()
		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
