package commands

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/utilkit-io/utilkit/crypt"
	"github.com/utilkit-io/utilkit/internal/config"
	myHTTP "github.com/utilkit-io/utilkit/internal/handler/http"
	"github.com/utilkit-io/utilkit/internal/logger"
	"github.com/utilkit-io/utilkit/internal/metrics"
	"github.com/utilkit-io/utilkit/internal/server"
	"github.com/utilkit-io/utilkit/models"
)

// RunServe wires the configuration, logger, metrics, handler and listeners
// together and runs the HTTP server until a shutdown signal arrives.
// Overrides from command-line flags win over environment variables, the
// JSON file, and the built-in defaults.
func RunServe(overrides *config.StructuredConfig, build models.AppBuildInfo) error {
	log := serverLogger()

	cfg, err := config.GetStructuredConfig(overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	m := metrics.New("utilkit")
	handler := myHTTP.NewHandler(crypt.NewCipherService(), cfg, build, m, log)

	srv, err := server.NewServer(handler, cfg, m, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	srv.RunServer()
	return nil
}

// serverLogger picks human-readable console output for interactive runs and
// JSON for everything else.
func serverLogger() *logger.Logger {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return logger.NewConsoleLogger("utilkit-server")
	}
	return logger.NewLogger("utilkit-server")
}
