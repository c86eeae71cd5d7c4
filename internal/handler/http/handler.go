package http

import (
	"github.com/utilkit-io/utilkit/crypt"
	"github.com/utilkit-io/utilkit/internal/config"
	"github.com/utilkit-io/utilkit/internal/logger"
	"github.com/utilkit-io/utilkit/internal/metrics"
	"github.com/utilkit-io/utilkit/internal/utils"
	"github.com/utilkit-io/utilkit/models"

	"golang.org/x/time/rate"
)

type Handler struct {
	cipher    crypt.Cipher
	cfg       *config.StructuredConfig
	buildInfo models.AppBuildInfo

	metrics *metrics.Metrics
	uuid    *utils.UUIDGenerator
	limiter *rate.Limiter

	logger *logger.Logger
}

func NewHandler(cipher crypt.Cipher, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		cipher:    cipher,
		cfg:       cfg,
		buildInfo: buildInfo,
		metrics:   m,
		uuid:      utils.NewUUIDGenerator(),
		limiter:   rate.NewLimiter(rate.Limit(cfg.Limits.RPS), cfg.Limits.Burst),
		logger:    logger,
	}
}
