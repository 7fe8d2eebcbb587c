package http

import (
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/metrics"
	"github.com/MKhiriev/go-accounts/internal/service"
)

// DefaultRequestTimeout bounds a request when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A nil metrics disables /metrics and
// the request metrics middleware.
func NewHandler(services *service.Services, metrics *metrics.Metrics, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
