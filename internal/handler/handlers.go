package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/handler/http"
	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/metrics"
	"github.com/MKhiriev/go-library-bff/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. metricsHandler may be nil to
// hide /metrics.
func NewHandlers(services *service.Services, notifier http.Notifier, recorder metrics.Recorder, metricsHandler nethttp.Handler, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil || (services.AuthorService == nil && services.BookService == nil) {
		return nil, errNoResourceServices
	}

	return &Handlers{
		HTTP: http.NewHandler(services, notifier, recorder, metricsHandler, cfg, logger),
	}, nil
}
