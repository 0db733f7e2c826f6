package http

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/metrics"
	"github.com/MKhiriev/go-library-bff/internal/service"
	"github.com/MKhiriev/go-library-bff/internal/utils"
)

// Notifier receives every created resource after it has been stored.
type Notifier interface {
	Notify(ctx context.Context, v any)
}

type Handler struct {
	services *service.Services
	notifier Notifier
	recorder metrics.Recorder

	// metrics serves GET /metrics when non-nil.
	metrics http.Handler
	cfg     config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, notifier Notifier, recorder metrics.Recorder, metricsHandler http.Handler, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		notifier: notifier,
		recorder: recorder,
		metrics:  metricsHandler,
		cfg:      cfg,
		logger:   logger,
	}
}

// handlerFunc is a resource endpoint. A returned error has not been written
// to the client yet.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// instrumented counts every call of fn under endpoint, and counts and
// answers its failures. A panic in fn is a failure too.
func (h *Handler) instrumented(endpoint string, fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		h.recorder.IncRequest(ctx, endpoint)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.recorder.IncError(ctx, endpoint)
			logger.FromRequest(r).Error().
				Str("endpoint", endpoint).
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("request panicked")
			h.writeError(w, r, endpoint, fmt.Sprint(rec), http.StatusInternalServerError)
		}()

		err := fn(w, r)
		if err == nil {
			return
		}

		h.recorder.IncError(ctx, endpoint)

		status := h.statusFromError(err)
		logger.FromRequest(r).Err(err).
			Str("endpoint", endpoint).
			Str("kind", service.KindOf(err).String()).
			Str("op", service.OpOf(err)).
			Int("status", status).
			Msg("request failed")

		h.writeError(w, r, endpoint, err.Error(), status)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, endpoint, message string, status int) {
	if _, err := utils.WriteError(w, message, status); err != nil {
		logger.FromRequest(r).Err(err).Str("endpoint", endpoint).Msg("error writing error response")
	}
}

// respond writes data as JSON with 200.
func respond(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
