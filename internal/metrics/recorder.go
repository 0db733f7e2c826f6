// Package metrics counts handled requests and failed requests per endpoint.
//
// Counters are OpenTelemetry instruments. A [Provider] owns the meter
// provider and exposes the collected values in the Prometheus text format.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names and attribute keys.
const (
	RequestCountName = "request_count"
	ErrorCountName   = "error_count"

	ControllerKey = "controller"
	ServiceKey    = "service"
	EndpointKey   = "endpoint"
)

// Recorder is the metrics sink used by the request handlers.
type Recorder interface {
	// IncRequest counts one handled request of endpoint.
	IncRequest(ctx context.Context, endpoint string)
	// IncError counts one failed request of endpoint.
	IncError(ctx context.Context, endpoint string)
}

type otelRecorder struct {
	requests metric.Int64Counter
	errors   metric.Int64Counter

	controller attribute.KeyValue
	service    attribute.KeyValue
}

// NewRecorder creates the request and error counters on meter. Every
// measurement is tagged with controller and service.
func NewRecorder(meter metric.Meter, controller, service string) (Recorder, error) {
	requests, err := meter.Int64Counter(
		RequestCountName,
		metric.WithDescription("Number of handled requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCreatingInstrument, RequestCountName, err)
	}

	errorCount, err := meter.Int64Counter(
		ErrorCountName,
		metric.WithDescription("Number of failed requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCreatingInstrument, ErrorCountName, err)
	}

	return &otelRecorder{
		requests:   requests,
		errors:     errorCount,
		controller: attribute.String(ControllerKey, controller),
		service:    attribute.String(ServiceKey, service),
	}, nil
}

func (r *otelRecorder) IncRequest(ctx context.Context, endpoint string) {
	r.requests.Add(ctx, 1, r.attributes(endpoint))
}

func (r *otelRecorder) IncError(ctx context.Context, endpoint string) {
	r.errors.Add(ctx, 1, r.attributes(endpoint))
}

func (r *otelRecorder) attributes(endpoint string) metric.MeasurementOption {
	return metric.WithAttributes(r.controller, r.service, attribute.String(EndpointKey, endpoint))
}

type nopRecorder struct{}

// Nop returns a Recorder that drops every measurement.
func Nop() Recorder {
	return nopRecorder{}
}

func (nopRecorder) IncRequest(context.Context, string) {}

func (nopRecorder) IncError(context.Context, string) {}
