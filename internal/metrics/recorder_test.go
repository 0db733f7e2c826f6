package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestRecorder(t *testing.T) (Recorder, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	recorder, err := NewRecorder(provider.Meter("test"), "AuthorsController", "authors-bff")
	require.NoError(t, err)

	return recorder, reader
}

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Sum[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok, "metric %s is not an int64 sum", name)
				return sum
			}
		}
	}

	t.Fatalf("metric %s not found", name)
	return metricdata.Sum[int64]{}
}

func valueFor(sum metricdata.Sum[int64], endpoint string) int64 {
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(EndpointKey); ok && v.AsString() == endpoint {
			return dp.Value
		}
	}
	return 0
}

func TestRecorder_IncRequest(t *testing.T) {
	recorder, reader := newTestRecorder(t)
	ctx := context.Background()

	recorder.IncRequest(ctx, "list")
	recorder.IncRequest(ctx, "list")
	recorder.IncRequest(ctx, "create")

	sum := collectSum(t, reader, RequestCountName)
	assert.True(t, sum.IsMonotonic)
	assert.Equal(t, int64(2), valueFor(sum, "list"))
	assert.Equal(t, int64(1), valueFor(sum, "create"))

	want := attribute.NewSet(
		attribute.String(ControllerKey, "AuthorsController"),
		attribute.String(ServiceKey, "authors-bff"),
		attribute.String(EndpointKey, "create"),
	)
	found := false
	for _, dp := range sum.DataPoints {
		if dp.Attributes.Equals(&want) {
			found = true
		}
	}
	assert.True(t, found, "create data point should carry controller and service")
}

func TestRecorder_IncError(t *testing.T) {
	recorder, reader := newTestRecorder(t)

	recorder.IncRequest(context.Background(), "get")
	recorder.IncError(context.Background(), "get")

	assert.Equal(t, int64(1), valueFor(collectSum(t, reader, ErrorCountName), "get"))
	assert.Equal(t, int64(1), valueFor(collectSum(t, reader, RequestCountName), "get"))
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().IncRequest(context.Background(), "list")
		Nop().IncError(context.Background(), "list")
	})
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	recorder, err := NewRecorder(provider.Meter("test"), "BooksController", "books-bff")
	require.NoError(t, err)
	recorder.IncRequest(context.Background(), "list")

	rr := httptest.NewRecorder()
	provider.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "request_count")
	assert.Contains(t, string(body), `endpoint="list"`)
	assert.Contains(t, string(body), `service="books-bff"`)
}
