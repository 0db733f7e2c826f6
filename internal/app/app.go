package app

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/MKhiriev/go-library-bff/internal/adapter"
	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/handler"
	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/metrics"
	"github.com/MKhiriev/go-library-bff/internal/notifier"
	"github.com/MKhiriev/go-library-bff/internal/server"
	"github.com/MKhiriev/go-library-bff/internal/service"
	"github.com/MKhiriev/go-library-bff/internal/store"
	"github.com/MKhiriev/go-library-bff/models"
)

// Descriptor names a service and its metric tags.
type Descriptor struct {
	Resource models.Resource
	// Role is the logger role.
	Role string
	// Service is the default APP_NAME, which tags the counters as their
	// service.
	Service string
	// Controller tags the request and error counters.
	Controller string
}

var descriptors = map[models.Resource]Descriptor{
	models.ResourceAuthors: {Resource: models.ResourceAuthors, Role: "authors-bff", Service: "AuthorService", Controller: "AuthorController"},
	models.ResourceBooks:   {Resource: models.ResourceBooks, Role: "books-bff", Service: "BookService", Controller: "BookController"},
}

// DescriptorFor returns the descriptor of resource.
func DescriptorFor(resource models.Resource) (Descriptor, error) {
	d, ok := descriptors[resource]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownResource, resource)
	}
	return d, nil
}

// Run starts the service for resource and blocks until it stops.
func Run(resource models.Resource, buildInfo models.AppBuildInfo) error {
	d, err := DescriptorFor(resource)
	if err != nil {
		return err
	}

	log := logger.NewLogger(d.Role)
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting")

	cfg, err := config.GetStructuredConfig(d.Service)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == config.DefaultAppVersion && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	provider, err := metrics.NewProvider()
	if err != nil {
		return err
	}
	defer closeWith(log, "metrics provider", func() error { return provider.Shutdown(context.Background()) })

	recorder, err := metrics.NewRecorder(provider.Meter(cfg.App.Name), d.Controller, cfg.App.Name)
	if err != nil {
		return err
	}

	backend, err := newBackend(ctx, resource, cfg, log)
	if err != nil {
		return err
	}
	defer closeWith(log, "storage", backend.close)

	services, err := service.NewServices(backend.authors, backend.books, cfg.App, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	n := notifier.NewNotifier(ctx, cfg.Notifier, log)
	defer closeWith(log, "notifier", n.Close)

	handlers, err := handler.NewHandlers(services, n, recorder, metricsHandler(cfg.Metrics, provider), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func closeWith(log *logger.Logger, what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Err(err).Str("resource", what).Msg("error closing")
	}
}

// backend holds the repository of the served resource. The other one stays
// nil.
type backend struct {
	authors store.AuthorRepository
	books   store.BookRepository
	close   func() error
}

func newBackend(ctx context.Context, resource models.Resource, cfg *config.StructuredConfig, log *logger.Logger) (*backend, error) {
	if cfg.Storage.Driver == config.DriverHTTP {
		return newAdapterBackend(resource, cfg.Adapter, log)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	b := &backend{close: storages.Close}
	switch resource {
	case models.ResourceAuthors:
		b.authors = storages.AuthorRepository
	case models.ResourceBooks:
		b.books = storages.BookRepository
	}

	return b, nil
}

func newAdapterBackend(resource models.Resource, cfg config.Adapter, log *logger.Logger) (*backend, error) {
	b := &backend{close: func() error { return nil }}

	var err error
	switch resource {
	case models.ResourceAuthors:
		b.authors, err = adapter.NewAuthorsAdapter(cfg, log)
	case models.ResourceBooks:
		b.books, err = adapter.NewBooksAdapter(cfg, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating %s adapter: %w", resource, err)
	}

	return b, nil
}

func metricsHandler(cfg config.Metrics, provider *metrics.Provider) nethttp.Handler {
	if cfg.Disabled {
		return nil
	}
	return provider.Handler()
}
