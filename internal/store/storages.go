package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/logger"
)

// Storages groups the repositories of the selected backend.
type Storages struct {
	AuthorRepository AuthorRepository
	BookRepository   BookRepository

	db *DB
}

// NewStorages initialises the storage layer for cfg.Driver:
//   - "memory": empty in-process repositories;
//   - "postgres" / "sqlite": opens the database, runs pending migrations and
//     wires the SQL repositories.
//
// Any other driver yields [ErrUnsupportedDriver].
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		return &Storages{
			AuthorRepository: NewMemoryAuthorRepository(),
			BookRepository:   NewMemoryBookRepository(),
		}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AuthorRepository: NewAuthorRepository(db, logger),
		BookRepository:   NewBookRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
