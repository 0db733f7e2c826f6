package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/utils"
	"github.com/MKhiriev/go-library-bff/models"
)

// authorRepository is the SQL-backed implementation of [AuthorRepository]
// over the "authors" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// database failures are logged with the request trace id.
type authorRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuthorRepository constructs an [AuthorRepository] backed by db.
func NewAuthorRepository(db *DB, logger *logger.Logger) AuthorRepository {
	logger.Debug().Msg("creating author repository")
	return &authorRepository{
		DB:     db,
		logger: logger,
	}
}

// ListAuthors returns every author ordered by creation time.
func (r *authorRepository) ListAuthors(ctx context.Context) ([]models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuthorsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "authorRepository.ListAuthors").Msg("failed to build query")
		return nil, err
	}

	rows, queryErr := r.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "authorRepository.ListAuthors").
			Stringer("classification", r.classify(queryErr)).
			Msg("failed to execute query for listing authors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	authors := make([]models.Author, 0)
	for rows.Next() {
		var author models.Author
		if scanErr := rows.Scan(&author.ID, &author.FirstName, &author.LastName, &author.Address, &author.Language); scanErr != nil {
			log.Err(scanErr).Str("func", "authorRepository.ListAuthors").Msg("failed to scan author row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		authors = append(authors, author)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "authorRepository.ListAuthors").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return authors, nil
}

// FindAuthorByID returns the author with the given id or [ErrAuthorNotFound].
// Stored ids are UUIDs, so any other id is not looked up.
func (r *authorRepository) FindAuthorByID(ctx context.Context, id string) (models.Author, error) {
	if !utils.IsUUID(id) {
		return models.Author{}, fmt.Errorf("%w: %s", ErrAuthorNotFound, id)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildFindAuthorByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "authorRepository.FindAuthorByID").Msg("failed to build query")
		return models.Author{}, err
	}

	var author models.Author
	scanErr := r.QueryRowContext(ctx, query, args...).
		Scan(&author.ID, &author.FirstName, &author.LastName, &author.Address, &author.Language)
	switch {
	case errors.Is(scanErr, sql.ErrNoRows):
		return models.Author{}, ErrAuthorNotFound
	case scanErr != nil:
		log.Err(scanErr).
			Str("func", "authorRepository.FindAuthorByID").
			Str("author_id", id).
			Stringer("classification", r.classify(scanErr)).
			Msg("failed to find author")
		return models.Author{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return author, nil
}

// CreateAuthor inserts author. A duplicate id yields [ErrAlreadyExists].
func (r *authorRepository) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAuthorQuery(r.builder, author)
	if err != nil {
		log.Err(err).Str("func", "authorRepository.CreateAuthor").Msg("failed to build query")
		return models.Author{}, err
	}

	if _, execErr := r.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "authorRepository.CreateAuthor").
			Str("author_id", author.ID).
			Stringer("classification", r.classify(execErr)).
			Msg("failed to insert author")
		if isUniqueViolation(execErr) {
			return models.Author{}, ErrAlreadyExists
		}
		return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return author, nil
}
