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

// bookRepository is the SQL-backed implementation of [BookRepository] over
// the "books" table.
type bookRepository struct {
	*DB
	logger *logger.Logger
}

func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *bookRepository) ListBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBooksQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.ListBooks").Msg("failed to build query")
		return nil, err
	}

	rows, queryErr := r.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "bookRepository.ListBooks").
			Stringer("classification", r.classify(queryErr)).
			Msg("failed to execute query for listing books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var book models.Book
		if scanErr := rows.Scan(&book.ID, &book.AuthorID, &book.Pages, &book.Title); scanErr != nil {
			log.Err(scanErr).Str("func", "bookRepository.ListBooks").Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "bookRepository.ListBooks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

func (r *bookRepository) FindBookByID(ctx context.Context, id string) (models.Book, error) {
	if !utils.IsUUID(id) {
		return models.Book{}, fmt.Errorf("%w: %s", ErrBookNotFound, id)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildFindBookByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.FindBookByID").Msg("failed to build query")
		return models.Book{}, err
	}

	var book models.Book
	scanErr := r.QueryRowContext(ctx, query, args...).
		Scan(&book.ID, &book.AuthorID, &book.Pages, &book.Title)
	switch {
	case errors.Is(scanErr, sql.ErrNoRows):
		return models.Book{}, ErrBookNotFound
	case scanErr != nil:
		log.Err(scanErr).
			Str("func", "bookRepository.FindBookByID").
			Str("book_id", id).
			Stringer("classification", r.classify(scanErr)).
			Msg("failed to find book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return book, nil
}

func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateBookQuery(r.builder, book)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.CreateBook").Msg("failed to build query")
		return models.Book{}, err
	}

	if _, execErr := r.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "bookRepository.CreateBook").
			Str("book_id", book.ID).
			Stringer("classification", r.classify(execErr)).
			Msg("failed to insert book")
		if isUniqueViolation(execErr) {
			return models.Book{}, ErrAlreadyExists
		}
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return book, nil
}
