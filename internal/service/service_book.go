package service

import (
	"context"

	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/store"
	"github.com/MKhiriev/go-library-bff/internal/validators"
	"github.com/MKhiriev/go-library-bff/models"
)

type bookService struct {
	bookRepository store.BookRepository
	validator      validators.Validator
	ids            IDGenerator

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validator,
		ids:            ids,
		logger:         logger,
	}
}

func (s *bookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	books, err := s.bookRepository.ListBooks(ctx)
	if err != nil {
		return nil, classify("bookService.ListBooks", err)
	}

	return books, nil
}

func (s *bookService) FindBookByID(ctx context.Context, id string) (models.Book, error) {
	const op = "bookService.FindBookByID"

	book, err := s.bookRepository.FindBookByID(ctx, id)
	if err != nil {
		return models.Book{}, classify(op, err)
	}

	return book, nil
}

// CreateBook does not check that the referenced author exists.
func (s *bookService) CreateBook(ctx context.Context, cmd models.CreateBookCommand) (models.Book, error) {
	const op = "bookService.CreateBook"

	if err := s.validator.Validate(ctx, cmd); err != nil {
		return models.Book{}, NewError(KindValidationFailed, op, err)
	}

	created, err := s.bookRepository.CreateBook(ctx, models.NewBook(s.ids.Generate(), cmd))
	if err != nil {
		return models.Book{}, classify(op, err)
	}
	if created.ID == "" {
		logger.FromContext(ctx).Error().Str("func", op).Msg("backend returned book without id")
		return models.Book{}, NewError(KindInternal, op, ErrMissingID)
	}

	return created, nil
}
