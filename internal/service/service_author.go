package service

import (
	"context"

	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/store"
	"github.com/MKhiriev/go-library-bff/internal/validators"
	"github.com/MKhiriev/go-library-bff/models"
)

type authorService struct {
	authorRepository store.AuthorRepository
	validator        validators.Validator
	ids              IDGenerator

	logger *logger.Logger
}

func NewAuthorService(authorRepository store.AuthorRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) AuthorService {
	return &authorService{
		authorRepository: authorRepository,
		validator:        validator,
		ids:              ids,
		logger:           logger,
	}
}

func (s *authorService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	authors, err := s.authorRepository.ListAuthors(ctx)
	if err != nil {
		return nil, classify("authorService.ListAuthors", err)
	}

	return authors, nil
}

// FindAuthorByID leaves the id format to the repository: downstream services
// may issue ids of their own.
func (s *authorService) FindAuthorByID(ctx context.Context, id string) (models.Author, error) {
	const op = "authorService.FindAuthorByID"

	author, err := s.authorRepository.FindAuthorByID(ctx, id)
	if err != nil {
		return models.Author{}, classify(op, err)
	}

	return author, nil
}

func (s *authorService) CreateAuthor(ctx context.Context, cmd models.CreateAuthorCommand) (models.Author, error) {
	const op = "authorService.CreateAuthor"

	if err := s.validator.Validate(ctx, cmd); err != nil {
		return models.Author{}, NewError(KindValidationFailed, op, err)
	}

	created, err := s.authorRepository.CreateAuthor(ctx, models.NewAuthor(s.ids.Generate(), cmd))
	if err != nil {
		return models.Author{}, classify(op, err)
	}
	if created.ID == "" {
		logger.FromContext(ctx).Error().Str("func", op).Msg("backend returned author without id")
		return models.Author{}, NewError(KindInternal, op, ErrMissingID)
	}

	return created, nil
}
