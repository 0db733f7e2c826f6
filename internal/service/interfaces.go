package service

import (
	"context"

	"github.com/MKhiriev/go-library-bff/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthorService lists, finds and creates authors.
type AuthorService interface {
	ListAuthors(ctx context.Context) ([]models.Author, error)
	FindAuthorByID(ctx context.Context, id string) (models.Author, error)
	CreateAuthor(ctx context.Context, cmd models.CreateAuthorCommand) (models.Author, error)
}

// BookService lists, finds and creates books.
type BookService interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	FindBookByID(ctx context.Context, id string) (models.Book, error)
	CreateBook(ctx context.Context, cmd models.CreateBookCommand) (models.Book, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	Generate() string
}
