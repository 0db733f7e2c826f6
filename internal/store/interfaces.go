// Package store holds the Resource Service backends owned by the BFF:
// an in-memory store and SQL repositories over PostgreSQL or SQLite.
package store

import (
	"context"

	"github.com/MKhiriev/go-library-bff/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AuthorRepository lists, finds and creates authors.
type AuthorRepository interface {
	// ListAuthors returns every author in insertion order. An empty store
	// yields an empty, non-nil slice.
	ListAuthors(ctx context.Context) ([]models.Author, error)
	// FindAuthorByID returns ErrAuthorNotFound when id is unknown.
	FindAuthorByID(ctx context.Context, id string) (models.Author, error)
	// CreateAuthor persists author as given and returns the stored record.
	CreateAuthor(ctx context.Context, author models.Author) (models.Author, error)
}

// BookRepository lists, finds and creates books.
type BookRepository interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	// FindBookByID returns ErrBookNotFound when id is unknown.
	FindBookByID(ctx context.Context, id string) (models.Book, error)
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
}
