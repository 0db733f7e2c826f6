package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-bff/models"
)

func TestMemoryAuthorRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAuthorRepository()

	authors, err := repo.ListAuthors(ctx)
	require.NoError(t, err)
	assert.NotNil(t, authors)
	assert.Empty(t, authors)

	first := models.Author{ID: "a-2", FirstName: "Ursula", LastName: "Le Guin"}
	second := models.Author{ID: "a-1", FirstName: "Stanislaw", LastName: "Lem"}
	_, err = repo.CreateAuthor(ctx, first)
	require.NoError(t, err)
	_, err = repo.CreateAuthor(ctx, second)
	require.NoError(t, err)

	authors, err = repo.ListAuthors(ctx)
	require.NoError(t, err)
	// insertion order, not id order
	assert.Equal(t, []models.Author{first, second}, authors)

	found, err := repo.FindAuthorByID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, second, found)

	_, err = repo.FindAuthorByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrAuthorNotFound)

	_, err = repo.CreateAuthor(ctx, models.Author{ID: "a-1"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestMemoryAuthorRepository_ListIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAuthorRepository()
	_, err := repo.CreateAuthor(ctx, models.Author{ID: "a-1", FirstName: "Ursula"})
	require.NoError(t, err)

	authors, _ := repo.ListAuthors(ctx)
	authors[0].FirstName = "changed"

	found, _ := repo.FindAuthorByID(ctx, "a-1")
	assert.Equal(t, "Ursula", found.FirstName)
}

func TestMemoryBookRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookRepository()

	book := models.Book{ID: "b-1", AuthorID: "a-1", Pages: 100, Title: "Solaris"}
	created, err := repo.CreateBook(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, book, created)

	books, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Book{book}, books)

	_, err = repo.FindBookByID(ctx, "b-2")
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = repo.CreateBook(ctx, book)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestMemoryRepositories_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryAuthorRepository().ListAuthors(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = NewMemoryBookRepository().CreateBook(ctx, models.Book{ID: "b"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryBookRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.CreateBook(ctx, models.Book{ID: fmt.Sprintf("b-%d", i), Pages: 1})
			assert.NoError(t, err)
			_, _ = repo.ListBooks(ctx)
		}(i)
	}
	wg.Wait()

	books, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 50)
}
