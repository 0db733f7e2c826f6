package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-library-bff/models"
)

// memoryStore keeps records in a map for lookups and a slice for insertion
// order. It is safe for concurrent use.
type memoryStore[T any] struct {
	mu      sync.RWMutex
	byID    map[string]T
	ordered []string
}

func newMemoryStore[T any]() *memoryStore[T] {
	return &memoryStore[T]{byID: make(map[string]T)}
}

func (s *memoryStore[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.ordered))
	for _, id := range s.ordered {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *memoryStore[T]) find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byID[id]
	return v, ok
}

func (s *memoryStore[T]) insert(id string, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; exists {
		return false
	}
	s.byID[id] = v
	s.ordered = append(s.ordered, id)
	return true
}

type memoryAuthorRepository struct {
	store *memoryStore[models.Author]
}

// NewMemoryAuthorRepository returns an empty in-process [AuthorRepository].
func NewMemoryAuthorRepository() AuthorRepository {
	return &memoryAuthorRepository{store: newMemoryStore[models.Author]()}
}

func (r *memoryAuthorRepository) ListAuthors(ctx context.Context) ([]models.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.list(), nil
}

func (r *memoryAuthorRepository) FindAuthorByID(ctx context.Context, id string) (models.Author, error) {
	if err := ctx.Err(); err != nil {
		return models.Author{}, err
	}
	author, ok := r.store.find(id)
	if !ok {
		return models.Author{}, ErrAuthorNotFound
	}
	return author, nil
}

func (r *memoryAuthorRepository) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	if err := ctx.Err(); err != nil {
		return models.Author{}, err
	}
	if !r.store.insert(author.ID, author) {
		return models.Author{}, ErrAlreadyExists
	}
	return author, nil
}

type memoryBookRepository struct {
	store *memoryStore[models.Book]
}

// NewMemoryBookRepository returns an empty in-process [BookRepository].
func NewMemoryBookRepository() BookRepository {
	return &memoryBookRepository{store: newMemoryStore[models.Book]()}
}

func (r *memoryBookRepository) ListBooks(ctx context.Context) ([]models.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.list(), nil
}

func (r *memoryBookRepository) FindBookByID(ctx context.Context, id string) (models.Book, error) {
	if err := ctx.Err(); err != nil {
		return models.Book{}, err
	}
	book, ok := r.store.find(id)
	if !ok {
		return models.Book{}, ErrBookNotFound
	}
	return book, nil
}

func (r *memoryBookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	if err := ctx.Err(); err != nil {
		return models.Book{}, err
	}
	if !r.store.insert(book.ID, book) {
		return models.Book{}, ErrAlreadyExists
	}
	return book, nil
}
