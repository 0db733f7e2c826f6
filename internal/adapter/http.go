// Package adapter talks to a downstream Resource Service over its REST
// contract (GET/POST /api/v1/{resource}, GET /api/v1/{resource}/{id}) and
// exposes it through the store repository interfaces.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/store"
	"github.com/MKhiriev/go-library-bff/internal/utils"
	"github.com/MKhiriev/go-library-bff/models"
)

var (
	_ store.AuthorRepository = (*authorsAdapter)(nil)
	_ store.BookRepository   = (*booksAdapter)(nil)
)

// resourceClient issues the three calls of the REST contract for one
// resource collection.
type resourceClient struct {
	client   *utils.HTTPClient
	resource models.Resource
	logger   *logger.Logger
}

func newResourceClient(cfg config.Adapter, resource models.Resource, logger *logger.Logger) (*resourceClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &resourceClient{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		resource: resource,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *resourceClient) collectionPath() string {
	return "/api/v1/" + c.resource.String()
}

// list decodes GET /api/v1/{resource} into out.
func (c *resourceClient) list(ctx context.Context, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(out).
		ForceContentType("application/json").
		Get(c.collectionPath())
	if err != nil {
		return fmt.Errorf("list %s request: %w", c.resource, err)
	}

	return mapHTTPError(resp)
}

// get decodes GET /api/v1/{resource}/{id} into out.
func (c *resourceClient) get(ctx context.Context, id string, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(out).
		ForceContentType("application/json").
		Get(c.collectionPath() + "/{id}")
	if err != nil {
		return fmt.Errorf("get %s request: %w", c.resource, err)
	}

	return mapHTTPError(resp)
}

// create posts body to POST /api/v1/{resource} and decodes the answer into out.
func (c *resourceClient) create(ctx context.Context, body, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(out).
		ForceContentType("application/json").
		Post(c.collectionPath())
	if err != nil {
		return fmt.Errorf("create %s request: %w", c.resource, err)
	}

	return mapHTTPError(resp)
}

// translate maps downstream sentinels onto store sentinels so the service
// layer classifies adapter and store failures the same way.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return fmt.Errorf("%w: %w", notFound, err)
	case errors.Is(err, ErrConflict):
		return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
	default:
		return err
	}
}

type authorsAdapter struct {
	*resourceClient
}

// NewAuthorsAdapter returns an [store.AuthorRepository] backed by the
// downstream authors service at cfg.HTTPAddress.
func NewAuthorsAdapter(cfg config.Adapter, logger *logger.Logger) (store.AuthorRepository, error) {
	client, err := newResourceClient(cfg, models.ResourceAuthors, logger)
	if err != nil {
		return nil, err
	}
	return &authorsAdapter{client}, nil
}

func (a *authorsAdapter) ListAuthors(ctx context.Context) ([]models.Author, error) {
	authors := make([]models.Author, 0)
	if err := a.list(ctx, &authors); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authorsAdapter.ListAuthors").Msg("downstream list failed")
		return nil, translate(err, store.ErrAuthorNotFound)
	}
	if authors == nil {
		authors = make([]models.Author, 0)
	}

	return authors, nil
}

func (a *authorsAdapter) FindAuthorByID(ctx context.Context, id string) (models.Author, error) {
	var author models.Author
	if err := a.get(ctx, id, &author); err != nil {
		return models.Author{}, translate(err, store.ErrAuthorNotFound)
	}

	return author, nil
}

// CreateAuthor sends the author's fields without its id; the downstream
// service assigns the identifier of the stored record.
func (a *authorsAdapter) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	cmd := models.CreateAuthorCommand{
		FirstName: author.FirstName,
		LastName:  author.LastName,
		Address:   author.Address,
		Language:  author.Language,
	}

	var created models.Author
	if err := a.create(ctx, cmd, &created); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authorsAdapter.CreateAuthor").Msg("downstream create failed")
		return models.Author{}, translate(err, store.ErrAuthorNotFound)
	}
	if created.ID == "" {
		return models.Author{}, ErrMissingID
	}

	return created, nil
}

type booksAdapter struct {
	*resourceClient
}

// NewBooksAdapter returns an [store.BookRepository] backed by the downstream
// books service at cfg.HTTPAddress.
func NewBooksAdapter(cfg config.Adapter, logger *logger.Logger) (store.BookRepository, error) {
	client, err := newResourceClient(cfg, models.ResourceBooks, logger)
	if err != nil {
		return nil, err
	}
	return &booksAdapter{client}, nil
}

func (b *booksAdapter) ListBooks(ctx context.Context) ([]models.Book, error) {
	books := make([]models.Book, 0)
	if err := b.list(ctx, &books); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "booksAdapter.ListBooks").Msg("downstream list failed")
		return nil, translate(err, store.ErrBookNotFound)
	}
	if books == nil {
		books = make([]models.Book, 0)
	}

	return books, nil
}

func (b *booksAdapter) FindBookByID(ctx context.Context, id string) (models.Book, error) {
	var book models.Book
	if err := b.get(ctx, id, &book); err != nil {
		return models.Book{}, translate(err, store.ErrBookNotFound)
	}

	return book, nil
}

// CreateBook sends the book's fields without its id.
func (b *booksAdapter) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	cmd := models.CreateBookCommand{
		AuthorID: book.AuthorID,
		Pages:    book.Pages,
		Title:    book.Title,
	}

	var created models.Book
	if err := b.create(ctx, cmd, &created); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "booksAdapter.CreateBook").Msg("downstream create failed")
		return models.Book{}, translate(err, store.ErrBookNotFound)
	}
	if created.ID == "" {
		return models.Book{}, ErrMissingID
	}

	return created, nil
}
