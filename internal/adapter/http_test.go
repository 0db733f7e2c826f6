// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/store"
	"github.com/MKhiriev/go-library-bff/models"
)

func newTestAuthorsAdapter(t *testing.T, serverURL string) store.AuthorRepository {
	t.Helper()
	a, err := NewAuthorsAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func newTestBooksAdapter(t *testing.T, serverURL string) store.BookRepository {
	t.Helper()
	b, err := NewBooksAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return b
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructors ─────────────────────────────────────────────────────────────

func TestNewAuthorsAdapter_InvalidAddress(t *testing.T) {
	_, err := NewAuthorsAdapter(config.Adapter{}, logger.Nop())
	require.Error(t, err)

	_, err = NewBooksAdapter(config.Adapter{HTTPAddress: "http://"}, logger.Nop())
	require.Error(t, err)
}

// ── ListAuthors ──────────────────────────────────────────────────────────────

func TestListAuthors_Success(t *testing.T) {
	want := []models.Author{
		{ID: "a-1", FirstName: "Ursula", LastName: "Le Guin"},
		{ID: "a-2", FirstName: "Stanislaw", LastName: "Lem", Language: "pl"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/authors", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAuthorsAdapter(t, srv.URL).ListAuthors(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListAuthors_EmptyAndNull(t *testing.T) {
	for _, body := range []string{"[]", "null"} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}))

		got, err := newTestAuthorsAdapter(t, srv.URL).ListAuthors(context.Background())
		srv.Close()

		require.NoError(t, err, body)
		assert.NotNil(t, got, body)
		assert.Empty(t, got, body)
	}
}

func TestListAuthors_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Error: boom"))
	}))
	defer srv.Close()

	_, err := newTestAuthorsAdapter(t, srv.URL).ListAuthors(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "Error: boom")
}

func TestListAuthors_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := newTestAuthorsAdapter(t, srv.URL).ListAuthors(context.Background())
	require.Error(t, err)
}

// ── FindAuthorByID ───────────────────────────────────────────────────────────

func TestFindAuthorByID_Success(t *testing.T) {
	want := models.Author{ID: "a-1", FirstName: "Ursula", LastName: "Le Guin"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/authors/a-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAuthorsAdapter(t, srv.URL).FindAuthorByID(context.Background(), "a-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindAuthorByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAuthorsAdapter(t, srv.URL).FindAuthorByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrAuthorNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindAuthorByID_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/authors/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAuthorsAdapter(t, srv.URL).FindAuthorByID(context.Background(), "a/b")
	assert.ErrorIs(t, err, store.ErrAuthorNotFound)
}

// ── CreateAuthor ─────────────────────────────────────────────────────────────

func TestCreateAuthor_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/authors", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ursula", body["firstName"])
		assert.NotContains(t, body, "id")

		writeJSON(t, w, http.StatusOK, models.Author{ID: "downstream-id", FirstName: "Ursula", LastName: "Le Guin"})
	}))
	defer srv.Close()

	created, err := newTestAuthorsAdapter(t, srv.URL).
		CreateAuthor(context.Background(), models.Author{ID: "local-id", FirstName: "Ursula", LastName: "Le Guin"})

	require.NoError(t, err)
	assert.Equal(t, "downstream-id", created.ID)
}

func TestCreateAuthor_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestAuthorsAdapter(t, srv.URL).CreateAuthor(context.Background(), models.Author{})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestCreateAuthor_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, models.Author{FirstName: "Ursula"})
	}))
	defer srv.Close()

	_, err := newTestAuthorsAdapter(t, srv.URL).CreateAuthor(context.Background(), models.Author{})
	assert.ErrorIs(t, err, ErrMissingID)
}

// ── Books ────────────────────────────────────────────────────────────────────

func TestBooksAdapter_RoundTrip(t *testing.T) {
	book := models.Book{ID: "b-1", AuthorID: "a-1", Pages: 248, Title: "The Dispossessed"}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/books", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Book{book})
	})
	mux.HandleFunc("GET /api/v1/books/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != book.ID {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(t, w, http.StatusOK, book)
	})
	mux.HandleFunc("POST /api/v1/books", func(w http.ResponseWriter, r *http.Request) {
		var cmd models.CreateBookCommand
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cmd))
		writeJSON(t, w, http.StatusOK, models.Book{ID: "b-2", AuthorID: cmd.AuthorID, Pages: cmd.Pages, Title: cmd.Title})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	b := newTestBooksAdapter(t, srv.URL)

	books, err := b.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Book{book}, books)

	found, err := b.FindBookByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, book, found)

	_, err = b.FindBookByID(ctx, "b-9")
	assert.ErrorIs(t, err, store.ErrBookNotFound)

	created, err := b.CreateBook(ctx, models.Book{AuthorID: "a-1", Pages: 10, Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, models.Book{ID: "b-2", AuthorID: "a-1", Pages: 10, Title: "New"}, created)
}

func TestBooksAdapter_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	b, err := NewBooksAdapter(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = b.ListBooks(context.Background())
	require.Error(t, err)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestBooksAdapter_StatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestBooksAdapter(t, srv.URL).ListBooks(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unmapped status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		defer srv.Close()

		_, err := newTestBooksAdapter(t, srv.URL).ListBooks(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http 418")
	})
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"surrounding spaces", "  http://authors:8080 ", "http://authors:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
