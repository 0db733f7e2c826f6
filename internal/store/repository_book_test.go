package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/migrations"
	"github.com/MKhiriev/go-library-bff/models"
)

var bookRowColumns = []string{"id", "author_id", "pages", "title"}

const sampleBookID = "0190a5b2-0000-7000-8000-0000000000b1"

func TestBookRepository_ListBooks(t *testing.T) {
	db, mock := newTestDB(t, migrations.DialectSQLite)
	repo := NewBookRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, author_id, pages, title FROM books ORDER BY created_at, id")).
		WillReturnRows(sqlmock.NewRows(bookRowColumns).
			AddRow("b-1", "a-1", 248, "The Dispossessed").
			AddRow("b-2", "a-1", 183, "The Left Hand of Darkness"))

	books, err := repo.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, models.Book{ID: "b-1", AuthorID: "a-1", Pages: 248, Title: "The Dispossessed"}, books[0])
	assert.Equal(t, "b-2", books[1].ID)
}

func TestBookRepository_ListBooks_QueryError(t *testing.T) {
	db, mock := newTestDB(t, migrations.DialectPostgres)
	repo := NewBookRepository(db, logger.Nop())
	mock.ExpectQuery("FROM books").WillReturnError(pgError(pgerrcode.UndefinedTable))

	books, err := repo.ListBooks(context.Background())
	assert.Nil(t, books)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestBookRepository_FindBookByID(t *testing.T) {
	db, mock := newTestDB(t, migrations.DialectPostgres)
	repo := NewBookRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE id = $1")).
		WithArgs(sampleBookID).
		WillReturnRows(sqlmock.NewRows(bookRowColumns).AddRow(sampleBookID, "a-1", 248, "The Dispossessed"))

	book, err := repo.FindBookByID(context.Background(), sampleBookID)
	require.NoError(t, err)
	assert.Equal(t, 248, book.Pages)
}

func TestBookRepository_FindBookByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t, migrations.DialectPostgres)
	repo := NewBookRepository(db, logger.Nop())
	mock.ExpectQuery("FROM books WHERE").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindBookByID(context.Background(), sampleBookID)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookRepository_FindBookByID_NotUUID(t *testing.T) {
	db, mock := newTestDB(t, migrations.DialectSQLite)
	repo := NewBookRepository(db, logger.Nop())

	_, err := repo.FindBookByID(context.Background(), "1")
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_CreateBook(t *testing.T) {
	db, mock := newTestDB(t, migrations.DialectPostgres)
	repo := NewBookRepository(db, logger.Nop())
	book := models.Book{ID: "b-1", AuthorID: "a-1", Pages: 248, Title: "The Dispossessed"}

	mock.ExpectExec("INSERT INTO books").
		WithArgs(book.ID, book.AuthorID, book.Pages, book.Title).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateBook(context.Background(), book)
	require.NoError(t, err)
	assert.Equal(t, book, created)
}

func TestBookRepository_CreateBook_Duplicate(t *testing.T) {
	db, mock := newTestDB(t, migrations.DialectPostgres)
	repo := NewBookRepository(db, logger.Nop())
	mock.ExpectExec("INSERT INTO books").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateBook(context.Background(), models.Book{ID: "b-1"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}
