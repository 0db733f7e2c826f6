package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-library-bff/models"
)

const (
	authorsTable = "authors"
	booksTable   = "books"
)

var (
	authorColumns = []string{"id", "first_name", "last_name", "address", "language"}
	bookColumns   = []string{"id", "author_id", "pages", "title"}

	// insertion order; ids are time-ordered, so they break created_at ties
	listOrder = []string{"created_at", "id"}
)

func buildListAuthorsQuery(builder sq.StatementBuilderType) (string, []any, error) {
	query, args, err := builder.
		Select(authorColumns...).
		From(authorsTable).
		OrderBy(listOrder...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindAuthorByIDQuery(builder sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := builder.
		Select(authorColumns...).
		From(authorsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateAuthorQuery(builder sq.StatementBuilderType, author models.Author) (string, []any, error) {
	query, args, err := builder.
		Insert(authorsTable).
		Columns(authorColumns...).
		Values(author.ID, author.FirstName, author.LastName, author.Address, author.Language).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListBooksQuery(builder sq.StatementBuilderType) (string, []any, error) {
	query, args, err := builder.
		Select(bookColumns...).
		From(booksTable).
		OrderBy(listOrder...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindBookByIDQuery(builder sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := builder.
		Select(bookColumns...).
		From(booksTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateBookQuery(builder sq.StatementBuilderType, book models.Book) (string, []any, error) {
	query, args, err := builder.
		Insert(booksTable).
		Columns(bookColumns...).
		Values(book.ID, book.AuthorID, book.Pages, book.Title).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
