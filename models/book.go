package models

// Book is the domain representation of a book. AuthorID references an
// [Author] but its existence is not checked.
type Book struct {
	// ID is the server-assigned unique identifier (UUID string).
	ID string `json:"id"`

	AuthorID string `json:"authorId"`
	Pages    int    `json:"pages"`
	Title    string `json:"title"`
}

// CreateBookCommand carries the client-supplied fields required to create
// a [Book].
type CreateBookCommand struct {
	AuthorID string `json:"authorId" validate:"required"`
	Pages    int    `json:"pages" validate:"required"`
	Title    string `json:"title" validate:"required"`
}

// BookResponse is the wire-facing projection of a [Book].
type BookResponse struct {
	ID       string `json:"id"`
	AuthorID string `json:"authorId"`
	Pages    int    `json:"pages"`
	Title    string `json:"title"`
}

// NewBook builds a [Book] from a create command and an identifier.
func NewBook(id string, cmd CreateBookCommand) Book {
	return Book{
		ID:       id,
		AuthorID: cmd.AuthorID,
		Pages:    cmd.Pages,
		Title:    cmd.Title,
	}
}

// NewBookResponse copies every field of book into a [BookResponse].
func NewBookResponse(book Book) BookResponse {
	return BookResponse{
		ID:       book.ID,
		AuthorID: book.AuthorID,
		Pages:    book.Pages,
		Title:    book.Title,
	}
}

// NewBookResponses maps books preserving their order; never returns nil.
func NewBookResponses(books []Book) []BookResponse {
	responses := make([]BookResponse, 0, len(books))
	for _, book := range books {
		responses = append(responses, NewBookResponse(book))
	}

	return responses
}
