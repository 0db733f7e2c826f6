package models

// Author is the domain representation of a book author as owned by the
// Resource Service. Authors are immutable once created.
type Author struct {
	// ID is the server-assigned unique identifier (UUID string).
	ID string `json:"id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Language  string `json:"language"`
}

// CreateAuthorCommand carries the client-supplied fields required to create
// an [Author]. The identifier is never accepted from the client.
type CreateAuthorCommand struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address"`
	Language  string `json:"language"`
}

// AuthorResponse is the wire-facing projection of an [Author]. It is kept
// separate from the domain type so the public contract can evolve on its own.
type AuthorResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Language  string `json:"language"`
}

// NewAuthor builds an [Author] from a create command and an identifier.
func NewAuthor(id string, cmd CreateAuthorCommand) Author {
	return Author{
		ID:        id,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Address:   cmd.Address,
		Language:  cmd.Language,
	}
}

// NewAuthorResponse copies every field of author into an [AuthorResponse].
func NewAuthorResponse(author Author) AuthorResponse {
	return AuthorResponse{
		ID:        author.ID,
		FirstName: author.FirstName,
		LastName:  author.LastName,
		Address:   author.Address,
		Language:  author.Language,
	}
}

// NewAuthorResponses maps authors preserving their order. The result is never
// nil, so an empty input encodes as an empty JSON array.
func NewAuthorResponses(authors []Author) []AuthorResponse {
	responses := make([]AuthorResponse, 0, len(authors))
	for _, author := range authors {
		responses = append(responses, NewAuthorResponse(author))
	}

	return responses
}
