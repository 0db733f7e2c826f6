package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-library-bff/internal/service"
	"github.com/MKhiriev/go-library-bff/models"
)

const (
	endpointListAuthors  = "listAuthors"
	endpointGetAuthor    = "getAuthor"
	endpointCreateAuthor = "createAuthor"
)

func (h *Handler) listAuthors(w http.ResponseWriter, r *http.Request) error {
	authors, err := h.services.AuthorService.ListAuthors(r.Context())
	if err != nil {
		return err
	}

	respond(w, r, models.NewAuthorResponses(authors))
	return nil
}

func (h *Handler) getAuthor(w http.ResponseWriter, r *http.Request) error {
	author, err := h.services.AuthorService.FindAuthorByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	respond(w, r, models.NewAuthorResponse(author))
	return nil
}

func (h *Handler) createAuthor(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var cmd models.CreateAuthorCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		return service.NewError(service.KindValidationFailed, "Handler.createAuthor", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
	}

	author, err := h.services.AuthorService.CreateAuthor(ctx, cmd)
	if err != nil {
		return err
	}

	response := models.NewAuthorResponse(author)
	h.notifier.Notify(ctx, response)

	respond(w, r, response)
	return nil
}
