package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-library-bff/internal/service"
	"github.com/MKhiriev/go-library-bff/models"
)

const (
	endpointListBooks  = "listBooks"
	endpointGetBook    = "getBook"
	endpointCreateBook = "createBook"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) error {
	books, err := h.services.BookService.ListBooks(r.Context())
	if err != nil {
		return err
	}

	respond(w, r, models.NewBookResponses(books))
	return nil
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) error {
	book, err := h.services.BookService.FindBookByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	respond(w, r, models.NewBookResponse(book))
	return nil
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var cmd models.CreateBookCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		return service.NewError(service.KindValidationFailed, "Handler.createBook", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
	}

	book, err := h.services.BookService.CreateBook(ctx, cmd)
	if err != nil {
		return err
	}

	response := models.NewBookResponse(book)
	h.notifier.Notify(ctx, response)

	respond(w, r, response)
	return nil
}
