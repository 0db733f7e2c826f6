package service

import (
	"errors"

	"github.com/MKhiriev/go-library-bff/internal/adapter"
	"github.com/MKhiriev/go-library-bff/internal/store"
)

// classify tags a backend error. Not-found and rejected-request sentinels of
// the store and the downstream adapter keep their meaning; anything else is
// internal.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrAuthorNotFound),
		errors.Is(err, store.ErrBookNotFound),
		errors.Is(err, adapter.ErrNotFound):
		return NewError(KindNotFound, op, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return NewError(KindValidationFailed, op, err)
	default:
		return NewError(KindInternal, op, err)
	}
}
