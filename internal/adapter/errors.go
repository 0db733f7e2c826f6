package adapter

import "errors"

// Errors returned for non-2xx answers of the downstream Resource Service.
var (
	ErrBadRequest          = errors.New("downstream rejected the request")
	ErrNotFound            = errors.New("downstream resource not found")
	ErrConflict            = errors.New("downstream resource conflict")
	ErrInternalServerError = errors.New("downstream internal server error")
	ErrBadGateway          = errors.New("downstream bad gateway")
	ErrServiceUnavailable  = errors.New("downstream service unavailable")

	// ErrMissingID is returned when a create answer carries no identifier.
	ErrMissingID = errors.New("downstream returned a resource without id")
)
