package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-bff/internal/service"
)

var errorStatusMap = map[service.Kind]int{
	service.KindNotFound:         http.StatusNotFound,
	service.KindValidationFailed: http.StatusBadRequest,
	service.KindInternal:         http.StatusInternalServerError,
}

// statusFromError maps the kind of err to a status code. In legacy mode every
// failure is a 500.
func (h *Handler) statusFromError(err error) int {
	if h.cfg.LegacyErrors {
		return http.StatusInternalServerError
	}

	if status, ok := errorStatusMap[service.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
