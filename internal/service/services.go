package service

import (
	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/store"
	"github.com/MKhiriev/go-library-bff/internal/utils"
	"github.com/MKhiriev/go-library-bff/internal/validators"
)

type Services struct {
	AuthorService  AuthorService
	BookService    BookService
	AppInfoService AppInfoService
}

// NewServices wires the services over the given repositories. A nil
// repository leaves its service nil.
func NewServices(authors store.AuthorRepository, books store.BookRepository, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewCommandValidator()
	ids := utils.NewUUIDGenerator()

	services := &Services{AppInfoService: appInfoService}
	if authors != nil {
		services.AuthorService = NewAuthorService(authors, validator, ids, logger)
	}
	if books != nil {
		services.BookService = NewBookService(books, validator, ids, logger)
	}

	return services, nil
}
