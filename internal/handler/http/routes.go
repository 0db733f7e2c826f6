package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	router.Use(withGunzipBody)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	if h.services.AuthorService != nil {
		router.Route("/api/v1/authors", func(r chi.Router) {
			r.Get("/", h.instrumented(endpointListAuthors, h.listAuthors))
			r.Get("/{id}", h.instrumented(endpointGetAuthor, h.getAuthor))
			r.Post("/", h.instrumented(endpointCreateAuthor, h.createAuthor))
		})
	}

	if h.services.BookService != nil {
		router.Route("/api/v1/books", func(r chi.Router) {
			r.Get("/", h.instrumented(endpointListBooks, h.listBooks))
			r.Get("/{id}", h.instrumented(endpointGetBook, h.getBook))
			r.Post("/", h.instrumented(endpointCreateBook, h.createBook))
		})
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
