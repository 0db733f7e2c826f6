// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/utils"
)

// candidateMethods are checked against the routing tree for the Allow header.
var candidateMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with a plain-text error body and an Allow header listing the methods
// registered for the requested path.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", strings.Join(allowedMethods(router, r.URL.Path), ", "))
		if _, err := utils.WriteError(w, "method "+r.Method+" is not allowed", http.StatusMethodNotAllowed); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing method not allowed response")
		}
	}
}

// allowedMethods lists, in candidateMethods order, the methods of every
// route whose pattern matches path.
func allowedMethods(router chi.Routes, path string) []string {
	registered := make(map[string]bool)
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if patternMatches(route, path) {
			registered[method] = true
		}
		return nil
	})

	allowed := make([]string, 0, len(registered))
	for _, method := range candidateMethods {
		if registered[method] {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// patternMatches reports whether a chi route pattern matches path. A
// trailing slash is not significant, "{param}" matches one non-empty
// segment and "*" matches the rest of the path.
func patternMatches(pattern, path string) bool {
	patternSegments := splitPath(pattern)
	pathSegments := splitPath(path)

	for i, segment := range patternSegments {
		if segment == "*" {
			return true
		}
		if i >= len(pathSegments) {
			return false
		}
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			if pathSegments[i] == "" {
				return false
			}
			continue
		}
		if segment != pathSegments[i] {
			return false
		}
	}

	return len(patternSegments) == len(pathSegments)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// notFound answers unknown paths with a plain-text error body.
func notFound(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteError(w, "no route for "+r.URL.Path, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing not found response")
	}
}
