// Package http implements the HTTP transport layer of the library BFF
// services.
//
// It exposes route wiring, request handlers for authors and books, and the
// middleware chain. Cross-cutting concerns such as request tracing, access
// logging, request body decompression and response compression are handled
// here before requests are delegated to the service layer. Every resource
// endpoint is counted through a metrics.Recorder and answers failures with a
// plain-text "Error: <message>" body.
package http
