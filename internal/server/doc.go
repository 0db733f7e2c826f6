// Package server runs the HTTP server of a BFF service.
//
// It owns startup, signal handling (SIGTERM, SIGINT, SIGQUIT) and graceful
// shutdown with a bounded drain period.
package server
