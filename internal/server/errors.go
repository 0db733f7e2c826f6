// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNothingToServe is returned by NewServer when there is no HTTP
	// handler or no listen address.
	ErrNothingToServe = errors.New("nothing to serve")

	// ErrListening wraps a listener failure other than a requested shutdown.
	ErrListening = errors.New("http server stopped listening")

	// ErrShuttingDown wraps a graceful shutdown that did not finish in time.
	ErrShuttingDown = errors.New("http server did not shut down cleanly")
)
