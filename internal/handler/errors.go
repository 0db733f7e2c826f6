// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is provided in the server configuration. This is treated as a fatal
	// misconfiguration and causes the application to fail at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoResourceServices is returned when neither the author nor the book
	// service is available, leaving nothing to route.
	errNoResourceServices = errors.New("no resource services to serve")
)
