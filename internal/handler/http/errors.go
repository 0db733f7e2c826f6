// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned by create endpoints when the request body
	// cannot be decoded into a create command.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidGzip is reported when a body sent with
	// "Content-Encoding: gzip" is not valid gzip data.
	ErrInvalidGzip = errors.New("invalid gzip data")
)
