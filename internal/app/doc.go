// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles and runs one BFF service.
//
// Run wires configuration, logging, metrics, the Resource Service backend,
// services, the notifier, HTTP handlers and the server for a single
// resource, then blocks until the server stops. Both cmd binaries are thin
// wrappers around it.
package app
