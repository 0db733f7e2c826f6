// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// processEnv snapshots the process environment as a NAME -> value map.
func processEnv() map[string]string {
	return env.ToMap(os.Environ())
}

// parseEnv reads a [StructuredConfig] from environ. Variable names come from
// the `env` and `envPrefix` tags, so APP_NAME fills App.Name and
// STORAGE_DB_DATABASE_URI fills Storage.DB.DSN. Variables that are absent
// leave their field zero for the defaults layer to fill.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingEnv, err)
	}

	return &cfg, nil
}
