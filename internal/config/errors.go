package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrParsingEnv wraps malformed environment values.
	ErrParsingEnv = errors.New("error getting env configs")

	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// database driver without DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates the "http" driver was selected
	// without a downstream address.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidNotifierConfigs indicates a missing notification channel.
	ErrInvalidNotifierConfigs = errors.New("invalid notifier configuration")
)
