package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults with channel",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Driver = "mongo" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Driver = DriverPostgres },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "sqlite with dsn",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Driver = DriverSQLite
				cfg.Storage.DB.DSN = "library.db"
			},
		},
		{
			name:    "http without adapter address",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Driver = DriverHTTP },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "http with adapter address",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Driver = DriverHTTP
				cfg.Adapter.HTTPAddress = "http://authors:8080"
			},
		},
		{
			name:    "missing channel",
			mutate:  func(cfg *StructuredConfig) { cfg.Notifier.Channel = "" },
			wantErr: ErrInvalidNotifierConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
