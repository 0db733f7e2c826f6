package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/logger"
)

// appInfoService reports the version of the running binary.
type appInfoService struct {
	version string
}

// NewAppInfoService fixes the version served by GET /api/version/. Surrounding
// whitespace is dropped; a blank version is an error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("app", cfg.Name).Str("version", version).Msg("app info service created")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
