package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-bff/internal/config"
	"github.com/MKhiriev/go-library-bff/internal/logger"
	"github.com/MKhiriev/go-library-bff/internal/store"
)

func TestNewServices(t *testing.T) {
	services, err := NewServices(store.NewMemoryAuthorRepository(), nil, config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.AuthorService)
	assert.Nil(t, services.BookService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_NoVersion(t *testing.T) {
	_, err := NewServices(nil, nil, config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
