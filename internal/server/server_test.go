package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/abacqu/people-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "development"},
		Server: config.ServerConfig{
			Port:            "0",
			ReadTimeout:     1,
			WriteTimeout:    1,
			IdleTimeout:     1,
			ShutdownTimeout: 1,
		},
		Database:      config.DatabaseConfig{Driver: config.DriverMemory, Collection: "peoples"},
		Observability: config.DefaultObservabilityConfig(),
	}
}

func TestNewWithMemoryDriverSkipsDatabase(t *testing.T) {
	logger := zerolog.Nop()

	s, err := New(memoryConfig(), &logger, nil)
	require.NoError(t, err)
	assert.Nil(t, s.DB)
}

func TestStartRequiresSetup(t *testing.T) {
	logger := zerolog.Nop()

	s, err := New(memoryConfig(), &logger, nil)
	require.NoError(t, err)
	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestShutdownStopsServer(t *testing.T) {
	logger := zerolog.Nop()

	s, err := New(memoryConfig(), &logger, nil)
	require.NoError(t, err)
	s.SetupHTTPServer(http.NotFoundHandler())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	require.NoError(t, s.Shutdown(context.Background()))
	// Start either never bound or returned ErrServerClosed; both are nil.
	assert.NoError(t, <-done)
}
