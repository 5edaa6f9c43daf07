package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/bakery-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_WithoutHTTPServer(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &logger}

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestSetupHTTPServer_AppliesTimeouts(t *testing.T) {
	s := &Server{Config: &config.Config{
		Server: config.ServerConfig{Port: "8080", ReadTimeout: 5, WriteTimeout: 10, IdleTimeout: 60},
	}}

	s.SetupHTTPServer(http.NotFoundHandler())

	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":8080", s.httpServer.Addr)
	assert.Equal(t, 5*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 10*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, time.Minute, s.httpServer.IdleTimeout)
}

func TestShutdown_StopsRunningServer(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{
		Config: &config.Config{Server: config.ServerConfig{Port: "0"}},
		Logger: &logger,
	}
	s.SetupHTTPServer(http.NotFoundHandler())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	// Give ListenAndServe a moment to bind.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
