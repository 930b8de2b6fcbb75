package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-types-go/support"
)

func TestServeShutsDownWhenCancelled(t *testing.T) {
	logger := zerolog.Nop()
	cfg := support.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}
	app := &application{
		config: cfg,
		log:    &logger,
		server: newServer(cfg, newHandler(&logger)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerUsesConfiguredTimeouts(t *testing.T) {
	logger := zerolog.Nop()
	server := newServer(support.Config{Addr: "127.0.0.1:0", ReadHeaderTimeout: 2 * time.Second}, newHandler(&logger))

	assert.Equal(t, 2*time.Second, server.ReadHeaderTimeout)
}

func TestHandlerServesDecodeEndpoint(t *testing.T) {
	logger := zerolog.Nop()
	server := newServer(support.Config{Addr: "127.0.0.1:0"}, newHandler(&logger))

	rec := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/timestamps/decode", strings.NewReader(`{"timestamp":"2016-10-02T07:31:51Z"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"unix":1475393511`)
}
