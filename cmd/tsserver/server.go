package main

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-types-go/connectors/tshttp"
	"github.com/weegigs/wee-types-go/support"
)

type application struct {
	config support.Config
	log    *zerolog.Logger
	tracer *trace.TracerProvider
	server *http.Server
}

func newHandler(log *zerolog.Logger) http.Handler {
	return tshttp.NewHandler(tshttp.Logger(log))
}

func newServer(cfg support.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// serve runs until ctx is cancelled, then drains in-flight requests.
func (app *application) serve(ctx context.Context) error {
	failed := make(chan error, 1)
	go func() {
		app.log.Info().Str("addr", app.config.Addr).Msg("listening")
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
		close(failed)
	}()

	select {
	case err := <-failed:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	app.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	return errors.Wrap(app.server.Shutdown(shutdownCtx), "shutdown failed")
}
