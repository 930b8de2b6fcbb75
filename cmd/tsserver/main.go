package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := initialize(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.serve(ctx)
}

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("tsserver failed")
	}
}
