package support

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func NewLogger(cfg Config) *zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, out io.Writer) *zerolog.Logger {
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	logger := zerolog.New(out).Level(cfg.LogLevel).With().Timestamp().Logger()
	return &logger
}
