// Package logging configures the process-wide zerolog output.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/foyerlabs/menage/internal/config"
)

// Setup builds the root logger from configuration and installs it as the
// zerolog global. Format "json" writes structured lines; anything else gets
// a human-readable console writer.
func Setup(cfg config.LogConfig) zerolog.Logger {
	return SetupWithOutput(cfg, os.Stderr)
}

// SetupWithOutput is Setup with an explicit sink, for tests.
func SetupWithOutput(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	level := parseLevel(cfg.Level)

	var w io.Writer = out
	if strings.ToLower(cfg.Format) != "json" {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	}

	ctx := zerolog.New(w).With().Timestamp()
	if level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}

	logger := ctx.Logger().Level(level)
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	return logger
}

// parseLevel converts a configured level string to a zerolog.Level,
// defaulting to info on empty or invalid input.
func parseLevel(levelStr string) zerolog.Level {
	if levelStr == "" {
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
