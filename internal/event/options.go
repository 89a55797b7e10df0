package event

import (
	"time"

	"github.com/rs/zerolog"
)

// BusOption configures an event Bus.
type BusOption func(*busConfig)

// busConfig contains configuration for the event bus.
type busConfig struct {
	// logger receives handler failure and diagnostic logs.
	logger zerolog.Logger

	// slowWarn logs a warning when a handler blocks the publisher longer
	// than this duration. Zero disables the warning.
	slowWarn time.Duration

	// panicStacks includes the recovered stack trace in panic logs.
	panicStacks bool
}

// defaultBusConfig returns the default bus configuration.
func defaultBusConfig() busConfig {
	return busConfig{
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used for handler failures and diagnostics.
func WithLogger(logger zerolog.Logger) BusOption {
	return func(c *busConfig) {
		c.logger = logger
	}
}

// WithSlowHandlerWarning logs a warning whenever a handler blocks the
// publisher longer than the given duration.
func WithSlowHandlerWarning(threshold time.Duration) BusOption {
	return func(c *busConfig) {
		c.slowWarn = threshold
	}
}

// WithPanicStacks includes recovered stack traces in handler panic logs.
func WithPanicStacks(enabled bool) BusOption {
	return func(c *busConfig) {
		c.panicStacks = enabled
	}
}
