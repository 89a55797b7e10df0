package config

import "time"

// Config is the root configuration structure for the menage process.
type Config struct {
	Log    LogConfig    `description:"Logging configuration" koanf:"log"`
	Events EventsConfig `description:"Event bus configuration" koanf:"events"`
}

// LogConfig holds logging related configuration.
type LogConfig struct {
	Level   string `description:"Log level (debug, info, warn, error)" koanf:"level"`
	Format  string `description:"Log format: json | console" koanf:"format"`
	NoColor bool   `description:"Disable color in console output" koanf:"no_color"`
}

// EventsConfig holds event bus tuning.
type EventsConfig struct {
	// SlowHandlerWarning is the synchronous handler duration above which a
	// warning is logged. Handlers block their publisher, so a slow handler
	// is a publisher stall.
	SlowHandlerWarning time.Duration `description:"Duration after which a blocking handler is reported" koanf:"slow_handler_warning"`

	// CaptureStacks includes goroutine stacks in handler panic logs.
	CaptureStacks bool `description:"Include stack traces in handler panic logs" koanf:"capture_stacks"`
}
