package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Manager handles loading and accessing application configuration.
type Manager struct {
	k       *koanf.Koanf
	current Config
	mu      sync.RWMutex
}

// NewManager creates a Manager with an empty configuration.
// Call Load before Get.
func NewManager() *Manager {
	return &Manager{
		k: koanf.New("."),
	}
}

// Default returns a Config populated with hardcoded default values.
// These serve as the baseline if no other source overrides them.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Events: EventsConfig{
			SlowHandlerWarning: 100 * time.Millisecond,
			CaptureStacks:      true,
		},
	}
}

// DefaultAsMap converts the default Config to the flat map the confmap
// provider expects, so koanf knows every key before higher-priority sources
// load.
func DefaultAsMap() map[string]interface{} {
	def := Default()
	return map[string]interface{}{
		"log.level":    def.Log.Level,
		"log.format":   def.Log.Format,
		"log.no_color": def.Log.NoColor,

		"events.slow_handler_warning": def.Events.SlowHandlerWarning,
		"events.capture_stacks":       def.Events.CaptureStacks,
	}
}

// Load merges configuration sources in priority order (defaults, file,
// environment, flags) and unmarshals the result into the manager.
func (m *Manager) Load(flags *pflag.FlagSet, configFilePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	debug := false
	if flags != nil {
		if f := flags.Lookup("debug"); f != nil && f.Value.String() == "true" {
			debug = true
		}
	}

	for _, src := range DefaultSources(configFilePath, flags, debug) {
		if err := src.Load(m.k); err != nil {
			return fmt.Errorf("config source %s: %w", src.Name(), err)
		}
	}

	var cfg Config
	if err := m.k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("error unmarshaling final config: %w", err)
	}
	m.current = cfg

	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}
