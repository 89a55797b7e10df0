package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Source is a configuration layer that loads values into koanf.
// Sources load in order; later sources override earlier values.
type Source interface {
	// Name returns a human-readable name for error reporting.
	Name() string

	// Load loads this source's values into the koanf instance.
	Load(k *koanf.Koanf) error
}

// DefaultSource provides the hardcoded default values. Loaded first.
type DefaultSource struct{}

func (s *DefaultSource) Name() string { return "defaults" }

func (s *DefaultSource) Load(k *koanf.Koanf) error {
	if err := k.Load(confmap.Provider(DefaultAsMap(), "."), nil); err != nil {
		return fmt.Errorf("error loading defaults: %w", err)
	}
	return nil
}

// FileSource loads configuration from a YAML file. A missing or empty path
// is skipped silently; the file is optional.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return "file:" + s.Path }

func (s *FileSource) Load(k *koanf.Koanf) error {
	if s.Path == "" {
		return nil
	}

	if _, err := os.Stat(s.Path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error checking config file %s: %w", s.Path, err)
	}

	if err := k.Load(file.Provider(s.Path), yaml.Parser()); err != nil {
		return fmt.Errorf("error loading config file %s: %w", s.Path, err)
	}
	return nil
}

// EnvSource loads configuration from environment variables. Variables carry
// the MENAGE_ prefix and underscores map to dots:
//
//	MENAGE_LOG_LEVEL  -> log.level
//	MENAGE_LOG_FORMAT -> log.format
type EnvSource struct {
	Prefix string // defaults to "MENAGE_"
}

func (s *EnvSource) Name() string { return "env" }

func (s *EnvSource) Load(k *koanf.Koanf) error {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "MENAGE_"
	}

	if err := k.Load(env.Provider(prefix, ".", func(key string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(key, prefix)), "_", ".")
	}), nil); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}
	return nil
}

// FlagSource loads configuration from command-line flags. Loaded last, so
// flags override every other source.
type FlagSource struct {
	Flags *pflag.FlagSet
	Debug bool // forces log.level to "debug"
}

func (s *FlagSource) Name() string { return "flags" }

func (s *FlagSource) Load(k *koanf.Koanf) error {
	if s.Flags != nil {
		if err := k.Load(posflag.Provider(s.Flags, ".", k), nil); err != nil {
			return fmt.Errorf("error loading command-line flags: %w", err)
		}
	}

	if s.Debug {
		_ = k.Set("log.level", "debug")
	}

	return nil
}

// DefaultSources returns the standard source stack:
// defaults -> file -> env -> flags.
func DefaultSources(configPath string, flags *pflag.FlagSet, debug bool) []Source {
	return []Source{
		&DefaultSource{},
		&FileSource{Path: configPath},
		&EnvSource{Prefix: "MENAGE_"},
		&FlagSource{Flags: flags, Debug: debug},
	}
}
