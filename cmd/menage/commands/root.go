// Package commands wires the menage CLI: global flags, configuration
// loading, and logger setup happen once in the root command and the
// subcommands read the result from the command context.
package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/foyerlabs/menage/internal/config"
	"github.com/foyerlabs/menage/internal/logging"
)

const cliExecutable = "menage"

type contextKey string

const (
	configKey contextKey = "config"
	loggerKey contextKey = "logger"
)

// NewRootCommand constructs the top-level menage CLI command.
func NewRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           cliExecutable,
		Short:         "Menage coordinates household modules over a shared event bus",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			manager := config.NewManager()
			if err := manager.Load(cmd.Flags(), configFile); err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			cfg := manager.Get()
			logger := logging.Setup(cfg.Log)

			ctx := context.WithValue(cmd.Context(), configKey, cfg)
			ctx = context.WithValue(ctx, loggerKey, logger)
			cmd.SetContext(ctx)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to config file (YAML)")
	flags.String("log.level", "", "Log level (debug, info, warn, error)")
	flags.String("log.format", "", "Log format: json | console")
	flags.Bool("log.no_color", false, "Disable color in console output")
	flags.Bool("debug", false, "Enable debug logging")

	cmd.AddCommand(NewEventsCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// configFromContext returns the loaded configuration.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// loggerFromContext returns the root logger.
func loggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}
