// Package cli defines the command-line interface for coachcfg.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stridelab/coachcfg/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	Env       string
	EnvFiles  []string
	Overrides string
	LogLevel  logging.Level
}

// Execute builds the root command, runs it with the provided args and logger,
// and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	return execute(args, os.Stderr, logger)
}

// execute wires env-derived defaults into the root command. The log
// destination is injectable so tests can capture records.
func execute(args []string, logDest io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(logDest, logging.LevelInfo)
	}

	defaults, err := loadEnvDefaults()
	if err != nil {
		return err
	}

	rootOpts := &Options{
		Env:       defaults.Env,
		Overrides: defaults.Overrides,
		LogLevel:  logging.ParseLevel(defaults.LogLevel),
	}
	if defaults.EnvFile != "" {
		rootOpts.EnvFiles = []string{defaults.EnvFile}
	}

	rootCmd := newRootCommand(rootOpts, logger, logDest)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and
// subcommands. Loggers built by PersistentPreRunE write to logDest.
func newRootCommand(opts *Options, logger *slog.Logger, logDest io.Writer) *cobra.Command {
	if logDest == nil {
		logDest = os.Stderr
	}

	cmd := &cobra.Command{
		Use:   "coachcfg",
		Short: "coachcfg inspects and validates the coaching app backend configuration",
		Long:  "coachcfg resolves the environment-scoped Supabase connection settings used by the coaching app and verifies they meet the backend contract.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(logDest, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			cmd.SetErr(logging.NewWriter(logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Env, "env", opts.Env, "Environment name (development, staging, production)")
	cmd.PersistentFlags().StringSliceVar(&opts.EnvFiles, "env-file", opts.EnvFiles, "Path to a .env file merged before process variables (repeatable)")
	cmd.PersistentFlags().StringVar(&opts.Overrides, "overrides", opts.Overrides, "Path to a YAML file with per-environment backend overrides")
	cmd.PersistentFlags().String("log-level", opts.LogLevel.String(), "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newShowCommand(opts),
		newCheckCommand(opts),
		newEnvsCommand(),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command
// contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a
// default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
