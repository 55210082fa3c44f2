package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stridelab/coachcfg/internal/config"
)

// newCheckCommand creates the "check" subcommand that validates the resolved
// configuration and fails when it violates the backend contract.
func newCheckCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the resolved backend configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			cfg, err := config.Load(config.Options{
				Env:       opts.Env,
				EnvFiles:  opts.EnvFiles,
				Overrides: opts.Overrides,
			})
			if err != nil {
				return err
			}

			if !cfg.Valid() {
				return fmt.Errorf("configuration for %s is invalid: backend URL must parse and publishable key must be set", cfg.Environment())
			}
			if err := cfg.Check(); err != nil {
				return err
			}

			logger.Info("configuration valid",
				"env", cfg.Environment(),
				"url", cfg.BackendURL(),
			)
			return nil
		},
	}
}
