package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stridelab/coachcfg/internal/config"
)

// newShowCommand creates the "show" subcommand that prints the resolved
// configuration for the selected environment.
func newShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved backend configuration",
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

			logger.Debug("configuration resolved", "env", cfg.Environment())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "environment:     %s\n", cfg.Environment())
			fmt.Fprintf(out, "backend url:     %s\n", cfg.BackendURL())
			fmt.Fprintf(out, "publishable key: %s\n", maskKey(cfg.BackendPublishableKey()))
			return nil
		},
	}
}

// maskKey hides the body of an API key, keeping the prefix tag and the last
// four characters for identification. Bodies too short to keep a tail are
// masked entirely so no key material is ever echoed.
func maskKey(key string) string {
	const tail = 4
	rest := strings.TrimPrefix(key, "sb_publishable_")
	prefix := key[:len(key)-len(rest)]
	if len(rest) <= tail {
		return prefix + "****"
	}
	return prefix + strings.Repeat("*", len(rest)-tail) + rest[len(rest)-tail:]
}
