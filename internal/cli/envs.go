package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stridelab/coachcfg/internal/config"
)

// newEnvsCommand creates the "envs" subcommand that lists the supported
// environments and their default backend endpoints.
func newEnvsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "List supported environments and their default endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, environment := range config.Environments() {
				backend, ok := config.DefaultBackend(environment)
				if !ok {
					return fmt.Errorf("no default backend defined for environment %q", environment)
				}
				fmt.Fprintf(out, "%-12s %s\n", environment, backend.URL)
			}
			return nil
		},
	}
}
