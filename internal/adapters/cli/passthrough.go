package cli

import (
	"github.com/spf13/cobra"

	"maple/internal/adapters/pacman"
)

// Flag parsing is disabled on both passthrough commands so pacman's own
// flags (-Syu, -Qdt, ...) survive untouched.

func newPacmanCommand(runner *pacman.Runner) *cobra.Command {
	return &cobra.Command{
		Use:                "pacman [args...]",
		Short:              "Forward arguments verbatim to an elevated pacman",
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunElevatedBatch(args...)
		},
	}
}

func newQueryCommand(runner *pacman.Runner) *cobra.Command {
	return &cobra.Command{
		Use:                "query [args...]",
		Short:              "Forward arguments verbatim to an unprivileged pacman",
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.Run(args...)
		},
	}
}
