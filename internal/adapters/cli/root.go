// Package cli assembles maple's command tree.
package cli

import (
	"github.com/spf13/cobra"

	"maple/internal/adapters/pacman"
)

// NewRootCommand builds the maple command tree. Errors from subcommands
// propagate to the caller, which decides how to render them.
func NewRootCommand(runner *pacman.Runner) *cobra.Command {
	root := &cobra.Command{
		Use:           "maple",
		Short:         "A package helper that speaks your language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLangsCommand(),
		newCheckCommand(),
		newInstallCommand(runner),
		newPacmanCommand(runner),
		newQueryCommand(runner),
	)

	return root
}
