package cli

import (
	"github.com/spf13/cobra"

	"maple/internal/adapters/pacman"
)

func newInstallCommand(runner *pacman.Runner) *cobra.Command {
	var (
		fromFile bool
		flags    []string
	)

	cmd := &cobra.Command{
		Use:   "install [packages...]",
		Short: "Install packages through an elevated pacman call",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if fromFile {
				return runner.InstallFromTarball(flags, args)
			}
			return runner.InstallFromRepos(flags, args)
		},
	}

	cmd.Flags().BoolVarP(&fromFile, "file", "f", false, "treat arguments as package files (pacman -U)")
	cmd.Flags().StringArrayVar(&flags, "flag", nil, "extra flag passed through to pacman (repeatable)")

	return cmd
}
