package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"maple/internal/infrastructure/i18n"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every translation catalog is consistent with the base catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			violations, err := i18n.Check()
			if err != nil {
				return err
			}
			if len(violations) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalogs are consistent")
				return nil
			}
			for _, v := range violations {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s has extra message: %s\n", v.Lang, v.ID)
			}
			return fmt.Errorf("check: %d extra messages", len(violations))
		},
	}
}
