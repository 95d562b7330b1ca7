package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"maple/internal/infrastructure/i18n"
)

func newLangsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List the languages maple ships translations for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tags, err := i18n.AvailableLanguages()
			if err != nil {
				return err
			}
			for _, tag := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}
