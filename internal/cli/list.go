package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fakegen/pkg/catalog"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the generators of a locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, closer, err := a.catalogOptions(cmd.Context())
			if err != nil {
				return err
			}
			defer closer.Close()

			c, err := catalog.Load(cmd.Context(), a.cfg.Locale, opts...)
			if err != nil {
				return err
			}
			for _, name := range c.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newLocalesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the available locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			locales := catalog.Locales()
			if a.cfg.DefinitionsDir != "" {
				var err error
				locales, err = catalog.LocalesIn(os.DirFS(a.cfg.DefinitionsDir))
				if err != nil {
					return err
				}
			}
			for _, l := range locales {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}
