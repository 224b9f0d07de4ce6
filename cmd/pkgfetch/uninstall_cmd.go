// ABOUTME: uninstall command: remove packages by name from the destination
// ABOUTME: Removal never rewrites package.json

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUninstallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall <name>...",
		Aliases: []string{"rm", "remove"},
		Short:   "Remove installed packages",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := a.destination()
			if err != nil {
				return err
			}
			f := a.fetcher()
			if err := f.CheckInstaller(); err != nil {
				return err
			}

			opts := a.installOptions()
			for _, name := range args {
				if err := f.Uninstall(cmd.Context(), name, dest, opts); err != nil {
					return err
				}
				fmt.Fprintln(a.stderr, a.styles.Success.Render("removed"), name)
			}
			return nil
		},
	}
}
