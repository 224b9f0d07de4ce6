// ABOUTME: list command: table of loadable packages under the destination
// ABOUTME: The path column is truncated to the terminal width on a tty

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgfetch/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List installed packages",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			dest, err := a.destination()
			if err != nil {
				return err
			}
			root := a.absRoot(dest)

			refs, err := a.fetcher().List(root)
			if err != nil {
				return err
			}
			if len(refs) == 0 {
				fmt.Fprintln(a.stderr, a.styles.Dim.Render("no packages installed in "+root))
				return nil
			}

			tbl := ui.Table{Headers: []string{"NAME", "VERSION", "PATH"}}
			for _, r := range refs {
				tbl.Rows = append(tbl.Rows, []string{r.Name, r.Version, r.Path})
			}
			if ui.IsTerminal(a.stdout) {
				tbl.MaxWidth = ui.TerminalWidth(a.stdout)
			}
			return tbl.Render(a.stdout, ui.NewStyles(a.stdout))
		},
	}
}
