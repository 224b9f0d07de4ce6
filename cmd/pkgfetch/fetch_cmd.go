// ABOUTME: fetch command: make targets available and print their installed paths
// ABOUTME: Several targets are fetched concurrently, bounded by the concurrency setting

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgfetch/internal/fetch"
)

func newFetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <target>...",
		Short: "Install targets if missing and print their paths",
		Example: `  pkgfetch fetch -d ./plugins lodash@^4
  pkgfetch fetch -d ./plugins https://github.com/user/my-repo.git#v2 ./local-plugin`,
		Args: cobra.MinimumNArgs(1),
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
			reqs := make([]fetch.Request, len(args))
			for i, target := range args {
				reqs[i] = fetch.Request{Target: target, Dest: dest, Options: opts}
			}

			refs, err := f.FetchAll(cmd.Context(), reqs, a.cfg.Workers())
			if err != nil {
				return err
			}
			for _, ref := range refs {
				fmt.Fprintln(a.stdout, ref.Path)
				fmt.Fprintln(a.stderr, a.styles.Success.Render("✓"), a.styles.Dim.Render(ref.Label()))
			}
			return nil
		},
	}
}
