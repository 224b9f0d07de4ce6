// ABOUTME: resolve command: classify a target and predict its install path
// ABOUTME: Touches neither the filesystem nor the installer

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgfetch/internal/fetch"
	"github.com/mauromedda/pkgfetch/internal/ui"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <target>...",
		Short: "Show how targets are classified and where they would install",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dest, err := a.destination()
			if err != nil {
				return err
			}
			root := a.absRoot(dest)

			tbl := ui.Table{Headers: []string{"TARGET", "KIND", "NAME", "REF", "PATH"}}
			for _, target := range args {
				spec, err := fetch.Classify(target)
				if err != nil {
					return err
				}
				path, err := fetch.PredictPath(spec, root)
				if err != nil {
					return err
				}
				ref := spec.Ref
				if ref == "" {
					ref = "-"
				}
				tbl.Rows = append(tbl.Rows, []string{spec.Raw, spec.Kind.String(), spec.Name, ref, path})
			}
			return tbl.Render(a.stdout, ui.NewStyles(a.stdout))
		},
	}
}
