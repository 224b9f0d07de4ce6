// ABOUTME: status command: report whether a target is installed, without installing
// ABOUTME: Suggests close installed names when the target is missing

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgfetch/internal/fetch"
)

const maxSuggestions = 3

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <target>",
		Short: "Check whether a target is installed (exit 1 if not)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dest, err := a.destination()
			if err != nil {
				return err
			}
			spec, err := fetch.Classify(args[0])
			if err != nil {
				return err
			}

			f := a.fetcher()
			root := a.absRoot(dest)
			p := f.Presence(spec, root)
			if ref, ok := p.Installed(); ok {
				fmt.Fprintln(a.stdout, ref.Path)
				fmt.Fprintln(a.stderr, a.styles.Success.Render("installed"), a.styles.Dim.Render(ref.Label()))
				return nil
			}

			fmt.Fprintln(a.stderr, a.styles.Warning.Render("not installed:"), p.Reason())
			if hint := a.suggestions(f, root, spec.Name); hint != "" {
				fmt.Fprintln(a.stderr, a.styles.Dim.Render("did you mean: "+hint))
			}
			return errNotInstalled
		},
	}
}

func (a *app) suggestions(f *fetch.Fetcher, root, name string) string {
	refs, err := f.List(root)
	if err != nil || len(refs) == 0 {
		return ""
	}
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	return strings.Join(fetch.Suggest(name, names, maxSuggestions), ", ")
}
