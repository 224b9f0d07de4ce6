// ABOUTME: config command: show effective settings and the files they come from
// ABOUTME: Flags given on the command line are already applied to what is shown

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgfetch/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintln(a.stdout, "=== Sources ===")
			for _, path := range []string{config.GlobalConfigFile(), config.ProjectConfigFile(a.workDir)} {
				state := "missing"
				if _, err := os.Stat(path); err == nil {
					state = "loaded"
				}
				fmt.Fprintf(a.stdout, "  %s (%s)\n", path, state)
			}
			fmt.Fprintln(a.stdout)
			fmt.Fprint(a.stdout, config.Explain(a.cfg))
			return nil
		},
	}
}
