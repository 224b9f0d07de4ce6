// ABOUTME: Root cobra command: global flags, config loading and Fetcher construction
// ABOUTME: Precedence is config files, then PKGFETCH_* env, then command-line flags

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgfetch/internal/config"
	"github.com/mauromedda/pkgfetch/internal/fetch"
	"github.com/mauromedda/pkgfetch/internal/log"
	"github.com/mauromedda/pkgfetch/internal/ui"
)

// errNotInstalled makes status exit 1 without an error message.
var errNotInstalled = errors.New("not installed")

type globalFlags struct {
	dest         string
	registry     string
	loglevel     string
	concurrency  int
	verbose      bool
	noProduction bool
	noSave       bool
	saveExact    bool
	stream       bool
}

// app is the state shared by all commands of one invocation.
type app struct {
	flags   globalFlags
	cfg     *config.Settings
	workDir string

	stdout io.Writer
	stderr io.Writer
	styles ui.Styles

	// fetchOptions are appended after the defaults; tests inject fakes here.
	fetchOptions []fetch.Option
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		cfg:    &config.Settings{},
		stdout: stdout,
		stderr: stderr,
		styles: ui.NewStyles(stderr),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pkgfetch",
		Short: "Resolve npm-style package specifiers to installed directories",
		Long: `pkgfetch makes a package available under <dest>/node_modules and prints
its path, running the installer (npm by default) only when the package is
missing or does not satisfy the requested version.

Targets may be registry names (lodash, @scope/pkg@^1.2.0), git remotes
(https://host/user/repo.git#v2, github:user/repo), local paths or tarball URLs.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "version", "help", "completion", "__complete":
				return nil
			}
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.dest, "dest", "d", "", "Destination root; packages land in <dest>/node_modules")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Log resolver decisions and installer commands")
	pf.StringVar(&a.flags.registry, "registry", "", "Registry URL passed to the installer")
	pf.StringVar(&a.flags.loglevel, "loglevel", "", "Installer log level (silent, error, warn, info, verbose, ...)")
	pf.BoolVar(&a.flags.noProduction, "no-production", false, "Install dev dependencies too")
	pf.BoolVar(&a.flags.noSave, "no-save", false, "Do not record the package in package.json")
	pf.BoolVar(&a.flags.saveExact, "save-exact", false, "Record an exact version in package.json")
	pf.IntVar(&a.flags.concurrency, "concurrency", 0, "Maximum parallel installs when fetching several targets")
	pf.BoolVar(&a.flags.stream, "stream", false, "Show live installer output when attached to a terminal")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(
		newFetchCmd(a),
		newUninstallCmd(a),
		newStatusCmd(a),
		newListCmd(a),
		newResolveCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	if a.flags.verbose {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(log.LevelInfo)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	a.workDir = wd

	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.applyFlags(cmd)
	return nil
}

func (a *app) applyFlags(cmd *cobra.Command) {
	changed := cmd.Flags().Changed

	if changed("dest") {
		a.cfg.Destination = a.flags.dest
	}
	if changed("registry") {
		a.cfg.Registry = a.flags.registry
	}
	if changed("loglevel") {
		a.cfg.LogLevel = a.flags.loglevel
	} else if a.flags.verbose && a.cfg.LogLevel == "" {
		a.cfg.LogLevel = log.FromLevel(log.GetLevel())
	}
	if a.flags.noProduction {
		a.cfg.Production = fetch.Bool(false)
	}
	if a.flags.noSave {
		a.cfg.Save = fetch.Bool(false)
	}
	if a.flags.saveExact {
		a.cfg.SaveExact = fetch.Bool(true)
	}
	if changed("concurrency") {
		a.cfg.Concurrency = a.flags.concurrency
	}
}

// fetcher builds a Fetcher from the effective settings.
func (a *app) fetcher() *fetch.Fetcher {
	var spawner fetch.Spawner = fetch.ExecSpawner{}
	if a.flags.stream && ui.IsTerminal(a.stderr) {
		spawner = fetch.PTYSpawner{Out: a.stderr}
	}

	opts := []fetch.Option{
		fetch.WithCommand(a.cfg.Installer),
		fetch.WithSpawner(spawner),
	}
	return fetch.New(append(opts, a.fetchOptions...)...)
}

func (a *app) installOptions() fetch.InstallOptions {
	return a.cfg.InstallOptions(a.workDir)
}

// destination returns the configured destination root.
func (a *app) destination() (string, error) {
	if a.cfg.Destination == "" {
		return "", errors.New("no destination: pass --dest or set destination in config.yaml")
	}
	return a.cfg.Destination, nil
}

// absRoot resolves dest against the working directory.
func (a *app) absRoot(dest string) string {
	if filepath.IsAbs(dest) {
		return filepath.Clean(dest)
	}
	return filepath.Join(a.workDir, dest)
}
