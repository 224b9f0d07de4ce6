// ABOUTME: Installer invoker: runs the installer and resolves the installed package path
// ABOUTME: Registry names are fixed; other kinds prefer the name npm reports ("+ name@version")

package fetch

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/pkgfetch/internal/log"
)

var installedLine = regexp.MustCompile(`^\+\s+(@?[^@\s]+)@(\S+)$`)

// parseInstalled extracts the first "+ <name>@<version>" line from
// installer output. Terminal escapes and CRs from a pty are ignored.
func parseInstalled(output string) (name, version string, ok bool) {
	for _, line := range strings.Split(ansi.Strip(output), "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if m := installedLine.FindStringSubmatch(line); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

// run spawns the installer in dir and maps failures onto kind.
func (f *Fetcher) run(ctx context.Context, args []string, dir string, kind error) (SpawnResult, error) {
	log.Debug("running %s %s in %s", f.command, strings.Join(args, " "), dir)

	res, err := f.spawner.Spawn(ctx, f.command, args, dir)
	if err != nil {
		return res, &InstallError{Command: f.command, Args: args, ExitCode: -1, Output: res.Output, kind: kind, cause: err}
	}
	if res.ExitCode != 0 {
		return res, &InstallError{Command: f.command, Args: args, ExitCode: res.ExitCode, Output: res.Output, kind: kind}
	}
	return res, nil
}

// install runs the installer for spec in root and locates the result.
func (f *Fetcher) install(ctx context.Context, spec Specifier, root string, opts InstallOptions) (InstalledPackageRef, error) {
	res, err := f.run(ctx, InstallArgs(spec.Raw, opts), root, ErrInstallFailed)
	if err != nil {
		return InstalledPackageRef{}, err
	}

	// Registry specs always land under their own name, aliases included.
	// For other kinds the derived name is a guess and npm's report wins.
	name := spec.Name
	if reported, version, ok := parseInstalled(res.Output); ok {
		log.Debug("installer reported %s@%s", reported, version)
		if !spec.Kind.IsRegistry() {
			name = reported
		}
	} else {
		log.Debug("no install line in output, using derived name %s", name)
	}

	path, err := packagePath(root, name)
	if err != nil {
		return InstalledPackageRef{}, fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	m, err := f.readManifest(path)
	if err != nil {
		return InstalledPackageRef{}, fmt.Errorf("%w: %s finished but %s is not a loadable package: %w", ErrInstallFailed, f.command, path, err)
	}

	return InstalledPackageRef{Path: path, Name: m.Name, Version: m.Version}, nil
}
