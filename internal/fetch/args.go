// ABOUTME: Argument builder for installer install/uninstall invocations
// ABOUTME: Derives flags from InstallOptions; --save-exact wins over --no-save

package fetch

import (
	"github.com/mauromedda/pkgfetch/internal/log"
)

// InstallArgs builds the installer arguments for installing target. The
// target is passed through verbatim so the installer does its own resolution.
//
// Flag order: --production, then --save-exact or --no-save, then
// --registry and --loglevel. A plain --save is never emitted since it is
// the installer's default.
func InstallArgs(target string, opts InstallOptions) []string {
	args := []string{"install", target}

	if opts.production() {
		args = append(args, "--production")
	}

	switch {
	case opts.SaveExact:
		args = append(args, "--save-exact")
	case !opts.save():
		args = append(args, "--no-save")
	}

	if opts.Registry != "" {
		args = append(args, "--registry="+opts.Registry)
	}

	return appendLogLevel(args, opts.LogLevel)
}

// UninstallArgs builds the installer arguments for removing name.
// Uninstall never records the removal in the manifest.
func UninstallArgs(name string, opts InstallOptions) []string {
	args := []string{"uninstall", name, "--no-save"}
	return appendLogLevel(args, opts.LogLevel)
}

func appendLogLevel(args []string, verbosity string) []string {
	if verbosity == "" {
		return args
	}
	lvl, ok := log.NPMLevel(verbosity)
	if !ok {
		log.Warn("ignoring unknown installer loglevel %q", verbosity)
		return args
	}
	return append(args, "--loglevel="+lvl)
}
