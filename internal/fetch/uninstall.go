// ABOUTME: Uninstaller: runs the installer in removal mode for a package name
// ABOUTME: A missing destination means nothing is installed and is not an error

package fetch

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/mauromedda/pkgfetch/internal/log"
)

// Uninstall removes the package called name from dest. Removing a package
// that is not installed is left to the installer, which treats it as a no-op.
func (f *Fetcher) Uninstall(ctx context.Context, name, dest string, opts InstallOptions) error {
	return wrap("uninstall", name, f.uninstall(ctx, name, dest, opts))
}

func (f *Fetcher) uninstall(ctx context.Context, name, dest string, opts InstallOptions) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(dest) == "" {
		return ErrInvalidArguments
	}

	root, err := resolveRoot(dest, opts.Cwd)
	if err != nil {
		return err
	}
	if _, err := f.stat(root); errors.Is(err, fs.ErrNotExist) {
		log.Debug("uninstall %s: %s does not exist, nothing to remove", name, root)
		return nil
	}

	_, err = f.run(ctx, UninstallArgs(name, opts), root, ErrUninstallFailed)
	return err
}
