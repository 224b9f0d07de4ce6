// ABOUTME: Fetch orchestrator: validate, ensure destination, presence check, else install
// ABOUTME: All failures reach callers as *Error; repeated fetches never reinstall

package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mauromedda/pkgfetch/internal/log"
)

// Fetch makes target available under dest and returns the absolute path of
// the installed package. The installer only runs when the package is not
// already present and loadable.
func (f *Fetcher) Fetch(ctx context.Context, target, dest string, opts InstallOptions) (string, error) {
	ref, err := f.Resolve(ctx, target, dest, opts)
	if err != nil {
		return "", err
	}
	return ref.Path, nil
}

// Resolve is Fetch returning the full installed package ref.
func (f *Fetcher) Resolve(ctx context.Context, target, dest string, opts InstallOptions) (InstalledPackageRef, error) {
	ref, err := f.resolve(ctx, target, dest, opts)
	if err != nil {
		return InstalledPackageRef{}, wrap("fetch", target, err)
	}
	return ref, nil
}

func (f *Fetcher) resolve(ctx context.Context, target, dest string, opts InstallOptions) (InstalledPackageRef, error) {
	if strings.TrimSpace(target) == "" || strings.TrimSpace(dest) == "" {
		return InstalledPackageRef{}, ErrInvalidArguments
	}

	spec, err := Classify(target)
	if err != nil {
		return InstalledPackageRef{}, err
	}

	root, err := resolveRoot(dest, opts.Cwd)
	if err != nil {
		return InstalledPackageRef{}, err
	}
	if err := f.ensureDir(root); err != nil {
		return InstalledPackageRef{}, fmt.Errorf("%w: creating destination %s: %w", ErrInvalidArguments, root, err)
	}

	p := f.Presence(spec, root)
	if ref, ok := p.Installed(); ok {
		log.Debug("%s already installed at %s", spec.Name, ref.Path)
		return ref, nil
	}
	log.Debug("%s (%s): %v", spec.Name, spec.Kind, p.Reason())

	return f.install(ctx, spec, root, opts)
}

// resolveRoot makes dest absolute, relative to cwd when given.
func resolveRoot(dest, cwd string) (string, error) {
	if filepath.IsAbs(dest) {
		return filepath.Clean(dest), nil
	}
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		cwd = wd
	}
	abs, err := filepath.Abs(filepath.Join(cwd, dest))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dest, err)
	}
	return abs, nil
}
