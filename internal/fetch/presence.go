// ABOUTME: Presence check: is the predicted package directory a loadable package?
// ABOUTME: Returns a present/absent value instead of an error; absence triggers install

package fetch

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Presence is the outcome of a presence check: either an installed package
// or the reason it is considered absent.
type Presence struct {
	ref    InstalledPackageRef
	found  bool
	reason error
}

func present(ref InstalledPackageRef) Presence { return Presence{ref: ref, found: true} }

func absent(reason error) Presence { return Presence{reason: reason} }

// Installed returns the package ref and true when the package is usable.
func (p Presence) Installed() (InstalledPackageRef, bool) {
	return p.ref, p.found
}

// Reason explains an absent result. It wraps ErrNotInstalled and is nil
// when the package is present.
func (p Presence) Reason() error {
	return p.reason
}

// Presence checks whether spec is already installed under root. A directory
// alone is not enough: its manifest must load, and registry specs must match
// by name and, for ranges, by version. Aliases match the aliased package.
func (f *Fetcher) Presence(spec Specifier, root string) Presence {
	path, err := PredictPath(spec, root)
	if err != nil {
		return absent(fmt.Errorf("%w: %w", ErrNotInstalled, err))
	}

	m, err := f.readManifest(path)
	if err != nil {
		return absent(fmt.Errorf("%w: %w", ErrNotInstalled, err))
	}

	want, ref := spec.manifestRef()
	if want != "" && m.Name != want {
		return absent(fmt.Errorf("%w: %s holds %q, want %q", ErrNotInstalled, path, m.Name, want))
	}
	if ref != "" && !satisfies(m.Version, ref) {
		return absent(fmt.Errorf("%w: installed %s@%s does not satisfy %q", ErrNotInstalled, m.Name, m.Version, ref))
	}

	return present(InstalledPackageRef{Path: path, Name: m.Name, Version: m.Version})
}

// IsInstalled reports whether target is installed and usable under dest.
// It never installs anything.
func (f *Fetcher) IsInstalled(target, dest string) bool {
	spec, err := Classify(target)
	if err != nil || dest == "" {
		return false
	}
	_, ok := f.Presence(spec, dest).Installed()
	return ok
}

// satisfies reports whether version meets ref. Refs that do not parse as a
// semver constraint (dist-tags such as "latest") are accepted as-is.
func satisfies(version, ref string) bool {
	c, err := semver.NewConstraint(ref)
	if err != nil {
		return true
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return c.Check(v)
}
