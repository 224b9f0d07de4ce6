// ABOUTME: Fetcher wires the resolver to its injected primitives: spawn, manifest read, mkdir, stat
// ABOUTME: Holds only immutable configuration so concurrent calls share nothing mutable

package fetch

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
)

// DefaultCommand is the installer binary used when none is configured.
const DefaultCommand = "npm"

// Fetcher resolves package targets to installed directories, invoking the
// external installer only when a package is missing.
type Fetcher struct {
	command      string
	spawner      Spawner
	readManifest ManifestReader
	ensureDir    func(path string) error
	stat         func(path string) (fs.FileInfo, error)
	lookPath     func(file string) (string, error)
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithCommand sets the installer binary (default "npm").
func WithCommand(name string) Option {
	return func(f *Fetcher) {
		if name != "" {
			f.command = name
		}
	}
}

// WithSpawner replaces the process spawner.
func WithSpawner(s Spawner) Option {
	return func(f *Fetcher) { f.spawner = s }
}

// WithManifestReader replaces the package.json reader used by the presence check.
func WithManifestReader(r ManifestReader) Option {
	return func(f *Fetcher) { f.readManifest = r }
}

// WithEnsureDir replaces the destination directory creator.
func WithEnsureDir(fn func(path string) error) Option {
	return func(f *Fetcher) { f.ensureDir = fn }
}

// WithStat replaces the destination existence check used by Uninstall.
func WithStat(fn func(path string) (fs.FileInfo, error)) Option {
	return func(f *Fetcher) { f.stat = fn }
}

// WithLookPath replaces the PATH lookup used by CheckInstaller.
func WithLookPath(fn func(file string) (string, error)) Option {
	return func(f *Fetcher) { f.lookPath = fn }
}

// New creates a Fetcher. Without options it runs "npm" through os/exec and
// reads manifests from disk.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		command:      DefaultCommand,
		spawner:      ExecSpawner{},
		readManifest: ReadManifest,
		ensureDir:    ensureDir,
		stat:         os.Stat,
		lookPath:     exec.LookPath,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Command returns the installer binary this Fetcher invokes.
func (f *Fetcher) Command() string {
	return f.command
}

// CheckInstaller verifies the installer binary can be found on PATH.
func (f *Fetcher) CheckInstaller() error {
	if _, err := f.lookPath(f.command); err != nil {
		return wrap("check", f.command, fmt.Errorf("%w: %s: %w", ErrInstallerNotFound, f.command, err))
	}
	return nil
}

// ensureDir creates path and its parents; an existing directory is fine.
func ensureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
