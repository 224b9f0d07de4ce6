// ABOUTME: Path predictor: where the installer will place a package under node_modules
// ABOUTME: Pure computation; scoped names keep their @scope directory

package fetch

import (
	"fmt"
	"path/filepath"
	"strings"
)

const modulesDir = "node_modules"

// PredictPath returns the absolute directory the installer is expected to
// use for spec under root. It does not touch the filesystem.
func PredictPath(spec Specifier, root string) (string, error) {
	return packagePath(root, spec.Name)
}

// packagePath joins root/node_modules/<name>, splitting "@scope/name".
func packagePath(root, name string) (string, error) {
	segs := strings.Split(name, "/")
	if len(segs) > 2 || (len(segs) == 2 && !strings.HasPrefix(segs[0], "@")) {
		return "", fmt.Errorf("%w: bad package name %q", ErrInvalidSpecifier, name)
	}
	for _, seg := range segs {
		if seg == "" || seg == "." || seg == ".." || strings.ContainsRune(seg, '\\') {
			return "", fmt.Errorf("%w: bad package name %q", ErrInvalidSpecifier, name)
		}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", root, err)
	}
	return filepath.Join(append([]string{abs, modulesDir}, segs...)...), nil
}
