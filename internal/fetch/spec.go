// ABOUTME: Specifier classifier: local paths, git remotes, registry names/ranges, tarballs
// ABOUTME: Ordered rule table, first match wins; anything unmatched is ErrInvalidSpecifier

package fetch

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	archiveExt      = regexp.MustCompile(`(?i)\.(tgz|tar\.gz|tar)$`)
	schemePrefix    = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9+.-]*):`)
	windowsAbs      = regexp.MustCompile(`^[A-Za-z]:[\\/]`)
	scpLike         = regexp.MustCompile(`^[\w.-]+@(?:localhost|[\w-]+(?:\.[\w-]+)+):[^/\\]`)
	hostedShortcut  = regexp.MustCompile(`^(github|gitlab|bitbucket|gist):[^/]`)
	githubShorthand = regexp.MustCompile(`^[A-Za-z0-9][\w.-]*/[\w.-]+(#.*)?$`)
	registrySpec    = regexp.MustCompile(`^((?:@[A-Za-z0-9][\w.~-]*/)?[A-Za-z0-9-][\w.~-]*)(?:@(.*))?$`)
)

// gitSchemes are URL schemes that always denote a git remote.
var gitSchemes = map[string]bool{
	"git":       true,
	"git+ssh":   true,
	"git+http":  true,
	"git+https": true,
	"git+file":  true,
	"ssh":       true,
}

// rule is one classification step. Rules are tried in slice order.
type rule struct {
	kind   Kind
	match  func(s string) bool
	derive func(s string) (name, ref string)
}

// rules holds the classification precedence. Order matters: file: must win
// over generic schemes, and git+https must be seen before plain https can
// fall through to the tarball rule.
var rules = []rule{
	{kind: KindLocalPath, match: isLocalPath, derive: localName},
	{kind: KindGitRemote, match: isGitRemote, derive: gitNameRef},
	{kind: KindRegistryNamed, match: isRegistrySpec, derive: registryNameRef},
	{kind: KindTarballURL, match: isTarball, derive: tarballName},
}

// Classify parses a raw package target into a Specifier.
// Supported formats:
//   - Local:    "/abs/path", "C:\path", "file:../pkg", "./pkg", "~/pkg"
//   - Git:      "git://h/o/r.git", "git+https://h/o/r#tag", "https://h/o/r", "git@h:o/r.git",
//     "github:o/r", "o/r"
//   - Registry: "name", "@scope/name", "name@^1.2.0", "@scope/name@latest",
//     "name@npm:other@^1", "name@github:o/r"
//   - Tarball:  "https://h/pkg-1.0.0.tgz", "pkg.tgz"
func Classify(raw string) (Specifier, error) {
	s := norm.NFC.String(strings.TrimSpace(raw))
	if s == "" {
		return Specifier{}, fmt.Errorf("%w: empty target", ErrInvalidSpecifier)
	}

	for _, r := range rules {
		if !r.match(s) {
			continue
		}
		name, ref := r.derive(s)
		if name == "" {
			return Specifier{}, fmt.Errorf("%w: cannot determine package name from %q", ErrInvalidSpecifier, s)
		}
		kind := r.kind
		if kind == KindRegistryNamed && ref != "" {
			kind = KindRegistryRanged
		}
		return Specifier{Raw: s, Kind: kind, Name: name, Ref: ref}, nil
	}

	return Specifier{}, fmt.Errorf("%w: %q", ErrInvalidSpecifier, s)
}

func scheme(s string) string {
	if m := schemePrefix.FindStringSubmatch(s); m != nil && !windowsAbs.MatchString(s) {
		return strings.ToLower(m[1])
	}
	return ""
}

func isLocalPath(s string) bool {
	if strings.HasPrefix(s, "/") || windowsAbs.MatchString(s) {
		return true
	}
	if scheme(s) == "file" {
		return true
	}
	for _, p := range []string{"./", "../", "~/", `.\`, `..\`} {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return s == "." || s == ".."
}

func localName(s string) (string, string) {
	if scheme(s) == "file" {
		s = strings.TrimPrefix(s[len("file:"):], "//")
	}
	s = strings.TrimRight(s, `/\`)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	if s == "." || s == ".." || s == "~" {
		return "", ""
	}
	s = strings.TrimSuffix(s, ".git")
	return archiveExt.ReplaceAllString(s, ""), ""
}

func isGitRemote(s string) bool {
	switch sch := scheme(s); {
	case gitSchemes[sch]:
		return true
	case sch == "http" || sch == "https":
		u, err := url.Parse(s)
		if err != nil {
			return false
		}
		p := strings.Trim(u.Path, "/")
		return p != "" && !archiveExt.MatchString(p)
	}
	if scpLike.MatchString(s) || hostedShortcut.MatchString(s) {
		return true
	}
	path, _, _ := strings.Cut(s, "#")
	return githubShorthand.MatchString(s) && !archiveExt.MatchString(path)
}

// gitNameRef returns the final path segment with .git removed, and the
// fragment. Mirror URLs that embed a second URL in their path still resolve
// to the last segment only.
func gitNameRef(s string) (string, string) {
	u, ref, _ := strings.Cut(s, "#")
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i]
	}
	u = strings.TrimRight(u, "/")
	if i := strings.LastIndexAny(u, "/:"); i >= 0 {
		u = u[i+1:]
	}
	return strings.TrimSuffix(u, ".git"), ref
}

func isRegistrySpec(s string) bool {
	m := registrySpec.FindStringSubmatch(s)
	return m != nil && !archiveExt.MatchString(m[1])
}

func registryNameRef(s string) (string, string) {
	m := registrySpec.FindStringSubmatch(s)
	return m[1], m[2]
}

// manifestRef returns the name and version range a registry spec's
// package.json must match. Aliases ("npm:other@^1") check the aliased
// package. Other protocol refs ("github:o/r", "file:...") install under
// Name but promise nothing about the manifest, so both results are empty.
func (s Specifier) manifestRef() (name, ref string) {
	if !s.Kind.IsRegistry() {
		return "", ""
	}
	if target, ok := strings.CutPrefix(s.Ref, "npm:"); ok {
		if m := registrySpec.FindStringSubmatch(target); m != nil {
			return m[1], m[2]
		}
		return "", ""
	}
	if strings.Contains(s.Ref, ":") {
		return "", ""
	}
	return s.Name, s.Ref
}

func isTarball(s string) bool {
	switch scheme(s) {
	case "http", "https":
		u, err := url.Parse(s)
		return err == nil && archiveExt.MatchString(strings.TrimRight(u.Path, "/"))
	case "":
		path, _, _ := strings.Cut(s, "#")
		return archiveExt.MatchString(path) && !strings.ContainsAny(path, " \t")
	}
	return false
}

func tarballName(s string) (string, string) {
	u, _, _ := strings.Cut(s, "#")
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i]
	}
	u = strings.TrimRight(u, "/")
	if i := strings.LastIndex(u, "/"); i >= 0 {
		u = u[i+1:]
	}
	return archiveExt.ReplaceAllString(u, ""), ""
}
