// ABOUTME: Fetch types: specifier kinds, parsed specifier, install options, installed ref
// ABOUTME: Options use *bool so "unset" keeps the production/save defaults of true

package fetch

// Kind identifies which syntax a package specifier was written in.
type Kind int

const (
	KindRegistryNamed Kind = iota
	KindRegistryRanged
	KindGitRemote
	KindLocalPath
	KindTarballURL
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRegistryNamed:
		return "registry"
	case KindRegistryRanged:
		return "registry-range"
	case KindGitRemote:
		return "git"
	case KindLocalPath:
		return "local"
	case KindTarballURL:
		return "tarball"
	default:
		return "unknown"
	}
}

// IsRegistry reports whether the kind resolves through the package registry.
func (k Kind) IsRegistry() bool {
	return k == KindRegistryNamed || k == KindRegistryRanged
}

// Specifier is a classified package target. It is built once by Classify and
// never mutated afterwards.
type Specifier struct {
	Raw  string // trimmed, NFC-normalized input
	Kind Kind
	Name string // bare package name; registry names keep their @scope/
	Ref  string // git fragment or registry range/version/tag
}

// InstallOptions configures an installer invocation. The zero value means
// production install with the installer's default save behavior.
type InstallOptions struct {
	// Cwd resolves a relative destination. Defaults to the process cwd.
	Cwd string `yaml:"cwd,omitempty"`

	Production *bool  `yaml:"production,omitempty"` // nil means true
	Save       *bool  `yaml:"save,omitempty"`       // nil means true
	SaveExact  bool   `yaml:"save_exact,omitempty"`
	LogLevel   string `yaml:"loglevel,omitempty"`
	Registry   string `yaml:"registry,omitempty"`
}

// Bool returns a pointer to v, for populating optional InstallOptions fields.
func Bool(v bool) *bool {
	return &v
}

func (o InstallOptions) production() bool {
	return o.Production == nil || *o.Production
}

func (o InstallOptions) save() bool {
	return o.Save == nil || *o.Save
}

// InstalledPackageRef describes a package resolved on disk.
type InstalledPackageRef struct {
	Path    string `json:"path"` // absolute
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// Label renders the ref as name@version, or just name when the manifest
// carries no version.
func (r InstalledPackageRef) Label() string {
	if r.Version == "" {
		return r.Name
	}
	return r.Name + "@" + r.Version
}
