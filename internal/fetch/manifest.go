// ABOUTME: package.json reader for installed packages, decoded with easyjson's lexer
// ABOUTME: Only name, version and description are kept; unknown keys are skipped

package fetch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
)

const manifestFileName = "package.json"

// Manifest is the subset of package.json the resolver cares about.
type Manifest struct {
	Name        string
	Version     string
	Description string
}

// ManifestReader loads the manifest of the package in dir.
type ManifestReader func(dir string) (Manifest, error)

// ReadManifest reads <dir>/package.json. A manifest without a name is not
// a loadable package and is reported as an error.
func ReadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := easyjson.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing %s: %w", filepath.Join(dir, manifestFileName), err)
	}
	if m.Name == "" {
		return Manifest{}, fmt.Errorf("%s has no name field", filepath.Join(dir, manifestFileName))
	}
	return m, nil
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (m *Manifest) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "name":
			m.Name = in.String()
		case "version":
			m.Version = in.String()
		case "description":
			m.Description = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if in.Ok() {
		in.Consumed()
	}
}
