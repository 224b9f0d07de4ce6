// ABOUTME: Tests for listing installed packages and fuzzy name suggestions
// ABOUTME: Scoped directories, dotfiles, symlinks and broken packages are covered

package fetch

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestList(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, "zeta", "1.0.0")
	writeManifest(t, root, "alpha", "2.0.0")
	writeManifest(t, root, "@scope/pkg", "0.1.0")

	nm := filepath.Join(root, "node_modules")
	if err := os.MkdirAll(filepath.Join(nm, ".bin"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(nm, "broken"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nm, ".package-lock.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	linked := filepath.Join(t.TempDir(), "linked")
	if err := writeManifestFile(linked, "linked", "3.0.0"); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(linked, filepath.Join(nm, "linked")); err != nil {
		t.Fatal(err)
	}

	refs, err := New().List(root)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var names []string
	for _, r := range refs {
		names = append(names, r.Name)
	}
	want := []string{"@scope/pkg", "alpha", "linked", "zeta"}
	if !slices.Equal(names, want) {
		t.Errorf("names = %q; want %q", names, want)
	}
	if refs[0].Path != filepath.Join(nm, "@scope", "pkg") || refs[0].Version != "0.1.0" {
		t.Errorf("scoped ref = %+v", refs[0])
	}
}

func TestList_NoModulesDir(t *testing.T) {
	t.Parallel()

	refs, err := New().List(t.TempDir())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("refs = %+v; want none", refs)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	candidates := []string{"lodash", "lodash-es", "left-pad", "cordova-plugin-device", "@scope/pkg"}
	tests := []struct {
		name  string
		query string
		limit int
		check func(t *testing.T, got []string)
	}{
		{
			name:  "typo finds close match",
			query: "ldsh",
			limit: 3,
			check: func(t *testing.T, got []string) {
				if !slices.Contains(got, "lodash") {
					t.Errorf("got %q; want lodash", got)
				}
			},
		},
		{
			name:  "exact name excluded",
			query: "lodash",
			limit: 5,
			check: func(t *testing.T, got []string) {
				if slices.Contains(got, "lodash") {
					t.Errorf("got %q; exact match should be excluded", got)
				}
				if !slices.Contains(got, "lodash-es") {
					t.Errorf("got %q; want lodash-es", got)
				}
			},
		},
		{
			name:  "limit applies",
			query: "o",
			limit: 2,
			check: func(t *testing.T, got []string) {
				if len(got) > 2 {
					t.Errorf("got %d suggestions; want <= 2", len(got))
				}
			},
		},
		{
			name:  "no match",
			query: "zzzz",
			limit: 3,
			check: func(t *testing.T, got []string) {
				if len(got) != 0 {
					t.Errorf("got %q; want none", got)
				}
			},
		},
		{
			name:  "empty query",
			query: "",
			limit: 3,
			check: func(t *testing.T, got []string) {
				if got != nil {
					t.Errorf("got %q; want nil", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Suggest(tt.query, candidates, tt.limit))
		})
	}
}

func TestSuggest_ExactMatchDoesNotUseASlot(t *testing.T) {
	t.Parallel()

	got := Suggest("lodash", []string{"lodash", "lodash.get", "lodash.set", "lodash-es"}, 3)
	if len(got) != 3 {
		t.Fatalf("got %q; want 3 suggestions", got)
	}
	if slices.Contains(got, "lodash") {
		t.Errorf("got %q; exact match should be excluded", got)
	}
}
