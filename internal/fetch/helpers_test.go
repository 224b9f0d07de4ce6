// ABOUTME: Shared test fakes: a recording Spawner and package.json fixtures
// ABOUTME: The fake can "install" by writing a manifest, mimicking npm's layout

package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

type spawnCall struct {
	Command string
	Args    []string
	Dir     string
}

// fakeSpawner records calls and returns a canned result. When install is
// set, each call writes node_modules/<install>/package.json under the dir.
type fakeSpawner struct {
	mu    sync.Mutex
	calls []spawnCall

	result  SpawnResult
	err     error
	install string
	version string
}

func (s *fakeSpawner) Spawn(_ context.Context, command string, args []string, dir string) (SpawnResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, spawnCall{Command: command, Args: append([]string(nil), args...), Dir: dir})
	s.mu.Unlock()

	if s.err != nil {
		return SpawnResult{ExitCode: -1}, s.err
	}
	if s.install != "" && s.result.ExitCode == 0 {
		version := s.version
		if version == "" {
			version = "1.0.0"
		}
		if err := writeManifestFile(filepath.Join(dir, modulesDir, filepath.FromSlash(s.install)), s.install, version); err != nil {
			return SpawnResult{ExitCode: -1}, err
		}
	}
	return s.result, nil
}

func (s *fakeSpawner) Calls() []spawnCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]spawnCall(nil), s.calls...)
}

// writeManifest creates <root>/node_modules/<name>/package.json.
func writeManifest(t *testing.T, root, name, version string) string {
	t.Helper()
	dir := filepath.Join(root, modulesDir, filepath.FromSlash(name))
	if err := writeManifestFile(dir, name, version); err != nil {
		t.Fatal(err)
	}
	return dir
}

func writeManifestFile(dir, name, version string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data := fmt.Sprintf(`{"name": %q, "version": %q, "main": "index.js"}`, name, version)
	return os.WriteFile(filepath.Join(dir, manifestFileName), []byte(data), 0o644)
}

func equalArgs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
