// ABOUTME: Tests for FetchAll: ordered results, bounded concurrency and first-error return
// ABOUTME: A blocking spawner measures how many installs run at once

package fetch

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchAll_KeepsOrder(t *testing.T) {
	t.Parallel()

	fs := newMemFS()
	names := []string{"alpha", "bravo", "charlie", "delta"}
	reqs := make([]Request, 0, len(names))
	for _, n := range names {
		fs.installs[n] = Manifest{Name: n, Version: "1.0.0"}
		reqs = append(reqs, Request{Target: n, Dest: "/proj"})
	}

	refs, err := fs.fetcher().FetchAll(context.Background(), reqs, 2)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(refs) != len(names) {
		t.Fatalf("len = %d; want %d", len(refs), len(names))
	}
	for i, n := range names {
		if want := filepath.Join("/proj", "node_modules", n); refs[i].Path != want {
			t.Errorf("refs[%d].Path = %q; want %q", i, refs[i].Path, want)
		}
	}
}

func TestFetchAll_RespectsLimit(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32
	spawner := SpawnFunc(func(_ context.Context, _ string, args []string, dir string) (SpawnResult, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		running.Add(-1)
		return SpawnResult{}, writeManifestFile(filepath.Join(dir, modulesDir, args[1]), args[1], "1.0.0")
	})

	root := t.TempDir()
	var reqs []Request
	for _, n := range []string{"a", "b", "c", "d", "e", "f"} {
		reqs = append(reqs, Request{Target: n, Dest: root})
	}

	if _, err := New(WithSpawner(spawner)).FetchAll(context.Background(), reqs, 2); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if p := peak.Load(); p > 2 {
		t.Errorf("peak concurrency = %d; want <= 2", p)
	}
}

func TestFetchAll_ReturnsFirstError(t *testing.T) {
	t.Parallel()

	fs := newMemFS()
	fs.installs["good"] = Manifest{Name: "good", Version: "1.0.0"}

	refs, err := fs.fetcher().FetchAll(context.Background(), []Request{
		{Target: "good", Dest: "/proj"},
		{Target: "not a package", Dest: "/proj"},
	}, 0)
	if !errors.Is(err, ErrInvalidSpecifier) {
		t.Fatalf("err = %v; want ErrInvalidSpecifier", err)
	}
	if refs != nil {
		t.Errorf("refs = %+v; want nil on error", refs)
	}
}

func TestFetchAll_Empty(t *testing.T) {
	t.Parallel()

	refs, err := New().FetchAll(context.Background(), nil, 4)
	if err != nil || len(refs) != 0 {
		t.Errorf("FetchAll(nil) = %v, %v", refs, err)
	}
}
