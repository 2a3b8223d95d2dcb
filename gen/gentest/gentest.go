// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package gentest provides checks shared by the tests of every generator.
//
// To regenerate golden files after intentional changes:
//
//	UPDATE_GOLDEN=1 go test ./gen/...
package gentest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
)

// Result is the outcome of one run into a temporary directory.
type Result struct {
	Dir      string
	Manifest []string
	Stats    gen.Stats
}

// Read returns the content of the fixture at path p.
func (r Result) Read(t testing.TB, p string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, filepath.FromSlash(p)))
	if err != nil {
		t.Fatalf("read %s: %v", p, err)
	}
	return string(data)
}

// Has reports whether p is in the manifest.
func (r Result) Has(p string) bool {
	for _, m := range r.Manifest {
		if m == p {
			return true
		}
	}
	return false
}

// Under returns the manifest entries with the given prefix.
func (r Result) Under(prefix string) []string {
	var out []string
	for _, m := range r.Manifest {
		if strings.HasPrefix(m, prefix) {
			out = append(out, m)
		}
	}
	return out
}

// Run runs g with the default seed into a fresh temporary directory.
func Run(t testing.TB, g gen.Generator, namesOnly bool) Result {
	t.Helper()
	dir := t.TempDir()
	var manifest bytes.Buffer
	e := emit.New(emit.Options{Dir: dir, NamesOnly: namesOnly, Manifest: &manifest})
	st, err := gen.Run(g, gen.NewEnv(0), e)
	if err != nil {
		t.Fatalf("%s: %v", g.Name(), err)
	}
	lines := strings.Split(strings.TrimSuffix(manifest.String(), "\n"), "\n")
	if manifest.Len() == 0 {
		lines = nil
	}
	if diff := cmp.Diff(e.Paths(), lines); diff != "" {
		t.Fatalf("%s: manifest output differs from recorded paths:\n%s", g.Name(), diff)
	}
	return Result{Dir: dir, Manifest: lines, Stats: st}
}

// Check runs g three times and verifies that the run is deterministic,
// that the names-only manifest equals the written manifest and that every
// manifest entry is a written file. It returns the first full run.
func Check(t *testing.T, g gen.Generator) Result {
	t.Helper()
	first := Run(t, g, false)
	if len(first.Manifest) == 0 {
		t.Fatalf("%s: no fixtures emitted", g.Name())
	}
	second := Run(t, g, false)
	names := Run(t, g, true)

	if diff := cmp.Diff(first.Manifest, second.Manifest); diff != "" {
		t.Errorf("%s: manifest not deterministic (-first +second):\n%s", g.Name(), diff)
	}
	if diff := cmp.Diff(first.Manifest, names.Manifest); diff != "" {
		t.Errorf("%s: names-only manifest differs (-full +names-only):\n%s", g.Name(), diff)
	}
	for _, p := range first.Manifest {
		if !strings.HasPrefix(p, emit.Root+"/") {
			t.Errorf("%s: path %s outside %s/", g.Name(), p, emit.Root)
		}
		if a, b := first.Read(t, p), second.Read(t, p); a != b {
			t.Errorf("%s: %s differs between runs", g.Name(), p)
		}
	}
	var files int
	filepath.WalkDir(first.Dir, func(_ string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files++
		}
		return nil
	})
	if files != len(first.Manifest) {
		t.Errorf("%s: %d files written, manifest lists %d", g.Name(), files, len(first.Manifest))
	}
	return first
}

// Golden compares fixture p of r with testdata/golden/<p>.
func Golden(t *testing.T, r Result, p string) {
	t.Helper()
	compareGolden(t, filepath.Join("testdata", "golden", filepath.FromSlash(p)), r.Read(t, p))
}

func compareGolden(t *testing.T, path, actual string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(actual), 0o644); err != nil {
			t.Fatalf("write golden file: %v", err)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Fatalf("golden file missing: %s\nRun with UPDATE_GOLDEN=1 to create.\n\nActual output:\n%s", path, actual)
	}
	if err != nil {
		t.Fatalf("read golden file %s: %v", path, err)
	}
	want := strings.ReplaceAll(string(expected), "\r\n", "\n")
	if diff := cmp.Diff(want, actual); diff != "" {
		t.Errorf("output differs from golden %s (-want +got):\n%s", path, diff)
	}
}
