// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package emit

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/glsl"
)

func TestFeature(t *testing.T) {
	tests := []struct{ in, want string }{
		{"GL_ARB_gpu_shader_fp64", "arb_gpu_shader_fp64"},
		{"GL_ARB_uniform_buffer_object", "arb_uniform_buffer_object"},
		{"ARB vertex attrib 64bit", "arb_vertex_attrib_64bit"},
		{"glsl-1.30", "glsl-1.30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Feature(tt.in))
	}
	assert.Equal(t, "glsl-es-3.00", VersionFeature(glsl.VersionES300))
}

func TestPath(t *testing.T) {
	assert.Equal(t,
		"spec/glsl-1.10/execution/built-in-functions/vs-radians-float.shader_test",
		Path("glsl-1.10", Execution, "built-in-functions", "vs-radians-float.shader_test"))
	assert.Equal(t, "spec/arb_foo/preprocessor/vs-defined.vert",
		Path("arb_foo", Preprocessor, "", "vs-defined.vert"))
	assert.Equal(t, "vs-radians-float", Name("vs", "", "radians", "float"))
}

func TestEmit(t *testing.T) {
	dir := t.TempDir()
	var manifest bytes.Buffer
	e := New(Options{Dir: dir, Manifest: &manifest})

	paths := []string{"spec/a/compiler/x.vert", "spec/a/compiler/y.frag", "spec/b/linker/z.shader_test"}
	for _, p := range paths {
		require.NoError(t, e.Emit(p, func() ([]byte, error) { return []byte(p + "\n"), nil }))
	}
	if diff := cmp.Diff(paths, e.Paths()); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, strings.Join(paths, "\n")+"\n", manifest.String())

	for _, p := range paths {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p)))
		require.NoError(t, err)
		assert.Equal(t, p+"\n", string(data))
	}
	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Join(dir, "spec", "a", "compiler"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestEmitNamesOnly(t *testing.T) {
	dir := t.TempDir()
	var manifest bytes.Buffer
	e := New(Options{Dir: dir, NamesOnly: true, Manifest: &manifest})
	require.True(t, e.NamesOnly())

	require.NoError(t, e.Emit("spec/a/compiler/x.vert", func() ([]byte, error) {
		t.Fatal("render called in names-only mode")
		return nil, nil
	}))
	assert.Equal(t, "spec/a/compiler/x.vert\n", manifest.String())

	_, err := os.Stat(filepath.Join(dir, "spec"))
	assert.True(t, os.IsNotExist(err), "names-only mode created %v", err)
}

func TestEmitDuplicate(t *testing.T) {
	e := New(Options{Dir: t.TempDir(), NamesOnly: true})
	require.NoError(t, e.Emit("spec/a/x", nil))
	err := e.Emit("spec/a/x", nil)
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrIOFailure))
	assert.Len(t, e.Paths(), 1)
}

func TestEmitRenderError(t *testing.T) {
	var manifest bytes.Buffer
	e := New(Options{Dir: t.TempDir(), Manifest: &manifest})
	cause := fixturegen.NewError(fixturegen.ErrTemplateFailure, "boom")
	err := e.Emit("spec/a/x", func() ([]byte, error) { return nil, cause })
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrTemplateFailure))
	assert.Empty(t, manifest.String())
}

func TestWriteFileOverwrites(t *testing.T) {
	name := filepath.Join(t.TempDir(), "d", "f.txt")
	require.NoError(t, WriteFile(name, []byte("old")))
	require.NoError(t, WriteFile(name, []byte("new")))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestMkdirAllExisting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x", "y")
	require.NoError(t, MkdirAll(dir))
	require.NoError(t, MkdirAll(dir))
}

func TestWriteFileFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	err := WriteFile(filepath.Join(blocker, "sub", "f.txt"), []byte("x"))
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrIOFailure))
}
