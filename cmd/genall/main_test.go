// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/gen"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "genall.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "output: out\njobs: 3\nseed: 7\nnames_only: true\ngenerators: [outerproduct, vs_input]\n"))
	require.NoError(t, err)
	want := Config{Output: "out", Jobs: 3, Seed: 7, NamesOnly: true, Generators: []string{"outerproduct", "vs_input"}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	_, err = LoadConfig(writeConfig(t, "output: out\nthreads: 3\n"))
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrInvalidConfig), "%v", err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrIOFailure), "%v", err)
}

func TestValidate(t *testing.T) {
	gens, err := DefaultConfig().Validate()
	require.NoError(t, err)
	assert.Len(t, gens, 13)

	for name, cfg := range map[string]Config{
		"no output": {Jobs: 1},
		"no jobs":   {Output: "."},
		"unknown":   {Output: ".", Jobs: 1, Generators: []string{"nope"}},
		"twice":     {Output: ".", Jobs: 1, Generators: []string{"outerproduct", "outerproduct"}},
	} {
		_, err := cfg.Validate()
		assert.True(t, fixturegen.IsKind(err, fixturegen.ErrInvalidConfig), "%s: %v", name, err)
	}
}

func TestRunWithConfig(t *testing.T) {
	out := t.TempDir()
	cfgPath := writeConfig(t, "output: "+out+"\njobs: 2\ngenerators: [outerproduct, extensions_defined]\n")
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-config", cfgPath}, &stdout, &stderr), stderr.String())

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "spec/glsl-1.20/compiler/built-in-functions/outerProduct-"), lines[0])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "spec/oes_tessellation_shader/preprocessor/"), lines[len(lines)-1])
	for _, p := range lines {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(p)))
		assert.NoError(t, err, p)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	out := t.TempDir()
	cfgPath := writeConfig(t, "output: "+out+"\njobs: 1\ngenerators: [outerproduct]\n")
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-config", cfgPath, "-names-only"}, &stdout, &stderr), stderr.String())
	assert.NotEmpty(t, stdout.String())
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"positional"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-j", "0", "-names-only"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

type fixed struct {
	name  string
	paths []string
}

func (f fixed) Name() string { return f.name }

func (f fixed) Generate(_ *gen.Env, yield gen.Yield) error {
	for _, p := range f.paths {
		if err := yield(gen.Fixture{Path: p, Render: func() ([]byte, error) { return nil, nil }}, nil); err != nil {
			return err
		}
	}
	return nil
}

func TestDuplicateAcrossGenerators(t *testing.T) {
	out := t.TempDir()
	gens := []gen.Generator{
		fixed{"first", []string{"spec/a.vert", "spec/b.vert"}},
		fixed{"second", []string{"spec/c.vert", "spec/b.vert"}},
	}
	cfg := Config{Output: out, Jobs: 2}
	paths, err := runAll(context.Background(), cfg, gens, true)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"spec/a.vert", "spec/b.vert"}, {"spec/c.vert", "spec/b.vert"}}, paths)

	_, err = checkPaths(gens, paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spec/b.vert is produced by both first and second")
	entries, _ := os.ReadDir(out)
	assert.Empty(t, entries)
}
