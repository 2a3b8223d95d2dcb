// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package uniforminit

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fixturegen/gen/gentest"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/types"
)

const (
	dir120 = "spec/glsl-1.20/execution/uniform-initializer/"
	dir130 = "spec/glsl-1.30/execution/uniform-initializer/"
)

func TestGenerate(t *testing.T) {
	r := gentest.Check(t, New())
	assert.Len(t, r.Manifest, len(Types)*len(Stages)*len(Forms))
	assert.Len(t, r.Under(dir130), 4*len(Stages)*len(Forms))
	assert.Zero(t, r.Stats.Skipped)

	vs := r.Read(t, dir120+"vs-vec2.shader_test")
	assert.True(t, strings.HasPrefix(vs, "[require]\nGLSL >= 1.20\n\n[vertex shader]\n#version 120\n\nuniform vec2 u = vec2("), vs)
	assert.Contains(t, vs, "\nattribute vec4 piglit_vertex;\nvarying vec4 color;\n")
	assert.Regexp(t, regexp.MustCompile(`\tcolor = u == vec2\([^)]*\) \? `), vs)
	assert.Regexp(t, regexp.MustCompile(`\{\n\tgl_Position = piglit_vertex;\n\tcolor = [^\n]*;\n\}\n`), vs)
	assert.Contains(t, vs, "[test]\ndraw rect -1 -1 2 2\n")

	arr := r.Read(t, dir130+"fs-uvec3-array.shader_test")
	assert.Contains(t, arr, "uniform uvec3 u[2] = uvec3[2](uvec3(")
	assert.Contains(t, arr, "out vec4 piglit_fragcolor;\n\nvoid main()\n{\n\tpiglit_fragcolor = u[0] == uvec3(")
	assert.Contains(t, arr, " && u[1] == uvec3(")

	api := r.Read(t, dir120+"fs-bvec2-set-by-API.shader_test")
	assert.Regexp(t, regexp.MustCompile(`\[test\]\nuniform ivec2 u [01] [01]\ndraw rect`), api)
	decl := regexp.MustCompile(`uniform bvec2 u = (bvec2\([a-z, ]+\));`).FindStringSubmatch(api)
	check := regexp.MustCompile(`gl_FragColor = u == (bvec2\([a-z, ]+\))`).FindStringSubmatch(api)
	require.Len(t, decl, 2)
	require.Len(t, check, 2)
	assert.NotEqual(t, decl[1], check[1])
}

func TestVersion(t *testing.T) {
	assert.Equal(t, glsl.Version120, Version(types.FloatType))
	assert.Equal(t, glsl.Version120, Version(types.Mat3x4))
	assert.Equal(t, glsl.Version130, Version(types.Uvec4))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "vs-int", FileName(glsl.StageVertex, types.IntType, Scalar))
	assert.Equal(t, "fs-mat2x3-set-by-API", FileName(glsl.StageFragment, types.Mat2x3, SetByAPI))
}
