// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package builtinuniform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/builtin"
	"github.com/gogpu/fixturegen/gen/gentest"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/types"
)

func TestGenerate(t *testing.T) {
	r := gentest.Check(t, New())

	// Scalar built-in in the vertex stage.
	const radians = "spec/glsl-1.10/execution/built-in-functions/vs-radians-float.shader_test"
	require.True(t, r.Has(radians))
	src := r.Read(t, radians)
	assert.True(t, strings.HasPrefix(src, "[require]\nGLSL >= 1.10\n\n[vertex shader]\n#version 110\n"+
		"uniform float arg0;\nuniform float expected;\nuniform float tolerance;\n"+
		"attribute vec4 piglit_vertex;\nvarying vec4 color;\n\nvoid main()\n{\n"+
		"\tgl_Position = piglit_vertex;\n\tfloat result = radians(arg0);\n"), src)
	assert.Contains(t, src, "uniform float arg0 180.0\nuniform float expected 3.1415927\n"+
		"uniform float tolerance 5.960464477539062e-07\ndraw rect ortho 3 0 1 1\nprobe rgba 3 0 0.0 1.0 0.0 1.0\n")
	assert.Contains(t, src, "[fragment shader]\n#version 110\nvarying vec4 color;\n")
	assert.NotContains(t, src, "Inf")

	// Stage minimums raise the feature directory.
	assert.True(t, r.Has("spec/glsl-1.30/execution/built-in-functions/vs-trunc-float.shader_test"))
	assert.True(t, r.Has("spec/glsl-1.50/execution/built-in-functions/gs-trunc-float.shader_test"))
	assert.True(t, r.Has("spec/glsl-1.50/execution/built-in-functions/gs-radians-float.shader_test"))
	assert.Contains(t, r.Read(t, "spec/glsl-1.30/execution/built-in-functions/fs-trunc-float.shader_test"),
		"out vec4 piglit_fragcolor;")

	// Double precision fixtures live under the extension.
	fp64 := "spec/arb_gpu_shader_fp64/execution/built-in-functions/gs-sqrt-double.shader_test"
	require.True(t, r.Has(fp64))
	src = r.Read(t, fp64)
	assert.Contains(t, src, "[require]\nGLSL >= 1.50\nGL_ARB_gpu_shader_fp64\n")
	assert.Contains(t, src, "#version 150\n#extension GL_ARB_gpu_shader_fp64 : require\n")
	assert.Contains(t, src, "uniform double tolerance;")

	// No geometry shaders for GLSL ES 1.00 and 3.00.
	for _, p := range r.Under("spec/glsl-es-") {
		assert.NotContains(t, p, "/gs-")
	}
	assert.True(t, r.Has("spec/glsl-es-1.00/execution/built-in-functions/fs-radians-float.shader_test"))
	assert.Contains(t, r.Read(t, "spec/glsl-es-3.00/execution/built-in-functions/vs-trunc-float.shader_test"),
		"#version 300 es\nprecision highp float;\nprecision highp int;\n")
	assert.Positive(t, r.Stats.Skipped)
}

func TestTarget(t *testing.T) {
	cat := builtin.GLSLES()
	sig, _, err := cat.Lookup("radians", types.FloatType)
	require.NoError(t, err)

	v, exts, err := Target(sig, glsl.StageVertex)
	require.NoError(t, err)
	assert.Equal(t, glsl.VersionES100, v)
	assert.Empty(t, exts)

	_, _, err = Target(sig, glsl.StageGeometry)
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrInfeasibleFixture))
}

func TestFileName(t *testing.T) {
	sig, _, err := builtin.GLSL().Lookup("op-add", types.Vec2, types.FloatType)
	require.NoError(t, err)
	assert.Equal(t, "fs-op-add-vec2-float", FileName(glsl.StageFragment, sig))
}
