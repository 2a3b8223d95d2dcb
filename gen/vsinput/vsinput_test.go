// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vsinput

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fixturegen/gen/gentest"
	"github.com/gogpu/fixturegen/types"
)

const (
	extDir  = "spec/arb_vertex_attrib_64bit/execution/vs_in/"
	coreDir = "spec/glsl-4.10/execution/vs_in/"
)

func TestGenerate(t *testing.T) {
	r := gentest.Check(t, New())
	require.Equal(t, len(r.Under(extDir)), len(r.Under(coreDir)))

	// 40 components exceed the limit.
	require.Equal(t, 40, Components(types.Dmat3, nil, 2))
	assert.False(t, r.Has(extDir+"vs-input-dmat3-array2-position-first.shader_test"))
	assert.False(t, r.Has(coreDir+"vs-input-dmat3-array2-position-first.shader_test"))
	assert.True(t, r.Has(extDir+"vs-input-dmat3-position-first.shader_test"))
	assert.Positive(t, r.Stats.Skipped)

	src := r.Read(t, extDir+"vs-input-dvec3-vec4-array2-position-last.shader_test")
	assert.True(t, strings.HasPrefix(src, "[require]\nGLSL >= 1.50\nGL_ARB_gpu_shader_fp64\nGL_ARB_vertex_attrib_64bit\n"), src)
	assert.Contains(t, src, "\nin dvec3 value[2];\nin vec4 companion[2];\nin vec3 piglit_vertex;\n"+
		"uniform dvec3 expected_value[2];\nuniform vec4 expected_companion[2];\nout vec4 color;\n")
	assert.Contains(t, src, "if (value[i] != expected_value[i] || companion[i] != expected_companion[i])")
	assert.Contains(t, src, "[vertex data]\nvalue[0]/double/dvec3 value[1]/double/dvec3 "+
		"companion[0]/float/vec4 companion[1]/float/vec4 piglit_vertex/float/vec3\n")
	assert.Contains(t, src, " 0xbf800000 0xbf800000 0x00000000\n")
	assert.Contains(t, src, "draw arrays GL_TRIANGLE_FAN 8 4\nprobe all rgba 0.0 1.0 0.0 1.0\n")

	lines := strings.Split(src, "\n")
	for i, l := range lines {
		if strings.HasPrefix(l, "value[0]/") {
			// 2 x 3 doubles, 2 x 4 floats and the position.
			assert.Len(t, strings.Fields(lines[i+1]), 6+8+3)
		}
	}

	core := r.Read(t, coreDir+"vs-input-dmat2x3-position-first.shader_test")
	assert.Contains(t, core, "#version 410\n\nin vec3 piglit_vertex;\nin dmat2x3 value[1];\n")
	assert.Contains(t, core, "piglit_vertex/float/vec3 value[0]/double/dmat2x3/0 value[0]/double/dmat2x3/1\n")
	assert.NotContains(t, core, "GL_ARB")
}

func TestComponents(t *testing.T) {
	assert.Equal(t, 6, Components(types.DoubleType, nil, 1))
	assert.Equal(t, 2*(8+2)+4, Components(types.Dvec4, types.Ivec2, 2))
	assert.Equal(t, 36, Components(types.Dmat4, nil, 1))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "vs-input-double-position-first", FileName(types.DoubleType, nil, 1, First))
	assert.Equal(t, "vs-input-dmat4x2-uvec3-array2-position-last", FileName(types.Dmat4x2, types.Uvec3, 2, Last))
}
