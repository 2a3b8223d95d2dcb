// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shaderprecision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fixturegen/builtin"
	"github.com/gogpu/fixturegen/gen/gentest"
	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/types"
)

const dir = "spec/arb_shader_precision/execution/"

func TestGenerate(t *testing.T) {
	r := gentest.Check(t, New())
	require.NotEmpty(t, r.Manifest)
	for _, p := range r.Manifest {
		assert.True(t, strings.HasPrefix(p, dir), p)
		assert.NotContains(t, p, "mat", p)
	}

	src := r.Read(t, dir+"fs-op-div-float-float.shader_test")
	assert.True(t, strings.HasPrefix(src, "[require]\nGLSL >= 4.00\nGL_ARB_shader_precision\n"), src)
	assert.Contains(t, src, "uniform float arg0;\nuniform float arg1;\nuniform uint expected;\nuniform uint tolerance;\n")
	assert.Contains(t, src, "\tfloat result = (arg0 / arg1);\n")
	assert.Contains(t, src, "\tif (ulp_distance(result, uintBitsToFloat(expected)) > tolerance)\n")
	assert.Contains(t, src, "uniform uint tolerance 3\n")
	assert.Contains(t, src, "\tpiglit_fragcolor = outcome;\n")

	vec := r.Read(t, dir+"gs-sqrt-vec2.shader_test")
	assert.Contains(t, vec, "[geometry shader]\n#version 400\n#extension GL_ARB_shader_precision : require\n")
	assert.Contains(t, vec, "uniform uvec2 expected;\n")
	assert.Contains(t, vec, "ulp_distance(result[1], uintBitsToFloat(expected[1])) > tolerance[1]")

	add := r.Read(t, dir+"vs-op-add-vec3-float.shader_test")
	assert.Contains(t, add, "uniform uvec3 tolerance 0 0 0\n")
	assert.Contains(t, add, "\tcolor = outcome;\n")
}

func TestSupported(t *testing.T) {
	cat := builtin.GLSL()
	sig, _, err := cat.Lookup("op-mult", types.Mat2, types.Vec2)
	require.NoError(t, err)
	assert.False(t, Supported(sig))

	sig, _, err = cat.Lookup("pow", types.Vec3, types.Vec3)
	require.NoError(t, err)
	assert.True(t, Supported(sig))
}

func TestULPs(t *testing.T) {
	tv := builtin.TestVector{
		Result:    types.FloatVec(1, 0),
		Tolerance: numeric.Tolerance{ULPs: []float64{2.5, 0}, Abs: []float64{0, 1}},
	}
	got := ULPs(tv)
	assert.Equal(t, uint64(3), got[0])
	// An absolute bound at zero exceeds every representable distance.
	assert.Equal(t, uint64(0xffffffff), got[1])
}
