// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package extdefined

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/gen/gentest"
	"github.com/gogpu/fixturegen/glsl"
)

func TestGenerate(t *testing.T) {
	r := gentest.Check(t, New())
	exts, err := LoadExtensions(extensionsYAML)
	require.NoError(t, err)
	assert.Len(t, r.Manifest, len(exts)*len(Stages)*2)

	assert.Equal(t, "// [config]\n// expect_result: pass\n// glsl_version: 1.40\n"+
		"// require_extensions: GL_ARB_draw_instanced GL_ARB_tessellation_shader\n// [end config]\n"+
		"#version 140\n#extension GL_ARB_tessellation_shader : require\n\n"+
		"#if !defined GL_ARB_draw_instanced\n#\terror GL_ARB_draw_instanced is not defined\n#endif\n\n"+
		"void main()\n{\n}\n",
		r.Read(t, "spec/arb_draw_instanced/preprocessor/tcs-defined.tesc"))

	gs := r.Read(t, "spec/arb_draw_instanced/preprocessor/gs-enable.geom")
	assert.Contains(t, gs, "// glsl_version: 1.50\n// require_extensions: GL_ARB_draw_instanced\n")
	assert.Contains(t, gs, "#version 150\n#extension GL_ARB_draw_instanced : enable\n\n#if GL_ARB_draw_instanced != 1\n")

	cs := r.Read(t, "spec/oes_standard_derivatives/preprocessor/cs-enable.comp")
	assert.Contains(t, cs, "// glsl_version: 3.10 es\n")
	assert.Contains(t, cs, "#version 310 es\n#extension GL_OES_standard_derivatives : enable\n")

	// The stage extension under test is enabled rather than required.
	tess := r.Read(t, "spec/arb_tessellation_shader/preprocessor/tes-enable.tese")
	assert.Contains(t, tess, "// require_extensions: GL_ARB_tessellation_shader\n")
	assert.Contains(t, tess, "#version 140\n#extension GL_ARB_tessellation_shader : enable\n\n")
	assert.NotContains(t, tess, ": require")
	assert.Contains(t, r.Read(t, "spec/arb_tessellation_shader/preprocessor/tes-defined.tese"),
		"#version 140\n#extension GL_ARB_tessellation_shader : require\n\n#if !defined")
}

func TestLoadExtensions(t *testing.T) {
	exts, err := LoadExtensions([]byte("extensions:\n  - {name: GL_OES_geometry_shader, version: \"3.10 es\"}\n"))
	require.NoError(t, err)
	assert.Equal(t, []Extension{{Name: "GL_OES_geometry_shader", Version: glsl.VersionES310}}, exts)

	for name, doc := range map[string]string{
		"unknown field": "extensions:\n  - {name: GL_X, version: \"1.10\", stage: vs}\n",
		"no name":       "extensions:\n  - {version: \"1.10\"}\n",
		"bad version":   "extensions:\n  - {name: GL_X, version: \"1.15\"}\n",
	} {
		_, err := LoadExtensions([]byte(doc))
		assert.True(t, fixturegen.IsKind(err, fixturegen.ErrInvalidConfig), "%s: %v", name, err)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "vs-defined.vert", FileName(glsl.StageVertex, false))
	assert.Equal(t, "cs-enable.comp", FileName(glsl.StageCompute, true))
}
