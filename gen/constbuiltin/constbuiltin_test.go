// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package constbuiltin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/gen/gentest"
)

const dir = "spec/glsl-1.20/execution/built-in-functions/"

func TestGenerate(t *testing.T) {
	r := gentest.Check(t, New())

	equal := r.Read(t, dir+"const-equal-1.shader_test")
	assert.Contains(t, equal, "\tconst bvec3 result = equal(ivec3(0, 8, 89), ivec3(4, -7, 33));\n"+
		"\tconst bvec3 expected = bvec3(false, false, false);\n"+
		"\tgl_FragColor = all(equal(result, expected)) ? ")
	assert.NotContains(t, equal, "tolerance")

	notEqual := r.Read(t, dir+"const-notEqual-1.shader_test")
	assert.Contains(t, notEqual, "const bvec3 expected = bvec3(true, true, true);")

	assert.True(t, r.Has(dir+"const-equal-2.shader_test"))
	assert.True(t, r.Has(dir+"const-op-add-2.shader_test"))
	assert.Contains(t, r.Read(t, dir+"const-op-div-1.shader_test"), "const ivec2 expected = ivec2(4, -4);")

	gentest.Golden(t, r, dir+"const-radians-1.shader_test")
}

func TestLoadCases(t *testing.T) {
	cases, err := LoadCases(casesYAML)
	require.NoError(t, err)
	require.NotEmpty(t, cases)
	assert.Equal(t, []string{"equal", "notEqual"}, cases[0].Ops)
	assert.Equal(t, Arg{Type: "ivec3", Value: []string{"0", "8", "89"}}, cases[0].Args[0])

	for _, bad := range []string{
		"cases: [{ops: [abs]}]",
		"cases: [{ops: [abs], args: [{type: float, value: [1]}], extra: 1}]",
		"cases: {",
	} {
		_, err := LoadCases([]byte(bad))
		assert.True(t, fixturegen.IsKind(err, fixturegen.ErrInvalidConfig), bad)
	}
}

func TestErrors(t *testing.T) {
	run := func(c Case) error {
		_, err := gen.Run(WithCases([]Case{c}), gen.NewEnv(0), emit.New(emit.Options{NamesOnly: true}))
		return err
	}
	err := run(Case{Ops: []string{"noSuchFunction"}, Args: []Arg{{Type: "float", Value: []string{"1"}}}})
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrUnknownSignature), "%v", err)

	err = run(Case{Ops: []string{"abs"}, Args: []Arg{{Type: "vec5", Value: []string{"1"}}}})
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrInvalidConfig), "%v", err)

	err = run(Case{Ops: []string{"abs"}, Args: []Arg{{Type: "vec2", Value: []string{"1", "2", "3"}}}})
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrInvalidConfig), "%v", err)

	// Division by zero folds to nothing and is skipped.
	err = run(Case{Ops: []string{"op-div"}, Args: []Arg{
		{Type: "int", Value: []string{"1"}}, {Type: "int", Value: []string{"0"}},
	}})
	assert.NoError(t, err)
}
