// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shaderprecision generates execution tests of the precision
// guarantees of GL_ARB_shader_precision. Expected results travel as uint
// bit patterns and the shader compares them by ULP distance.
package shaderprecision

import (
	"embed"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/builtin"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/tmpl"
	"github.com/gogpu/fixturegen/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = tmpl.MustParse(templateFS, "templates/*.tmpl")

// ExtShaderPrecision is the tested extension.
const ExtShaderPrecision = "GL_ARB_shader_precision"

// Ops are the operations with a precision requirement.
var Ops = map[string]bool{
	"op-add": true, "op-sub": true, "op-mult": true, "op-div": true,
	"exp": true, "exp2": true, "log": true, "log2": true, "pow": true,
	"sqrt": true, "inversesqrt": true,
}

// Stages lists the tested stages in enumeration order.
var Stages = []glsl.Stage{glsl.StageVertex, glsl.StageFragment, glsl.StageGeometry}

// Generator is the shader_precision generator.
type Generator struct{}

// New returns the generator.
func New() Generator { return Generator{} }

// Name implements gen.Generator.
func (Generator) Name() string { return "shader_precision" }

// Generate implements gen.Generator.
func (Generator) Generate(env *gen.Env, yield gen.Yield) error {
	cat, err := env.Catalogue("glsl")
	if err != nil {
		return err
	}
	for _, sig := range cat.Signatures() {
		if !Ops[sig.Name] || !Supported(sig) {
			continue
		}
		vectors := cat.Vectors(sig)
		for _, stage := range Stages {
			if err := yield(fixture(sig, vectors, stage)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Supported reports whether every argument and the result of sig are float
// scalars or vectors.
func Supported(sig builtin.Signature) bool {
	for _, t := range append([]*types.Type{sig.Result}, sig.Args...) {
		if t.Base() != types.Float || t.IsMatrix() {
			return false
		}
	}
	return true
}

// ULPs returns the allowed ULP distance of each component of tv's result.
// Absolute bounds are converted at the expected value and every bound is
// clamped to the uint range.
func ULPs(tv builtin.TestVector) []uint64 {
	expected := tv.Result.Flatten()
	out := make([]uint64, len(expected))
	for i, e := range expected {
		u := tv.Tolerance.ULPAt(i)
		if a := tv.Tolerance.AbsAt(i); a > 0 {
			u = math.Max(u, a/numeric.ULP32(e))
		}
		out[i] = uint64(math.Min(math.Ceil(u), math.MaxUint32))
	}
	return out
}

type component struct {
	Result, Expected, Tolerance string
}

type vector struct {
	Args      []types.Value
	Result    types.Value
	Tolerance string
}

type record struct {
	tmpl.Header
	Sig        builtin.Signature
	Call       string
	Bits       string
	Components []component
	Vectors    []vector
	VS, GS, FS bool
}

// FileName returns the fixture base name, e.g. "fs-op-div-float-float".
func FileName(stage glsl.Stage, sig builtin.Signature) string {
	return emit.Name(stage.Short(), sig.Name, sig.ArgSuffix())
}

func fixture(sig builtin.Signature, vectors []builtin.TestVector, stage glsl.Stage) (gen.Fixture, error) {
	n := sig.Result.Components()
	rec := record{
		Header: tmpl.Header{Version: glsl.Version400, Extensions: []string{ExtShaderPrecision}},
		Sig:    sig,
		Call:   sig.Invocation(argNames(len(sig.Args))...),
		Bits:   types.Vector(types.Uint, n).Name(),
		VS:     stage == glsl.StageVertex,
		GS:     stage == glsl.StageGeometry,
		FS:     stage == glsl.StageFragment,
	}
	for i := 0; i < n; i++ {
		index := ""
		if n > 1 {
			index = "[" + strconv.Itoa(i) + "]"
		}
		rec.Components = append(rec.Components, component{
			Result:    "result" + index,
			Expected:  "expected" + index,
			Tolerance: "tolerance" + index,
		})
	}
	for _, tv := range vectors {
		if !tv.IsFinite() {
			continue
		}
		ulps := ULPs(tv)
		parts := make([]string, len(ulps))
		for i, u := range ulps {
			parts[i] = strconv.FormatUint(u, 10)
		}
		rec.Vectors = append(rec.Vectors, vector{Args: tv.Args, Result: tv.Result, Tolerance: strings.Join(parts, " ")})
	}
	if len(rec.Vectors) == 0 {
		return gen.Fixture{}, fixturegen.Infeasible("%s has no finite test vectors", sig.Key())
	}
	p := emit.Path(emit.Feature(ExtShaderPrecision), emit.Execution, "", FileName(stage, sig)+".shader_test")
	return gen.Fixture{
		Path:   p,
		Render: func() ([]byte, error) { return templates.Render("shader_test", rec) },
	}, nil
}

func argNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "arg" + strconv.Itoa(i)
	}
	return names
}
