// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package builtinuniform generates execution tests of built-in functions
// and operators whose arguments are loaded through uniforms.
//
// Each signature of each catalogue is tested in the vertex, fragment and
// geometry stages. The shader compares the result with the expected value
// and writes green on success, one pixel per test vector.
package builtinuniform

import (
	"embed"
	"strconv"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/builtin"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/tmpl"
	"github.com/gogpu/fixturegen/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = tmpl.MustParse(templateFS, "templates/*.tmpl")

// Dir is the directory below the test kind holding every fixture.
const Dir = "built-in-functions"

// Stages lists the tested stages in enumeration order.
var Stages = []glsl.Stage{glsl.StageVertex, glsl.StageFragment, glsl.StageGeometry}

// Generator is the builtin_uniform generator.
type Generator struct{}

// New returns the generator.
func New() Generator { return Generator{} }

// Name implements gen.Generator.
func (Generator) Name() string { return "builtin_uniform" }

// Generate implements gen.Generator. Catalogues, signatures and stages are
// enumerated in that order.
func (Generator) Generate(env *gen.Env, yield gen.Yield) error {
	for _, cat := range env.Catalogues() {
		for _, sig := range cat.Signatures() {
			vectors := cat.Vectors(sig)
			for _, stage := range Stages {
				if err := yield(fixture(sig, vectors, stage)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Target returns the version and extensions a fixture of sig in stage
// requires, or an infeasible error when the stage is not available in the
// signature's language family.
func Target(sig builtin.Signature, stage glsl.Stage) (glsl.Version, []string, error) {
	v := glsl.ForStage(stage, sig.Version)
	if v.Number() > maxVersion(v.ES) {
		return glsl.Version{}, nil, fixturegen.Infeasible("%s needs %s for %s", sig.Key(), v, stage.Section())
	}
	var exts []string
	if sig.Extension != "" {
		exts = append(exts, sig.Extension)
	}
	return v, exts, nil
}

// maxVersion bounds the versions covered by the catalogues.
func maxVersion(es bool) int {
	if es {
		return 300
	}
	return 150
}

// Feature returns the feature directory of a fixture.
func Feature(v glsl.Version, exts []string) string {
	if len(exts) > 0 {
		return emit.Feature(exts[0])
	}
	return emit.VersionFeature(v)
}

// FileName returns the fixture base name without extension, e.g.
// "vs-radians-float".
func FileName(stage glsl.Stage, sig builtin.Signature) string {
	return emit.Name(stage.Short(), sig.Name, sig.ArgSuffix())
}

type vector struct {
	Args      []types.Value
	Result    types.Value
	Tolerance string
}

type record struct {
	tmpl.Header
	Sig           builtin.Signature
	Call          string
	Check         string
	Tolerant      bool
	ToleranceType string
	Vectors       []vector
	VS, GS, FS    bool
}

func fixture(sig builtin.Signature, vectors []builtin.TestVector, stage glsl.Stage) (gen.Fixture, error) {
	v, exts, err := Target(sig, stage)
	if err != nil {
		return gen.Fixture{}, err
	}
	rec := record{
		Header:   tmpl.Header{Version: v, Extensions: exts},
		Sig:      sig,
		Call:     sig.Invocation(argNames(len(sig.Args))...),
		Check:    tmpl.Compare(sig.Result),
		Tolerant: sig.Result.Base().IsFloat(),
		VS:       stage == glsl.StageVertex,
		GS:       stage == glsl.StageGeometry,
		FS:       stage == glsl.StageFragment,
	}
	rec.ToleranceType = sig.Result.Scalar().Name()
	for _, tv := range vectors {
		if !tv.IsFinite() {
			continue
		}
		vec := vector{Args: tv.Args, Result: tv.Result}
		if rec.Tolerant {
			tol := tv.Tolerance.Scalar(tv.Result.Flatten(), sig.Width())
			vec.Tolerance = strconv.FormatFloat(tol, 'g', -1, 64)
		}
		rec.Vectors = append(rec.Vectors, vec)
	}
	if len(rec.Vectors) == 0 {
		return gen.Fixture{}, fixturegen.Infeasible("%s has no finite test vectors", sig.Key())
	}
	p := emit.Path(Feature(v, exts), emit.Execution, Dir, FileName(stage, sig)+".shader_test")
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
