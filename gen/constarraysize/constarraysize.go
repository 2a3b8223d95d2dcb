// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package constarraysize generates parser tests that evaluate built-in
// functions in constant expressions used as array sizes.
//
// Every test vector becomes a declaration
//
//	float[<result matches expected> ? 1 : -1] arrayN;
//
// so a compiler that folds the call to a wrong value rejects the shader
// with a negative array size.
package constarraysize

import (
	"embed"
	"strconv"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/builtin"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = tmpl.MustParse(templateFS, "templates/*.tmpl")

// Stages lists the tested stages in enumeration order.
var Stages = []glsl.Stage{glsl.StageVertex, glsl.StageFragment, glsl.StageGeometry}

// Generator is the constant_array_size generator.
type Generator struct{}

// New returns the generator.
func New() Generator { return Generator{} }

// Name implements gen.Generator.
func (Generator) Name() string { return "constant_array_size" }

// Generate implements gen.Generator.
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

// minVersion is the first version with the float[N] array syntax and
// built-in calls in constant expressions.
func minVersion(es bool) glsl.Version {
	if es {
		return glsl.VersionES300
	}
	return glsl.Version120
}

type record struct {
	tmpl.Header
	Decls              []string
	Fragment, Geometry bool
}

// Declarations returns one array declaration per finite vector.
func Declarations(sig builtin.Signature, vectors []builtin.TestVector) []string {
	var decls []string
	width := sig.Width()
	for _, tv := range vectors {
		if !tv.IsFinite() {
			continue
		}
		exprs := make([]string, len(tv.Args))
		for i, a := range tv.Args {
			exprs[i] = tmpl.Literal(a)
		}
		var tol string
		if sig.Result.Base().IsFloat() {
			tol = tmpl.FloatLiteral(tv.Tolerance.Scalar(tv.Result.Flatten(), width), width)
		}
		cond := tmpl.CompareExpr(sig.Result, sig.Invocation(exprs...), tmpl.Literal(tv.Result), tol)
		decls = append(decls, "float["+cond+" ? 1 : -1] array"+strconv.Itoa(len(decls))+";")
	}
	return decls
}

func fixture(sig builtin.Signature, vectors []builtin.TestVector, stage glsl.Stage) (gen.Fixture, error) {
	v := glsl.ForStage(stage, glsl.Max(sig.Version, minVersion(sig.Version.ES)))
	if v.ES && stage == glsl.StageGeometry {
		return gen.Fixture{}, fixturegen.Infeasible("%s: no geometry shaders in %s", sig.Key(), v)
	}
	if !v.ES && v.Number() > 150 {
		return gen.Fixture{}, fixturegen.Infeasible("%s: %s needs %s", sig.Key(), stage.Section(), v)
	}
	decls := Declarations(sig, vectors)
	if len(decls) == 0 {
		return gen.Fixture{}, fixturegen.Infeasible("%s has no finite test vectors", sig.Key())
	}
	var exts []string
	feature := emit.VersionFeature(v)
	if sig.Extension != "" {
		exts = []string{sig.Extension}
		feature = emit.Feature(sig.Extension)
	}
	rec := record{
		Header:   tmpl.Header{Version: v, Extensions: exts, Pass: true},
		Decls:    decls,
		Fragment: stage == glsl.StageFragment,
		Geometry: stage == glsl.StageGeometry,
	}
	name := emit.Name(stage.Short(), sig.Name, sig.ArgSuffix()) + stage.Ext()
	return gen.Fixture{
		Path:   emit.Path(feature, emit.Compiler, "built-in-functions", name),
		Render: func() ([]byte, error) { return templates.Render("parser", rec) },
	}, nil
}
