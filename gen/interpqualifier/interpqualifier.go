// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package interpqualifier generates linker tests that redeclare the
// built-in colour varyings with interpolation qualifiers. A program links
// only when the vertex and fragment qualifiers are the same.
package interpqualifier

import (
	"embed"

	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = tmpl.MustParse(templateFS, "templates/*.tmpl")

// Dir is the fixture directory below the linker test kind.
const Dir = "interpolation-qualifiers"

// Qualifiers lists the interpolation qualifiers; "default" declares none.
var Qualifiers = []string{"flat", "noperspective", "smooth", "default"}

// Variables maps each vertex shader colour output to the fragment shader
// input it feeds.
var Variables = []struct{ VS, FS string }{
	{"gl_FrontColor", "gl_Color"},
	{"gl_BackColor", "gl_Color"},
	{"gl_FrontSecondaryColor", "gl_SecondaryColor"},
	{"gl_BackSecondaryColor", "gl_SecondaryColor"},
}

// Generator is the interpolation_qualifier generator.
type Generator struct {
	fs []string
}

// New returns the generator over every fragment shader qualifier.
func New() Generator { return Generator{fs: Qualifiers} }

// WithFragmentQualifiers restricts the fragment shader qualifiers.
func WithFragmentQualifiers(qs ...string) Generator { return Generator{fs: qs} }

// Name implements gen.Generator.
func (Generator) Name() string { return "interpolation_qualifier" }

type record struct {
	tmpl.Header
	VSQualifier, FSQualifier string
	Var, FSVar               string
}

// Generate implements gen.Generator. The vertex qualifier varies slowest,
// then the variable, then the fragment qualifier.
func (g Generator) Generate(_ *gen.Env, yield gen.Yield) error {
	for _, vq := range Qualifiers {
		for _, v := range Variables {
			for _, fq := range g.fs {
				if err := yield(fixture(vq, v.VS, v.FS, fq)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func qualifier(q string) string {
	if q == "default" {
		return ""
	}
	return q
}

func fixture(vq, vsVar, fsVar, fq string) (gen.Fixture, error) {
	rec := record{
		Header:      tmpl.Header{Version: glsl.Version130, Pass: vq == fq},
		VSQualifier: qualifier(vq),
		FSQualifier: qualifier(fq),
		Var:         vsVar,
		FSVar:       fsVar,
	}
	name := emit.Name("vs", vq, vsVar, "fs", fq) + ".shader_test"
	return gen.Fixture{
		Path:   emit.Path(emit.VersionFeature(rec.Version), emit.Linker, Dir, name),
		Render: func() ([]byte, error) { return templates.Render("shader_test", rec) },
	}, nil
}
