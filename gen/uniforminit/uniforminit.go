// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package uniforminit generates execution tests of uniforms declared with
// initializers, including initialized arrays and initializers overridden
// through the API.
package uniforminit

import (
	"embed"
	"strings"

	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/tmpl"
	"github.com/gogpu/fixturegen/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = tmpl.MustParse(templateFS, "templates/*.tmpl")

// Dir is the fixture directory below the execution test kind.
const Dir = "uniform-initializer"

// Form selects how the initialized uniform is declared and used.
type Form string

const (
	Scalar   Form = ""
	Array    Form = "array"
	SetByAPI Form = "set-by-API"
)

// Axes, slowest first.
var (
	Types  = initTypes()
	Stages = []glsl.Stage{glsl.StageVertex, glsl.StageFragment}
	Forms  = []Form{Scalar, Array, SetByAPI}
)

func initTypes() []*types.Type {
	var out []*types.Type
	for _, b := range []types.BaseType{types.Float, types.Int, types.Uint, types.Bool} {
		out = append(out, types.Family(b)...)
	}
	return append(out, types.Matrices(types.Float)...)
}

// ArraySize is the element count of initialized arrays.
const ArraySize = 2

// Version returns the version a fixture of t needs: 1.20 introduced
// uniform initializers.
func Version(t *types.Type) glsl.Version {
	v, _ := t.MinVersion(false)
	return glsl.Max(glsl.Version120, v)
}

// Generator is the uniform_initializer generator.
type Generator struct{}

// New returns the generator.
func New() Generator { return Generator{} }

// Name implements gen.Generator.
func (Generator) Name() string { return "uniform_initializer" }

// Generate implements gen.Generator.
func (Generator) Generate(env *gen.Env, yield gen.Yield) error {
	for _, t := range Types {
		for _, st := range Stages {
			for _, f := range Forms {
				if err := yield(fixture(env, t, st, f)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// FileName returns the fixture base name, e.g. "fs-mat2x3-set-by-API".
func FileName(st glsl.Stage, t *types.Type, f Form) string {
	return emit.Name(st.Short(), t.Name(), string(f))
}

type record struct {
	tmpl.Header
	VS       bool
	Decl     string
	Check    string
	Color    string
	Uniforms []string
}

func fixture(env *gen.Env, t *types.Type, st glsl.Stage, f Form) (gen.Fixture, error) {
	v := Version(t)
	p := emit.Path(emit.VersionFeature(v), emit.Execution, Dir, FileName(st, t, f)+".shader_test")
	r := env.Rand(p)

	rec := record{Header: tmpl.Header{Version: v}, VS: st == glsl.StageVertex}
	rec.Color = rec.FragColor()
	if rec.VS {
		rec.Color = "color"
	}
	first := gen.RandomValue(r, t, -100, 100)
	switch f {
	case Array:
		second := gen.RandomValue(r, t, -100, 100)
		rec.Decl = "uniform " + t.Name() + " u[2] = " + t.Name() + "[2](" + tmpl.Literal(first) + ", " + tmpl.Literal(second) + ")"
		rec.Check = strings.Join([]string{
			"u[0] == " + tmpl.Literal(first),
			"u[1] == " + tmpl.Literal(second),
		}, " && ")
	case SetByAPI:
		set := gen.RandomValue(r, t, -100, 100)
		for set.Equal(first) {
			set = gen.RandomValue(r, t, -100, 100)
		}
		rec.Decl = "uniform " + t.Name() + " u = " + tmpl.Literal(first)
		rec.Check = "u == " + tmpl.Literal(set)
		rec.Uniforms = []string{tmpl.UniformType(t) + " u " + tmpl.Components(set)}
	default:
		rec.Decl = "uniform " + t.Name() + " u = " + tmpl.Literal(first)
		rec.Check = "u == " + tmpl.Literal(first)
	}
	return gen.Fixture{
		Path:   p,
		Render: func() ([]byte, error) { return templates.Render("shader_test", rec) },
	}, nil
}
