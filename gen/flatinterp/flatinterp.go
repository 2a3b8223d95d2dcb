// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package flatinterp generates parser tests of the rule that integer and
// double interface variables must be qualified flat: fragment shader
// inputs always, vertex shader outputs in GLSL ES only.
package flatinterp

import (
	"embed"

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

// Dir is the fixture directory below the compiler test kind.
const Dir = "flat_interpolation"

// Form is the way the tested variable is declared.
type Form string

const (
	Plain              Form = ""
	Array              Form = "array"
	Struct             Form = "struct"
	Block              Form = "block"
	BlockArrayOfStruct Form = "block-array-of-struct"
)

// Axes, slowest first.
var (
	Versions   = []glsl.Version{glsl.Version130, glsl.Version150, glsl.VersionES300, glsl.VersionES320}
	Stages     = []glsl.Stage{glsl.StageVertex, glsl.StageFragment}
	Types      = []*types.Type{types.IntType, types.Ivec2, types.UintType, types.Uvec3, types.DoubleType, types.Dvec2}
	Qualifiers = []string{"flat", "smooth", "noperspective", "default"}
	Forms      = []Form{Plain, Array, Struct, Block, BlockArrayOfStruct}
)

// Generator is the flat_interpolation generator.
type Generator struct{}

// New returns the generator.
func New() Generator { return Generator{} }

// Name implements gen.Generator.
func (Generator) Name() string { return "flat_interpolation" }

// Generate implements gen.Generator.
func (Generator) Generate(_ *gen.Env, yield gen.Yield) error {
	for _, v := range Versions {
		for _, stage := range Stages {
			for _, t := range Types {
				for _, q := range Qualifiers {
					for _, f := range Forms {
						if err := yield(fixture(v, stage, t, q, f)); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

// Expect reports whether a declaration compiles.
func Expect(v glsl.Version, stage glsl.Stage, q string) bool {
	if q == "flat" {
		return true
	}
	return stage == glsl.StageVertex && !v.ES
}

// target checks the combination and returns the extensions it needs.
func target(v glsl.Version, t *types.Type, q string, f Form, stage glsl.Stage) ([]string, error) {
	block := f == Block || f == BlockArrayOfStruct
	switch {
	case v.ES && q == "noperspective":
		return nil, fixturegen.Infeasible("noperspective in %s", v)
	case block && !v.AtLeast(blockVersion(v.ES)):
		return nil, fixturegen.Infeasible("interface blocks in %s", v)
	case f == Struct && !v.ES && !v.AtLeast(150):
		return nil, fixturegen.Infeasible("structure interface variables in %s", v)
	case v.ES && f == BlockArrayOfStruct && stage == glsl.StageFragment:
		return nil, fixturegen.Infeasible("arrays of structures in %s input blocks", v)
	}
	if t.Base() != types.Double {
		return nil, nil
	}
	switch {
	case v.ES:
		return nil, fixturegen.Infeasible("%s in %s", t, v)
	case v.AtLeast(400):
		return nil, nil
	case v.AtLeast(150):
		return []string{builtin.ExtFP64}, nil
	default:
		return nil, fixturegen.Infeasible("%s needs GLSL 1.50", t)
	}
}

func blockVersion(es bool) int {
	if es {
		return 320
	}
	return 150
}

// Declarations returns the declaration of the tested variable.
func Declarations(stage glsl.Stage, t *types.Type, q string, f Form) []string {
	dir := "out"
	if stage == glsl.StageFragment {
		dir = "in"
	}
	qual := ""
	if q != "default" {
		qual = q + " "
	}
	switch f {
	case Array:
		return []string{qual + dir + " " + t.Name() + " v[2];"}
	case Struct:
		return []string{qual + dir + " S v;"}
	case Block:
		return []string{dir + " Block {", "\t" + qual + t.Name() + " x;", "} v;"}
	case BlockArrayOfStruct:
		return []string{dir + " Block {", "\t" + qual + "S s[2];", "} v;"}
	default:
		return []string{qual + dir + " " + t.Name() + " v;"}
	}
}

type record struct {
	tmpl.Header
	Type     *types.Type
	Struct   bool
	Fragment bool
	Decl     []string
}

func fixture(v glsl.Version, stage glsl.Stage, t *types.Type, q string, f Form) (gen.Fixture, error) {
	exts, err := target(v, t, q, f, stage)
	if err != nil {
		return gen.Fixture{}, err
	}
	rec := record{
		Header:   tmpl.Header{Version: v, Extensions: exts, Pass: Expect(v, stage, q)},
		Type:     t,
		Struct:   f == Struct || f == BlockArrayOfStruct,
		Fragment: stage == glsl.StageFragment,
		Decl:     Declarations(stage, t, q, f),
	}
	feature := emit.VersionFeature(v)
	if len(exts) > 0 {
		feature = emit.Feature(exts[0])
	}
	name := emit.Name(stage.Short(), q, t.Name(), string(f)) + stage.Ext()
	return gen.Fixture{
		Path:   emit.Path(feature, emit.Compiler, Dir, name),
		Render: func() ([]byte, error) { return templates.Render("parser", rec) },
	}, nil
}
