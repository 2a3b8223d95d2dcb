// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vsinput generates execution tests of 64-bit vertex shader inputs,
// alone or next to a 32-bit companion input, with vertex data written as
// hex bit patterns.
package vsinput

import (
	"embed"
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

// ExtAttrib64 is the extension adding 64-bit vertex inputs.
const ExtAttrib64 = "GL_ARB_vertex_attrib_64bit"

// MaxComponents is the guaranteed number of generic attribute
// components.
const MaxComponents = 32

// Draws is the number of value sets tested per fixture.
const Draws = 3

// Dir is the fixture directory below the execution test kind.
const Dir = "vs_in"

// Axes, slowest first. A nil companion means none.
var (
	Types      = append(types.Family(types.Double), types.Matrices(types.Double)...)
	Companions = []*types.Type{nil, types.FloatType, types.Vec4, types.Ivec2, types.Uvec3}
	ArraySizes = []int{1, 2}
	Positions  = []Position{First, Last}
)

// Position places the position input before or after the tested inputs.
type Position string

const (
	First Position = "first"
	Last  Position = "last"
)

// target pairs a language version with the extensions it needs.
type target struct {
	version glsl.Version
	exts    []string
}

var targets = []target{
	{glsl.Version150, []string{builtin.ExtFP64, ExtAttrib64}},
	{glsl.Version410, nil},
}

// Generator is the vs_input generator.
type Generator struct{}

// New returns the generator.
func New() Generator { return Generator{} }

// Name implements gen.Generator.
func (Generator) Name() string { return "vs_input" }

// Generate implements gen.Generator.
func (Generator) Generate(env *gen.Env, yield gen.Yield) error {
	for _, tg := range targets {
		for _, t := range Types {
			for _, c := range Companions {
				for _, n := range ArraySizes {
					for _, pos := range Positions {
						if err := yield(fixture(env, tg, t, c, n, pos)); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

// Components counts the attribute components a combination uses. 64-bit
// components count double and the vec3 position counts four.
func Components(t, companion *types.Type, arraySize int) int {
	n := 2 * t.Components()
	if companion != nil {
		n += companion.Components()
	}
	return arraySize*n + 4
}

// FileName returns the fixture base name.
func FileName(t, companion *types.Type, arraySize int, pos Position) string {
	var c, a string
	if companion != nil {
		c = companion.Name()
	}
	if arraySize > 1 {
		a = "array" + strconv.Itoa(arraySize)
	}
	return emit.Name("vs-input", t.Name(), c, a, "position", string(pos))
}

type draw struct {
	First    int
	Uniforms []string
}

type record struct {
	tmpl.Header
	Inputs    []string
	Uniforms  []string
	ArraySize int
	Mismatch  string
	Columns   []string
	Rows      [][]string
	Draws     []draw
}

var quad = [4][3]float64{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}

func fixture(env *gen.Env, tg target, t, companion *types.Type, n int, pos Position) (gen.Fixture, error) {
	if c := Components(t, companion, n); c > MaxComponents {
		return gen.Fixture{}, fixturegen.Infeasible("%s uses %d attribute components", FileName(t, companion, n, pos), c)
	}
	feature := emit.VersionFeature(tg.version)
	if len(tg.exts) > 0 {
		feature = emit.Feature(ExtAttrib64)
	}
	p := emit.Path(feature, emit.Execution, Dir, FileName(t, companion, n, pos)+".shader_test")

	inputs := []*types.Type{t}
	names := []string{"value"}
	if companion != nil {
		inputs = append(inputs, companion)
		names = append(names, "companion")
	}
	rec := record{
		Header:    tmpl.Header{Version: tg.version, Extensions: tg.exts},
		ArraySize: n,
	}
	var mismatch []string
	for i, in := range inputs {
		decl := in.Name() + " " + names[i] + "[" + strconv.Itoa(n) + "]"
		rec.Inputs = append(rec.Inputs, decl)
		rec.Uniforms = append(rec.Uniforms, in.Name()+" expected_"+names[i]+"["+strconv.Itoa(n)+"]")
		mismatch = append(mismatch, names[i]+"[i] != expected_"+names[i]+"[i]")
	}
	rec.Mismatch = strings.Join(mismatch, " || ")
	position := "vec3 piglit_vertex"
	if pos == First {
		rec.Inputs = append([]string{position}, rec.Inputs...)
	} else {
		rec.Inputs = append(rec.Inputs, position)
	}

	// Vertex data columns follow the declaration order.
	var columns []string
	for i, in := range inputs {
		for e := 0; e < n; e++ {
			columns = append(columns, Columns(names[i]+"["+strconv.Itoa(e)+"]", in)...)
		}
	}
	posColumn := "piglit_vertex/float/vec3"
	if pos == First {
		rec.Columns = append([]string{posColumn}, columns...)
	} else {
		rec.Columns = append(columns, posColumn)
	}

	r := env.Rand(p)
	for d := 0; d < Draws; d++ {
		var values []types.Value
		var hex []string
		dr := draw{First: 4 * d}
		for i, in := range inputs {
			for e := 0; e < n; e++ {
				v := gen.RandomValue(r, in, -100, 100)
				values = append(values, v)
				hex = append(hex, strings.Fields(tmpl.Hex(v))...)
				dr.Uniforms = append(dr.Uniforms, in.Name()+" expected_"+names[i]+"["+strconv.Itoa(e)+"] "+tmpl.Components(v))
			}
		}
		for _, corner := range quad {
			var posHex []string
			for _, x := range corner {
				posHex = append(posHex, numeric.Float32ToHex(float32(x)))
			}
			row := append([]string(nil), hex...)
			if pos == First {
				row = append(posHex, row...)
			} else {
				row = append(row, posHex...)
			}
			rec.Rows = append(rec.Rows, row)
		}
		rec.Draws = append(rec.Draws, dr)
	}
	return gen.Fixture{
		Path:   p,
		Render: func() ([]byte, error) { return templates.Render("shader_test", rec) },
	}, nil
}

// Columns returns the vertex data column headers of an input. Matrix
// inputs take one column per matrix column.
func Columns(name string, t *types.Type) []string {
	scalar := t.Base().String()
	if !t.IsMatrix() {
		return []string{name + "/" + scalar + "/" + t.Name()}
	}
	cols := make([]string, t.Cols())
	for c := range cols {
		cols[c] = name + "/" + scalar + "/" + t.Name() + "/" + strconv.Itoa(c)
	}
	return cols
}
