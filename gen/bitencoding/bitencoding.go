// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package bitencoding generates execution tests of the functions
// reinterpreting float bits as integers and back.
package bitencoding

import (
	"embed"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/fixturegen"
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

// ExtBitEncoding backports the functions to GLSL 1.30.
const ExtBitEncoding = "GL_ARB_shader_bit_encoding"

// Func is a bit reinterpretation function.
type Func struct {
	Name string
	From types.BaseType
	To   types.BaseType
}

// Modifier is applied to the argument before the call.
type Modifier string

const (
	None Modifier = ""
	Abs  Modifier = "abs"
	Neg  Modifier = "neg"
)

// Axes, slowest first.
var (
	Funcs = []Func{
		{"floatBitsToInt", types.Float, types.Int},
		{"floatBitsToUint", types.Float, types.Uint},
		{"intBitsToFloat", types.Int, types.Float},
		{"uintBitsToFloat", types.Uint, types.Float},
	}
	Modifiers = []Modifier{None, Abs, Neg}
	Sizes     = []int{1, 2, 3, 4}
	Stages    = []glsl.Stage{glsl.StageVertex, glsl.StageFragment}
)

type target struct {
	version glsl.Version
	ext     string
}

var targets = []target{
	{glsl.Version330, ""},
	{glsl.Version130, ExtBitEncoding},
}

// Samples are the float values whose bits feed every fixture. All of them
// stay normal and finite under abs and negation of either the float or
// its bit pattern.
var Samples = []float32{0.0, float32(math.Copysign(0, -1)), 1.0, -1.0, 0.5, -2.5, 1e10, -3.75e-5, 100.0, 65504.0}

// Vectors is the number of value sets per fixture.
const Vectors = 4

// Generator is the bit_encoding generator.
type Generator struct{}

// New returns the generator.
func New() Generator { return Generator{} }

// Name implements gen.Generator.
func (Generator) Name() string { return "bit_encoding" }

// Generate implements gen.Generator.
func (Generator) Generate(_ *gen.Env, yield gen.Yield) error {
	for _, tg := range targets {
		for _, f := range Funcs {
			for _, m := range Modifiers {
				for _, n := range Sizes {
					for _, st := range Stages {
						if err := yield(fixture(tg, f, m, n, st)); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

type vector struct {
	Arg      string
	Expected string
}

type record struct {
	tmpl.Header
	VS, FS  bool
	Arg     string
	Result  string
	Expr    string
	Vectors []vector
}

// FileName returns the fixture base name, e.g. "fs-neg-floatBitsToInt-vec2".
func FileName(st glsl.Stage, f Func, m Modifier, n int) string {
	return emit.Name(st.Short(), string(m), f.Name, types.Vector(f.From, n).Name())
}

func fixture(tg target, f Func, m Modifier, n int, st glsl.Stage) (gen.Fixture, error) {
	name := FileName(st, f, m, n)
	if m == Abs && f.From == types.Uint {
		return gen.Fixture{}, fixturegen.Infeasible("%s: abs has no unsigned overload", name)
	}
	feature := emit.VersionFeature(tg.version)
	h := tmpl.Header{Version: tg.version}
	if tg.ext != "" {
		feature = emit.Feature(tg.ext)
		h.Extensions = []string{tg.ext}
	}
	rec := record{
		Header: h,
		VS:     st == glsl.StageVertex,
		FS:     st == glsl.StageFragment,
		Arg:    types.Vector(f.From, n).Name(),
		Result: types.Vector(f.To, n).Name(),
		Expr:   f.Name + "(" + Apply(m, "arg0") + ")",
	}
	for k := 0; k < Vectors; k++ {
		args := make([]uint32, n)
		results := make([]uint32, n)
		for i := range args {
			args[i] = math.Float32bits(Samples[(k*n+i)%len(Samples)])
			results[i] = Eval(f, m, args[i])
		}
		rec.Vectors = append(rec.Vectors, vector{Arg: hexList(args), Expected: hexList(results)})
	}
	return gen.Fixture{
		Path:   emit.Path(feature, emit.Execution, "built-in-functions", name+".shader_test"),
		Render: func() ([]byte, error) { return templates.Render("shader_test", rec) },
	}, nil
}

// Apply returns expr with the modifier applied.
func Apply(m Modifier, expr string) string {
	switch m {
	case Abs:
		return "abs(" + expr + ")"
	case Neg:
		return "-" + expr
	default:
		return expr
	}
}

// Eval returns the result bits of f applied to the modified argument bits.
// Integer negation and abs wrap like their 32-bit shader counterparts.
func Eval(f Func, m Modifier, bits uint32) uint32 {
	switch {
	case m == None:
		return bits
	case f.From == types.Float && m == Abs:
		return bits &^ (1 << 31)
	case f.From == types.Float:
		return bits ^ (1 << 31)
	case m == Abs:
		return uint32(numeric.Abs(int32(bits)))
	default:
		return -bits
	}
}

func hexList(bits []uint32) string {
	out := make([]string, len(bits))
	for i, b := range bits {
		out[i] = fmt.Sprintf("0x%08x", b)
	}
	return strings.Join(out, " ")
}
