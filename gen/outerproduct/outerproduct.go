// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package outerproduct generates parser tests checking the result type of
// outerProduct: the product of a column vecR and a row vecC is a matCxR,
// so assigning it to the transposed type must fail to compile.
package outerproduct

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

// Bases are the tested component types.
var Bases = []types.BaseType{types.Float, types.Double}

// Generator is the outerproduct generator.
type Generator struct{}

// New returns the generator.
func New() Generator { return Generator{} }

// Name implements gen.Generator.
func (Generator) Name() string { return "outerproduct" }

// Generate implements gen.Generator.
func (Generator) Generate(_ *gen.Env, yield gen.Yield) error {
	for _, base := range Bases {
		for rows := 2; rows <= 4; rows++ {
			for cols := 2; cols <= 4; cols++ {
				for _, transposed := range []bool{false, true} {
					if err := yield(fixture(base, rows, cols, transposed)); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// Result returns the type of outerProduct(vecR, vecC).
func Result(base types.BaseType, rows, cols int) *types.Type {
	return types.Matrix(base, cols, rows)
}

type record struct {
	tmpl.Header
	Column, Row, Target string
}

// FileName returns the fixture base name, e.g. "outerProduct-mat2x3" or
// "outerProduct-mat2x3-transposed".
func FileName(m *types.Type, transposed bool) string {
	suffix := ""
	if transposed {
		suffix = "transposed"
	}
	return emit.Name("outerProduct", m.Name(), suffix)
}

func fixture(base types.BaseType, rows, cols int, transposed bool) (gen.Fixture, error) {
	m := Result(base, rows, cols)
	if transposed && m.IsSquare() {
		return gen.Fixture{}, fixturegen.Infeasible("%s is its own transpose", m.Name())
	}
	h := tmpl.Header{Version: glsl.Version120, Pass: !transposed}
	feature := emit.VersionFeature(h.Version)
	if base == types.Double {
		h.Version = glsl.Version150
		h.Extensions = []string{builtin.ExtFP64}
		feature = emit.Feature(builtin.ExtFP64)
	}
	target := m
	if transposed {
		target = m.Transpose()
	}
	rec := record{
		Header: h,
		Column: types.Vector(base, rows).Name(),
		Row:    types.Vector(base, cols).Name(),
		Target: target.Name(),
	}
	return gen.Fixture{
		Path:   emit.Path(feature, emit.Compiler, "built-in-functions", FileName(m, transposed)+".vert"),
		Render: func() ([]byte, error) { return templates.Render("parser", rec) },
	}, nil
}
