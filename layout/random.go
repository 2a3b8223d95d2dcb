// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"strconv"

	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/types"
)

// Options controls Random.
type Options struct {
	Packing  Packing
	Order    Order
	Instance string

	Fields   int // top-level fields
	MaxArray int // largest array size; 0 disables arrays
	MaxDepth int // structure nesting depth; 0 disables structures

	// Types lists the basic types to draw from; BasicTypes by default.
	Types []*types.Type
}

// BasicTypes returns the 32-bit scalar, vector and matrix types allowed in
// uniform blocks, and the double types as well when doubles is set.
func BasicTypes(doubles bool) []*types.Type {
	var out []*types.Type
	bases := []types.BaseType{types.Float, types.Int, types.Uint, types.Bool}
	if doubles {
		bases = append(bases, types.Double)
	}
	for _, b := range bases {
		out = append(out, types.Family(b)...)
		out = append(out, types.Matrices(b)...)
	}
	return out
}

type randomBuilder struct {
	r       *numeric.Rand
	opts    Options
	structs int
}

// Random builds a pseudo-random block named name. The same Rand state and
// options always give the same block.
func Random(r *numeric.Rand, name string, opts Options) *Block {
	if len(opts.Types) == 0 {
		opts.Types = BasicTypes(false)
	}
	if opts.Fields <= 0 {
		opts.Fields = 1
	}
	g := &randomBuilder{r: r, opts: opts}
	b := &Block{Name: name, Instance: opts.Instance, Packing: opts.Packing, Order: opts.Order}
	b.Fields = g.fields(opts.Fields, opts.MaxDepth)
	for i := range b.Fields {
		f := &b.Fields[i]
		if f.Type != nil && f.Type.IsMatrix() && r.IntN(3) == 0 {
			f.Order = numeric.Pick(r, []Order{ColumnMajor, RowMajor})
		}
	}
	return b
}

func (g *randomBuilder) fields(n, depth int) []Field {
	out := make([]Field, n)
	for i := range out {
		f := Field{Name: glsl.Identifier(fieldName(i))}
		if depth > 0 && g.r.IntN(4) == 0 {
			f.Struct = g.structure(depth - 1)
		} else {
			f.Type = numeric.Pick(g.r, g.opts.Types)
		}
		if g.opts.MaxArray > 0 && g.r.IntN(3) == 0 {
			f.ArraySize = int(g.r.Int(1, int64(g.opts.MaxArray)))
		}
		out[i] = f
	}
	return out
}

func (g *randomBuilder) structure(depth int) *Struct {
	g.structs++
	s := &Struct{Name: "S" + strconv.Itoa(g.structs)}
	s.Members = g.fields(1+g.r.IntN(3), depth)
	return s
}

// fieldName returns a, b, ..., z, aa, ab, ...
func fieldName(i int) string {
	name := ""
	for i++; i > 0; i = (i - 1) / 26 {
		name = string(rune('a'+(i-1)%26)) + name
	}
	return name
}
