// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package builtin

import (
	"github.com/gogpu/fixturegen/types"
)

func infix(op string) string { return "({0} " + op + " {1})" }

func prefix(op string) string { return "(" + op + "{0})" }

// arithmetic registers an operator overload for every genType of base,
// including the vector-scalar and scalar-vector mixes.
func (b *builder) arithmetic(name, op string, version int, base types.BaseType, eval evalFunc, in inputs) {
	for _, t := range genTypes(base) {
		b.add(def{name: name, template: infix(op), version: version,
			result: t, args: []*types.Type{t, t}, eval: eval, in: in})
		if t.IsScalar() {
			continue
		}
		s := t.Scalar()
		b.add(def{name: name, template: infix(op), version: version,
			result: t, args: []*types.Type{t, s}, eval: eval, in: in})
		b.add(def{name: name, template: infix(op), version: version,
			result: t, args: []*types.Type{s, t}, eval: eval, in: in})
	}
}

func (b *builder) operators() {
	fb := b.fam.float
	floats := in(vals(-1.5, 0.25, 2), vals(-0.5, 3)).random(span(-10, 10), span(-10, 10))
	divisors := in(vals(-1.5, 0.25, 2), vals(-0.75, 0.5, 3)).bounds(0).random(span(-10, 10), span(0.5, 10))
	b.arithmetic("op-add", "+", 110, fb, float2(func(x, y float64) float64 { return x + y }), floats)
	b.arithmetic("op-sub", "-", 110, fb, float2(func(x, y float64) float64 { return x - y }), floats)
	b.arithmetic("op-mult", "*", 110, fb, float2(func(x, y float64) float64 { return x * y }), floats)
	b.arithmetic("op-div", "/", 110, fb, float2(func(x, y float64) float64 { return x / y }), divisors)
	b.matrixOperators()

	for _, t := range genTypes(fb) {
		b.add(def{name: "op-neg", template: prefix("-"), version: 110,
			result: t, args: []*types.Type{t}, eval: float1(func(x float64) float64 { return -x }),
			in: in(vals(-1.5, 0, 2.75)).random(span(-10, 10))})
	}
	b.comparisons(fb, in(vals(-1.5, 0, 2.25), vals(-1.5, 0, 2.25)), 110)
	if b.fp64() {
		return
	}

	ints := in(vals(-7, 0, 12), vals(-3, 5, 40)).random(span(-10000, 10000), span(-10000, 10000))
	// Products of 1.10 ints stay within 16 bits.
	intMult := in(vals(-7, 0, 12), vals(-3, 5, 40)).bounds().random(span(-150, 150), span(-150, 150))
	intDiv := in(vals(-48, 7, 333), vals(3, 5, -2)).bounds(0).random(span(-10000, 10000), span(1, 100))
	uints := in(vals(0, 12, 3000), vals(3, 5, 40)).random(span(0, 10000), span(0, 10000))
	uintDiv := in(vals(0, 48, 333), vals(3, 5, 7)).random(span(0, 10000), span(1, 100))
	mods := in(vals(0, 5, 17, 100), vals(3, 7, 64)).bounds().random(span(0, 10000), span(1, 100))
	bits := in(vals(0, 0xf0, 0x12345678), vals(0xff, 0x0f0f0f0f)).random(span(0, 0x7fffffff), span(0, 0x7fffffff))
	shifts := in(vals(1, 0x7f, -3), vals(0, 3, 31)).bounds(0)

	for _, ib := range []struct {
		base      types.BaseType
		version   int
		plain     inputs
		products  inputs
		divisions inputs
		shifts    inputs
	}{
		{types.Int, 110, ints, intMult, intDiv, shifts},
		{types.Uint, 130, uints, uints, uintDiv, in(vals(1, 0x7f, 0x80000000), vals(0, 3, 31)).bounds(0)},
	} {
		b.arithmetic("op-add", "+", ib.version, ib.base, int2(func(x, y int64) int64 { return x + y }), ib.plain)
		b.arithmetic("op-sub", "-", ib.version, ib.base, int2(func(x, y int64) int64 { return x - y }), ib.plain)
		b.arithmetic("op-mult", "*", ib.version, ib.base, int2(func(x, y int64) int64 { return x * y }), ib.products)
		b.arithmetic("op-div", "/", ib.version, ib.base, intwise(divide), ib.divisions)
		b.arithmetic("op-mod", "%", 130, ib.base, intwise(remainder), mods)
		b.arithmetic("op-bitand", "&", 130, ib.base, int2(func(x, y int64) int64 { return x & y }), bits)
		b.arithmetic("op-bitor", "|", 130, ib.base, int2(func(x, y int64) int64 { return x | y }), bits)
		b.arithmetic("op-bitxor", "^", 130, ib.base, int2(func(x, y int64) int64 { return x ^ y }), bits)
		for _, t := range genTypes(ib.base) {
			shapes := [][]*types.Type{{t, t}}
			if !t.IsScalar() {
				shapes = append(shapes, []*types.Type{t, t.Scalar()})
			}
			for _, args := range shapes {
				b.add(def{name: "op-lshift", template: infix("<<"), version: 130,
					result: t, args: args, eval: int2(func(x, y int64) int64 { return x << uint(y) }), in: ib.shifts})
				b.add(def{name: "op-rshift", template: infix(">>"), version: 130,
					result: t, args: args, eval: int2(func(x, y int64) int64 { return x >> uint(y) }), in: ib.shifts})
			}
			b.add(def{name: "op-neg", template: prefix("-"), version: ib.version,
				result: t, args: []*types.Type{t}, eval: int1(func(x int64) int64 { return -x }),
				in: in(vals(-7, 0, 12)).random(span(-10000, 10000))})
			b.add(def{name: "op-complement", template: prefix("~"), version: 130,
				result: t, args: []*types.Type{t}, eval: int1(func(x int64) int64 { return ^x }),
				in: in(vals(0, 5, 0x12345678)).random(span(0, 0x7fffffff))})
		}
		b.comparisons(ib.base, in(vals(0, 7, 89), vals(4, 0, 89)), ib.version)
	}

	logic := in(vals(0, 1), vals(0, 1)).bounds()
	for _, l := range []struct {
		name, op string
		f        func(x, y bool) bool
	}{
		{"op-and", "&&", func(x, y bool) bool { return x && y }},
		{"op-or", "||", func(x, y bool) bool { return x || y }},
		{"op-xor", "^^", func(x, y bool) bool { return x != y }},
	} {
		b.add(def{name: l.name, template: infix(l.op), version: 110,
			result: types.BoolType, args: []*types.Type{types.BoolType, types.BoolType},
			eval: boolwise(func(x []float64) bool { return l.f(x[0] != 0, x[1] != 0) }), in: logic})
	}
	b.add(def{name: "op-not", template: prefix("!"), version: 110,
		result: types.BoolType, args: []*types.Type{types.BoolType},
		eval: boolwise(func(x []float64) bool { return x[0] == 0 }), in: in(vals(0, 1)).bounds()})
	b.comparisons(types.Bool, in(vals(0, 1), vals(0, 1)).bounds(), 110)
}

// comparisons registers == and != for every genType of base and the
// ordering operators for scalars of numeric bases.
func (b *builder) comparisons(base types.BaseType, in inputs, version int) {
	for _, t := range genTypes(base) {
		b.add(def{name: "op-eq", template: infix("=="), version: version,
			result: types.BoolType, args: []*types.Type{t, t}, eval: evalEqual(true), in: in})
		b.add(def{name: "op-ne", template: infix("!="), version: version,
			result: types.BoolType, args: []*types.Type{t, t}, eval: evalEqual(false), in: in})
	}
	if base == types.Bool {
		return
	}
	s := types.Vector(base, 1)
	for _, cmp := range relationals[:4] {
		name := map[string]string{"<": "op-lt", "<=": "op-le", ">": "op-gt", ">=": "op-ge"}[cmp.op]
		b.add(def{name: name, template: infix(cmp.op), version: version,
			result: types.BoolType, args: []*types.Type{s, s},
			eval: boolwise(func(x []float64) bool { return cmp.f(x[0], x[1]) }), in: in})
	}
}

// matrixOperators registers the linear-algebra products and the
// component-wise matrix operators.
func (b *builder) matrixOperators() {
	fb := b.fam.float
	entries := in(vals(-1.5, 0.25, 2, -0.75, 1.25), vals(0.5, -3, 1.75)).random(span(-5, 5), span(-5, 5))
	for _, m := range types.Matrices(fb) {
		version := 110
		if !m.IsSquare() {
			version = 120
		}
		s := m.Scalar()
		for _, op := range []struct{ name, sym string }{{"op-add", "+"}, {"op-sub", "-"}, {"op-div", "/"}} {
			f := map[string]func(x, y float64) float64{
				"op-add": func(x, y float64) float64 { return x + y },
				"op-sub": func(x, y float64) float64 { return x - y },
				"op-div": func(x, y float64) float64 { return x / y },
			}[op.name]
			for _, args := range [][]*types.Type{{m, m}, {m, s}, {s, m}} {
				b.add(def{name: op.name, template: infix(op.sym), version: version,
					result: m, args: args, eval: float2(f), in: entries})
			}
		}
		mul := float2(func(x, y float64) float64 { return x * y })
		b.add(def{name: "op-mult", template: infix("*"), version: version,
			result: m, args: []*types.Type{m, s}, eval: mul, in: entries})
		b.add(def{name: "op-mult", template: infix("*"), version: version,
			result: m, args: []*types.Type{s, m}, eval: mul, in: entries})

		// matCxR * vecC = vecR and vecR * matCxR = vecC.
		col := types.Vector(fb, m.Cols())
		row := types.Vector(fb, m.Rows())
		b.add(def{name: "op-mult", template: infix("*"), version: version, tol: "matmul",
			result: row, args: []*types.Type{m, col}, eval: evalMatMul, in: entries})
		b.add(def{name: "op-mult", template: infix("*"), version: version, tol: "matmul",
			result: col, args: []*types.Type{row, m}, eval: evalMatMul, in: entries})

		// matCxR * matNxC = matNxR.
		for n := 2; n <= 4; n++ {
			rhs := types.Matrix(fb, n, m.Cols())
			res := types.Matrix(fb, n, m.Rows())
			v := version
			if !rhs.IsSquare() || !res.IsSquare() {
				v = 120
			}
			b.add(def{name: "op-mult", template: infix("*"), version: v, tol: "matmul",
				result: res, args: []*types.Type{m, rhs}, eval: evalMatMul, in: entries})
		}
	}
}

func divide(x []int64) (int64, error) {
	if x[1] == 0 {
		return 0, errDivideByZero
	}
	return x[0] / x[1], nil
}

func remainder(x []int64) (int64, error) {
	if x[1] == 0 {
		return 0, errDivideByZero
	}
	return x[0] % x[1], nil
}
