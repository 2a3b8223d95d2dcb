// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package builtin

import (
	"math"

	"github.com/gogpu/fixturegen/types"
)

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func vals(xs ...float64) []float64 { return xs }

func span(lo, hi float64) [2]float64 { return [2]float64{lo, hi} }

// unary registers name(genType) for the family's float genTypes.
func (b *builder) unary(name string, version int, f func(float64) float64, in inputs) {
	for _, t := range genTypes(b.fam.float) {
		b.add(def{name: name, template: call(name, 1), version: version,
			result: t, args: []*types.Type{t}, eval: float1(f), in: in})
	}
}

// binary registers name(genType, genType), and name(genType, float) when
// scalarY is set.
func (b *builder) binary(name string, version int, f func(x, y float64) float64, in inputs, scalarY bool) {
	for _, t := range genTypes(b.fam.float) {
		b.add(def{name: name, template: call(name, 2), version: version,
			result: t, args: []*types.Type{t, t}, eval: float2(f), in: in})
		if scalarY && !t.IsScalar() {
			b.add(def{name: name, template: call(name, 2), version: version,
				result: t, args: []*types.Type{t, t.Scalar()}, eval: float2(f), in: in})
		}
	}
}

func (b *builder) angleFunctions() {
	if b.fp64() {
		return
	}
	b.unary("radians", 110, radians, in(linspace(-180, 180, 4)).random(span(-360, 360)))
	b.unary("degrees", 110, degrees, in(linspace(-math.Pi, math.Pi, 4)).random(span(-2*math.Pi, 2*math.Pi)))
	trig := in(linspace(-math.Pi, math.Pi, 4)).
		corner(vals(math.Pi/2), vals(-math.Pi/2), vals(math.Pi/6)).
		random(span(-math.Pi, math.Pi))
	b.unary("sin", 110, math.Sin, trig)
	b.unary("cos", 110, math.Cos, trig)
	b.unary("tan", 110, math.Tan, in(linspace(-math.Pi, math.Pi, 4)).random(span(-1.2, 1.2)))
	inverse := in(linspace(-1, 1, 4)).corner(vals(0.5), vals(-0.5)).random(span(-1, 1))
	b.unary("asin", 110, math.Asin, inverse)
	b.unary("acos", 110, math.Acos, inverse)
	b.unary("atan", 110, math.Atan, in(vals(-2, -0.5, 0.5, 2)).random(span(-10, 10)))
	b.binary("atan", 110, math.Atan2,
		in(vals(-2, -0.5, 0.5, 2), vals(-1.5, 1.5)).random(span(-5, 5), span(-5, 5)), false)
}

func (b *builder) exponentialFunctions() {
	if !b.fp64() {
		b.binary("pow", 110, math.Pow,
			in(vals(0.5, 1.25, 2, 3.5), vals(-2, -0.5, 0.5, 2)).
				corner(vals(2, 10), vals(0.5, -10)).
				random(span(0.1, 4), span(-3, 3)), false)
		b.unary("exp", 110, math.Exp, in(linspace(-2, 2, 4)).corner(vals(-10), vals(10)).random(span(-5, 5)))
		b.unary("exp2", 110, math.Exp2, in(linspace(-2, 2, 4)).corner(vals(-20), vals(20)).random(span(-8, 8)))
		logs := in(vals(0.25, 0.75, 1.5, 8)).
			corner(vals(0.5), vals(2), vals(0.49999997), vals(2.0000002), vals(1e-20)).
			random(span(0.01, 100))
		b.unary("log", 110, math.Log, logs)
		b.unary("log2", 110, math.Log2, logs)
	}
	roots := in(vals(0.25, 1, 2, 9)).corner(vals(1e-30), vals(1e30)).random(span(0.01, 100))
	b.unary("sqrt", 110, math.Sqrt, roots)
	b.unary("inversesqrt", 110, inversesqrt, roots)
}

func (b *builder) commonFunctions() {
	signed := in(vals(-1.5, -0.75, 0, 0.75, 1.5)).random(span(-10, 10))
	ints := in(vals(-5, -2, 0, 3, 7)).random(span(-1000, 1000))
	b.unary("abs", 110, math.Abs, signed)
	b.unary("sign", 110, sign, signed)
	for _, t := range genTypes(types.Int) {
		b.add(def{name: "abs", template: call("abs", 1), version: 130,
			result: t, args: []*types.Type{t}, eval: int1(intAbs), in: ints})
		b.add(def{name: "sign", template: call("sign", 1), version: 130,
			result: t, args: []*types.Type{t}, eval: int1(intSign), in: ints})
	}

	rounding := in(vals(-2.75, -1.5, -0.5, 0.25, 1, 2.5)).corner(vals(1e8)).random(span(-100, 100))
	b.unary("floor", 110, math.Floor, rounding)
	b.unary("ceil", 110, math.Ceil, rounding)
	b.unary("fract", 110, fract, rounding)
	b.unary("trunc", 130, math.Trunc, rounding)
	// Halfway cases round in an implementation-chosen direction.
	b.unary("round", 130, round, in(vals(-2.75, -1.25, -0.25, 0.75, 1.75, 2.25)).random(span(-100, 100)))
	b.unary("roundEven", 130, roundEven,
		in(vals(-2.5, -1.5, -0.5, 0.5, 1.5, 2.5)).corner(vals(1.25), vals(-0.75)).random(span(-100, 100)))

	b.binary("mod", 110, mod,
		in(linspace(-1.9, 1.9, 4), linspace(-2, 2, 4)).bounds(0).random(span(-10, 10), span(0.5, 5)), true)
	minmax := in(vals(-1.5, -0.5, 0.5, 1.5), vals(-1, 1)).random(span(-10, 10), span(-10, 10))
	b.binary("min", 110, math.Min, minmax, true)
	b.binary("max", 110, math.Max, minmax, true)

	clampIn := in(vals(-1.5, -0.5, 0.5, 1.5, 2.5), vals(-1, 0), vals(1, 2)).bounds(0)
	for _, t := range genTypes(b.fam.float) {
		b.add(def{name: "clamp", template: call("clamp", 3), version: 110,
			result: t, args: []*types.Type{t, t, t}, eval: float3(clamp), in: clampIn})
		if !t.IsScalar() {
			b.add(def{name: "clamp", template: call("clamp", 3), version: 110,
				result: t, args: []*types.Type{t, t.Scalar(), t.Scalar()}, eval: float3(clamp), in: clampIn})
		}
	}
	b.integerMinMaxClamp(types.Int, in(vals(-7, -2, 3, 8), vals(-3, 5)).random(span(-1000, 1000), span(-1000, 1000)),
		in(vals(-7, -2, 3, 8), vals(-4, 0), vals(2, 6)).bounds(0))
	b.integerMinMaxClamp(types.Uint, in(vals(0, 2, 9, 1000), vals(3, 20)).random(span(0, 5000), span(0, 5000)),
		in(vals(0, 2, 9, 1000), vals(1, 4), vals(8, 100)).bounds(0))

	mixIn := in(vals(-1.5, 1), vals(-0.5, 2), vals(0, 0.25, 1)).bounds(0, 1)
	for _, t := range genTypes(b.fam.float) {
		b.add(def{name: "mix", template: call("mix", 3), version: 110,
			result: t, args: []*types.Type{t, t, t}, eval: float3(mix), in: mixIn})
		if !t.IsScalar() {
			b.add(def{name: "mix", template: call("mix", 3), version: 110,
				result: t, args: []*types.Type{t, t, t.Scalar()}, eval: float3(mix), in: mixIn})
		}
		bt := t.WithBase(types.Bool)
		b.add(def{name: "mix", template: call("mix", 3), version: 130, tol: "op-add",
			result: t, args: []*types.Type{t, t, bt}, eval: float3(func(x, y, a float64) float64 {
				if a != 0 {
					return y
				}
				return x
			}), in: in(vals(-1.5, 1), vals(-0.5, 2), vals(0, 1)).bounds(0, 1)})
	}

	stepIn := in(vals(-1, 0, 1), vals(-1.5, -0.5, 0.5, 1.5)).bounds(1).random(span(-2, 2), span(-2, 2))
	smoothIn := in(vals(-1.5, -0.5), vals(0.5, 1.5), vals(-2, -1, 0, 0.5, 1, 2)).bounds(2)
	for _, t := range genTypes(b.fam.float) {
		b.add(def{name: "step", template: call("step", 2), version: 110,
			result: t, args: []*types.Type{t, t}, eval: float2(step), in: stepIn})
		b.add(def{name: "smoothstep", template: call("smoothstep", 3), version: 110,
			result: t, args: []*types.Type{t, t, t}, eval: float3(smoothstep), in: smoothIn})
		if !t.IsScalar() {
			s := t.Scalar()
			b.add(def{name: "step", template: call("step", 2), version: 110,
				result: t, args: []*types.Type{s, t}, eval: float2(step), in: stepIn})
			b.add(def{name: "smoothstep", template: call("smoothstep", 3), version: 110,
				result: t, args: []*types.Type{s, s, t}, eval: float3(smoothstep), in: smoothIn})
		}
	}
}

func (b *builder) integerMinMaxClamp(base types.BaseType, pair, triple inputs) {
	clampInt := intwise(func(x []int64) (int64, error) { return minInt(maxInt(x[0], x[1]), x[2]), nil })
	for _, t := range genTypes(base) {
		shapes := [][]*types.Type{{t, t}}
		if !t.IsScalar() {
			shapes = append(shapes, []*types.Type{t, t.Scalar()})
		}
		for _, args := range shapes {
			b.add(def{name: "min", template: call("min", 2), version: 130,
				result: t, args: args, eval: int2(minInt), in: pair})
			b.add(def{name: "max", template: call("max", 2), version: 130,
				result: t, args: args, eval: int2(maxInt), in: pair})
			b.add(def{name: "clamp", template: call("clamp", 3), version: 130,
				result: t, args: append(args, args[1]), eval: clampInt, in: triple})
		}
	}
}

func (b *builder) geometricFunctions() {
	a := vals(1.2, -0.5, 3.7, -2.2, 0.9, 1.6, -0.3, 2.8)
	p0, p1 := vals(-1.3, 0.5, 2.2, -3.1), vals(0.8, -1.7, 1.1)
	for _, t := range genTypes(b.fam.float) {
		s := t.Scalar()
		b.add(def{name: "length", template: call("length", 1), version: 110,
			result: s, args: []*types.Type{t}, eval: evalLength, in: in(a).random(span(-5, 5))})
		b.add(def{name: "distance", template: call("distance", 2), version: 110,
			result: s, args: []*types.Type{t, t}, eval: evalDistance, in: in(p0, p1).random(span(-5, 5), span(-5, 5))})
		b.add(def{name: "dot", template: call("dot", 2), version: 110,
			result: s, args: []*types.Type{t, t}, eval: evalDot, in: in(p0, p1).random(span(-5, 5), span(-5, 5))})
		b.add(def{name: "normalize", template: call("normalize", 1), version: 110,
			result: t, args: []*types.Type{t}, eval: evalNormalize, in: in(a).random(span(-5, 5))})
		b.add(def{name: "faceforward", template: call("faceforward", 3), version: 110,
			result: t, args: []*types.Type{t, t, t}, eval: evalFaceforward,
			in: in(vals(-0.9, 1.3), vals(0.4, -2.1), vals(1.1, -0.6)).bounds(0)})
		b.add(def{name: "reflect", template: call("reflect", 2), version: 110,
			result: t, args: []*types.Type{t, t}, eval: evalReflect,
			in: in(vals(-1.2, 0.7, 2.4), vals(0.6, -0.8)).bounds(0).random(span(-3, 3), span(-1, 1))})
		b.add(def{name: "refract", template: call("refract", 3), version: 110,
			result: t, args: []*types.Type{t, t, s}, eval: evalRefract,
			in: in(vals(-1.2, 0.7), vals(0.6, -0.8), vals(0.5, 1.33)).bounds(0)})
	}
	v3 := types.Vector(b.fam.float, 3)
	b.add(def{name: "cross", template: call("cross", 2), version: 110,
		result: v3, args: []*types.Type{v3, v3}, eval: evalCross, in: in(p0, p1).random(span(-5, 5), span(-5, 5))})
}

func (b *builder) matrixFunctions() {
	entries := vals(1.5, -0.25, 0.75, 2, -1.25, 0.5, 1, -0.75, 1.75, 0.25, -2, 1.25, 0.5, -1.5, 2.25, 1)
	pairs := in(vals(-1.5, 0.25, 2, -0.75), vals(0.5, -3, 1.25, 4))
	for _, m := range types.Matrices(b.fam.float) {
		version := 110
		if !m.IsSquare() {
			version = 120
		}
		b.add(def{name: "matrixCompMult", template: call("matrixCompMult", 2), version: version,
			result: m, args: []*types.Type{m, m}, eval: float2(func(x, y float64) float64 { return x * y }),
			in: pairs.random(span(-5, 5), span(-5, 5))})

		c := types.Vector(b.fam.float, m.Rows())
		r := types.Vector(b.fam.float, m.Cols())
		b.add(def{name: "outerProduct", template: call("outerProduct", 2), version: 120,
			result: m, args: []*types.Type{c, r}, eval: evalOuterProduct, in: pairs})
		b.add(def{name: "transpose", template: call("transpose", 1), version: 120,
			result: m.Transpose(), args: []*types.Type{m}, eval: evalTranspose, in: in(entries).bounds()})

		if m.IsSquare() {
			b.add(def{name: "determinant", template: call("determinant", 1), version: 150,
				result: m.Scalar(), args: []*types.Type{m}, eval: evalDeterminant,
				in: in(entries).bounds().random(span(-2, 2))})
			b.add(def{name: "inverse", template: call("inverse", 1), version: 140,
				result: m, args: []*types.Type{m}, eval: evalInverse,
				in: in(entries).bounds().random(span(-2, 2))})
		}
	}
}

var relationals = []struct {
	name, op string
	f        func(x, y float64) bool
}{
	{"lessThan", "<", func(x, y float64) bool { return x < y }},
	{"lessThanEqual", "<=", func(x, y float64) bool { return x <= y }},
	{"greaterThan", ">", func(x, y float64) bool { return x > y }},
	{"greaterThanEqual", ">=", func(x, y float64) bool { return x >= y }},
	{"equal", "==", func(x, y float64) bool { return x == y }},
	{"notEqual", "!=", func(x, y float64) bool { return x != y }},
}

func (b *builder) relationalFunctions() {
	bases := []struct {
		base types.BaseType
		in   inputs
	}{
		{b.fam.float, in(vals(-1.5, 0, 2.25), vals(-1.5, 0, 2.25))},
		{types.Int, in(vals(-7, 0, 8, 89), vals(4, 0, -7, 89))},
		{types.Uint, in(vals(0, 7, 33), vals(0, 7, 33))},
		{types.Bool, in(vals(0, 1), vals(0, 1))},
	}
	for _, rel := range relationals {
		for _, bs := range bases {
			if bs.base == types.Bool && rel.op != "==" && rel.op != "!=" {
				continue
			}
			if b.fp64() != (bs.base == types.Double) {
				continue
			}
			version := 110
			if bs.base == types.Uint {
				version = 130
			}
			for _, t := range vecTypes(bs.base) {
				b.add(def{name: rel.name, template: call(rel.name, 2), version: version,
					result: t.WithBase(types.Bool), args: []*types.Type{t, t},
					eval: boolwise(func(x []float64) bool { return rel.f(x[0], x[1]) }), in: bs.in})
			}
		}
	}
	if b.fp64() {
		return
	}
	bools := in(vals(0, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1)).bounds()
	for _, t := range vecTypes(types.Bool) {
		b.add(def{name: "any", template: call("any", 1), version: 110,
			result: types.BoolType, args: []*types.Type{t}, eval: evalAny, in: bools})
		b.add(def{name: "all", template: call("all", 1), version: 110,
			result: types.BoolType, args: []*types.Type{t}, eval: evalAll, in: bools})
		b.add(def{name: "not", template: call("not", 1), version: 110,
			result: t, args: []*types.Type{t}, eval: boolwise(func(x []float64) bool { return x[0] == 0 }), in: bools})
	}
}
