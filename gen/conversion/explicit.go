// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package conversion

import (
	"math"

	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/tmpl"
	"github.com/gogpu/fixturegen/types"
)

// Vectors is the largest number of value sets per explicit fixture.
const Vectors = 4

var negZero = math.Copysign(0, -1)

// Samples returns the source values converted from base to target. Values
// stay in the range of the target.
func Samples(from, to types.BaseType) []float64 {
	switch from {
	case types.Int:
		return []float64{0, -7, 12, math.MaxInt32, math.MinInt32}
	case types.Uint:
		return []float64{0, 7, math.MaxUint32}
	case types.Bool:
		return []float64{1, 0}
	}
	switch to {
	case types.Int:
		return []float64{0, -2.75, 1.5, 2e9, -2e9}
	case types.Uint:
		return []float64{0, 1.5, 42.25, 3e9}
	case types.Bool:
		return []float64{0, -2.75, 1e-30, 0.5}
	}
	if from == types.Float {
		return []float64{0, -2.75, 1.5, float64(float32(0.1)), 1e10}
	}
	return []float64{0, -2.75, 1.5, 0.1, 1e30, 1.0000001}
}

// Explicit returns the constructor conversions tested for exact results.
func Explicit() []Conversion {
	pairs := [][2]types.BaseType{
		{types.Double, types.Float}, {types.Float, types.Double},
		{types.Double, types.Int}, {types.Int, types.Double},
		{types.Double, types.Uint}, {types.Uint, types.Double},
		{types.Double, types.Bool}, {types.Bool, types.Double},
	}
	var out []Conversion
	for _, p := range pairs {
		for n := 1; n <= 4; n++ {
			out = append(out, Conversion{types.Vector(p[0], n), types.Vector(p[1], n), true})
		}
		if p[0].IsFloat() && p[1].IsFloat() {
			for _, m := range types.Matrices(p[0]) {
				out = append(out, Conversion{m, m.WithBase(p[1]), true})
			}
		}
	}
	return out
}

// ZeroSign returns the widening and narrowing conversions whose sign of
// zero is checked.
func ZeroSign() []Conversion {
	var out []Conversion
	for _, p := range [][2]types.BaseType{{types.Double, types.Float}, {types.Float, types.Double}} {
		for n := 1; n <= 4; n++ {
			out = append(out, Conversion{types.Vector(p[0], n), types.Vector(p[1], n), true})
		}
	}
	return out
}

// Convert converts v component-wise to the base of to, truncating float
// values converted to integers.
func Convert(v types.Value, to *types.Type) types.Value {
	comps := v.Flatten()
	switch to.Base() {
	case types.Bool:
		bs := make([]bool, len(comps))
		for i, c := range comps {
			bs[i] = c != 0
		}
		return types.Bools(bs...)
	case types.Int:
		is := make([]int64, len(comps))
		for i, c := range comps {
			is[i] = int64(math.Trunc(c))
		}
		return types.Ints(is...)
	case types.Uint:
		us := make([]uint64, len(comps))
		for i, c := range comps {
			us[i] = uint64(math.Trunc(c))
		}
		return types.Uints(us...)
	}
	return types.FloatsOf(to.Base(), to.Rows(), to.Cols(), comps...)
}

// ExplicitName returns the base name of an explicit conversion fixture,
// e.g. "fs-conversion-explicit-dvec2-vec2-zero-sign".
func ExplicitName(st glsl.Stage, c Conversion, zeroSign bool) string {
	suffix := ""
	if zeroSign {
		suffix = "zero-sign"
	}
	return emit.Name(st.Short(), "conversion-explicit", c.From.Name(), c.To.Name(), suffix)
}

type explicitVector struct {
	From, Expected string
}

type explicitRecord struct {
	tmpl.Header
	VS       bool
	From, To *types.Type
	Expr     string
	Vectors  []explicitVector
}

// uniformValue formats v for a uniform command: float bit patterns in hex
// and other components in decimal.
func uniformValue(v types.Value) string {
	if v.Base().IsFloat() {
		return tmpl.Hex(v)
	}
	return tmpl.Components(v)
}

func explicitFixture(tg Target, c Conversion, st glsl.Stage, zeroSign bool) (gen.Fixture, error) {
	rec := explicitRecord{
		Header: tg.header(true),
		VS:     st == glsl.StageVertex,
		From:   c.From,
		To:     c.To,
		Expr:   c.To.Name() + "(from)",
	}
	if zeroSign {
		// Only the reciprocal tells -0.0 from +0.0.
		rec.Expr = "1.0 / " + rec.Expr
	}
	from, to := c.From.Base(), c.To.Base()
	samples := Samples(from, to)
	if zeroSign {
		samples = []float64{negZero, 0}
	}
	n := c.From.Components()
	for k := 0; k < min(Vectors, len(samples)); k++ {
		comps := make([]float64, n)
		for i := range comps {
			comps[i] = samples[(k+i)%len(samples)]
		}
		v := value(c.From, comps)
		expected := Convert(v, c.To)
		if zeroSign {
			inv := make([]float64, n)
			for i, x := range expected.Flatten() {
				inv[i] = 1 / x
			}
			expected = types.FloatsOf(to, c.To.Rows(), c.To.Cols(), inv...)
		}
		rec.Vectors = append(rec.Vectors, explicitVector{From: uniformValue(v), Expected: uniformValue(expected)})
	}
	return gen.Fixture{
		Path:   emit.Path(tg.Feature(), emit.Execution, "conversion", ExplicitName(st, c, zeroSign)+".shader_test"),
		Render: func() ([]byte, error) { return templates.Render("explicit", rec) },
	}, nil
}

func value(t *types.Type, comps []float64) types.Value {
	switch t.Base() {
	case types.Bool:
		bs := make([]bool, len(comps))
		for i, c := range comps {
			bs[i] = c != 0
		}
		return types.Bools(bs...)
	case types.Int:
		is := make([]int64, len(comps))
		for i, c := range comps {
			is[i] = int64(c)
		}
		return types.Ints(is...)
	case types.Uint:
		us := make([]uint64, len(comps))
		for i, c := range comps {
			us[i] = uint64(c)
		}
		return types.Uints(us...)
	}
	return types.FloatsOf(t.Base(), t.Rows(), t.Cols(), comps...)
}
