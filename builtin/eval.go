// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package builtin

import (
	"math"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/types"
)

// comp returns component i of v, broadcasting scalars.
func comp(v types.Value, i int) int {
	if v.Len() == 1 {
		return 0
	}
	return i
}

// floatValue builds a value of type t from float64 components, rounding
// to t's base.
func floatValue(t *types.Type, comps []float64) types.Value {
	return types.FloatsOf(t.Base(), t.Rows(), t.Cols(), comps...)
}

func boolValue(t *types.Type, comps []bool) types.Value {
	if t.IsScalar() {
		return types.B(comps[0])
	}
	return types.Bools(comps...)
}

// intValue builds an integer value of type t, truncating to its width.
func intValue(t *types.Type, comps []int64) types.Value {
	return types.IntsOf(t.Base(), comps...)
}

// floatwise applies f to each component, broadcasting scalar arguments.
func floatwise(f func(x []float64) float64) evalFunc {
	return func(result *types.Type, args []types.Value) (types.Value, error) {
		out := make([]float64, result.Components())
		x := make([]float64, len(args))
		for i := range out {
			for j, a := range args {
				x[j] = a.Float(comp(a, i))
			}
			out[i] = f(x)
		}
		return floatValue(result, out), nil
	}
}

func float1(f func(x float64) float64) evalFunc {
	return floatwise(func(x []float64) float64 { return f(x[0]) })
}

func float2(f func(x, y float64) float64) evalFunc {
	return floatwise(func(x []float64) float64 { return f(x[0], x[1]) })
}

func float3(f func(x, y, z float64) float64) evalFunc {
	return floatwise(func(x []float64) float64 { return f(x[0], x[1], x[2]) })
}

// intArg returns component i of an integer value widened to int64: signed
// values are sign-extended, unsigned values zero-extended.
func intArg(v types.Value, i int) int64 {
	if v.Base().IsSigned() {
		return v.Int(i)
	}
	return int64(v.Uint(i))
}

// intwise applies f to each component of integer arguments. f may fail,
// for example on division by zero.
func intwise(f func(x []int64) (int64, error)) evalFunc {
	return func(result *types.Type, args []types.Value) (types.Value, error) {
		out := make([]int64, result.Components())
		x := make([]int64, len(args))
		for i := range out {
			for j, a := range args {
				x[j] = intArg(a, comp(a, i))
			}
			r, err := f(x)
			if err != nil {
				return types.Value{}, err
			}
			out[i] = r
		}
		return intValue(result, out), nil
	}
}

func int1(f func(x int64) int64) evalFunc {
	return intwise(func(x []int64) (int64, error) { return f(x[0]), nil })
}

func int2(f func(x, y int64) int64) evalFunc {
	return intwise(func(x []int64) (int64, error) { return f(x[0], x[1]), nil })
}

// boolwise applies a predicate to each component. Integer components are
// exact in float64.
func boolwise(f func(x []float64) bool) evalFunc {
	return func(result *types.Type, args []types.Value) (types.Value, error) {
		out := make([]bool, result.Components())
		x := make([]float64, len(args))
		for i := range out {
			for j, a := range args {
				x[j] = a.Float(comp(a, i))
			}
			out[i] = f(x)
		}
		return boolValue(result, out), nil
	}
}

// sameType dispatches on the result base type.
func sameType(fl, in evalFunc) evalFunc {
	return func(result *types.Type, args []types.Value) (types.Value, error) {
		if result.Base().IsFloat() {
			return fl(result, args)
		}
		return in(result, args)
	}
}

var errDivideByZero = fixturegen.Infeasible("integer division by zero")

// Scalar implementations.

func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

func roundEven(x float64) float64 {
	return math.RoundToEven(x)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

func mod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

func intSign(x int64) int64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func intAbs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

func mix(x, y, a float64) float64 {
	return x*(1-a) + y*a
}

func step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

func smoothstep(e0, e1, x float64) float64 {
	t := clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

func minInt(x, y int64) int64 {
	if x < y {
		return x
	}
	return y
}

func maxInt(x, y int64) int64 {
	if x > y {
		return x
	}
	return y
}

func radians(x float64) float64 { return math.Pi / 180 * x }

func degrees(x float64) float64 { return 180 / math.Pi * x }

func inversesqrt(x float64) float64 { return 1 / math.Sqrt(x) }

// Geometric implementations operate on whole vectors.

func dotOf(a, b types.Value) float64 {
	var s float64
	for i := 0; i < a.Len(); i++ {
		s += a.Float(i) * b.Float(i)
	}
	return s
}

func evalLength(result *types.Type, args []types.Value) (types.Value, error) {
	return floatValue(result, []float64{math.Sqrt(dotOf(args[0], args[0]))}), nil
}

func evalDistance(result *types.Type, args []types.Value) (types.Value, error) {
	var s float64
	for i := 0; i < args[0].Len(); i++ {
		d := args[0].Float(i) - args[1].Float(i)
		s += d * d
	}
	return floatValue(result, []float64{math.Sqrt(s)}), nil
}

func evalDot(result *types.Type, args []types.Value) (types.Value, error) {
	return floatValue(result, []float64{dotOf(args[0], args[1])}), nil
}

func evalCross(result *types.Type, args []types.Value) (types.Value, error) {
	a, b := args[0].Flatten(), args[1].Flatten()
	return floatValue(result, []float64{
		a[1]*b[2] - b[1]*a[2],
		a[2]*b[0] - b[2]*a[0],
		a[0]*b[1] - b[0]*a[1],
	}), nil
}

func scaled(v types.Value, k float64) []float64 {
	out := v.Flatten()
	for i := range out {
		out[i] *= k
	}
	return out
}

func evalNormalize(result *types.Type, args []types.Value) (types.Value, error) {
	return floatValue(result, scaled(args[0], 1/math.Sqrt(dotOf(args[0], args[0])))), nil
}

func evalFaceforward(result *types.Type, args []types.Value) (types.Value, error) {
	n, i, nref := args[0], args[1], args[2]
	if dotOf(nref, i) < 0 {
		return floatValue(result, n.Flatten()), nil
	}
	return floatValue(result, scaled(n, -1)), nil
}

func evalReflect(result *types.Type, args []types.Value) (types.Value, error) {
	i, n := args[0], args[1]
	d := dotOf(n, i)
	out := i.Flatten()
	for k := range out {
		out[k] -= 2 * d * n.Float(k)
	}
	return floatValue(result, out), nil
}

func evalRefract(result *types.Type, args []types.Value) (types.Value, error) {
	i, n, eta := args[0], args[1], args[2].Float(0)
	d := dotOf(n, i)
	k := 1 - eta*eta*(1-d*d)
	out := make([]float64, i.Len())
	if k < 0 {
		return floatValue(result, out), nil
	}
	for c := range out {
		out[c] = eta*i.Float(c) - (eta*d+math.Sqrt(k))*n.Float(c)
	}
	return floatValue(result, out), nil
}

// Matrix implementations.

func evalOuterProduct(result *types.Type, args []types.Value) (types.Value, error) {
	c, r := args[0], args[1]
	out := make([]float64, 0, result.Components())
	for col := 0; col < r.Len(); col++ {
		for row := 0; row < c.Len(); row++ {
			out = append(out, c.Float(row)*r.Float(col))
		}
	}
	return floatValue(result, out), nil
}

func evalTranspose(result *types.Type, args []types.Value) (types.Value, error) {
	m := args[0]
	out := make([]float64, 0, m.Len())
	for _, v := range m.RowMajor() {
		out = append(out, v.Float(0))
	}
	return floatValue(result, out), nil
}

// square returns m as a row-indexed square array.
func square(m types.Value) [][]float64 {
	n := m.Rows()
	a := make([][]float64, n)
	for r := range a {
		a[r] = make([]float64, n)
		for c := range a[r] {
			a[r][c] = m.At(c, r).Float(0)
		}
	}
	return a
}

func det(a [][]float64) float64 {
	switch len(a) {
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}
	var d float64
	for c := range a {
		d += cofactor(a, 0, c) * a[0][c]
	}
	return d
}

func minor(a [][]float64, row, col int) [][]float64 {
	var m [][]float64
	for r := range a {
		if r == row {
			continue
		}
		var line []float64
		for c := range a[r] {
			if c != col {
				line = append(line, a[r][c])
			}
		}
		m = append(m, line)
	}
	return m
}

func cofactor(a [][]float64, row, col int) float64 {
	d := det(minor(a, row, col))
	if (row+col)%2 == 1 {
		return -d
	}
	return d
}

func evalDeterminant(result *types.Type, args []types.Value) (types.Value, error) {
	return floatValue(result, []float64{det(square(args[0]))}), nil
}

func evalInverse(result *types.Type, args []types.Value) (types.Value, error) {
	a := square(args[0])
	d := det(a)
	n := len(a)
	out := make([]float64, 0, n*n)
	// inverse[r][c] = cofactor(c, r) / det, stored column-major.
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			out = append(out, cofactor(a, c, r)/d)
		}
	}
	return floatValue(result, out), nil
}

// evalMatMul implements the linear-algebra product of mat*mat, mat*vec and
// vec*mat. Vectors act as a column on the right and a row on the left.
func evalMatMul(result *types.Type, args []types.Value) (types.Value, error) {
	a, b := args[0], args[1]
	aRows, aCols := a.Rows(), a.Cols()
	if a.Cols() == 1 {
		aRows, aCols = 1, a.Rows()
	}
	bCols := b.Cols()
	at := func(r, c int) float64 {
		if a.Cols() == 1 {
			return a.Float(c)
		}
		return a.At(c, r).Float(0)
	}
	out := make([]float64, 0, aRows*bCols)
	for c := 0; c < bCols; c++ {
		for r := 0; r < aRows; r++ {
			var s float64
			for k := 0; k < aCols; k++ {
				s += at(r, k) * b.At(c, k).Float(0)
			}
			out = append(out, s)
		}
	}
	return floatValue(result, out), nil
}

// Relational implementations.

func evalAny(result *types.Type, args []types.Value) (types.Value, error) {
	for i := 0; i < args[0].Len(); i++ {
		if args[0].Bool(i) {
			return types.B(true), nil
		}
	}
	return types.B(false), nil
}

func evalAll(result *types.Type, args []types.Value) (types.Value, error) {
	for i := 0; i < args[0].Len(); i++ {
		if !args[0].Bool(i) {
			return types.B(false), nil
		}
	}
	return types.B(true), nil
}

// evalEqual compares whole values for == and !=.
func evalEqual(want bool) evalFunc {
	return func(result *types.Type, args []types.Value) (types.Value, error) {
		eq := true
		for i := 0; i < args[0].Len(); i++ {
			if args[0].Float(i) != args[1].Float(i) {
				eq = false
				break
			}
		}
		return types.B(eq == want), nil
	}
}
