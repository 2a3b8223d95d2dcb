// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package tmpl

import (
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/types"
)

// Funcs returns the helper functions available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"literal":     Literal,
		"components":  Components,
		"float":       FloatLiteral,
		"hex":         Hex,
		"uniformType": UniformType,
		"join":        strings.Join,
	}
}

// FloatLiteral formats x as a GLSL floating-point literal of the given
// width. The shortest decimal that round-trips at that width is used and
// a ".0" is appended when it would otherwise read as an integer.
func FloatLiteral(x float64, width int) string {
	switch {
	case math.IsNaN(x):
		return "(0.0 / 0.0)"
	case math.IsInf(x, 1):
		return "(1.0 / 0.0)"
	case math.IsInf(x, -1):
		return "(-1.0 / 0.0)"
	}
	if width == 64 {
		return Decimal(x, 64) + "lf"
	}
	return Decimal(x, 32)
}

// Decimal formats x with the shortest decimal that round-trips at the
// given width, appending ".0" to finite values that would otherwise read
// as integers.
func Decimal(x float64, width int) string {
	bitSize := 32
	if width == 64 {
		bitSize = 64
	}
	s := strconv.FormatFloat(x, 'g', -1, bitSize)
	if !math.IsInf(x, 0) && !math.IsNaN(x) && !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Scalar formats component i of v as a GLSL literal.
func Scalar(v types.Value, i int) string {
	switch b := v.Base(); {
	case b == types.Bool:
		return strconv.FormatBool(v.Bool(i))
	case b.IsFloat():
		return FloatLiteral(v.Float(i), b.Bits())
	case b == types.Int && v.Int(i) == math.MinInt32:
		// 2147483648 is not a valid int literal.
		return "(-2147483647 - 1)"
	case b.IsSigned():
		return strconv.FormatInt(v.Int(i), 10)
	default:
		return strconv.FormatUint(v.Uint(i), 10) + "u"
	}
}

// Literal formats v as a GLSL expression: a bare literal for scalars and
// a constructor call for vectors and matrices.
func Literal(v types.Value) string {
	t := v.Type()
	if t.IsScalar() {
		return Scalar(v, 0)
	}
	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = Scalar(v, i)
	}
	return t.Name() + "(" + strings.Join(parts, ", ") + ")"
}

// Components formats the components of v separated by spaces, in
// column-major order, as the uniform and probe commands expect them.
// Booleans are written as 0 and 1.
func Components(v types.Value) string {
	parts := make([]string, v.Len())
	for i := range parts {
		switch b := v.Base(); {
		case b == types.Bool:
			parts[i] = "0"
			if v.Bool(i) {
				parts[i] = "1"
			}
		case b.IsFloat():
			parts[i] = Decimal(v.Float(i), b.Bits())
		case b.IsSigned():
			parts[i] = strconv.FormatInt(v.Int(i), 10)
		default:
			parts[i] = strconv.FormatUint(v.Uint(i), 10)
		}
	}
	return strings.Join(parts, " ")
}

// Hex formats the bit patterns of the components of v separated by spaces.
func Hex(v types.Value) string {
	parts := make([]string, v.Len())
	for i := range parts {
		switch v.Base() {
		case types.Double:
			parts[i] = numeric.Float64ToHex(v.Float(i))
		case types.Float:
			parts[i] = numeric.Float32ToHex(float32(v.Float(i)))
		case types.Half:
			parts[i] = numeric.Float16ToHex(float32(v.Float(i)))
		default:
			parts[i] = "0x" + strconv.FormatUint(v.Bits(i), 16)
		}
	}
	return strings.Join(parts, " ")
}

// Bits formats a float value as a bit-cast expression that reproduces it
// exactly, e.g. "uintBitsToFloat(0x3f800000u)". Other values are
// formatted with Literal.
func Bits(v types.Value) string {
	if v.Base() != types.Float {
		return Literal(v)
	}
	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = numeric.Float32ToHex(float32(v.Float(i))) + "u"
	}
	t := v.Type()
	if t.IsScalar() {
		return "uintBitsToFloat(" + parts[0] + ")"
	}
	if t.IsVector() {
		return "uintBitsToFloat(uvec" + strconv.Itoa(t.Rows()) + "(" + strings.Join(parts, ", ") + "))"
	}
	cols := make([]string, t.Cols())
	for c := range cols {
		cols[c] = "uintBitsToFloat(uvec" + strconv.Itoa(t.Rows()) + "(" +
			strings.Join(parts[c*t.Rows():(c+1)*t.Rows()], ", ") + "))"
	}
	return t.Name() + "(" + strings.Join(cols, ", ") + ")"
}

// UniformType returns the type named by a uniform command setting a value
// of type t. Booleans are set through their integer counterparts.
func UniformType(t *types.Type) string {
	if t.Base() == types.Bool {
		return t.WithBase(types.Int).Name()
	}
	return t.Name()
}

// Compare returns the boolean expression comparing result with expected.
// Floating-point results pass when their distance from expected is within
// tolerance; matrices use the norm of the per-column distances.
func Compare(t *types.Type) string {
	return CompareExpr(t, "result", "expected", "tolerance")
}

// CompareExpr is like Compare for arbitrary operand expressions. Matrix
// operands are indexed, so they must be primary expressions.
func CompareExpr(t *types.Type, result, expected, tolerance string) string {
	if !t.Base().IsFloat() {
		if t.IsScalar() {
			return result + " == " + expected
		}
		return "all(equal(" + result + ", " + expected + "))"
	}
	if !t.IsMatrix() {
		return "distance(" + result + ", " + expected + ") <= " + tolerance
	}
	cols := make([]string, t.Cols())
	for c := range cols {
		i := "[" + strconv.Itoa(c) + "]"
		cols[c] = "distance(" + result + i + ", " + expected + i + ")"
	}
	vec := types.Get(t.Base(), t.Cols(), 1)
	return "length(" + vec.Name() + "(" + strings.Join(cols, ", ") + ")) <= " + tolerance
}
