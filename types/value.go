// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/fixturegen"
)

// Value is a scalar, vector or matrix value.
//
// Components are stored as bit patterns in column-major order so that
// NaN payloads, signed zeros and 64-bit integers survive unchanged.
// The shape (rows, cols) decides the class: cols > 1 is a matrix, rows > 1
// a vector and 1x1 a scalar.
type Value struct {
	base BaseType
	rows int
	cols int
	bits []uint64
}

// NewValue builds a value from raw component bit patterns in column-major
// order. It fails with ErrInvalidType when no type has that shape.
func NewValue(base BaseType, rows, cols int, bits []uint64) (Value, error) {
	if Get(base, rows, cols) == nil {
		return Value{}, fixturegen.NewError(fixturegen.ErrInvalidType,
			"no %s type with %d rows and %d columns", base, rows, cols)
	}
	if len(bits) != rows*cols {
		return Value{}, fixturegen.NewError(fixturegen.ErrInvalidType,
			"%d components for a %dx%d value", len(bits), rows, cols)
	}
	v := Value{base: base, rows: rows, cols: cols, bits: make([]uint64, len(bits))}
	for i, b := range bits {
		v.bits[i] = base.mask(b)
	}
	return v, nil
}

func mustValue(base BaseType, rows, cols int, bits []uint64) Value {
	v, err := NewValue(base, rows, cols, bits)
	if err != nil {
		panic(err)
	}
	return v
}

func encodeAll[T any](comps []T, enc func(T) uint64) []uint64 {
	bits := make([]uint64, len(comps))
	for i, c := range comps {
		bits[i] = enc(c)
	}
	return bits
}

// Floats builds a 32-bit float value with the given rows and columns from
// column-major components rounded to float32.
func Floats(rows, cols int, comps ...float64) Value {
	return mustValue(Float, rows, cols, encodeAll(comps, Float.encodeFloat))
}

// Doubles builds a 64-bit float value.
func Doubles(rows, cols int, comps ...float64) Value {
	return mustValue(Double, rows, cols, encodeAll(comps, Double.encodeFloat))
}

// FloatVec builds a float scalar (one component) or vector.
func FloatVec(comps ...float64) Value { return Floats(len(comps), 1, comps...) }

// DoubleVec builds a double scalar or vector.
func DoubleVec(comps ...float64) Value { return Doubles(len(comps), 1, comps...) }

// FloatsOf builds a float-based value of any float base.
func FloatsOf(base BaseType, rows, cols int, comps ...float64) Value {
	return mustValue(base, rows, cols, encodeAll(comps, base.encodeFloat))
}

// Ints builds a signed integer scalar (one component) or vector.
func Ints(comps ...int64) Value {
	return IntsOf(Int, comps...)
}

// IntsOf builds a signed or unsigned integer scalar or vector of any width.
// Components are truncated to the base width.
func IntsOf(base BaseType, comps ...int64) Value {
	return mustValue(base, len(comps), 1, encodeAll(comps, func(c int64) uint64 { return uint64(c) }))
}

// Uints builds an unsigned 32-bit scalar or vector.
func Uints(comps ...uint64) Value {
	return mustValue(Uint, len(comps), 1, comps)
}

// Bools builds a boolean scalar or vector.
func Bools(comps ...bool) Value {
	return mustValue(Bool, len(comps), 1, encodeAll(comps, func(c bool) uint64 {
		if c {
			return 1
		}
		return 0
	}))
}

// F returns a float scalar.
func F(x float64) Value { return Floats(1, 1, x) }

// D returns a double scalar.
func D(x float64) Value { return Doubles(1, 1, x) }

// I returns an int scalar.
func I(x int64) Value { return Ints(x) }

// U returns a uint scalar.
func U(x uint64) Value { return Uints(x) }

// B returns a bool scalar.
func B(x bool) Value { return Bools(x) }

// Splat returns a vector of n copies of scalar s; s itself when n == 1.
func Splat(s Value, n int) Value {
	bits := make([]uint64, n)
	for i := range bits {
		bits[i] = s.bits[0]
	}
	return mustValue(s.base, n, 1, bits)
}

// FromColumns builds a matrix from its column vectors.
func FromColumns(columns ...Value) (Value, error) {
	if len(columns) == 0 {
		return Value{}, fixturegen.NewError(fixturegen.ErrInvalidType, "matrix without columns")
	}
	first := columns[0]
	var bits []uint64
	for _, c := range columns {
		if c.cols != 1 || c.rows != first.rows || c.base != first.base {
			return Value{}, fixturegen.NewError(fixturegen.ErrInvalidType, "inconsistent matrix columns")
		}
		bits = append(bits, c.bits...)
	}
	return NewValue(first.base, first.rows, len(columns), bits)
}

// Base returns the base type.
func (v Value) Base() BaseType { return v.base }

// Rows returns the number of rows.
func (v Value) Rows() int { return v.rows }

// Cols returns the number of columns.
func (v Value) Cols() int { return v.cols }

// Len returns the number of components.
func (v Value) Len() int { return len(v.bits) }

// IsZero reports whether v is the zero Value (no components).
func (v Value) IsZero() bool { return len(v.bits) == 0 }

// Class returns the value's classification.
func (v Value) Class() Class {
	switch {
	case v.cols > 1:
		return ClassMatrix
	case v.rows > 1:
		return ClassVector
	default:
		return ClassScalar
	}
}

// Bits returns the bit pattern of component i.
func (v Value) Bits(i int) uint64 { return v.bits[i] }

// Float returns component i as float64. Integer and boolean components
// are converted numerically.
func (v Value) Float(i int) float64 {
	switch {
	case v.base.IsFloat():
		return v.base.decodeFloat(v.bits[i])
	case v.base.IsSigned():
		return float64(v.Int(i))
	default:
		return float64(v.bits[i])
	}
}

// Int returns component i as a sign-extended integer.
func (v Value) Int(i int) int64 {
	switch v.base {
	case Int:
		return int64(int32(uint32(v.bits[i])))
	case Int64:
		return int64(v.bits[i])
	case Half, Float, Double:
		return int64(v.Float(i))
	default:
		return int64(v.bits[i])
	}
}

// Uint returns component i as an unsigned integer.
func (v Value) Uint(i int) uint64 {
	if v.base.IsFloat() {
		return uint64(v.Float(i))
	}
	return v.bits[i]
}

// Bool returns component i as a boolean; non-zero is true.
func (v Value) Bool(i int) bool {
	if v.base.IsFloat() {
		return v.Float(i) != 0
	}
	return v.bits[i] != 0
}

// Component returns component i as a scalar value.
func (v Value) Component(i int) Value {
	return Value{base: v.base, rows: 1, cols: 1, bits: []uint64{v.bits[i]}}
}

// At returns the component in column c, row r.
func (v Value) At(c, r int) Value {
	return v.Component(c*v.rows + r)
}

// Column returns column c of a matrix as a vector.
func (v Value) Column(c int) Value {
	bits := append([]uint64(nil), v.bits[c*v.rows:(c+1)*v.rows]...)
	return Value{base: v.base, rows: v.rows, cols: 1, bits: bits}
}

// Components returns the components as scalar values in column-major order.
func (v Value) Components() []Value {
	out := make([]Value, len(v.bits))
	for i := range v.bits {
		out[i] = v.Component(i)
	}
	return out
}

// Flatten returns the components converted to float64 in column-major order.
func (v Value) Flatten() []float64 {
	out := make([]float64, len(v.bits))
	for i := range v.bits {
		out[i] = v.Float(i)
	}
	return out
}

// RowMajor returns the components in row-major order.
func (v Value) RowMajor() []Value {
	out := make([]Value, 0, len(v.bits))
	for r := 0; r < v.rows; r++ {
		for c := 0; c < v.cols; c++ {
			out = append(out, v.At(c, r))
		}
	}
	return out
}

// Type returns the type of v. It panics on the zero Value.
func (v Value) Type() *Type {
	t, err := TypeOf(v)
	if err != nil {
		panic(err)
	}
	return t
}

// Equal reports bitwise equality of base, shape and components.
func (v Value) Equal(o Value) bool {
	if v.base != o.base || v.rows != o.rows || v.cols != o.cols || len(v.bits) != len(o.bits) {
		return false
	}
	for i := range v.bits {
		if v.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// IsFinite reports whether every float component is finite. Integer and
// boolean values are always finite.
func (v Value) IsFinite() bool {
	if !v.base.IsFloat() {
		return true
	}
	for i := range v.bits {
		f := v.Float(i)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

// String renders v for diagnostics, e.g. "vec3(1, 2, 3)".
func (v Value) String() string {
	if v.IsZero() {
		return "<none>"
	}
	parts := make([]string, len(v.bits))
	for i := range v.bits {
		switch {
		case v.base == Bool:
			parts[i] = fmt.Sprint(v.Bool(i))
		case v.base.IsFloat():
			parts[i] = fmt.Sprint(v.Float(i))
		case v.base.IsSigned():
			parts[i] = fmt.Sprint(v.Int(i))
		default:
			parts[i] = fmt.Sprint(v.Uint(i))
		}
	}
	t := Get(v.base, v.rows, v.cols)
	if t.IsScalar() {
		return parts[0]
	}
	return t.Name() + "(" + strings.Join(parts, ", ") + ")"
}

// TypeOf returns the unique type whose shape matches v.
func TypeOf(v Value) (*Type, error) {
	t := Get(v.base, v.rows, v.cols)
	if t == nil || len(v.bits) != v.rows*v.cols || v.IsZero() {
		return nil, fixturegen.NewError(fixturegen.ErrInvalidType,
			"no type for %s value with %d rows and %d columns", v.base, v.rows, v.cols)
	}
	return t, nil
}
