// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"math"

	"github.com/gogpu/fixturegen"
)

// FromNative converts a Go numeric container to a Value.
//
// Scalars are bool, int32, int64, uint32, uint64, float32 and float64.
// Vectors are slices of a scalar type. Matrices are slices of column
// slices, e.g. [][]float32 with len(m) columns.
func FromNative(x any) (Value, error) {
	switch n := x.(type) {
	case bool:
		return B(n), nil
	case int32:
		return I(int64(n)), nil
	case int64:
		return IntsOf(Int64, n), nil
	case uint32:
		return U(uint64(n)), nil
	case uint64:
		return mustValue(Uint64, 1, 1, []uint64{n}), nil
	case float32:
		return mustValue(Float, 1, 1, []uint64{uint64(math.Float32bits(n))}), nil
	case float64:
		return D(n), nil
	case []bool:
		return sliceValue(Bool, n, func(c bool) uint64 { return Bools(c).bits[0] })
	case []int32:
		return sliceValue(Int, n, func(c int32) uint64 { return uint64(uint32(c)) })
	case []int64:
		return sliceValue(Int64, n, func(c int64) uint64 { return uint64(c) })
	case []uint32:
		return sliceValue(Uint, n, func(c uint32) uint64 { return uint64(c) })
	case []uint64:
		return sliceValue(Uint64, n, func(c uint64) uint64 { return c })
	case []float32:
		return sliceValue(Float, n, func(c float32) uint64 { return uint64(math.Float32bits(c)) })
	case []float64:
		return sliceValue(Double, n, math.Float64bits)
	case [][]float32:
		return matrixValue(Float, n, func(c float32) uint64 { return uint64(math.Float32bits(c)) })
	case [][]float64:
		return matrixValue(Double, n, math.Float64bits)
	default:
		return Value{}, fixturegen.NewError(fixturegen.ErrInvalidType, "unsupported native value %T", x)
	}
}

func sliceValue[T any](base BaseType, comps []T, enc func(T) uint64) (Value, error) {
	return NewValue(base, len(comps), 1, encodeAll(comps, enc))
}

func matrixValue[T any](base BaseType, columns [][]T, enc func(T) uint64) (Value, error) {
	var bits []uint64
	rows := -1
	for _, col := range columns {
		if rows >= 0 && len(col) != rows {
			return Value{}, fixturegen.NewError(fixturegen.ErrInvalidType, "ragged matrix columns")
		}
		rows = len(col)
		bits = append(bits, encodeAll(col, enc)...)
	}
	return NewValue(base, rows, len(columns), bits)
}

// TypeOfNative returns the type matching a Go numeric container.
func TypeOfNative(x any) (*Type, error) {
	v, err := FromNative(x)
	if err != nil {
		return nil, err
	}
	return TypeOf(v)
}
