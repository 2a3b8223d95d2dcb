// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleValue builds a value of shape typ with distinct components.
func sampleValue(t *testing.T, typ *Type) Value {
	t.Helper()
	bits := make([]uint64, typ.Components())
	for i := range bits {
		switch {
		case typ.Base() == Bool:
			bits[i] = uint64(i % 2)
		case typ.Base().IsFloat():
			bits[i] = typ.Base().encodeFloat(float64(i) + 0.5)
		default:
			bits[i] = uint64(i + 1)
		}
	}
	v, err := NewValue(typ.Base(), typ.Rows(), typ.Cols(), bits)
	require.NoError(t, err)
	return v
}

func TestTypeOf_RoundTrip(t *testing.T) {
	for _, typ := range All() {
		t.Run(typ.Name(), func(t *testing.T) {
			got, err := TypeOf(sampleValue(t, typ))
			require.NoError(t, err)
			assert.Same(t, typ, got)
		})
	}
}

func TestTypeOf_Invalid(t *testing.T) {
	_, err := TypeOf(Value{})
	assert.Error(t, err)

	_, err = NewValue(Int, 2, 2, make([]uint64, 4))
	assert.Error(t, err, "no integer matrices")

	_, err = NewValue(Float, 3, 1, make([]uint64, 2))
	assert.Error(t, err, "component count mismatch")
}

func TestValue_ColumnMajor(t *testing.T) {
	// mat2x3: two columns of three rows.
	m, err := FromColumns(FloatVec(1, 2, 3), FloatVec(4, 5, 6))
	require.NoError(t, err)

	assert.Same(t, Mat2x3, m.Type())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Flatten())
	assert.Equal(t, 4.0, m.At(1, 0).Float(0))
	assert.True(t, m.Column(1).Equal(FloatVec(4, 5, 6)))

	var rowMajor []float64
	for _, c := range m.RowMajor() {
		rowMajor = append(rowMajor, c.Float(0))
	}
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, rowMajor)
}

func TestValue_IntegersAndBools(t *testing.T) {
	v := Ints(0, -7, 89)
	assert.Same(t, Ivec3, v.Type())
	assert.Equal(t, int64(-7), v.Int(1))
	assert.Equal(t, uint64(0xfffffff9), v.Bits(1), "stored as 32-bit two's complement")

	u := Uints(math.MaxUint32, 0)
	assert.Equal(t, uint64(math.MaxUint32), u.Uint(0))

	b := Bools(true, false)
	assert.Same(t, Bvec2, b.Type())
	assert.True(t, b.Bool(0))
	assert.False(t, b.Bool(1))
	assert.Equal(t, "bvec2(true, false)", b.String())
}

func TestValue_FloatFidelity(t *testing.T) {
	negZero := F(math.Copysign(0, -1))
	assert.Equal(t, uint64(0x80000000), negZero.Bits(0))
	assert.False(t, negZero.Equal(F(0)), "signed zeros are distinct")

	inf := F(math.Inf(1))
	assert.True(t, math.IsInf(inf.Float(0), 1))
	assert.False(t, inf.IsFinite())

	d := D(0.1)
	assert.Equal(t, math.Float64bits(0.1), d.Bits(0))
	assert.NotEqual(t, 0.1, F(0.1).Float(0), "float32 rounding")

	h := FloatsOf(Half, 2, 1, 1.0, -2.0)
	assert.Same(t, F16vec2, h.Type())
	assert.Equal(t, uint64(0x3c00), h.Bits(0))
	assert.Equal(t, -2.0, h.Float(1))
}

func TestValue_Splat(t *testing.T) {
	assert.True(t, Splat(F(2), 3).Equal(FloatVec(2, 2, 2)))
	assert.True(t, Splat(I(5), 1).Equal(I(5)))
}

func TestFromNative(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *Type
	}{
		{"bool", true, BoolType},
		{"int32", int32(-1), IntType},
		{"uint32", uint32(1), UintType},
		{"float32", float32(1), FloatType},
		{"float64", 1.0, DoubleType},
		{"int64", int64(3), Int64Type},
		{"ivec3", []int32{0, 8, 89}, Ivec3},
		{"bvec2", []bool{true, false}, Bvec2},
		{"vec4", []float32{1, 2, 3, 4}, Vec4},
		{"dvec3", []float64{1, 2, 3}, Dvec3},
		{"uvec2", []uint32{1, 2}, Uvec2},
		{"mat2x3", [][]float32{{1, 2, 3}, {4, 5, 6}}, Mat2x3},
		{"dmat4", [][]float64{{1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4}}, Dmat4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeOfNative(tt.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want.Name(), got.Name()); diff != "" {
				t.Errorf("TypeOfNative mismatch (-want +got):\n%s", diff)
			}
		})
	}

	_, err := FromNative("vec3")
	assert.Error(t, err)
	_, err = FromNative([][]float32{{1, 2}, {1}})
	assert.Error(t, err)
	_, err = FromNative([]float32{1, 2, 3, 4, 5})
	assert.Error(t, err)
}
