// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/types"
)

func scenarioBlock() *Block {
	return &Block{
		Name:    "ubo",
		Packing: Std140,
		Fields: []Field{
			{Name: "a", Type: types.FloatType},
			{Name: "b", Type: types.Vec3},
			{Name: "c", Type: types.FloatType},
			{Name: "d", Type: types.Mat2, ArraySize: 2},
		},
	}
}

func TestCompute_Std140Offsets(t *testing.T) {
	l, err := Compute(scenarioBlock())
	require.NoError(t, err)

	offsets := map[string]int{}
	for _, f := range l.Fields {
		offsets[f.Name] = f.Offset
	}
	want := map[string]int{"a": 0, "b": 16, "c": 28, "d": 32}
	if diff := cmp.Diff(want, offsets); diff != "" {
		t.Errorf("offsets (-want +got):\n%s", diff)
	}
	assert.Equal(t, 32, l.Fields[3].ArrayStride)
	assert.Equal(t, 96, l.Size)

	d := l.Leaves[3]
	assert.Equal(t, "d", d.Name())
	assert.Equal(t, 2, d.ArraySize)
	assert.Equal(t, 32, d.ArrayStride)
	assert.Equal(t, 16, d.MatrixStride)
	assert.False(t, d.RowMajor)
}

func TestBasicInfo(t *testing.T) {
	tests := []struct {
		typ      *types.Type
		rowMajor bool
		want     info
	}{
		{types.FloatType, false, info{align: 4, size: 4}},
		{types.BoolType, false, info{align: 4, size: 4}},
		{types.Vec2, false, info{align: 8, size: 8}},
		{types.Vec3, false, info{align: 16, size: 12}},
		{types.Vec4, false, info{align: 16, size: 16}},
		{types.DoubleType, false, info{align: 8, size: 8}},
		{types.Dvec3, false, info{align: 32, size: 24}},
		{types.Mat3, false, info{align: 16, size: 48, matrixStride: 16}},
		{types.Mat2x3, false, info{align: 16, size: 32, matrixStride: 16}},
		{types.Mat2x3, true, info{align: 16, size: 48, matrixStride: 16}},
		{types.Dmat4, false, info{align: 32, size: 128, matrixStride: 32}},
	}
	for _, tt := range tests {
		t.Run(tt.typ.Name(), func(t *testing.T) {
			got := basicInfo(tt.typ, tt.rowMajor)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(info{})); diff != "" {
				t.Errorf("basicInfo (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompute_Structs(t *testing.T) {
	inner := &Struct{Name: "S", Members: []Field{
		{Name: "x", Type: types.FloatType},
		{Name: "y", Type: types.Vec2},
	}}
	b := &Block{
		Name:     "ubo",
		Instance: "u",
		Order:    RowMajor,
		Fields: []Field{
			{Name: "f", Type: types.FloatType},
			{Name: "s", Struct: inner, ArraySize: 2},
			{Name: "m", Type: types.Mat2x3},
			{Name: "n", Type: types.Mat2x3, Order: ColumnMajor},
		},
	}
	l, err := Compute(b)
	require.NoError(t, err)

	var names []string
	var offsets []int
	for _, leaf := range l.Leaves {
		names = append(names, l.APIName(leaf))
		offsets = append(offsets, leaf.Offset)
	}
	assert.Equal(t, []string{"ubo.f", "ubo.s[0].x", "ubo.s[0].y", "ubo.s[1].x", "ubo.s[1].y", "ubo.m", "ubo.n"}, names)
	assert.Equal(t, []int{0, 16, 24, 32, 40, 48, 96}, offsets)
	assert.Equal(t, "u.s[1].y", l.Expr(l.Leaves[4]))

	assert.True(t, l.Leaves[5].RowMajor)
	assert.False(t, l.Leaves[6].RowMajor)
	assert.Equal(t, 16, l.Fields[1].ArrayStride)
}

func TestCompute_Shared(t *testing.T) {
	b := scenarioBlock()
	b.Packing = Shared
	l, err := Compute(b)
	require.NoError(t, err)
	assert.Equal(t, Unknown, l.Size)
	for _, leaf := range l.Leaves {
		assert.Equal(t, Unknown, leaf.Offset, leaf.Name())
	}
	assert.Equal(t, Unknown, l.Leaves[3].ArrayStride)
	assert.Equal(t, Unknown, l.Leaves[3].MatrixStride)
	assert.Equal(t, 2, l.Leaves[3].ArraySize)
}

func TestCompute_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		block *Block
	}{
		{"unnamed", &Block{Fields: []Field{{Name: "a", Type: types.FloatType}}}},
		{"duplicate", &Block{Name: "b", Fields: []Field{
			{Name: "a", Type: types.FloatType}, {Name: "a", Type: types.IntType},
		}}},
		{"no type", &Block{Name: "b", Fields: []Field{{Name: "a"}}}},
		{"negative array", &Block{Name: "b", Fields: []Field{{Name: "a", Type: types.FloatType, ArraySize: -1}}}},
		{"empty", &Block{Name: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.block)
			require.Error(t, err)
			assert.True(t, fixturegen.IsKind(err, fixturegen.ErrInvalidLayout))
		})
	}
}

// =============================================================================
// Trim
// =============================================================================

func TestTrim_PrunesEmptyStructures(t *testing.T) {
	inner := &Struct{Name: "Inner", Members: []Field{{Name: "p", Type: types.FloatType}}}
	outer := &Struct{Name: "Outer", Members: []Field{{Name: "i", Struct: inner, ArraySize: 3}}}
	b := &Block{Name: "ubo", Fields: []Field{
		{Name: "a", Type: types.Vec4},
		{Name: "o", Struct: outer},
		{Name: "arr", Struct: inner, ArraySize: 2},
		{Name: "z", Type: types.Ivec2},
	}}

	trimmed := Trim(b, func(owner string, f Field) bool { return owner == "Inner" })
	l, err := Compute(trimmed)
	require.NoError(t, err)

	assert.Empty(t, l.Block.Structs())
	var names []string
	for _, f := range l.Block.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a", "z"}, names)
	for _, leaf := range l.Leaves {
		assert.NotContains(t, leaf.Name(), "arr")
	}

	// The original block is unchanged.
	assert.Len(t, b.Fields, 4)
	assert.Len(t, inner.Members, 1)
}

func TestCompute_PrunesEmptyStructure(t *testing.T) {
	empty := &Struct{Name: "E"}
	b := &Block{Name: "ubo", Fields: []Field{
		{Name: "a", Type: types.FloatType},
		{Name: "e", Struct: empty, ArraySize: 4},
	}}
	l, err := Compute(b)
	require.NoError(t, err)
	require.Len(t, l.Leaves, 1)
	assert.Equal(t, "a", l.Leaves[0].Name())
	assert.Empty(t, l.Block.Structs())
}

// =============================================================================
// Random blocks
// =============================================================================

func TestRandom_Std140Monotonic(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		r := numeric.NewRand(seed)
		b := Random(r, "ubo", Options{Fields: 8, MaxArray: 3, MaxDepth: 2, Types: BasicTypes(true)})
		l, err := Compute(b)
		require.NoError(t, err, "seed %d", seed)

		for i, f := range l.Fields {
			assert.Zero(t, f.Offset%f.Align, "seed %d field %s offset %d align %d", seed, f.Name, f.Offset, f.Align)
			if i > 0 {
				prev := l.Fields[i-1]
				// Not strictly greater: a field may start right at the end
				// of the previous one, as a float after a vec3 does (c=28
				// after b=16 in the block of TestCompute_Std140Offsets).
				assert.GreaterOrEqual(t, f.Offset, prev.Offset+prev.Size, "seed %d field %s", seed, f.Name)
			}
		}
		for _, leaf := range l.Leaves {
			a := basicInfo(leaf.Type, leaf.RowMajor).align
			assert.Zero(t, leaf.Offset%a, "seed %d leaf %s", seed, leaf.Name())
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	opts := Options{Fields: 6, MaxArray: 4, MaxDepth: 2}
	a := Random(numeric.NewRand(7), "ubo", opts)
	b := Random(numeric.NewRand(7), "ubo", opts)
	la, err := Compute(a)
	require.NoError(t, err)
	lb, err := Compute(b)
	require.NoError(t, err)
	if diff := cmp.Diff(la.Leaves, lb.Leaves); diff != "" {
		t.Errorf("random blocks differ (-a +b):\n%s", diff)
	}
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "a", fieldName(0))
	assert.Equal(t, "z", fieldName(25))
	assert.Equal(t, "aa", fieldName(26))
	assert.Equal(t, "ba", fieldName(52))
}
