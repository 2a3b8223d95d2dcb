// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/glsl"
)

type shapeKey struct {
	base       BaseType
	rows, cols int
}

var (
	all    []*Type
	byName = make(map[string]*Type)
	byKey  = make(map[shapeKey]*Type)
)

func define(class Class, base BaseType, rows, cols int, desktop, es int) *Type {
	t, err := New(typeName(class, base, rows, cols), class, base, rows, cols, glsl.Version{})
	if err != nil {
		panic(err)
	}
	if desktop != 0 {
		t.minDesktop = glsl.MustFromNumber(desktop, false)
	}
	if es != 0 {
		t.minES = glsl.MustFromNumber(es, true)
	}
	all = append(all, t)
	byName[t.name] = t
	byKey[shapeKey{base, rows, cols}] = t
	return t
}

func typeName(class Class, base BaseType, rows, cols int) string {
	switch class {
	case ClassVector:
		return fmt.Sprintf("%svec%d", base.vectorPrefix(), rows)
	case ClassMatrix:
		if rows == cols {
			return fmt.Sprintf("%smat%d", base.vectorPrefix(), cols)
		}
		return fmt.Sprintf("%smat%dx%d", base.vectorPrefix(), cols, rows)
	default:
		return base.String()
	}
}

// Scalar types.
var (
	BoolType   = define(ClassScalar, Bool, 1, 1, 110, 100)
	IntType    = define(ClassScalar, Int, 1, 1, 110, 100)
	UintType   = define(ClassScalar, Uint, 1, 1, 130, 300)
	Int64Type  = define(ClassScalar, Int64, 1, 1, 0, 0)
	Uint64Type = define(ClassScalar, Uint64, 1, 1, 0, 0)
	HalfType   = define(ClassScalar, Half, 1, 1, 0, 0)
	FloatType  = define(ClassScalar, Float, 1, 1, 110, 100)
	DoubleType = define(ClassScalar, Double, 1, 1, 400, 0)
)

// Vector types.
var (
	Bvec2 = define(ClassVector, Bool, 2, 1, 110, 100)
	Bvec3 = define(ClassVector, Bool, 3, 1, 110, 100)
	Bvec4 = define(ClassVector, Bool, 4, 1, 110, 100)
	Ivec2 = define(ClassVector, Int, 2, 1, 110, 100)
	Ivec3 = define(ClassVector, Int, 3, 1, 110, 100)
	Ivec4 = define(ClassVector, Int, 4, 1, 110, 100)
	Uvec2 = define(ClassVector, Uint, 2, 1, 130, 300)
	Uvec3 = define(ClassVector, Uint, 3, 1, 130, 300)
	Uvec4 = define(ClassVector, Uint, 4, 1, 130, 300)
	Vec2  = define(ClassVector, Float, 2, 1, 110, 100)
	Vec3  = define(ClassVector, Float, 3, 1, 110, 100)
	Vec4  = define(ClassVector, Float, 4, 1, 110, 100)
	Dvec2 = define(ClassVector, Double, 2, 1, 400, 0)
	Dvec3 = define(ClassVector, Double, 3, 1, 400, 0)
	Dvec4 = define(ClassVector, Double, 4, 1, 400, 0)

	I64vec2 = define(ClassVector, Int64, 2, 1, 0, 0)
	I64vec3 = define(ClassVector, Int64, 3, 1, 0, 0)
	I64vec4 = define(ClassVector, Int64, 4, 1, 0, 0)
	U64vec2 = define(ClassVector, Uint64, 2, 1, 0, 0)
	U64vec3 = define(ClassVector, Uint64, 3, 1, 0, 0)
	U64vec4 = define(ClassVector, Uint64, 4, 1, 0, 0)
	F16vec2 = define(ClassVector, Half, 2, 1, 0, 0)
	F16vec3 = define(ClassVector, Half, 3, 1, 0, 0)
	F16vec4 = define(ClassVector, Half, 4, 1, 0, 0)
)

// Matrix types, named matCxR.
var (
	Mat2   = define(ClassMatrix, Float, 2, 2, 110, 100)
	Mat3x2 = define(ClassMatrix, Float, 2, 3, 120, 300)
	Mat4x2 = define(ClassMatrix, Float, 2, 4, 120, 300)
	Mat2x3 = define(ClassMatrix, Float, 3, 2, 120, 300)
	Mat3   = define(ClassMatrix, Float, 3, 3, 110, 100)
	Mat4x3 = define(ClassMatrix, Float, 3, 4, 120, 300)
	Mat2x4 = define(ClassMatrix, Float, 4, 2, 120, 300)
	Mat3x4 = define(ClassMatrix, Float, 4, 3, 120, 300)
	Mat4   = define(ClassMatrix, Float, 4, 4, 110, 100)

	Dmat2   = define(ClassMatrix, Double, 2, 2, 400, 0)
	Dmat3x2 = define(ClassMatrix, Double, 2, 3, 400, 0)
	Dmat4x2 = define(ClassMatrix, Double, 2, 4, 400, 0)
	Dmat2x3 = define(ClassMatrix, Double, 3, 2, 400, 0)
	Dmat3   = define(ClassMatrix, Double, 3, 3, 400, 0)
	Dmat4x3 = define(ClassMatrix, Double, 3, 4, 400, 0)
	Dmat2x4 = define(ClassMatrix, Double, 4, 2, 400, 0)
	Dmat3x4 = define(ClassMatrix, Double, 4, 3, 400, 0)
	Dmat4   = define(ClassMatrix, Double, 4, 4, 400, 0)
)

// All returns every type of the model in definition order.
func All() []*Type {
	return append([]*Type(nil), all...)
}

// Get returns the type with the given base and shape, or nil.
func Get(base BaseType, rows, cols int) *Type {
	return byKey[shapeKey{base, rows, cols}]
}

// Vector returns the scalar type for n == 1 and the n-component vector
// type otherwise.
func Vector(base BaseType, n int) *Type {
	return Get(base, n, 1)
}

// Matrix returns the matCxR type of the given base, or nil.
func Matrix(base BaseType, cols, rows int) *Type {
	if cols < 2 || rows < 2 {
		return nil
	}
	return Get(base, rows, cols)
}

// ByName returns the type with the given GLSL name.
func ByName(name string) (*Type, error) {
	t, ok := byName[name]
	if !ok {
		return nil, fixturegen.NewError(fixturegen.ErrInvalidType, "unknown type %q", name)
	}
	return t, nil
}

// MustByName is like ByName but panics on unknown names.
func MustByName(name string) *Type {
	t, err := ByName(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Family returns the scalar followed by the 2-, 3- and 4-component vector
// types of a base type.
func Family(base BaseType) []*Type {
	return []*Type{Vector(base, 1), Vector(base, 2), Vector(base, 3), Vector(base, 4)}
}

// Matrices returns every matrix type of a base type, ordered by columns
// then rows.
func Matrices(base BaseType) []*Type {
	var out []*Type
	for c := 2; c <= 4; c++ {
		for r := 2; r <= 4; r++ {
			if t := Get(base, r, c); t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}
