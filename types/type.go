// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"github.com/pkg/errors"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/glsl"
)

// Class classifies a type as scalar, vector or matrix.
type Class uint8

const (
	ClassScalar Class = iota
	ClassVector
	ClassMatrix
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassScalar:
		return "scalar"
	case ClassVector:
		return "vector"
	case ClassMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// Type is an immutable shading-language scalar, vector or matrix type.
//
// Rows counts vector components; Cols counts matrix columns and is 1 for
// scalars and vectors. A GLSL matCxR has C columns and R rows.
type Type struct {
	name  string
	class Class
	base  BaseType
	rows  int
	cols  int

	// First versions providing the type. A zero Version means the type is
	// not part of that family's core language.
	minDesktop glsl.Version
	minES      glsl.Version
}

// New constructs a type. It fails with ErrInvalidType when the class and
// dimensions disagree or when a matrix has a non-float base type.
// minVersion records the first version of its family with the type.
func New(name string, class Class, base BaseType, rows, cols int, minVersion glsl.Version) (*Type, error) {
	if err := checkShape(class, base, rows, cols); err != nil {
		return nil, fixturegen.Wrap(fixturegen.ErrInvalidType, err, "type %s", name)
	}
	t := &Type{name: name, class: class, base: base, rows: rows, cols: cols}
	if minVersion.ES {
		t.minES = minVersion
	} else {
		t.minDesktop = minVersion
	}
	return t, nil
}

func checkShape(class Class, base BaseType, rows, cols int) error {
	switch class {
	case ClassScalar:
		if rows != 1 || cols != 1 {
			return errors.Errorf("scalar must be 1x1, got rows=%d cols=%d", rows, cols)
		}
	case ClassVector:
		if cols != 1 || rows < 2 || rows > 4 {
			return errors.Errorf("vector needs 2..4 rows and 1 column, got rows=%d cols=%d", rows, cols)
		}
	case ClassMatrix:
		if rows < 2 || rows > 4 || cols < 2 || cols > 4 {
			return errors.Errorf("matrix needs 2..4 rows and columns, got rows=%d cols=%d", rows, cols)
		}
		if !base.IsFloat() {
			return errors.Errorf("matrix base must be floating point, got %s", base)
		}
	default:
		return errors.Errorf("unknown class %d", class)
	}
	if base > Double {
		return errors.Errorf("unknown base type %d", base)
	}
	return nil
}

// Name returns the GLSL type name.
func (t *Type) Name() string { return t.name }

// String returns the GLSL type name.
func (t *Type) String() string { return t.name }

// Class returns the type classification.
func (t *Type) Class() Class { return t.class }

// IsScalar reports whether t is a scalar type.
func (t *Type) IsScalar() bool { return t.class == ClassScalar }

// IsVector reports whether t is a vector type.
func (t *Type) IsVector() bool { return t.class == ClassVector }

// IsMatrix reports whether t is a matrix type.
func (t *Type) IsMatrix() bool { return t.class == ClassMatrix }

// Base returns the element base type.
func (t *Type) Base() BaseType { return t.base }

// Rows returns the number of rows (vector components).
func (t *Type) Rows() int { return t.rows }

// Cols returns the number of columns; 1 for scalars and vectors.
func (t *Type) Cols() int { return t.cols }

// Components returns rows*cols.
func (t *Type) Components() int { return t.rows * t.cols }

// IsSquare reports whether t is a square matrix.
func (t *Type) IsSquare() bool { return t.class == ClassMatrix && t.rows == t.cols }

// Equal reports whether two types are the same. Types are equal on name.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.name == o.name
}

// Scalar returns the scalar type of t's base; t itself for scalars.
func (t *Type) Scalar() *Type {
	return Get(t.base, 1, 1)
}

// Column returns the column vector type of a matrix, t itself otherwise.
func (t *Type) Column() *Type {
	if t.class != ClassMatrix {
		return t
	}
	return Get(t.base, t.rows, 1)
}

// Transpose returns the transposed matrix type, t itself otherwise.
func (t *Type) Transpose() *Type {
	if t.class != ClassMatrix {
		return t
	}
	return Get(t.base, t.cols, t.rows)
}

// WithBase returns the type with the same shape and a different base.
// It returns nil if no such type exists (matrices of integers).
func (t *Type) WithBase(b BaseType) *Type {
	return Get(b, t.rows, t.cols)
}

// MinVersion returns the first version of the family providing t, and
// false if t is not part of the family's core language.
func (t *Type) MinVersion(es bool) (glsl.Version, bool) {
	v := t.minDesktop
	if es {
		v = t.minES
	}
	return v, !v.IsZero()
}

// Available reports whether t is core in version v.
func (t *Type) Available(v glsl.Version) bool {
	first, ok := t.MinVersion(v.ES)
	if !ok {
		return false
	}
	return !v.Less(first)
}

// Extension returns the extension that provides t on versions before it
// is core, or "" if no extension is needed.
func (t *Type) Extension() string {
	switch t.base {
	case Double:
		return "GL_ARB_gpu_shader_fp64"
	case Int64, Uint64:
		return "GL_ARB_gpu_shader_int64"
	case Half:
		return "GL_AMD_gpu_shader_half_float"
	default:
		return ""
	}
}
