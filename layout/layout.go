// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"strconv"
	"strings"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/types"
)

// Unknown marks an offset or stride chosen by the implementation.
const Unknown = -1

// vec4Align is the base alignment of a vec4, the rounding unit of arrays
// and structures under std140.
const vec4Align = 16

// Step is one element of a leaf path: a member name and, for elements of
// arrays of structures, an index.
type Step struct {
	Member string
	Index  int // -1 when the member is not indexed
}

// Leaf is a field of basic type reached by expanding structures and
// arrays of structures. Arrays of basic types are a single leaf.
type Leaf struct {
	Path      []Step
	Type      *types.Type
	ArraySize int // 0 for non-arrays
	RowMajor  bool

	Offset       int
	ArrayStride  int // 0 for non-arrays
	MatrixStride int // 0 for non-matrices
}

// Name returns the path as used in shader source and API queries, e.g.
// "s[1].m".
func (l Leaf) Name() string {
	var b strings.Builder
	for i, s := range l.Path {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Member)
		if s.Index >= 0 {
			b.WriteString("[" + strconv.Itoa(s.Index) + "]")
		}
	}
	return b.String()
}

// FieldLayout is the placement of a top-level block field.
type FieldLayout struct {
	Name        string
	Offset      int
	Size        int
	Align       int
	ArrayStride int
}

// Layout is the computed layout of a block.
type Layout struct {
	Block  *Block
	Size   int // Unknown under shared packing
	Fields []FieldLayout
	Leaves []Leaf
}

// APIName returns the name of a leaf as reported by the implementation:
// prefixed with the block name when the block has an instance name.
func (l *Layout) APIName(leaf Leaf) string {
	if l.Block.Instance != "" {
		return l.Block.Name + "." + leaf.Name()
	}
	return leaf.Name()
}

// Expr returns the shader expression reading leaf.
func (l *Layout) Expr(leaf Leaf) string {
	return l.Block.InstancePrefix() + leaf.Name()
}

// info is the std140 size and alignment of a field.
type info struct {
	align, size  int
	arrayStride  int
	matrixStride int
}

// basicInfo returns the std140 placement of a non-array basic type.
func basicInfo(t *types.Type, rowMajor bool) info {
	n := t.Base().Size()
	switch {
	case t.IsScalar():
		return info{align: n, size: n}
	case t.IsVector():
		align := 4 * n
		if t.Rows() == 2 {
			align = 2 * n
		}
		return info{align: align, size: t.Rows() * n}
	default:
		// A matrix is an array of column vectors, or of row vectors when
		// row-major.
		count, comps := t.Cols(), t.Rows()
		if rowMajor {
			count, comps = t.Rows(), t.Cols()
		}
		vec := basicInfo(types.Vector(t.Base(), comps), false)
		stride := numeric.RoundUp(vec.size, numeric.RoundUp(vec.align, vec4Align))
		return info{align: numeric.RoundUp(vec.align, vec4Align), size: count * stride, matrixStride: stride}
	}
}

// elementInfo returns the placement of one element of f.
func elementInfo(f Field, order Order) info {
	if f.Struct != nil {
		return structInfo(f.Struct, order)
	}
	return basicInfo(f.Type, order == RowMajor)
}

// fieldInfo returns the placement of f, arrays included.
func fieldInfo(f Field, order Order) info {
	e := elementInfo(f, order)
	if !f.IsArray() {
		return e
	}
	align := numeric.RoundUp(e.align, vec4Align)
	stride := numeric.RoundUp(e.size, align)
	return info{align: align, size: stride * f.ArraySize, arrayStride: stride, matrixStride: e.matrixStride}
}

func structInfo(s *Struct, order Order) info {
	align := vec4Align
	cursor := 0
	for _, m := range s.Members {
		mi := fieldInfo(m, m.Order.resolve(order))
		align = max(align, mi.align)
		cursor = numeric.RoundUp(cursor, mi.align) + mi.size
	}
	align = numeric.RoundUp(align, vec4Align)
	return info{align: align, size: numeric.RoundUp(cursor, align)}
}

// Compute lays out b. Empty structures and the fields using them are
// pruned first; the returned Layout refers to the pruned block. Under
// shared packing offsets and strides are Unknown.
func Compute(b *Block) (*Layout, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b = Prune(b)
	if len(b.Fields) == 0 {
		return nil, fixturegen.NewError(fixturegen.ErrInvalidLayout, "block %s has no fields", b.Name)
	}
	l := &Layout{Block: b}
	known := b.Packing == Std140
	order := b.order()

	cursor := 0
	for _, f := range b.Fields {
		fo := f.Order.resolve(order)
		fi := fieldInfo(f, fo)
		offset := numeric.RoundUp(cursor, fi.align)
		cursor = offset + fi.size

		fl := FieldLayout{Name: f.Name, Offset: offset, Size: fi.size, Align: fi.align, ArrayStride: fi.arrayStride}
		if !known {
			fl = FieldLayout{Name: f.Name, Offset: Unknown, Size: Unknown, Align: Unknown, ArrayStride: Unknown}
		}
		l.Fields = append(l.Fields, fl)
		l.leaves(nil, f, fo, offset, known)
	}
	l.Size = numeric.RoundUp(cursor, vec4Align)
	if !known {
		l.Size = Unknown
	}
	return l, nil
}

// leaves appends the leaves of f placed at offset.
func (l *Layout) leaves(prefix []Step, f Field, order Order, offset int, known bool) {
	if f.Struct == nil {
		fi := fieldInfo(f, order)
		leaf := Leaf{
			Path:         appendStep(prefix, Step{Member: f.Name, Index: -1}),
			Type:         f.Type,
			ArraySize:    f.ArraySize,
			RowMajor:     f.Type.IsMatrix() && order == RowMajor,
			Offset:       offset,
			ArrayStride:  fi.arrayStride,
			MatrixStride: fi.matrixStride,
		}
		if !known {
			leaf.Offset = Unknown
			if leaf.ArraySize > 0 {
				leaf.ArrayStride = Unknown
			}
			if leaf.Type.IsMatrix() {
				leaf.MatrixStride = Unknown
			}
		}
		l.Leaves = append(l.Leaves, leaf)
		return
	}

	count, stride := 1, 0
	if f.IsArray() {
		count, stride = f.ArraySize, fieldInfo(f, order).arrayStride
	}
	for i := 0; i < count; i++ {
		step := Step{Member: f.Name, Index: -1}
		if f.IsArray() {
			step.Index = i
		}
		path := appendStep(prefix, step)
		base := offset + i*stride
		cursor := base
		for _, m := range f.Struct.Members {
			mo := m.Order.resolve(order)
			mi := fieldInfo(m, mo)
			moff := numeric.RoundUp(cursor-base, mi.align) + base
			cursor = moff + mi.size
			l.leaves(path, m, mo, moff, known)
		}
	}
}

func appendStep(prefix []Step, s Step) []Step {
	return append(append(make([]Step, 0, len(prefix)+1), prefix...), s)
}
