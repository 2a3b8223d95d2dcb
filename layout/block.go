// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"strconv"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/types"
)

// Packing is a uniform block packing discipline.
type Packing uint8

const (
	Std140 Packing = iota
	Shared
)

// String returns the layout qualifier, e.g. "std140".
func (p Packing) String() string {
	if p == Shared {
		return "shared"
	}
	return "std140"
}

// Order is a matrix orientation.
type Order uint8

const (
	// Inherit takes the orientation of the enclosing field or block.
	Inherit Order = iota
	ColumnMajor
	RowMajor
)

// String returns the layout qualifier, or "" for Inherit.
func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "column_major"
	case RowMajor:
		return "row_major"
	default:
		return ""
	}
}

// resolve returns o, or parent when o is Inherit.
func (o Order) resolve(parent Order) Order {
	if o == Inherit {
		return parent
	}
	return o
}

// Struct is a named structure type.
type Struct struct {
	Name    string
	Members []Field
}

// Field is a block field or structure member. Exactly one of Type and
// Struct is set.
type Field struct {
	Name   string
	Type   *types.Type
	Struct *Struct

	// ArraySize is the element count of an array field; 0 for non-arrays.
	ArraySize int

	// Order overrides the matrix orientation for this field.
	Order Order
}

// IsArray reports whether f is an array.
func (f Field) IsArray() bool { return f.ArraySize > 0 }

// TypeName returns the declared element type name.
func (f Field) TypeName() string {
	if f.Struct != nil {
		return f.Struct.Name
	}
	return f.Type.Name()
}

// ArraySuffix returns "[n]" for arrays and "" otherwise.
func (f Field) ArraySuffix() string {
	if !f.IsArray() {
		return ""
	}
	return "[" + strconv.Itoa(f.ArraySize) + "]"
}

// Block is a uniform block.
type Block struct {
	Name     string
	Instance string // instance name, or "" for an anonymous instance
	Packing  Packing
	Order    Order // default orientation; Inherit means column-major
	Fields   []Field
}

// Validate checks field name uniqueness, array sizes and field types.
// Empty structures are accepted; Compute prunes them.
func (b *Block) Validate() error {
	if b.Name == "" {
		return fixturegen.NewError(fixturegen.ErrInvalidLayout, "block without a name")
	}
	if err := validateFields(b.Name, b.Fields); err != nil {
		return err
	}
	for _, s := range b.Structs() {
		if err := validateFields(s.Name, s.Members); err != nil {
			return err
		}
	}
	return nil
}

func validateFields(owner string, fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		switch {
		case f.Name == "":
			return fixturegen.NewError(fixturegen.ErrInvalidLayout, "%s has an unnamed field", owner)
		case seen[f.Name]:
			return fixturegen.NewError(fixturegen.ErrInvalidLayout, "%s declares %s twice", owner, f.Name)
		case (f.Type == nil) == (f.Struct == nil):
			return fixturegen.NewError(fixturegen.ErrInvalidLayout, "%s.%s needs exactly one of a type and a structure", owner, f.Name)
		case f.ArraySize < 0:
			return fixturegen.NewError(fixturegen.ErrInvalidLayout, "%s.%s has array size %d", owner, f.Name, f.ArraySize)
		}
		seen[f.Name] = true
	}
	return nil
}

// Structs returns the structures used by the block, each after the
// structures it contains, in order of first use.
func (b *Block) Structs() []*Struct {
	var out []*Struct
	seen := make(map[*Struct]bool)
	var visit func(fields []Field)
	visit = func(fields []Field) {
		for _, f := range fields {
			if f.Struct == nil || seen[f.Struct] {
				continue
			}
			seen[f.Struct] = true
			visit(f.Struct.Members)
			out = append(out, f.Struct)
		}
	}
	visit(b.Fields)
	return out
}

// InstancePrefix returns the prefix of member expressions in shader
// source: "instance." or "".
func (b *Block) InstancePrefix() string {
	if b.Instance == "" {
		return ""
	}
	return b.Instance + "."
}

// order returns the block's default orientation.
func (b *Block) order() Order {
	return b.Order.resolve(ColumnMajor)
}
