// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"math"

	"github.com/x448/float16"
)

// BaseType is the element type of a scalar, vector or matrix.
type BaseType uint8

const (
	Bool   BaseType = iota // Boolean
	Int                    // Signed 32-bit integer
	Uint                   // Unsigned 32-bit integer
	Int64                  // Signed 64-bit integer
	Uint64                 // Unsigned 64-bit integer
	Half                   // 16-bit float
	Float                  // 32-bit float
	Double                 // 64-bit float
)

// String returns the GLSL scalar type name.
func (b BaseType) String() string {
	switch b {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Int64:
		return "int64_t"
	case Uint64:
		return "uint64_t"
	case Half:
		return "float16_t"
	case Float:
		return "float"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// vectorPrefix returns the prefix of the GLSL vector type name.
func (b BaseType) vectorPrefix() string {
	switch b {
	case Bool:
		return "b"
	case Int:
		return "i"
	case Uint:
		return "u"
	case Int64:
		return "i64"
	case Uint64:
		return "u64"
	case Half:
		return "f16"
	case Double:
		return "d"
	default:
		return ""
	}
}

// Size returns the size in bytes of one component in buffer storage.
// Booleans occupy 32 bits.
func (b BaseType) Size() int {
	switch b {
	case Half:
		return 2
	case Int64, Uint64, Double:
		return 8
	default:
		return 4
	}
}

// Bits returns the width of the component in bits.
func (b BaseType) Bits() int {
	return b.Size() * 8
}

// IsFloat reports whether b is a floating-point type.
func (b BaseType) IsFloat() bool {
	return b == Half || b == Float || b == Double
}

// IsInteger reports whether b is a signed or unsigned integer type.
func (b BaseType) IsInteger() bool {
	return b == Int || b == Uint || b == Int64 || b == Uint64
}

// IsSigned reports whether b is a signed integer type.
func (b BaseType) IsSigned() bool {
	return b == Int || b == Int64
}

// Is64 reports whether b is a 64-bit type.
func (b BaseType) Is64() bool {
	return b.Size() == 8
}

// encodeFloat returns the bit pattern of x rounded to b's width.
func (b BaseType) encodeFloat(x float64) uint64 {
	switch b {
	case Half:
		return uint64(float16.Fromfloat32(float32(x)).Bits())
	case Float:
		return uint64(math.Float32bits(float32(x)))
	default:
		return math.Float64bits(x)
	}
}

// decodeFloat converts the bit pattern of a float component to float64.
func (b BaseType) decodeFloat(bits uint64) float64 {
	switch b {
	case Half:
		return float64(float16.Frombits(uint16(bits)).Float32())
	case Float:
		return float64(math.Float32frombits(uint32(bits)))
	default:
		return math.Float64frombits(bits)
	}
}

// mask truncates bits to the width of b.
func (b BaseType) mask(bits uint64) uint64 {
	switch b.Size() {
	case 2:
		return bits & 0xffff
	case 4:
		return bits & 0xffffffff
	default:
		return bits
	}
}
