// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Float32ToHex returns the IEEE-754 bit pattern of f as "0x" followed by
// eight lower-case hex digits.
func Float32ToHex(f float32) string {
	return fmt.Sprintf("0x%08x", math.Float32bits(f))
}

// Float64ToHex returns the IEEE-754 bit pattern of f as "0x" followed by
// sixteen lower-case hex digits.
func Float64ToHex(f float64) string {
	return fmt.Sprintf("0x%016x", math.Float64bits(f))
}

// HexToFloat32 parses an 8-digit hex bit pattern, with or without the
// "0x" prefix, into a float32.
func HexToFloat32(s string) (float32, error) {
	bits, err := parseHex(s, 8)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

// HexToFloat64 parses a 16-digit hex bit pattern into a float64.
func HexToFloat64(s string) (float64, error) {
	bits, err := parseHex(s, 16)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

func parseHex(s string, digits int) (uint64, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(h) != digits {
		return 0, errors.Errorf("numeric: %q is not a %d-digit hex bit pattern", s, digits)
	}
	bits, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "numeric: parse %q", s)
	}
	return bits, nil
}

// Float16ToHex returns the binary16 bit pattern of f rounded to half
// precision, as "0x" followed by four hex digits.
func Float16ToHex(f float32) string {
	return fmt.Sprintf("0x%04x", float16.Fromfloat32(f).Bits())
}

// RoundHalf rounds f to the nearest binary16 value, ties to even.
func RoundHalf(f float32) float32 {
	return float16.Fromfloat32(f).Float32()
}

// Widen converts f to float64 exactly. Signs of zeros and infinities are
// preserved.
func Widen(f float32) float64 {
	return float64(f)
}

// Narrow rounds d to the nearest float32, ties to even.
func Narrow(d float64) float32 {
	return float32(d)
}

// FlushDenormal32 returns f with denormal values replaced by a zero of the
// same sign.
func FlushDenormal32(f float32) float32 {
	if f != 0 && math.Abs(float64(f)) < SmallestNormal32 {
		return float32(math.Copysign(0, float64(f)))
	}
	return f
}

// Limits of the binary32 and binary64 formats.
const (
	SmallestNormal32 = 0x1p-126
	SmallestNormal64 = 0x1p-1022
)
