// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gogpu/fixturegen"
)

// Parse builds a value of type t from its components written as decimal
// literals, in column-major order. A single component is broadcast to
// every component. Booleans accept true, false, 1 and 0, and floats
// accept hex bit patterns such as 0x3f800000.
func Parse(t *Type, comps ...string) (Value, error) {
	n := t.Components()
	if len(comps) == 1 && n > 1 {
		c := comps[0]
		comps = make([]string, n)
		for i := range comps {
			comps[i] = c
		}
	}
	if len(comps) != n {
		return Value{}, fixturegen.NewError(fixturegen.ErrInvalidType,
			"%s needs %d components, got %d", t, n, len(comps))
	}
	bits := make([]uint64, n)
	for i, c := range comps {
		b, err := parseComponent(t.base, strings.TrimSpace(c))
		if err != nil {
			return Value{}, fixturegen.Wrap(fixturegen.ErrInvalidType, err, "component %d of %s", i, t)
		}
		bits[i] = b
	}
	return NewValue(t.base, t.rows, t.cols, bits)
}

func parseComponent(base BaseType, s string) (uint64, error) {
	switch {
	case base == Bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return 0, errors.Wrapf(err, "parse bool %q", s)
		}
		if v {
			return 1, nil
		}
		return 0, nil
	case base.IsFloat():
		if strings.HasPrefix(s, "0x") && len(s) == 2+base.Size()*2 {
			b, err := strconv.ParseUint(s[2:], 16, 64)
			return b, errors.Wrapf(err, "parse bit pattern %q", s)
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "parse float %q", s)
		}
		return base.encodeFloat(x), nil
	case base.IsSigned():
		x, err := strconv.ParseInt(s, 0, base.Bits())
		if err != nil {
			return 0, errors.Wrapf(err, "parse int %q", s)
		}
		return base.mask(uint64(x)), nil
	default:
		x, err := strconv.ParseUint(strings.TrimSuffix(s, "u"), 0, base.Bits())
		if err != nil {
			return 0, errors.Wrapf(err, "parse uint %q", s)
		}
		return x, nil
	}
}
