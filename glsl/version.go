// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/fixturegen"
)

// Version represents a GLSL or GLSL ES language version.
//
// Versions are totally ordered within a family. Desktop and ES versions are
// not comparable with each other.
type Version struct {
	Major uint8
	Minor uint8
	ES    bool // true for GLSL ES
}

// Desktop GLSL versions.
var (
	Version110 = Version{Major: 1, Minor: 10}
	Version120 = Version{Major: 1, Minor: 20}
	Version130 = Version{Major: 1, Minor: 30}
	Version140 = Version{Major: 1, Minor: 40}
	Version150 = Version{Major: 1, Minor: 50}
	Version330 = Version{Major: 3, Minor: 30}
	Version400 = Version{Major: 4, Minor: 0}
	Version410 = Version{Major: 4, Minor: 10}
	Version420 = Version{Major: 4, Minor: 20}
	Version430 = Version{Major: 4, Minor: 30}
	Version440 = Version{Major: 4, Minor: 40}
	Version450 = Version{Major: 4, Minor: 50}
	Version460 = Version{Major: 4, Minor: 60}
)

// GLSL ES versions.
var (
	VersionES100 = Version{Major: 1, Minor: 0, ES: true}
	VersionES300 = Version{Major: 3, Minor: 0, ES: true}
	VersionES310 = Version{Major: 3, Minor: 10, ES: true}
	VersionES320 = Version{Major: 3, Minor: 20, ES: true}
)

var (
	desktopVersions = []Version{
		Version110, Version120, Version130, Version140, Version150, Version330,
		Version400, Version410, Version420, Version430, Version440, Version450, Version460,
	}
	esVersions = []Version{VersionES100, VersionES300, VersionES310, VersionES320}
)

// Versions returns the released versions of a family in ascending order.
func Versions(es bool) []Version {
	src := desktopVersions
	if es {
		src = esVersions
	}
	return append([]Version(nil), src...)
}

// Number returns the numeric form used by #version, e.g. 110, 300.
func (v Version) Number() int {
	return int(v.Major)*100 + int(v.Minor)
}

// Decimal returns the canonical decimal rendering, e.g. "1.10", "3.00".
func (v Version) Decimal() string {
	return fmt.Sprintf("%d.%02d", v.Major, v.Minor)
}

// String returns the decimal rendering with an "es" suffix for GLSL ES.
func (v Version) String() string {
	if v.ES {
		return v.Decimal() + " es"
	}
	return v.Decimal()
}

// Directive returns the argument of the #version directive.
// GLSL ES 1.00 predates the "es" profile token.
func (v Version) Directive() string {
	if v.ES && v.Number() >= 300 {
		return fmt.Sprintf("%d es", v.Number())
	}
	return strconv.Itoa(v.Number())
}

// DirName returns the feature directory name, e.g. "glsl-1.10", "glsl-es-3.00".
func (v Version) DirName() string {
	if v.ES {
		return "glsl-es-" + v.Decimal()
	}
	return "glsl-" + v.Decimal()
}

// Require returns the [require] section line for this version.
func (v Version) Require() string {
	if v.ES {
		return "GLSL ES >= " + v.Decimal()
	}
	return "GLSL >= " + v.Decimal()
}

// Compare compares two versions of the same family. ok is false when the
// families differ and the versions cannot be ordered.
func (v Version) Compare(o Version) (cmp int, ok bool) {
	if v.ES != o.ES {
		return 0, false
	}
	return compareInts(v.Number(), o.Number()), true
}

// Less reports whether v precedes o. It panics if the versions belong to
// different families.
func (v Version) Less(o Version) bool {
	c, ok := v.Compare(o)
	if !ok {
		panic(fmt.Sprintf("glsl: cannot order %s and %s", v, o))
	}
	return c < 0
}

// CompareNumber compares v with a numeric version such as 130.
func (v Version) CompareNumber(n int) int {
	return compareInts(v.Number(), n)
}

// CompareDecimal compares v with a decimal version such as 1.3.
func (v Version) CompareDecimal(d float64) int {
	return compareInts(v.Number(), int(math.Round(d*100)))
}

// AtLeast reports whether v is n or later, n being a numeric version.
func (v Version) AtLeast(n int) bool {
	return v.Number() >= n
}

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Max returns the later of two versions of the same family.
func Max(a, b Version) Version {
	if a.Less(b) {
		return b
	}
	return a
}

// FromNumber returns the released version with the given number.
func FromNumber(n int, es bool) (Version, error) {
	for _, v := range Versions(es) {
		if v.Number() == n {
			return v, nil
		}
	}
	return Version{}, fixturegen.NewError(fixturegen.ErrInvalidVersion, "unknown version %d (es=%t)", n, es)
}

// MustFromNumber is like FromNumber but panics on unknown versions.
// It is meant for tables.
func MustFromNumber(n int, es bool) Version {
	v, err := FromNumber(n, es)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses "1.10", "110", "3.00 es", "300 es" and "es 3.00".
func Parse(s string) (Version, error) {
	fields := strings.Fields(strings.ToLower(s))
	es := false
	var num string
	for _, f := range fields {
		switch f {
		case "es":
			es = true
		case "core", "compatibility":
		default:
			if num != "" {
				return Version{}, fixturegen.NewError(fixturegen.ErrInvalidVersion, "malformed version %q", s)
			}
			num = f
		}
	}
	if num == "" {
		return Version{}, fixturegen.NewError(fixturegen.ErrInvalidVersion, "malformed version %q", s)
	}

	var n int
	if strings.Contains(num, ".") {
		d, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Version{}, fixturegen.Wrap(fixturegen.ErrInvalidVersion, err, "malformed version %q", s)
		}
		n = int(math.Round(d * 100))
	} else {
		i, err := strconv.Atoi(num)
		if err != nil {
			return Version{}, fixturegen.Wrap(fixturegen.ErrInvalidVersion, err, "malformed version %q", s)
		}
		n = i
	}
	return FromNumber(n, es)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
