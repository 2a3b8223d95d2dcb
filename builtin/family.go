// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package builtin

import (
	"strconv"
	"strings"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/types"
)

// ExtFP64 is the extension providing double precision before GLSL 4.00.
const ExtFP64 = "GL_ARB_gpu_shader_fp64"

// family selects the language and float precision of a catalogue.
type family struct {
	name  string
	es    bool
	float types.BaseType // float base of genType overloads
}

var (
	familyGLSL   = family{name: "glsl", float: types.Float}
	familyGLSLES = family{name: "glsl-es", es: true, float: types.Float}
	familyFP64   = family{name: "fp64", float: types.Double}
)

// GLSL returns the desktop GLSL 1.10 - 1.50 catalogue.
func GLSL() *Catalogue { return build(familyGLSL) }

// GLSLES returns the GLSL ES 1.00 and 3.00 catalogue.
func GLSLES() *Catalogue { return build(familyGLSLES) }

// FP64 returns the double precision catalogue. Every signature requires
// GLSL 1.50 with GL_ARB_gpu_shader_fp64.
func FP64() *Catalogue { return build(familyFP64) }

// Catalogues returns the three catalogues in a fixed order.
func Catalogues() []*Catalogue {
	return []*Catalogue{GLSL(), GLSLES(), FP64()}
}

func build(f family) *Catalogue {
	b := &builder{fam: f, cat: NewCatalogue(f.name)}
	b.angleFunctions()
	b.exponentialFunctions()
	b.commonFunctions()
	b.geometricFunctions()
	b.matrixFunctions()
	b.relationalFunctions()
	b.operators()
	fixturegen.Logger().Debug("builtin: catalogue built", "name", f.name, "signatures", b.cat.Len())
	return b.cat
}

// builder registers overloads for one family.
type builder struct {
	fam family
	cat *Catalogue
}

// fp64 reports whether the catalogue is the double precision one.
func (b *builder) fp64() bool { return b.fam.float == types.Double }

// version maps a desktop version number of an overload to the family's
// version, raised to the first version providing every involved type.
// ok is false when the overload does not exist in the family.
func (b *builder) version(desktop int, result *types.Type, args []*types.Type) (glsl.Version, bool) {
	var v glsl.Version
	switch {
	case b.fp64():
		v = glsl.Version150
	case b.fam.es && desktop <= 110:
		v = glsl.VersionES100
	case b.fam.es:
		v = glsl.VersionES300
	default:
		v = glsl.MustFromNumber(desktop, false)
	}
	involved := append([]*types.Type{result}, args...)
	hasDouble := false
	for _, t := range involved {
		if t.Base() == types.Double {
			hasDouble = true
			continue
		}
		first, ok := t.MinVersion(b.fam.es)
		if !ok {
			return glsl.Version{}, false
		}
		v = glsl.Max(v, first)
	}
	if hasDouble != b.fp64() {
		return glsl.Version{}, false
	}
	return v, true
}

// def describes one overload to register.
type def struct {
	name     string
	template string
	version  int    // desktop version number
	tol      string // tolerance rule; defaults to name
	result   *types.Type
	args     []*types.Type
	eval     evalFunc
	in       inputs
}

func (b *builder) add(d def) {
	v, ok := b.version(d.version, d.result, d.args)
	if !ok {
		return
	}
	sig := Signature{
		Name:     d.name,
		Template: d.template,
		Version:  v,
		Result:   d.result,
		Args:     d.args,
		eval:     d.eval,
	}
	if b.fp64() {
		sig.Extension = ExtFP64
	}
	tol := d.tol
	if tol == "" {
		tol = d.name
	}
	vs := vectors(sig, d.in, tol, seedOf(b.fam.name, d.name, d.args))
	if len(vs) == 0 {
		fixturegen.Logger().Warn("builtin: overload without vectors", "signature", sig.Key())
		return
	}
	b.cat.Register(sig, vs)
}

// genTypes returns the scalar and vector types of base with 1..4 components.
func genTypes(base types.BaseType) []*types.Type {
	return types.Family(base)
}

// vecTypes returns the vector types of base with 2..4 components.
func vecTypes(base types.BaseType) []*types.Type {
	return types.Family(base)[1:]
}

// call returns the template of a function call with n arguments.
func call(name string, n int) string {
	params := make([]string, n)
	for i := range params {
		params[i] = "{" + strconv.Itoa(i) + "}"
	}
	return name + "(" + strings.Join(params, ", ") + ")"
}
