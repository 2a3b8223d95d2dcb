// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package conversion

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/tmpl"
	"github.com/gogpu/fixturegen/types"
)

// Rule states whether values of one base type convert implicitly to
// another.
type Rule struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Pass     bool   `yaml:"pass"`
	Matrices bool   `yaml:"matrices"`
}

type ruleTable struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules parses an implicit conversion table.
func LoadRules(data []byte) ([]Rule, error) {
	var t ruleTable
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return nil, fixturegen.Wrap(fixturegen.ErrInvalidConfig, errors.WithStack(err), "parse conversion table")
	}
	for i, r := range t.Rules {
		for _, name := range []string{r.From, r.To} {
			typ, err := types.ByName(name)
			if err != nil {
				return nil, fixturegen.Wrap(fixturegen.ErrInvalidConfig, err, "rule %d", i+1)
			}
			if !typ.IsScalar() {
				return nil, fixturegen.NewError(fixturegen.ErrInvalidConfig, "rule %d: %s is not a scalar type", i+1, name)
			}
		}
		if r.Matrices && !(isFloat(r.From) && isFloat(r.To)) {
			return nil, fixturegen.NewError(fixturegen.ErrInvalidConfig, "rule %d: matrices need float types", i+1)
		}
	}
	return t.Rules, nil
}

func isFloat(name string) bool { return name == "float" || name == "double" }

// Conversion is a conversion between two types of the same shape.
type Conversion struct {
	From, To *types.Type
	Pass     bool
}

// Expand returns the conversions covered by rules.
func Expand(rules []Rule) []Conversion {
	var out []Conversion
	for _, r := range rules {
		from := types.MustByName(r.From).Base()
		to := types.MustByName(r.To).Base()
		for n := 1; n <= 4; n++ {
			out = append(out, Conversion{types.Vector(from, n), types.Vector(to, n), r.Pass})
		}
		if r.Matrices {
			for _, m := range types.Matrices(from) {
				out = append(out, Conversion{m, m.WithBase(to), r.Pass})
			}
		}
	}
	return out
}

// ImplicitName returns the base name of an implicit conversion fixture,
// e.g. "vs-conversion-implicit-ivec2-dvec2-good".
func ImplicitName(st glsl.Stage, c Conversion) string {
	verdict := "bad"
	if c.Pass {
		verdict = "good"
	}
	return emit.Name(st.Short(), "conversion-implicit", c.From.Name(), c.To.Name(), verdict)
}

type implicitRecord struct {
	tmpl.Header
	From, To string
	Fragment bool
}

func implicitFixture(tg Target, c Conversion, st glsl.Stage) (gen.Fixture, error) {
	rec := implicitRecord{
		Header:   tg.header(c.Pass),
		From:     c.From.Name(),
		To:       c.To.Name(),
		Fragment: st == glsl.StageFragment,
	}
	return gen.Fixture{
		Path:   emit.Path(tg.Feature(), emit.Compiler, "implicit-conversions", ImplicitName(st, c)+st.Ext()),
		Render: func() ([]byte, error) { return templates.Render("implicit", rec) },
	}, nil
}
