// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package conversion generates tests of conversions between double and the
// other base types: compiler tests of implicit conversions, driven by
// implicit.yaml, and execution tests of explicit constructor conversions.
package conversion

import (
	"embed"

	"github.com/gogpu/fixturegen/builtin"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/tmpl"
)

var (
	//go:embed templates/*.tmpl
	templateFS embed.FS

	//go:embed implicit.yaml
	implicitYAML []byte
)

var templates = tmpl.MustParse(templateFS, "templates/*.tmpl")

// Stages lists the tested stages in enumeration order.
var Stages = []glsl.Stage{glsl.StageVertex, glsl.StageFragment}

// Target is a language version with the extensions it needs for doubles.
type Target struct {
	Version    glsl.Version
	Extensions []string
}

// Targets are the versions every fixture is emitted for.
var Targets = []Target{
	{glsl.Version150, []string{builtin.ExtFP64}},
	{glsl.Version400, nil},
}

// Feature returns the feature directory of t.
func (t Target) Feature() string {
	if len(t.Extensions) > 0 {
		return emit.Feature(t.Extensions[0])
	}
	return emit.VersionFeature(t.Version)
}

func (t Target) header(pass bool) tmpl.Header {
	return tmpl.Header{Version: t.Version, Extensions: t.Extensions, Pass: pass}
}

// Generator is the conversion generator.
type Generator struct {
	rules []Rule
}

// New returns the generator over the embedded implicit conversion table.
func New() Generator {
	rules, err := LoadRules(implicitYAML)
	if err != nil {
		panic(err)
	}
	return Generator{rules: rules}
}

// WithRules returns the generator over another implicit conversion table.
func WithRules(rules []Rule) Generator { return Generator{rules: rules} }

// Name implements gen.Generator.
func (Generator) Name() string { return "conversion" }

// Generate implements gen.Generator. Implicit conversions come first, then
// explicit ones, then the zero sign tests.
func (g Generator) Generate(_ *gen.Env, yield gen.Yield) error {
	for _, tg := range Targets {
		for _, c := range Expand(g.rules) {
			for _, st := range Stages {
				if err := yield(implicitFixture(tg, c, st)); err != nil {
					return err
				}
			}
		}
		for _, c := range Explicit() {
			for _, st := range Stages {
				if err := yield(explicitFixture(tg, c, st, false)); err != nil {
					return err
				}
			}
		}
		for _, c := range ZeroSign() {
			for _, st := range Stages {
				if err := yield(explicitFixture(tg, c, st, true)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
