// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package extdefined generates preprocessor tests checking that every
// extension defines its macro in every stage, and that the macro is 1 once
// the extension is enabled.
package extdefined

import (
	"embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/tmpl"
)

var (
	//go:embed templates/*.tmpl
	templateFS embed.FS

	//go:embed extensions.yaml
	extensionsYAML []byte
)

var templates = tmpl.MustParse(templateFS, "templates/*.tmpl")

// Extension is an extension with the first version it applies to.
type Extension struct {
	Name    string
	Version glsl.Version
}

type entry struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// LoadExtensions parses an extension list.
func LoadExtensions(data []byte) ([]Extension, error) {
	var doc struct {
		Extensions []entry `yaml:"extensions"`
	}
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fixturegen.Wrap(fixturegen.ErrInvalidConfig, errors.WithStack(err), "parse extension list")
	}
	out := make([]Extension, len(doc.Extensions))
	for i, e := range doc.Extensions {
		if e.Name == "" {
			return nil, fixturegen.NewError(fixturegen.ErrInvalidConfig, "extension %d has no name", i+1)
		}
		v, err := glsl.Parse(e.Version)
		if err != nil {
			return nil, fixturegen.Wrap(fixturegen.ErrInvalidConfig, err, "extension %s", e.Name)
		}
		out[i] = Extension{Name: e.Name, Version: v}
	}
	return out, nil
}

// Stages lists the tested stages in enumeration order.
var Stages = []glsl.Stage{
	glsl.StageVertex, glsl.StageTessControl, glsl.StageTessEval,
	glsl.StageGeometry, glsl.StageFragment, glsl.StageCompute,
}

// Generator is the extensions_defined generator.
type Generator struct {
	exts []Extension
}

// New returns the generator over the embedded extension list.
func New() Generator {
	exts, err := LoadExtensions(extensionsYAML)
	if err != nil {
		panic(err)
	}
	return Generator{exts: exts}
}

// WithExtensions returns the generator over another extension list.
func WithExtensions(exts []Extension) Generator { return Generator{exts: exts} }

// Name implements gen.Generator.
func (Generator) Name() string { return "extensions_defined" }

// Generate implements gen.Generator.
func (g Generator) Generate(_ *gen.Env, yield gen.Yield) error {
	for _, ext := range g.exts {
		for _, st := range Stages {
			for _, enable := range []bool{false, true} {
				if err := yield(fixture(ext, st, enable)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

type record struct {
	tmpl.Header
	Ext        string
	Enable     bool
	Directives []string
}

// FileName returns the fixture file name, e.g. "gs-enable.geom".
func FileName(st glsl.Stage, enable bool) string {
	kind := "defined"
	if enable {
		kind = "enable"
	}
	return emit.Name(st.Short(), kind) + st.Ext()
}

func fixture(ext Extension, st glsl.Stage, enable bool) (gen.Fixture, error) {
	v, stageExt := glsl.ForStageWithExtension(st, ext.Version)
	rec := record{
		Header: tmpl.Header{Version: v, Extensions: []string{ext.Name}, Pass: true},
		Ext:    ext.Name,
		Enable: enable,
	}
	if stageExt != "" && stageExt != ext.Name {
		rec.Extensions = append(rec.Extensions, stageExt)
	}
	if stageExt != "" && (stageExt != ext.Name || !enable) {
		rec.Directives = append(rec.Directives, stageExt+" : require")
	}
	if enable {
		rec.Directives = append(rec.Directives, ext.Name+" : enable")
	}
	return gen.Fixture{
		Path:   emit.Path(emit.Feature(ext.Name), emit.Preprocessor, "", FileName(st, enable)),
		Render: func() ([]byte, error) { return templates.Render("preprocessor", rec) },
	}, nil
}
