// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package tmpl

import (
	"bytes"
	"embed"
	"io/fs"
	"text/template"

	"github.com/pkg/errors"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/glsl"
)

//go:embed common.tmpl
var common embed.FS

// Header is the data read by the shared partials.
type Header struct {
	Version    glsl.Version
	Extensions []string

	// Pass is the expected result of a parser test.
	Pass bool
}

// Modern reports whether the version declares interface variables with
// in and out rather than attribute and varying.
func (h Header) Modern() bool {
	if h.Version.ES {
		return h.Version.AtLeast(300)
	}
	return h.Version.AtLeast(130)
}

// Attribute returns the qualifier of vertex shader inputs.
func (h Header) Attribute() string { return h.pick("attribute", "in") }

// VaryingIn returns the qualifier of inputs from the previous stage.
func (h Header) VaryingIn() string { return h.pick("varying", "in") }

// VaryingOut returns the qualifier of outputs to the next stage.
func (h Header) VaryingOut() string { return h.pick("varying", "out") }

// FragColor returns the fragment shader colour output.
func (h Header) FragColor() string { return h.pick("gl_FragColor", "piglit_fragcolor") }

func (h Header) pick(legacy, modern string) string {
	if h.Modern() {
		return modern
	}
	return legacy
}

// Set is a parsed set of templates.
type Set struct {
	t *template.Template
}

// Parse parses the files of fsys matching patterns together with the
// shared partials. Template names are the file base names.
func Parse(fsys fs.FS, patterns ...string) (*Set, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(common, "common.tmpl")
	if err != nil {
		return nil, fixturegen.Wrap(fixturegen.ErrTemplateFailure, err, "parse shared templates")
	}
	if len(patterns) > 0 {
		if t, err = t.ParseFS(fsys, patterns...); err != nil {
			return nil, fixturegen.Wrap(fixturegen.ErrTemplateFailure, err, "parse templates")
		}
	}
	return &Set{t: t}, nil
}

// MustParse is like Parse but panics on error. It is meant for templates
// embedded in the binary.
func MustParse(fsys fs.FS, patterns ...string) *Set {
	s, err := Parse(fsys, patterns...)
	if err != nil {
		panic(err)
	}
	return s
}

// Render executes the named template with data.
func (s *Set) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fixturegen.Wrap(fixturegen.ErrTemplateFailure, errors.WithStack(err), "render %s", name)
	}
	return buf.Bytes(), nil
}

// Has reports whether the set defines the named template.
func (s *Set) Has(name string) bool {
	return s.t.Lookup(name) != nil
}
