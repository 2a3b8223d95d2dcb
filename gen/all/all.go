// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package all lists every fixture generator.
package all

import (
	"sort"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/gen/bitencoding"
	"github.com/gogpu/fixturegen/gen/builtinuniform"
	"github.com/gogpu/fixturegen/gen/constarraysize"
	"github.com/gogpu/fixturegen/gen/constbuiltin"
	"github.com/gogpu/fixturegen/gen/conversion"
	"github.com/gogpu/fixturegen/gen/extdefined"
	"github.com/gogpu/fixturegen/gen/flatinterp"
	"github.com/gogpu/fixturegen/gen/interpqualifier"
	"github.com/gogpu/fixturegen/gen/outerproduct"
	"github.com/gogpu/fixturegen/gen/shaderprecision"
	"github.com/gogpu/fixturegen/gen/uniformblock"
	"github.com/gogpu/fixturegen/gen/uniforminit"
	"github.com/gogpu/fixturegen/gen/vsinput"
)

// Generators returns a fresh instance of every generator, in the order
// genall runs them.
func Generators() []gen.Generator {
	return []gen.Generator{
		builtinuniform.New(),
		constbuiltin.New(),
		constarraysize.New(),
		interpqualifier.New(),
		flatinterp.New(),
		vsinput.New(),
		uniformblock.New(),
		bitencoding.New(),
		outerproduct.New(),
		shaderprecision.New(),
		conversion.New(),
		uniforminit.New(),
		extdefined.New(),
	}
}

// Names returns the sorted generator names.
func Names() []string {
	var names []string
	for _, g := range Generators() {
		names = append(names, g.Name())
	}
	sort.Strings(names)
	return names
}

// Lookup returns the generator called name.
func Lookup(name string) (gen.Generator, error) {
	for _, g := range Generators() {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fixturegen.NewError(fixturegen.ErrInvalidConfig, "unknown generator %q", name)
}
