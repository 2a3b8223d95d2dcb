// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package gen defines the generator interface and the run loop shared by
// every fixture generator.
//
// A generator enumerates candidate fixtures in a fixed order and hands each
// one to a yield function together with the error of building it. The run
// loop skips candidates whose error is an infeasible-fixture error and
// stops at any other error:
//
//	err := g.Generate(env, func(f gen.Fixture, err error) error { ... })
//
// Feasibility and paths are decided while enumerating. Render is called
// only when files are written, so the manifest of a names-only run equals
// the manifest of a full run.
package gen

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/builtin"
	"github.com/gogpu/fixturegen/numeric"
)

// Fixture is one file produced by a generator.
type Fixture struct {
	// Path is the slash-separated path below the output directory.
	Path string

	// Render produces the file content.
	Render func() ([]byte, error)
}

// Yield receives a candidate fixture and the error of building it.
type Yield func(f Fixture, err error) error

// Generator enumerates the fixtures of one family.
type Generator interface {
	// Name identifies the generator, e.g. "builtin_uniform".
	Name() string

	// Generate yields every candidate in enumeration order. It returns the
	// first non-nil error returned by yield.
	Generate(env *Env, yield Yield) error
}

// Sink stores fixtures. *emit.Emitter implements it.
type Sink interface {
	Emit(path string, render func() ([]byte, error)) error
}

// Env holds the inputs shared by generators of one run.
type Env struct {
	// Seed replaces every generator's default seed when non-zero.
	Seed uint64

	once sync.Once
	cats []*builtin.Catalogue
}

// NewEnv returns an environment with the given seed override.
func NewEnv(seed uint64) *Env {
	return &Env{Seed: seed}
}

// SeedFor returns the seed of the stream named name: the override if set,
// the FNV-1a hash of name otherwise.
func (e *Env) SeedFor(name string) uint64 {
	if e.Seed != 0 {
		return e.Seed ^ numeric.SeedFor(name)
	}
	return numeric.SeedFor(name)
}

// Rand returns a new generator seeded for the stream named name. Each
// fixture that draws random data uses its own stream, so results do not
// depend on enumeration order.
func (e *Env) Rand(name string) *numeric.Rand {
	return numeric.NewRand(e.SeedFor(name))
}

// Catalogues returns the built-in catalogues, building them on first use.
func (e *Env) Catalogues() []*builtin.Catalogue {
	e.once.Do(func() { e.cats = builtin.Catalogues() })
	return e.cats
}

// Catalogue returns the catalogue with the given name.
func (e *Env) Catalogue(name string) (*builtin.Catalogue, error) {
	for _, c := range e.Catalogues() {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fixturegen.NewError(fixturegen.ErrUnknownSignature, "no catalogue named %q", name)
}

// Stats counts the outcome of a run.
type Stats struct {
	Emitted int
	Skipped int
}

// Run enumerates g and stores each feasible fixture in sink.
func Run(g Generator, env *Env, sink Sink) (Stats, error) {
	log := fixturegen.Logger().With("generator", g.Name())
	var st Stats
	err := g.Generate(env, func(f Fixture, err error) error {
		if err != nil {
			if fixturegen.IsKind(err, fixturegen.ErrInfeasibleFixture) {
				st.Skipped++
				log.Debug("skipping fixture", "reason", err)
				return nil
			}
			return err
		}
		if err := sink.Emit(f.Path, f.Render); err != nil {
			return err
		}
		st.Emitted++
		return nil
	})
	if err != nil {
		return st, errors.WithMessage(err, g.Name())
	}
	log.Info("generator finished", "emitted", st.Emitted, "skipped", st.Skipped)
	return st, nil
}
