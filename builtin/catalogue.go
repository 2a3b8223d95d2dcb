// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package builtin

import (
	"sort"
	"strings"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/types"
)

type entry struct {
	sig     Signature
	vectors []TestVector
}

// Catalogue maps signatures to their test vectors.
//
// A Catalogue is filled by its constructor and then only read; it is safe
// for concurrent reads.
type Catalogue struct {
	name    string
	entries map[string]*entry
}

// NewCatalogue returns an empty catalogue.
func NewCatalogue(name string) *Catalogue {
	return &Catalogue{name: name, entries: make(map[string]*entry)}
}

// Name returns the catalogue name ("glsl", "glsl-es" or "fp64").
func (c *Catalogue) Name() string { return c.name }

// Len returns the number of signatures.
func (c *Catalogue) Len() int { return len(c.entries) }

// Register adds sig with its vectors. Registering a signature with the
// same key again replaces the earlier signature and vectors.
func (c *Catalogue) Register(sig Signature, vectors []TestVector) {
	c.entries[sig.Key()] = &entry{sig: sig, vectors: vectors}
}

// Signatures returns every signature ordered by name, then by argument
// type names.
func (c *Catalogue) Signatures() []Signature {
	sigs := make([]Signature, 0, len(c.entries))
	for _, e := range c.entries {
		sigs = append(sigs, e.sig)
	}
	sort.Slice(sigs, func(i, j int) bool { return lessSignature(sigs[i], sigs[j]) })
	return sigs
}

func lessSignature(a, b Signature) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	an, bn := a.argNames(), b.argNames()
	for i := 0; i < len(an) && i < len(bn); i++ {
		if an[i] != bn[i] {
			return an[i] < bn[i]
		}
	}
	return len(an) < len(bn)
}

// Vectors returns the test vectors of sig, or nil if sig is not registered.
func (c *Catalogue) Vectors(sig Signature) []TestVector {
	if e, ok := c.entries[sig.Key()]; ok {
		return e.vectors
	}
	return nil
}

// Lookup finds the overload of name taking args. It fails with
// ErrUnknownSignature when the catalogue has no such overload.
func (c *Catalogue) Lookup(name string, args ...*types.Type) (Signature, []TestVector, error) {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.Name()
	}
	key := name + "(" + strings.Join(names, ",") + ")"
	e, ok := c.entries[key]
	if !ok {
		return Signature{}, nil, fixturegen.NewError(fixturegen.ErrUnknownSignature,
			"%s catalogue has no %s", c.name, key)
	}
	return e.sig, e.vectors, nil
}

// Eval evaluates the overload of name matching the types of args.
func (c *Catalogue) Eval(name string, args ...types.Value) (types.Value, error) {
	argTypes := make([]*types.Type, len(args))
	for i, a := range args {
		t, err := types.TypeOf(a)
		if err != nil {
			return types.Value{}, err
		}
		argTypes[i] = t
	}
	sig, _, err := c.Lookup(name, argTypes...)
	if err != nil {
		return types.Value{}, err
	}
	return sig.eval(sig.Result, args)
}

// Names returns the distinct operation names in order.
func (c *Catalogue) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range c.Signatures() {
		if !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
	}
	return names
}

func checkArgs(s Signature, args []types.Value) error {
	if len(args) != len(s.Args) {
		return fixturegen.NewError(fixturegen.ErrUnknownSignature,
			"%s takes %d arguments, got %d", s.Key(), len(s.Args), len(args))
	}
	for i, a := range args {
		t, err := types.TypeOf(a)
		if err != nil {
			return err
		}
		if !t.Equal(s.Args[i]) {
			return fixturegen.NewError(fixturegen.ErrUnknownSignature,
				"%s argument %d is %s, got %s", s.Key(), i, s.Args[i], t)
		}
	}
	return nil
}
