// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package constbuiltin generates tests of built-in functions and operators
// folded in constant expressions. The cases come from cases.yaml.
package constbuiltin

import (
	"embed"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/builtin"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/tmpl"
	"github.com/gogpu/fixturegen/types"
)

var (
	//go:embed templates/*.tmpl
	templateFS embed.FS

	//go:embed cases.yaml
	casesYAML []byte
)

var templates = tmpl.MustParse(templateFS, "templates/*.tmpl")

// Arg is one argument of a case.
type Arg struct {
	Type  string   `yaml:"type"`
	Value []string `yaml:"value"`
}

// Case applies each of Ops to Args.
type Case struct {
	Ops  []string `yaml:"ops"`
	Args []Arg    `yaml:"args"`
}

type table struct {
	Cases []Case `yaml:"cases"`
}

// LoadCases parses a case table.
func LoadCases(data []byte) ([]Case, error) {
	var t table
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return nil, fixturegen.Wrap(fixturegen.ErrInvalidConfig, errors.WithStack(err), "parse case table")
	}
	for i, c := range t.Cases {
		if len(c.Ops) == 0 || len(c.Args) == 0 {
			return nil, fixturegen.NewError(fixturegen.ErrInvalidConfig, "case %d needs ops and args", i+1)
		}
	}
	return t.Cases, nil
}

// Generator is the const_builtin generator.
type Generator struct {
	cases []Case
}

// New returns the generator over the embedded case table.
func New() Generator {
	cases, err := LoadCases(casesYAML)
	if err != nil {
		panic(err)
	}
	return Generator{cases: cases}
}

// WithCases returns the generator over another case table.
func WithCases(cases []Case) Generator { return Generator{cases: cases} }

// Name implements gen.Generator.
func (Generator) Name() string { return "const_builtin" }

// Generate implements gen.Generator. Cases are enumerated in table order
// and operations in listed order. Fixtures are numbered per operation.
func (g Generator) Generate(env *gen.Env, yield gen.Yield) error {
	cat, err := env.Catalogue("glsl")
	if err != nil {
		return err
	}
	counts := make(map[string]int)
	for _, c := range g.cases {
		args, err := parseArgs(c.Args)
		if err != nil {
			return err
		}
		for _, op := range c.Ops {
			counts[op]++
			if err := yield(fixture(cat, op, counts[op], args)); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseArgs(args []Arg) ([]types.Value, error) {
	out := make([]types.Value, len(args))
	for i, a := range args {
		t, err := types.ByName(a.Type)
		if err != nil {
			return nil, fixturegen.Wrap(fixturegen.ErrInvalidConfig, err, "argument %d", i)
		}
		if out[i], err = types.Parse(t, a.Value...); err != nil {
			return nil, fixturegen.Wrap(fixturegen.ErrInvalidConfig, err, "argument %d", i)
		}
	}
	return out, nil
}

type record struct {
	tmpl.Header
	Expr      string
	Result    types.Value
	Check     string
	Tolerant  bool
	Tolerance string
}

func fixture(cat *builtin.Catalogue, op string, n int, args []types.Value) (gen.Fixture, error) {
	argTypes := make([]*types.Type, len(args))
	exprs := make([]string, len(args))
	flat := make([][]float64, len(args))
	for i, a := range args {
		argTypes[i] = a.Type()
		exprs[i] = tmpl.Literal(a)
		flat[i] = a.Flatten()
	}
	sig, _, err := cat.Lookup(op, argTypes...)
	if err != nil {
		return gen.Fixture{}, err
	}
	result, err := sig.Eval(args...)
	if err != nil {
		return gen.Fixture{}, err
	}
	if !result.IsFinite() {
		return gen.Fixture{}, fixturegen.Infeasible("%s folds to %s", sig.Key(), result)
	}
	rec := record{
		Header:   tmpl.Header{Version: glsl.Max(glsl.Version120, sig.Version)},
		Expr:     sig.Invocation(exprs...),
		Result:   result,
		Check:    tmpl.Compare(result.Type()),
		Tolerant: result.Base().IsFloat(),
	}
	if rec.Tolerant {
		width := sig.Width()
		tol := numeric.ForOp(op, width, flat, result.Flatten()).Scalar(result.Flatten(), width)
		rec.Tolerance = tmpl.FloatLiteral(tol, width)
	}
	name := "const-" + op + "-" + strconv.Itoa(n) + ".shader_test"
	return gen.Fixture{
		Path:   emit.Path(emit.VersionFeature(rec.Version), emit.Execution, "built-in-functions", name),
		Render: func() ([]byte, error) { return templates.Render("shader_test", rec) },
	}, nil
}
