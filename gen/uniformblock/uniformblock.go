// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package uniformblock generates execution tests of pseudo-random uniform
// blocks. Under std140 the tests query the computed offsets and strides;
// under shared packing only type, size and orientation are queried.
package uniformblock

import (
	"embed"
	"strconv"
	"strings"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/layout"
	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/tmpl"
	"github.com/gogpu/fixturegen/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = tmpl.MustParse(templateFS, "templates/*.tmpl")

// ExtUBO is the uniform buffer object extension.
const ExtUBO = "GL_ARB_uniform_buffer_object"

// BlockName is the name of every generated block.
const BlockName = "ubo"

// Trim selects the trim pass applied to a generated block.
type Trim string

const (
	TrimNone Trim = ""
	// TrimStructMembers deletes every member of the first structure
	// used by the block.
	TrimStructMembers Trim = "struct-members"
)

// Axes, slowest first.
var (
	Packings = []layout.Packing{layout.Std140, layout.Shared}
	Orders   = []layout.Order{layout.ColumnMajor, layout.RowMajor}
	Trims    = []Trim{TrimNone, TrimStructMembers}
)

// Generator is the uniform_block generator.
type Generator struct {
	seeds int
}

// DefaultSeeds is the number of blocks New produces per combination.
const DefaultSeeds = 4

// New returns the generator.
func New() Generator { return Generator{seeds: DefaultSeeds} }

// WithSeeds returns a generator producing n blocks per combination.
func WithSeeds(n int) Generator { return Generator{seeds: n} }

// Name implements gen.Generator.
func (Generator) Name() string { return "uniform_block" }

// Generate implements gen.Generator.
func (g Generator) Generate(env *gen.Env, yield gen.Yield) error {
	for _, p := range Packings {
		for _, o := range Orders {
			for _, tr := range Trims {
				for seed := 0; seed < g.seeds; seed++ {
					if err := yield(fixture(env, p, o, tr, seed)); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// FileName returns the fixture base name.
func FileName(p layout.Packing, o layout.Order, tr Trim, seed int) string {
	return emit.Name(p.String(), o.String(), string(tr), strconv.Itoa(seed))
}

type structDecl struct {
	Name    string
	Members []string
}

type record struct {
	tmpl.Header
	Structs   []structDecl
	Qualifier string
	Block     string
	Fields    []string
	Instance  string
	Checks    []string
	Queries   []string
	Uniforms  []string
}

func fixture(env *gen.Env, p layout.Packing, o layout.Order, tr Trim, seed int) (gen.Fixture, error) {
	name := FileName(p, o, tr, seed)
	path := emit.Path(emit.Feature(ExtUBO), emit.Execution, "", name+".shader_test")

	r := env.Rand(path)
	opts := layout.Options{
		Packing:  p,
		Order:    o,
		Fields:   2 + r.IntN(4),
		MaxArray: 3,
		MaxDepth: 2,
	}
	if seed%2 == 1 {
		opts.Instance = "inst"
	}
	b := layout.Random(r, BlockName, opts)
	if tr == TrimStructMembers {
		structs := b.Structs()
		if len(structs) == 0 {
			return gen.Fixture{}, fixturegen.Infeasible("%s: block has no structure to trim", name)
		}
		first := structs[0].Name
		b = layout.Trim(b, func(owner string, _ layout.Field) bool { return owner == first })
	}
	l, err := layout.Compute(b)
	if err != nil {
		if fixturegen.IsKind(err, fixturegen.ErrInvalidLayout) {
			return gen.Fixture{}, fixturegen.Infeasible("%s: %v", name, err)
		}
		return gen.Fixture{}, err
	}

	rec := record{
		Header:    tmpl.Header{Version: glsl.Version140, Extensions: []string{ExtUBO}, Pass: true},
		Qualifier: p.String() + ", " + o.String(),
		Block:     BlockName,
		Instance:  l.Block.Instance,
	}
	for _, s := range l.Block.Structs() {
		d := structDecl{Name: s.Name}
		for _, m := range s.Members {
			d.Members = append(d.Members, Declaration(m))
		}
		rec.Structs = append(rec.Structs, d)
	}
	for _, f := range l.Block.Fields {
		rec.Fields = append(rec.Fields, Declaration(f))
	}
	for _, leaf := range l.Leaves {
		rec.Queries = append(rec.Queries, Queries(l, leaf)...)
		for i := 0; i < numeric.Max(leaf.ArraySize, 1); i++ {
			index := ""
			if leaf.ArraySize > 0 {
				index = "[" + strconv.Itoa(i) + "]"
			}
			v := gen.RandomValue(r, leaf.Type, -100, 100)
			rec.Checks = append(rec.Checks, l.Expr(leaf)+index+" != "+tmpl.Literal(v))
			rec.Uniforms = append(rec.Uniforms, tmpl.UniformType(leaf.Type)+" "+l.APIName(leaf)+index+" "+tmpl.Components(v))
		}
	}
	return gen.Fixture{
		Path:   path,
		Render: func() ([]byte, error) { return templates.Render("shader_test", rec) },
	}, nil
}

// Declaration returns the declaration of a field without the trailing
// semicolon, with its layout qualifier when it overrides the orientation.
func Declaration(f layout.Field) string {
	decl := f.TypeName() + " " + f.Name + f.ArraySuffix()
	if q := f.Order.String(); q != "" {
		decl = "layout(" + q + ") " + decl
	}
	return decl
}

// Queries returns the "active uniform" arguments checking leaf. Offsets
// and strides are only queried when the layout knows them.
func Queries(l *layout.Layout, leaf layout.Leaf) []string {
	name := l.APIName(leaf)
	if leaf.ArraySize > 0 {
		name += "[0]"
	}
	size := numeric.Max(leaf.ArraySize, 1)
	q := []string{
		name + " GL_UNIFORM_TYPE " + GLType(leaf.Type),
		name + " GL_UNIFORM_SIZE " + strconv.Itoa(size),
	}
	if leaf.Offset != layout.Unknown {
		q = append(q, name+" GL_UNIFORM_OFFSET "+strconv.Itoa(leaf.Offset))
		if leaf.ArraySize > 0 {
			q = append(q, name+" GL_UNIFORM_ARRAY_STRIDE "+strconv.Itoa(leaf.ArrayStride))
		}
		if leaf.Type.IsMatrix() {
			q = append(q, name+" GL_UNIFORM_MATRIX_STRIDE "+strconv.Itoa(leaf.MatrixStride))
		}
	}
	return append(q, name+" GL_UNIFORM_IS_ROW_MAJOR "+boolDigit(leaf.RowMajor))
}

// GLType returns the GL enumerant naming t, e.g. GL_FLOAT_MAT2x3.
func GLType(t *types.Type) string {
	var b strings.Builder
	b.WriteString("GL_")
	switch t.Base() {
	case types.Int:
		b.WriteString("INT")
	case types.Uint:
		b.WriteString("UNSIGNED_INT")
	default:
		b.WriteString(strings.ToUpper(t.Base().String()))
	}
	switch {
	case t.IsMatrix() && t.IsSquare():
		b.WriteString("_MAT" + strconv.Itoa(t.Cols()))
	case t.IsMatrix():
		b.WriteString("_MAT" + strconv.Itoa(t.Cols()) + "x" + strconv.Itoa(t.Rows()))
	case t.IsVector():
		b.WriteString("_VEC" + strconv.Itoa(t.Rows()))
	}
	return b.String()
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
