// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "strings"

// reservedWords lists GLSL keywords and words reserved for future use,
// grouped the way the GLSL 4.60 and GLSL ES 3.20 specifications list them.
var reservedWords = [][]string{
	// Basic, vector and matrix types
	{
		"void", "bool", "int", "uint", "float", "double",
		"vec2", "vec3", "vec4", "ivec2", "ivec3", "ivec4", "uvec2", "uvec3", "uvec4",
		"bvec2", "bvec3", "bvec4", "dvec2", "dvec3", "dvec4",
		"mat2", "mat3", "mat4", "mat2x2", "mat2x3", "mat2x4", "mat3x2", "mat3x3", "mat3x4",
		"mat4x2", "mat4x3", "mat4x4", "dmat2", "dmat3", "dmat4", "dmat2x2", "dmat2x3", "dmat2x4",
		"dmat3x2", "dmat3x3", "dmat3x4", "dmat4x2", "dmat4x3", "dmat4x4",
		"int64_t", "uint64_t", "float16_t",
	},
	// Opaque types
	{
		"sampler1D", "sampler2D", "sampler3D", "samplerCube", "sampler2DRect",
		"sampler1DShadow", "sampler2DShadow", "samplerCubeShadow", "sampler2DRectShadow",
		"sampler1DArray", "sampler2DArray", "sampler1DArrayShadow", "sampler2DArrayShadow",
		"samplerCubeArray", "samplerCubeArrayShadow", "samplerBuffer", "sampler2DMS", "sampler2DMSArray",
		"isampler1D", "isampler2D", "isampler3D", "isamplerCube", "usampler1D", "usampler2D",
		"usampler3D", "usamplerCube", "image1D", "image2D", "image3D", "imageCube", "atomic_uint",
	},
	// Keywords
	{
		"attribute", "const", "uniform", "varying", "buffer", "shared", "coherent", "volatile",
		"restrict", "readonly", "writeonly", "layout", "centroid", "flat", "smooth", "noperspective",
		"patch", "sample", "break", "continue", "do", "for", "while", "switch", "case", "default",
		"if", "else", "subroutine", "in", "out", "inout", "true", "false", "invariant", "precise",
		"discard", "return", "struct", "lowp", "mediump", "highp", "precision",
	},
	// Reserved for future use
	{
		"common", "partition", "active", "asm", "class", "union", "enum", "typedef", "template",
		"this", "resource", "goto", "inline", "noinline", "public", "static", "extern", "external",
		"interface", "long", "short", "half", "fixed", "unsigned", "superp", "input", "output",
		"hvec2", "hvec3", "hvec4", "fvec2", "fvec3", "fvec4", "sampler3DRect", "filter",
		"sizeof", "cast", "namespace", "using",
	},
}

var reserved = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, group := range reservedWords {
		for _, w := range group {
			m[w] = struct{}{}
		}
	}
	return m
}()

// IsReserved reports whether name cannot be used as a GLSL identifier:
// it is a keyword, a future reserved word, starts with the gl_ prefix or
// contains two consecutive underscores.
func IsReserved(name string) bool {
	if _, ok := reserved[name]; ok {
		return true
	}
	return strings.HasPrefix(name, "gl_") || strings.Contains(name, "__")
}

// Identifier turns name into a usable GLSL identifier. Reserved words get
// a trailing underscore, runs of underscores are collapsed and the gl_
// prefix is rewritten.
func Identifier(name string) string {
	if name == "" {
		return "unnamed"
	}
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	if strings.HasPrefix(name, "gl_") {
		name = "u" + name[2:]
	}
	if _, ok := reserved[name]; ok {
		name += "_"
	}
	return name
}
