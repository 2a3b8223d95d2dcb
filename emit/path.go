// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package emit

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/fixturegen/glsl"
)

// Kind is the test-kind directory of a fixture.
type Kind string

const (
	Compiler     Kind = "compiler"
	Execution    Kind = "execution"
	Linker       Kind = "linker"
	Preprocessor Kind = "preprocessor"
)

// Root is the top-level directory of every fixture path.
const Root = "spec"

var lower = cases.Lower(language.Und)

// Feature folds an extension name into its feature directory name:
// the "GL_" prefix is dropped, letters are lower-cased and spaces become
// underscores. "GL_ARB_gpu_shader_fp64" gives "arb_gpu_shader_fp64".
func Feature(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "GL_")
	return strings.Join(strings.Fields(lower.String(name)), "_")
}

// VersionFeature returns the feature directory of a language version,
// e.g. "glsl-1.30" or "glsl-es-3.00".
func VersionFeature(v glsl.Version) string {
	return v.DirName()
}

// Path builds a fixture path. dir may be empty.
func Path(feature string, kind Kind, dir, file string) string {
	return path.Join(Root, feature, string(kind), dir, file)
}

// Name joins the non-empty parts of a fixture file name with '-'.
func Name(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "-")
}
