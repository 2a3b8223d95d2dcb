// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"

	"github.com/gogpu/fixturegen"
)

// Stage represents a programmable pipeline stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
	StageGeometry
	StageTessControl
	StageTessEval
	StageCompute
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{StageVertex, StageTessControl, StageTessEval, StageGeometry, StageFragment, StageCompute}

type stageInfo struct {
	name    string // file extension and oracle key
	short   string // fixture name prefix
	section string // shader_runner section title
	core    [2]int // minimum core version: desktop, ES
}

var stageTable = [...]stageInfo{
	StageVertex:      {"vert", "vs", "vertex shader", [2]int{110, 100}},
	StageFragment:    {"frag", "fs", "fragment shader", [2]int{110, 100}},
	StageGeometry:    {"geom", "gs", "geometry shader", [2]int{150, 320}},
	StageTessControl: {"tesc", "tcs", "tessellation control shader", [2]int{400, 320}},
	StageTessEval:    {"tese", "tes", "tessellation evaluation shader", [2]int{400, 320}},
	StageCompute:     {"comp", "cs", "compute shader", [2]int{430, 310}},
}

// String returns the stage name used for parser test extensions, e.g. "vert".
func (s Stage) String() string {
	if int(s) < len(stageTable) {
		return stageTable[s].name
	}
	return "unknown"
}

// Short returns the fixture name prefix, e.g. "vs".
func (s Stage) Short() string {
	return stageTable[s].short
}

// Section returns the shader_runner section title, e.g. "vertex shader".
func (s Stage) Section() string {
	return stageTable[s].section
}

// Ext returns the parser test file extension including the dot.
func (s Stage) Ext() string {
	return "." + stageTable[s].name
}

// ParseStage accepts both the long ("vert") and short ("vs") stage names.
func ParseStage(name string) (Stage, error) {
	name = strings.ToLower(name)
	for i, info := range stageTable {
		if info.name == name || info.short == name {
			return Stage(i), nil
		}
	}
	return 0, fixturegen.NewError(fixturegen.ErrInvalidConfig, "unknown shader stage %q", name)
}

// Backport extensions that make a stage available before it became core.
const (
	ExtTessellationShader    = "GL_ARB_tessellation_shader"
	ExtComputeShader         = "GL_ARB_compute_shader"
	ExtOESGeometryShader     = "GL_OES_geometry_shader"
	ExtOESTessellationShader = "GL_OES_tessellation_shader"
)

type backport struct {
	ext string
	min int
}

// backports maps a stage to its backport extension per family (desktop, ES).
var backports = map[Stage][2]backport{
	StageTessControl: {{ExtTessellationShader, 140}, {ExtOESTessellationShader, 310}},
	StageTessEval:    {{ExtTessellationShader, 140}, {ExtOESTessellationShader, 310}},
	StageCompute:     {{ExtComputeShader, 140}, {}},
	StageGeometry:    {{}, {ExtOESGeometryShader, 310}},
}

func family(v Version) int {
	if v.ES {
		return 1
	}
	return 0
}

// coreVersion returns the first version of v's family with stage in core.
func coreVersion(stage Stage, v Version) Version {
	return MustFromNumber(stageTable[stage].core[family(v)], v.ES)
}

// ForStage returns the smallest version not below v in which stage is part
// of the core language.
func ForStage(stage Stage, v Version) Version {
	return Max(v, coreVersion(stage, v))
}

// ForStageWithExtension returns the smallest version not below v at which
// stage can be used, together with the extension required for it. The
// extension is empty when stage is already core at the returned version.
// When no backport exists, the result equals ForStage.
func ForStageWithExtension(stage Stage, v Version) (Version, string) {
	core := ForStage(stage, v)
	if core == v {
		return v, ""
	}
	bp := backports[stage][family(v)]
	if bp.ext == "" {
		return core, ""
	}
	return Max(v, MustFromNumber(bp.min, v.ES)), bp.ext
}
