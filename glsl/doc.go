// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl models the GLSL and GLSL ES language families: released
// versions, pipeline stages and the oracle that decides in which version
// (optionally with which extension) a stage becomes available.
//
// # Versions
//
// A Version renders in several forms:
//
//	v := glsl.Version130
//	v.Decimal()   // "1.30"
//	v.Directive() // "130"
//	v.DirName()   // "glsl-1.30"
//	v.Require()   // "GLSL >= 1.30"
//
// # Stage oracle
//
//	glsl.ForStage(glsl.StageGeometry, glsl.Version110)              // 1.50
//	glsl.ForStageWithExtension(glsl.StageTessControl, glsl.Version150) // 1.50, GL_ARB_tessellation_shader
//
// # Reserved Words
//
// IsReserved and Identifier keep generated names clear of keywords and
// reserved identifiers.
package glsl
