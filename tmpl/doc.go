// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package tmpl renders fixtures from text/template files.
//
// Each generator embeds its own template files and parses them with Parse,
// which adds the shared partials and helper functions:
//
//	{{template "require" .}}   [require] section of a shader test
//	{{template "config" .}}    [config] comment of a parser test
//	{{template "version" .}}   #version and #extension lines
//
// The partials read the fields of Header, which records embed.
//
// Helpers format values the way the test runner and GLSL compilers expect
// them: literal renders a GLSL constructor, components renders the
// space-separated form used by uniform commands, hex and bits render
// IEEE-754 bit patterns.
package tmpl
