// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "testing"

func TestIsReserved(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"float", true},
		{"sample", true},
		{"patch", true},
		{"filter", true},
		{"gl_Position", true},
		{"a__b", true},
		{"color", false},
		{"s1", false},
		{"arg0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReserved(tt.name); got != tt.want {
				t.Errorf("IsReserved(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "unnamed"},
		{"color", "color"},
		{"sample", "sample_"},
		{"input", "input_"},
		{"gl_Foo", "u_Foo"},
		{"a__b", "a_b"},
		{"a___b", "a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Identifier(tt.in)
			if got != tt.want {
				t.Errorf("Identifier(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if IsReserved(got) {
				t.Errorf("Identifier(%q) = %q is still reserved", tt.in, got)
			}
		})
	}
}
