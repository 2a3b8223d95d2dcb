// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/gen/all"
)

// Config is the genall configuration file.
type Config struct {
	Output    string `yaml:"output"`
	Jobs      int    `yaml:"jobs"`
	Seed      uint64 `yaml:"seed"`
	NamesOnly bool   `yaml:"names_only"`

	// Generators names the generators to run; empty means all of them.
	Generators []string `yaml:"generators"`
}

// DefaultConfig is the configuration used without a file.
func DefaultConfig() Config {
	return Config{Output: ".", Jobs: runtime.NumCPU()}
}

// LoadConfig reads a YAML configuration over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fixturegen.Wrap(fixturegen.ErrIOFailure, errors.WithStack(err), "read config")
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fixturegen.Wrap(fixturegen.ErrInvalidConfig, errors.WithStack(err), "parse %s", path)
	}
	return cfg, nil
}

// Validate checks the configuration and resolves the generators to run.
func (c Config) Validate() ([]gen.Generator, error) {
	if c.Output == "" {
		return nil, fixturegen.NewError(fixturegen.ErrInvalidConfig, "output directory is empty")
	}
	if c.Jobs < 1 {
		return nil, fixturegen.NewError(fixturegen.ErrInvalidConfig, "jobs must be positive, got %d", c.Jobs)
	}
	if len(c.Generators) == 0 {
		return all.Generators(), nil
	}
	seen := make(map[string]bool, len(c.Generators))
	gens := make([]gen.Generator, 0, len(c.Generators))
	for _, name := range c.Generators {
		if seen[name] {
			return nil, fixturegen.NewError(fixturegen.ErrInvalidConfig, "generator %q listed twice", name)
		}
		seen[name] = true
		g, err := all.Lookup(name)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}
	return gens, nil
}
