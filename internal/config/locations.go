// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pakconf Authors

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Locations holds the well-known file paths consulted during resolution.
// Fields with env tags can be overridden through the environment; the
// remaining fields are always computed.
type Locations struct {
	// Prefix is the installation prefix. The global rc file lives under
	// <Prefix>/etc. Env: npm_config_prefix
	Prefix string `env:"npm_config_prefix"`

	// GlobalConfig is the path of the global rc file.
	// Env: npm_config_globalconfig
	GlobalConfig string `env:"npm_config_globalconfig"`

	// UserConfig is the path of the per-user rc file.
	// Env: npm_config_userconfig
	UserConfig string `env:"npm_config_userconfig"`

	// Builtin is the path of the rc file shipped next to the executable.
	Builtin string

	// Project is the directory whose .npmrc acts as the project layer.
	Project string
}

// resolveLocations computes default locations from the execution context
// and merges environment overrides on top (teacher pattern: env-tagged
// struct merged with mergo, non-zero fields win).
func resolveLocations(exec ExecContext) (Locations, error) {
	var fromEnv Locations
	if err := env.Parse(&fromEnv); err != nil {
		return Locations{}, fmt.Errorf("error reading location overrides: %w", err)
	}

	loc := defaultLocations(exec, fromEnv.Prefix)
	if err := mergo.Merge(&loc, fromEnv, mergo.WithOverride); err != nil {
		return Locations{}, fmt.Errorf("error merging locations: %w", err)
	}

	return loc, nil
}

func defaultLocations(exec ExecContext, prefix string) Locations {
	bin := exec.BinPath()
	if prefix == "" {
		if bin != "" {
			prefix = filepath.Dir(filepath.Dir(bin))
		} else {
			prefix = "/usr/local"
		}
	}

	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()

	loc := Locations{
		Prefix:       prefix,
		GlobalConfig: filepath.Join(prefix, "etc", "npmrc"),
		UserConfig:   filepath.Join(home, ".npmrc"),
		Project:      cwd,
	}
	if bin != "" {
		loc.Builtin = filepath.Join(filepath.Dir(bin), "npmrc")
	}
	return loc
}

// projectRC returns the path of the project-layer rc file, or "" when no
// project directory is known.
func (l Locations) projectRC() string {
	if l.Project == "" {
		return ""
	}
	return filepath.Join(l.Project, ".npmrc")
}
