// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The animaconf Authors

package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Dirs holds the directory layout the config accessors operate in.
//
// Struct tags:
//   - env        — environment variable name (caarlos0/env), prefixed with
//     "ANIMACONF_" during parsing.
//   - envDefault — value used when the variable is unset.
type Dirs struct {
	// ConfigDir is the application config directory, holding the
	// "inference/default.json" default config among others.
	// Env: ANIMACONF_CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR" envDefault:"config"`
}

// ResolveDirs reads the directory layout from the environment. It is
// re-evaluated on every call so a directory override set after program start
// is respected.
func ResolveDirs() (Dirs, error) {
	var d Dirs
	if err := env.ParseWithOptions(&d, env.Options{Prefix: "ANIMACONF_"}); err != nil {
		return Dirs{}, fmt.Errorf("error getting env configs: %w", err)
	}
	return d, nil
}

// DefaultInferencePath returns the default inference config location under
// the application config directory. Environment resolution errors fall back
// to the built-in "config" directory; the subsequent file load reports any
// real problem with the resulting path.
func DefaultInferencePath() string {
	d, err := ResolveDirs()
	if err != nil {
		d = Dirs{ConfigDir: "config"}
	}
	return filepath.Join(d.ConfigDir, "inference", "default.json")
}
