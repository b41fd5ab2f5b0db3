// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pakconf Authors

package config

import "strings"

// FlatConfig is the merged, renamed configuration consumed by the rest of
// the program. It maps derived setting names (savePrefix, saveType, ...)
// and verbatim passthrough keys to their resolved values.
type FlatConfig map[string]any

// Flattener folds raw configuration layers into a FlatConfig using a
// definitions table and an ambient execution context.
type Flattener struct {
	defs Definitions
	exec ExecContext
}

// NewFlattener returns a Flattener over the given definitions table. A nil
// exec falls back to the real process context.
func NewFlattener(defs Definitions, exec ExecContext) *Flattener {
	if exec == nil {
		exec = OSExecContext{}
	}
	return &Flattener{defs: defs, exec: exec}
}

// Flatten folds raw into flat and returns flat.
//
// If flat is nil a fresh FlatConfig is allocated; otherwise the passed map
// is mutated in place AND returned, so callers layering several raw
// configs can thread one accumulator through successive calls.
//
// Keys are processed in raw's insertion order. A key with a registered
// derivation rule is handed to that rule, which may write, overwrite, or
// delete flat entries. A defined key without a rule is written under its
// camel-cased name. Scoped-registry keys (@scope:registry), credential
// keys (//host/:_authToken), and unknown keys are copied verbatim.
//
// After the keys are processed the ambient npmBin and nodeBin settings
// are derived from the execution context when it reports values.
func (f *Flattener) Flatten(raw *RawConfig, flat FlatConfig) FlatConfig {
	if flat == nil {
		flat = make(FlatConfig, raw.Len())
	}

	for _, key := range raw.Keys() {
		val, _ := raw.Get(key)
		if def, ok := f.defs[key]; ok && !isScopedKey(key) {
			if def.Flatten != nil {
				def.Flatten(key, raw, flat)
				continue
			}
			flat[camelCase(key)] = val
			continue
		}
		flat[key] = val
	}

	if bin := f.exec.BinPath(); bin != "" {
		flat["npmBin"] = bin
	}
	if node := f.nodeBin(); node != "" {
		flat["nodeBin"] = node
	}
	return flat
}

// nodeBin resolves the node executable for child processes: an explicit
// environment override wins, then the npm-provided exec path, then the
// running binary itself.
func (f *Flattener) nodeBin() string {
	if v, ok := f.exec.LookupEnv("npm_node_execpath"); ok && v != "" {
		return v
	}
	if v, ok := f.exec.LookupEnv("NODE"); ok && v != "" {
		return v
	}
	return f.exec.BinPath()
}

// isScopedKey reports whether key is a scoped-registry or credential key,
// which always passes through verbatim even if a definition shadows it.
func isScopedKey(key string) bool {
	return strings.HasPrefix(key, "@") || strings.HasPrefix(key, "//")
}

// Flatten folds raw into flat with the default definitions table and the
// real process context. See [Flattener.Flatten] for the aliasing contract:
// a non-nil flat is mutated in place and returned.
func Flatten(raw *RawConfig, flat FlatConfig) FlatConfig {
	return NewFlattener(DefaultDefinitions(), nil).Flatten(raw, flat)
}
