// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pakconf Authors

package config

import (
	"path/filepath"
	"sort"
	"strings"
)

// Type classifies the values a configuration key accepts.
type Type int

// Value types recognized by the definitions table.
const (
	TypeString Type = iota
	TypeBoolean
	TypeNumber
	TypePath
	TypeURL
	TypeList
)

// FlattenFunc is a derivation rule for one raw key. It receives the key
// being flattened, the full raw layer, and the in-progress flat
// accumulator, and may write, overwrite, or delete any number of flat
// keys.
type FlattenFunc func(key string, raw *RawConfig, flat FlatConfig)

// Definition describes one known configuration key: its default value,
// the value types it accepts, and an optional derivation rule. A key
// without a rule flattens under its camel-cased name.
type Definition struct {
	Key     string
	Default any
	Types   []Type
	Flatten FlattenFunc
}

// Definitions is the registry of known configuration keys. Callers may
// add entries to extend the recognized key set before resolution.
type Definitions map[string]*Definition

// DefaultDefinitions returns the built-in definitions table.
func DefaultDefinitions() Definitions {
	defs := Definitions{}
	add := func(key string, def any, rule FlattenFunc, types ...Type) {
		defs[key] = &Definition{Key: key, Default: def, Types: types, Flatten: rule}
	}

	add("registry", "https://registry.npmjs.org/", nil, TypeURL)
	add("tag", "latest", flattenTag, TypeString)
	add("color", true, flattenColor, TypeBoolean, TypeString)
	add("cache", "", flattenCache, TypePath)
	add("global", false, flattenLocation, TypeBoolean)
	add("location", "user", flattenLocation, TypeString)
	add("omit", []string{}, flattenOmit, TypeList)
	add("include", []string{}, flattenOmit, TypeList)
	add("save-exact", false, flattenSavePrefix, TypeBoolean)
	add("save-prefix", "^", flattenSavePrefix, TypeString)
	add("save-dev", false, flattenSaveDev, TypeBoolean)
	add("save-prod", false, flattenSaveProd, TypeBoolean)
	add("save-optional", false, flattenSaveOptional, TypeBoolean)
	add("save-peer", false, flattenSavePeer, TypeBoolean)
	add("save-bundle", false, nil, TypeBoolean)
	add("user-agent", "npm/{npm-version} node/{node-version}", flattenUserAgent, TypeString)
	add("npm-version", "", nil, TypeString)
	add("node-version", "", nil, TypeString)
	add("prefix", "", nil, TypePath)
	add("userconfig", "", nil, TypePath)
	add("globalconfig", "", nil, TypePath)
	add("json", false, nil, TypeBoolean)
	add("loglevel", "notice", nil, TypeString)
	add("fund", true, nil, TypeBoolean)
	add("audit", true, nil, TypeBoolean)
	add("ignore-scripts", false, nil, TypeBoolean)
	add("strict-ssl", true, nil, TypeBoolean)

	return defs
}

// defaults builds the lowest-priority layer from the table's default
// values. Keys are emitted in sorted order so repeated resolutions are
// deterministic.
func (d Definitions) defaults() *RawConfig {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	raw := NewRawConfig()
	for _, k := range keys {
		raw.Set(k, d[k].Default)
	}
	return raw
}

// ── derivation rules ──────────────────────────────────────────────────────────

// flattenSavePrefix handles save-exact and save-prefix together: an exact
// save suppresses the prefix entirely, otherwise the configured prefix
// wins. Neither raw key appears in the flat output.
func flattenSavePrefix(_ string, raw *RawConfig, flat FlatConfig) {
	if v, ok := raw.Get("save-exact"); ok && isTrue(v) {
		flat["savePrefix"] = ""
		return
	}
	if v, ok := raw.Get("save-prefix"); ok {
		flat["savePrefix"] = v
	}
}

func flattenSaveDev(key string, raw *RawConfig, flat FlatConfig) {
	v, _ := raw.Get(key)
	if isTrue(v) {
		flat["saveType"] = "dev"
		return
	}
	if flat["saveType"] == "dev" {
		delete(flat, "saveType")
	}
}

func flattenSaveProd(key string, raw *RawConfig, flat FlatConfig) {
	v, _ := raw.Get(key)
	if isTrue(v) {
		flat["saveType"] = "prod"
		return
	}
	if flat["saveType"] == "prod" {
		delete(flat, "saveType")
	}
}

// flattenSaveOptional and flattenSavePeer keep saveType consistent when
// both flags are in play: optional+peer collapses to peerOptional, and
// unsetting one side falls back to the other.
func flattenSaveOptional(key string, raw *RawConfig, flat FlatConfig) {
	v, _ := raw.Get(key)
	if !isTrue(v) {
		switch flat["saveType"] {
		case "peerOptional":
			flat["saveType"] = "peer"
		case "optional":
			delete(flat, "saveType")
		}
		return
	}
	if flat["saveType"] == "peer" {
		flat["saveType"] = "peerOptional"
	} else {
		flat["saveType"] = "optional"
	}
}

func flattenSavePeer(key string, raw *RawConfig, flat FlatConfig) {
	v, _ := raw.Get(key)
	if !isTrue(v) {
		switch flat["saveType"] {
		case "peerOptional":
			flat["saveType"] = "optional"
		case "peer":
			delete(flat, "saveType")
		}
		return
	}
	if flat["saveType"] == "optional" {
		flat["saveType"] = "peerOptional"
	} else {
		flat["saveType"] = "peer"
	}
}

// flattenOmit handles omit and include together: anything explicitly
// included is removed from the omit set.
func flattenOmit(_ string, raw *RawConfig, flat FlatConfig) {
	var omit []string
	if v, ok := raw.Get("omit"); ok {
		omit = splitList(v)
	}
	var include []string
	if v, ok := raw.Get("include"); ok {
		include = splitList(v)
	}

	kept := make([]string, 0, len(omit))
	for _, o := range omit {
		included := false
		for _, i := range include {
			if i == o {
				included = true
				break
			}
		}
		if !included {
			kept = append(kept, o)
		}
	}
	flat["omit"] = kept
	flat["include"] = include
}

// flattenLocation handles global and location together: global=true forces
// the global location, otherwise the location value decides both.
func flattenLocation(_ string, raw *RawConfig, flat FlatConfig) {
	loc, hasLoc := raw.Get("location")
	if g, ok := raw.Get("global"); ok && isTrue(g) {
		loc, hasLoc = "global", true
	}
	if hasLoc {
		flat["location"] = loc
		flat["global"] = loc == "global"
	}
}

func flattenCache(key string, raw *RawConfig, flat FlatConfig) {
	v, _ := raw.Get(key)
	s, _ := v.(string)
	flat["cache"] = s
	if s != "" {
		flat["npxCache"] = filepath.Join(s, "_npx")
	}
}

func flattenTag(key string, raw *RawConfig, flat FlatConfig) {
	v, _ := raw.Get(key)
	flat["defaultTag"] = v
}

func flattenColor(key string, raw *RawConfig, flat FlatConfig) {
	v, _ := raw.Get(key)
	flat["color"] = v == "always" || isTrue(v)
}

// flattenUserAgent expands the {npm-version} and {node-version} template
// tokens from sibling raw keys. Tokens left unresolved (trailing slash
// after substitution) are dropped.
func flattenUserAgent(key string, raw *RawConfig, flat FlatConfig) {
	v, _ := raw.Get(key)
	s, ok := v.(string)
	if !ok {
		return
	}
	s = strings.ReplaceAll(s, "{npm-version}", rawString(raw, "npm-version"))
	s = strings.ReplaceAll(s, "{node-version}", rawString(raw, "node-version"))

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if strings.HasSuffix(f, "/") {
			continue
		}
		kept = append(kept, f)
	}
	flat["userAgent"] = strings.Join(kept, " ")
}

func rawString(raw *RawConfig, key string) string {
	v, _ := raw.Get(key)
	s, _ := v.(string)
	return s
}
