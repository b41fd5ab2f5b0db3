// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pakconf Authors

package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// rcLoadOptions configures ini parsing for npmrc files. The colon must not
// act as a key/value delimiter because scoped keys (@scope:registry) and
// credential keys (//host/:_authToken) contain one. Bare keys are treated
// as boolean true, matching npm.
var rcLoadOptions = ini.LoadOptions{
	KeyValueDelimiters: "=",
	AllowBooleanKeys:   true,
}

// parseRCFile reads an rc file into a RawConfig, preserving the key order
// of the file. Values are typed with parseValue; keys declared as lists in
// defs additionally split on commas and whitespace.
func parseRCFile(path string, defs Definitions) (*RawConfig, error) {
	file, err := ini.LoadSources(rcLoadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("error reading rc file %s: %w", path, err)
	}

	raw := NewRawConfig()
	section := file.Section(ini.DefaultSection)
	for _, key := range section.KeyStrings() {
		val := parseValue(section.Key(key).String())
		if def, ok := defs[key]; ok && hasType(def.Types, TypeList) {
			raw.Set(key, splitList(val))
			continue
		}
		raw.Set(key, val)
	}
	return raw, nil
}

func hasType(types []Type, t Type) bool {
	for _, have := range types {
		if have == t {
			return true
		}
	}
	return false
}
