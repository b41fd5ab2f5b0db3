// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pakconf Authors

package config

import "strings"

// envKeyPrefix marks environment variables that carry per-key
// configuration overrides, e.g. npm_config_save_dev=true.
const envKeyPrefix = "npm_config_"

// envLayer builds the environment layer from the given environ slice (the
// os.Environ format, "KEY=value"). Variable names are matched
// case-insensitively against the npm_config_ prefix; the remainder is
// lowercased and underscores after the first character become dashes, so
// npm_config_save_dev addresses the save-dev key.
func envLayer(environ []string, defs Definitions) *RawConfig {
	raw := NewRawConfig()
	for _, kv := range environ {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		lower := strings.ToLower(name)
		if !strings.HasPrefix(lower, envKeyPrefix) {
			continue
		}
		key := envVarToKey(strings.TrimPrefix(lower, envKeyPrefix))
		if key == "" {
			continue
		}

		parsed := parseValue(val)
		if def, ok := defs[key]; ok && hasType(def.Types, TypeList) {
			raw.Set(key, splitList(parsed))
			continue
		}
		raw.Set(key, parsed)
	}
	return raw
}

// envVarToKey maps an environment suffix to a config key: underscores
// become dashes except in leading position, so npm_config__auth still
// addresses the _auth key.
func envVarToKey(suffix string) string {
	if len(suffix) <= 1 {
		return suffix
	}
	return suffix[:1] + strings.ReplaceAll(suffix[1:], "_", "-")
}
