// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pakconf Authors

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks every defined key in raw against the types its
// definition declares. Unknown keys and scoped keys are accepted silently;
// nil values are always valid since null clears a key.
//
// Returns nil or an error joining one [ErrInvalidValue] per offending key.
func (d Definitions) Validate(raw *RawConfig) error {
	var errs []error
	for _, key := range raw.Keys() {
		def, ok := d[key]
		if !ok || isScopedKey(key) {
			continue
		}
		val, _ := raw.Get(key)
		if !def.accepts(val) {
			errs = append(errs, fmt.Errorf("%w: key %q", ErrInvalidValue, key))
		}
	}
	return errors.Join(errs...)
}

func (def *Definition) accepts(v any) bool {
	if v == nil || len(def.Types) == 0 {
		return true
	}
	for _, t := range def.Types {
		if typeAccepts(t, v) {
			return true
		}
	}
	return false
}

func typeAccepts(t Type, v any) bool {
	switch t {
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeNumber:
		switch v.(type) {
		case int, int64, float64:
			return true
		}
		return false
	case TypeString, TypePath:
		_, ok := v.(string)
		return ok
	case TypeURL:
		s, ok := v.(string)
		if !ok {
			return false
		}
		u, err := url.Parse(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	case TypeList:
		switch v.(type) {
		case []string, string:
			return true
		}
		return false
	default:
		return false
	}
}
