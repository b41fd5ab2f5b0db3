// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pakconf Authors

package config

// RawConfig holds one layer's unmerged key/value pairs. Values are strings,
// booleans, numbers (int64/float64), string lists, or nil.
//
// Insertion order of keys is preserved: flattening iterates keys in the
// order they were first set, so derivation rules observe earlier writes
// within the same layer. Overwriting an existing key keeps its position.
type RawConfig struct {
	keys   []string
	values map[string]any
}

// NewRawConfig returns an empty RawConfig.
func NewRawConfig() *RawConfig {
	return &RawConfig{values: make(map[string]any)}
}

// Set stores value under key, appending the key at the end of the iteration
// order if it is new.
func (r *RawConfig) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
// A present key may hold a nil value.
func (r *RawConfig) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Delete removes key and its value. Deleting an absent key is a no-op.
func (r *RawConfig) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (r *RawConfig) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys.
func (r *RawConfig) Len() int {
	return len(r.keys)
}
