// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pakconf Authors

package config

import (
	"fmt"

	"github.com/pakconf/pakconf/internal/logger"
)

// Resolved is the outcome of configuration resolution: the loaded layers
// in priority order plus the flattened result. It also tracks which layer
// supplied each raw key and supports editing and saving file-backed
// layers.
type Resolved struct {
	defs      Definitions
	flattener *Flattener
	layers    []*layerData
	flat      FlatConfig
	log       *logger.Logger
}

// Flat returns the flattened configuration. The returned map is the live
// accumulator; treat it as read-only.
func (r *Resolved) Flat() FlatConfig {
	return r.flat
}

// Get returns the flattened value for a derived key and whether it is set.
func (r *Resolved) Get(key string) (any, bool) {
	v, ok := r.flat[key]
	return v, ok
}

// SourceOf reports the highest-priority layer whose raw config contains
// the given raw key, or "" when no layer sets it. Note that it takes raw
// key names (save-dev), not derived ones (saveType).
func (r *Resolved) SourceOf(key string) Layer {
	for i := len(r.layers) - 1; i >= 0; i-- {
		if _, ok := r.layers[i].raw.Get(key); ok {
			return r.layers[i].name
		}
	}
	return ""
}

// SetInLayer writes a raw key into the named layer and re-flattens the
// result. The change is in-memory only until the layer is saved.
func (r *Resolved) SetInLayer(name Layer, key string, value any) error {
	layer := r.layerByName(name)
	if layer == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, name)
	}

	layer.raw.Set(key, value)
	r.reflatten()
	r.log.Debug().Str("layer", string(name)).Str("key", key).Msg("config key updated")
	return nil
}

// DeleteInLayer removes a raw key from the named layer and re-flattens.
func (r *Resolved) DeleteInLayer(name Layer, key string) error {
	layer := r.layerByName(name)
	if layer == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, name)
	}

	layer.raw.Delete(key)
	r.reflatten()
	return nil
}

func (r *Resolved) layerByName(name Layer) *layerData {
	for _, l := range r.layers {
		if l.name == name {
			return l
		}
	}
	return nil
}

// reflatten rebuilds the flat accumulator by folding every layer in
// priority order, lowest first, through one shared FlatConfig.
func (r *Resolved) reflatten() {
	flat := FlatConfig{}
	for _, l := range r.layers {
		flat = r.flattener.Flatten(l.raw, flat)
	}
	r.flat = flat
}
