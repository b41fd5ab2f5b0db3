package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/ini.v1"
)

// Save serializes the named layer's raw config back to its rc file in ini
// form, preserving key order. The file is written to a uniquely named temp
// file in the same directory and renamed over the target, so readers never
// observe a partial write.
//
// Only file-backed layers can be saved; the defaults, env, and overrides
// layers return [ErrLayerNotSavable].
func (r *Resolved) Save(name Layer) error {
	layer := r.layerByName(name)
	if layer == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, name)
	}
	if layer.path == "" {
		return fmt.Errorf("%w: %s", ErrLayerNotSavable, name)
	}

	file := ini.Empty()
	section := file.Section(ini.DefaultSection)
	for _, key := range layer.raw.Keys() {
		val, _ := layer.raw.Get(key)
		if _, err := section.NewKey(key, formatValue(val)); err != nil {
			return fmt.Errorf("error serializing key %q: %w", key, err)
		}
	}

	tmp := fmt.Sprintf("%s.%s.tmp", layer.path, uuid.NewString())
	if err := file.SaveTo(tmp); err != nil {
		return fmt.Errorf("error writing rc file %s: %w", layer.path, err)
	}
	if err := os.Rename(tmp, layer.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("error replacing rc file %s: %w", layer.path, err)
	}

	r.log.Debug().Str("layer", string(name)).Str("path", layer.path).Msg("saved config layer")
	return nil
}
