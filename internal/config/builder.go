package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pakconf/pakconf/internal/logger"
)

// Layer identifies one configuration source, from lowest to highest
// priority: defaults, builtin, global, user, project, env, overrides.
type Layer string

// Layer names in priority order.
const (
	LayerDefaults  Layer = "defaults"
	LayerBuiltin   Layer = "builtin"
	LayerGlobal    Layer = "global"
	LayerUser      Layer = "user"
	LayerProject   Layer = "project"
	LayerEnv       Layer = "env"
	LayerOverrides Layer = "overrides"
)

// layerData is one loaded layer: its name, the backing file path for
// file-based layers (empty otherwise), and the parsed raw config.
type layerData struct {
	name Layer
	path string
	raw  *RawConfig
}

type resolveBuilder struct {
	defs      Definitions
	flattener *Flattener
	loc       Locations
	log       *logger.Logger
	layers    []*layerData
	err       error
}

func newResolveBuilder(defs Definitions, exec ExecContext, loc Locations, log *logger.Logger) *resolveBuilder {
	return &resolveBuilder{
		defs:      defs,
		flattener: NewFlattener(defs, exec),
		loc:       loc,
		log:       log,
		layers:    make([]*layerData, 0, 7),
	}
}

func (b *resolveBuilder) build() (*Resolved, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building configuration: %w", b.err)
	}

	r := &Resolved{
		defs:      b.defs,
		flattener: b.flattener,
		layers:    b.layers,
		log:       b.log,
	}
	r.reflatten()
	return r, nil
}

func (b *resolveBuilder) withDefaults() *resolveBuilder {
	b.add(LayerDefaults, "", b.defs.defaults())
	return b
}

func (b *resolveBuilder) withBuiltin() *resolveBuilder {
	return b.withFile(LayerBuiltin, b.loc.Builtin)
}

func (b *resolveBuilder) withGlobal() *resolveBuilder {
	return b.withFile(LayerGlobal, b.loc.GlobalConfig)
}

// withUser loads the user rc file. Unlike the other file layers, the user
// layer is always added even when its file does not exist yet, so
// credentials and config edits have somewhere to land and be saved.
func (b *resolveBuilder) withUser() *resolveBuilder {
	path := b.loc.UserConfig
	if path == "" {
		b.add(LayerUser, "", NewRawConfig())
		return b
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		b.add(LayerUser, path, NewRawConfig())
		return b
	}

	raw, err := parseRCFile(path, b.defs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.add(LayerUser, path, raw)
	return b
}

func (b *resolveBuilder) withProject() *resolveBuilder {
	return b.withFile(LayerProject, b.loc.projectRC())
}

func (b *resolveBuilder) withEnv(environ []string) *resolveBuilder {
	b.add(LayerEnv, "", envLayer(environ, b.defs))
	return b
}

func (b *resolveBuilder) withOverrides(raw *RawConfig) *resolveBuilder {
	if raw == nil {
		return b
	}
	b.add(LayerOverrides, "", raw)
	return b
}

// withFile loads a file-backed layer. A missing file is skipped silently;
// an unreadable or malformed one records an error on the builder.
func (b *resolveBuilder) withFile(name Layer, path string) *resolveBuilder {
	if path == "" {
		return b
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		b.log.Debug().Str("layer", string(name)).Str("path", path).Msg("rc file not present, skipping layer")
		return b
	}

	raw, err := parseRCFile(path, b.defs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(name, path, raw)
	return b
}

// add validates a loaded layer and appends it; a validation failure
// records the error and drops the layer.
func (b *resolveBuilder) add(name Layer, path string, raw *RawConfig) {
	if err := b.defs.Validate(raw); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("layer %s: %w", name, err))
		return
	}

	b.layers = append(b.layers, &layerData{name: name, path: path, raw: raw})
	b.log.Debug().Str("layer", string(name)).Int("keys", raw.Len()).Msg("loaded config layer")
}

// Resolve loads, validates, merges, and flattens configuration from all
// sources in priority order (later sources win): defaults, builtin rc,
// global rc, user rc, project rc, environment, programmatic overrides.
//
// Ambient state is read from the real process. overrides may be nil; log
// may be nil for silent resolution.
func Resolve(log *logger.Logger, overrides *RawConfig) (*Resolved, error) {
	return ResolveWith(OSExecContext{}, log, overrides)
}

// ResolveWith is Resolve with an explicit execution context, primarily for
// tests and embedders that control ambient state.
func ResolveWith(exec ExecContext, log *logger.Logger, overrides *RawConfig) (*Resolved, error) {
	if log == nil {
		log = logger.Nop()
	}

	loc, err := resolveLocations(exec)
	if err != nil {
		return nil, err
	}

	return newResolveBuilder(DefaultDefinitions(), exec, loc, log).
		withDefaults().
		withBuiltin().
		withGlobal().
		withUser().
		withProject().
		withEnv(os.Environ()).
		withOverrides(overrides).
		build()
}
