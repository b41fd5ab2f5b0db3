// Package config resolves npm-style package-manager configuration from
// layered sources and flattens it into a single derived settings record.
//
// Configuration is assembled from multiple layers in the following priority
// order (later layers override earlier ones):
//  1. Built-in defaults from the definitions table
//  2. Builtin rc file (next to the executable)
//  3. Global rc file ($PREFIX/etc/npmrc)
//  4. User rc file (~/.npmrc)
//  5. Project rc file (<cwd>/.npmrc)
//  6. Environment variables (npm_config_*)
//  7. Programmatic overrides
//
// Each layer is an ordered [RawConfig] of key/value pairs. Layers are folded
// into one [FlatConfig] by a [Flattener], which applies per-key derivation
// rules from the [Definitions] table: some keys are renamed, some combine
// into derived settings (saveType, savePrefix, omit), scoped-registry and
// credential keys pass through verbatim, and unknown keys are copied
// unchanged.
//
// The main entry point is [Resolve]; [Flatten] exposes the flattening step
// on its own.
package config
