package config

import "errors"

// Errors returned during configuration resolution and credential handling.
var (
	// ErrInvalidValue indicates a raw value that does not match any of the
	// types declared for its key in the definitions table.
	ErrInvalidValue = errors.New("invalid configuration value")
	// ErrInvalidCredentials indicates registry credentials that are
	// incomplete (username without password) or not decodable.
	ErrInvalidCredentials = errors.New("invalid registry credentials")
	// ErrUnknownLayer indicates a layer name that is not part of the
	// resolved configuration.
	ErrUnknownLayer = errors.New("unknown configuration layer")
	// ErrLayerNotSavable indicates an attempt to save a layer that has no
	// backing file (defaults, environment, overrides).
	ErrLayerNotSavable = errors.New("layer has no backing file")
)
