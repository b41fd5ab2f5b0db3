// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pakconf Authors

package config

import "os"

// ExecContext supplies the ambient process state consulted during
// flattening and location discovery: the path of the running
// package-manager binary and environment lookups. Keeping it behind an
// interface lets tests substitute fixed values instead of reading real
// process state.
type ExecContext interface {
	// BinPath reports the path of the running executable, or "" if it
	// cannot be determined.
	BinPath() string

	// LookupEnv reports the value of the named environment variable and
	// whether it is set.
	LookupEnv(key string) (string, bool)
}

// OSExecContext is the ExecContext backed by the real process.
type OSExecContext struct{}

// BinPath implements [ExecContext] via os.Executable.
func (OSExecContext) BinPath() string {
	p, err := os.Executable()
	if err != nil {
		return ""
	}
	return p
}

// LookupEnv implements [ExecContext] via os.LookupEnv.
func (OSExecContext) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
