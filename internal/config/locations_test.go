package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultLocations_FromBinPath verifies that locations derive from the
// executable's install prefix.
func TestDefaultLocations_FromBinPath(t *testing.T) {
	loc := defaultLocations(stubExec{bin: "/opt/pak/bin/pak"}, "")

	assert.Equal(t, "/opt/pak", loc.Prefix)
	assert.Equal(t, "/opt/pak/etc/npmrc", loc.GlobalConfig)
	assert.Equal(t, "/opt/pak/bin/npmrc", loc.Builtin)
	assert.Equal(t, ".npmrc", filepath.Base(loc.UserConfig))
}

// TestDefaultLocations_NoBinPath verifies the fallback prefix when the
// executable path is unknown.
func TestDefaultLocations_NoBinPath(t *testing.T) {
	loc := defaultLocations(stubExec{}, "")

	assert.Equal(t, "/usr/local", loc.Prefix)
	assert.Empty(t, loc.Builtin)
}

// TestResolveLocations_EnvOverrides verifies that environment overrides
// win over computed defaults via the merge.
func TestResolveLocations_EnvOverrides(t *testing.T) {
	t.Setenv("npm_config_userconfig", "/custom/userrc")
	t.Setenv("npm_config_globalconfig", "/custom/globalrc")

	loc, err := resolveLocations(stubExec{bin: "/opt/pak/bin/pak"})
	require.NoError(t, err)

	assert.Equal(t, "/custom/userrc", loc.UserConfig)
	assert.Equal(t, "/custom/globalrc", loc.GlobalConfig)
	// non-overridden fields keep their computed values
	assert.Equal(t, "/opt/pak", loc.Prefix)
}

// TestResolveLocations_PrefixOverrideMovesGlobal verifies that a prefix
// override relocates the default global rc path.
func TestResolveLocations_PrefixOverrideMovesGlobal(t *testing.T) {
	t.Setenv("npm_config_prefix", "/custom")
	t.Setenv("npm_config_globalconfig", "")
	t.Setenv("npm_config_userconfig", "")

	loc, err := resolveLocations(stubExec{})
	require.NoError(t, err)

	assert.Equal(t, "/custom", loc.Prefix)
	assert.Equal(t, filepath.Join("/custom", "etc", "npmrc"), loc.GlobalConfig)
}

// TestProjectRC verifies the project rc path helper.
func TestProjectRC(t *testing.T) {
	assert.Equal(t, "/work/app/.npmrc", Locations{Project: "/work/app"}.projectRC())
	assert.Empty(t, Locations{}.projectRC())
}
