package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_AcceptsWellTypedValues verifies that values matching their
// declared types pass.
func TestValidate_AcceptsWellTypedValues(t *testing.T) {
	raw := rawOf(t,
		"save-dev", true,
		"registry", "https://example.com/",
		"tag", "beta",
		"omit", []string{"dev"},
	)

	assert.NoError(t, DefaultDefinitions().Validate(raw))
}

// TestValidate_RejectsWrongType verifies that a number in a boolean key is
// reported with the offending key name.
func TestValidate_RejectsWrongType(t *testing.T) {
	err := DefaultDefinitions().Validate(rawOf(t, "save-dev", int64(12)))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "save-dev")
}

// TestValidate_ReportsEveryViolation verifies that all bad keys appear in
// the joined error.
func TestValidate_ReportsEveryViolation(t *testing.T) {
	err := DefaultDefinitions().Validate(rawOf(t,
		"save-dev", "yes",
		"registry", "not a url",
	))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save-dev")
	assert.Contains(t, err.Error(), "registry")
}

// TestValidate_UnknownKeysAccepted verifies that unrecognized keys are
// never rejected.
func TestValidate_UnknownKeysAccepted(t *testing.T) {
	raw := rawOf(t, "totally-custom", struct{}{})

	assert.NoError(t, DefaultDefinitions().Validate(raw))
}

// TestValidate_ScopedKeysAccepted verifies that scoped and credential keys
// bypass type checks.
func TestValidate_ScopedKeysAccepted(t *testing.T) {
	raw := rawOf(t,
		"@scope:registry", "https://scope.example.com/",
		"//registry.example.com/:_authToken", "tok",
	)

	assert.NoError(t, DefaultDefinitions().Validate(raw))
}

// TestValidate_NilClearsAnyKey verifies that null values are always valid.
func TestValidate_NilClearsAnyKey(t *testing.T) {
	assert.NoError(t, DefaultDefinitions().Validate(rawOf(t, "save-dev", nil)))
}

// TestValidate_MultiTypeKey verifies keys that accept several types, like
// color's boolean-or-string forms.
func TestValidate_MultiTypeKey(t *testing.T) {
	defs := DefaultDefinitions()

	assert.NoError(t, defs.Validate(rawOf(t, "color", true)))
	assert.NoError(t, defs.Validate(rawOf(t, "color", "always")))
	assert.Error(t, defs.Validate(rawOf(t, "color", int64(2))))
}
