package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRawConfig_InsertionOrder verifies that Keys returns keys in the
// order they were first set.
func TestRawConfig_InsertionOrder(t *testing.T) {
	raw := NewRawConfig()
	raw.Set("c", 1)
	raw.Set("a", 2)
	raw.Set("b", 3)

	assert.Equal(t, []string{"c", "a", "b"}, raw.Keys())
}

// TestRawConfig_OverwriteKeepsPosition verifies that resetting a key
// updates its value without moving it.
func TestRawConfig_OverwriteKeepsPosition(t *testing.T) {
	raw := NewRawConfig()
	raw.Set("a", 1)
	raw.Set("b", 2)
	raw.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, raw.Keys())
	v, ok := raw.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

// TestRawConfig_Delete verifies removal of keys and that deleting an
// absent key is a no-op.
func TestRawConfig_Delete(t *testing.T) {
	raw := NewRawConfig()
	raw.Set("a", 1)
	raw.Set("b", 2)

	raw.Delete("a")
	raw.Delete("missing")

	assert.Equal(t, []string{"b"}, raw.Keys())
	_, ok := raw.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, raw.Len())
}

// TestRawConfig_NilValuePresent verifies that a key set to nil still
// reports as present.
func TestRawConfig_NilValuePresent(t *testing.T) {
	raw := NewRawConfig()
	raw.Set("cleared", nil)

	v, ok := raw.Get("cleared")
	assert.True(t, ok)
	assert.Nil(t, v)
}

// TestRawConfig_KeysIsCopy verifies that mutating the returned slice does
// not affect iteration order.
func TestRawConfig_KeysIsCopy(t *testing.T) {
	raw := NewRawConfig()
	raw.Set("a", 1)
	raw.Set("b", 2)

	keys := raw.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, raw.Keys())
}
