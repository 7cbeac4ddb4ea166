package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The process-wide registries are shared by the whole test binary, so these
// tests use keys no other test touches.

func TestDefaultPlayerRegistry(t *testing.T) {
	id := PlayerID(999000001)
	assert.False(t, HasPlayer(id))
	assert.Nil(t, PlayerFromKey(id))

	f := mcDavidFields()
	f.ID = id
	p, err := NewPlayer(f)
	require.NoError(t, err)

	assert.True(t, HasPlayer(id))
	assert.Same(t, p, PlayerFromKey(id))
	assert.Same(t, p, DefaultPlayers().FromKey(id))

	again, err := NewPlayer(PlayerFields{ID: id, Name: "Ignored"})
	require.NoError(t, err)
	assert.Same(t, p, again)
}

func TestDefaultGametimeRegistry(t *testing.T) {
	key := GametimeKey{Period: 9, Seconds: 1}
	assert.False(t, HasGametime(key))

	g, err := NewGametime(9, 1)
	require.NoError(t, err)
	parsed, err := ParseGametime(9, "00:01")
	require.NoError(t, err)

	assert.Same(t, g, parsed)
	assert.Same(t, g, GametimeFromKey(key))
	assert.Same(t, g, DefaultGametimes().FromKey(key))
}

func TestNewPlayerWithoutKey(t *testing.T) {
	p, err := NewPlayer(PlayerFields{})
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Nil(t, p)
	assert.False(t, HasPlayer(0))
}
