package login

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateMarksOnline(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Create("alice", "pw"))

	assert.True(t, r.Known("alice"))
	assert.True(t, r.Online("alice"))
}

func TestRegistry_SecretIsHashed(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create("alice", "pw"))

	assert.NotContains(t, string(r.accounts["alice"].hash), "pw")
}

func TestRegistry_AuthenticateRoundTrip(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create("alice", "pw"))
	r.SetOffline("alice")

	assert.False(t, r.Online("alice"))
	assert.True(t, r.Authenticate("alice", "pw"))
	assert.True(t, r.Online("alice"))
}

func TestRegistry_AuthenticateWrongSecret(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create("alice", "pw"))
	r.SetOffline("alice")

	assert.False(t, r.Authenticate("alice", "nope"))
	assert.False(t, r.Online("alice"))
}

func TestRegistry_SetOfflinePreservesSecret(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create("alice", "pw"))

	r.SetOffline("alice")
	require.True(t, r.Authenticate("alice", "pw"))
	r.SetOffline("alice")

	assert.True(t, r.Known("alice"))
	assert.True(t, r.Authenticate("alice", "pw"))
}

func TestRegistry_SetOfflineTwicePanics(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create("alice", "pw"))
	r.SetOffline("alice")

	assert.Panics(t, func() { r.SetOffline("alice") })
}

func TestRegistry_SetOfflineUnknownPanics(t *testing.T) {
	r := NewRegistry()

	assert.Panics(t, func() { r.SetOffline("ghost") })
}

func TestRegistry_LoginsAreCaseSensitive(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create("Alice", "pw"))

	assert.False(t, r.Known("alice"))
}
