package ident

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMintIsUniqueAndLive(t *testing.T) {
	a := NewAllocator()
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := a.Mint()
		require.False(t, id.IsNone())
		require.False(t, seen[id], "identity %q minted twice", id)
		seen[id] = true
		require.True(t, a.Live(id))
	}
	require.Equal(t, 100, a.Count())
}

func TestReleaseNeverRevivesIdentity(t *testing.T) {
	a := NewAllocator()
	first := a.Mint()
	a.Release(first)
	require.False(t, a.Live(first))

	second := a.Mint()
	require.NotEqual(t, first, second)
	require.False(t, a.Live(first))

	a.Release("unknown")
	require.Equal(t, 1, a.Count())
}

func TestNoneIsNeverLive(t *testing.T) {
	a := NewAllocator()
	a.Mint()
	require.False(t, a.Live(None))
}
