package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/depeter/mediawall/internal/config"
)

func TestParseKey(t *testing.T) {
	k, ok := parseKey("Space")
	require.True(t, ok)
	require.Equal(t, ebiten.KeySpace, k)

	k, ok = parseKey(" right ")
	require.True(t, ok)
	require.Equal(t, ebiten.KeyArrowRight, k)

	_, ok = parseKey("F13")
	require.False(t, ok)
}

func TestDefaultKeybindsResolve(t *testing.T) {
	kb := config.DefaultConfig().Keybinds
	for _, name := range []string{
		kb.PlayPause, kb.SeekForward, kb.SeekBackward, kb.SeekForwardLarge, kb.SeekBackwardLarge,
		kb.VolumeUp, kb.VolumeDown, kb.Mute, kb.Fullscreen,
	} {
		_, ok := parseKey(name)
		require.True(t, ok, "key %q", name)
	}
}

func TestNewGameSharesState(t *testing.T) {
	cfg := config.DefaultConfig()
	g := NewGame(cfg, nil, nil)

	require.Equal(t, StateBrowse, g.State)
	w, h := g.Screens.ViewportSize()
	require.Equal(t, 1280.0, w)
	require.Equal(t, 900.0, h)

	lw, lh := g.Layout(1024, 700)
	require.Equal(t, 1024, lw)
	require.Equal(t, 700, lh)
	w, h = g.Screens.ViewportSize()
	require.Equal(t, 1024.0, w)
	require.Equal(t, 700.0, h)
}
