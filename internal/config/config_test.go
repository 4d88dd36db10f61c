package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, DefaultTokens(), cfg.Tokens)
	require.Equal(t, 300*time.Millisecond, cfg.Tokens.MorphDuration())
	require.Len(t, cfg.Wall.Sections, 2)
	require.Equal(t, path, cfg.Path())
}

func TestDecodeManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[ui]
width = 1600

[tokens]
grid_x = 20
morph_ms = 450

[[wall.sections]]
title = "Clips"
kind = "videos"
columns = 2

[[wall.sections.tiles]]
title = "One"
src = "/videos/one.mp4"
orientation = "vertical"

[[cases]]
slug = "watchface"
title = "Watch Face"
article = "cases/watchface.md"

[[cases.media]]
after = "I started by"
aspect = "1:1"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, 1600, cfg.UI.Width)
	require.Equal(t, 900, cfg.UI.Height, "unset keys keep their default")
	require.Equal(t, 20.0, cfg.Tokens.GridX)
	require.Equal(t, 450*time.Millisecond, cfg.Tokens.MorphDuration())
	require.Equal(t, 1.04, cfg.Tokens.VideoHoverScale)

	require.Len(t, cfg.Wall.Sections, 1, "manifest sections replace the sample wall")
	require.Equal(t, "Clips", cfg.Wall.Sections[0].Title)
	require.Equal(t, "/videos/one.mp4", cfg.Wall.Sections[0].Tiles[0].Src)

	cs, ok := cfg.Case("watchface")
	require.True(t, ok)
	require.Equal(t, "1:1", cs.Media[0].Aspect)
	_, ok = cfg.Case("missing")
	require.False(t, ok)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MEDIAWALL_FULLSCREEN", "true")
	t.Setenv("MEDIAWALL_WIDTH", "1920")
	t.Setenv("MEDIAWALL_JELLYFIN_URL", "http://media.local:8096")
	t.Setenv("MEDIAWALL_JELLYFIN_TOKEN", "secret")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	require.True(t, cfg.UI.Fullscreen)
	require.Equal(t, 1920, cfg.UI.Width)
	require.True(t, cfg.Jellyfin.Enabled())
	require.Equal(t, "Latest", cfg.Jellyfin.Title)
}

func TestSaveRoundTripsTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	cfg.Tokens.Stack = 48
	require.NoError(t, cfg.Save())

	again, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 48.0, again.Tokens.Stack)
}

func TestTokenFieldNudgeClamps(t *testing.T) {
	tokens := DefaultTokens()
	var gap TokenField
	for _, f := range tokens.Fields() {
		if f.Key == "grid_x" {
			gap = f
		}
	}
	require.NotNil(t, gap.Value)

	gap.Nudge(3)
	require.Equal(t, 15.0, tokens.GridX)
	gap.Nudge(-100)
	require.Equal(t, 0.0, tokens.GridX)
}

func TestSpecs(t *testing.T) {
	tokens := DefaultTokens()
	specs := tokens.Specs()
	require.Contains(t, specs, "--page-x: 64\n")
	require.Contains(t, specs, "--grid-x: 12\n")
}
