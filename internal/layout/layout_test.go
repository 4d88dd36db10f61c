package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/geom"
)

var metrics = Metrics{TitleHeight: 24, HeadingHeight: 22, LineHeight: 20, IntroLines: 2}

func playground() SectionSpec {
	spec := SectionSpec{Title: "Playground", Columns: 3}
	for range 6 {
		spec.Tiles = append(spec.Tiles, TileSpec{Orientation: Vertical, TextLines: 1})
	}
	spec.Tiles = append(spec.Tiles, TileSpec{Orientation: Horizontal, TextLines: 1})
	return spec
}

func TestGridColumnsAndGaps(t *testing.T) {
	w := Compute(config.DefaultTokens(), metrics, 1280, []SectionSpec{playground()})

	require.Equal(t, 672.0, w.Content.W)
	require.Equal(t, 304.0, w.Content.X)

	slots := w.Sections[0].Slots
	require.Len(t, slots, 7)

	// 64 page + 24 title + 40 intro + 64 section, then 22 heading + 24 below.
	first := slots[0].Media
	require.Equal(t, geom.Rect{X: 304, Y: 238, W: 216, H: 384}, first)
	require.Equal(t, 304.0+216+12, slots[1].Media.X)
	require.Equal(t, slots[0].Media.Y, slots[2].Media.Y)

	// Card = 384 media + 8 gap + 20 caption; rows are 32 apart.
	require.Equal(t, 412.0, slots[0].Card.H)
	require.Equal(t, 238.0+412+32, slots[3].Media.Y)
	require.Equal(t, 392.0, slots[0].Caption.Y-slots[0].Card.Y)
}

func TestHorizontalTileTakesFullRow(t *testing.T) {
	w := Compute(config.DefaultTokens(), metrics, 1280, []SectionSpec{playground()})
	wide := w.Sections[0].Slots[6]

	require.Equal(t, 304.0, wide.Media.X)
	require.Equal(t, 672.0, wide.Media.W)
	require.Equal(t, 378.0, wide.Media.H)
	require.Equal(t, 1126.0, wide.Media.Y)
	require.Equal(t, 1126.0+406, w.Content.H)
	require.Equal(t, w.Content.H+64, w.Height)
}

func TestNarrowViewportCollapsesColumns(t *testing.T) {
	w := Compute(config.DefaultTokens(), metrics, 600, []SectionSpec{playground()})
	slots := w.Sections[0].Slots

	require.Equal(t, 472.0, slots[0].Media.W)
	require.Equal(t, slots[0].Media.X, slots[1].Media.X)
	require.Greater(t, slots[1].Media.Y, slots[0].Media.Y)
}

func TestCasesStackWithGap(t *testing.T) {
	cases := SectionSpec{Title: "Cases", Cases: true, Tiles: make([]TileSpec, 3)}
	w := Compute(config.DefaultTokens(), metrics, 1280, []SectionSpec{playground(), cases})

	slots := w.Sections[1].Slots
	require.Len(t, slots, 3)
	require.Equal(t, 672.0, slots[0].Media.W)
	require.Equal(t, 378.0, slots[0].Media.H)
	require.Equal(t, slots[0].Media.Bottom()+16, slots[1].Media.Y)
	require.Equal(t, w.Sections[0].Slots[6].Card.Bottom()+64+22+24, slots[0].Media.Y)
}

func TestTokensDriveLayout(t *testing.T) {
	tokens := config.DefaultTokens()
	tokens.GridX = 30
	w := Compute(tokens, metrics, 1280, []SectionSpec{playground()})
	slots := w.Sections[0].Slots
	require.Equal(t, 30.0, slots[1].Media.X-slots[0].Media.Right())
}

func TestExpandedSizing(t *testing.T) {
	tokens := config.DefaultTokens()
	viewport := geom.Rect{W: 1280, H: 800}

	require.Equal(t, geom.Rect{X: 460, Y: 80, W: 360, H: 640}, Expanded(tokens, Vertical, viewport))
	require.Equal(t, geom.Rect{X: 128, Y: 112, W: 1024, H: 576}, Expanded(tokens, Horizontal, viewport))

	wide := geom.Rect{W: 2560, H: 1440}
	require.Equal(t, 1152.0, Expanded(tokens, Horizontal, wide).W, "capped at the max width")
}

func TestLinkRowsStack(t *testing.T) {
	m := metrics
	m.LinkHeight = 36
	w := Compute(config.DefaultTokens(), m, 1280, []SectionSpec{
		playground(),
		{Title: "Connect", Links: 2},
	})

	links := w.Sections[1].Slots
	require.Len(t, links, 2)
	// Playground ends at 1532; 64 section gap, 22 heading, 24 below.
	require.Equal(t, geom.Rect{X: 304, Y: 1642, W: 672, H: 36}, links[0].Card)
	require.Equal(t, links[0].Card, links[0].Media)
	require.Equal(t, 1642.0+36+8, links[1].Card.Y)
	require.Equal(t, links[1].Card.Bottom(), w.Content.H)
}
