package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/frame"
	"github.com/depeter/mediawall/internal/geom"
	"github.com/depeter/mediawall/internal/ident"
	"github.com/depeter/mediawall/internal/media"
	"github.com/depeter/mediawall/internal/source"
	"github.com/depeter/mediawall/internal/tile"
)

type navRecorder struct{ targets []string }

func (n *navRecorder) Navigate(target string) { n.targets = append(n.targets, target) }

// stubClipboard records copies for the duration of the test.
func stubClipboard(t *testing.T) *[]string {
	t.Helper()
	var copied []string
	prev := copyText
	copyText = func(s string) { copied = append(copied, s) }
	t.Cleanup(func() { copyText = prev })
	return &copied
}

func newTestWall(t *testing.T, connect source.Connect) (*WallScreen, *navRecorder) {
	t.Helper()
	require.NoError(t, InitFonts(goregular.TTF))

	sec := source.Section{Title: "Playground", Columns: 3}
	for _, title := range []string{"A", "B", "C"} {
		sec.Tiles = append(sec.Tiles, source.Tile{Content: tile.Content{Title: title, Src: "clip.mp4"}})
	}
	nav := &navRecorder{}
	ws := NewWallScreen(WallOptions{
		Config:   config.DefaultConfig(),
		Wall:     source.Wall{Sections: []source.Section{sec}, Connect: connect},
		Coord:    media.NewCoordinator(),
		Alloc:    ident.NewAllocator(),
		Frames:   frame.NewLoop(),
		Nav:      nav,
		Viewport: func() (float64, float64) { return 1280, 4000 },
	})
	ws.relayout(1280)
	ws.placeTiles(1280, 4000)
	return ws, nav
}

func center(r geom.Rect) (int, int) {
	x, y := r.Center()
	return int(x), int(y)
}

func TestPointerMovesLeaveThenEnter(t *testing.T) {
	ws, _ := newTestWall(t, source.Connect{})
	a, b := ws.order[0], ws.order[1]

	var seen []ident.ID
	cancel := ws.coord.Subscribe(func(s media.State) { seen = append(seen, s.Hovered) })
	defer cancel()

	ws.pointerAt(center(a.Slot()))
	ws.pointerAt(center(a.Slot()))
	ws.pointerAt(center(b.Slot()))
	ws.pointerAt(0, 0)

	require.Equal(t, []ident.ID{a.ID, ident.None, b.ID, ident.None}, seen)
	require.Nil(t, ws.pointed)
}

func TestBackdropHidesTilesFromPointer(t *testing.T) {
	ws, _ := newTestWall(t, source.Connect{})
	a, b := ws.order[0], ws.order[1]

	ws.order[0].Activate()
	require.Equal(t, a.ID, ws.coord.Read().Expanded)

	ws.pointerAt(center(b.Slot()))
	require.Nil(t, ws.pointed)
	require.True(t, ws.coord.Read().Hovered.IsNone())

	// A click outside the expanded tile lands on the backdrop, not on b.
	ws.click(center(b.Slot()))
	require.Equal(t, media.State{}, ws.coord.Read())
}

func TestClickActivatesTileUnderPointer(t *testing.T) {
	ws, _ := newTestWall(t, source.Connect{})
	b := ws.order[1]

	ws.pointerAt(center(b.Slot()))
	ws.click(center(b.Slot()))
	require.Equal(t, media.State{Expanded: b.ID}, ws.coord.Read())
}

func TestConnectRows(t *testing.T) {
	copied := stubClipboard(t)
	ws, nav := newTestWall(t, source.Connect{Title: "Connect", Links: []source.Link{
		{Label: "Email", Copy: "hi@wall.test"},
		{Label: "Site", Href: "https://wall.test"},
	}})

	rows := ws.linkRects()
	require.Len(t, rows, 2)

	ws.pointerAt(center(rows[0]))
	require.Equal(t, 0, ws.linkHover)
	ws.click(center(rows[0]))
	require.Equal(t, []string{"hi@wall.test"}, *copied)
	require.Equal(t, "Copied!", ws.linkLabel(ws.connect.Links[0]))

	ws.pointerAt(center(rows[1]))
	ws.click(center(rows[1]))
	require.Equal(t, []string{"https://wall.test"}, nav.targets)

	ws.copiedTimer = 0
	require.Equal(t, "Email", ws.linkLabel(ws.connect.Links[0]))
}

func TestConnectRowsIgnoredUnderBackdrop(t *testing.T) {
	ws, nav := newTestWall(t, source.Connect{Links: []source.Link{{Label: "Site", Href: "https://wall.test"}}})
	ws.order[0].Activate()

	row := ws.linkRects()[0]
	ws.pointerAt(center(row))
	require.Equal(t, -1, ws.linkHover)
	ws.click(center(row))
	require.Empty(t, nav.targets)
}

func TestErrorDisplayCopyAndDismiss(t *testing.T) {
	copied := stubClipboard(t)
	ed := ErrorDisplay{
		copyRect:  ButtonRect{X: 100, Y: 10, W: 50, H: 20},
		closeRect: ButtonRect{X: 160, Y: 10, W: 20, H: 20},
	}
	msg := "Jellyfin: 401"

	require.False(t, ed.HandleClick(5, 5, &msg))
	require.True(t, ed.HandleClick(110, 15, &msg))
	require.Equal(t, []string{"Jellyfin: 401"}, *copied)
	require.Equal(t, copiedFrames, ed.copiedTimer)

	require.True(t, ed.HandleClick(165, 15, &msg))
	require.Empty(t, msg)
	require.False(t, ed.HandleClick(165, 15, &msg), "nothing left to dismiss")
}

func TestTokenScreenCopiesSpecs(t *testing.T) {
	copied := stubClipboard(t)
	cfg := config.DefaultConfig()
	ts := NewTokenScreen(cfg)

	ts.copySpecs()
	require.Equal(t, []string{cfg.Tokens.Specs()}, *copied)
	require.Equal(t, copiedFrames, ts.copiedTimer)
}

func TestScrollGradientFollowsDirection(t *testing.T) {
	var g ScrollGradient
	frame, fade := 16*time.Millisecond, 300*time.Millisecond

	for range 30 {
		g.Update(0, frame, fade)
	}
	top, bottom := g.Opacities()
	require.False(t, g.ScrollingUp())
	require.Zero(t, top)
	require.Equal(t, 1.0, bottom)

	g.Update(400, frame, fade)
	g.Update(399, frame, fade)
	require.False(t, g.ScrollingUp(), "small moves keep the direction")

	g.Update(300, frame, fade)
	require.True(t, g.ScrollingUp())
	for range 30 {
		g.Update(300, frame, fade)
	}
	top, bottom = g.Opacities()
	require.Equal(t, 1.0, top)
	require.Zero(t, bottom)
}
