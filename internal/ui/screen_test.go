package ui

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/depeter/mediawall/internal/layout"
	"github.com/depeter/mediawall/internal/tile"
)

type fakeScreen struct {
	name   string
	next   *ScreenTransition
	events []string
}

func (f *fakeScreen) Update() (*ScreenTransition, error) {
	tr := f.next
	f.next = nil
	return tr, nil
}
func (f *fakeScreen) Draw(*ebiten.Image) {}
func (f *fakeScreen) OnEnter()           { f.events = append(f.events, "enter") }
func (f *fakeScreen) OnExit()            { f.events = append(f.events, "exit") }
func (f *fakeScreen) Name() string       { return f.name }

func TestScreenManagerTransitions(t *testing.T) {
	sm := NewScreenManager()
	wall := &fakeScreen{name: "wall"}
	page := &fakeScreen{name: "case"}
	sm.Push(wall)

	wall.next = &ScreenTransition{Type: TransitionPush, Screen: page}
	require.NoError(t, sm.Update())
	require.Equal(t, "case", sm.Current().Name())
	require.Equal(t, []string{"enter"}, wall.events, "push leaves the screen below mounted")

	page.next = &ScreenTransition{Type: TransitionPop}
	require.NoError(t, sm.Update())
	require.Equal(t, "wall", sm.Current().Name())
	require.Equal(t, []string{"enter", "exit"}, page.events)
	require.Equal(t, []string{"enter", "enter"}, wall.events)
}

func TestScreenManagerDefer(t *testing.T) {
	sm := NewScreenManager()
	wall := &fakeScreen{name: "wall"}
	sm.Push(wall)

	sm.Defer(&ScreenTransition{Type: TransitionPush, Screen: &fakeScreen{name: "case"}})
	require.Equal(t, "wall", sm.Current().Name())
	require.NoError(t, sm.Update())
	require.Equal(t, "case", sm.Current().Name())
	require.Equal(t, 2, sm.StackSize())

	sm.ClearStack()
	require.Nil(t, sm.Current())
	require.Equal(t, []string{"enter", "exit"}, wall.events)
}

func TestViewportSize(t *testing.T) {
	sm := NewScreenManager()
	w, h := sm.ViewportSize()
	require.Equal(t, float64(ScreenWidth), w)
	require.Equal(t, float64(ScreenHeight), h)

	sm.SetViewportSize(800, 600)
	w, h = sm.ViewportSize()
	require.Equal(t, 800.0, w)
	require.Equal(t, 600.0, h)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#24211C")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 0x24, G: 0x21, B: 0x1C, A: 0xFF}, c)

	c, err = ParseHexColor("fff")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, c)

	_, err = ParseHexColor("#12345")
	require.Error(t, err)
	_, err = ParseHexColor("#zzzzzz")
	require.Error(t, err)

	require.Equal(t, ColorSurface, placeholderColor("not a color"))
}

func TestScrollClamp(t *testing.T) {
	var s ScrollState
	s.SetContentHeight(2000, 800)
	require.Equal(t, 1200.0, s.MaxScrollY)

	s.ScrollBy(-100)
	require.Zero(t, s.TargetScrollY)
	s.ScrollBy(5000)
	require.Equal(t, 1200.0, s.TargetScrollY)

	s.SetContentHeight(1000, 800)
	require.Equal(t, 200.0, s.TargetScrollY, "shrinking content pulls the target back")

	for range 200 {
		s.Animate()
	}
	require.Equal(t, 200.0, s.ScrollY)
}

func TestEnsureVisible(t *testing.T) {
	var s ScrollState
	s.SetContentHeight(3000, 800)

	s.EnsureVisible(1000, 1400, 800, 64)
	require.Equal(t, 664.0, s.TargetScrollY)

	s.EnsureVisible(800, 1000, 800, 64)
	require.Equal(t, 664.0, s.TargetScrollY, "already visible")

	s.EnsureVisible(100, 300, 800, 64)
	require.Equal(t, 36.0, s.TargetScrollY)
}

func TestDirectionDelta(t *testing.T) {
	dx, dy := DirUp.Delta()
	require.Equal(t, [2]int{0, -1}, [2]int{dx, dy})
	dx, dy = DirRight.Delta()
	require.Equal(t, [2]int{1, 0}, [2]int{dx, dy})
	dx, dy = DirNone.Delta()
	require.Equal(t, [2]int{0, 0}, [2]int{dx, dy})
}

func TestTileSpec(t *testing.T) {
	c := tile.Content{Title: "Card Stack", Description: "Stackable cards", Orientation: layout.Vertical,
		ShowDescription: true}
	require.Equal(t, layout.TileSpec{Orientation: layout.Vertical, TextLines: 1}, tileSpec(c, false))

	c.ShowTitle = true
	require.Equal(t, layout.TileSpec{Orientation: layout.Vertical, TitleLines: 1, TextLines: 1}, tileSpec(c, false))

	c.Orientation = layout.Horizontal
	require.Equal(t, layout.TileSpec{Orientation: layout.Horizontal}, tileSpec(c, true), "case captions sit inside the media")
}
