package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/depeter/mediawall/internal/ident"
	"github.com/depeter/mediawall/internal/media"
)

func newLayer() (*Layer, *media.Coordinator, *ident.Allocator) {
	coord := media.NewCoordinator()
	alloc := ident.NewAllocator()
	l := NewLayer(coord, alloc, func() time.Duration { return 300 * time.Millisecond })
	return l, coord, alloc
}

func TestProjection(t *testing.T) {
	l, coord, alloc := newLayer()
	a, b := alloc.Mint(), alloc.Mint()

	require.Equal(t, Backdrops{}, l.Backdrops())

	coord.SetHovered(a)
	require.Equal(t, Backdrops{Hover: true}, l.Backdrops())

	coord.SetExpanded(b)
	require.Equal(t, Backdrops{Expand: true}, l.Backdrops())

	coord.SetExpanded(ident.None)
	require.Equal(t, Backdrops{}, l.Backdrops())
}

func TestDanglingIdentityRendersNothing(t *testing.T) {
	l, coord, alloc := newLayer()
	a := alloc.Mint()
	coord.SetExpanded(a)
	alloc.Release(a)

	require.Equal(t, Backdrops{}, l.Backdrops())
	require.False(t, l.HandleClick(), "no backdrop, nothing to click")
	require.Equal(t, a, coord.Read().Expanded)

	b := alloc.Mint()
	coord.SetExpanded(ident.None)
	coord.SetHovered(b)
	alloc.Release(b)
	require.Equal(t, Backdrops{}, l.Backdrops())
}

func TestBackdropClickClosesExpanded(t *testing.T) {
	l, coord, alloc := newLayer()
	a := alloc.Mint()
	coord.SetHovered(a)
	require.False(t, l.HandleClick(), "hover backdrop lets clicks through")

	coord.SetExpanded(a)
	require.True(t, l.HandleClick())
	require.Equal(t, media.State{}, coord.Read())
}

func TestDismiss(t *testing.T) {
	l, coord, alloc := newLayer()
	coord.SetExpanded(alloc.Mint())
	require.True(t, l.Dismiss())
	require.True(t, coord.Read().Expanded.IsNone())
	require.False(t, l.Dismiss())
}

func TestFadeTracksProjection(t *testing.T) {
	l, coord, alloc := newLayer()
	a := alloc.Mint()

	coord.SetExpanded(a)
	l.Advance(150 * time.Millisecond)
	require.Greater(t, l.ExpandOpacity(), 0.5)
	require.Less(t, l.ExpandOpacity(), 1.0)

	l.Advance(150 * time.Millisecond)
	require.Equal(t, 1.0, l.ExpandOpacity())
	require.Zero(t, l.HoverOpacity())

	coord.SetExpanded(ident.None)
	l.Advance(time.Second)
	require.Zero(t, l.ExpandOpacity())
}
