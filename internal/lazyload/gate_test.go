package lazyload

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/depeter/mediawall/internal/geom"
)

var viewport = geom.Rect{X: 0, Y: 0, W: 1280, H: 800}

func TestLatchesOnceWithinRootMargin(t *testing.T) {
	fired := 0
	g := NewGate(func() { fired++ })

	g.Observe(geom.Rect{X: 0, Y: 1200, W: 300, H: 400}, viewport)
	require.False(t, g.Ready())

	// 150px below the fold is inside the 200px margin.
	g.Observe(geom.Rect{X: 0, Y: 950, W: 300, H: 400}, viewport)
	require.True(t, g.Ready())
	require.Equal(t, 1, fired)

	g.Observe(geom.Rect{X: 0, Y: 5000, W: 300, H: 400}, viewport)
	require.True(t, g.Ready(), "never reverts")
	require.Equal(t, 1, fired)
	require.False(t, g.Connected())
}

func TestThreshold(t *testing.T) {
	g := NewGate(nil)
	// Only 20px of a 400px tall target inside the expanded root: 5%.
	g.Observe(geom.Rect{X: 0, Y: 980, W: 300, H: 400}, viewport)
	require.False(t, g.Ready())
}

func TestDisconnectStopsObservation(t *testing.T) {
	fired := false
	g := NewGate(func() { fired = true })
	g.Disconnect()
	g.Observe(geom.Rect{X: 0, Y: 0, W: 100, H: 100}, viewport)
	require.False(t, g.Ready())
	require.False(t, fired)
}
