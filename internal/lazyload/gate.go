// Package lazyload defers media loading until a tile first scrolls near the
// viewport.
package lazyload

import "github.com/depeter/mediawall/internal/geom"

const (
	DefaultRootMargin = 200 // px above and below the viewport
	DefaultThreshold  = 0.1 // fraction of the target that must intersect
)

// Gate latches to ready the first time its target is observed inside the
// viewport. It never reverts.
type Gate struct {
	RootMargin float64
	Threshold  float64

	// OnVisible fires once, when the gate latches.
	OnVisible func()

	ready        bool
	disconnected bool
}

func NewGate(onVisible func()) *Gate {
	return &Gate{
		RootMargin: DefaultRootMargin,
		Threshold:  DefaultThreshold,
		OnVisible:  onVisible,
	}
}

// Ready reports whether media should be rendered now.
func (g *Gate) Ready() bool { return g.ready }

// Observe checks one frame's geometry. It is a no-op after the gate latched or
// was disconnected.
func (g *Gate) Observe(target, viewport geom.Rect) {
	if g.ready || g.disconnected || target.Empty() {
		return
	}
	root := viewport.Inset(0, g.RootMargin)
	overlap := target.Intersect(root)
	if overlap.Empty() || overlap.Area() < target.Area()*g.Threshold {
		return
	}
	g.ready = true
	g.disconnected = true
	if g.OnVisible != nil {
		g.OnVisible()
		g.OnVisible = nil
	}
}

// Disconnect stops observation without latching.
func (g *Gate) Disconnect() {
	g.disconnected = true
	g.OnVisible = nil
}

// Connected reports whether the gate is still observing.
func (g *Gate) Connected() bool { return !g.disconnected }
