// Package overlay derives the two wall backdrops from the interaction state.
package overlay

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/depeter/mediawall/internal/ident"
	"github.com/depeter/mediawall/internal/media"
)

// Liveness reports whether an identity belongs to a mounted tile.
// *ident.Allocator implements it.
type Liveness interface {
	Live(id ident.ID) bool
}

// Backdrops is the projected visibility of each surface.
type Backdrops struct {
	Hover  bool // decorative tint, never takes input
	Expand bool // dismisses the expanded tile when clicked
}

// Project maps state to backdrops. Identities whose tile is gone are treated
// as absent.
func Project(s media.State, live Liveness) Backdrops {
	hovered := !s.Hovered.IsNone() && live.Live(s.Hovered)
	expanded := !s.Expanded.IsNone() && live.Live(s.Expanded)
	return Backdrops{
		Hover:  hovered && !expanded,
		Expand: expanded,
	}
}

// Layer fades the backdrops in and out alongside the tile morph.
type Layer struct {
	coord    *media.Coordinator
	live     Liveness
	duration func() time.Duration

	current Backdrops
	hover   float64 // fade progress, 0..1
	expand  float64
}

func NewLayer(coord *media.Coordinator, live Liveness, duration func() time.Duration) *Layer {
	return &Layer{coord: coord, live: live, duration: duration}
}

// Backdrops returns the projection of the coordinator's current state.
func (l *Layer) Backdrops() Backdrops {
	return Project(l.coord.Read(), l.live)
}

// Advance moves both fades toward their projected visibility by dt.
func (l *Layer) Advance(dt time.Duration) {
	l.current = l.Backdrops()
	step := 1.0
	if d := l.duration(); d > 0 {
		step = float64(dt) / float64(d)
	}
	l.hover = approach(l.hover, l.current.Hover, step)
	l.expand = approach(l.expand, l.current.Expand, step)
}

// HoverOpacity and ExpandOpacity return the eased fade amount in 0..1.
func (l *Layer) HoverOpacity() float64  { return eased(l.hover) }
func (l *Layer) ExpandOpacity() float64 { return eased(l.expand) }

// HandleClick closes the expanded tile when the expand backdrop is up.
// It reports whether the click was consumed.
func (l *Layer) HandleClick() bool {
	if !l.Backdrops().Expand {
		return false
	}
	l.coord.SetExpanded(ident.None)
	return true
}

// Dismiss is the keyboard equivalent of clicking the expand backdrop.
func (l *Layer) Dismiss() bool {
	return l.HandleClick()
}

func approach(v float64, on bool, step float64) float64 {
	if on {
		return min(1, v+step)
	}
	return max(0, v-step)
}

func eased(p float64) float64 {
	return float64(ease.OutCubic(float32(p), 0, 1, 1))
}
