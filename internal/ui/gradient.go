package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/depeter/mediawall/internal/geom"
)

const (
	gradientHeight = 96
	// Scroll movement below this many pixels keeps the current direction.
	gradientThreshold = 2
)

// ScrollGradient fades out the viewport edge the content is scrolling
// toward: the bottom edge while scrolling down, the top edge while scrolling
// up. It starts facing down.
type ScrollGradient struct {
	lastY   float64
	up      bool
	started bool

	top, bottom float64 // fade progress, 0..1
}

// Update follows the scroll position and fades each edge over duration.
func (g *ScrollGradient) Update(scrollY float64, dt, duration time.Duration) {
	if !g.started {
		g.started = true
		g.lastY = scrollY
	}
	if delta := scrollY - g.lastY; math.Abs(delta) > gradientThreshold {
		g.up = delta < 0
		g.lastY = scrollY
	}

	step := 1.0
	if duration > 0 {
		step = float64(dt) / float64(duration)
	}
	g.top = fadeToward(g.top, g.up, step)
	g.bottom = fadeToward(g.bottom, !g.up, step)
}

// ScrollingUp reports the last detected direction.
func (g *ScrollGradient) ScrollingUp() bool { return g.up }

// Opacities returns the eased top and bottom edge opacities.
func (g *ScrollGradient) Opacities() (top, bottom float64) {
	return easeOut(g.top), easeOut(g.bottom)
}

// Draw paints both edges over a w x h viewport.
func (g *ScrollGradient) Draw(dst *ebiten.Image, w, h float64) {
	top, bottom := g.Opacities()
	FillVerticalGradient(dst, geom.Rect{W: w, H: gradientHeight}, ColorBackground, top, 0)
	FillVerticalGradient(dst, geom.Rect{Y: h - gradientHeight, W: w, H: gradientHeight}, ColorBackground, 0, bottom)
}

func fadeToward(v float64, on bool, step float64) float64 {
	if on {
		return min(1, v+step)
	}
	return max(0, v-step)
}

func easeOut(p float64) float64 {
	return float64(ease.OutCubic(float32(p), 0, 1, 1))
}
