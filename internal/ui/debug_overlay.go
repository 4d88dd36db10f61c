package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// DebugSource is implemented by screens that report internal state in the
// debug overlay.
type DebugSource interface {
	DebugLines() []string
}

// SetDebugOverlay shows or hides the overlay, e.g. from --debug.
func SetDebugOverlay(visible bool) {
	debugOverlayVisible = visible
}

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws the debug overlay for the current screen if visible.
func DrawDebugOverlay(screen *ebiten.Image, current Screen) {
	if !debugOverlayVisible || current == nil {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	var lines []string
	if src, ok := current.(DebugSource); ok {
		lines = src.DebugLines()
	}

	rows := 2 + max(len(lines), 1)
	panelH := float64(rows)*lineH + padY*2
	panelW := 420.0
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug: "+current.Name()+" (F12 to close)", x, y, FontSizeSmall, ColorTextOnMedia)
	y += lineH
	DrawText(screen, "--- state ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(lines) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextMuted)
		return
	}
	for _, line := range lines {
		DrawText(screen, truncateText(line, panelW-padX*2, FontSizeSmall), x, y, FontSizeSmall, ColorTextOnMedia)
		y += lineH
	}
}
