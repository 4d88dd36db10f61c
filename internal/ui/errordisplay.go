package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrorDisplay draws an error message with "Copy" and dismiss buttons.
// Store one per screen that shows errors, call Draw each frame and HandleClick in Update.
type ErrorDisplay struct {
	copyRect    ButtonRect
	closeRect   ButtonRect
	copiedTimer int // frames remaining to show "Copied!" feedback
}

// Draw renders the error panel. Returns the total height used.
// fontSize is typically FontSizeSmall or FontSizeBody.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image, errText string, x, y, fontSize float64) float64 {
	if errText == "" {
		ed.copyRect, ed.closeRect = ButtonRect{}, ButtonRect{}
		return 0
	}

	tw, _ := MeasureText(errText, fontSize)
	btnSize := fontSize + 6
	copyW := 50.0
	panelW := tw + copyW + btnSize + 40
	panelH := fontSize + 16

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(panelW), float32(panelH), ColorSurface, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(panelW), float32(panelH), 1, ColorError, false)
	DrawText(dst, errText, x+10, y+8, fontSize, ColorError)

	btnY := y + (panelH-btnSize)/2
	copyX := x + tw + 20
	ed.copyRect = ButtonRect{X: copyX, Y: btnY, W: copyW, H: btnSize}
	if ed.copiedTimer > 0 {
		ed.copiedTimer--
		DrawText(dst, "Copied!", copyX, y+8, FontSizeSmall, ColorSuccess)
	} else {
		vector.StrokeRect(dst, float32(copyX), float32(btnY), float32(copyW), float32(btnSize), 1, ColorTextMuted, false)
		DrawTextCentered(dst, "Copy", copyX+copyW/2, btnY+btnSize/2, FontSizeSmall, ColorTextSecondary)
	}

	closeX := copyX + copyW + 10
	ed.closeRect = ButtonRect{X: closeX, Y: btnY, W: btnSize, H: btnSize}
	r := float32(btnSize / 4)
	drawCloseIcon(dst, float32(closeX+btnSize/2), float32(btnY+btnSize/2), r, ColorTextSecondary)

	return panelH + 8
}

// HandleClick handles clicks on the panel's buttons. Call from Update with
// mouse coords. Copy puts the text on the clipboard; close clears *errText.
// Returns true if the click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my int, errText *string) bool {
	if *errText == "" {
		return false
	}
	switch {
	case ed.copyRect.Contains(mx, my):
		copyText(*errText)
		ed.copiedTimer = copiedFrames
		return true
	case ed.closeRect.Contains(mx, my):
		*errText = ""
		ed.copiedTimer = 0
		return true
	}
	return false
}
