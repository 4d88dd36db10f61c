package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Direction represents a navigation direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// InputState returns the current navigation direction and action keys pressed this frame.
func InputState() (dir Direction, enter, back bool) {
	if inputRepeating(ebiten.KeyArrowUp) {
		dir = DirUp
	} else if inputRepeating(ebiten.KeyArrowDown) {
		dir = DirDown
	} else if inputRepeating(ebiten.KeyArrowLeft) {
		dir = DirLeft
	} else if inputRepeating(ebiten.KeyArrowRight) {
		dir = DirRight
	}
	enter = (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) &&
		!IsModifierPressed()
	back = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3)
	return
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true // just pressed this frame
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// MouseJustClicked returns the cursor position and whether the left mouse button was just clicked.
func MouseJustClicked() (x, y int, clicked bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		clicked = true
	}
	return
}

// MouseMoved reports whether the cursor moved since the last frame.
func MouseMoved() bool {
	x, y := ebiten.CursorPosition()
	moved := x != lastCursorX || y != lastCursorY
	lastCursorX, lastCursorY = x, y
	return moved
}

var lastCursorX, lastCursorY int

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
