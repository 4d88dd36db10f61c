package ui

import "math"

// ScrollState provides reusable vertical scroll tracking with smooth animation.
// Embed this struct in screens that need scrollable content.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	MaxScrollY    float64
}

// HandleMouseWheel updates the target scroll position from mouse wheel input.
// Call this from Update() with the vertical wheel delta.
func (s *ScrollState) HandleMouseWheel() bool {
	_, wy := MouseWheelDelta()
	if wy == 0 {
		return false
	}
	s.ScrollBy(-wy * ScrollWheelSpeed)
	return true
}

// ScrollBy moves the target by dy, clamped to the content.
func (s *ScrollState) ScrollBy(dy float64) {
	s.TargetScrollY = s.clamp(s.TargetScrollY + dy)
}

// SetContentHeight updates the scroll range for content of height h in a
// viewport of height viewH.
func (s *ScrollState) SetContentHeight(h, viewH float64) {
	s.MaxScrollY = max(0, h-viewH)
	s.TargetScrollY = s.clamp(s.TargetScrollY)
}

// Animate performs smooth scroll interpolation. Call this once per Update.
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
	if math.Abs(s.ScrollY-s.TargetScrollY) < 0.5 {
		s.ScrollY = s.TargetScrollY
	}
}

// EnsureVisible scrolls so the document span [top, bottom] is inside a
// viewport of height viewH, keeping margin pixels of context around it.
func (s *ScrollState) EnsureVisible(top, bottom, viewH, margin float64) {
	if bottom+margin > s.TargetScrollY+viewH {
		s.TargetScrollY = bottom + margin - viewH
	}
	if top-margin < s.TargetScrollY {
		s.TargetScrollY = top - margin
	}
	s.TargetScrollY = s.clamp(s.TargetScrollY)
}

func (s *ScrollState) clamp(y float64) float64 {
	return min(max(y, 0), s.MaxScrollY)
}
