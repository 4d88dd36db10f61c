package ui

import (
	"fmt"
	"image/color"
	"strings"
)

// Colors (light gallery theme)
var (
	ColorBackground    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0xF2, G: 0xF2, B: 0xF4, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0xE6, G: 0xE6, B: 0xEA, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF}
	ColorText          = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0A, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x52, G: 0x52, B: 0x5B, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0xA1, G: 0xA1, B: 0xAA, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0x25, G: 0x63, B: 0xEB, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorTextOnMedia   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorError         = color.RGBA{R: 0xDC, G: 0x26, B: 0x26, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x16, G: 0xA3, B: 0x4A, A: 0xFF}
)

// Layout constants
const (
	FontSizeTitle   = 28
	FontSizeLink    = 24
	FontSizeHeading = 20
	FontSizeBody    = 16
	FontSizeSmall   = 13

	// LineHeightFactor is the line box height relative to the font size.
	LineHeightFactor = 1.5

	FocusRingWidth = 2

	ScrollAnimSpeed = 0.12

	ScreenWidth  = 1280
	ScreenHeight = 900

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60
)

// ParseHexColor parses "#rgb" or "#rrggbb". Placeholders in the manifest use it.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	switch len(s) {
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b = r*0x11, g*0x11, b*0x11
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("parse color %q: want #rgb or #rrggbb", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// placeholderColor falls back to the surface color for empty or bad input.
func placeholderColor(s string) color.Color {
	if s == "" {
		return ColorSurface
	}
	c, err := ParseHexColor(s)
	if err != nil {
		return ColorSurface
	}
	return c
}
