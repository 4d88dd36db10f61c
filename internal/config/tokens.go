package config

import (
	"fmt"
	"strings"
	"time"
)

// Tokens are the tunable layout and motion values of the wall. Spacing values
// are in pixels.
type Tokens struct {
	PageX         float64 `toml:"page_x"`
	PageY         float64 `toml:"page_y"`
	Section       float64 `toml:"section"`
	Stack         float64 `toml:"stack"`
	GridX         float64 `toml:"grid_x"`
	CasesGap      float64 `toml:"cases_gap"`
	TitleText     float64 `toml:"title_text"`
	HeadingTop    float64 `toml:"heading_top"`
	HeadingBottom float64 `toml:"heading_bottom"`
	CardMedia     float64 `toml:"card_media"`
	CardText      float64 `toml:"card_text"`
	ContentWidth  float64 `toml:"content_width"`

	MorphMS         float64 `toml:"morph_ms"`
	VideoHoverScale float64 `toml:"video_hover_scale"`
	CaseHoverScale  float64 `toml:"case_hover_scale"`
	HoverTint       float64 `toml:"hover_tint"`  // alpha of the hover backdrop
	ExpandTint      float64 `toml:"expand_tint"` // alpha of the expand backdrop

	// Expanded slot sizing: vertical media take ExpandedHeight of the viewport
	// height, horizontal media ExpandedWidth of its width capped at
	// ExpandedMaxWidth.
	ExpandedHeight   float64 `toml:"expanded_height"`
	ExpandedWidth    float64 `toml:"expanded_width"`
	ExpandedMaxWidth float64 `toml:"expanded_max_width"`
}

func DefaultTokens() Tokens {
	return Tokens{
		PageX:         64,
		PageY:         64,
		Section:       64,
		Stack:         32,
		GridX:         12,
		CasesGap:      16,
		TitleText:     16,
		HeadingTop:    0,
		HeadingBottom: 24,
		CardMedia:     8,
		CardText:      0,
		ContentWidth:  672,

		MorphMS:         300,
		VideoHoverScale: 1.04,
		CaseHoverScale:  1.02,
		HoverTint:       0.05,
		ExpandTint:      0.40,

		ExpandedHeight:   0.8,
		ExpandedWidth:    0.8,
		ExpandedMaxWidth: 1152,
	}
}

// MorphDuration is the length of one morph, backdrop fade or hover scale.
func (t *Tokens) MorphDuration() time.Duration {
	return time.Duration(t.MorphMS * float64(time.Millisecond))
}

// TokenField exposes one token to the live editor.
type TokenField struct {
	Key   string
	Label string
	Value *float64
	Min   float64
	Max   float64
	Step  float64
}

// Nudge moves the value by n steps, clamped to the field's range.
func (f TokenField) Nudge(n int) {
	v := *f.Value + float64(n)*f.Step
	*f.Value = min(f.Max, max(f.Min, v))
}

func (t *Tokens) Fields() []TokenField {
	return []TokenField{
		{"page_x", "Page padding X", &t.PageX, 0, 200, 1},
		{"page_y", "Page padding Y", &t.PageY, 0, 200, 1},
		{"section", "Section spacing", &t.Section, 0, 240, 1},
		{"stack", "Stack spacing", &t.Stack, 0, 200, 1},
		{"grid_x", "Grid gap X", &t.GridX, 0, 120, 1},
		{"cases_gap", "Cases gap", &t.CasesGap, 0, 200, 1},
		{"title_text", "Title to text", &t.TitleText, 0, 120, 1},
		{"heading_top", "Heading top", &t.HeadingTop, 0, 200, 1},
		{"heading_bottom", "Heading bottom", &t.HeadingBottom, 0, 200, 1},
		{"card_media", "Card media", &t.CardMedia, 0, 120, 1},
		{"card_text", "Card text", &t.CardText, 0, 120, 1},
		{"content_width", "Content width", &t.ContentWidth, 320, 1600, 8},
		{"morph_ms", "Morph duration (ms)", &t.MorphMS, 0, 2000, 25},
		{"video_hover_scale", "Video hover scale", &t.VideoHoverScale, 1, 1.2, 0.01},
		{"case_hover_scale", "Case hover scale", &t.CaseHoverScale, 1, 1.2, 0.01},
		{"hover_tint", "Hover tint", &t.HoverTint, 0, 1, 0.01},
		{"expand_tint", "Expand tint", &t.ExpandTint, 0, 1, 0.01},
	}
}

// Specs renders the tokens as CSS custom properties, one per line.
func (t *Tokens) Specs() string {
	var b strings.Builder
	for i, f := range t.Fields() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "--%s: %g", strings.ReplaceAll(f.Key, "_", "-"), *f.Value)
	}
	return b.String()
}

// normalize replaces values a hand-edited file left out or zeroed where zero
// makes no sense.
func (t *Tokens) normalize() {
	d := DefaultTokens()
	if t.ContentWidth <= 0 {
		t.ContentWidth = d.ContentWidth
	}
	if t.VideoHoverScale <= 0 {
		t.VideoHoverScale = d.VideoHoverScale
	}
	if t.CaseHoverScale <= 0 {
		t.CaseHoverScale = d.CaseHoverScale
	}
	if t.ExpandedHeight <= 0 {
		t.ExpandedHeight = d.ExpandedHeight
	}
	if t.ExpandedWidth <= 0 {
		t.ExpandedWidth = d.ExpandedWidth
	}
	if t.ExpandedMaxWidth <= 0 {
		t.ExpandedMaxWidth = d.ExpandedMaxWidth
	}
}
