// Package layout computes where the wall's headings and tiles sit, in document
// coordinates, from the design tokens and the viewport width.
package layout

import (
	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/geom"
)

const (
	Vertical   = "vertical"
	Horizontal = "horizontal"
)

// linkGap separates the rows of a link list.
const linkGap = 8

// Breakpoints below which the video grid collapses to fewer columns.
const (
	breakpointSmall  = 640
	breakpointMedium = 768
)

// Metrics are the text line heights the layout reserves space for.
type Metrics struct {
	TitleHeight   float64
	HeadingHeight float64
	LineHeight    float64
	LinkHeight    float64
	IntroLines    int
}

type TileSpec struct {
	Orientation string
	TitleLines  int // caption lines under the media; 0 for none
	TextLines   int
}

type SectionSpec struct {
	Title   string
	Cases   bool // single full-width column of 16:9 cards, caption inside
	Columns int
	Tiles   []TileSpec
	Links   int // rows of a link list; such a section has no tiles
}

// Slot is one placed tile.
type Slot struct {
	Card    geom.Rect // media plus caption
	Media   geom.Rect // docked media rect
	Caption geom.Rect
}

type Section struct {
	Heading geom.Rect
	Slots   []Slot
}

type Wall struct {
	Content  geom.Rect // centered column holding everything
	Title    geom.Rect
	Intro    geom.Rect
	Sections []Section
	Height   float64 // document height including bottom padding
}

// Compute lays out the wall for a viewport of the given width.
func Compute(t config.Tokens, m Metrics, viewportW float64, sections []SectionSpec) Wall {
	width := min(t.ContentWidth, viewportW-2*t.PageX)
	if width < 1 {
		width = 1
	}
	x := (viewportW - width) / 2

	var w Wall
	y := t.PageY
	w.Title = geom.Rect{X: x, Y: y, W: width, H: m.TitleHeight}
	y += m.TitleHeight
	w.Intro = geom.Rect{X: x, Y: y, W: width, H: float64(m.IntroLines) * m.LineHeight}
	y += w.Intro.H + t.Section

	for i, spec := range sections {
		var sec Section
		y += t.HeadingTop
		sec.Heading = geom.Rect{X: x, Y: y, W: width, H: m.HeadingHeight}
		y += m.HeadingHeight + t.HeadingBottom

		switch {
		case spec.Links > 0:
			y = placeLinks(&sec, m, x, y, width, spec.Links)
		case spec.Cases:
			y = placeCases(&sec, t, x, y, width, spec.Tiles)
		default:
			y = placeGrid(&sec, t, m, x, y, width, columnsFor(spec.Columns, viewportW), spec.Tiles)
		}
		if i < len(sections)-1 {
			y += t.Section
		}
		w.Sections = append(w.Sections, sec)
	}

	w.Content = geom.Rect{X: x, Y: 0, W: width, H: y}
	w.Height = y + t.PageY
	return w
}

func columnsFor(columns int, viewportW float64) int {
	if columns < 1 {
		columns = 1
	}
	switch {
	case viewportW < breakpointSmall:
		return 1
	case viewportW < breakpointMedium:
		return min(columns, 2)
	}
	return columns
}

// placeGrid flows tiles into rows. Horizontal tiles always take a full row.
func placeGrid(sec *Section, t config.Tokens, m Metrics, x, y, width float64, cols int, tiles []TileSpec) float64 {
	colW := (width - float64(cols-1)*t.GridX) / float64(cols)
	col := 0
	rowH := 0.0

	endRow := func() {
		if col == 0 {
			return
		}
		y += rowH + t.Stack
		col = 0
		rowH = 0
	}

	for _, tile := range tiles {
		if tile.Orientation == Horizontal {
			endRow()
		}
		cardX := x + float64(col)*(colW+t.GridX)
		cardW := colW
		if tile.Orientation == Horizontal {
			cardX, cardW = x, width
		}

		media := geom.Rect{X: cardX, Y: y, W: cardW, H: AspectHeight(cardW, tile.Orientation)}
		capH := captionHeight(t, m, tile)
		caption := geom.Rect{X: cardX, Y: media.Bottom() + t.CardMedia, W: cardW, H: capH}
		card := geom.Rect{X: cardX, Y: y, W: cardW, H: media.H + t.CardMedia + capH}
		sec.Slots = append(sec.Slots, Slot{Card: card, Media: media, Caption: caption})

		rowH = max(rowH, card.H)
		col++
		if col == cols || tile.Orientation == Horizontal {
			endRow()
		}
	}
	if col != 0 {
		y += rowH
	} else if len(tiles) > 0 {
		y -= t.Stack
	}
	return y
}

func placeCases(sec *Section, t config.Tokens, x, y, width float64, tiles []TileSpec) float64 {
	for i := range tiles {
		if i > 0 {
			y += t.CasesGap
		}
		r := geom.Rect{X: x, Y: y, W: width, H: AspectHeight(width, Horizontal)}
		sec.Slots = append(sec.Slots, Slot{Card: r, Media: r, Caption: r})
		y += r.H
	}
	return y
}

// placeLinks stacks n full-width rows. Card and Media are the same rect.
func placeLinks(sec *Section, m Metrics, x, y, width float64, n int) float64 {
	for i := range n {
		if i > 0 {
			y += linkGap
		}
		r := geom.Rect{X: x, Y: y, W: width, H: m.LinkHeight}
		sec.Slots = append(sec.Slots, Slot{Card: r, Media: r})
		y += m.LinkHeight
	}
	return y
}

func captionHeight(t config.Tokens, m Metrics, tile TileSpec) float64 {
	h := float64(tile.TitleLines+tile.TextLines) * m.LineHeight
	if tile.TitleLines > 0 && tile.TextLines > 0 {
		h += t.CardText
	}
	return h
}

// AspectHeight returns the media height for a width: 9:16 for vertical media,
// 16:9 otherwise.
func AspectHeight(w float64, orientation string) float64 {
	if orientation == Vertical {
		return w * 16 / 9
	}
	return w * 9 / 16
}

// Expanded returns the centered overlay rect for media of the given
// orientation in the viewport.
func Expanded(t config.Tokens, orientation string, viewport geom.Rect) geom.Rect {
	var w, h float64
	if orientation == Vertical {
		h = viewport.H * t.ExpandedHeight
		w = h * 9 / 16
		if w > viewport.W {
			w = viewport.W
			h = w * 16 / 9
		}
	} else {
		w = min(viewport.W*t.ExpandedWidth, t.ExpandedMaxWidth)
		h = w * 9 / 16
		if h > viewport.H {
			h = viewport.H
			w = h * 16 / 9
		}
	}
	cx, cy := viewport.Center()
	return geom.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
