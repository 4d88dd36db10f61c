// Package tile binds one wall tile's pointer and activation events to the
// shared coordinator and hosts its morph transition.
package tile

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/geom"
	"github.com/depeter/mediawall/internal/ident"
	"github.com/depeter/mediawall/internal/layout"
	"github.com/depeter/mediawall/internal/lazyload"
	"github.com/depeter/mediawall/internal/media"
	"github.com/depeter/mediawall/internal/morph"
)

// Content is what a tile shows. Text is plain and never interpreted.
type Content struct {
	Title           string
	Description     string
	Poster          string
	Src             string
	Placeholder     string
	Orientation     string
	ShowTitle       bool
	ShowDescription bool
}

// Options configure a new tile.
type Options struct {
	Coord     *media.Coordinator
	Alloc     *ident.Allocator
	Frames    morph.Scheduler
	Tokens    *config.Tokens
	Activator Activator
	Content   Content
	Case      bool // case tiles use the case hover scale

	// OnVisible fires once when the tile first scrolls near the viewport.
	OnVisible func(*Tile)
}

// Tile is one mounted tile. All methods run on the UI goroutine.
type Tile struct {
	ID      ident.ID
	Content Content

	coord     *media.Coordinator
	alloc     *ident.Allocator
	tokens    *config.Tokens
	activator Activator
	isCase    bool

	transition  *morph.Transition
	gate        *lazyload.Gate
	unsubscribe func()

	slot     geom.Rect
	viewport geom.Rect
	placed   bool

	hover   float64 // hover scale progress, 0..1
	mounted bool
}

func New(opts Options) *Tile {
	t := &Tile{
		ID:        opts.Alloc.Mint(),
		Content:   opts.Content,
		coord:     opts.Coord,
		alloc:     opts.Alloc,
		tokens:    opts.Tokens,
		activator: opts.Activator,
		isCase:    opts.Case,
		mounted:   true,
	}
	if t.Content.Orientation == "" {
		t.Content.Orientation = layout.Vertical
	}

	// Closing always starts from the coordinator (backdrop click, Esc or a
	// newer expansion), so settling docked has nothing to report back.
	t.transition = morph.New(t.ID, opts.Frames, t, t.tokens.MorphDuration)

	t.gate = lazyload.NewGate(nil)
	if opts.OnVisible != nil {
		t.gate.OnVisible = func() { opts.OnVisible(t) }
	}

	t.unsubscribe = t.coord.Subscribe(t.sync)
	t.sync(t.coord.Read())
	return t
}

// PointerEnter hovers the tile unless something is expanded.
func (t *Tile) PointerEnter() {
	if !t.mounted || !t.coord.Read().Expanded.IsNone() {
		return
	}
	t.coord.SetHovered(t.ID)
}

// PointerLeave clears hover if it still points at this tile.
func (t *Tile) PointerLeave() {
	if !t.mounted {
		return
	}
	s := t.coord.Read()
	if !s.Expanded.IsNone() || s.Hovered != t.ID {
		return
	}
	t.coord.SetHovered(ident.None)
}

// Activate hands the activation to the tile's strategy.
func (t *Tile) Activate() {
	if !t.mounted || t.activator == nil {
		return
	}
	t.activator.Activate(t.ID)
}

// Place records the tile's docked media rect and the viewport, both in screen
// coordinates, for this frame.
func (t *Tile) Place(slot, viewport geom.Rect) {
	t.slot = slot
	t.viewport = viewport
	t.placed = true
	t.gate.Observe(slot, viewport)
}

// Advance animates the hover scale by dt.
func (t *Tile) Advance(dt time.Duration) {
	step := 1.0
	if d := t.tokens.MorphDuration(); d > 0 {
		step = float64(dt) / float64(d)
	}
	if t.hoverActive() {
		t.hover = min(1, t.hover+step)
	} else if t.transition.Phase() != morph.Docked {
		t.hover = 0
	} else {
		t.hover = max(0, t.hover-step)
	}
}

// Unmount tears the tile down. No callback fires afterwards.
func (t *Tile) Unmount() {
	if !t.mounted {
		return
	}
	t.mounted = false
	t.transition.Dispose()
	t.gate.Disconnect()
	t.unsubscribe()
	switch s := t.coord.Read(); t.ID {
	case s.Expanded:
		t.coord.SetExpanded(ident.None)
	case s.Hovered:
		t.coord.SetHovered(ident.None)
	}
	t.alloc.Release(t.ID)
}

func (t *Tile) Mounted() bool                 { return t.mounted }
func (t *Tile) Transition() *morph.Transition { return t.transition }
func (t *Tile) MediaReady() bool              { return t.gate.Ready() }
func (t *Tile) Slot() geom.Rect               { return t.slot }

// Hovered reports whether the coordinator currently hovers this tile.
func (t *Tile) Hovered() bool {
	return t.coord.Read().Hovered == t.ID
}

// Elevated reports whether the tile draws above its siblings.
func (t *Tile) Elevated() bool {
	return t.hover > 0 && t.transition.Phase() == morph.Docked
}

// Scale returns the current hover scale of the docked media.
func (t *Tile) Scale() float64 {
	if t.transition.Phase() != morph.Docked {
		return 1
	}
	p := float64(ease.OutCubic(float32(t.hover), 0, 1, 1))
	return 1 + (t.hoverScale()-1)*p
}

// Rect returns where the media is drawn this frame.
func (t *Tile) Rect() geom.Rect {
	return t.transition.Rect()
}

// DockedRect implements morph.Geometry.
func (t *Tile) DockedRect() (geom.Rect, bool) {
	if !t.placed {
		return geom.Rect{}, false
	}
	return t.slot.ScaleAboutCenter(t.Scale()), true
}

// ExpandedRect implements morph.Geometry.
func (t *Tile) ExpandedRect() (geom.Rect, bool) {
	if !t.placed || t.viewport.Empty() {
		return geom.Rect{}, false
	}
	return layout.Expanded(*t.tokens, t.Content.Orientation, t.viewport), true
}

func (t *Tile) hoverActive() bool {
	s := t.coord.Read()
	return s.Hovered == t.ID && s.Expanded.IsNone() && t.transition.Phase() == morph.Docked
}

func (t *Tile) hoverScale() float64 {
	if t.isCase {
		return t.tokens.CaseHoverScale
	}
	return t.tokens.VideoHoverScale
}

func (t *Tile) sync(s media.State) {
	t.transition.SetOpen(s.Expanded == t.ID)
}
