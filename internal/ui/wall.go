package ui

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/mediawall/internal/cache"
	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/frame"
	"github.com/depeter/mediawall/internal/geom"
	"github.com/depeter/mediawall/internal/ident"
	"github.com/depeter/mediawall/internal/layout"
	"github.com/depeter/mediawall/internal/media"
	"github.com/depeter/mediawall/internal/morph"
	"github.com/depeter/mediawall/internal/overlay"
	"github.com/depeter/mediawall/internal/source"
	"github.com/depeter/mediawall/internal/tile"
)

// maxFrameStep caps dt after the window was hidden or a screen sat on top.
const maxFrameStep = 100 * time.Millisecond

// linkArrowW is the space after a connect label taken by its arrow.
const linkArrowW = 28

// WallOptions wires a WallScreen to the shared state owned by the app.
type WallOptions struct {
	Config   *config.Config
	Wall     source.Wall
	Coord    *media.Coordinator
	Alloc    *ident.Allocator
	Frames   *frame.Loop
	Images   *cache.ImageCache
	Nav      tile.Navigator
	Library  source.Library // nil unless Jellyfin is configured
	Viewport func() (w, h float64)

	// OnPlay starts full playback of an expanded tile that has a source.
	OnPlay func(source.Tile)
}

type wallSection struct {
	src   source.Section
	tiles []*wallTile
}

type wallTile struct {
	*tile.Tile
	src    source.Tile
	isCase bool
	slot   layout.Slot // document coordinates
}

// WallScreen is the media wall: a title, an intro and sections of tiles that
// hover, expand in place or open a case page.
type WallScreen struct {
	cfg      *config.Config
	coord    *media.Coordinator
	alloc    *ident.Allocator
	frames   *frame.Loop
	backdrop *overlay.Layer
	imgCache *cache.ImageCache
	nav      tile.Navigator
	library  source.Library
	viewport func() (float64, float64)

	title, intro string
	sections     []*wallSection
	order        []*wallTile
	connect      source.Connect
	layout       layout.Wall
	ScrollState
	gradient ScrollGradient

	pointed     *wallTile
	linkHover   int
	copiedTimer int // frames remaining to show "Copied!" on the email row
	focused     int
	lastTick    time.Time
	mounted     bool

	errText    string
	errDisplay ErrorDisplay

	OnPlay func(source.Tile)

	mu             sync.Mutex
	pendingSection *source.Section
	libraryLoading bool
	libraryLoaded  bool
}

func NewWallScreen(opts WallOptions) *WallScreen {
	ws := &WallScreen{
		cfg:       opts.Config,
		coord:     opts.Coord,
		alloc:     opts.Alloc,
		frames:    opts.Frames,
		imgCache:  opts.Images,
		nav:       opts.Nav,
		library:   opts.Library,
		viewport:  opts.Viewport,
		title:     opts.Wall.Title,
		intro:     opts.Wall.Intro,
		connect:   opts.Wall.Connect,
		focused:   -1,
		linkHover: -1,
		mounted:   true,
		OnPlay:    opts.OnPlay,
	}
	ws.backdrop = overlay.NewLayer(ws.coord, ws.alloc, ws.cfg.Tokens.MorphDuration)
	for _, sec := range opts.Wall.Sections {
		ws.addSection(sec, len(ws.sections))
	}
	return ws
}

func (ws *WallScreen) Name() string { return "Wall" }

func (ws *WallScreen) OnEnter() {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.lastTick = time.Now()
	ws.pointed = nil
	ws.linkHover = -1
	// Back from a case page: the tile that navigated is still hovered.
	if ws.coord.Read().Expanded.IsNone() {
		ws.coord.SetHovered(ident.None)
	}
	if ws.library != nil && !ws.libraryLoaded && !ws.libraryLoading {
		ws.libraryLoading = true
		go ws.loadLibrary()
	}
}

// OnExit unmounts every tile.
func (ws *WallScreen) OnExit() {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if !ws.mounted {
		return
	}
	ws.mounted = false
	for _, wt := range ws.order {
		wt.Unmount()
	}
}

func (ws *WallScreen) addSection(sec source.Section, at int) {
	s := &wallSection{src: sec}
	for _, st := range sec.Tiles {
		wt := &wallTile{src: st, isCase: sec.Cases}
		wt.Tile = tile.New(tile.Options{
			Coord:     ws.coord,
			Alloc:     ws.alloc,
			Frames:    ws.frames,
			Tokens:    &ws.cfg.Tokens,
			Activator: sec.Activator(st, ws.coord, ws.nav),
			Content:   st.Content,
			Case:      sec.Cases,
			OnVisible: ws.loadPoster,
		})
		s.tiles = append(s.tiles, wt)
	}
	ws.sections = slices.Insert(ws.sections, at, s)

	ws.order = ws.order[:0]
	for _, s := range ws.sections {
		ws.order = append(ws.order, s.tiles...)
	}
	ws.focused = -1
}

func (ws *WallScreen) loadLibrary() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	sec, err := source.LoadLibrary(ctx, ws.library, ws.cfg.Jellyfin)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.libraryLoading = false
	ws.libraryLoaded = true
	if err != nil {
		log.Printf("Failed to load Jellyfin section: %v", err)
		ws.errText = "Jellyfin: " + err.Error()
		return
	}
	if len(sec.Tiles) > 0 {
		ws.pendingSection = &sec
	}
}

// loadPoster runs once per tile when it first nears the viewport.
func (ws *WallScreen) loadPoster(t *tile.Tile) {
	src := t.Content.Poster
	if src == "" || ws.imgCache == nil {
		return
	}
	ws.imgCache.Prefetch(src)
}

func (ws *WallScreen) Update() (*ScreenTransition, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	now := time.Now()
	dt := min(now.Sub(ws.lastTick), maxFrameStep)
	ws.lastTick = now

	if ws.copiedTimer > 0 {
		ws.copiedTimer--
	}
	if ws.pendingSection != nil && ws.mounted {
		ws.addSection(*ws.pendingSection, 0)
		ws.pendingSection = nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return &ScreenTransition{Type: TransitionPush, Screen: NewTokenScreen(ws.cfg)}, nil
	}

	vw, vh := ws.viewport()
	ws.relayout(vw)
	ws.SetContentHeight(ws.layout.Height, vh)

	if ws.coord.Read().Expanded.IsNone() {
		ws.HandleMouseWheel()
	}
	ws.Animate()
	ws.gradient.Update(ws.ScrollY, dt, ws.cfg.Tokens.MorphDuration())

	ws.placeTiles(vw, vh)

	ws.handlePointer()
	ws.handleKeys(vh)

	for _, wt := range ws.order {
		wt.Advance(dt)
	}
	ws.backdrop.Advance(dt)
	return nil, nil
}

func (ws *WallScreen) relayout(vw float64) {
	t := ws.cfg.Tokens
	specs := make([]layout.SectionSpec, len(ws.sections))
	for i, sec := range ws.sections {
		spec := layout.SectionSpec{Title: sec.src.Title, Cases: sec.src.Cases, Columns: sec.src.Columns}
		for _, wt := range sec.tiles {
			spec.Tiles = append(spec.Tiles, tileSpec(wt.Content, wt.isCase))
		}
		specs[i] = spec
	}
	if len(ws.connect.Links) > 0 {
		specs = append(specs, layout.SectionSpec{Title: ws.connect.Title, Links: len(ws.connect.Links)})
	}

	width := max(1, min(t.ContentWidth, vw-2*t.PageX))
	m := layout.Metrics{
		TitleHeight:   LineHeight(FontSizeTitle) + t.TitleText,
		HeadingHeight: LineHeight(FontSizeHeading),
		LineHeight:    LineHeight(FontSizeBody),
		LinkHeight:    LineHeight(FontSizeLink),
		IntroLines:    len(WrapText(ws.intro, width, FontSizeBody)),
	}
	ws.layout = layout.Compute(t, m, vw, specs)
	for i, sec := range ws.sections {
		for j, wt := range sec.tiles {
			wt.slot = ws.layout.Sections[i].Slots[j]
		}
	}
}

// placeTiles hands every tile its docked rect in screen coordinates.
func (ws *WallScreen) placeTiles(vw, vh float64) {
	view := geom.Rect{W: vw, H: vh}
	for _, wt := range ws.order {
		wt.Place(wt.slot.Media.Offset(0, -ws.ScrollY), view)
	}
}

func tileSpec(c tile.Content, isCase bool) layout.TileSpec {
	spec := layout.TileSpec{Orientation: c.Orientation}
	if isCase {
		return spec
	}
	if c.ShowTitle && c.Title != "" {
		spec.TitleLines = 1
	}
	if c.ShowDescription && c.Description != "" {
		spec.TextLines = 1
	}
	return spec
}

func (ws *WallScreen) handlePointer() {
	if MouseMoved() {
		ws.focused = -1
	}
	ws.pointerAt(ebiten.CursorPosition())
	if x, y, clicked := MouseJustClicked(); clicked {
		ws.click(x, y)
	}
}

// pointerAt turns the cursor position into enter/leave pairs. The expand
// backdrop sits above every docked tile and link.
func (ws *WallScreen) pointerAt(mx, my int) {
	var under *wallTile
	ws.linkHover = -1
	if !ws.backdrop.Backdrops().Expand {
		under = ws.tileAt(mx, my)
		ws.linkHover = ws.linkAt(mx, my)
	}
	if under != ws.pointed {
		if ws.pointed != nil {
			ws.pointed.PointerLeave()
		}
		if under != nil {
			under.PointerEnter()
		}
		ws.pointed = under
	}
}

// click dispatches a click at (x, y); pointerAt has already run this frame.
func (ws *WallScreen) click(x, y int) {
	exp := ws.expandedTile()
	switch {
	case ws.errDisplay.HandleClick(x, y, &ws.errText):
	case exp != nil && exp.Rect().Contains(float64(x), float64(y)):
		ws.play(exp)
	case ws.backdrop.HandleClick():
	case ws.pointed != nil:
		ws.pointed.Activate()
	case ws.linkHover >= 0:
		ws.openLink(ws.connect.Links[ws.linkHover])
	}
}

// openLink copies an email row or hands the target to the navigator.
func (ws *WallScreen) openLink(l source.Link) {
	if l.Copy != "" {
		copyText(l.Copy)
		ws.copiedTimer = copiedFrames
		return
	}
	if ws.nav != nil {
		ws.nav.Navigate(l.Href)
	}
}

// linkLabel is what a connect row shows this frame.
func (ws *WallScreen) linkLabel(l source.Link) string {
	if l.Copy != "" && ws.copiedTimer > 0 {
		return "Copied!"
	}
	return l.Label
}

// linkRects returns the connect rows' hit areas in screen coordinates: the
// label plus its arrow, not the full row.
func (ws *WallScreen) linkRects() []geom.Rect {
	i := len(ws.sections)
	if i >= len(ws.layout.Sections) {
		return nil
	}
	slots := ws.layout.Sections[i].Slots
	rects := make([]geom.Rect, 0, len(slots))
	for j, s := range slots {
		if j >= len(ws.connect.Links) {
			break
		}
		tw, _ := MeasureText(ws.linkLabel(ws.connect.Links[j]), FontSizeLink)
		r := s.Card.Offset(0, -ws.ScrollY)
		r.W = min(r.W, tw+linkArrowW)
		rects = append(rects, r)
	}
	return rects
}

func (ws *WallScreen) linkAt(x, y int) int {
	for i, r := range ws.linkRects() {
		if r.Contains(float64(x), float64(y)) {
			return i
		}
	}
	return -1
}

func (ws *WallScreen) handleKeys(viewH float64) {
	dir, enter, back := InputState()
	if back {
		ws.backdrop.Dismiss()
		return
	}
	if exp := ws.expandedTile(); exp != nil {
		if enter || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			ws.play(exp)
		}
		return
	}

	if dir != DirNone && len(ws.order) > 0 {
		rects := make([]geom.Rect, len(ws.order))
		for i, wt := range ws.order {
			rects[i] = wt.slot.Media
		}
		dx, dy := dir.Delta()
		if next := layout.Neighbor(rects, ws.focused, dx, dy); next >= 0 && next != ws.focused {
			ws.focused = next
			wt := ws.order[next]
			wt.PointerEnter()
			ws.EnsureVisible(wt.slot.Card.Y, wt.slot.Card.Bottom(), viewH, ws.cfg.Tokens.PageY)
		}
	}
	if f := ws.focusedTile(); enter && f != nil {
		f.Activate()
	}
}

func (ws *WallScreen) play(wt *wallTile) {
	if wt.Content.Src == "" || ws.OnPlay == nil {
		return
	}
	ws.OnPlay(wt.src)
}

func (ws *WallScreen) tileAt(x, y int) *wallTile {
	for _, wt := range ws.order {
		if wt.Slot().Contains(float64(x), float64(y)) {
			return wt
		}
	}
	return nil
}

func (ws *WallScreen) expandedTile() *wallTile {
	id := ws.coord.Read().Expanded
	if id.IsNone() {
		return nil
	}
	for _, wt := range ws.order {
		if wt.ID == id {
			return wt
		}
	}
	return nil
}

func (ws *WallScreen) focusedTile() *wallTile {
	if ws.focused < 0 || ws.focused >= len(ws.order) {
		return nil
	}
	return ws.order[ws.focused]
}

// Draw paints in stacking order: docked tiles, hover tint, the elevated tile,
// expand tint, then whatever is morphing or expanded.
func (ws *WallScreen) Draw(dst *ebiten.Image) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	dst.Fill(ColorBackground)
	if len(ws.layout.Sections) < len(ws.sections) {
		return
	}
	off := -ws.ScrollY

	title := ws.layout.Title.Offset(0, off)
	DrawText(dst, ws.title, title.X, title.Y, FontSizeTitle, ColorText)
	intro := ws.layout.Intro.Offset(0, off)
	DrawTextWrapped(dst, ws.intro, intro.X, intro.Y, intro.W, FontSizeBody, ColorTextSecondary)
	for i, sec := range ws.sections {
		h := ws.layout.Sections[i].Heading.Offset(0, off)
		DrawText(dst, sec.src.Title, h.X, h.Y, FontSizeHeading, ColorText)
	}
	ws.drawConnect(dst, off)

	for _, wt := range ws.order {
		if wt.Elevated() {
			continue
		}
		ws.drawCaption(dst, wt, off)
		if !wt.Transition().Floating() {
			ws.drawMedia(dst, wt, wt.Rect())
		}
	}

	FillTint(dst, ws.cfg.Tokens.HoverTint*ws.backdrop.HoverOpacity())
	for _, wt := range ws.order {
		if wt.Elevated() {
			ws.drawCaption(dst, wt, off)
			ws.drawMedia(dst, wt, wt.Rect())
		}
	}

	if f := ws.focusedTile(); f != nil && !f.Transition().Floating() {
		StrokeRect(dst, f.Rect(), FocusRingWidth, ColorFocusBorder)
	}

	vw, vh := ws.viewport()
	ws.gradient.Draw(dst, vw, vh)

	FillTint(dst, ws.cfg.Tokens.ExpandTint*ws.backdrop.ExpandOpacity())
	for _, wt := range ws.order {
		if wt.Transition().Floating() {
			ws.drawFloating(dst, wt)
		}
	}

	ws.errDisplay.Draw(dst, ws.errText, ws.cfg.Tokens.PageX, 16, FontSizeSmall)
}

func (ws *WallScreen) drawConnect(dst *ebiten.Image, off float64) {
	i := len(ws.sections)
	if i >= len(ws.layout.Sections) {
		return
	}
	h := ws.layout.Sections[i].Heading.Offset(0, off)
	DrawText(dst, ws.connect.Title, h.X, h.Y, FontSizeHeading, ColorText)

	for j, r := range ws.linkRects() {
		clr := ColorTextMuted
		if j == ws.linkHover {
			clr = ColorText
		}
		label := ws.linkLabel(ws.connect.Links[j])
		DrawText(dst, label, r.X, r.Y, FontSizeLink, clr)
		tw, _ := MeasureText(label, FontSizeLink)
		drawLinkArrow(dst, float32(r.X+tw+14), float32(r.Y+r.H/2), 6, clr)
	}
}

func (ws *WallScreen) poster(wt *wallTile) *ebiten.Image {
	if !wt.MediaReady() || wt.Content.Poster == "" || ws.imgCache == nil {
		return nil
	}
	return ws.imgCache.Get(wt.Content.Poster)
}

func (ws *WallScreen) drawMedia(dst *ebiten.Image, wt *wallTile, r geom.Rect) {
	if img := ws.poster(wt); img != nil {
		DrawImageCover(dst, img, r)
	} else {
		FillRect(dst, r, placeholderColor(wt.Content.Placeholder))
	}

	if wt.isCase {
		band := DrawCaptionBand(dst, r, LineHeight(FontSizeBody)*2+16)
		DrawText(dst, truncateText(wt.Content.Title, band.W-64, FontSizeBody), band.X+16, band.Y+8,
			FontSizeBody, ColorTextOnMedia)
		if wt.Content.Description != "" {
			DrawText(dst, truncateText(wt.Content.Description, band.W-64, FontSizeSmall), band.X+16,
				band.Y+8+LineHeight(FontSizeBody), FontSizeSmall, ColorTextOnMedia)
		}
		if wt.src.Href != "" {
			cy := float32(band.Y + band.H/2)
			drawArrowIcon(dst, float32(band.Right()-28), cy, 8, ColorTextOnMedia)
		}
		return
	}
	if wt.Content.Src != "" && wt.Hovered() {
		cx, cy := r.Center()
		drawPlayIcon(dst, float32(cx), float32(cy), 22, ColorOverlay, ColorTextOnMedia)
	}
}

func (ws *WallScreen) drawCaption(dst *ebiten.Image, wt *wallTile, off float64) {
	if wt.isCase {
		return
	}
	c := wt.slot.Caption.Offset(0, off)
	y := c.Y
	if wt.Content.ShowTitle && wt.Content.Title != "" {
		DrawText(dst, truncateText(wt.Content.Title, c.W, FontSizeBody), c.X, y, FontSizeBody, ColorText)
		y += LineHeight(FontSizeBody) + ws.cfg.Tokens.CardText
	}
	if wt.Content.ShowDescription && wt.Content.Description != "" {
		DrawText(dst, truncateText(wt.Content.Description, c.W, FontSizeSmall), c.X, y, FontSizeSmall,
			ColorTextSecondary)
	}
}

func (ws *WallScreen) drawFloating(dst *ebiten.Image, wt *wallTile) {
	r := wt.Rect()
	ws.drawMedia(dst, wt, r)
	if wt.Transition().Phase() != morph.Expanded {
		return
	}
	if wt.Content.Src != "" {
		cx, cy := r.Center()
		drawPlayIcon(dst, float32(cx), float32(cy), 32, ColorOverlay, ColorTextOnMedia)
	}
	hint := "Esc to close"
	if wt.Content.Src != "" {
		hint = "Enter to play · " + hint
	}
	DrawTextCentered(dst, hint, r.X+r.W/2, r.Bottom()+20, FontSizeSmall, ColorTextOnMedia)
}

func (ws *WallScreen) DebugLines() []string {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	s := ws.coord.Read()
	lines := []string{
		fmt.Sprintf("hovered=%s expanded=%s", shortID(s.Hovered), shortID(s.Expanded)),
		fmt.Sprintf("tiles=%d live=%d frames=%d", len(ws.order), ws.alloc.Count(), ws.frames.Pending()),
		fmt.Sprintf("backdrop hover=%.2f expand=%.2f", ws.backdrop.HoverOpacity(), ws.backdrop.ExpandOpacity()),
		fmt.Sprintf("scroll=%.0f/%.0f focus=%d", ws.ScrollY, ws.MaxScrollY, ws.focused),
	}
	for _, wt := range ws.order {
		tr := wt.Transition()
		if tr.Floating() || wt.Elevated() {
			lines = append(lines, fmt.Sprintf("%s %s p=%.2f scale=%.3f",
				shortID(wt.ID), tr.Phase(), tr.Progress(), wt.Scale()))
		}
	}
	return lines
}

func shortID(id ident.ID) string {
	if id.IsNone() {
		return "-"
	}
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}
