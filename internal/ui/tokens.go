package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/geom"
)

const (
	tokenRowH   = 34
	tokenPanelW = 520
)

// TokenScreen edits the spacing and motion tokens live. The wall reads the
// same Tokens value, so changes apply on the next frame.
type TokenScreen struct {
	cfg      *config.Config
	fields   []config.TokenField
	defaults []config.TokenField
	selected int
	status   string
	failed   bool

	copiedTimer int // frames remaining to show "Copied!"

	rows []ButtonRect
}

func NewTokenScreen(cfg *config.Config) *TokenScreen {
	d := config.DefaultTokens()
	return &TokenScreen{
		cfg:      cfg,
		fields:   cfg.Tokens.Fields(),
		defaults: d.Fields(),
	}
}

func (ts *TokenScreen) Name() string { return "Tokens" }
func (ts *TokenScreen) OnEnter()     {}
func (ts *TokenScreen) OnExit()      {}

func (ts *TokenScreen) Update() (*ScreenTransition, error) {
	dir, _, back := InputState()
	if ts.copiedTimer > 0 {
		ts.copiedTimer--
	}
	if back || inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	if x, y, clicked := MouseJustClicked(); clicked {
		for i, r := range ts.rows {
			if r.Contains(x, y) {
				ts.selected = i
			}
		}
	}

	steps := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		steps = 10
	}
	f := ts.fields[ts.selected]
	switch dir {
	case DirUp:
		ts.selected = (ts.selected + len(ts.fields) - 1) % len(ts.fields)
	case DirDown:
		ts.selected = (ts.selected + 1) % len(ts.fields)
	case DirLeft:
		f.Nudge(-steps)
	case DirRight:
		f.Nudge(steps)
	}
	if _, wy := MouseWheelDelta(); wy != 0 {
		if wy > 0 {
			f.Nudge(steps)
		} else {
			f.Nudge(-steps)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		*f.Value = *ts.defaults[ts.selected].Value
		ts.status, ts.failed = "Reset "+f.Label, false
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		ts.copySpecs()
	case inpututil.IsKeyJustPressed(ebiten.KeyS) && ebiten.IsKeyPressed(ebiten.KeyControl):
		if err := ts.cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
			ts.status, ts.failed = "Save failed: "+err.Error(), true
		} else {
			ts.status, ts.failed = "Saved to "+ts.cfg.Path(), false
		}
	}
	return nil, nil
}

// copySpecs puts the current token values on the clipboard.
func (ts *TokenScreen) copySpecs() {
	copyText(ts.cfg.Tokens.Specs())
	ts.copiedTimer = copiedFrames
	ts.status, ts.failed = "", false
}

func (ts *TokenScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)

	x, y := 40.0, 40.0
	drawGearIcon(dst, float32(x+10), float32(y+12), 10, ColorText)
	DrawText(dst, "Design tokens", x+30, y, FontSizeHeading, ColorText)
	y += LineHeight(FontSizeHeading) + 8
	DrawText(dst, "↑/↓ select  ←/→ adjust (Shift ×10)  R reset  C copy specs  Ctrl+S save  Esc close",
		x, y, FontSizeSmall, ColorTextSecondary)
	y += LineHeight(FontSizeSmall) + 16

	ts.rows = ts.rows[:0]
	for i, f := range ts.fields {
		r := geom.Rect{X: x, Y: y, W: tokenPanelW, H: tokenRowH}
		ts.rows = append(ts.rows, ButtonRect{X: r.X, Y: r.Y, W: r.W, H: r.H})
		if i == ts.selected {
			FillRect(dst, r, ColorSurfaceHover)
			StrokeRect(dst, r, FocusRingWidth, ColorFocusBorder)
		}
		DrawText(dst, f.Label, x+12, y+8, FontSizeBody, ColorText)
		v := fmt.Sprintf("%g", *f.Value)
		vw, _ := MeasureText(v, FontSizeBody)
		DrawText(dst, v, x+tokenPanelW-12-vw, y+8, FontSizeBody, ColorTextSecondary)
		y += tokenRowH
	}

	if ts.copiedTimer > 0 {
		DrawText(dst, "Copied!", x, y+16, FontSizeSmall, ColorSuccess)
	} else if ts.status != "" {
		clr := ColorSuccess
		if ts.failed {
			clr = ColorError
		}
		DrawText(dst, ts.status, x, y+16, FontSizeSmall, clr)
	}
}
