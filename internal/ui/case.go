package ui

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/mediawall/internal/article"
	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/geom"
)

const (
	paragraphGap = 16
	footnoteGap  = 48
)

// CaseScreen shows a case study article, reached from a case tile.
type CaseScreen struct {
	cfg      *config.Config
	c        config.CaseConfig
	viewport func() (float64, float64)

	article    article.Article
	loaded     bool
	errText    string
	errDisplay ErrorDisplay

	ScrollState
	backRect ButtonRect
	height   float64
}

func NewCaseScreen(cfg *config.Config, c config.CaseConfig, viewport func() (float64, float64)) *CaseScreen {
	return &CaseScreen{cfg: cfg, c: c, viewport: viewport}
}

func (cs *CaseScreen) Name() string { return "Case" }

func (cs *CaseScreen) OnEnter() {
	if cs.loaded {
		return
	}
	cs.loaded = true
	cs.load()
}

func (cs *CaseScreen) OnExit() {}

func (cs *CaseScreen) load() {
	cs.article = article.Article{Title: cs.c.Title}
	if cs.c.Article == "" {
		cs.errText = "No article for " + cs.c.Slug
		return
	}

	inserts := make([]article.Insert, 0, len(cs.c.Media))
	for _, rule := range cs.c.Media {
		aspect, err := article.ParseAspect(rule.Aspect)
		if err != nil {
			log.Printf("Case %s: %v, using 16:9", cs.c.Slug, err)
			aspect = 16.0 / 9.0
		}
		inserts = append(inserts, article.Insert{After: rule.After, Label: rule.Label, Aspect: aspect})
	}

	a, err := article.Load(cs.articlePath(), inserts)
	if err != nil {
		log.Printf("Failed to load case %s: %v", cs.c.Slug, err)
		cs.errText = err.Error()
		return
	}
	if a.Title == "" {
		a.Title = cs.c.Title
	}
	cs.article = a
}

// articlePath resolves relative article paths against the config file.
func (cs *CaseScreen) articlePath() string {
	if filepath.IsAbs(cs.c.Article) {
		return cs.c.Article
	}
	base := filepath.Dir(cs.cfg.Path())
	if cs.cfg.Path() == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return cs.c.Article
		}
		base = dir
	}
	return filepath.Join(base, cs.c.Article)
}

func (cs *CaseScreen) Update() (*ScreenTransition, error) {
	_, vh := cs.viewport()
	cs.SetContentHeight(cs.height, vh)

	dir, _, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	if x, y, clicked := MouseJustClicked(); clicked {
		if !cs.errDisplay.HandleClick(x, y, &cs.errText) && cs.backRect.Contains(x, y) {
			return &ScreenTransition{Type: TransitionPop}, nil
		}
	}

	switch {
	case dir == DirUp:
		cs.ScrollBy(-ScrollWheelSpeed)
	case dir == DirDown:
		cs.ScrollBy(ScrollWheelSpeed)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		cs.ScrollBy(vh * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		cs.ScrollBy(-vh * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		cs.ScrollBy(-cs.MaxScrollY)
	}
	cs.HandleMouseWheel()
	cs.Animate()
	return nil, nil
}

func (cs *CaseScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)
	t := cs.cfg.Tokens
	vw, _ := cs.viewport()
	width := max(1, min(t.ContentWidth, vw-2*t.PageX))
	x := (vw - width) / 2
	y := t.PageY - cs.ScrollY

	label := "← Back"
	lw, lh := MeasureText(label, FontSizeSmall)
	cs.backRect = ButtonRect{X: x - 8, Y: y - 6, W: lw + 16, H: lh + 12}
	DrawText(dst, label, x, y, FontSizeSmall, ColorTextSecondary)
	y += lh + t.HeadingBottom + 16

	y += DrawTextWrapped(dst, cs.article.Title, x, y, width, FontSizeTitle, ColorText) + t.TitleText
	y += cs.errDisplay.Draw(dst, cs.errText, x, y, FontSizeSmall)

	for _, b := range cs.article.Blocks {
		switch b.Kind {
		case article.Heading:
			y += t.HeadingTop
			y += DrawTextWrapped(dst, b.Text, x, y, width, FontSizeHeading, ColorText)
			y += t.HeadingBottom
		case article.Subheading:
			y += DrawTextWrapped(dst, b.Text, x, y, width, FontSizeBody, ColorText)
		case article.Paragraph:
			y += DrawTextWrapped(dst, b.Text, x, y, width, FontSizeBody, ColorTextSecondary)
			y += paragraphGap
		case article.Media:
			aspect := b.Aspect
			if aspect <= 0 {
				aspect = 16.0 / 9.0
			}
			r := geom.Rect{X: x, Y: y, W: width, H: width / aspect}
			FillRect(dst, r, ColorSurface)
			if b.Text != "" {
				cx, cy := r.Center()
				DrawTextCentered(dst, b.Text, cx, cy, FontSizeSmall, ColorTextMuted)
			}
			y += r.H + t.Stack
		}
	}

	if len(cs.article.Footnotes) > 0 {
		y += footnoteGap
		for _, note := range cs.article.Footnotes {
			y += DrawTextWrapped(dst, note, x, y, width, FontSizeSmall, ColorTextMuted)
		}
	}

	cs.height = y + cs.ScrollY + t.PageY
}
