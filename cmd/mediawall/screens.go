package main

import (
	"log"

	"github.com/pkg/browser"

	"github.com/depeter/mediawall/internal/app"
	"github.com/depeter/mediawall/internal/cache"
	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/source"
	"github.com/depeter/mediawall/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring
// screens. It is also the navigator case tiles hand their targets to.
type screenFactory struct {
	game     *app.Game
	cfg      *config.Config
	imgCache *cache.ImageCache
}

func (sf *screenFactory) pushWall() {
	opts := ui.WallOptions{
		Config:   sf.cfg,
		Wall:     source.FromConfig(sf.cfg),
		Coord:    sf.game.Coord,
		Alloc:    sf.game.Alloc,
		Frames:   sf.game.Frames,
		Images:   sf.imgCache,
		Nav:      sf,
		Viewport: sf.game.Screens.ViewportSize,
		OnPlay:   sf.game.PlayTile,
	}
	if sf.game.Client != nil {
		opts.Library = sf.game.Client
	}
	sf.game.Coord.Reset()
	sf.game.Screens.Replace(ui.NewWallScreen(opts))
}

// Navigate opens a case page for "case:<slug>" targets and hands web and mail
// links to the desktop. It runs inside the wall's Update, so the push waits
// for the next frame.
func (sf *screenFactory) Navigate(target string) {
	if source.External(target) {
		go func() {
			if err := browser.OpenURL(target); err != nil {
				log.Printf("Failed to open %s: %v", target, err)
			}
		}()
		return
	}
	slug, ok := source.CaseSlug(target)
	if !ok {
		log.Printf("Unknown navigation target %q", target)
		return
	}
	c, ok := sf.cfg.Case(slug)
	if !ok {
		log.Printf("No case %q in config", slug)
		return
	}
	sf.game.Screens.Defer(&ui.ScreenTransition{
		Type:   ui.TransitionPush,
		Screen: ui.NewCaseScreen(sf.cfg, c, sf.game.Screens.ViewportSize),
	})
}
