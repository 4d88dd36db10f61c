package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/mediawall/assets/icon"
	"github.com/depeter/mediawall/internal/app"
	"github.com/depeter/mediawall/internal/cache"
	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/jellyfin"
	"github.com/depeter/mediawall/internal/ui"
)

func main() {
	flags := pflag.NewFlagSet("mediawall", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "config file (default $XDG_CONFIG_HOME/mediawall/config.toml)")
	fullscreen := flags.Bool("fullscreen", false, "start in fullscreen")
	debug := flags.Bool("debug", false, "show the debug overlay (F12 toggles)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("Failed to parse flags: %v", err)
	}

	// Load config
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if flags.Changed("fullscreen") {
		cfg.UI.Fullscreen = *fullscreen
	}
	if flags.Changed("debug") {
		cfg.UI.Debug = *debug
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Init image cache
	cacheDir := filepath.Join(os.TempDir(), "mediawall", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir)
	if err != nil {
		log.Fatalf("Failed to init image cache: %v", err)
	}

	var client *jellyfin.Client
	if cfg.Jellyfin.Enabled() {
		client = jellyfin.NewClient(cfg.Jellyfin.URL, cfg.Jellyfin.Token, cfg.Jellyfin.UserID)
	}

	game := app.NewGame(cfg, client, imgCache)
	sf := &screenFactory{game: game, cfg: cfg, imgCache: imgCache}
	sf.pushWall()

	ui.SetDebugOverlay(cfg.UI.Debug)

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle(windowTitle(cfg))
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	err = ebiten.RunGame(game)
	game.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}

func windowTitle(cfg *config.Config) string {
	if cfg.Wall.Title != "" {
		return cfg.Wall.Title
	}
	return "Media Wall"
}
