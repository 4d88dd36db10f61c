package app

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/mediawall/internal/cache"
	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/frame"
	"github.com/depeter/mediawall/internal/ident"
	"github.com/depeter/mediawall/internal/jellyfin"
	"github.com/depeter/mediawall/internal/media"
	"github.com/depeter/mediawall/internal/player"
	"github.com/depeter/mediawall/internal/source"
	"github.com/depeter/mediawall/internal/ui"
)

type AppState int

const (
	StateBrowse AppState = iota
	StatePlay
)

// reportTimeout bounds the background Jellyfin playstate calls.
const reportTimeout = 10 * time.Second

// Game implements ebiten.Game and owns the state shared by every tile: the
// coordinator, the identity allocator and the frame loop.
type Game struct {
	Config  *config.Config
	Client  *jellyfin.Client // nil unless a Jellyfin server is configured
	Player  *player.Player
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager

	Coord  *media.Coordinator
	Alloc  *ident.Allocator
	Frames *frame.Loop

	State         AppState
	Width, Height int

	// Set from the mpv event goroutine when playback ends on its own.
	playbackEnded atomic.Bool
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, client *jellyfin.Client, imgCache *cache.ImageCache) *Game {
	g := &Game{
		Config:  cfg,
		Client:  client,
		Cache:   imgCache,
		Screens: ui.NewScreenManager(),
		Coord:   media.NewCoordinator(),
		Alloc:   ident.NewAllocator(),
		Frames:  frame.NewLoop(),
		State:   StateBrowse,
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}
	g.Screens.SetViewportSize(float64(g.Width), float64(g.Height))
	return g
}

// InitPlayer creates the mpv player instance. Call after the window is visible.
func (g *Game) InitPlayer() error {
	p, err := player.New(g.Config.Playback)
	if err != nil {
		return err
	}
	p.OnPlaybackEnd = func() {
		g.playbackEnded.Store(true)
	}
	g.Player = p
	return nil
}

// PlayTile plays an expanded tile's source in the window. Library tiles
// report their playstate back to Jellyfin.
func (g *Game) PlayTile(t source.Tile) {
	if t.Content.Src == "" {
		return
	}
	if g.Player == nil {
		if err := g.InitPlayer(); err != nil {
			log.Printf("Failed to init player: %v", err)
			return
		}
	}

	wid, err := player.WindowHandle()
	if err != nil {
		log.Printf("Failed to get window handle: %v", err)
		return
	}
	if err := g.Player.SetWindowID(wid); err != nil {
		log.Printf("Failed to set window ID: %v", err)
	}

	if err := g.Player.LoadFile(t.Content.Src, t.ItemID); err != nil {
		log.Printf("Failed to load %s: %v", t.Content.Src, err)
		return
	}

	if t.ItemID != "" && g.Client != nil {
		go g.report(func(ctx context.Context) error {
			return g.Client.ReportPlaybackStart(ctx, t.ItemID)
		})
	}

	g.playbackEnded.Store(false)
	g.State = StatePlay
}

// StopPlayback returns to the wall. The expanded tile stays expanded.
func (g *Game) StopPlayback() {
	if g.Player != nil {
		itemID := g.Player.ItemID()
		posTicks := jellyfin.Ticks(g.Player.Position())
		if g.Player.Playing() {
			if err := g.Player.Stop(); err != nil {
				log.Printf("Failed to stop mpv: %v", err)
			}
		}
		if itemID != "" && g.Client != nil {
			go g.report(func(ctx context.Context) error {
				return g.Client.ReportPlaybackStopped(ctx, itemID, posTicks)
			})
		}
	}
	g.State = StateBrowse
}

func (g *Game) report(call func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()
	if err := call(ctx); err != nil {
		log.Printf("Jellyfin playstate: %v", err)
	}
}

// Shutdown stops playback and releases mpv.
func (g *Game) Shutdown() {
	if g.State == StatePlay {
		g.StopPlayback()
	}
	g.Screens.ClearStack()
	if g.Player != nil {
		g.Player.Destroy()
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen (works in all modes)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay (works in all modes)
	ui.ToggleDebugOverlay()

	switch g.State {
	case StateBrowse:
		if err := g.Screens.Update(); err != nil {
			return err
		}
		// Frame callbacks run after the screens placed their tiles.
		g.Frames.Tick(time.Now())

	case StatePlay:
		if g.playbackEnded.Swap(false) {
			g.StopPlayback()
			break
		}

		backPressed := inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3)
		if backPressed {
			g.StopPlayback()
			break
		}

		// Forward playback controls to mpv (required on Windows where
		// embedded mpv doesn't receive keyboard input directly)
		g.handlePlaybackInput()
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.State {
	case StateBrowse:
		screen.Fill(ui.ColorBackground)
		g.Screens.Draw(screen)
		ui.DrawDebugOverlay(screen, g.Screens.Current())

	case StatePlay:
		// In play mode, mpv owns the window surface via --wid.
	}
}

// Layout uses the window size as the logical size so the wall reflows on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	g.Screens.SetViewportSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *Game) handlePlaybackInput() {
	if g.Player == nil {
		return
	}
	kb := &g.Config.Keybinds

	var err error
	switch {
	case keyJustPressed(kb.PlayPause):
		err = g.Player.TogglePause()
	case keyJustPressed(kb.SeekForward):
		err = g.Player.Seek(10)
	case keyJustPressed(kb.SeekBackward):
		err = g.Player.Seek(-10)
	case keyJustPressed(kb.SeekForwardLarge):
		err = g.Player.Seek(60)
	case keyJustPressed(kb.SeekBackwardLarge):
		err = g.Player.Seek(-60)
	case keyJustPressed(kb.VolumeUp):
		err = g.Player.AdjustVolume(5)
	case keyJustPressed(kb.VolumeDown):
		err = g.Player.AdjustVolume(-5)
	case keyJustPressed(kb.Mute):
		err = g.Player.ToggleMute()
	case keyJustPressed(kb.Fullscreen):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if err != nil {
		log.Printf("mpv command: %v", err)
	}

	g.handlePlaybackMouse()
}

// handlePlaybackMouse handles mouse input during playback.
func (g *Game) handlePlaybackMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.Player.TogglePause()
	}
	_, scrollY := ebiten.Wheel()
	if scrollY > 0 {
		g.Player.AdjustVolume(5)
	} else if scrollY < 0 {
		g.Player.AdjustVolume(-5)
	}
}
