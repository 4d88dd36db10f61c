package player

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/gen2brain/go-mpv"

	"github.com/depeter/mediawall/internal/config"
)

// Player wraps libmpv for full playback of an expanded tile.
type Player struct {
	m        *mpv.Mpv
	mu       sync.Mutex
	playing  bool
	position float64
	itemID   string

	OnPlaybackEnd func()
}

// New creates and initializes an mpv instance.
func New(cfg config.PlaybackConfig) (*Player, error) {
	m := mpv.New()

	must(m.SetOptionString("hwdec", cfg.HWAccel))
	must(m.SetOptionString("vo", "gpu"))
	must(m.SetOptionString("osc", "yes"))
	must(m.SetOptionString("keep-open", "no"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("volume", fmt.Sprintf("%d", cfg.Volume)))

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	p := &Player{m: m}

	m.ObserveProperty(0, "time-pos", mpv.FormatDouble)

	go p.eventLoop()

	return p, nil
}

func must(err error) {
	if err != nil {
		log.Printf("mpv option warning: %v", err)
	}
}

// SetWindowID embeds playback in the native window.
func (p *Player) SetWindowID(wid int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.SetOptionString("wid", fmt.Sprintf("%d", wid))
}

// LoadFile starts playback of a file path or URL. itemID is empty for local
// media.
func (p *Player) LoadFile(src, itemID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.itemID = itemID
	p.playing = true
	p.position = 0
	return p.m.Command([]string{"loadfile", src})
}

// Seek seeks relative to the current position.
func (p *Player) Seek(seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"seek", fmt.Sprintf("%.1f", seconds), "relative"})
}

func (p *Player) TogglePause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "pause"})
}

// AdjustVolume changes the volume by delta percent.
func (p *Player) AdjustVolume(delta int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"add", "volume", fmt.Sprintf("%d", delta)})
}

func (p *Player) ToggleMute() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "mute"})
}

// Stop ends playback. No OnPlaybackEnd follows a Stop.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	return p.m.Command([]string{"stop"})
}

func (p *Player) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m.TerminateDestroy()
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Position returns the playback position in seconds.
func (p *Player) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

func (p *Player) ItemID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.itemID
}

func (p *Player) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			prop := ev.Property()
			p.mu.Lock()
			switch prop.Name {
			case "time-pos":
				if v, ok := prop.Data.(float64); ok {
					p.position = v
				}
			}
			p.mu.Unlock()

		case mpv.EventEnd:
			p.mu.Lock()
			wasPlaying := p.playing
			p.playing = false
			p.mu.Unlock()
			if ev.Data != nil {
				log.Printf("mpv end-file: reason=%s wasPlaying=%v", ev.EndFile().Reason, wasPlaying)
			}
			// Stop clears playing first, so its end-file is ignored here.
			if wasPlaying && p.OnPlaybackEnd != nil {
				p.OnPlaybackEnd()
			}

		case mpv.EventShutdown:
			return
		}
	}
}
