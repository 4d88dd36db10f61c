package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces the environment overrides, e.g. MEDIAWALL_WIDTH.
const EnvPrefix = "MEDIAWALL_"

type Config struct {
	UI       UIConfig       `toml:"ui"`
	Tokens   Tokens         `toml:"tokens"`
	Playback PlaybackConfig `toml:"playback"`
	Keybinds KeybindConfig  `toml:"keybinds"`
	Jellyfin JellyfinConfig `toml:"jellyfin"`
	Wall     WallConfig     `toml:"wall"`
	Cases    []CaseConfig   `toml:"cases"`

	path string
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen" env:"FULLSCREEN"`
	Width      int  `toml:"width" env:"WIDTH"`
	Height     int  `toml:"height" env:"HEIGHT"`
	Debug      bool `toml:"debug" env:"DEBUG"`
}

type PlaybackConfig struct {
	HWAccel string `toml:"hwdec" env:"HWDEC"`
	Volume  int    `toml:"volume" env:"VOLUME"`
}

// KeybindConfig names the keys that control mpv while a tile plays.
type KeybindConfig struct {
	PlayPause         string `toml:"play_pause"`
	SeekForward       string `toml:"seek_forward"`
	SeekBackward      string `toml:"seek_backward"`
	SeekForwardLarge  string `toml:"seek_forward_large"`
	SeekBackwardLarge string `toml:"seek_backward_large"`
	VolumeUp          string `toml:"volume_up"`
	VolumeDown        string `toml:"volume_down"`
	Mute              string `toml:"mute"`
	Fullscreen        string `toml:"fullscreen"`
}

// JellyfinConfig enables an extra wall section fed by a Jellyfin library.
type JellyfinConfig struct {
	URL       string `toml:"url" env:"JELLYFIN_URL"`
	Token     string `toml:"token" env:"JELLYFIN_TOKEN"`
	UserID    string `toml:"user_id" env:"JELLYFIN_USER_ID"`
	LibraryID string `toml:"library_id" env:"JELLYFIN_LIBRARY_ID"`
	Title     string `toml:"title"`
	Limit     int    `toml:"limit"`
}

func (j JellyfinConfig) Enabled() bool {
	return j.URL != "" && j.Token != ""
}

type WallConfig struct {
	Title    string          `toml:"title"`
	Intro    string          `toml:"intro"`
	Sections []SectionConfig `toml:"sections"`
	Connect  ConnectConfig   `toml:"connect"`
}

// ConnectConfig is the list of contact links closing the wall. Email, when
// set, is listed first and copied to the clipboard instead of opened.
type ConnectConfig struct {
	Title string       `toml:"title"`
	Email string       `toml:"email"`
	Links []LinkConfig `toml:"links"`
}

type LinkConfig struct {
	Label string `toml:"label"`
	Href  string `toml:"href"` // http(s) or mailto URL, or "case:<slug>"
}

// SectionConfig is one titled block of tiles. Kind is "videos" or "cases".
type SectionConfig struct {
	Title   string       `toml:"title"`
	Kind    string       `toml:"kind"`
	Columns int          `toml:"columns"`
	Tiles   []TileConfig `toml:"tiles"`
}

const (
	SectionVideos = "videos"
	SectionCases  = "cases"
)

type TileConfig struct {
	Title           string `toml:"title"`
	Description     string `toml:"description"`
	Src             string `toml:"src"`         // video file or URL
	Poster          string `toml:"poster"`      // image file or URL
	Placeholder     string `toml:"placeholder"` // hex color shown until the poster loads
	Orientation     string `toml:"orientation"` // "vertical" or "horizontal"
	Href            string `toml:"href"`        // navigation target for case tiles
	HideTitle       bool   `toml:"hide_title"`
	HideDescription bool   `toml:"hide_description"`
}

// CaseConfig describes a case page reachable from a case tile via "case:<slug>".
type CaseConfig struct {
	Slug    string      `toml:"slug"`
	Title   string      `toml:"title"`
	Article string      `toml:"article"` // markdown file path
	Media   []MediaRule `toml:"media"`
}

// MediaRule inserts a media placeholder after each paragraph containing After.
type MediaRule struct {
	After  string `toml:"after"`
	Label  string `toml:"label"`
	Aspect string `toml:"aspect"` // "w:h"
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     900,
		},
		Tokens: DefaultTokens(),
		Playback: PlaybackConfig{
			HWAccel: "auto-safe",
			Volume:  100,
		},
		Keybinds: KeybindConfig{
			PlayPause:         "Space",
			SeekForward:       "Right",
			SeekBackward:      "Left",
			SeekForwardLarge:  "Up",
			SeekBackwardLarge: "Down",
			VolumeUp:          "0",
			VolumeDown:        "9",
			Mute:              "M",
			Fullscreen:        "F",
		},
		Jellyfin: JellyfinConfig{
			Title: "Latest",
			Limit: 12,
		},
		Wall: defaultWall(),
	}
}

func defaultWall() WallConfig {
	vertical := func(title, desc, placeholder string) TileConfig {
		return TileConfig{Title: title, Description: desc, Placeholder: placeholder,
			Orientation: "vertical", HideTitle: true}
	}
	return WallConfig{
		Title: "Media Wall",
		Intro: "Hover a tile to focus it, click to expand. Esc or a click outside closes it.",
		Sections: []SectionConfig{
			{
				Title:   "Playground",
				Kind:    SectionVideos,
				Columns: 3,
				Tiles: []TileConfig{
					vertical("Interactive List", "Gesture-driven list interactions", "#24211C"),
					vertical("Haptic Feedback", "Custom haptic patterns for UI feedback", "#606467"),
					vertical("Scroll Animation", "Parallax scrolling effects", "#24211C"),
					vertical("Tab Bar Transition", "Fluid navigation transitions between views", "#606467"),
					vertical("Card Stack", "Stackable card interface pattern", "#7D7372"),
					vertical("Animation Library", "Reusable animation components", "#B7AAB4"),
					{Title: "Full Design System", Description: "Complete component library and design system implementation",
						Placeholder: "#6A6989", Orientation: "horizontal", HideTitle: true},
				},
			},
			{
				Title: "Cases",
				Kind:  SectionCases,
				Tiles: []TileConfig{
					{Title: "Finance App Redesign"},
					{Title: "E-commerce Checkout"},
					{Title: "Health Tracking Dashboard"},
				},
			},
		},
		Connect: ConnectConfig{
			Title: "Connect",
			Email: "hello@example.com",
			Links: []LinkConfig{
				{Label: "GitHub", Href: "https://github.com/depeter/mediawall"},
			},
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mediawall"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := DefaultConfig()
		return cfg, applyEnv(cfg)
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults and applies environment overrides.
// A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		// A manifest that lists its own sections replaces the sample wall.
		cfg.Wall.Sections = nil
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if len(cfg.Wall.Sections) == 0 {
			cfg.Wall.Sections = defaultWall().Sections
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.Tokens.normalize()
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	opts := env.Options{Prefix: EnvPrefix}
	for _, target := range []any{&cfg.UI, &cfg.Playback, &cfg.Jellyfin} {
		if err := env.ParseWithOptions(target, opts); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
	}
	return nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string { return c.path }

// Case returns the case with the given slug.
func (c *Config) Case(slug string) (CaseConfig, bool) {
	for _, cs := range c.Cases {
		if cs.Slug == slug {
			return cs, true
		}
	}
	return CaseConfig{}, false
}

func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return err
	}
	c.path = path
	return nil
}
