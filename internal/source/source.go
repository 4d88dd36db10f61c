// Package source assembles the wall's sections from the config manifest and,
// optionally, a Jellyfin library.
package source

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/depeter/mediawall/internal/config"
	"github.com/depeter/mediawall/internal/jellyfin"
	"github.com/depeter/mediawall/internal/layout"
	"github.com/depeter/mediawall/internal/media"
	"github.com/depeter/mediawall/internal/tile"
)

// CasePrefix marks navigation targets that open a case page.
const CasePrefix = "case:"

type Tile struct {
	Content tile.Content
	Href    string // navigation target; case tiles only
	ItemID  string // Jellyfin item, if the tile came from a library
}

type Section struct {
	Title   string
	Cases   bool
	Columns int
	Tiles   []Tile
}

// Link is one row of the connect list. A row with Copy puts that text on the
// clipboard; otherwise it navigates to Href.
type Link struct {
	Label string
	Href  string
	Copy  string
}

type Connect struct {
	Title string
	Links []Link
}

type Wall struct {
	Title    string
	Intro    string
	Sections []Section
	Connect  Connect
}

// FromConfig converts the manifest into wall sections. Relative media paths
// are resolved against the manifest's directory.
func FromConfig(cfg *config.Config) Wall {
	base := ""
	if cfg.Path() != "" {
		base = filepath.Dir(cfg.Path())
	}
	w := Wall{Title: cfg.Wall.Title, Intro: cfg.Wall.Intro}
	for _, sc := range cfg.Wall.Sections {
		sec := Section{
			Title:   sc.Title,
			Cases:   sc.Kind == config.SectionCases,
			Columns: sc.Columns,
		}
		if sec.Columns < 1 {
			sec.Columns = 3
		}
		for _, tc := range sc.Tiles {
			sec.Tiles = append(sec.Tiles, fromTileConfig(tc, sec.Cases, base))
		}
		w.Sections = append(w.Sections, sec)
	}
	w.Connect = fromConnectConfig(cfg.Wall.Connect)
	return w
}

func fromConnectConfig(cc config.ConnectConfig) Connect {
	c := Connect{Title: cc.Title}
	if c.Title == "" {
		c.Title = "Connect"
	}
	if cc.Email != "" {
		c.Links = append(c.Links, Link{Label: "Email", Copy: cc.Email})
	}
	for _, lc := range cc.Links {
		if lc.Href == "" {
			continue
		}
		label := lc.Label
		if label == "" {
			label = lc.Href
		}
		c.Links = append(c.Links, Link{Label: label, Href: lc.Href})
	}
	return c
}

func fromTileConfig(tc config.TileConfig, isCase bool, base string) Tile {
	orientation := tc.Orientation
	if orientation != layout.Horizontal {
		orientation = layout.Vertical
	}
	if isCase {
		orientation = layout.Horizontal
	}
	return Tile{
		Content: tile.Content{
			Title:           tc.Title,
			Description:     tc.Description,
			Poster:          resolve(base, tc.Poster),
			Src:             resolve(base, tc.Src),
			Placeholder:     tc.Placeholder,
			Orientation:     orientation,
			ShowTitle:       !tc.HideTitle,
			ShowDescription: !tc.HideDescription,
		},
		Href: tc.Href,
	}
}

// Activator picks the tile's activation strategy: case tiles navigate, video
// tiles expand in place.
func (s Section) Activator(t Tile, coord *media.Coordinator, nav tile.Navigator) tile.Activator {
	if s.Cases {
		return tile.Navigate{Nav: nav, Target: t.Href}
	}
	return tile.ExpandInPlace{Coord: coord}
}

// Library is the part of a Jellyfin client the wall reads from.
type Library interface {
	LatestVideos(ctx context.Context, parentID string, limit int) ([]jellyfin.Video, error)
	PosterURL(itemID string, maxWidth, maxHeight int) string
	StreamURL(itemID string) string
}

// LoadLibrary builds a video section from the newest items in a library.
func LoadLibrary(ctx context.Context, lib Library, jc config.JellyfinConfig) (Section, error) {
	limit := jc.Limit
	if limit <= 0 {
		limit = 12
	}
	videos, err := lib.LatestVideos(ctx, jc.LibraryID, limit)
	if err != nil {
		return Section{}, fmt.Errorf("load jellyfin section: %w", err)
	}

	sec := Section{Title: jc.Title, Columns: 3}
	if sec.Title == "" {
		sec.Title = "Latest"
	}
	for _, v := range videos {
		orientation := layout.Horizontal
		maxW, maxH := 960, 540
		if v.Vertical() {
			orientation = layout.Vertical
			maxW, maxH = 540, 960
		}
		sec.Tiles = append(sec.Tiles, Tile{
			Content: tile.Content{
				Title:           v.Name,
				Description:     describe(v),
				Poster:          lib.PosterURL(v.ID, maxW, maxH),
				Src:             lib.StreamURL(v.ID),
				Orientation:     orientation,
				ShowTitle:       true,
				ShowDescription: true,
			},
			ItemID: v.ID,
		})
	}
	return sec, nil
}

func resolve(base, p string) string {
	if p == "" || base == "" || filepath.IsAbs(p) || strings.Contains(p, "://") {
		return p
	}
	return filepath.Join(base, p)
}

func describe(v jellyfin.Video) string {
	var parts []string
	if v.Year > 0 {
		parts = append(parts, fmt.Sprintf("%d", v.Year))
	}
	if v.Type != "" {
		parts = append(parts, v.Type)
	}
	return strings.Join(parts, " · ")
}

// External reports whether target is a URL handed to the desktop (web or
// mail) rather than a page inside the wall.
func External(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	}
	return false
}

// CaseSlug extracts the slug from a "case:<slug>" target.
func CaseSlug(target string) (string, bool) {
	slug, ok := strings.CutPrefix(target, CasePrefix)
	return slug, ok && slug != ""
}
