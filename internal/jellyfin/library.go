package jellyfin

import (
	"context"
	"fmt"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// Video is the part of a Jellyfin item a wall tile needs.
type Video struct {
	ID       string
	Name     string
	Type     string // Movie, Episode, Video, etc.
	Year     int
	Overview string
	Aspect   float64 // primary image width / height, 0 if unknown
}

// Vertical reports whether the item's artwork is taller than wide.
func (v Video) Vertical() bool {
	return v.Aspect > 0 && v.Aspect < 1
}

// LatestVideos returns the newest playable items, optionally under one library.
func (c *Client) LatestVideos(ctx context.Context, parentID string, limit int) ([]Video, error) {
	req := c.api.UserLibraryAPI.GetLatestMedia(ctx).
		UserId(c.userID).
		Limit(int32(limit)).
		Fields([]jellyfin.ItemFields{jellyfin.ITEMFIELDS_OVERVIEW, jellyfin.ITEMFIELDS_PRIMARY_IMAGE_ASPECT_RATIO}).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		ImageTypeLimit(1)
	if parentID != "" {
		req = req.ParentId(parentID)
	}
	items, resp, err := req.Execute()
	if err != nil {
		return nil, fmt.Errorf("get latest: %w (status: %s)", err, respStatus(resp))
	}

	videos := make([]Video, 0, len(items))
	for _, item := range items {
		if !playable(&item) {
			continue
		}
		videos = append(videos, convertBaseItemDto(&item))
	}
	return videos, nil
}

func playable(item *jellyfin.BaseItemDto) bool {
	if item.Type == nil {
		return false
	}
	switch *item.Type {
	case jellyfin.BASEITEMKIND_MOVIE, jellyfin.BASEITEMKIND_EPISODE:
		return true
	}
	switch string(*item.Type) {
	case "Video", "MusicVideo", "Trailer":
		return true
	}
	return false
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) Video {
	v := Video{}
	if item.Id != nil {
		v.ID = *item.Id
	}
	v.Name = item.GetName()
	if item.Type != nil {
		v.Type = string(*item.Type)
	}
	v.Year = int(item.GetProductionYear())
	v.Overview = item.GetOverview()
	v.Aspect = item.GetPrimaryImageAspectRatio()
	return v
}
