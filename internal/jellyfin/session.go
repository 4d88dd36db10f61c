package jellyfin

import (
	"context"
	"fmt"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// TicksPerSecond is the Jellyfin ticks-per-second factor (100ns ticks).
const TicksPerSecond = 10_000_000

// Ticks converts a playback position in seconds to Jellyfin ticks.
func Ticks(seconds float64) int64 {
	return int64(seconds * TicksPerSecond)
}

// ReportPlaybackStart notifies the server that a wall tile started playing.
func (c *Client) ReportPlaybackStart(ctx context.Context, itemID string) error {
	body := *jellyfin.NewPlaybackStartInfo()
	body.SetItemId(itemID)
	body.SetCanSeek(true)
	body.SetPlayMethod(jellyfin.PLAYMETHOD_DIRECT_PLAY)

	resp, err := c.api.PlaystateAPI.ReportPlaybackStart(ctx).PlaybackStartInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report playback start: %w (status: %s)", err, respStatus(resp))
	}
	return nil
}

// ReportPlaybackStopped notifies the server that playback ended at positionTicks.
func (c *Client) ReportPlaybackStopped(ctx context.Context, itemID string, positionTicks int64) error {
	body := *jellyfin.NewPlaybackStopInfo()
	body.SetItemId(itemID)
	body.SetPositionTicks(positionTicks)

	resp, err := c.api.PlaystateAPI.ReportPlaybackStopped(ctx).PlaybackStopInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report playback stopped: %w (status: %s)", err, respStatus(resp))
	}
	return nil
}
