package jellyfin

import (
	"fmt"
	"net/url"
)

// PosterURL returns the primary image URL for an item, bounded to the given
// size in pixels.
func (c *Client) PosterURL(itemID string, maxWidth, maxHeight int) string {
	u := fmt.Sprintf("%s/Items/%s/Images/Primary", c.serverURL, url.PathEscape(itemID))
	params := url.Values{}
	if maxWidth > 0 {
		params.Set("maxWidth", fmt.Sprintf("%d", maxWidth))
	}
	if maxHeight > 0 {
		params.Set("maxHeight", fmt.Sprintf("%d", maxHeight))
	}
	params.Set("quality", "90")
	return u + "?" + params.Encode()
}
