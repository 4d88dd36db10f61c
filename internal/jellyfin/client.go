package jellyfin

import (
	"fmt"
	"net/http"
	"strings"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

const (
	clientName    = "MediaWall"
	clientVersion = "0.1.0"
	deviceName    = "MediaWall Desktop"
	deviceID      = "mediawall-1"
)

// Client wraps the generated Jellyfin API client for the wall's library
// section. It authenticates with a pre-issued access token.
type Client struct {
	api       *jellyfin.APIClient
	token     string
	userID    string
	serverURL string
}

func normalizeURL(serverURL string) string {
	serverURL = strings.TrimSpace(serverURL)
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}
	return strings.TrimRight(serverURL, "/")
}

func NewClient(serverURL, token, userID string) *Client {
	serverURL = normalizeURL(serverURL)
	cfg := jellyfin.NewConfiguration()
	cfg.Servers = jellyfin.ServerConfigurations{
		{URL: serverURL},
	}
	cfg.AddDefaultHeader("X-Emby-Authorization",
		fmt.Sprintf(`MediaBrowser Client="%s", Device="%s", DeviceId="%s", Version="%s"`,
			clientName, deviceName, deviceID, clientVersion))
	cfg.AddDefaultHeader("X-Emby-Token", token)

	return &Client{
		api:       jellyfin.NewAPIClient(cfg),
		token:     token,
		userID:    userID,
		serverURL: serverURL,
	}
}

func respStatus(resp *http.Response) string {
	if resp == nil {
		return "no response"
	}
	return resp.Status
}
