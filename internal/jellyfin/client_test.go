package jellyfin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	require.Equal(t, "https://media.local", normalizeURL(" media.local/ "))
	require.Equal(t, "http://10.0.0.2:8096", normalizeURL("http://10.0.0.2:8096"))
}

func TestPosterURL(t *testing.T) {
	c := NewClient("http://jf.local/", "tok", "u1")
	u, err := url.Parse(c.PosterURL("abc", 400, 0))
	require.NoError(t, err)
	require.Equal(t, "/Items/abc/Images/Primary", u.Path)
	require.Equal(t, "400", u.Query().Get("maxWidth"))
	require.Empty(t, u.Query().Get("maxHeight"))
	require.Equal(t, "90", u.Query().Get("quality"))
}

func TestStreamURL(t *testing.T) {
	c := NewClient("http://jf.local", "tok", "u1")
	u, err := url.Parse(c.StreamURL("abc"))
	require.NoError(t, err)
	require.Equal(t, "/Videos/abc/stream", u.Path)
	require.Equal(t, "true", u.Query().Get("Static"))
	require.Equal(t, "tok", u.Query().Get("api_key"))
}

func TestVertical(t *testing.T) {
	require.True(t, Video{Aspect: 0.67}.Vertical())
	require.False(t, Video{Aspect: 1.78}.Vertical())
	require.False(t, Video{}.Vertical())
}

func TestTicks(t *testing.T) {
	require.Equal(t, int64(15_000_000), Ticks(1.5))
}

func TestLatestVideosFiltersPlayable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/Items/Latest"), r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get("X-Emby-Token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"Id":"m1","Name":"Harbor","Type":"Movie","ProductionYear":2021,"PrimaryImageAspectRatio":0.67},
			{"Id":"a1","Name":"Album","Type":"MusicAlbum"},
			{"Id":"v1","Name":"Reel","Type":"Video"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", "u1")
	videos, err := c.LatestVideos(context.Background(), "", 10)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	require.Equal(t, Video{ID: "m1", Name: "Harbor", Type: "Movie", Year: 2021, Aspect: 0.67}, videos[0])
	require.True(t, videos[0].Vertical())
	require.Equal(t, "v1", videos[1].ID)
}

func TestLatestVideosServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad", "u1").LatestVideos(context.Background(), "", 10)
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
}

func TestReportPlaybackStart(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Sessions/Playing", r.URL.Path)
		hits.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL, "tok", "u1").ReportPlaybackStart(context.Background(), "m1"))
	require.Equal(t, int32(1), hits.Load())
}
