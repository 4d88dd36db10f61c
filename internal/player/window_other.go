//go:build !linux && !windows

package player

import "errors"

// WindowHandle is unsupported here; playback opens in mpv's own window.
func WindowHandle() (int64, error) {
	return 0, errors.New("embedded playback not supported on this platform")
}
