//go:build windows

package player

import (
	"errors"
	"syscall"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	procForegroundWindow = user32.NewProc("GetForegroundWindow")
)

// WindowHandle returns the HWND of the foreground window.
func WindowHandle() (int64, error) {
	hwnd, _, _ := procForegroundWindow.Call()
	if hwnd == 0 {
		return 0, errors.New("no foreground window")
	}
	return int64(hwnd), nil
}
