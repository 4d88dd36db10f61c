//go:build windows

package ui

import (
	"syscall"
	"unsafe"
)

var (
	user32           = syscall.NewLazyDLL("user32.dll")
	kernel32         = syscall.NewLazyDLL("kernel32.dll")
	procOpenCB       = user32.NewProc("OpenClipboard")
	procCloseCB      = user32.NewProc("CloseClipboard")
	procEmptyCB      = user32.NewProc("EmptyClipboard")
	procSetCBData    = user32.NewProc("SetClipboardData")
	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
)

const (
	cfUnicodeText = 13
	gmemMoveable  = 0x0002
)

func writeClipboard(text string) {
	if ret, _, _ := procOpenCB.Call(0); ret == 0 {
		return
	}
	defer procCloseCB.Call()
	procEmptyCB.Call()

	utf16, err := syscall.UTF16FromString(text)
	if err != nil {
		return
	}
	size := len(utf16) * 2

	h, _, _ := procGlobalAlloc.Call(gmemMoveable, uintptr(size))
	if h == 0 {
		return
	}
	ptr, _, _ := procGlobalLock.Call(h)
	if ptr == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size), unsafe.Slice((*byte)(unsafe.Pointer(&utf16[0])), size))
	procGlobalUnlock.Call(h)
	procSetCBData.Call(cfUnicodeText, h)
}
