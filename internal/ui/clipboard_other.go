//go:build !linux && !freebsd && !netbsd && !openbsd && !windows

package ui

import (
	"log"

	"github.com/atotto/clipboard"
)

// writeClipboard goes through the platform's clipboard tool (pbcopy on macOS).
func writeClipboard(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("Failed to copy to clipboard: %v", err)
	}
}
