// gui_clipboard.go - Best-effort clipboard export for diagnostics (§11)
//
// Mirrors video_backend_ebiten.go's own clipboard usage: a sync.Once guard
// around clipboard.Init(), and silent no-ops once it has failed once.

package main

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardOK   bool
)

func copyToClipboard(text string) {
	clipboardOnce.Do(func() {
		clipboardOK = clipboard.Init() == nil
	})
	if !clipboardOK {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
}
