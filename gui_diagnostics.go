// gui_diagnostics.go - Frame-pump diagnostics and clipboard export
//
// Not part of the core frame loop: a debug aid for the demo harness, wired
// the way the teacher wires its one clipboard call site in
// video_backend_ebiten.go — best-effort, never blocking a frame.

package main

import (
	"fmt"
	"sync"
)

// diagnostics accumulates frame-pump counters across the life of an Engine.
type diagnostics struct {
	mu            sync.Mutex
	frames        uint64
	lastDirtyRects int
	forcedMerges  uint64
}

func (d *diagnostics) record(dirtyRects int, forcedMerges uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames++
	d.lastDirtyRects = dirtyRects
	d.forcedMerges = forcedMerges
}

func (d *diagnostics) snapshot() (frames uint64, lastDirtyRects int, forcedMerges uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames, d.lastDirtyRects, d.forcedMerges
}

// DumpDiagnostics formats the engine's current diagnostic counters and
// copies them to the system clipboard, best-effort. Failure to reach the
// clipboard (headless CI, no display server) is silently ignored — this
// never affects the frame loop.
func (e *Engine) DumpDiagnostics() string {
	frames, lastDirtyRects, forcedMerges := e.diag.snapshot()
	text := fmt.Sprintf(
		"gui diagnostics: frames=%d last_dirty_rects=%d forced_merges=%d",
		frames, lastDirtyRects, forcedMerges,
	)
	copyToClipboard(text)
	return text
}
