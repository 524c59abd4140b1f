// gui_collaborators.go - External collaborator interfaces (§6)
//
// These are the seams the spec calls out as deliberately external: the
// pixel-transfer primitive, the pointer/key device drivers, and the PNG
// decoder. The core never depends on a concrete backend, only on these
// interfaces — the same shape the teacher uses for VideoOutput/VideoSource
// in video_compositor.go.

package main

import "time"

// DisplayInfo reports the fixed output resolution (§6 OutputGetInfo).
type DisplayInfo struct {
	HorizontalResolution int
	VerticalResolution   int
}

// Output is the external block-transfer primitive (BlockTransfer) plus its
// construction/teardown and info query. A BlockTransfer call copies a
// rectangular region from the back buffer to the display; failures are
// treated as transient and ignored by the frame pump (§7).
type Output interface {
	GetInfo() DisplayInfo
	// BlockTransfer copies width x height pixels from src (a back buffer
	// slice, stride srcStrideBytes) at (srcX, srcY) to the display at
	// (dstX, dstY).
	BlockTransfer(src []byte, srcX, srcY, dstX, dstY, width, height, srcStrideBytes int) error
	Close() error
}

// PointerState is a single poll of the pointer device (§6 PointerGetState).
type PointerState struct {
	X, Y        int
	PrimaryDown bool
}

// Pointer is the external pointer device driver.
type Pointer interface {
	GetState() (PointerState, error)
	Reset()
	Close() error
}

// InputKey is a single polled key event (§6 KeyRead).
type InputKey struct {
	Rune    rune
	Scancode uint16
}

// Key is the external key device driver. Read returns ok=false when no key
// is pending this iteration — that condition is swallowed by the caller,
// never surfaced as an error (§7).
type Key interface {
	Read() (key InputKey, ok bool)
	Reset()
	Close() error
}

// PngDecoder decodes an external PNG to straight (non-premultiplied) RGBA.
type PngDecoder interface {
	Decode(raw []byte) (buf []Pixel, width, height uint32, err error)
}

// timeSource abstracts the monotonic clock the frame pump paces against.
// On bare metal this would be a TSC; hosted, it is time.Now() together with
// a CPU-yielding busy-wait, mirroring the teacher's own substitution of
// runtime.Gosched() for cycle-accurate timing once running under a hosted
// Go runtime (cpu_six5go2.go's single-step throttling).
type timeSource interface {
	now() time.Time
	pause()
}

type realTimeSource struct{}

func (realTimeSource) now() time.Time { return time.Now() }
func (realTimeSource) pause()         { cpuPauseYield() }
