// gui_frame_pump.go - Time-locked flush loop (§4.7)

package main

import (
	"fmt"
	"runtime"
	"unsafe"
)

// cpuPauseYield stands in for the bare-metal CPU pause instruction the
// original busy-waits on; hosted, yielding the scheduler is the equivalent
// the teacher itself reaches for during tight polling loops (cf.
// runtime.Gosched() in cpu_six5go2.go's single-step timing).
func cpuPauseYield() {
	runtime.Gosched()
}

// Flush composites the cursor, paces to the target frame period, and hands
// every dirty rectangle to the external transfer primitive (§4.7).
func (e *Engine) Flush(drawCtx *DrawingContext) {
	e.RedrawPointer(drawCtx)

	rects := e.dirty.snapshotAndReset()

	// The original raises TPL to TPL_NOTIFY and masks interrupts around the
	// pacing wait and transfer batch to keep frame cadence stable. Hosted
	// under a preemptive OS scheduler there is no interrupt mask to take;
	// the pacing wait below is the part of that critical section that
	// still matters (§9 Interrupt discipline).
	endTime := e.clock.now()
	delta := endTime.Sub(e.startTime)
	if delta < e.targetFrameDuration {
		deadline := e.startTime.Add(e.targetFrameDuration)
		for e.clock.now().Before(deadline) {
			e.clock.pause()
		}
		endTime = e.clock.now()
	}

	stride := e.screenWidth * BytesPerPixel
	srcBytes := pixelsToBytes(e.backBuffer)

	for _, r := range rects {
		width := int(r.MaxX - r.MinX + 1)
		height := int(r.MaxY - r.MinY + 1)
		err := e.output.BlockTransfer(srcBytes, int(r.MinX), int(r.MinY), int(r.MinX), int(r.MinY), width, height, stride)
		if err != nil {
			// A failed BLT is treated as transient and ignored (§7); it is
			// not worth losing a frame's pacing over a single bad transfer.
			fmt.Printf("gui: block transfer failed: %v\n", err)
		}
	}

	e.diag.record(len(rects), e.dirty.forcedMerges)

	// The BLT time is intentionally included in the next frame's budget:
	// transfer latency is variable and is not compensated for (§4.7 step 7).
	e.startTime = endTime
}

// RedrawAndFlush resets the pacing clock, redraws the entire screen, and
// flushes it (§4.7).
func (e *Engine) RedrawAndFlush(drawCtx *DrawingContext) {
	e.startTime = e.clock.now()
	e.RedrawObject(drawCtx.Screen, drawCtx, 0, 0, true)
	e.Flush(drawCtx)
}

// pixelsToBytes reinterprets a Pixel slice as its underlying BGRA byte
// stream without copying, the same unsafe-pointer reinterpretation
// video_compositor.go's blendStrip uses to avoid a per-frame copy of the
// whole back buffer. Pixel's field order and size make this layout-safe.
func pixelsToBytes(pixels []Pixel) []byte {
	if len(pixels) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&pixels[0])), len(pixels)*BytesPerPixel)
}
