//go:build headless

package main

import (
	"testing"
	"time"
)

// fakeClock lets Flush's pacing loop run instantly in tests: now() jumps
// straight to the deadline the first time pause() is called.
type fakeClock struct {
	t        time.Time
	deadline time.Time
}

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) pause() {
	if c.t.Before(c.deadline) {
		c.t = c.deadline
	}
}

func TestFlushTransfersEveryDirtyRect(t *testing.T) {
	e, drawCtx, output := newRasterTestRig(t, 20, 20)
	clock := &fakeClock{t: time.Unix(0, 0)}
	clock.deadline = clock.t.Add(e.targetFrameDuration)
	e.clock = clock
	e.startTime = clock.t

	fill := &Image{Width: 1, Height: 1, Buffer: []Pixel{{Red: 1, Green: 2, Blue: 3, Alpha: 0xFF}}}
	e.DrawToBuffer(fill, 0xFF, true, drawCtx, 0, 0, 0, 0, 3, 3, true)

	e.Flush(drawCtx)

	if len(output.Transfers) == 0 {
		t.Fatalf("expected at least one BlockTransfer call")
	}
}

func TestFlushPacesToTargetFrameDuration(t *testing.T) {
	e, drawCtx, _ := newRasterTestRig(t, 20, 20)
	start := time.Unix(0, 0)
	clock := &fakeClock{t: start, deadline: start.Add(e.targetFrameDuration)}
	e.clock = clock
	e.startTime = start

	e.Flush(drawCtx)

	if e.startTime.Before(start.Add(e.targetFrameDuration)) {
		t.Fatalf("expected pacing to advance startTime by at least the target frame duration")
	}
}

func TestFlushIgnoresTransferFailures(t *testing.T) {
	e, drawCtx, output := newRasterTestRig(t, 20, 20)
	clock := &fakeClock{t: time.Unix(0, 0)}
	clock.deadline = clock.t.Add(e.targetFrameDuration)
	e.clock = clock
	e.startTime = clock.t

	fill := &Image{Width: 1, Height: 1, Buffer: []Pixel{{Alpha: 0xFF}}}
	e.DrawToBuffer(fill, 0xFF, true, drawCtx, 0, 0, 0, 0, 2, 2, true)

	output.FailNext = true

	// Must not panic despite the simulated BlockTransfer failure.
	e.Flush(drawCtx)
}

func TestFlushClearsDirtySet(t *testing.T) {
	e, drawCtx, _ := newRasterTestRig(t, 20, 20)
	clock := &fakeClock{t: time.Unix(0, 0)}
	clock.deadline = clock.t.Add(e.targetFrameDuration)
	e.clock = clock
	e.startTime = clock.t

	fill := &Image{Width: 1, Height: 1, Buffer: []Pixel{{Alpha: 0xFF}}}
	e.DrawToBuffer(fill, 0xFF, true, drawCtx, 0, 0, 0, 0, 2, 2, true)

	e.Flush(drawCtx)

	if e.dirty.Len() != 0 {
		t.Fatalf("expected dirty set to be empty after Flush, got %d entries", e.dirty.Len())
	}
}

func TestPixelsToBytesLayout(t *testing.T) {
	pixels := []Pixel{{Blue: 1, Green: 2, Red: 3, Alpha: 4}, {Blue: 5, Green: 6, Red: 7, Alpha: 8}}
	got := pixelsToBytes(pixels)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if len(got) != len(want) {
		t.Fatalf("got %d bytes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}
}
