//go:build headless

package main

import "testing"

func newRasterTestRig(t *testing.T, width, height int) (*Engine, *DrawingContext, *HeadlessOutput) {
	t.Helper()

	output := NewHeadlessOutput(width, height)
	pointer := &HeadlessPointer{}
	e, err := LibConstruct(output, pointer, nil, nil, 0, 0)
	if err != nil {
		t.Fatalf("LibConstruct failed: %v", err)
	}

	screen := NewScreen(DrawDelegate, nil, nil)
	drawCtx := &DrawingContext{}
	e.ViewInitialize(drawCtx, screen, func(*CursorViewState, any) *Image {
		return &Image{Width: 1, Height: 1, Buffer: []Pixel{{}}}
	}, func(any) bool { return false }, nil)

	return e, drawCtx, output
}

func TestDrawToBufferFillBlendsAndMarksDirty(t *testing.T) {
	e, drawCtx, _ := newRasterTestRig(t, 20, 20)

	fill := &Image{Width: 1, Height: 1, Buffer: []Pixel{{Red: 0x40, Green: 0x80, Blue: 0xC0, Alpha: 0xFF}}}
	e.DrawToBuffer(fill, 0xFF, true, drawCtx, 2, 3, 0, 0, 5, 4, true)

	if e.dirty.Len() != 1 {
		t.Fatalf("expected one dirty rect, got %d", e.dirty.Len())
	}
	want := DirtyRect{MinX: 2, MinY: 3, MaxX: 6, MaxY: 6}
	if e.dirty.rects[0] != want {
		t.Fatalf("got dirty rect %+v, want %+v", e.dirty.rects[0], want)
	}

	p := e.backBuffer[3*20+2]
	if p != fill.Buffer[0] {
		t.Fatalf("back buffer pixel at origin = %+v, want %+v", p, fill.Buffer[0])
	}
}

func TestDrawToBufferCropsToScreenBounds(t *testing.T) {
	e, drawCtx, _ := newRasterTestRig(t, 10, 10)

	fill := &Image{Width: 1, Height: 1, Buffer: []Pixel{{Red: 1, Green: 1, Blue: 1, Alpha: 0xFF}}}
	// Requesting an 8x8 block at (5,5) on a 10x10 screen must crop to 5x5.
	e.DrawToBuffer(fill, 0xFF, true, drawCtx, 5, 5, 0, 0, 8, 8, true)

	want := DirtyRect{MinX: 5, MinY: 5, MaxX: 9, MaxY: 9}
	if e.dirty.rects[0] != want {
		t.Fatalf("got %+v, want %+v", e.dirty.rects[0], want)
	}
}

func TestDrawToBufferNegativeBaseClipsLeft(t *testing.T) {
	e, drawCtx, _ := newRasterTestRig(t, 10, 10)

	fill := &Image{Width: 1, Height: 1, Buffer: []Pixel{{Red: 1, Green: 1, Blue: 1, Alpha: 0xFF}}}
	// baseX=-3 means the leftmost 3 columns of the requested 8-wide region
	// fall off-screen; only 5 columns should actually be touched.
	e.DrawToBuffer(fill, 0xFF, true, drawCtx, -3, 0, 0, 0, 8, 1, true)

	want := DirtyRect{MinX: 0, MinY: 0, MaxX: 4, MaxY: 0}
	if e.dirty.rects[0] != want {
		t.Fatalf("got %+v, want %+v", e.dirty.rects[0], want)
	}
}

func TestDrawScreenSkipsEntirelyOffscreenRequest(t *testing.T) {
	e, drawCtx, _ := newRasterTestRig(t, 10, 10)

	drawCtx.Screen.Draw = func(this *Object, dc *DrawingContext, ctx any, baseX, baseY int64, offsetX, offsetY, width, height uint32, requestDraw bool) {
		t.Fatalf("Draw should not be invoked for an entirely offscreen request")
	}

	e.DrawScreen(drawCtx, 100, 100, 5, 5, true)
}

func TestRedrawObjectDrawsFullExtent(t *testing.T) {
	e, drawCtx, _ := newRasterTestRig(t, 10, 10)
	drawCtx.Screen.Width = 10
	drawCtx.Screen.Height = 10

	var seenWidth, seenHeight uint32
	drawCtx.Screen.Draw = func(this *Object, dc *DrawingContext, ctx any, baseX, baseY int64, offsetX, offsetY, width, height uint32, requestDraw bool) {
		seenWidth, seenHeight = width, height
	}

	e.RedrawObject(drawCtx.Screen, drawCtx, 0, 0, true)

	if seenWidth != 10 || seenHeight != 10 {
		t.Fatalf("got width=%d height=%d, want full 10x10", seenWidth, seenHeight)
	}
}
