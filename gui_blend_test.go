package main

import "testing"

func TestBlendFullyTransparentFrontIsNoOp(t *testing.T) {
	back := Pixel{Red: 10, Green: 20, Blue: 30, Alpha: 0xFF}
	want := back
	Blend(&back, Pixel{Red: 1, Green: 2, Blue: 3, Alpha: 0}, 0xFF)
	if back != want {
		t.Fatalf("got %+v, want unchanged %+v", back, want)
	}
}

func TestBlendZeroOpacityIsNoOp(t *testing.T) {
	back := Pixel{Red: 10, Green: 20, Blue: 30, Alpha: 0xFF}
	want := back
	Blend(&back, Pixel{Red: 1, Green: 2, Blue: 3, Alpha: 0xFF}, 0)
	if back != want {
		t.Fatalf("got %+v, want unchanged %+v", back, want)
	}
}

func TestBlendOpaqueOverOpaqueReplaces(t *testing.T) {
	back := Pixel{Red: 10, Green: 20, Blue: 30, Alpha: 0xFF}
	front := Pixel{Red: 100, Green: 110, Blue: 120, Alpha: 0xFF}
	Blend(&back, front, 0xFF)
	if back != front {
		t.Fatalf("got %+v, want %+v", back, front)
	}
}

func TestBlendHalfOpacityAverages(t *testing.T) {
	back := Pixel{Red: 0, Green: 0, Blue: 0, Alpha: 0xFF}
	front := Pixel{Red: 0xFF, Green: 0xFF, Blue: 0xFF, Alpha: 0xFF}
	Blend(&back, front, 0x80)

	// back stays opaque; channels should land roughly at half intensity.
	if back.Alpha != 0xFF {
		t.Fatalf("expected back to remain opaque, got alpha=%d", back.Alpha)
	}
	if back.Red < 0x7A || back.Red > 0x82 {
		t.Fatalf("expected red near mid-scale, got %d", back.Red)
	}
}

func TestBlendPartiallyTransparentFrontOverTransparentBack(t *testing.T) {
	back := Pixel{}
	front := Pixel{Red: 0x80, Green: 0x40, Blue: 0x20, Alpha: 0x80}
	Blend(&back, front, 0xFF)

	if back.Alpha == 0 {
		t.Fatalf("expected back alpha to increase from blending a translucent front")
	}
}

func TestApplyOpacityTruncates(t *testing.T) {
	if got := applyOpacity(0xFF, 0x80); got != 0x80 {
		t.Fatalf("applyOpacity(0xFF, 0x80) = %d, want 0x80", got)
	}
	if got := applyOpacity(0x00, 0xFF); got != 0 {
		t.Fatalf("applyOpacity(0, 0xFF) = %d, want 0", got)
	}
}
