package main

import "testing"

func TestGetInterpolatedValueAtStart(t *testing.T) {
	interp := &Interpolation{StartTime: 100, Duration: 50, StartValue: 10, EndValue: 90, Type: InterpolLinear}
	if got := GetInterpolatedValue(interp, 100); got != 10 {
		t.Fatalf("got %d, want StartValue 10", got)
	}
}

func TestGetInterpolatedValuePastDuration(t *testing.T) {
	interp := &Interpolation{StartTime: 100, Duration: 50, StartValue: 10, EndValue: 90, Type: InterpolLinear}
	if got := GetInterpolatedValue(interp, 200); got != 90 {
		t.Fatalf("got %d, want EndValue 90", got)
	}
}

func TestGetInterpolatedValueLinearMidpoint(t *testing.T) {
	interp := &Interpolation{StartTime: 0, Duration: 100, StartValue: 0, EndValue: 1000, Type: InterpolLinear}
	got := GetInterpolatedValue(interp, 50)
	if got < 490 || got > 510 {
		t.Fatalf("linear midpoint = %d, want close to 500", got)
	}
}

func TestGetInterpolatedValueSmoothMonotonic(t *testing.T) {
	interp := &Interpolation{StartTime: 0, Duration: 100, StartValue: 0, EndValue: 1000, Type: InterpolSmooth}
	prev := uint32(0)
	for elapsed := uint64(0); elapsed <= 100; elapsed += 10 {
		got := GetInterpolatedValue(interp, elapsed)
		if got < prev {
			t.Fatalf("smooth interpolation not monotonic at t=%d: %d < %d", elapsed, got, prev)
		}
		prev = got
	}
	if prev != 1000 {
		t.Fatalf("expected smooth curve to land on EndValue at full duration, got %d", prev)
	}
}

func TestAdvanceAnimationsRemovesDone(t *testing.T) {
	drawCtx := &DrawingContext{}
	var ranCount int
	done := &Animation{Animate: func(ctx any, dc *DrawingContext, frameTime uint64) bool {
		ranCount++
		return true
	}}
	stillRunning := &Animation{Animate: func(ctx any, dc *DrawingContext, frameTime uint64) bool {
		ranCount++
		return false
	}}
	drawCtx.Animations = []*Animation{done, stillRunning}

	advanceAnimations(drawCtx, 1)

	if ranCount != 2 {
		t.Fatalf("expected both animations to run once, ran %d", ranCount)
	}
	if len(drawCtx.Animations) != 1 || drawCtx.Animations[0] != stillRunning {
		t.Fatalf("expected only the still-running animation to remain, got %v", drawCtx.Animations)
	}
}

func TestIsinS3ZeroIsZero(t *testing.T) {
	if got := isinS3(0); got != 0 {
		t.Fatalf("isinS3(0) = %d, want 0", got)
	}
}
