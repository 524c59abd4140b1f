// gui_context.go - Per-view drawing context and cursor state (§3)

package main

// CursorGetImageFunc resolves the image to draw for the current cursor
// state; it is supplied by the outer application (per-screen widgets are
// out of this core's scope, §1).
type CursorGetImageFunc func(cursor *CursorViewState, guiCtx any) *Image

// ExitLoopFunc is the outer application's exit policy (§1); DrawLoop exits
// once it returns true.
type ExitLoopFunc func(guiCtx any) bool

// DrawingContext is per-view state: the root Screen object, a cursor-image
// resolver, an exit predicate, an opaque application context, and the
// animation list.
type DrawingContext struct {
	Screen         *Object
	GetCursorImage CursorGetImageFunc
	ExitLoop       ExitLoopFunc
	GuiContext     any
	Animations     []*Animation
}

// CursorViewState is process-wide: the pointer's position in screen pixels,
// derived from the pointer device between frames.
type CursorViewState struct {
	X, Y int
}
