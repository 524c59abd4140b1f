// gui_input.go - Pointer/key dispatch and the top-level frame loop (§4.8)

package main

// DrawLoop runs the full per-frame cycle — pointer dispatch, key dispatch,
// animation advance, flush — until drawCtx.ExitLoop reports true. Pointer
// capture (holdObject) persists across frames even once the cursor leaves
// the capturing object's bounds, matching the original's HoldObject state.
func (e *Engine) DrawLoop(drawCtx *DrawingContext) {
	var holdObject *Object
	var frameTime uint64

	for {
		e.dispatchPointer(drawCtx, &holdObject)
		e.dispatchKey(drawCtx)

		frameTime++
		advanceAnimations(drawCtx, frameTime)

		e.Flush(drawCtx)

		if drawCtx.ExitLoop(drawCtx.GuiContext) {
			return
		}
	}
}

// dispatchPointer polls the pointer device once and runs the capture state
// machine: a fresh PrimaryDown looks up a new capture target via the scene
// graph; an existing target keeps receiving Hold/Up events directly,
// bypassing hit-testing, until the button releases (§4.8 steps 1-2).
func (e *Engine) dispatchPointer(drawCtx *DrawingContext, holdObject **Object) {
	if e.pointer == nil {
		return
	}

	state, err := e.pointer.GetState()
	if err != nil {
		// Swallowed: "no event this iteration" (§7).
		return
	}

	e.CursorView.X = clampInt(state.X, 0, e.screenWidth-1)
	e.CursorView.Y = clampInt(state.Y, 0, e.screenHeight-1)

	offsetX := int64(e.CursorView.X)
	offsetY := int64(e.CursorView.Y)

	if *holdObject == nil {
		if !state.PrimaryDown {
			return
		}
		*holdObject = drawCtx.Screen.PtrEvent(drawCtx.Screen, drawCtx, drawCtx.GuiContext, PrimaryDown, 0, 0, offsetX, offsetY)
		return
	}

	target := *holdObject
	baseX, baseY := BaseCoords(target, drawCtx)
	localX := offsetX - baseX
	localY := offsetY - baseY

	if state.PrimaryDown {
		target.PtrEvent(target, drawCtx, drawCtx.GuiContext, PrimaryHold, baseX, baseY, localX, localY)
		return
	}

	target.PtrEvent(target, drawCtx, drawCtx.GuiContext, PrimaryUp, baseX, baseY, localX, localY)
	*holdObject = nil
}

// dispatchKey reads at most one key per iteration and delivers it to the
// screen's KeyEvent (§4.8 step 3). Simultaneous keys in one frame are
// deliberately not supported.
func (e *Engine) dispatchKey(drawCtx *DrawingContext) {
	if e.key == nil {
		return
	}

	key, ok := e.key.Read()
	if !ok {
		return
	}

	if drawCtx.Screen.KeyEvent != nil {
		drawCtx.Screen.KeyEvent(drawCtx.Screen, drawCtx, drawCtx.GuiContext, 0, 0, key)
	}
}
