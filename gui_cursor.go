// gui_cursor.go - Pointer cursor stage (§4.6)

package main

// cursorStage holds the previous frame's cursor position, size, and image
// so RedrawPointer can restore whatever was behind the cursor before
// blitting it at its new position.
type cursorStage struct {
	x, y          uint32
	width, height uint32
	image         *Image
}

// RedrawPointer restores the screen behind the previous frame's cursor
// rectangle, then draws the current cursor image on top without generating
// its own dirty rectangle — it is enclosed in the restore rectangle
// submitted just before it.
func (e *Engine) RedrawPointer(drawCtx *DrawingContext) {
	cursorImage := drawCtx.GetCursorImage(&e.CursorView, drawCtx.GuiContext)

	newX := uint32(e.CursorView.X)
	newY := uint32(e.CursorView.Y)

	requestDraw := false
	if newX != e.cursor.x || newY != e.cursor.y {
		requestDraw = true
	} else if cursorImage != e.cursor.image {
		requestDraw = true
	} else if e.dirty.Len() == 0 {
		// Force a BLT every frame when nothing else is drawn, to keep a
		// consistent framerate regardless of scene activity.
		requestDraw = true
	}

	var minX, deltaX, minY, deltaY uint32
	if e.cursor.x < newX {
		minX = e.cursor.x
		deltaX = newX - e.cursor.x
	} else {
		minX = newX
		deltaX = e.cursor.x - newX
	}

	if e.cursor.y < newY {
		minY = e.cursor.y
		deltaY = newY - e.cursor.y
	} else {
		minY = newY
		deltaY = e.cursor.y - newY
	}

	oldW, oldH := e.cursor.width, e.cursor.height
	newW, newH := cursorImage.Width, cursorImage.Height

	unionW := oldW
	if newW > unionW {
		unionW = newW
	}
	unionH := oldH
	if newH > unionH {
		unionH = newH
	}

	e.DrawScreen(drawCtx, int64(minX), int64(minY), unionW+deltaX, unionH+deltaY, requestDraw)

	e.DrawToBuffer(cursorImage, 0xFF, false, drawCtx, int64(newX), int64(newY), 0, 0, cursorImage.Width, cursorImage.Height, false)

	if requestDraw {
		e.cursor = cursorStage{x: newX, y: newY, width: newW, height: newH, image: cursorImage}
	}
}
