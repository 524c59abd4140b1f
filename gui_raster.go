// gui_raster.go - Rasterizer: blit images into the back buffer (§4.3)

package main

// DrawToBuffer blits a sub-rectangle (offsetX, offsetY, width, height) of
// image — or, when fill is true, a constant color sampled from image's
// (0,0) pixel — into the back buffer at screen position (baseX+offsetX,
// baseY+offsetY), cropping to both the screen bounds and (when !fill) the
// image bounds. When requestDraw is true the touched rectangle is
// submitted to the dirty-region tracker.
func (e *Engine) DrawToBuffer(image *Image, opacity uint8, fill bool, drawCtx *DrawingContext, baseX, baseY int64, offsetX, offsetY, width, height uint32, requestDraw bool) {
	var posBaseX, posBaseY, posOffsetX, posOffsetY uint32

	if baseX >= 0 {
		posBaseX = uint32(baseX)
		posOffsetX = offsetX
	} else {
		posBaseX = 0
		delta := int64(offsetX) - (-baseX)
		if delta >= 0 {
			posOffsetX = uint32(delta)
		} else {
			if int64(width)+delta <= 0 {
				return
			}
			posOffsetX = 0
			width = uint32(int64(width) + delta)
			offsetX = uint32(int64(offsetX) - delta)
		}
	}

	if baseY >= 0 {
		posBaseY = uint32(baseY)
		posOffsetY = offsetY
	} else {
		posBaseY = 0
		delta := int64(offsetY) - (-baseY)
		if delta >= 0 {
			posOffsetY = uint32(delta)
		} else {
			if int64(height)+delta <= 0 {
				return
			}
			posOffsetY = 0
			height = uint32(int64(height) + delta)
			offsetY = uint32(int64(offsetY) - delta)
		}
	}

	if !fill {
		// Only crop to the image's dimensions when not fill-drawing.
		if w := image.Width - offsetX; w < width {
			width = w
		}
		if h := image.Height - offsetY; h < height {
			height = h
		}
	}

	screen := drawCtx.Screen
	if w := screen.Width - (posBaseX + posOffsetX); w < width {
		width = w
	}
	if h := screen.Height - (posBaseY + posOffsetY); h < height {
		height = h
	}

	if width == 0 || height == 0 {
		return
	}

	screenStride := int(screen.Width)

	if !fill {
		srcRowOffset := int(offsetY) * int(image.Width)
		dstRowOffset := int(posBaseY+posOffsetY) * screenStride

		for row := uint32(0); row < height; row++ {
			srcCol := int(offsetX)
			dstCol := int(posBaseX + posOffsetX)
			for col := uint32(0); col < width; col++ {
				target := &e.backBuffer[dstRowOffset+dstCol]
				source := image.Buffer[srcRowOffset+srcCol]
				Blend(target, source, opacity)
				srcCol++
				dstCol++
			}
			srcRowOffset += int(image.Width)
			dstRowOffset += screenStride
		}
	} else {
		fillSource := image.Buffer[0]
		dstRowOffset := int(posBaseY+posOffsetY) * screenStride

		for row := uint32(0); row < height; row++ {
			dstCol := int(posBaseX + posOffsetX)
			for col := uint32(0); col < width; col++ {
				target := &e.backBuffer[dstRowOffset+dstCol]
				Blend(target, fillSource, opacity)
				dstCol++
			}
			dstRowOffset += screenStride
		}
	}

	if requestDraw {
		e.dirty.Submit(DirtyRect{
			MinX: posBaseX + posOffsetX,
			MinY: posBaseY + posOffsetY,
			MaxX: posBaseX + posOffsetX + width - 1,
			MaxY: posBaseY + posOffsetY + height - 1,
		})
	}
}

// DrawScreen draws the sub-rectangle (x, y, width, height) of the whole
// view by invoking the screen object's Draw with (0,0) as the accumulated
// base coordinate, cropping to the screen's bounds first.
func (e *Engine) DrawScreen(drawCtx *DrawingContext, x, y int64, width, height uint32, requestDraw bool) {
	screen := drawCtx.Screen

	var posX, posY uint32
	if x >= 0 {
		posX = uint32(x)
	} else {
		if x+int64(width) <= 0 {
			return
		}
		width = uint32(int64(width) + x)
		posX = 0
	}

	if y >= 0 {
		posY = uint32(y)
	} else {
		if y+int64(height) <= 0 {
			return
		}
		height = uint32(int64(height) + y)
		posY = 0
	}

	if posX >= screen.Width || posY >= screen.Height {
		return
	}

	if w := screen.Width - posX; w < width {
		width = w
	}
	if h := screen.Height - posY; h < height {
		height = h
	}

	if width == 0 || height == 0 {
		return
	}

	screen.Draw(screen, drawCtx, drawCtx.GuiContext, 0, 0, posX, posY, width, height, requestDraw)
}

// RedrawObject redraws the whole of obj at screen position (baseX, baseY).
func (e *Engine) RedrawObject(obj *Object, drawCtx *DrawingContext, baseX, baseY int64, requestDraw bool) {
	e.DrawScreen(drawCtx, baseX, baseY, obj.Width, obj.Height, requestDraw)
}
