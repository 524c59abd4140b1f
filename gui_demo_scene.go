// gui_demo_scene.go - Sample scene for the demo harness (not part of the core library)
//
// A background panel and a single draggable box, built directly on the
// public Object/Engine surface the same way an application embedding the
// core would.

package main

type demoScene struct {
	screen      *Object
	box         *Object
	cursorImage *Image
}

func fillImage(p Pixel) *Image {
	return &Image{Width: 1, Height: 1, Buffer: []Pixel{p}}
}

func makeFillDraw(e *Engine, img *Image) DrawFunc {
	return func(this *Object, drawCtx *DrawingContext, ctx any, baseX, baseY int64, offsetX, offsetY, width, height uint32, requestDraw bool) {
		e.DrawToBuffer(img, 0xFF, true, drawCtx, baseX, baseY, offsetX, offsetY, width, height, requestDraw)
	}
}

func makeContainerDraw(e *Engine, img *Image) DrawFunc {
	fill := makeFillDraw(e, img)
	return func(this *Object, drawCtx *DrawingContext, ctx any, baseX, baseY int64, offsetX, offsetY, width, height uint32, requestDraw bool) {
		fill(this, drawCtx, ctx, baseX, baseY, offsetX, offsetY, width, height, requestDraw)
		DrawDelegate(this, drawCtx, ctx, baseX, baseY, offsetX, offsetY, width, height, requestDraw)
	}
}

func containerPtrEvent(this *Object, drawCtx *DrawingContext, ctx any, event PtrEventType, baseX, baseY, offsetX, offsetY int64) *Object {
	return DelegatePtrEvent(this, drawCtx, ctx, event, baseX, baseY, offsetX, offsetY)
}

// makeDraggableBoxPtrEvent grabs the box on PrimaryDown and keeps the
// originally-grabbed point under the pointer while the button stays down,
// forcing a full redraw each time its position changes.
func makeDraggableBoxPtrEvent(e *Engine, box *Object) PtrEventFunc {
	var dragOriginX, dragOriginY int64

	return func(this *Object, drawCtx *DrawingContext, ctx any, event PtrEventType, baseX, baseY, offsetX, offsetY int64) *Object {
		switch event {
		case PrimaryDown:
			dragOriginX, dragOriginY = offsetX, offsetY
			return box
		case PrimaryHold:
			box.OffsetX += offsetX - dragOriginX
			box.OffsetY += offsetY - dragOriginY
			e.RedrawObject(drawCtx.Screen, drawCtx, 0, 0, true)
			return box
		default: // PrimaryUp
			return box
		}
	}
}

func buildSampleScene(e *Engine) *demoScene {
	background := fillImage(Pixel{Red: 0x20, Green: 0x20, Blue: 0x30, Alpha: 0xFF})
	boxColor := fillImage(Pixel{Red: 0xC0, Green: 0x40, Blue: 0x40, Alpha: 0xE0})
	cursorColor := fillImage(Pixel{Red: 0xFF, Green: 0xFF, Blue: 0xFF, Alpha: 0xFF})

	box := &Object{
		Width:   80,
		Height:  60,
		OffsetX: 100,
		OffsetY: 100,
		Draw:    makeFillDraw(e, boxColor),
	}
	box.PtrEvent = makeDraggableBoxPtrEvent(e, box)

	screen := NewScreen(makeContainerDraw(e, background), containerPtrEvent, nil)
	AddChild(screen, box)

	cursor := &Image{Width: 8, Height: 8, Buffer: make([]Pixel, 64)}
	for i := range cursor.Buffer {
		cursor.Buffer[i] = cursorColor.Buffer[0]
	}

	return &demoScene{screen: screen, box: box, cursorImage: cursor}
}
