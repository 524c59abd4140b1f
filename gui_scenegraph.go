// gui_scenegraph.go - Draw and pointer-event delegation over child lists (§4.5)

package main

// DrawDelegate recurses a draw request into this's children. Children are
// visited back-to-front (reverse list order) so earlier children in the
// list end up drawn on top. Each child's portion of the request is clipped
// on both axes before recursing; children with an empty intersection are
// skipped.
func DrawDelegate(this *Object, drawCtx *DrawingContext, ctx any, baseX, baseY int64, offsetX, offsetY, width, height uint32, requestDraw bool) {
	for i := len(this.Children) - 1; i >= 0; i-- {
		child := this.Children[i].Obj

		childOffsetX, childWidth, ok := ClipChildBounds(child.OffsetX, child.Width, offsetX, width)
		if !ok {
			continue
		}

		childOffsetY, childHeight, ok := ClipChildBounds(child.OffsetY, child.Height, offsetY, height)
		if !ok {
			continue
		}

		child.Draw(
			child,
			drawCtx,
			ctx,
			baseX+child.OffsetX,
			baseY+child.OffsetY,
			childOffsetX,
			childOffsetY,
			childWidth,
			childHeight,
			requestDraw,
		)
	}
}

// DelegatePtrEvent routes a pointer event to the first (front-to-back,
// forward list order) child whose bounds contain (offsetX, offsetY),
// translating coordinates into that child's space. Returns the first
// non-nil object a child's PtrEvent returns — that object becomes the
// pointer-capture target.
func DelegatePtrEvent(this *Object, drawCtx *DrawingContext, ctx any, event PtrEventType, baseX, baseY, offsetX, offsetY int64) *Object {
	for _, link := range this.Children {
		child := link.Obj
		if offsetX < child.OffsetX || offsetX >= child.OffsetX+int64(child.Width) ||
			offsetY < child.OffsetY || offsetY >= child.OffsetY+int64(child.Height) {
			continue
		}

		obj := child.PtrEvent(
			child,
			drawCtx,
			ctx,
			event,
			baseX+child.OffsetX,
			baseY+child.OffsetY,
			offsetX-child.OffsetX,
			offsetY-child.OffsetY,
		)
		if obj != nil {
			return obj
		}
	}

	return nil
}
