// gui_object.go - Scene graph node and ownership (§3, §4.5, §9 ownership notes)

package main

// PtrEventType enumerates the pointer events a widget's PtrEvent callback
// can receive (§4.8).
type PtrEventType int

const (
	PrimaryDown PtrEventType = iota
	PrimaryHold
	PrimaryUp
)

// DrawFunc produces pixels for a clipped sub-rectangle of an object.
type DrawFunc func(this *Object, drawCtx *DrawingContext, ctx any, baseX, baseY int64, offsetX, offsetY, width, height uint32, requestDraw bool)

// PtrEventFunc handles a pointer event that falls within an object's bounds.
// It returns the object that should capture the pointer (usually `this`),
// or nil if the event was not handled.
type PtrEventFunc func(this *Object, drawCtx *DrawingContext, ctx any, event PtrEventType, baseX, baseY, offsetX, offsetY int64) *Object

// KeyEventFunc handles a key event addressed to the root.
type KeyEventFunc func(this *Object, drawCtx *DrawingContext, ctx any, baseX, baseY int64, key InputKey)

// Object is a scene graph node: a rectangular region in its parent's
// coordinate space, with draw and input delegation.
type Object struct {
	Width, Height    uint32
	OffsetX, OffsetY int64

	Children []*ChildLink

	Draw     DrawFunc
	PtrEvent PtrEventFunc
	KeyEvent KeyEventFunc

	// parentLink is a non-owning back-reference used only for the
	// base-coordinate walk (§4.5); nil for the Screen object.
	parentLink *ChildLink
}

// ChildLink is the owning edge from a parent to one child. The parent
// exclusively owns its children; Parent is a non-owning back-reference.
type ChildLink struct {
	Obj    *Object
	Parent *Object
}

// NewScreen constructs the root object for a view. Its offset is always
// (0,0); ViewInitialize fills in Width/Height from the output's resolution.
func NewScreen(draw DrawFunc, ptrEvent PtrEventFunc, keyEvent KeyEventFunc) *Object {
	return &Object{
		Draw:     draw,
		PtrEvent: ptrEvent,
		KeyEvent: keyEvent,
	}
}

// AddChild appends child to parent's child list, taking ownership of it.
// Children are drawn back-to-front in reverse list order and hit-tested
// front-to-back in forward list order (§3), so later AddChild calls place
// objects underneath the ones added before them.
func AddChild(parent, child *Object) *ChildLink {
	link := &ChildLink{Obj: child, Parent: parent}
	child.parentLink = link
	parent.Children = append(parent.Children, link)
	return link
}

// RemoveChild destroys the child behind link, severing it from its parent.
// Ownership means destruction here, not detachment (§3).
func RemoveChild(parent *Object, link *ChildLink) {
	for i, l := range parent.Children {
		if l == link {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			link.Obj.parentLink = nil
			link.Obj.Children = nil
			link.Obj = nil
			return
		}
	}
}

// BaseCoords walks parent links from obj up to drawCtx.Screen, summing
// offsets to produce obj's screen-space origin (§4.5). Panics if the walk
// cannot reach Screen — every non-screen object must have a parent.
func BaseCoords(obj *Object, drawCtx *DrawingContext) (baseX, baseY int64) {
	cur := obj
	for cur != drawCtx.Screen {
		baseX += cur.OffsetX
		baseY += cur.OffsetY

		link := cur.parentLink
		if link == nil {
			panic("gui: object has no parent and is not the screen")
		}
		cur = link.Parent
	}
	return baseX, baseY
}
