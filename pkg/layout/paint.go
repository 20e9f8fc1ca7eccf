package layout

import (
	"github.com/go-drift/widgetkit/pkg/gestures"
	"github.com/go-drift/widgetkit/pkg/graphics"
)

// PaintContext carries the canvas through a paint pass.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child translated to its offset within the parent.
func (ctx *PaintContext) PaintChild(child RenderObject, offset graphics.Offset) {
	if child == nil {
		return
	}
	if offset == (graphics.Offset{}) {
		child.Paint(ctx)
		return
	}
	ctx.Canvas.Save()
	ctx.Canvas.Translate(offset.X, offset.Y)
	child.Paint(ctx)
	ctx.Canvas.Restore()
}

// HitTestResult accumulates the render objects under a position,
// deepest first.
type HitTestResult struct {
	path []RenderObject
}

// Add appends a render object to the hit path.
func (r *HitTestResult) Add(object RenderObject) {
	r.path = append(r.path, object)
}

// Path returns the hit render objects, deepest first.
func (r *HitTestResult) Path() []RenderObject {
	return r.path
}

// PointerHandler is implemented by render objects that consume
// pointer events.
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent)
}

// ChildOffset returns the offset stored in a child's BoxParentData.
func ChildOffset(child RenderObject) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*BoxParentData); ok && data != nil {
		return data.Offset
	}
	return graphics.Offset{}
}
