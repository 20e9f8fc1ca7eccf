package layout

import "github.com/go-drift/widgetkit/pkg/graphics"

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	IsRepaintBoundary() bool
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset for a child in a box layout.
type BoxParentData struct {
	Offset graphics.Offset
}

// RenderBoxBase provides base behavior for render boxes.
type RenderBoxBase struct {
	size        graphics.Size
	parentData  any
	self        RenderObject
	parent      RenderObject
	constraints Constraints
	needsLayout bool
	needsPaint  bool
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size. A size change dirties paint
// since the content must be re-recorded at the new size.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.needsPaint = true
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	r.parentData = data
}

// MarkNeedsLayout marks this render box and its ancestors as needing layout.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
	}
}

// MarkNeedsPaint marks this render box as needing paint. The walk up
// stops at the first repaint boundary, which hosts composite from a
// cached layer.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true
	if r.self != nil && r.self.IsRepaintBoundary() {
		return
	}
	if r.parent != nil {
		r.parent.MarkNeedsPaint()
	}
}

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// NeedsPaint returns true if this render box needs painting.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint marks this render object as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// SetSelf registers the concrete render object so the base can
// dispatch PerformLayout and boundary checks to it.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	r.parent = parent
	r.constraints = Constraints{}
	r.needsLayout = true
	r.needsPaint = true
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// IsRepaintBoundary returns whether this render object repaints
// separately. Override in render objects that isolate their paint.
func (r *RenderBoxBase) IsRepaintBoundary() bool {
	return false
}

// Layout stores constraints and delegates to the concrete render
// object's PerformLayout. Clean boxes with unchanged constraints are
// skipped.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	if !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// SetParentOnChild sets the parent reference on a child render object.
// It marks both the old and new parent as needing layout when the
// parent changes.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	getter, _ := child.(interface{ Parent() RenderObject })
	setter, ok := child.(interface{ SetParent(RenderObject) })
	if !ok {
		return
	}
	currentParent := RenderObject(nil)
	if getter != nil {
		currentParent = getter.Parent()
	}
	if currentParent == parent {
		return
	}
	setter.SetParent(parent)
	if currentParent != nil {
		currentParent.MarkNeedsLayout()
	}
	if parent != nil {
		parent.MarkNeedsLayout()
	}
}

// WithinBounds checks if a position is within the given size.
func WithinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.Y >= 0 && position.X <= size.Width && position.Y <= size.Height
}
