package widgets

import (
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/layout"
)

// RoundedBox clips its child using rounded corners and optionally
// fills the rounded rect with a background color.
type RoundedBox struct {
	layout.RenderBoxBase
	child      layout.RenderBox
	radius     float64
	background graphics.Color
}

// NewRoundedBox creates a RoundedBox with the given corner radius.
func NewRoundedBox(radius float64, child layout.RenderBox) *RoundedBox {
	r := &RoundedBox{radius: radius}
	r.SetSelf(r)
	r.SetChild(child)
	return r
}

// SetRadius updates the corner radius.
func (r *RoundedBox) SetRadius(radius float64) {
	if r.radius == radius {
		return
	}
	r.radius = radius
	r.MarkNeedsPaint()
}

// Radius returns the corner radius.
func (r *RoundedBox) Radius() float64 {
	return r.radius
}

// SetBackground sets the fill color painted behind the child.
// A transparent color disables the fill.
func (r *RoundedBox) SetBackground(color graphics.Color) {
	if r.background == color {
		return
	}
	r.background = color
	r.MarkNeedsPaint()
}

func (r *RoundedBox) SetChild(child layout.RenderBox) {
	setParentOnChild(r.child, nil)
	r.child = child
	setParentOnChild(r.child, r)
}

func (r *RoundedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *RoundedBox) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints, true)
	r.SetSize(constraints.Constrain(r.child.Size()))
	r.child.SetParentData(&layout.BoxParentData{})
}

func (r *RoundedBox) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	radius := r.radius
	if radius < 0 {
		radius = 0
	}
	rect := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	rrect := graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(radius))
	ctx.Canvas.Save()
	ctx.Canvas.ClipRRect(rrect)

	if !r.background.IsTransparent() {
		ctx.Canvas.DrawRect(rect, graphics.Paint{Color: r.background})
	}
	if r.child != nil {
		ctx.PaintChild(r.child, getChildOffset(r.child))
	}

	ctx.Canvas.Restore()
}

func (r *RoundedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil && r.child.HitTest(position, result) {
		return true
	}
	result.Add(r)
	return true
}
