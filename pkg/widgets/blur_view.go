package widgets

import (
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/layout"
)

// BlurView applies a gaussian blur to content behind its bounds. The
// blur affects everything drawn before it in compositing order; an
// optional child is painted on top, unblurred.
type BlurView struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	sigmaX float64
	sigmaY float64
}

// NewBlurView creates a BlurView with uniform blur in both directions.
// A nil child is allowed; the view then only blurs its backdrop.
func NewBlurView(sigma float64, child layout.RenderBox) *BlurView {
	b := &BlurView{sigmaX: sigma, sigmaY: sigma}
	b.SetSelf(b)
	b.SetChild(child)
	return b
}

// IsRepaintBoundary returns true - the blur layer is composited separately.
func (b *BlurView) IsRepaintBoundary() bool {
	return true
}

// SetSigma updates the blur strength in both directions.
func (b *BlurView) SetSigma(sigma float64) {
	if b.sigmaX == sigma && b.sigmaY == sigma {
		return
	}
	b.sigmaX = sigma
	b.sigmaY = sigma
	b.MarkNeedsPaint()
}

// Sigma returns the horizontal blur strength.
func (b *BlurView) Sigma() float64 {
	return b.sigmaX
}

func (b *BlurView) SetChild(child layout.RenderBox) {
	setParentOnChild(b.child, nil)
	b.child = child
	setParentOnChild(b.child, b)
}

func (b *BlurView) VisitChildren(visitor func(layout.RenderObject)) {
	if b.child != nil {
		visitor(b.child)
	}
}

func (b *BlurView) PerformLayout() {
	constraints := b.Constraints()
	if b.child == nil {
		b.SetSize(constraints.Constrain(graphics.Size{
			Width:  constraints.MaxWidth,
			Height: constraints.MaxHeight,
		}))
		return
	}
	b.child.Layout(constraints, true)
	b.SetSize(constraints.Constrain(b.child.Size()))
	b.child.SetParentData(&layout.BoxParentData{})
}

func (b *BlurView) Paint(ctx *layout.PaintContext) {
	size := b.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	bounds := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(bounds)

	ctx.Canvas.SaveLayerBlur(bounds, b.sigmaX, b.sigmaY)
	ctx.Canvas.Restore() // apply blur to backdrop
	if b.child != nil {
		ctx.PaintChild(b.child, getChildOffset(b.child))
	}

	ctx.Canvas.Restore() // clip
}

func (b *BlurView) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, b.Size()) {
		return false
	}
	if b.child != nil && b.child.HitTest(position, result) {
		return true
	}
	result.Add(b)
	return true
}
