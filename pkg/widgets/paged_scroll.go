package widgets

import (
	"time"

	"github.com/go-drift/widgetkit/pkg/animation"
	"github.com/go-drift/widgetkit/pkg/gestures"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/layout"
)

// pagedSlotCount is the number of side-by-side slots in the pager.
const pagedSlotCount = 3

// pagedScrollDuration is the length of an animated offset change.
const pagedScrollDuration = 300 * time.Millisecond

// PagedScrollView is a horizontally paging viewport over three
// side-by-side slots, each one viewport wide. The scroll offset runs
// from zero (left slot) to twice the viewport width (right slot).
//
// It implements [carousel.Surface]; a [CarouselView] owns one and
// feeds its offset and drag activity to the carousel engine through
// the On* hooks.
type PagedScrollView struct {
	layout.RenderBoxBase

	// OnOffsetChanged fires on every offset change.
	OnOffsetChanged func()
	// OnDragBegan fires when a horizontal drag claims the pointer.
	OnDragBegan func()
	// OnDragEnded fires when a claimed drag is released.
	OnDragEnded func()
	// OnSettled fires when the offset comes to rest after a drag or an
	// animated scroll.
	OnSettled func()

	slots         [pagedSlotCount]layout.RenderBox
	offset        float64
	scrollEnabled bool
	hidden        bool
	animator      *animation.AnimationController
	drag          *gestures.HorizontalDragGestureRecognizer
}

// NewPagedScrollView creates an empty pager competing for drags in
// arena. Pass nil to use the default arena.
func NewPagedScrollView(arena *gestures.GestureArena) *PagedScrollView {
	p := &PagedScrollView{scrollEnabled: true}
	p.SetSelf(p)

	p.animator = animation.NewAnimationController(pagedScrollDuration)
	p.animator.Curve = animation.EaseOut
	p.animator.AddListener(func() {
		p.applyOffset(p.animator.Value)
	})
	p.animator.OnComplete = func() {
		if p.OnSettled != nil {
			p.OnSettled()
		}
	}

	p.drag = gestures.NewHorizontalDragGestureRecognizer(arena)
	p.drag.OnStart = func(gestures.DragStartDetails) {
		p.animator.Stop()
		if p.OnDragBegan != nil {
			p.OnDragBegan()
		}
	}
	p.drag.OnUpdate = func(details gestures.DragUpdateDetails) {
		p.SetOffset(Clamp(p.offset-details.PrimaryDelta, 0, p.maxOffset()), false)
	}
	p.drag.OnEnd = func(gestures.DragEndDetails) { p.finishDrag() }
	p.drag.OnCancel = func() { p.finishDrag() }
	return p
}

func (p *PagedScrollView) finishDrag() {
	if p.OnDragEnded != nil {
		p.OnDragEnded()
	}
	if p.OnSettled != nil {
		p.OnSettled()
	}
}

// IsRepaintBoundary returns true - scrolling content benefits from isolation.
func (p *PagedScrollView) IsRepaintBoundary() bool {
	return true
}

// SetSlot places child in slot index (0 to 2, left to right).
func (p *PagedScrollView) SetSlot(index int, child layout.RenderBox) {
	if index < 0 || index >= pagedSlotCount {
		return
	}
	setParentOnChild(p.slots[index], nil)
	p.slots[index] = child
	setParentOnChild(child, p)
	p.MarkNeedsLayout()
}

// Slot returns the child in slot index, or nil.
func (p *PagedScrollView) Slot(index int) layout.RenderBox {
	if index < 0 || index >= pagedSlotCount {
		return nil
	}
	return p.slots[index]
}

func (p *PagedScrollView) VisitChildren(visitor func(layout.RenderObject)) {
	for _, slot := range p.slots {
		if slot != nil {
			visitor(slot)
		}
	}
}

// Offset returns the current scroll offset.
func (p *PagedScrollView) Offset() float64 {
	return p.offset
}

// SetOffset moves the scroll offset, animated or instantly. An
// instant move interrupts any running animation.
func (p *PagedScrollView) SetOffset(offset float64, animated bool) {
	if animated {
		p.animator.AnimateTo(offset)
		return
	}
	p.animator.JumpTo(offset)
}

func (p *PagedScrollView) applyOffset(offset float64) {
	if p.offset == offset {
		return
	}
	p.offset = offset
	p.MarkNeedsPaint()
	if p.OnOffsetChanged != nil {
		p.OnOffsetChanged()
	}
}

// ViewportWidth returns the paging unit in pixels.
func (p *PagedScrollView) ViewportWidth() float64 {
	return p.Size().Width
}

func (p *PagedScrollView) maxOffset() float64 {
	return 2 * p.ViewportWidth()
}

// SetScrollEnabled enables or disables user dragging. Programmatic
// offset changes keep working either way.
func (p *PagedScrollView) SetScrollEnabled(enabled bool) {
	p.scrollEnabled = enabled
}

// ScrollEnabled returns whether user dragging is accepted.
func (p *PagedScrollView) ScrollEnabled() bool {
	return p.scrollEnabled
}

// SetHidden shows or hides the pager.
func (p *PagedScrollView) SetHidden(hidden bool) {
	if p.hidden == hidden {
		return
	}
	p.hidden = hidden
	p.MarkNeedsPaint()
}

// Hidden returns whether the pager is hidden.
func (p *PagedScrollView) Hidden() bool {
	return p.hidden
}

// HandlePointer feeds pointer events to the drag recognizer.
func (p *PagedScrollView) HandlePointer(event gestures.PointerEvent) {
	if p.hidden || !p.scrollEnabled {
		return
	}
	if event.Phase == gestures.PointerPhaseDown {
		p.drag.AddPointer(event)
		return
	}
	p.drag.HandleEvent(event)
}

// Dispose releases the animator and the drag recognizer.
func (p *PagedScrollView) Dispose() {
	p.animator.Dispose()
	p.drag.Dispose()
	p.OnOffsetChanged = nil
	p.OnDragBegan = nil
	p.OnDragEnded = nil
	p.OnSettled = nil
}

func (p *PagedScrollView) PerformLayout() {
	constraints := p.Constraints()
	size := graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	if size.Width <= 0 {
		size.Width = constraints.MinWidth
	}
	if size.Height <= 0 {
		size.Height = constraints.MinHeight
	}
	p.SetSize(size)

	for i, slot := range p.slots {
		if slot == nil {
			continue
		}
		slot.Layout(layout.Tight(size), false)
		slot.SetParentData(&layout.BoxParentData{
			Offset: graphics.Offset{X: float64(i) * size.Width},
		})
	}
}

func (p *PagedScrollView) Paint(ctx *layout.PaintContext) {
	if p.hidden {
		return
	}
	size := p.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	bounds := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(bounds)
	ctx.Canvas.Translate(-p.offset, 0)

	for _, slot := range p.slots {
		if slot != nil {
			ctx.PaintChild(slot, getChildOffset(slot))
		}
	}

	ctx.Canvas.Restore()
}

func (p *PagedScrollView) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if p.hidden || !withinBounds(position, p.Size()) {
		return false
	}
	content := graphics.Offset{X: position.X + p.offset, Y: position.Y}
	for _, slot := range p.slots {
		if slot == nil {
			continue
		}
		slotOffset := getChildOffset(slot)
		local := graphics.Offset{X: content.X - slotOffset.X, Y: content.Y - slotOffset.Y}
		if slot.HitTest(local, result) {
			result.Add(p)
			return true
		}
	}
	result.Add(p)
	return true
}
