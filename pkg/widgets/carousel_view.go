package widgets

import (
	"time"

	"github.com/go-drift/widgetkit/pkg/carousel"
	"github.com/go-drift/widgetkit/pkg/gestures"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/layout"
)

// CarouselViewConfig configures a CarouselView. NumberOfItems and
// ItemBuilder are required.
type CarouselViewConfig struct {
	// Interval is the auto-advance interval. Zero means the engine
	// default.
	Interval time.Duration

	// NumberOfItems returns the logical item count. Required.
	NumberOfItems func() int

	// ItemBuilder builds one reusable slot view. Required. Called
	// exactly three times.
	ItemBuilder func() layout.RenderBox

	// UpdateItem rebinds a slot view to a logical item index.
	UpdateItem func(slot layout.RenderBox, index int)

	// OnTap reports a tap with the current page.
	OnTap func(page int)

	// OnPageDidChange reports every page transition with the new page.
	OnPageDidChange func(page int)
}

// CarouselView is an infinitely looping, auto-advancing carousel. It
// wires a [PagedScrollView], tap and long-press recognizers, and the
// [carousel] engine into a single render box.
//
// Dragging pages manually, holding a press, or starting a drag pauses
// auto-advance; releasing resumes it. Call Dispose on teardown to stop
// the auto-advance timer.
type CarouselView struct {
	layout.RenderBoxBase
	scroll       *PagedScrollView
	engine       *carousel.Carousel
	tap          *gestures.TapGestureRecognizer
	press        *gestures.LongPressGestureRecognizer
	lastViewport float64
}

// NewCarouselView creates and activates a carousel. It panics when
// NumberOfItems or ItemBuilder is missing. Pass a nil arena to use the
// default arena.
func NewCarouselView(cfg CarouselViewConfig, arena *gestures.GestureArena) *CarouselView {
	v := &CarouselView{}
	v.SetSelf(v)
	v.scroll = NewPagedScrollView(arena)
	setParentOnChild(v.scroll, v)

	slot := 0
	var item func() carousel.ItemView
	if cfg.ItemBuilder != nil {
		item = func() carousel.ItemView {
			child := cfg.ItemBuilder()
			v.scroll.SetSlot(slot, child)
			slot++
			return child
		}
	}
	var update func(view carousel.ItemView, index int)
	if cfg.UpdateItem != nil {
		update = func(view carousel.ItemView, index int) {
			cfg.UpdateItem(view.(layout.RenderBox), index)
		}
	}

	v.engine = carousel.Activate(carousel.Config{
		Duration:        cfg.Interval,
		NumberOfItems:   cfg.NumberOfItems,
		Item:            item,
		UpdateItem:      update,
		OnTap:           cfg.OnTap,
		OnPageDidChange: cfg.OnPageDidChange,
	}, v.scroll)

	v.scroll.OnOffsetChanged = v.engine.HandleOffsetChange
	v.scroll.OnDragBegan = v.engine.HandleDragBegan
	v.scroll.OnDragEnded = v.engine.HandleDragEnded
	v.scroll.OnSettled = v.engine.HandleScrollSettled

	v.tap = gestures.NewTapGestureRecognizer(arena)
	v.tap.OnTap = v.engine.HandleTap
	v.press = gestures.NewLongPressGestureRecognizer(arena)
	v.press.OnLongPressStart = v.engine.HandleLongPressBegan
	v.press.OnLongPressEnd = v.engine.HandleLongPressEnded
	return v
}

// CurrentPage returns the current page index.
func (v *CarouselView) CurrentPage() int {
	return v.engine.CurrentPage()
}

// Refresh re-evaluates the item count and rebinds the slots. Call it
// after the underlying data changes.
func (v *CarouselView) Refresh() {
	v.engine.Refresh()
}

// Suspend pauses auto-advance.
func (v *CarouselView) Suspend() {
	v.engine.Suspend()
}

// Resume restarts auto-advance one interval from now.
func (v *CarouselView) Resume() {
	v.engine.Resume()
}

// Dispose stops the auto-advance timer and releases the recognizers.
// Safe to call repeatedly.
func (v *CarouselView) Dispose() {
	v.engine.Dispose()
	v.scroll.Dispose()
	v.tap.Dispose()
	v.press.Dispose()
}

// HandlePointer feeds pointer events to the tap, long-press, and drag
// recognizers.
func (v *CarouselView) HandlePointer(event gestures.PointerEvent) {
	if event.Phase == gestures.PointerPhaseDown {
		v.tap.AddPointer(event)
		v.press.AddPointer(event)
	} else {
		v.tap.HandleEvent(event)
		v.press.HandleEvent(event)
	}
	v.scroll.HandlePointer(event)
}

func (v *CarouselView) VisitChildren(visitor func(layout.RenderObject)) {
	visitor(v.scroll)
}

func (v *CarouselView) PerformLayout() {
	constraints := v.Constraints()
	size := graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	if size.Width <= 0 {
		size.Width = constraints.MinWidth
	}
	if size.Height <= 0 {
		size.Height = constraints.MinHeight
	}
	v.SetSize(size)

	v.scroll.Layout(layout.Tight(size), false)
	v.scroll.SetParentData(&layout.BoxParentData{})

	// The engine parks the pager over the center slot in viewport
	// units; a size change moves the slot boundaries, so recenter.
	if size.Width != v.lastViewport {
		v.lastViewport = size.Width
		if !v.scroll.Hidden() {
			v.scroll.SetOffset(size.Width, false)
		}
	}
}

func (v *CarouselView) Paint(ctx *layout.PaintContext) {
	ctx.PaintChild(v.scroll, graphics.Offset{})
}

func (v *CarouselView) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, v.Size()) {
		return false
	}
	v.scroll.HitTest(position, result)
	result.Add(v)
	return true
}
