// Package widgets provides the widgetkit render boxes: a backdrop
// blur, a rounded-corner clip, a placeholder-aware text view, and an
// infinitely looping carousel.
//
// # Render Model
//
// Widgets are render boxes implementing the [layout.RenderObject]
// contract. A host embeds them in its render tree, drives layout and
// paint per frame, and routes pointer events to the deepest
// [layout.PointerHandler] on the hit path.
//
// # Carousel
//
// [CarouselView] composes the paging surface, the gesture recognizers,
// and the carousel engine from [carousel]:
//
//	view := widgets.NewCarouselView(widgets.CarouselViewConfig{
//	    NumberOfItems: func() int { return len(pages) },
//	    ItemBuilder:   newPageView,
//	    UpdateItem: func(slot layout.RenderBox, index int) {
//	        bindPage(slot, pages[index])
//	    },
//	}, nil)
//	defer view.Dispose()
//
// Hosts must call [animation.StepTimers], [animation.StepAnimations],
// and [gestures.StepLongPresses] once per frame for auto-advance,
// animated paging, and long-press recognition to run.
package widgets
