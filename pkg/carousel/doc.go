// Package carousel implements an infinite-looping, auto-advancing
// paged carousel engine.
//
// # Design
//
// The engine owns page state, a pool of exactly three reusable item
// views (left, center, right), and an auto-advance timer. It renders
// nothing itself: a scroll surface, a timer, and gesture recognizers
// are injected collaborators, which keeps the state machine testable
// without a UI host. CarouselView in the widgets package provides the
// standard wiring.
//
// The loop illusion works by always mapping three logical pages onto
// three physical slots laid side by side, with the viewport parked
// over the center slot at one viewport width. When the offset crosses
// into the right slot the engine advances the page, rebinds all three
// slots, and instantly re-centers; crossing into the left slot does
// the same backward. The window indices wrap around the item count,
// so a finite dataset scrolls forever in both directions.
//
// # Usage
//
//	c := carousel.Activate(carousel.Config{
//	    Duration:      3 * time.Second,
//	    NumberOfItems: func() int { return len(banners) },
//	    Item:          func() carousel.ItemView { return newBannerSlot() },
//	    UpdateItem: func(view carousel.ItemView, index int) {
//	        view.(*bannerSlot).show(banners[index])
//	    },
//	    OnPageDidChange: func(page int) { indicator.Set(page) },
//	}, surface)
//	defer c.Dispose()
//
// Call Refresh whenever the logical item count changes. Activate
// panics if NumberOfItems or Item is missing: that is an owner
// programming error, not a runtime condition.
package carousel
