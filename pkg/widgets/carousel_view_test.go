package widgets

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/widgetkit/pkg/animation"
	"github.com/go-drift/widgetkit/pkg/gestures"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/kittest"
	"github.com/go-drift/widgetkit/pkg/layout"
)

func installFakeClock(t *testing.T) *kittest.FakeClock {
	t.Helper()
	clock := kittest.NewFakeClock()
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clock
}

type carouselFixture struct {
	view  *CarouselView
	arena *gestures.GestureArena
	count int
	pages []int
	taps  []int
}

func newCarouselFixture(t *testing.T, count int) *carouselFixture {
	t.Helper()
	f := &carouselFixture{arena: gestures.NewGestureArena(), count: count}
	f.view = NewCarouselView(CarouselViewConfig{
		NumberOfItems: func() int { return f.count },
		ItemBuilder:   func() layout.RenderBox { return NewPlaceholderTextView("") },
		UpdateItem: func(slot layout.RenderBox, index int) {
			slot.(*PlaceholderTextView).SetText(fmt.Sprintf("item %d", index))
		},
		OnTap:           func(page int) { f.taps = append(f.taps, page) },
		OnPageDidChange: func(page int) { f.pages = append(f.pages, page) },
	}, f.arena)
	t.Cleanup(f.view.Dispose)
	f.view.Layout(layout.Tight(graphics.Size{Width: 320, Height: 200}), false)
	f.pages = nil
	return f
}

func (f *carouselFixture) paintedTexts(t *testing.T) []string {
	t.Helper()
	list := &graphics.DisplayList{}
	f.view.Paint(&layout.PaintContext{Canvas: list})
	return kittest.DrawnTexts(list)
}

func assertTexts(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("painted texts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("painted texts = %v, want %v", got, want)
		}
	}
}

func TestCarouselViewBindsWindowAndRecenters(t *testing.T) {
	installFakeClock(t)
	f := newCarouselFixture(t, 5)

	if got := f.view.scroll.Offset(); got != 320 {
		t.Errorf("offset after layout = %v, want 320", got)
	}
	assertTexts(t, f.paintedTexts(t), []string{"item 4", "item 0", "item 1"})
}

func TestCarouselViewSwipeLeftAdvances(t *testing.T) {
	installFakeClock(t)
	f := newCarouselFixture(t, 5)

	kittest.DragFrom(f.view, f.arena, graphics.Offset{X: 160, Y: 100}, graphics.Offset{X: -330}, 10)

	if got := f.view.CurrentPage(); got != 1 {
		t.Fatalf("page = %d, want 1", got)
	}
	if len(f.pages) != 1 || f.pages[0] != 1 {
		t.Errorf("page changes = %v, want [1]", f.pages)
	}
	if got := f.view.scroll.Offset(); got != 320 {
		t.Errorf("offset after paging = %v, want recentered 320", got)
	}
	assertTexts(t, f.paintedTexts(t), []string{"item 0", "item 1", "item 2"})
}

func TestCarouselViewSwipeRightWrapsBackward(t *testing.T) {
	installFakeClock(t)
	f := newCarouselFixture(t, 5)

	kittest.DragFrom(f.view, f.arena, graphics.Offset{X: 160, Y: 100}, graphics.Offset{X: 330}, 10)

	if got := f.view.CurrentPage(); got != 4 {
		t.Fatalf("page = %d, want 4", got)
	}
	assertTexts(t, f.paintedTexts(t), []string{"item 3", "item 4", "item 0"})
}

func TestCarouselViewShortSwipeSnapsBack(t *testing.T) {
	clock := installFakeClock(t)
	f := newCarouselFixture(t, 5)

	// Well under one viewport: no page change, the release animates
	// the offset back to center.
	kittest.DragFrom(f.view, f.arena, graphics.Offset{X: 160, Y: 100}, graphics.Offset{X: -100}, 4)

	if got := f.view.CurrentPage(); got != 0 {
		t.Fatalf("page = %d, want 0", got)
	}
	if !animation.HasActiveAnimations() {
		t.Fatal("release should start the snap-back animation")
	}

	clock.Advance(pagedScrollDuration)
	animation.StepAnimations()
	if got := f.view.scroll.Offset(); got != 320 {
		t.Errorf("offset after snap-back = %v, want 320", got)
	}
	if len(f.pages) != 0 {
		t.Errorf("page changes = %v, want none", f.pages)
	}
}

func TestCarouselViewTapReportsPage(t *testing.T) {
	installFakeClock(t)
	f := newCarouselFixture(t, 3)

	kittest.TapAt(f.view, f.arena, graphics.Offset{X: 160, Y: 100})
	if len(f.taps) != 1 || f.taps[0] != 0 {
		t.Errorf("taps = %v, want [0]", f.taps)
	}
}

func TestCarouselViewAutoAdvances(t *testing.T) {
	clock := installFakeClock(t)
	f := newCarouselFixture(t, 3)

	clock.Advance(3 * time.Second)
	animation.StepTimers()
	clock.Advance(pagedScrollDuration)
	animation.StepAnimations()

	if got := f.view.CurrentPage(); got != 1 {
		t.Fatalf("page = %d, want 1", got)
	}
	if len(f.pages) != 1 || f.pages[0] != 1 {
		t.Errorf("page changes = %v, want [1]", f.pages)
	}
	assertTexts(t, f.paintedTexts(t), []string{"item 0", "item 1", "item 2"})
}

func TestCarouselViewLongPressPausesAutoAdvance(t *testing.T) {
	clock := installFakeClock(t)
	f := newCarouselFixture(t, 3)

	release := kittest.PressAt(f.view, f.arena, graphics.Offset{X: 160, Y: 100})
	clock.Advance(gestures.DefaultLongPressTimeout)
	gestures.StepLongPresses()

	// Held: the interval elapses without a page change.
	clock.Advance(3 * time.Second)
	animation.StepTimers()
	animation.StepAnimations()
	if len(f.pages) != 0 {
		t.Fatalf("page changed while pressed: %v", f.pages)
	}

	release()
	clock.Advance(3 * time.Second)
	animation.StepTimers()
	clock.Advance(pagedScrollDuration)
	animation.StepAnimations()
	if got := f.view.CurrentPage(); got != 1 {
		t.Errorf("page after release = %d, want 1", got)
	}
}

func TestCarouselViewSloppyTapKeepsAutoAdvance(t *testing.T) {
	clock := installFakeClock(t)
	f := newCarouselFixture(t, 3)

	// A diagonal wiggle past the euclidean slop but under the per-axis
	// drag slop: no recognizer claims before release, so the sweep
	// hands the drag a default win after the pointer is already up.
	// That must not strand the pager in its drag-suspended state.
	kittest.DragFrom(f.view, f.arena, graphics.Offset{X: 160, Y: 100}, graphics.Offset{X: 14, Y: 14}, 1)

	if got := f.view.scroll.Offset(); got != 320 {
		t.Fatalf("offset after sloppy tap = %v, want 320", got)
	}

	clock.Advance(3 * time.Second)
	animation.StepTimers()
	clock.Advance(pagedScrollDuration)
	animation.StepAnimations()

	if got := f.view.CurrentPage(); got != 1 {
		t.Fatalf("page = %d, want 1 after the interval", got)
	}
	if len(f.pages) != 1 || f.pages[0] != 1 {
		t.Errorf("page changes = %v, want [1]", f.pages)
	}
}

func TestCarouselViewSingleItemIgnoresSwipe(t *testing.T) {
	installFakeClock(t)
	f := newCarouselFixture(t, 1)

	kittest.DragFrom(f.view, f.arena, graphics.Offset{X: 160, Y: 100}, graphics.Offset{X: -330}, 10)

	if got := f.view.CurrentPage(); got != 0 {
		t.Errorf("page = %d, want 0", got)
	}
	if got := f.view.scroll.Offset(); got != 320 {
		t.Errorf("offset = %v, want 320", got)
	}
	assertTexts(t, f.paintedTexts(t), []string{"item 0", "item 0", "item 0"})
}

func TestCarouselViewZeroItemsHidesContent(t *testing.T) {
	installFakeClock(t)
	f := newCarouselFixture(t, 0)

	if !f.view.scroll.Hidden() {
		t.Error("pager should be hidden with zero items")
	}
	if texts := f.paintedTexts(t); len(texts) != 0 {
		t.Errorf("painted texts = %v, want none", texts)
	}

	// New data arrives: refresh brings the carousel back.
	f.count = 2
	f.view.Refresh()
	f.view.Layout(layout.Tight(graphics.Size{Width: 320, Height: 200}), false)
	if f.view.scroll.Hidden() {
		t.Error("pager should be visible after refresh")
	}
	assertTexts(t, f.paintedTexts(t), []string{"item 1", "item 0", "item 1"})
}

func TestCarouselViewDisposeStopsAutoAdvance(t *testing.T) {
	clock := installFakeClock(t)
	f := newCarouselFixture(t, 3)

	f.view.Dispose()
	if animation.HasActiveTimers() {
		t.Error("dispose should release the auto-advance timer")
	}

	clock.Advance(time.Minute)
	animation.StepTimers()
	animation.StepAnimations()
	if len(f.pages) != 0 {
		t.Errorf("page changes after dispose = %v, want none", f.pages)
	}
}

func TestNewCarouselViewPanicsWithoutRequiredCallbacks(t *testing.T) {
	installFakeClock(t)
	defer func() {
		if recover() == nil {
			t.Fatal("NewCarouselView did not panic")
		}
	}()
	NewCarouselView(CarouselViewConfig{
		NumberOfItems: func() int { return 3 },
	}, gestures.NewGestureArena())
}
