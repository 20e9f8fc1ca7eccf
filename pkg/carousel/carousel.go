package carousel

import (
	"time"

	"github.com/go-drift/widgetkit/pkg/animation"
)

// DefaultDuration is the auto-advance interval used when Config.Duration
// is zero.
const DefaultDuration = 3 * time.Second

// offsetTolerance absorbs floating-point error when comparing scroll
// offsets against slot boundaries. Animated offsets are not guaranteed
// to land exactly on a viewport multiple.
const offsetTolerance = 0.5

// poolSize is the number of reusable item slots. The pool is created
// once at activation and never resized, regardless of the item count.
const poolSize = 3

// ItemView is an opaque handle to a reusable pool view. The engine
// never inspects it; it only passes it back through Config.UpdateItem.
type ItemView = any

// Surface is the scrollable viewport collaborator. Offsets are in
// pixels along the paging axis, with the content laid out three
// viewport widths wide and the center slot at one viewport width.
type Surface interface {
	// Offset returns the current scroll offset.
	Offset() float64
	// SetOffset moves the scroll offset, animated or instantly.
	SetOffset(offset float64, animated bool)
	// ViewportWidth returns the paging unit in pixels.
	ViewportWidth() float64
	// SetScrollEnabled enables or disables user scrolling.
	SetScrollEnabled(enabled bool)
	// SetHidden shows or hides the scroll surface.
	SetHidden(hidden bool)
}

// Timer is the auto-advance timer collaborator. One-shot "set next
// fire time" semantics are enough: suspension pushes the fire time to
// a far-future sentinel and resumption re-arms it, without ever
// destroying the timer.
type Timer interface {
	SetNextFireTime(at time.Time)
	Invalidate()
}

// Config configures a Carousel before activation. NumberOfItems and
// Item are required; everything else is optional.
type Config struct {
	// Duration is the auto-advance interval. Defaults to DefaultDuration.
	Duration time.Duration

	// NumberOfItems returns the logical item count. Required.
	// Re-evaluated on every Refresh; it may change between calls.
	NumberOfItems func() int

	// Item materializes one pool view. Required. Called exactly three
	// times, at activation.
	Item func() ItemView

	// UpdateItem rebinds a pool view to a logical item index.
	UpdateItem func(view ItemView, index int)

	// OnTap reports a tap on the surface with the current page.
	OnTap func(page int)

	// OnPageDidChange reports every page transition with the new page.
	OnPageDidChange func(page int)

	// NewTimer overrides the auto-advance timer construction, mainly
	// for tests. Defaults to a started animation.FireTimer.
	NewTimer func(interval time.Duration, fire func()) Timer
}

// Carousel is an activated carousel engine. All methods must be called
// from the UI event context; the engine performs no locking.
type Carousel struct {
	duration      time.Duration
	cfg           Config
	surface       Surface
	timer         Timer
	pool          [poolSize]ItemView
	currentPage   int
	itemsCount    int
	scrollEnabled bool
	disposed      bool
}

// Activate validates the configuration, materializes the three pool
// views, and returns the running engine after an initial Refresh.
//
// Missing required callbacks are a programming-contract violation and
// panic before any view is created.
func Activate(cfg Config, surface Surface) *Carousel {
	if cfg.NumberOfItems == nil || cfg.Item == nil {
		panic("carousel: Activate requires NumberOfItems and Item callbacks")
	}
	if surface == nil {
		panic("carousel: Activate requires a scroll surface")
	}

	duration := cfg.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	c := &Carousel{
		duration: duration,
		cfg:      cfg,
		surface:  surface,
	}
	for i := range c.pool {
		c.pool[i] = cfg.Item()
	}

	newTimer := cfg.NewTimer
	if newTimer == nil {
		newTimer = defaultTimer
	}
	c.timer = newTimer(duration, c.autoAdvance)

	c.Refresh()
	return c
}

func defaultTimer(interval time.Duration, fire func()) Timer {
	t := animation.NewFireTimer(interval, fire)
	t.Start()
	return t
}

// CurrentPage returns the authoritative current page index.
func (c *Carousel) CurrentPage() int {
	return c.currentPage
}

// Refresh re-evaluates the item count and resynchronizes the surface.
//
// With zero items the surface is hidden, scrolling is disabled, and
// auto-advance stops; no slots are rebound. Otherwise the surface is
// shown, scrolling is enabled only for more than one item, the current
// page resets to zero (reporting the change), all three slots are
// rebound, and auto-advance runs exactly when scrolling is enabled.
func (c *Carousel) Refresh() {
	if c.disposed {
		return
	}
	count := c.cfg.NumberOfItems()
	if count < 0 {
		count = 0
	}
	c.itemsCount = count

	if count == 0 {
		c.scrollEnabled = false
		c.surface.SetHidden(true)
		c.surface.SetScrollEnabled(false)
		c.Suspend()
		return
	}

	c.surface.SetHidden(false)
	c.scrollEnabled = count > 1
	c.surface.SetScrollEnabled(c.scrollEnabled)
	c.currentPage = 0
	c.notifyPageChange()
	c.reload()
	if c.scrollEnabled {
		c.Resume()
	} else {
		c.Suspend()
	}
}

// Suspend pushes the auto-advance timer's next fire to the far future
// without releasing it. Safe to call repeatedly.
func (c *Carousel) Suspend() {
	if c.timer != nil {
		c.timer.SetNextFireTime(animation.FarFuture)
	}
}

// Resume re-arms auto-advance one interval from now. It is a no-op
// when scrolling is disabled (one item or fewer).
func (c *Carousel) Resume() {
	if c.disposed || c.timer == nil || !c.scrollEnabled {
		return
	}
	c.timer.SetNextFireTime(animation.Now().Add(c.duration))
}

// Dispose invalidates the auto-advance timer. Safe to call repeatedly;
// every teardown path must reach it or the timer keeps firing.
func (c *Carousel) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.timer != nil {
		c.timer.Invalidate()
	}
}

// HandleOffsetChange reacts to a surface offset report, paging forward
// when the offset reaches the right slot and backward at the left slot.
func (c *Carousel) HandleOffsetChange() {
	if c.disposed || c.itemsCount == 0 {
		return
	}
	viewport := c.surface.ViewportWidth()
	if viewport <= 0 {
		return
	}
	offset := c.surface.Offset()
	switch {
	case offset >= 2*viewport-offsetTolerance:
		c.pageIn()
	case offset <= offsetTolerance:
		c.pageOut()
	}
}

// HandleScrollSettled applies the snap-back correction after a scroll
// comes to rest: an offset stranded between the zero and center
// positions (a drag released mid-transition) is animated back to
// center.
func (c *Carousel) HandleScrollSettled() {
	if c.disposed || c.itemsCount == 0 {
		return
	}
	viewport := c.surface.ViewportWidth()
	if viewport <= 0 {
		return
	}
	offset := c.surface.Offset()
	if nearly(offset, viewport) || nearly(offset, 0) {
		return
	}
	if offset >= 2*viewport-offsetTolerance {
		return
	}
	c.surface.SetOffset(viewport, true)
}

// HandleDragBegan suspends auto-advance while the user is dragging.
func (c *Carousel) HandleDragBegan() {
	c.Suspend()
}

// HandleDragEnded resumes auto-advance after a drag.
func (c *Carousel) HandleDragEnded() {
	c.Resume()
}

// HandleLongPressBegan suspends auto-advance while a press is held.
func (c *Carousel) HandleLongPressBegan() {
	c.Suspend()
}

// HandleLongPressEnded resumes auto-advance after a long press.
func (c *Carousel) HandleLongPressEnded() {
	c.Resume()
}

// HandleTap reports the current page through OnTap.
func (c *Carousel) HandleTap() {
	if c.disposed {
		return
	}
	if c.cfg.OnTap != nil {
		c.cfg.OnTap(c.currentPage)
	}
}

// pageIn advances one page, wrapping from the last page to the first.
func (c *Carousel) pageIn() {
	if c.itemsCount == 0 {
		return
	}
	if c.currentPage == c.itemsCount-1 {
		c.currentPage = 0
	} else {
		c.currentPage++
	}
	c.notifyPageChange()
	c.reload()
}

// pageOut retreats one page, wrapping from the first page to the last.
func (c *Carousel) pageOut() {
	if c.itemsCount == 0 {
		return
	}
	if c.currentPage == 0 {
		c.currentPage = c.itemsCount - 1
	} else {
		c.currentPage--
	}
	c.notifyPageChange()
	c.reload()
}

// reload rebinds the three pool slots to the current window and parks
// the surface over the center slot.
func (c *Carousel) reload() {
	w := WindowFor(c.currentPage, c.itemsCount)
	if c.cfg.UpdateItem != nil {
		c.cfg.UpdateItem(c.pool[0], w.Left)
		c.cfg.UpdateItem(c.pool[1], w.Center)
		c.cfg.UpdateItem(c.pool[2], w.Right)
	}
	c.surface.SetOffset(c.surface.ViewportWidth(), false)
}

func (c *Carousel) notifyPageChange() {
	if c.cfg.OnPageDidChange != nil {
		c.cfg.OnPageDidChange(c.currentPage)
	}
}

func nearly(a, b float64) bool {
	if a > b {
		return a-b <= offsetTolerance
	}
	return b-a <= offsetTolerance
}

// autoAdvance is the timer fire callback: it animates one viewport
// width forward, which drives the normal page-in logic once the offset
// crosses the boundary.
func (c *Carousel) autoAdvance() {
	if c.disposed || !c.scrollEnabled {
		return
	}
	viewport := c.surface.ViewportWidth()
	if viewport <= 0 {
		return
	}
	c.surface.SetOffset(2*viewport, true)
}
