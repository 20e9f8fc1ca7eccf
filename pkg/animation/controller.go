package animation

import (
	"sync"
	"time"
)

var (
	animMu           sync.Mutex
	activeAnimations = make(map[*AnimationController]struct{})
)

// AnimationController drives a value toward a target over a duration.
//
// Unlike a general tween system, the controller animates between
// arbitrary float values because its main consumer is scroll offset
// animation. The Curve transforms linear progress into eased motion.
//
// Always call Dispose when done to stop the animation and release the
// frame-loop registration.
type AnimationController struct {
	// Value is the current animated value.
	Value float64

	// Duration is the length of each AnimateTo run.
	Duration time.Duration

	// Curve transforms linear progress (optional, defaults to LinearCurve).
	Curve func(float64) float64

	// OnComplete fires when an animation reaches its target.
	OnComplete func()

	startTime      time.Time
	startValue     float64
	target         float64
	animating      bool
	listeners      map[int]func()
	nextListenerID int
}

// NewAnimationController creates a controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:  duration,
		Curve:     LinearCurve,
		listeners: make(map[int]func()),
	}
}

// AnimateTo animates from the current value to target.
// With a non-positive Duration the value snaps immediately.
func (c *AnimationController) AnimateTo(target float64) {
	c.stopTicking()
	if c.Duration <= 0 {
		c.Value = target
		c.notifyListeners()
		c.complete()
		return
	}
	c.startTime = Now()
	c.startValue = c.Value
	c.target = target
	c.animating = true
	animMu.Lock()
	activeAnimations[c] = struct{}{}
	animMu.Unlock()
}

// JumpTo sets the value immediately without animating or completing.
func (c *AnimationController) JumpTo(value float64) {
	c.stopTicking()
	c.Value = value
	c.notifyListeners()
}

// Stop halts the animation at the current value without firing OnComplete.
func (c *AnimationController) Stop() {
	c.stopTicking()
}

// IsAnimating returns true while an AnimateTo run is in progress.
func (c *AnimationController) IsAnimating() bool {
	return c.animating
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// Dispose stops the animation and releases all listeners.
func (c *AnimationController) Dispose() {
	c.stopTicking()
	c.listeners = nil
	c.OnComplete = nil
}

func (c *AnimationController) stopTicking() {
	if !c.animating {
		return
	}
	c.animating = false
	animMu.Lock()
	delete(activeAnimations, c)
	animMu.Unlock()
}

func (c *AnimationController) complete() {
	if c.OnComplete != nil {
		c.OnComplete()
	}
}

func (c *AnimationController) step(now time.Time) {
	progress := float64(now.Sub(c.startTime)) / float64(c.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.stopTicking()
		c.complete()
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// StepAnimations advances all running controllers.
// This should be called once per frame from the host loop.
func StepAnimations() {
	animMu.Lock()
	if len(activeAnimations) == 0 {
		animMu.Unlock()
		return
	}
	controllers := make([]*AnimationController, 0, len(activeAnimations))
	for controller := range activeAnimations {
		controllers = append(controllers, controller)
	}
	animMu.Unlock()

	now := Now()
	for _, controller := range controllers {
		if controller.animating {
			controller.step(now)
		}
	}
}

// HasActiveAnimations returns true if any controllers are running.
func HasActiveAnimations() bool {
	animMu.Lock()
	defer animMu.Unlock()
	return len(activeAnimations) > 0
}
