// Package animation provides the timing primitives behind widgetkit's
// auto-advancing and animated widgets.
//
// # Core Components
//
//   - [FireTimer]: A repeating timer with one-shot "set next fire time"
//     semantics, used by the carousel's auto-advance. Pushing the fire
//     time to [FarFuture] suspends it without releasing the timer.
//
//   - [AnimationController]: Drives a float value toward a target over
//     a duration with an easing curve, used for animated scroll offsets.
//
//   - [Clock]: The injectable time source. Tests install a fake clock
//     via [SetClock] for deterministic timing.
//
// Timers and controllers are driven by the host's frame loop: call
// [StepTimers] and [StepAnimations] once per frame.
package animation

import (
	"sync"
	"time"

	"github.com/go-drift/widgetkit/pkg/errors"
)

// FarFuture is the sentinel fire time used to suspend a FireTimer
// indefinitely without invalidating it.
var FarFuture = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

var (
	timerMu      sync.Mutex
	activeTimers = make(map[*FireTimer]struct{})
)

// FireTimer calls a callback repeatedly at a fixed interval.
//
// The next fire time can be overridden at any moment with
// SetNextFireTime, which is how owners suspend (push to [FarFuture])
// and resume (now + interval) without destroying the timer. After each
// fire the timer re-arms itself one interval from the fire time.
//
// A FireTimer holds a registration in the package registry from Start
// until Invalidate. Owners must call Invalidate on every teardown path
// or the callback keeps firing into a dead owner.
type FireTimer struct {
	interval time.Duration
	fire     func()
	nextFire time.Time
	valid    bool
}

// NewFireTimer creates a timer that calls fire every interval once started.
func NewFireTimer(interval time.Duration, fire func()) *FireTimer {
	return &FireTimer{
		interval: interval,
		fire:     fire,
	}
}

// Start arms the timer to fire one interval from now and registers it
// with the frame loop. Starting an already started timer re-arms it.
func (t *FireTimer) Start() {
	if t.fire == nil {
		return
	}
	t.valid = true
	t.nextFire = Now().Add(t.interval)
	timerMu.Lock()
	activeTimers[t] = struct{}{}
	timerMu.Unlock()
}

// SetNextFireTime overrides when the timer fires next. It has no
// effect on an invalidated timer.
func (t *FireTimer) SetNextFireTime(at time.Time) {
	if !t.valid {
		return
	}
	t.nextFire = at
}

// NextFireTime returns the currently scheduled fire time.
func (t *FireTimer) NextFireTime() time.Time {
	return t.nextFire
}

// Interval returns the repeat interval.
func (t *FireTimer) Interval() time.Duration {
	return t.interval
}

// IsValid returns whether the timer is registered and can fire.
func (t *FireTimer) IsValid() bool {
	return t.valid
}

// Invalidate stops the timer and releases its registration.
// It is safe to call multiple times.
func (t *FireTimer) Invalidate() {
	if !t.valid {
		return
	}
	t.valid = false
	timerMu.Lock()
	delete(activeTimers, t)
	timerMu.Unlock()
}

// StepTimers fires all timers whose fire time has passed.
// This should be called once per frame from the host loop.
func StepTimers() {
	now := Now()
	timerMu.Lock()
	if len(activeTimers) == 0 {
		timerMu.Unlock()
		return
	}
	// Copy so callbacks can start or invalidate timers freely.
	due := make([]*FireTimer, 0, len(activeTimers))
	for timer := range activeTimers {
		if !now.Before(timer.nextFire) {
			due = append(due, timer)
		}
	}
	timerMu.Unlock()

	for _, timer := range due {
		if !timer.valid {
			continue
		}
		timer.nextFire = now.Add(timer.interval)
		fireTimer(timer)
	}
}

func fireTimer(t *FireTimer) {
	defer errors.Recover("animation.StepTimers")
	t.fire()
}

// HasActiveTimers returns true if any timers are registered.
func HasActiveTimers() bool {
	timerMu.Lock()
	defer timerMu.Unlock()
	return len(activeTimers) > 0
}
